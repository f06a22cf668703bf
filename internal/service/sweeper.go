// Package service carries the background jobs that keep reservation
// state honest over time. The sweeper advances reservations whose
// check-in or check-out has passed and purges pending ones that were
// never confirmed.
package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"parkdesk/internal/entities"
)

// DefaultPendingTTL is how long a PENDING reservation may linger before
// a sweep deletes it.
const DefaultPendingTTL = 24 * time.Hour

// ReservationStore is the slice of the store the sweeper needs.
type ReservationStore interface {
	ListReservations(ctx context.Context) ([]entities.Reservation, error)
	UpdateReservation(ctx context.Context, id string, req entities.UpdateReservationRequest) (entities.Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

type Sweeper struct {
	Store      ReservationStore
	PendingTTL time.Duration
}

func NewSweeper(store ReservationStore) *Sweeper {
	return &Sweeper{Store: store, PendingTTL: DefaultPendingTTL}
}

// Run performs one sweep: CONFIRMED reservations past their check-in
// become ACTIVE, ACTIVE ones past their check-out become COMPLETED, and
// PENDING ones older than the TTL are deleted.
func (s *Sweeper) Run(ctx context.Context) error {
	reservations, err := s.Store.ListReservations(ctx)
	if err != nil {
		return fmt.Errorf("sweep: listing reservations: %w", err)
	}

	now := time.Now().UTC()
	activated, completed, purged := 0, 0, 0
	for _, r := range reservations {
		switch {
		case r.Status == entities.StatusConfirmed && !r.CheckInDateTime.After(now):
			if err := s.setStatus(ctx, r.ID, entities.StatusActive); err != nil {
				return err
			}
			activated++
		case r.Status == entities.StatusActive && !r.CheckOutDateTime.After(now):
			if err := s.setStatus(ctx, r.ID, entities.StatusCompleted); err != nil {
				return err
			}
			completed++
		case r.Status == entities.StatusPending && now.Sub(r.CreatedAt) > s.PendingTTL:
			if err := s.Store.DeleteReservation(ctx, r.ID); err != nil {
				return fmt.Errorf("sweep: deleting stale pending reservation %s: %w", r.ID, err)
			}
			purged++
		}
	}

	if activated+completed+purged == 0 {
		log.Println("Sweep: nothing to update")
		return nil
	}
	log.Printf("Sweep: %d activated, %d completed, %d stale pending purged", activated, completed, purged)
	return nil
}

// Schedule registers the sweep with a cron runner. The caller owns the
// returned cron and is responsible for Start/Stop.
func (s *Sweeper) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		if err := s.Run(context.Background()); err != nil {
			log.Printf("Sweep failed: %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("scheduling sweep %q: %w", spec, err)
	}
	return c, nil
}

func (s *Sweeper) setStatus(ctx context.Context, id string, status entities.ReservationStatus) error {
	_, err := s.Store.UpdateReservation(ctx, id, entities.UpdateReservationRequest{Status: &status})
	if err != nil {
		return fmt.Errorf("sweep: moving reservation %s to %s: %w", id, status, err)
	}
	return nil
}
