package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"parkdesk/internal/entities"
)

// Memory is the in-memory reservation store. Collections are kept as
// slices so insertion order survives; the query pipeline relies on that
// order as its default ordering. All reads return copies, so callers can
// never mutate store-owned state directly.
type Memory struct {
	mu      sync.RWMutex
	latency time.Duration

	reservations []entities.Reservation
	lots         []entities.ParkingLot
	spaces       []entities.ParkingSpace
	users        []entities.User
}

// New returns an empty store whose operations resolve after the given
// simulated latency. A non-positive latency disables the delay, which is
// what tests use.
func New(latency time.Duration) *Memory {
	return &Memory{latency: latency}
}

// wait blocks for the simulated network delay, or returns early when the
// context is cancelled.
func (m *Memory) wait(ctx context.Context) error {
	if m.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(m.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Memory) ListReservations(ctx context.Context) ([]entities.Reservation, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.Reservation, len(m.reservations))
	copy(out, m.reservations)
	return out, nil
}

func (m *Memory) GetReservation(ctx context.Context, id string) (entities.Reservation, error) {
	if err := m.wait(ctx); err != nil {
		return entities.Reservation{}, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, r := range m.reservations {
		if r.ID == id {
			return r, nil
		}
	}
	return entities.Reservation{}, fmt.Errorf("reservation %q: %w", id, ErrNotFound)
}

// CreateReservation books a space. The store assigns the id, sets status
// PENDING, prices the interval against the lot's hourly rate and marks
// the target space RESERVED.
func (m *Memory) CreateReservation(ctx context.Context, req entities.CreateReservationRequest) (entities.Reservation, error) {
	if err := m.wait(ctx); err != nil {
		return entities.Reservation{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	lot := m.findLot(req.LotID)
	if lot == nil {
		return entities.Reservation{}, fmt.Errorf("lot %q: %w", req.LotID, ErrNotFound)
	}
	if m.findUser(req.UserID) == nil {
		return entities.Reservation{}, fmt.Errorf("user %q: %w", req.UserID, ErrNotFound)
	}
	space := m.findSpace(req.SpaceID)
	if space == nil || space.LotID != req.LotID {
		return entities.Reservation{}, fmt.Errorf("space %q in lot %q: %w", req.SpaceID, req.LotID, ErrNotFound)
	}

	now := time.Now().UTC()
	res := entities.Reservation{
		ID:                  uuid.NewString(),
		UserID:              req.UserID,
		LotID:               req.LotID,
		SpaceID:             req.SpaceID,
		CheckInDateTime:     req.CheckInDateTime,
		CheckOutDateTime:    req.CheckOutDateTime,
		Status:              entities.StatusPending,
		SpecialRequirements: req.SpecialRequirements,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	res.TotalCost = res.DurationHours() * lot.PricePerHour

	m.setSpaceStatus(space, entities.SpaceReserved)
	m.reservations = append(m.reservations, res)
	return res, nil
}

// UpdateReservation merges the non-nil fields of req into the stored
// reservation. The total cost is recomputed when either date changes, a
// space change releases the old space and reserves the new one, and a
// status change keeps the space state in step (ACTIVE occupies it,
// COMPLETED and CANCELLED release it).
func (m *Memory) UpdateReservation(ctx context.Context, id string, req entities.UpdateReservationRequest) (entities.Reservation, error) {
	if err := m.wait(ctx); err != nil {
		return entities.Reservation{}, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return entities.Reservation{}, fmt.Errorf("reservation %q: %w", id, ErrNotFound)
	}
	res := m.reservations[idx]

	if req.UserID != nil {
		if m.findUser(*req.UserID) == nil {
			return entities.Reservation{}, fmt.Errorf("user %q: %w", *req.UserID, ErrNotFound)
		}
		res.UserID = *req.UserID
	}
	if req.LotID != nil {
		if m.findLot(*req.LotID) == nil {
			return entities.Reservation{}, fmt.Errorf("lot %q: %w", *req.LotID, ErrNotFound)
		}
		res.LotID = *req.LotID
	}
	if req.SpaceID != nil && *req.SpaceID != res.SpaceID {
		next := m.findSpace(*req.SpaceID)
		if next == nil || next.LotID != res.LotID {
			return entities.Reservation{}, fmt.Errorf("space %q in lot %q: %w", *req.SpaceID, res.LotID, ErrNotFound)
		}
		if prev := m.findSpace(res.SpaceID); prev != nil {
			m.setSpaceStatus(prev, entities.SpaceAvailable)
		}
		m.setSpaceStatus(next, entities.SpaceReserved)
		res.SpaceID = *req.SpaceID
	}

	datesChanged := false
	if req.CheckInDateTime != nil && !req.CheckInDateTime.Equal(res.CheckInDateTime) {
		res.CheckInDateTime = *req.CheckInDateTime
		datesChanged = true
	}
	if req.CheckOutDateTime != nil && !req.CheckOutDateTime.Equal(res.CheckOutDateTime) {
		res.CheckOutDateTime = *req.CheckOutDateTime
		datesChanged = true
	}
	if datesChanged {
		if lot := m.findLot(res.LotID); lot != nil {
			res.TotalCost = res.DurationHours() * lot.PricePerHour
		}
	}

	if req.SpecialRequirements != nil {
		res.SpecialRequirements = *req.SpecialRequirements
	}
	if req.Status != nil && *req.Status != res.Status {
		if !req.Status.Valid() {
			return entities.Reservation{}, fmt.Errorf("unknown status %q", *req.Status)
		}
		res.Status = *req.Status
		if space := m.findSpace(res.SpaceID); space != nil {
			switch res.Status {
			case entities.StatusActive:
				m.setSpaceStatus(space, entities.SpaceOccupied)
			case entities.StatusCompleted, entities.StatusCancelled:
				m.setSpaceStatus(space, entities.SpaceAvailable)
			default:
				m.setSpaceStatus(space, entities.SpaceReserved)
			}
		}
	}

	res.UpdatedAt = time.Now().UTC()
	m.reservations[idx] = res
	return res, nil
}

// DeleteReservation removes the reservation and releases its space back
// to AVAILABLE.
func (m *Memory) DeleteReservation(ctx context.Context, id string) error {
	if err := m.wait(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := m.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("reservation %q: %w", id, ErrNotFound)
	}
	if space := m.findSpace(m.reservations[idx].SpaceID); space != nil {
		m.setSpaceStatus(space, entities.SpaceAvailable)
	}
	m.reservations = append(m.reservations[:idx], m.reservations[idx+1:]...)
	return nil
}

func (m *Memory) ListParkingLots(ctx context.Context) ([]entities.ParkingLot, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.ParkingLot, len(m.lots))
	copy(out, m.lots)
	return out, nil
}

func (m *Memory) ListUsers(ctx context.Context) ([]entities.User, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]entities.User, len(m.users))
	copy(out, m.users)
	return out, nil
}

// ListSpaces returns the spaces of one lot, or ErrNotFound for an
// unknown lot.
func (m *Memory) ListSpaces(ctx context.Context, lotID string) ([]entities.ParkingSpace, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.findLot(lotID) == nil {
		return nil, fmt.Errorf("lot %q: %w", lotID, ErrNotFound)
	}
	var out []entities.ParkingSpace
	for _, s := range m.spaces {
		if s.LotID == lotID {
			out = append(out, s)
		}
	}
	return out, nil
}

// setSpaceStatus flips a space and keeps its lot's availability counter
// in step. Spaces under maintenance are left alone.
func (m *Memory) setSpaceStatus(space *entities.ParkingSpace, status entities.SpaceStatus) {
	if space.Status == entities.SpaceMaintenance || space.Status == status {
		return
	}
	wasAvailable := space.Status == entities.SpaceAvailable
	space.Status = status
	nowAvailable := status == entities.SpaceAvailable

	lot := m.findLot(space.LotID)
	if lot == nil || wasAvailable == nowAvailable {
		return
	}
	if nowAvailable {
		lot.AvailableSpaces++
	} else {
		lot.AvailableSpaces--
	}
}

func (m *Memory) indexOf(id string) int {
	for i, r := range m.reservations {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func (m *Memory) findLot(id string) *entities.ParkingLot {
	for i := range m.lots {
		if m.lots[i].ID == id {
			return &m.lots[i]
		}
	}
	return nil
}

func (m *Memory) findSpace(id string) *entities.ParkingSpace {
	for i := range m.spaces {
		if m.spaces[i].ID == id {
			return &m.spaces[i]
		}
	}
	return nil
}

func (m *Memory) findUser(id string) *entities.User {
	for i := range m.users {
		if m.users[i].ID == id {
			return &m.users[i]
		}
	}
	return nil
}
