package entities

import "time"

// ReservationStatus is the lifecycle state of a reservation. New
// reservations always start as PENDING; the sweeper and explicit updates
// move them forward.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusActive    ReservationStatus = "ACTIVE"
	StatusCompleted ReservationStatus = "COMPLETED"
	StatusCancelled ReservationStatus = "CANCELLED"
)

// Valid reports whether s is one of the known reservation statuses.
func (s ReservationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusActive, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Reservation struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"user_id"`
	LotID               string            `json:"lot_id"`
	SpaceID             string            `json:"space_id"`
	CheckInDateTime     time.Time         `json:"check_in_datetime"`
	CheckOutDateTime    time.Time         `json:"check_out_datetime"`
	Status              ReservationStatus `json:"status"`
	TotalCost           float64           `json:"total_cost"`
	SpecialRequirements string            `json:"special_requirements,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// DurationHours is the billed interval length. Zero or negative when the
// dates are missing or contradictory; callers validate before pricing.
func (r Reservation) DurationHours() float64 {
	return r.CheckOutDateTime.Sub(r.CheckInDateTime).Hours()
}
