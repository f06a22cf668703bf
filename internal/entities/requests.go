package entities

import "time"

// CreateReservationRequest carries the fields a caller provides when
// booking. The store assigns the id, status and total cost itself.
type CreateReservationRequest struct {
	UserID              string    `json:"user_id"`
	LotID               string    `json:"lot_id"`
	SpaceID             string    `json:"space_id"`
	CheckInDateTime     time.Time `json:"check_in_datetime"`
	CheckOutDateTime    time.Time `json:"check_out_datetime"`
	SpecialRequirements string    `json:"special_requirements,omitempty"`
}

// UpdateReservationRequest is a partial update: nil fields are left
// untouched, non-nil ones are merged into the stored reservation.
type UpdateReservationRequest struct {
	UserID              *string            `json:"user_id,omitempty"`
	LotID               *string            `json:"lot_id,omitempty"`
	SpaceID             *string            `json:"space_id,omitempty"`
	CheckInDateTime     *time.Time         `json:"check_in_datetime,omitempty"`
	CheckOutDateTime    *time.Time         `json:"check_out_datetime,omitempty"`
	Status              *ReservationStatus `json:"status,omitempty"`
	SpecialRequirements *string            `json:"special_requirements,omitempty"`
}
