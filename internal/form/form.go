// Package form is the edit-dialog controller for a single reservation:
// it keeps the draft fields, validates them (including the cross-field
// rule that check-out must be strictly after check-in), derives the
// duration and total cost from the selected lot's hourly rate, and
// submits the draft as either a create or an update command depending on
// whether it carries an existing id.
package form

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"

	"parkdesk/internal/entities"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldErrors maps a draft field name to its validation message. An
// empty map means the draft is valid.
type FieldErrors map[string]string

// Commander is the write side of the store the controller submits to.
type Commander interface {
	CreateReservation(ctx context.Context, req entities.CreateReservationRequest) (entities.Reservation, error)
	UpdateReservation(ctx context.Context, id string, req entities.UpdateReservationRequest) (entities.Reservation, error)
}

// draft carries the editable fields plus the validation rules attached
// to them. Validation is re-run from scratch on every Validate/Submit;
// errors are never cached across edits.
type draft struct {
	UserID              string    `validate:"required"`
	LotID               string    `validate:"required"`
	SpaceID             string    `validate:"required"`
	CheckInDateTime     time.Time `validate:"required"`
	CheckOutDateTime    time.Time `validate:"required,gtfield=CheckInDateTime"`
	Status              entities.ReservationStatus
	SpecialRequirements string
}

// Controller edits one reservation. The lots and spaces slices are
// read-only reference snapshots used for pricing and for scoping the
// space choices to the selected lot.
type Controller struct {
	id    string // empty until editing an existing reservation
	draft draft

	lots   []entities.ParkingLot
	spaces []entities.ParkingSpace

	DurationHours float64
	TotalCost     float64
}

// NewController returns a create-mode controller over the given
// reference data.
func NewController(lots []entities.ParkingLot, spaces []entities.ParkingSpace) *Controller {
	return &Controller{lots: lots, spaces: spaces}
}

// Load switches the controller to edit mode, seeding the draft from an
// existing reservation.
func (c *Controller) Load(r entities.Reservation) {
	c.id = r.ID
	c.draft = draft{
		UserID:              r.UserID,
		LotID:               r.LotID,
		SpaceID:             r.SpaceID,
		CheckInDateTime:     r.CheckInDateTime,
		CheckOutDateTime:    r.CheckOutDateTime,
		Status:              r.Status,
		SpecialRequirements: r.SpecialRequirements,
	}
	c.recompute()
}

func (c *Controller) SetUser(id string) {
	c.draft.UserID = id
}

// SetLot selects a lot, clears a previously chosen space that does not
// belong to it, and reprices the draft against the new hourly rate.
func (c *Controller) SetLot(id string) {
	c.draft.LotID = id
	if c.draft.SpaceID != "" && !c.spaceInLot(c.draft.SpaceID, id) {
		c.draft.SpaceID = ""
	}
	c.recompute()
}

func (c *Controller) SetSpace(id string) {
	c.draft.SpaceID = id
}

func (c *Controller) SetCheckIn(t time.Time) {
	c.draft.CheckInDateTime = t
	c.recompute()
}

func (c *Controller) SetCheckOut(t time.Time) {
	c.draft.CheckOutDateTime = t
	c.recompute()
}

func (c *Controller) SetStatus(s entities.ReservationStatus) {
	c.draft.Status = s
}

func (c *Controller) SetSpecialRequirements(text string) {
	c.draft.SpecialRequirements = text
}

// SpaceChoices returns the spaces of the selected lot, skipping the
// ones under maintenance. With no lot selected there is nothing to
// choose from.
func (c *Controller) SpaceChoices() []entities.ParkingSpace {
	if c.draft.LotID == "" {
		return nil
	}
	var out []entities.ParkingSpace
	for _, s := range c.spaces {
		if s.LotID == c.draft.LotID && s.Status != entities.SpaceMaintenance {
			out = append(out, s)
		}
	}
	return out
}

// Validate re-evaluates every rule and returns the per-field messages.
func (c *Controller) Validate() FieldErrors {
	errs := FieldErrors{}
	if err := validate.Struct(c.draft); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			errs["form"] = err.Error()
			return errs
		}
		for _, ferr := range verrs {
			errs[ferr.Field()] = messageFor(ferr)
		}
	}
	if c.draft.Status != "" && !c.draft.Status.Valid() {
		errs["Status"] = "unknown status"
	}
	return errs
}

// Submit validates the draft and, when it passes, issues a create or an
// update command. Field errors short-circuit before any store call. The
// returned error is reserved for store failures.
func (c *Controller) Submit(ctx context.Context, cmd Commander) (entities.Reservation, FieldErrors, error) {
	if errs := c.Validate(); len(errs) > 0 {
		return entities.Reservation{}, errs, nil
	}

	if c.id == "" {
		res, err := cmd.CreateReservation(ctx, entities.CreateReservationRequest{
			UserID:              c.draft.UserID,
			LotID:               c.draft.LotID,
			SpaceID:             c.draft.SpaceID,
			CheckInDateTime:     c.draft.CheckInDateTime,
			CheckOutDateTime:    c.draft.CheckOutDateTime,
			SpecialRequirements: c.draft.SpecialRequirements,
		})
		return res, nil, err
	}

	req := entities.UpdateReservationRequest{
		UserID:              &c.draft.UserID,
		LotID:               &c.draft.LotID,
		SpaceID:             &c.draft.SpaceID,
		CheckInDateTime:     &c.draft.CheckInDateTime,
		CheckOutDateTime:    &c.draft.CheckOutDateTime,
		SpecialRequirements: &c.draft.SpecialRequirements,
	}
	if c.draft.Status != "" {
		req.Status = &c.draft.Status
	}
	res, err := cmd.UpdateReservation(ctx, c.id, req)
	return res, nil, err
}

// recompute refreshes the derived duration and cost. Contradictory
// dates price as zero; validation reports them separately.
func (c *Controller) recompute() {
	c.DurationHours = 0
	c.TotalCost = 0
	if c.draft.CheckInDateTime.IsZero() || c.draft.CheckOutDateTime.IsZero() {
		return
	}
	hours := c.draft.CheckOutDateTime.Sub(c.draft.CheckInDateTime).Hours()
	if hours <= 0 {
		return
	}
	c.DurationHours = hours
	for _, l := range c.lots {
		if l.ID == c.draft.LotID {
			c.TotalCost = hours * l.PricePerHour
			return
		}
	}
}

func (c *Controller) spaceInLot(spaceID, lotID string) bool {
	for _, s := range c.spaces {
		if s.ID == spaceID {
			return s.LotID == lotID
		}
	}
	return false
}

func messageFor(ferr validator.FieldError) string {
	switch ferr.Tag() {
	case "required":
		return "is required"
	case "gtfield":
		return "must be after check-in"
	default:
		return "is invalid"
	}
}
