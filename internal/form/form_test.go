package form

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkdesk/internal/entities"
	"parkdesk/internal/store"
)

var (
	formLots = []entities.ParkingLot{
		{ID: "l-01", Name: "Centro Garage", PricePerHour: 10},
		{ID: "l-02", Name: "Puerto Madero Deck", PricePerHour: 7.5},
	}
	formSpaces = []entities.ParkingSpace{
		{ID: "s-01", LotID: "l-01", Number: "A-01", Status: entities.SpaceAvailable},
		{ID: "s-02", LotID: "l-01", Number: "A-02", Status: entities.SpaceMaintenance},
		{ID: "s-03", LotID: "l-02", Number: "B-01", Status: entities.SpaceAvailable},
	}
)

// countingCommander fails the test if the controller submits an invalid
// draft to the store.
type countingCommander struct {
	creates int
	updates int
}

func (c *countingCommander) CreateReservation(_ context.Context, req entities.CreateReservationRequest) (entities.Reservation, error) {
	c.creates++
	return entities.Reservation{ID: "r-new", Status: entities.StatusPending}, nil
}

func (c *countingCommander) UpdateReservation(_ context.Context, id string, req entities.UpdateReservationRequest) (entities.Reservation, error) {
	c.updates++
	return entities.Reservation{ID: id}, nil
}

func validDraft() *Controller {
	c := NewController(formLots, formSpaces)
	c.SetUser("u-01")
	c.SetLot("l-01")
	c.SetSpace("s-01")
	checkIn := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	c.SetCheckIn(checkIn)
	c.SetCheckOut(checkIn.Add(2 * time.Hour))
	return c
}

func TestValidateRequiredFields(t *testing.T) {
	c := NewController(formLots, formSpaces)

	errs := c.Validate()
	assert.Equal(t, "is required", errs["UserID"])
	assert.Equal(t, "is required", errs["LotID"])
	assert.Equal(t, "is required", errs["SpaceID"])
	assert.Equal(t, "is required", errs["CheckInDateTime"])
	assert.Equal(t, "is required", errs["CheckOutDateTime"])
}

func TestValidateCheckOutMustExceedCheckIn(t *testing.T) {
	c := validDraft()
	checkIn := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Equal timestamps are contradictory too: strictly after is required.
	c.SetCheckOut(checkIn)
	errs := c.Validate()
	assert.Equal(t, "must be after check-in", errs["CheckOutDateTime"])

	c.SetCheckOut(checkIn.Add(-time.Hour))
	errs = c.Validate()
	assert.Equal(t, "must be after check-in", errs["CheckOutDateTime"])

	// Fixing the date clears the error on revalidation.
	c.SetCheckOut(checkIn.Add(time.Hour))
	assert.Empty(t, c.Validate())
}

func TestDerivedDurationAndCost(t *testing.T) {
	c := validDraft()
	assert.Equal(t, 2.0, c.DurationHours)
	assert.Equal(t, 20.0, c.TotalCost) // 2h at Centro Garage's 10/h

	// Switching lots reprices at the new rate.
	c.SetLot("l-02")
	c.SetSpace("s-03")
	assert.Equal(t, 15.0, c.TotalCost)

	// Contradictory dates price as zero until fixed.
	c.SetCheckOut(c.draft.CheckInDateTime.Add(-time.Hour))
	assert.Zero(t, c.DurationHours)
	assert.Zero(t, c.TotalCost)
}

func TestSetLotClearsForeignSpace(t *testing.T) {
	c := validDraft()
	require.Equal(t, "s-01", c.draft.SpaceID)

	c.SetLot("l-02")
	assert.Empty(t, c.draft.SpaceID, "space of the old lot must be cleared")

	c.SetLot("l-01")
	c.SetSpace("s-01")
	c.SetLot("l-01")
	assert.Equal(t, "s-01", c.draft.SpaceID, "re-selecting the same lot keeps the space")
}

func TestSpaceChoicesScopedToLot(t *testing.T) {
	c := NewController(formLots, formSpaces)
	assert.Nil(t, c.SpaceChoices())

	c.SetLot("l-01")
	choices := c.SpaceChoices()
	require.Len(t, choices, 1, "maintenance spaces are not offered")
	assert.Equal(t, "s-01", choices[0].ID)
}

func TestSubmitRejectsInvalidDraftBeforeStoreCall(t *testing.T) {
	c := validDraft()
	c.SetCheckOut(time.Time{})
	cmd := &countingCommander{}

	_, fieldErrs, err := c.Submit(context.Background(), cmd)
	require.NoError(t, err)
	assert.NotEmpty(t, fieldErrs)
	assert.Zero(t, cmd.creates)
	assert.Zero(t, cmd.updates)
}

func TestSubmitCreatesWithoutID(t *testing.T) {
	c := validDraft()
	cmd := &countingCommander{}

	res, fieldErrs, err := c.Submit(context.Background(), cmd)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, 1, cmd.creates)
	assert.Zero(t, cmd.updates)
	assert.Equal(t, entities.StatusPending, res.Status)
}

func TestSubmitUpdatesWithID(t *testing.T) {
	c := NewController(formLots, formSpaces)
	checkIn := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	c.Load(entities.Reservation{
		ID:               "r-001",
		UserID:           "u-01",
		LotID:            "l-01",
		SpaceID:          "s-01",
		CheckInDateTime:  checkIn,
		CheckOutDateTime: checkIn.Add(2 * time.Hour),
		Status:           entities.StatusConfirmed,
	})
	cmd := &countingCommander{}

	res, fieldErrs, err := c.Submit(context.Background(), cmd)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, 1, cmd.updates)
	assert.Zero(t, cmd.creates)
	assert.Equal(t, "r-001", res.ID)
}

// End to end against the real store: the create-then-list example.
func TestSubmitAgainstStore(t *testing.T) {
	st := store.Seeded(0)
	ctx := context.Background()

	lots, err := st.ListParkingLots(ctx)
	require.NoError(t, err)
	spaces, err := st.ListSpaces(ctx, "l-01")
	require.NoError(t, err)

	var free string
	for _, s := range spaces {
		if s.Status == entities.SpaceAvailable {
			free = s.ID
			break
		}
	}
	require.NotEmpty(t, free)

	c := NewController(lots, spaces)
	c.SetUser("u-01")
	c.SetLot("l-01")
	c.SetSpace(free)
	checkIn := time.Date(2026, 9, 10, 9, 0, 0, 0, time.UTC)
	c.SetCheckIn(checkIn)
	c.SetCheckOut(checkIn.Add(2 * time.Hour))

	res, fieldErrs, err := c.Submit(ctx, st)
	require.NoError(t, err)
	require.Empty(t, fieldErrs)
	assert.Equal(t, entities.StatusPending, res.Status)
	assert.Equal(t, 20.0, res.TotalCost)

	listed, err := st.ListReservations(ctx)
	require.NoError(t, err)
	assert.Equal(t, res.ID, listed[len(listed)-1].ID)
}
