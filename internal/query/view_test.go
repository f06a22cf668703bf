package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parkdesk/internal/entities"
)

// fakeDirectory feeds canned collections into View.Refresh.
type fakeDirectory struct {
	reservations []entities.Reservation
	lots         []entities.ParkingLot
	users        []entities.User
}

func (f *fakeDirectory) ListReservations(context.Context) ([]entities.Reservation, error) {
	return f.reservations, nil
}

func (f *fakeDirectory) ListParkingLots(context.Context) ([]entities.ParkingLot, error) {
	return f.lots, nil
}

func (f *fakeDirectory) ListUsers(context.Context) ([]entities.User, error) {
	return f.users, nil
}

func newTestView(t *testing.T, n int) *View {
	t.Helper()
	dir := &fakeDirectory{reservations: makeReservations(n), lots: testLots, users: testUsers}
	v := NewView(10)
	require.NoError(t, v.Refresh(context.Background(), dir))
	return v
}

func TestViewFilterChangeResetsPage(t *testing.T) {
	v := newTestView(t, 50)
	v.SetPage(3)
	require.Equal(t, 3, v.State().PageIndex)

	// ACTIVE matches every third row; narrowing further by search text
	// shrinks the set below one page.
	status := entities.StatusActive
	v.SetStatusFilter(&status)
	assert.Equal(t, 0, v.State().PageIndex)

	v.SetPage(1)
	v.SetSearch("r-00")
	assert.Equal(t, 0, v.State().PageIndex)

	page := v.Page()
	assert.Equal(t, "r-003", page.Rows[0].ID)
}

func TestViewSortChangeKeepsPage(t *testing.T) {
	v := newTestView(t, 50)
	v.SetPage(2)

	v.SetSort(Sort{Key: SortByStatus, Direction: Descending})
	assert.Equal(t, 2, v.State().PageIndex)

	v.SetPageSize(5)
	assert.Equal(t, 2, v.State().PageIndex)
}

func TestViewRepeatedSearchDoesNotResetPage(t *testing.T) {
	v := newTestView(t, 50)
	v.SetSearch("r-0")
	v.SetPage(2)

	v.SetSearch("r-0")
	assert.Equal(t, 2, v.State().PageIndex)
}

func TestViewCorrectsStalePageIndex(t *testing.T) {
	v := newTestView(t, 50)
	v.SetPage(4)
	require.Len(t, v.Page().Rows, 10)

	// Shrink the collection underneath the view; page 4 no longer exists.
	dir := &fakeDirectory{reservations: makeReservations(5), lots: testLots, users: testUsers}
	require.NoError(t, v.Refresh(context.Background(), dir))

	page := v.Page()
	assert.Equal(t, 0, v.State().PageIndex)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Rows, 5)
	assert.Equal(t, "r-001", page.Rows[0].ID)
}

func TestViewDebouncedSearchTakesLastValue(t *testing.T) {
	v := newTestView(t, 20)

	v.TypeSearch("r")
	v.TypeSearch("r-0")
	v.TypeSearch("r-002")
	v.FlushSearch()

	st := v.State()
	assert.Equal(t, "r-002", st.SearchText)
	assert.Equal(t, 1, v.Page().Total)
}
