package query

import (
	"context"
	"fmt"
	"sync"

	"parkdesk/internal/entities"
)

// Directory is the read side of the store the view pulls its
// collections from.
type Directory interface {
	ListReservations(ctx context.Context) ([]entities.Reservation, error)
	ListParkingLots(ctx context.Context) ([]entities.ParkingLot, error)
	ListUsers(ctx context.Context) ([]entities.User, error)
}

// View is the stateful wrapper around the pure pipeline: it owns the
// current snapshot and query state, applies the page-reset rules, and
// feeds debounced search text in. Every mutation is synchronous; Page
// projects the current state through Run.
//
// Changing the search text or a filter resets the page index to 0 so a
// new query always starts on its first page. Changing the sort or the
// page size deliberately does not.
type View struct {
	mu       sync.Mutex
	snap     Snapshot
	state    State
	debounce *Debouncer
}

// NewView returns a view over an empty snapshot.
func NewView(pageSize int) *View {
	v := &View{state: State{PageSize: pageSize}}
	v.debounce = NewDebouncer(SearchDebounceInterval, v.SetSearch)
	return v
}

// Refresh re-pulls the three collections and rebuilds the lookup
// snapshots. It is called on startup and after every completed
// create/update/delete command.
func (v *View) Refresh(ctx context.Context, dir Directory) error {
	reservations, err := dir.ListReservations(ctx)
	if err != nil {
		return fmt.Errorf("refreshing reservations: %w", err)
	}
	lots, err := dir.ListParkingLots(ctx)
	if err != nil {
		return fmt.Errorf("refreshing lots: %w", err)
	}
	users, err := dir.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("refreshing users: %w", err)
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap = NewSnapshot(reservations, lots, users)
	return nil
}

// TypeSearch feeds one keystroke into the debouncer. The last value
// typed within the debounce window reaches SetSearch.
func (v *View) TypeSearch(text string) {
	v.debounce.Type(text)
}

// FlushSearch forces a pending debounced value through, for callers
// that cannot wait out the quiet period.
func (v *View) FlushSearch() {
	v.debounce.Flush()
}

// SetSearch applies search text immediately. A changed value resets the
// page index; an identical one is a no-op.
func (v *View) SetSearch(text string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.state.SearchText == text {
		return
	}
	v.state.SearchText = text
	v.state.PageIndex = 0
}

func (v *View) SetStatusFilter(status *entities.ReservationStatus) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.StatusFilter = status
	v.state.PageIndex = 0
}

func (v *View) SetLotFilter(lotID *string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.LotFilter = lotID
	v.state.PageIndex = 0
}

func (v *View) SetUserFilter(userID *string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.UserFilter = userID
	v.state.PageIndex = 0
}

// SetSort changes the sort column and direction without touching the
// page index.
func (v *View) SetSort(s Sort) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Sort = s
}

func (v *View) SetPage(index int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if index < 0 {
		index = 0
	}
	v.state.PageIndex = index
}

func (v *View) SetPageSize(size int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if size > 0 {
		v.state.PageSize = size
	}
}

// State returns a copy of the current query state.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Page recomputes the visible page from the current snapshot and state.
// When the filtered set has shrunk underneath the page index, the index
// is corrected back to 0 rather than left pointing at an empty page.
func (v *View) Page() Page {
	v.mu.Lock()
	defer v.mu.Unlock()
	size := v.state.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := Run(v.snap, v.state)
	if v.state.PageIndex > 0 && v.state.PageIndex*size >= page.Total {
		v.state.PageIndex = 0
	}
	return page
}
