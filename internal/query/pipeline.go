// Package query is the client-side query pipeline of the reservation
// table: it combines the raw reservation collection with search text,
// equality filters, sort state and pagination into the exact page of
// rows to render, plus the total match count for the pagination
// controls. The whole computation is a pure function of its inputs and
// is re-run in full on every input change; there is no incremental
// diffing and no hidden state.
package query

import (
	"sort"
	"strings"

	"parkdesk/internal/entities"
)

// DefaultPageSize matches the reservation table's initial page size.
const DefaultPageSize = 10

// Snapshot is the immutable input data of one recompute: the
// reservation collection in source order plus the name lookups rebuilt
// from the latest lot and user collections.
type Snapshot struct {
	Reservations []entities.Reservation
	LotNames     NameLookup
	UserNames    NameLookup
}

// NewSnapshot bundles the three collections into a pipeline input.
func NewSnapshot(reservations []entities.Reservation, lots []entities.ParkingLot, users []entities.User) Snapshot {
	return Snapshot{
		Reservations: reservations,
		LotNames:     NewLotLookup(lots),
		UserNames:    NewUserLookup(users),
	}
}

// State is the user-owned query state. Nil filters are skipped; filter
// comparisons run on the raw ids, never on resolved names.
type State struct {
	SearchText   string
	StatusFilter *entities.ReservationStatus
	LotFilter    *string
	UserFilter   *string
	Sort         Sort
	PageIndex    int
	PageSize     int
}

// Page is one recompute's output: the visible rows (at most PageSize of
// them) and the match count before pagination.
type Page struct {
	Rows  []entities.Reservation `json:"reservations"`
	Total int                    `json:"total"`
}

// Run recomputes the visible page. Steps, in order: case-insensitive
// substring search over id and resolved lot/user names, exact-match
// filters on the raw fields, stable sort (or the source order when no
// sort is active), then the clamped page slice. A page index pointing
// past the filtered set falls back to the first page instead of
// rendering an empty slice forever.
func Run(snap Snapshot, st State) Page {
	rows := make([]entities.Reservation, 0, len(snap.Reservations))
	needle := strings.ToLower(strings.TrimSpace(st.SearchText))
	for _, r := range snap.Reservations {
		if needle != "" && !matchesSearch(r, snap, needle) {
			continue
		}
		if st.StatusFilter != nil && r.Status != *st.StatusFilter {
			continue
		}
		if st.LotFilter != nil && r.LotID != *st.LotFilter {
			continue
		}
		if st.UserFilter != nil && r.UserID != *st.UserFilter {
			continue
		}
		rows = append(rows, r)
	}

	if st.Sort.active() {
		sort.SliceStable(rows, func(i, j int) bool {
			return st.Sort.compare(rows[i], rows[j], snap) < 0
		})
	}

	total := len(rows)
	size := st.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	start := st.PageIndex * size
	if start < 0 || start >= total {
		start = 0
	}
	end := start + size
	if end > total {
		end = total
	}
	return Page{Rows: rows[start:end], Total: total}
}

func matchesSearch(r entities.Reservation, snap Snapshot, needle string) bool {
	return strings.Contains(strings.ToLower(r.ID), needle) ||
		strings.Contains(strings.ToLower(snap.LotNames.Resolve(r.LotID)), needle) ||
		strings.Contains(strings.ToLower(snap.UserNames.Resolve(r.UserID)), needle)
}
