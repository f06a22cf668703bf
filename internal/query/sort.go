package query

import (
	"strings"

	"parkdesk/internal/entities"
)

// SortKey names a sortable reservation-table column. Dispatch is an
// explicit switch over these keys, not dynamic field access, so an
// unknown key can never reach a comparison.
type SortKey string

const (
	SortByID       SortKey = "id"
	SortByUserName SortKey = "userName"
	SortByLotName  SortKey = "lotName"
	SortBySpace    SortKey = "spaceNumber"
	SortByStatus   SortKey = "status"
	SortByCheckIn  SortKey = "checkInDateTime"
	SortByCheckOut SortKey = "checkOutDateTime"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
	Unsorted   Direction = "none"
)

// Sort is the active column and direction. The zero value (no key, no
// direction) means the source-collection order is kept.
type Sort struct {
	Key       SortKey
	Direction Direction
}

// active reports whether the sort actually reorders rows.
func (s Sort) active() bool {
	return s.Key != "" && (s.Direction == Ascending || s.Direction == Descending)
}

// compare orders a before b for the ascending direction; Descending
// flips the sign. Name columns compare on the resolved display name,
// date columns numerically with the zero time sorting earliest, and the
// remaining columns as case-insensitive strings.
func (s Sort) compare(a, b entities.Reservation, snap Snapshot) int {
	var c int
	switch s.Key {
	case SortByID:
		c = compareFold(a.ID, b.ID)
	case SortByUserName:
		c = compareFold(snap.UserNames.Resolve(a.UserID), snap.UserNames.Resolve(b.UserID))
	case SortByLotName:
		c = compareFold(snap.LotNames.Resolve(a.LotID), snap.LotNames.Resolve(b.LotID))
	case SortBySpace:
		c = compareFold(a.SpaceID, b.SpaceID)
	case SortByStatus:
		c = compareFold(string(a.Status), string(b.Status))
	case SortByCheckIn:
		c = a.CheckInDateTime.Compare(b.CheckInDateTime)
	case SortByCheckOut:
		c = a.CheckOutDateTime.Compare(b.CheckOutDateTime)
	}
	if s.Direction == Descending {
		c = -c
	}
	return c
}

func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
