package query

import "parkdesk/internal/entities"

// Fallback labels shown when a reservation references a lot or user the
// reference collections do not (yet) contain. The pipeline must keep
// sorting and searching instead of failing on the missing id.
const (
	UnknownLotLabel  = "Unknown Lot"
	UnknownUserLabel = "Unknown User"
)

// NameLookup resolves ids to display names. It is an immutable snapshot
// rebuilt from the latest reference collection on every refresh, never a
// rolling cache, so a stale entry can not outlive the data it came from.
type NameLookup struct {
	names    map[string]string
	fallback string
}

// NewLotLookup builds a lookup over the given lots.
func NewLotLookup(lots []entities.ParkingLot) NameLookup {
	names := make(map[string]string, len(lots))
	for _, l := range lots {
		names[l.ID] = l.Name
	}
	return NameLookup{names: names, fallback: UnknownLotLabel}
}

// NewUserLookup builds a lookup over the given users.
func NewUserLookup(users []entities.User) NameLookup {
	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.ID] = u.DisplayName()
	}
	return NameLookup{names: names, fallback: UnknownUserLabel}
}

// Resolve returns the display name for id, or the fallback label when
// the id is unknown.
func (l NameLookup) Resolve(id string) string {
	if name, ok := l.names[id]; ok {
		return name
	}
	return l.fallback
}
