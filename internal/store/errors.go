// Package store holds the authoritative in-memory collections of
// reservations, lots, spaces and users. Every operation resolves after a
// fixed simulated delay, the way a remote backend would, and recomputes
// any derived space and lot state itself. Sentinel errors let callers
// distinguish failure scenarios with errors.Is instead of string
// matching.
package store

import "errors"

// ErrNotFound is returned when an operation references an id that does
// not exist in the store. Callers are expected to treat it as an empty
// or fallback result, never as a crash.
var ErrNotFound = errors.New("not found")
