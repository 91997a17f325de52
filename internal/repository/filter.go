package repository

import (
	"fmt"
	"time"
)

// SearchFilter carries the recognized flight search options. Origin and
// Destination are exact-match codes and must already be uppercased by
// the caller. The departure window is active only when both bounds are
// non-zero; an unparseable date never reaches this struct, the service
// simply leaves the window empty.
type SearchFilter struct {
	Origin      string
	Destination string
	DepartFrom  time.Time
	DepartTo    time.Time
	Limit       int64
}

// HasDepartureWindow reports whether the day-range filter is active.
func (f SearchFilter) HasDepartureWindow() bool {
	return !f.DepartFrom.IsZero() && !f.DepartTo.IsZero()
}

// Key renders the filter as a stable string for cache keys.
func (f SearchFilter) Key() string {
	return fmt.Sprintf("o=%s&d=%s&from=%d&to=%d&limit=%d",
		f.Origin, f.Destination, f.DepartFrom.Unix(), f.DepartTo.Unix(), f.Limit)
}
