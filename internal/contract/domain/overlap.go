package domain

import (
	"errors"
	"time"
)

// ErrOverlap signals that a candidate window conflicts with an existing one
// under the same exclusive key (here: the supplier).
var ErrOverlap = errors.New("overlapping_window")

// Window is a date-bounded validity interval.
type Window struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two windows intersect using the open-interval test
// a.start < b.end AND b.start < a.end.
func (w Window) Overlaps(other Window) bool {
	return w.Start.Before(other.End) && other.Start.Before(w.End)
}

// ValidateNoOverlap rejects a candidate window that intersects any existing
// window sharing the same grouping key. Pure predicate, no side effects.
func ValidateNoOverlap(candidate Window, existing []Window) error {
	for _, w := range existing {
		if candidate.Overlaps(w) {
			return ErrOverlap
		}
	}
	return nil
}
