package ledger

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("period end is before period start")

// Period is a closed time interval [Start, End].
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}

	return Period{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether t falls inside the period, both bounds included.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
