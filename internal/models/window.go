package models

import (
	"errors"
	"time"
)

var ErrInvalidWindow = errors.New("window start must be before end")

// Window is the half-open interval [Start, End) over event time.
type Window struct {
	Start time.Time
	End   time.Time
}

func NewWindow(start, end time.Time) (Window, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Window{}, ErrInvalidWindow
	}
	return Window{Start: start.UTC(), End: end.UTC()}, nil
}

// Contains reports whether t falls inside the window; Start is inclusive, End exclusive.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Hours is the window length in whole seconds expressed as hours.
func (w Window) Hours() float64 {
	seconds := int64(w.End.Sub(w.Start) / time.Second)
	return float64(seconds) / 3600.0
}

// FormatHourBucket renders the UTC hour containing t, e.g. "20260115T00Z".
func FormatHourBucket(t time.Time) string {
	return t.UTC().Truncate(time.Hour).Format("20060102T15Z")
}
