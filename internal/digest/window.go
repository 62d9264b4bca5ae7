package digest

import "time"

// Window is a closed interval of instants.
type Window struct {
	Start time.Time
	End   time.Time
}

// PriorDay returns the window spanning the calendar day before now in
// loc, from local midnight through 23:59:59.999.
func PriorDay(now time.Time, loc *time.Location) Window {
	y, m, d := now.In(loc).AddDate(0, 0, -1).Date()
	return Window{
		Start: time.Date(y, m, d, 0, 0, 0, 0, loc),
		End:   time.Date(y, m, d, 23, 59, 59, 999_000_000, loc),
	}
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
