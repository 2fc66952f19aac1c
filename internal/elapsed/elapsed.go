// Package elapsed turns a start instant and the current instant into a
// calendar-aware breakdown and renders it for display.
package elapsed

import "time"

const (
	msPerSecond = int64(1000)
	msPerMinute = 60 * msPerSecond
	msPerHour   = 60 * msPerMinute
	msPerDay    = 24 * msPerHour
)

// Breakdown is the decomposition of the time between two instants.
// Years and Months are computed independently: Months is the total number of
// month anniversaries, not the remainder after Years.
type Breakdown struct {
	Years                      int
	Months                     int
	Days                       int
	DaysSinceYearlyAnniversary int
	Hours                      int
	Minutes                    int
	Seconds                    int
	TotalDays                  int
	TotalHours                 int
	TotalMinutes               int
}

// IsZero reports whether every field is zero, which is also the result for a
// counter that has not started yet.
func (b Breakdown) IsZero() bool {
	return b == Breakdown{}
}

// Compute returns the breakdown of the time elapsed from start to now. The
// calendar fields interpret start in now's location. When now is before
// start the zero Breakdown is returned.
func Compute(start, now time.Time) Breakdown {
	if now.Before(start) {
		return Breakdown{}
	}
	start = start.In(now.Location())

	ms := now.UnixMilli() - start.UnixMilli()

	years := now.Year() - start.Year()
	yearly := AddYears(start, years)
	if yearly.After(now) {
		years--
		yearly = AddYears(start, years)
	}

	months := (now.Year()-start.Year())*12 + int(now.Month()-start.Month())
	monthly := AddMonths(start, months)
	if monthly.After(now) {
		months--
		monthly = AddMonths(start, months)
	}

	return Breakdown{
		Years:                      years,
		Months:                     months,
		Days:                       daysBetween(monthly, now),
		DaysSinceYearlyAnniversary: daysBetween(yearly, now),
		Hours:                      int((ms / msPerHour) % 24),
		Minutes:                    int((ms / msPerMinute) % 60),
		Seconds:                    int((ms / msPerSecond) % 60),
		TotalDays:                  int(ms / msPerDay),
		TotalHours:                 int(ms / msPerHour),
		TotalMinutes:               int(ms / msPerMinute),
	}
}

func daysBetween(from, to time.Time) int {
	ms := to.UnixMilli() - from.UnixMilli()
	if ms < 0 {
		return 0
	}
	return int(ms / msPerDay)
}
