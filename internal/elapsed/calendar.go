package elapsed

import "time"

type Unit string

const (
	UnitMonth Unit = "month"
	UnitYear  Unit = "year"
)

// AddMonths advances t by n calendar months, keeping the time of day. A
// day-of-month that does not exist in the target month is clamped to the
// month's last day, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	year := y + floorDiv(total, 12)
	month := time.Month(total - floorDiv(total, 12)*12 + 1)
	if last := daysIn(year, month, t.Location()); d > last {
		d = last
	}
	hh, mm, ss := t.Clock()
	return time.Date(year, month, d, hh, mm, ss, t.Nanosecond(), t.Location())
}

// AddYears advances t by n calendar years with the same clamping as
// AddMonths: Feb 29 + 1 year is Feb 28.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// Anniversaries returns the most recent anniversary of start at or before now
// and the first one strictly after now, for the given unit. Before start both
// values are start itself.
func Anniversaries(start, now time.Time, unit Unit) (last, next time.Time) {
	if now.Before(start) {
		return start, start
	}
	start = start.In(now.Location())
	b := Compute(start, now)
	if unit == UnitYear {
		return AddYears(start, b.Years), AddYears(start, b.Years+1)
	}
	return AddMonths(start, b.Months), AddMonths(start, b.Months+1)
}

// NextAnniversary returns the first anniversary of start strictly after now.
func NextAnniversary(start, now time.Time, unit Unit) time.Time {
	_, next := Anniversaries(start, now, unit)
	return next
}

func daysIn(year int, month time.Month, loc *time.Location) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
