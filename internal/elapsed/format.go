package elapsed

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidDisplayFormat = errors.New("elapsed: invalid display format")

// DisplayFormat selects which projection of a Breakdown is rendered.
type DisplayFormat string

const (
	FormatFull       DisplayFormat = "full"
	FormatDays       DisplayFormat = "days"
	FormatHM         DisplayFormat = "hm"
	FormatTotalHours DisplayFormat = "total-hours"
)

var displayFormats = []DisplayFormat{FormatFull, FormatDays, FormatHM, FormatTotalHours}

// DisplayFormats returns every supported format in cycling order.
func DisplayFormats() []DisplayFormat {
	out := make([]DisplayFormat, len(displayFormats))
	copy(out, displayFormats)
	return out
}

func (f DisplayFormat) IsValid() bool {
	switch f {
	case FormatFull, FormatDays, FormatHM, FormatTotalHours:
		return true
	default:
		return false
	}
}

// Next returns the format after f in cycling order. Unknown values restart
// the cycle at FormatFull.
func (f DisplayFormat) Next() DisplayFormat {
	for i, v := range displayFormats {
		if v == f {
			return displayFormats[(i+1)%len(displayFormats)]
		}
	}
	return FormatFull
}

// ParseDisplayFormat maps a stored or typed tag onto the closed set of
// formats. An empty tag means FormatFull.
func ParseDisplayFormat(raw string) (DisplayFormat, error) {
	v := DisplayFormat(strings.ToLower(strings.TrimSpace(raw)))
	if v == "" {
		return FormatFull, nil
	}
	if !v.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDisplayFormat, raw)
	}
	return v, nil
}

// Format renders b in the given format. Values outside the known set render
// as FormatFull.
func Format(b Breakdown, f DisplayFormat) string {
	switch f {
	case FormatDays:
		return fmt.Sprintf("%dd", b.TotalDays)
	case FormatHM:
		return fmt.Sprintf("%dh %dm", b.TotalHours, b.Minutes)
	case FormatTotalHours:
		return fmt.Sprintf("%dh", b.TotalHours)
	default:
		return formatFull(b)
	}
}

func formatFull(b Breakdown) string {
	if b.Years > 0 {
		return fmt.Sprintf("%dY %dd", b.Years, b.DaysSinceYearlyAnniversary)
	}
	if b.Months > 0 {
		return fmt.Sprintf("%dmo %dd", b.Months, b.Days)
	}
	return fmt.Sprintf("%dd %02d:%02d:%02d", b.TotalDays, b.Hours, b.Minutes, b.Seconds)
}

// Display computes the breakdown from start to now and renders it in f.
func Display(start, now time.Time, f DisplayFormat) string {
	return Format(Compute(start, now), f)
}
