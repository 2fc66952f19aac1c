package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidInstant = errors.New("model: invalid start instant")

// instantLayouts are tried in order. Layouts without a zone are read in the
// caller's location, which is how a datetime-local form value is meant.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseInstant parses a stored or typed start timestamp.
func ParseInstant(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidInstant)
	}
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInstant, raw)
}

// FormatInput renders t the way the add form and palette accept it back.
func FormatInput(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
