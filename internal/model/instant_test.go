package model_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/model"
)

func TestParseInstantLayouts(t *testing.T) {
	loc := time.FixedZone("CET", 60*60)
	cases := map[string]time.Time{
		"2024-06-01T10:00:00Z":      time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		"2024-06-01T10:00:00+02:00": time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
		"2024-06-01T10:00":          time.Date(2024, 6, 1, 10, 0, 0, 0, loc),
		"2024-06-01 10:00":          time.Date(2024, 6, 1, 10, 0, 0, 0, loc),
		"2024-06-01T10:00:30":       time.Date(2024, 6, 1, 10, 0, 30, 0, loc),
		"2024-06-01":                time.Date(2024, 6, 1, 0, 0, 0, 0, loc),
	}
	for in, want := range cases {
		got, err := model.ParseInstant(in, loc)
		if err != nil {
			t.Fatalf("ParseInstant(%q) failed: %v", in, err)
		}
		if !got.Equal(want) {
			t.Fatalf("ParseInstant(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestParseInstantRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "yesterday", "2024-13-01"} {
		if _, err := model.ParseInstant(in, time.UTC); !errors.Is(err, model.ErrInvalidInstant) {
			t.Fatalf("ParseInstant(%q) error = %v, want ErrInvalidInstant", in, err)
		}
	}
}

func TestFormatInputRoundTrips(t *testing.T) {
	in := time.Date(2025, 12, 24, 18, 30, 0, 0, time.UTC)
	got, err := model.ParseInstant(model.FormatInput(in), time.UTC)
	if err != nil || !got.Equal(in) {
		t.Fatalf("round trip = %s, %v", got, err)
	}
}
