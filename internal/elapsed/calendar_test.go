package elapsed

import (
	"testing"
	"time"
)

func TestAddMonthsClampsToMonthEnd(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want string
	}{
		{"2024-01-31T08:00:00Z", 1, "2024-02-29T08:00:00Z"},
		{"2023-01-31T08:00:00Z", 1, "2023-02-28T08:00:00Z"},
		{"2024-03-31T00:00:00Z", -1, "2024-02-29T00:00:00Z"},
		{"2024-01-15T00:00:00Z", -1, "2023-12-15T00:00:00Z"},
		{"2024-11-30T23:59:59Z", 3, "2025-02-28T23:59:59Z"},
		{"2024-05-31T00:00:00Z", 0, "2024-05-31T00:00:00Z"},
		{"2024-05-31T00:00:00Z", 25, "2026-06-30T00:00:00Z"},
	}
	for _, tc := range cases {
		got := AddMonths(mustTime(t, tc.in), tc.n)
		if want := mustTime(t, tc.want); !got.Equal(want) {
			t.Fatalf("AddMonths(%s, %d) = %s, want %s", tc.in, tc.n, got, want)
		}
	}
}

func TestAddYearsLeapDay(t *testing.T) {
	leap := mustTime(t, "2024-02-29T10:00:00Z")
	if got, want := AddYears(leap, 1), mustTime(t, "2025-02-28T10:00:00Z"); !got.Equal(want) {
		t.Fatalf("AddYears(leap, 1) = %s, want %s", got, want)
	}
	if got, want := AddYears(leap, 4), mustTime(t, "2028-02-29T10:00:00Z"); !got.Equal(want) {
		t.Fatalf("AddYears(leap, 4) = %s, want %s", got, want)
	}
}

func TestAnniversaries(t *testing.T) {
	start := mustTime(t, "2024-06-01T00:00:00Z")
	now := mustTime(t, "2024-06-20T00:00:00Z")

	last, next := Anniversaries(start, now, UnitMonth)
	if !last.Equal(start) || !next.Equal(mustTime(t, "2024-07-01T00:00:00Z")) {
		t.Fatalf("monthly anniversaries = %s, %s", last, next)
	}

	last, next = Anniversaries(start, now, UnitYear)
	if !last.Equal(start) || !next.Equal(mustTime(t, "2025-06-01T00:00:00Z")) {
		t.Fatalf("yearly anniversaries = %s, %s", last, next)
	}
}

func TestNextAnniversaryIsStrictlyAfterNow(t *testing.T) {
	start := mustTime(t, "2024-06-01T00:00:00Z")
	exact := mustTime(t, "2024-07-01T00:00:00Z")
	if got := NextAnniversary(start, exact, UnitMonth); !got.Equal(mustTime(t, "2024-08-01T00:00:00Z")) {
		t.Fatalf("next anniversary at exact boundary = %s", got)
	}
}

func TestNextAnniversaryBeforeStart(t *testing.T) {
	start := mustTime(t, "2030-01-01T00:00:00Z")
	now := start.Add(-time.Hour)
	if got := NextAnniversary(start, now, UnitYear); !got.Equal(start) {
		t.Fatalf("next anniversary before start = %s, want %s", got, start)
	}
}
