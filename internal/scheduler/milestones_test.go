package scheduler

import (
	"testing"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

func TestMilestonesForCounter(t *testing.T) {
	c := model.Counter{
		ID:      "c1",
		Name:    "Sober",
		StartAt: time.Date(2023, 1, 31, 9, 0, 0, 0, time.UTC),
	}
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	got := Milestones(c, now)
	if len(got) != 2 {
		t.Fatalf("expected two milestones, got %d", len(got))
	}
	month, year := got[0], got[1]
	if month.Kind != elapsed.UnitMonth || !month.TriggerAt.Equal(time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected monthly milestone: %+v", month)
	}
	if year.Kind != elapsed.UnitYear || !year.TriggerAt.Equal(time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected yearly milestone: %+v", year)
	}
	if month.CounterID != "c1" || month.Name != "Sober" || month.ID == year.ID {
		t.Fatalf("unexpected identity fields: %+v %+v", month, year)
	}
}

func TestMilestonesForFutureStart(t *testing.T) {
	start := time.Date(2026, 5, 31, 8, 0, 0, 0, time.UTC)
	c := model.Counter{ID: "trip", Name: "trip", StartAt: start}
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	month, year := NextMilestone(c, elapsed.UnitMonth, now), NextMilestone(c, elapsed.UnitYear, now)
	if !month.TriggerAt.Equal(time.Date(2026, 6, 30, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("monthly milestone = %v, want first month after start", month.TriggerAt)
	}
	if !year.TriggerAt.Equal(time.Date(2027, 5, 31, 8, 0, 0, 0, time.UTC)) {
		t.Fatalf("yearly milestone = %v, want first year after start", year.TriggerAt)
	}
	if got := Describe(month, start); got != "trip: 1 month" {
		t.Fatalf("Describe(month) = %q", got)
	}
	if got := Describe(year, start); got != "trip: 1 year" {
		t.Fatalf("Describe(year) = %q", got)
	}
}

func TestDescribe(t *testing.T) {
	start := time.Date(2023, 1, 31, 9, 0, 0, 0, time.UTC)
	cases := []struct {
		ev   MilestoneEvent
		want string
	}{
		{MilestoneEvent{Name: "Run", Kind: elapsed.UnitMonth, TriggerAt: time.Date(2023, 2, 28, 9, 0, 0, 0, time.UTC)}, "Run: 1 month"},
		{MilestoneEvent{Name: "Run", Kind: elapsed.UnitMonth, TriggerAt: time.Date(2024, 2, 29, 9, 0, 0, 0, time.UTC)}, "Run: 13 months"},
		{MilestoneEvent{Name: "Run", Kind: elapsed.UnitYear, TriggerAt: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC)}, "Run: 1 year"},
		{MilestoneEvent{Name: "Run", Kind: elapsed.UnitYear, TriggerAt: time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)}, "Run: 3 years"},
	}
	for _, tc := range cases {
		if got := Describe(tc.ev, start); got != tc.want {
			t.Fatalf("Describe(%v) = %q, want %q", tc.ev.TriggerAt, got, tc.want)
		}
	}
}

func TestScheduleCountersQueuesTwoPerCounter(t *testing.T) {
	engine := NewEngine(4)
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	counters := []model.Counter{
		{ID: "a", Name: "A", StartAt: now.AddDate(0, -1, 0)},
		{ID: "b", Name: "B", StartAt: now.AddDate(-2, 0, 0)},
	}
	if err := engine.ScheduleCounters(counters, now); err != nil {
		t.Fatalf("schedule counters: %v", err)
	}
	if got := engine.Pending(); got != 4 {
		t.Fatalf("expected 4 pending, got %d", got)
	}
	engine.Stop()
	if err := engine.ScheduleCounters(counters, now); err != ErrEngineStopped {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
}
