package scheduler

import (
	"fmt"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

// NextMilestone returns the first anniversary of c in unit strictly after now.
// A counter that has not started yet gets its first anniversary, never the
// start itself.
func NextMilestone(c model.Counter, unit elapsed.Unit, now time.Time) MilestoneEvent {
	at := elapsed.NextAnniversary(c.StartAt, now, unit)
	if !at.After(c.StartAt) {
		at = firstAnniversary(c.StartAt, unit)
	}
	return MilestoneEvent{
		ID:        fmt.Sprintf("%s:%s:%d", c.ID, unit, at.Unix()),
		CounterID: c.ID,
		Name:      c.Name,
		Kind:      unit,
		TriggerAt: at,
	}
}

func firstAnniversary(start time.Time, unit elapsed.Unit) time.Time {
	if unit == elapsed.UnitYear {
		return elapsed.AddYears(start, 1)
	}
	return elapsed.AddMonths(start, 1)
}

// Milestones returns the next monthly and yearly milestone of c.
func Milestones(c model.Counter, now time.Time) []MilestoneEvent {
	return []MilestoneEvent{
		NextMilestone(c, elapsed.UnitMonth, now),
		NextMilestone(c, elapsed.UnitYear, now),
	}
}

// ScheduleCounters queues the upcoming milestones of every counter.
func (e *Engine) ScheduleCounters(counters []model.Counter, now time.Time) error {
	for _, c := range counters {
		for _, ev := range Milestones(c, now) {
			if err := e.Schedule(ev); err != nil {
				return err
			}
		}
	}
	return nil
}

// Describe renders a milestone as a short notification line.
func Describe(ev MilestoneEvent, start time.Time) string {
	b := elapsed.Compute(start, ev.TriggerAt)
	switch ev.Kind {
	case elapsed.UnitYear:
		n := b.Years
		if n == 1 {
			return fmt.Sprintf("%s: 1 year", ev.Name)
		}
		return fmt.Sprintf("%s: %d years", ev.Name, n)
	default:
		n := b.Months
		if n == 1 {
			return fmt.Sprintf("%s: 1 month", ev.Name)
		}
		return fmt.Sprintf("%s: %d months", ev.Name, n)
	}
}
