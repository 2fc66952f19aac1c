package update

import (
	"fmt"
	"log/slog"

	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/scheduler"
)

const milestoneLogLimit = 20

// scheduleMilestones replaces the pending milestones of each counter with its
// next monthly and yearly ones.
func (m *Model) scheduleMilestones(counters ...model.Counter) {
	if m.Scheduler == nil {
		return
	}
	for _, c := range counters {
		m.Scheduler.Cancel(c.ID)
	}
	if err := m.Scheduler.ScheduleCounters(counters, m.clock.Now()); err != nil {
		m.logError("schedule milestones", err, slog.Int("counters", len(counters)))
		m.Status = StatusBar{Text: fmt.Sprintf("milestone schedule failed: %v", err), IsError: true}
	}
}

// onMilestone announces ev and queues the following milestone of the same
// kind. Events of deleted counters are ignored.
func (m *Model) onMilestone(ev scheduler.MilestoneEvent) {
	c, ok := model.Find(m.Counters, ev.CounterID)
	if !ok || c.ID != ev.CounterID {
		m.logger.Debug("milestone for missing counter", slog.String("counter_id", ev.CounterID))
		return
	}

	m.MilestoneLog = append(m.MilestoneLog, ev)
	if len(m.MilestoneLog) > milestoneLogLimit {
		m.MilestoneLog = m.MilestoneLog[len(m.MilestoneLog)-milestoneLogLimit:]
	}

	text := scheduler.Describe(ev, c.StartAt)
	m.Status = StatusBar{Text: "milestone: " + text}
	m.notify("Milestone", text, "info")
	m.logger.Info("milestone reached",
		slog.String("counter_id", c.ID),
		slog.String("kind", string(ev.Kind)),
		slog.Time("trigger_at", ev.TriggerAt),
	)

	if m.Scheduler == nil {
		return
	}
	next := scheduler.NextMilestone(c, ev.Kind, ev.TriggerAt)
	if err := m.Scheduler.Schedule(next); err != nil {
		m.logError("reschedule milestone", err, slog.String("counter_id", c.ID))
	}
	if dropped := m.Scheduler.Dropped(); dropped > 0 {
		m.logger.Warn("milestones dropped", slog.Uint64("dropped", dropped))
	}
}
