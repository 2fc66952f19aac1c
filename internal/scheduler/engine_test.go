package scheduler

import (
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	engine := NewEngine(8)
	engine.Start()
	defer engine.Stop()

	now := time.Now()
	if err := engine.Schedule(MilestoneEvent{ID: "later", Kind: elapsed.UnitYear, TriggerAt: now.Add(80 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule(MilestoneEvent{ID: "sooner", Kind: elapsed.UnitMonth, TriggerAt: now.Add(20 * time.Millisecond)}); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	first := waitEvent(t, engine.C(), time.Second)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineEmitsPastDueImmediately(t *testing.T) {
	engine := NewEngine(2)
	engine.Start()
	defer engine.Stop()

	if err := engine.Schedule(MilestoneEvent{ID: "overdue", TriggerAt: time.Now().Add(-time.Hour)}); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	if ev := waitEvent(t, engine.C(), time.Second); ev.ID != "overdue" {
		t.Fatalf("unexpected event %q", ev.ID)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	defer engine.Stop()

	at := time.Now().Add(20 * time.Millisecond)
	for i := 0; i < 25; i++ {
		if err := engine.Schedule(MilestoneEvent{
			ID:        "evt",
			TriggerAt: at,
		}); err != nil {
			t.Fatalf("schedule event: %v", err)
		}
	}

	time.Sleep(120 * time.Millisecond)
	if engine.Dropped() == 0 {
		t.Fatalf("expected dropped events > 0, got %d", engine.Dropped())
	}
}

func TestCancelRemovesCounterMilestones(t *testing.T) {
	engine := NewEngine(4)
	engine.Start()
	defer engine.Stop()

	at := time.Now().Add(60 * time.Millisecond)
	for _, ev := range []MilestoneEvent{
		{ID: "a-month", CounterID: "a", TriggerAt: at},
		{ID: "a-year", CounterID: "a", TriggerAt: at.Add(time.Millisecond)},
		{ID: "b-month", CounterID: "b", TriggerAt: at.Add(2 * time.Millisecond)},
	} {
		if err := engine.Schedule(ev); err != nil {
			t.Fatalf("schedule %s: %v", ev.ID, err)
		}
	}

	if removed := engine.Cancel("a"); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if pending := engine.Pending(); pending != 1 {
		t.Fatalf("expected 1 pending, got %d", pending)
	}
	if ev := waitEvent(t, engine.C(), time.Second); ev.CounterID != "b" {
		t.Fatalf("expected only b to fire, got %+v", ev)
	}
}

func TestScheduleValidatesTriggerTime(t *testing.T) {
	engine := NewEngine(1)
	if err := engine.Schedule(MilestoneEvent{ID: "bad"}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
}

func TestScheduleAfterStopFails(t *testing.T) {
	engine := NewEngine(1)
	engine.Start()
	engine.Stop()
	engine.Stop()

	if err := engine.Schedule(MilestoneEvent{ID: "late", TriggerAt: time.Now()}); err != ErrEngineStopped {
		t.Fatalf("expected ErrEngineStopped, got %v", err)
	}
	if _, ok := <-engine.C(); ok {
		t.Fatal("expected output channel to be closed after stop")
	}
}

func waitEvent(t *testing.T, ch <-chan MilestoneEvent, timeout time.Duration) MilestoneEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return MilestoneEvent{}
	}
}
