package update

import (
	"context"
	"fmt"
	"log/slog"
)

// persist saves the whole list through the store. Failures are reported on
// the status bar and in the log; the in-memory list stays authoritative.
func (m *Model) persist() error {
	if m.store == nil {
		return nil
	}
	if err := m.store.Save(context.Background(), m.Counters); err != nil {
		m.logError("save counters", err, slog.Int("counters", len(m.Counters)))
		m.Status = StatusBar{Text: fmt.Sprintf("save failed: %v", err), IsError: true}
		m.notify("Save Failed", err.Error(), "error")
		return fmt.Errorf("save counters: %w", err)
	}
	return nil
}
