package update

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/sandeepkv93/chronotrack/internal/backup"
	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

// Every mutation below sets its success status first and persists last, so a
// failed save replaces the status with the error. Every returned error is
// already on the status bar, so key handlers may drop it.

func (m *Model) addCounter(c model.Counter) error {
	m.Counters = model.Prepend(m.Counters, c)
	m.SelectedID = c.ID
	if m.CurrentView == ViewHome && !c.IsWidget {
		m.CurrentView = ViewList
	}
	m.scheduleMilestones(c)
	m.Status = StatusBar{Text: fmt.Sprintf("added counter: %s", c.Name)}
	m.logger.Info("counter added", slog.String("counter_id", c.ID), slog.String("name", c.Name))
	return m.persist()
}

func (m *Model) counterMissing(id string) error {
	err := fmt.Errorf("counter %q not found", id)
	m.Status = StatusBar{Text: err.Error(), IsError: true}
	return err
}

func (m *Model) deleteCounter(id string) error {
	c, ok := model.Find(m.Counters, id)
	if !ok {
		return m.counterMissing(id)
	}
	idx := model.IndexOf(m.visibleCounters(), id)

	m.Counters, _ = model.Remove(m.Counters, id)
	if m.Scheduler != nil {
		m.Scheduler.Cancel(id)
	}

	visible := m.visibleCounters()
	m.SelectedID = ""
	if len(visible) > 0 {
		m.SelectedID = visible[max(0, min(idx, len(visible)-1))].ID
	}
	m.Status = StatusBar{Text: fmt.Sprintf("deleted counter: %s", c.Name)}
	m.logger.Info("counter deleted", slog.String("counter_id", id))
	return m.persist()
}

func (m *Model) cycleSelectedFormat() {
	c, ok := m.selectedCounter()
	if !ok {
		return
	}
	_ = m.setFormat(c.ID, c.DisplayFormat.Next())
}

func (m *Model) setFormat(id string, f elapsed.DisplayFormat) error {
	next, ok := model.Update(m.Counters, id, func(c *model.Counter) { c.DisplayFormat = f })
	if !ok {
		return m.counterMissing(id)
	}
	m.Counters = next
	c, _ := model.Find(m.Counters, id)
	m.Status = StatusBar{Text: fmt.Sprintf("%s shows %s", c.Name, f)}
	return m.persist()
}

func (m *Model) toggleSelectedWidget() {
	c, ok := m.selectedCounter()
	if !ok {
		return
	}
	_ = m.setPinned(c.ID, !c.IsWidget)
}

func (m *Model) setPinned(id string, pinned bool) error {
	next, ok := model.Update(m.Counters, id, func(c *model.Counter) { c.IsWidget = pinned })
	if !ok {
		return m.counterMissing(id)
	}
	m.Counters = next
	c, _ := model.Find(m.Counters, id)
	if pinned {
		m.Status = StatusBar{Text: fmt.Sprintf("pinned %s to home", c.Name)}
	} else {
		m.Status = StatusBar{Text: fmt.Sprintf("unpinned %s", c.Name)}
	}
	m.ensureSelection()
	return m.persist()
}

func (m *Model) renameCounter(id, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.ErrNameRequired
	}
	next, ok := model.Update(m.Counters, id, func(c *model.Counter) { c.Name = name })
	if !ok {
		return m.counterMissing(id)
	}
	m.Counters = next
	c, _ := model.Find(m.Counters, id)
	m.scheduleMilestones(c)
	m.Status = StatusBar{Text: fmt.Sprintf("renamed counter to %s", name)}
	return m.persist()
}

// reorderSelected moves the selected counter onto the slot of its visible
// neighbour in direction delta.
func (m *Model) reorderSelected(delta int) {
	visible := m.visibleCounters()
	idx := model.IndexOf(visible, m.SelectedID)
	target := idx + delta
	if idx < 0 || target < 0 || target >= len(visible) {
		return
	}
	m.Counters = model.Move(m.Counters, m.SelectedID, visible[target].ID)
	m.Status = StatusBar{Text: "reordered counters"}
	_ = m.persist()
}

// exportBackup writes the list to path, or to the dated default file in the
// export directory when path is empty.
func (m *Model) exportBackup(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = filepath.Join(m.exportDir, backup.FileName(m.clock.Now()))
	}
	if err := backup.ExportFile(path, m.Counters); err != nil {
		m.logError("export backup", err, slog.String("path", path))
		m.Status = StatusBar{Text: fmt.Sprintf("export failed: %v", err), IsError: true}
		return "", err
	}
	m.logger.Info("backup exported", slog.String("path", path), slog.Int("counters", len(m.Counters)))
	m.Status = StatusBar{Text: fmt.Sprintf("exported %d counters to %s", len(m.Counters), path)}
	return path, nil
}

// importBackup merges the counters in path ahead of the current list.
func (m *Model) importBackup(path string) (int, error) {
	imported, err := backup.ImportFile(path, m.clock.Now().Location())
	if err != nil {
		m.logError("import backup", err, slog.String("path", path))
		m.Status = StatusBar{Text: fmt.Sprintf("import failed: %v", err), IsError: true}
		return 0, err
	}
	m.Counters = model.Merge(imported, m.Counters)
	m.scheduleMilestones(imported...)
	m.ensureSelection()
	m.logger.Info("backup imported", slog.String("path", path), slog.Int("counters", len(imported)))
	m.Status = StatusBar{Text: fmt.Sprintf("imported %d counters", len(imported))}
	return len(imported), m.persist()
}
