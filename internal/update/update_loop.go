package update

import (
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/scheduler"
	"github.com/sandeepkv93/chronotrack/internal/views"
)

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.tickInterval)}
	if m.Scheduler != nil {
		cmds = append(cmds, waitForMilestoneCmd(m.Scheduler.C()))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handle(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) handle(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case tea.WindowSizeMsg:
		m.counterList.SetWidth(min(typed.Width/2-4, 72))
		return m, nil
	case TickMsg:
		m.Now = m.clock.Now()
		return m, tickCmd(m.tickInterval)
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
			m.ensureSelection()
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	case MilestoneDueMsg:
		m.onMilestone(typed.Event)
		if m.Scheduler != nil {
			return m, waitForMilestoneCmd(m.Scheduler.C())
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Form.Active {
		return m.handleFormKey(msg), nil
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.PendingDelete != "" {
		return m.handleConfirmKey(msg), nil
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active"}
		return m, nil
	case m.Keys.Home:
		m.CurrentView = ViewHome
		m.ensureSelection()
		return m, nil
	case m.Keys.List:
		m.CurrentView = ViewList
		m.ensureSelection()
		return m, nil
	case m.Keys.New:
		m.openForm()
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		if m.HelpVisible {
			m.Status = StatusBar{Text: "help shown"}
		} else {
			m.Status = StatusBar{Text: "help hidden"}
		}
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	case "j", "down":
		m.moveSelection(1)
	case "k", "up":
		m.moveSelection(-1)
	case "J", "shift+down":
		m.reorderSelected(1)
	case "K", "shift+up":
		m.reorderSelected(-1)
	case "enter":
		if m.CurrentView == ViewHome && m.SelectedID != "" {
			m.CurrentView = ViewList
		}
	case "f":
		m.cycleSelectedFormat()
	case "w":
		m.toggleSelectedWidget()
	case "d", "delete":
		if c, ok := m.selectedCounter(); ok {
			m.PendingDelete = c.ID
			m.Status = StatusBar{Text: fmt.Sprintf("delete %q? press y to confirm", c.Name)}
		}
	case "e":
		_, _ = m.exportBackup("")
	}
	return m, nil
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) Model {
	id := m.PendingDelete
	m.PendingDelete = ""
	switch msg.String() {
	case "y", "Y":
		_ = m.deleteCounter(id)
	default:
		m.Status = StatusBar{Text: "delete cancelled"}
	}
	return m
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewHome:
		leftPane = m.renderHomeView()
	case ViewList:
		leftPane = m.renderListView()
		rightPane = m.renderDetailsPane()
	}
	if m.Form.Active {
		rightPane = m.renderForm()
	}
	rightPane = joinNonEmpty(rightPane, m.renderCommandPalette(), m.renderHelpIfVisible())

	notificationView := joinNonEmpty(
		views.RenderConfirm(m.pendingDeletePrompt()),
		m.renderNotificationsView(),
	)

	selected := "-"
	if c, ok := m.selectedCounter(); ok {
		selected = c.Name
	}
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("chronotrack | view: %s | counters: %d | selected: %s", m.CurrentView, len(m.Counters), selected),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: notificationView,
		Footer: fmt.Sprintf("keys: %s home | %s list | %s new | j/k move | J/K reorder | f format | w widget | d delete | e export | / cmd | %s help | %s quit",
			m.Keys.Home, m.Keys.List, m.Keys.New, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewHome, ViewList:
		return true
	default:
		return false
	}
}

// visibleCounters is what the cursor walks: pinned widgets on Home, every
// counter on List.
func (m Model) visibleCounters() []model.Counter {
	if m.CurrentView == ViewHome {
		return model.Widgets(m.Counters)
	}
	return m.Counters
}

func (m Model) selectedCounter() (model.Counter, bool) {
	visible := m.visibleCounters()
	idx := model.IndexOf(visible, m.SelectedID)
	if idx < 0 {
		return model.Counter{}, false
	}
	return visible[idx], true
}

// ensureSelection keeps SelectedID on a visible counter.
func (m *Model) ensureSelection() {
	visible := m.visibleCounters()
	if model.IndexOf(visible, m.SelectedID) >= 0 {
		return
	}
	if len(visible) == 0 {
		if m.CurrentView == ViewList {
			m.SelectedID = ""
		}
		return
	}
	m.SelectedID = visible[0].ID
}

func (m *Model) moveSelection(delta int) {
	visible := m.visibleCounters()
	if len(visible) == 0 {
		return
	}
	idx := model.IndexOf(visible, m.SelectedID)
	idx = max(0, min(len(visible)-1, idx+delta))
	m.SelectedID = visible[idx].ID
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg{At: t} })
}

func waitForMilestoneCmd(ch <-chan scheduler.MilestoneEvent) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return MilestoneDueMsg{Event: ev}
	}
}

func (m *Model) logError(msg string, err error, attrs ...any) {
	m.LastError = err
	m.logger.Error(msg, append(attrs, slog.Any("error", err))...)
}
