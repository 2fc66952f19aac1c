package update

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/scheduler"
	"github.com/sandeepkv93/chronotrack/internal/storage"
)

type View string

const (
	ViewHome View = "Home"
	ViewList View = "List"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home string
	List string
	New  string
	Help string
	Quit string
}

type Model struct {
	CurrentView    View
	Counters       []model.Counter
	SelectedID     string
	Now            time.Time
	Form           FormState
	Palette        CommandPaletteState
	PendingDelete  string
	HelpVisible    bool
	Notifications  []Notification
	DesktopEnabled bool
	notifier       DesktopNotifier
	Scheduler      *scheduler.Engine
	MilestoneLog   []scheduler.MilestoneEvent
	Status         StatusBar
	Keys           GlobalKeyMap
	Quitting       bool
	LastError      error

	store        storage.Store
	clock        model.Clock
	ids          model.IDGenerator
	logger       *slog.Logger
	tickInterval time.Duration
	exportDir    string

	// Bubble components used for rich TUI controls
	counterList       list.Model
	nameInput         textinput.Model
	startInput        textinput.Model
	backgroundInput   textinput.Model
	commandInput      textinput.Model
	helpModel         help.Model
	milestoneProgress progress.Model
	detailViewport    viewport.Model
	detailMarkdown    string
}

// FormState backs the new-counter form. Text fields live in the bubble
// inputs; choice fields are kept here.
type FormState struct {
	Active   bool
	Field    int
	Color    model.Color
	Format   elapsed.DisplayFormat
	IsWidget bool
	Err      string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type DesktopNotifier interface {
	Send(Notification) error
}

type NoopDesktopNotifier struct{}

func (NoopDesktopNotifier) Send(Notification) error { return nil }

type ExecDesktopNotifier struct{}

func (ExecDesktopNotifier) Send(n Notification) error {
	switch runtime.GOOS {
	case "linux":
		return exec.Command("notify-send", n.Title, n.Body).Run()
	case "darwin":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, escapeAppleScript(n.Body), escapeAppleScript(n.Title))
		return exec.Command("osascript", "-e", script).Run()
	default:
		return nil
	}
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// TickMsg refreshes Now so every visible counter re-renders.
type TickMsg struct {
	At time.Time
}

type MilestoneDueMsg struct {
	Event scheduler.MilestoneEvent
}

// NewModel builds the UI over opts, loading the stored counters and queueing
// their milestones.
func NewModel(opts Options) Model {
	opts = opts.withDefaults()
	m := Model{
		CurrentView:    ViewHome,
		DesktopEnabled: opts.DesktopNotifications,
		notifier:       opts.Notifier,
		Scheduler:      opts.Scheduler,
		store:          opts.Store,
		clock:          opts.Clock,
		ids:            opts.IDs,
		logger:         opts.Logger,
		tickInterval:   opts.TickInterval,
		exportDir:      opts.ExportDir,
		Keys: GlobalKeyMap{
			Home: "1",
			List: "2",
			New:  "n",
			Help: "?",
			Quit: "q",
		},
		Form: FormState{Color: model.ColorBlue, Format: elapsed.FormatFull},
	}
	m.Now = m.clock.Now()
	m.initBubbleComponents()

	if m.store != nil {
		counters, err := m.store.Load(context.Background())
		if err != nil {
			m.logger.Error("load counters", slog.Any("error", err))
			m.LastError = err
			m.Status = StatusBar{Text: fmt.Sprintf("load failed: %v", err), IsError: true}
		} else {
			m.Counters = counters
		}
	}
	if len(m.Counters) > 0 {
		m.SelectedID = m.Counters[0].ID
	}
	if len(model.Widgets(m.Counters)) == 0 && len(m.Counters) > 0 {
		m.CurrentView = ViewList
	}
	m.scheduleMilestones(m.Counters...)
	m.syncBubbleData()
	return m
}
