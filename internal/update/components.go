package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/views"
)

const detailTimeLayout = "Mon, 02 Jan 2006 15:04"

func (m *Model) initBubbleComponents() {
	m.counterList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 14)
	m.counterList.Title = "Counters"
	m.counterList.SetShowHelp(false)
	m.counterList.SetShowStatusBar(false)
	m.counterList.SetFilteringEnabled(false)

	m.nameInput = textinput.New()
	m.nameInput.Placeholder = "What are you tracking?"
	m.nameInput.CharLimit = 80
	m.nameInput.Width = 36

	m.startInput = textinput.New()
	m.startInput.Placeholder = "2006-01-02 15:04"
	m.startInput.CharLimit = 40
	m.startInput.Width = 36

	m.backgroundInput = textinput.New()
	m.backgroundInput.Placeholder = "image URL (optional)"
	m.backgroundInput.CharLimit = 512
	m.backgroundInput.Width = 36

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
	m.milestoneProgress = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	m.detailViewport = viewport.New(54, 10)
}

func (m *Model) syncBubbleData() {
	m.ensureSelection()

	items := make([]list.Item, 0, len(m.Counters))
	for _, c := range m.Counters {
		title := c.Name
		if c.IsWidget {
			title = "★ " + title
		}
		items = append(items, listItem{
			title:       title,
			description: fmt.Sprintf("%s · %s · %s", c.Elapsed(m.Now), c.Color, c.DisplayFormat),
		})
	}
	m.counterList.SetItems(items)
	if idx := model.IndexOf(m.Counters, m.SelectedID); idx >= 0 {
		m.counterList.Select(idx)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	md := "_No counter selected_"
	if c, ok := m.selectedCounter(); ok {
		md = counterMarkdown(c, m.Now)
	}
	if md != m.detailMarkdown {
		m.detailMarkdown = md
		m.detailViewport.SetContent(views.RenderMarkdown(md))
	}
}

// counterMarkdown describes the slow-moving facts of c so the rendered
// details only change when a day or a setting changes.
func counterMarkdown(c model.Counter, now time.Time) string {
	b := elapsed.Compute(c.StartAt, now)
	widget := "no"
	if c.IsWidget {
		widget = "yes"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", c.Name)
	fmt.Fprintf(&sb, "- **Started:** %s\n", c.StartAt.In(now.Location()).Format(detailTimeLayout))
	fmt.Fprintf(&sb, "- **Total:** %d days (%d hours)\n", b.TotalDays, b.TotalHours)
	fmt.Fprintf(&sb, "- **Calendar:** %d years (%d months in total)\n", b.Years, b.Months)
	fmt.Fprintf(&sb, "- **Format:** `%s`\n", c.DisplayFormat)
	fmt.Fprintf(&sb, "- **Color:** %s\n", c.Color)
	fmt.Fprintf(&sb, "- **Widget:** %s\n", widget)
	if c.BackgroundImage != "" {
		fmt.Fprintf(&sb, "- **Background:** %s\n", c.BackgroundImage)
	}
	return sb.String()
}

// monthProgress is the fraction of the current month-long stretch between
// anniversaries that has already elapsed.
func monthProgress(c model.Counter, now time.Time) float64 {
	last, next := elapsed.Anniversaries(c.StartAt, now, elapsed.UnitMonth)
	span := next.Sub(last)
	if span <= 0 {
		return 0
	}
	pct := float64(now.Sub(last)) / float64(span)
	if pct < 0 {
		return 0
	}
	if pct > 1 {
		return 1
	}
	return pct
}
