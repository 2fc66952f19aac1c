package update

import (
	"strings"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/views"
)

const notificationLimit = 40

func (m Model) renderHomeView() string {
	widgets := model.Widgets(m.Counters)
	tiles := make([]views.WidgetTileData, 0, len(widgets))
	for _, c := range widgets {
		tiles = append(tiles, views.WidgetTileData{
			ID:       c.ID,
			Name:     c.Name,
			Elapsed:  c.Elapsed(m.Now),
			Color:    string(c.Color),
			HasImage: c.BackgroundImage != "",
			Selected: c.ID == m.SelectedID,
		})
	}
	return views.RenderWidgetGrid(tiles)
}

func (m Model) renderListView() string {
	return views.RenderCounterList(views.CounterListData{
		ListView: m.counterList.View(),
		Empty:    len(m.Counters) == 0,
	})
}

func (m Model) renderDetailsPane() string {
	c, ok := m.selectedCounter()
	if !ok {
		return views.RenderDetailsPane(views.DetailsData{})
	}
	loc := m.Now.Location()
	return views.RenderDetailsPane(views.DetailsData{
		Name:         c.Name,
		Color:        string(c.Color),
		MarkdownView: m.detailViewport.View(),
		ProgressView: m.milestoneProgress.ViewAs(monthProgress(c, m.Now)),
		NextMonthly:  elapsed.NextAnniversary(c.StartAt, m.Now, elapsed.UnitMonth).In(loc).Format(detailTimeLayout),
		NextYearly:   elapsed.NextAnniversary(c.StartAt, m.Now, elapsed.UnitYear).In(loc).Format(detailTimeLayout),
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.commandInput.View())
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, n.Body)
}

func (m Model) pendingDeletePrompt() string {
	if m.PendingDelete == "" {
		return ""
	}
	c, ok := model.Find(m.Counters, m.PendingDelete)
	if !ok {
		return ""
	}
	return "delete " + c.Name + "?"
}

func (m *Model) notify(title, body, level string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	n := Notification{
		Title: title,
		Body:  body,
		Level: level,
		At:    m.clock.Now(),
	}
	m.Notifications = append(m.Notifications, n)
	if len(m.Notifications) > notificationLimit {
		m.Notifications = m.Notifications[len(m.Notifications)-notificationLimit:]
	}
	if m.DesktopEnabled && m.notifier != nil {
		if err := m.notifier.Send(n); err != nil {
			m.logger.Warn("desktop notification failed", "error", err)
		}
	}
}
