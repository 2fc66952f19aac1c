package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette of tile colors keyed by counter color name.
var counterColors = map[string]lipgloss.Color{
	"blue":   lipgloss.Color("#3B82F6"),
	"green":  lipgloss.Color("#22C55E"),
	"red":    lipgloss.Color("#EF4444"),
	"purple": lipgloss.Color("#A855F7"),
	"orange": lipgloss.Color("#F97316"),
	"pink":   lipgloss.Color("#EC4899"),
}

func ColorFor(name string) lipgloss.Color {
	if c, ok := counterColors[name]; ok {
		return c
	}
	return counterColors["blue"]
}

const (
	tileWidth   = 24
	tilesPerRow = 2
)

type WidgetTileData struct {
	ID       string
	Name     string
	Elapsed  string
	Color    string
	HasImage bool
	Selected bool
}

func RenderWidgetGrid(tiles []WidgetTileData) string {
	var b strings.Builder
	b.WriteString("home:\n")
	if len(tiles) == 0 {
		b.WriteString("no widgets pinned yet\n")
		b.WriteString("press [2] for the list and [w] to pin a counter")
		return b.String()
	}

	rows := make([]string, 0, (len(tiles)+tilesPerRow-1)/tilesPerRow)
	for start := 0; start < len(tiles); start += tilesPerRow {
		end := min(start+tilesPerRow, len(tiles))
		rendered := make([]string, 0, tilesPerRow)
		for _, tile := range tiles[start:end] {
			rendered = append(rendered, RenderWidgetTile(tile))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	return b.String()
}

func RenderWidgetTile(tile WidgetTileData) string {
	style := lipgloss.NewStyle().
		Width(tileWidth).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorFor(tile.Color)).
		Foreground(lipgloss.Color("15")).
		Background(ColorFor(tile.Color))
	if tile.Selected {
		style = style.BorderStyle(lipgloss.DoubleBorder()).Bold(true)
	}

	name := strings.ToUpper(tile.Name)
	if tile.HasImage {
		name = "▣ " + name
	}
	body := strings.Join([]string{
		truncate(name, tileWidth-2),
		"",
		tile.Elapsed,
		"TIME ELAPSED",
	}, "\n")
	return style.Render(body)
}

type CounterListData struct {
	ListView string
	Empty    bool
}

func RenderCounterList(data CounterListData) string {
	var b strings.Builder
	b.WriteString("counters:\n")
	b.WriteString("actions: [n]new [f]format [w]widget [J/K]reorder [d]delete [e]export\n")
	if data.Empty {
		b.WriteString("no counters yet, press [n] to start one")
		return b.String()
	}
	b.WriteString(data.ListView)
	return strings.TrimSpace(b.String())
}

type DetailsData struct {
	Name         string
	Color        string
	MarkdownView string
	ProgressView string
	NextMonthly  string
	NextYearly   string
}

func RenderDetailsPane(data DetailsData) string {
	if strings.TrimSpace(data.Name) == "" {
		return "details:\n(no selection)"
	}
	title := lipgloss.NewStyle().Bold(true).Foreground(ColorFor(data.Color)).Render(data.Name)
	return fmt.Sprintf("details: %s\n%s\n\nnext month: %s\n%s\nnext year: %s",
		title,
		data.MarkdownView,
		data.NextMonthly,
		data.ProgressView,
		data.NextYearly,
	)
}

type FormData struct {
	NameView       string
	StartView      string
	BackgroundView string
	Color          string
	Format         string
	IsWidget       bool
	Focused        int
	ErrorText      string
}

// Form field order, shared with the update package.
const (
	FieldName = iota
	FieldStart
	FieldColor
	FieldFormat
	FieldWidget
	FieldBackground
	FieldCount
)

func RenderForm(data FormData) string {
	widget := "no"
	if data.IsWidget {
		widget = "yes"
	}
	swatch := lipgloss.NewStyle().Foreground(ColorFor(data.Color)).Render("●")
	rows := []string{
		fmt.Sprintf("name:       %s", data.NameView),
		fmt.Sprintf("start:      %s", data.StartView),
		fmt.Sprintf("color:      < %s %s >", swatch, data.Color),
		fmt.Sprintf("format:     < %s >", data.Format),
		fmt.Sprintf("widget:     < %s >", widget),
		fmt.Sprintf("background: %s", data.BackgroundView),
	}

	var b strings.Builder
	b.WriteString("new counter:\n")
	b.WriteString("keys: [tab] field [left/right] change [enter] save [esc] cancel\n")
	for i, row := range rows {
		cursor := " "
		if i == data.Focused {
			cursor = ">"
		}
		b.WriteString(cursor + " " + row + "\n")
	}
	if data.ErrorText != "" {
		b.WriteString(errorStyle.Render("error: " + data.ErrorText))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderConfirm(prompt string) string {
	if prompt == "" {
		return ""
	}
	return errorStyle.Render(prompt + " [y/n]")
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help (%s):\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
