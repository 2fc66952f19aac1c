package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/chronotrack/internal/commands"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	m.closePalette()

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Add: func(a commands.AddArgs) (commands.Result, error) {
			in := model.NewCounterInput{Name: a.Name, Color: model.ColorBlue}
			if a.Start != "" {
				start, err := model.ParseInstant(a.Start, m.clock.Now().Location())
				if err != nil {
					return commands.Result{}, invalidArgument(err)
				}
				in.StartAt = start
			}
			c, err := model.NewCounter(in, m.clock, m.ids)
			if err != nil {
				return commands.Result{}, invalidArgument(err)
			}
			if err := m.addCounter(c); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("added counter: %s", c.Name)}, nil
		},
		Format: func(a commands.FormatArgs) (commands.Result, error) {
			c, err := commands.Resolve(m.Counters, a.Target, m.SelectedID)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.setFormat(c.ID, a.Format); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("%s shows %s", c.Name, a.Format)}, nil
		},
		Pin: func(a commands.PinArgs) (commands.Result, error) {
			c, err := commands.Resolve(m.Counters, a.Target, m.SelectedID)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.setPinned(c.ID, a.Pinned); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Rename: func(a commands.RenameArgs) (commands.Result, error) {
			c, err := commands.Resolve(m.Counters, a.Target, m.SelectedID)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.renameCounter(c.ID, a.Name); err != nil {
				return commands.Result{}, invalidArgument(err)
			}
			return commands.Result{Message: fmt.Sprintf("renamed %s to %s", c.Name, strings.TrimSpace(a.Name))}, nil
		},
		Delete: func(a commands.DeleteArgs) (commands.Result, error) {
			c, err := commands.Resolve(m.Counters, a.Target, m.SelectedID)
			if err != nil {
				return commands.Result{}, err
			}
			if err := m.deleteCounter(c.ID); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("deleted counter: %s", c.Name)}, nil
		},
		Export: func(a commands.ExportArgs) (commands.Result, error) {
			path, err := m.exportBackup(a.Path)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("exported %d counters to %s", len(m.Counters), path)}, nil
		},
		Import: func(a commands.ImportArgs) (commands.Result, error) {
			n, err := m.importBackup(a.Path)
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("imported %d counters", n)}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
		return m
	}
	m.Status = StatusBar{Text: res.Message}
	m.notify("Command", res.Message, "info")
	return m
}

func invalidArgument(err error) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
}
