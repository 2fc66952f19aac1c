package update

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/views"
)

func (m *Model) openForm() {
	m.Form = FormState{
		Active: true,
		Field:  views.FieldName,
		Color:  model.ColorBlue,
		Format: elapsed.FormatFull,
	}
	m.nameInput.SetValue("")
	m.startInput.SetValue(model.FormatInput(m.clock.Now()))
	m.startInput.CursorEnd()
	m.backgroundInput.SetValue("")
	m.focusFormField()
	m.Status = StatusBar{Text: "new counter"}
}

func (m *Model) closeForm() {
	m.Form.Active = false
	m.Form.Err = ""
	m.nameInput.Blur()
	m.startInput.Blur()
	m.backgroundInput.Blur()
}

func (m Model) handleFormKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closeForm()
		m.Status = StatusBar{Text: "new counter cancelled"}
		return m
	case "enter":
		return m.submitForm()
	case "tab", "down":
		m.Form.Field = (m.Form.Field + 1) % views.FieldCount
		m.focusFormField()
		return m
	case "shift+tab", "up":
		m.Form.Field = (m.Form.Field + views.FieldCount - 1) % views.FieldCount
		m.focusFormField()
		return m
	}

	switch m.Form.Field {
	case views.FieldColor:
		switch msg.String() {
		case "right", "l", " ":
			m.Form.Color = m.Form.Color.Next()
		case "left", "h":
			m.Form.Color = m.Form.Color.Prev()
		}
	case views.FieldFormat:
		switch msg.String() {
		case "right", "l", " ":
			m.Form.Format = m.Form.Format.Next()
		case "left", "h":
			m.Form.Format = prevFormat(m.Form.Format)
		}
	case views.FieldWidget:
		switch msg.String() {
		case "right", "left", "l", "h", " ":
			m.Form.IsWidget = !m.Form.IsWidget
		}
	default:
		if input := m.focusedInput(); input != nil {
			if msg.Type == tea.KeyRunes {
				input.SetValue(input.Value() + string(msg.Runes))
				input.CursorEnd()
				return m
			}
			var cmd tea.Cmd
			*input, cmd = input.Update(msg)
			_ = cmd
		}
	}
	return m
}

// submitForm creates the counter. Validation problems keep the form open.
func (m Model) submitForm() Model {
	in := model.NewCounterInput{
		Name:            m.nameInput.Value(),
		Color:           m.Form.Color,
		DisplayFormat:   m.Form.Format,
		IsWidget:        m.Form.IsWidget,
		BackgroundImage: m.backgroundInput.Value(),
	}
	if raw := strings.TrimSpace(m.startInput.Value()); raw != "" {
		start, err := model.ParseInstant(raw, m.clock.Now().Location())
		if err != nil {
			m.Form.Err = "start must look like 2006-01-02 15:04"
			m.Form.Field = views.FieldStart
			m.focusFormField()
			return m
		}
		in.StartAt = start
	}

	c, err := model.NewCounter(in, m.clock, m.ids)
	if err != nil {
		if errors.Is(err, model.ErrNameRequired) {
			m.Form.Err = "name is required"
			m.Form.Field = views.FieldName
			m.focusFormField()
		} else {
			m.Form.Err = err.Error()
		}
		return m
	}

	m.closeForm()
	_ = m.addCounter(c)
	return m
}

func (m *Model) focusedInput() *textinput.Model {
	switch m.Form.Field {
	case views.FieldName:
		return &m.nameInput
	case views.FieldStart:
		return &m.startInput
	case views.FieldBackground:
		return &m.backgroundInput
	default:
		return nil
	}
}

func (m *Model) focusFormField() {
	m.nameInput.Blur()
	m.startInput.Blur()
	m.backgroundInput.Blur()
	if input := m.focusedInput(); input != nil {
		input.Focus()
	}
}

func (m Model) renderForm() string {
	return views.RenderForm(views.FormData{
		NameView:       m.nameInput.View(),
		StartView:      m.startInput.View(),
		BackgroundView: m.backgroundInput.View(),
		Color:          string(m.Form.Color),
		Format:         string(m.Form.Format),
		IsWidget:       m.Form.IsWidget,
		Focused:        m.Form.Field,
		ErrorText:      m.Form.Err,
	})
}

func prevFormat(f elapsed.DisplayFormat) elapsed.DisplayFormat {
	formats := elapsed.DisplayFormats()
	for i, v := range formats {
		if v == f {
			return formats[(i+len(formats)-1)%len(formats)]
		}
	}
	return elapsed.FormatFull
}
