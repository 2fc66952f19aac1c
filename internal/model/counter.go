package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
)

var (
	ErrInvalidColor = errors.New("model: invalid counter color")
	ErrNameRequired = errors.New("model: counter name is required")
)

type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorPink   Color = "pink"
)

var colors = []Color{ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorOrange, ColorPink}

func Colors() []Color {
	out := make([]Color, len(colors))
	copy(out, colors)
	return out
}

func (c Color) IsValid() bool {
	switch c {
	case ColorBlue, ColorGreen, ColorRed, ColorPurple, ColorOrange, ColorPink:
		return true
	default:
		return false
	}
}

// Next returns the color after c in palette order.
func (c Color) Next() Color {
	for i, v := range colors {
		if v == c {
			return colors[(i+1)%len(colors)]
		}
	}
	return ColorBlue
}

// Prev returns the color before c in palette order.
func (c Color) Prev() Color {
	for i, v := range colors {
		if v == c {
			return colors[(i+len(colors)-1)%len(colors)]
		}
	}
	return ColorBlue
}

func ParseColor(raw string) (Color, error) {
	c := Color(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" {
		return ColorBlue, nil
	}
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}
	return c, nil
}

// Counter is a named anchor in time. Only StartAt and DisplayFormat take part
// in elapsed-time rendering.
type Counter struct {
	ID              string
	Name            string
	StartAt         time.Time
	CreatedAt       time.Time
	Color           Color
	BackgroundImage string
	DisplayFormat   elapsed.DisplayFormat
	IsWidget        bool
}

func (c Counter) Validate() error {
	if strings.TrimSpace(c.ID) == "" {
		return errors.New("model: counter id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return ErrNameRequired
	}
	if c.StartAt.IsZero() {
		return errors.New("model: counter start is required")
	}
	if c.CreatedAt.IsZero() {
		return errors.New("model: counter created_at is required")
	}
	if !c.Color.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidColor, c.Color)
	}
	if !c.DisplayFormat.IsValid() {
		return fmt.Errorf("%w: %q", elapsed.ErrInvalidDisplayFormat, c.DisplayFormat)
	}
	return nil
}

// Elapsed renders the time since StartAt using the counter's display format.
func (c Counter) Elapsed(now time.Time) string {
	return elapsed.Display(c.StartAt, now, c.DisplayFormat)
}

// NewCounterInput carries the fields a user chooses when creating a counter.
type NewCounterInput struct {
	Name            string
	StartAt         time.Time
	Color           Color
	DisplayFormat   elapsed.DisplayFormat
	IsWidget        bool
	BackgroundImage string
}

// NewCounter builds a validated counter with a fresh id and CreatedAt taken
// from clock. Zero-valued color and format fall back to blue and full.
func NewCounter(in NewCounterInput, clock Clock, ids IDGenerator) (Counter, error) {
	now := clock.Now()
	c := Counter{
		ID:              ids.NewID(),
		Name:            strings.TrimSpace(in.Name),
		StartAt:         in.StartAt,
		CreatedAt:       now,
		Color:           in.Color,
		BackgroundImage: strings.TrimSpace(in.BackgroundImage),
		DisplayFormat:   in.DisplayFormat,
		IsWidget:        in.IsWidget,
	}
	if c.StartAt.IsZero() {
		c.StartAt = now
	}
	if c.Color == "" {
		c.Color = ColorBlue
	}
	if c.DisplayFormat == "" {
		c.DisplayFormat = elapsed.FormatFull
	}
	if err := c.Validate(); err != nil {
		return Counter{}, err
	}
	return c, nil
}
