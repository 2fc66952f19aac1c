package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

const (
	recordTimeLayout = time.RFC3339Nano
	recordDateLayout = "2006-01-02"
)

// CounterRecord is the flat on-disk shape of a counter shared by the JSON
// store and backup files.
type CounterRecord struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StartDate       string `json:"startDate"`
	CreatedAt       string `json:"createdAt"`
	Color           string `json:"color"`
	BackgroundImage string `json:"backgroundImage,omitempty"`
	DisplayFormat   string `json:"displayFormat"`
	IsWidget        bool   `json:"isWidget"`
}

type CounterListFilter struct {
	WidgetOnly bool
	Limit      int
	Offset     int
}

func RecordFromCounter(c model.Counter) CounterRecord {
	return CounterRecord{
		ID:              c.ID,
		Name:            c.Name,
		StartDate:       c.StartAt.UTC().Format(recordTimeLayout),
		CreatedAt:       c.CreatedAt.UTC().Format(recordTimeLayout),
		Color:           string(c.Color),
		BackgroundImage: c.BackgroundImage,
		DisplayFormat:   string(c.DisplayFormat),
		IsWidget:        c.IsWidget,
	}
}

// Counter converts a record back to a validated counter. Zone-less
// timestamps are read in loc, except date-only values, which are UTC midnight
// as in the browser app's backups. A missing createdAt falls back to the
// start.
func (r CounterRecord) Counter(loc *time.Location) (model.Counter, error) {
	start, err := parseRecordTime(r.StartDate, loc)
	if err != nil {
		return model.Counter{}, fmt.Errorf("counter %q: %w", r.ID, err)
	}
	created := start
	if r.CreatedAt != "" {
		created, err = parseRecordTime(r.CreatedAt, loc)
		if err != nil {
			return model.Counter{}, fmt.Errorf("counter %q: %w", r.ID, err)
		}
	}
	color, err := model.ParseColor(r.Color)
	if err != nil {
		return model.Counter{}, fmt.Errorf("counter %q: %w", r.ID, err)
	}
	format, err := elapsed.ParseDisplayFormat(r.DisplayFormat)
	if err != nil {
		return model.Counter{}, fmt.Errorf("counter %q: %w", r.ID, err)
	}
	out := model.Counter{
		ID:              r.ID,
		Name:            r.Name,
		StartAt:         start,
		CreatedAt:       created,
		Color:           color,
		BackgroundImage: r.BackgroundImage,
		DisplayFormat:   format,
		IsWidget:        r.IsWidget,
	}
	if err := out.Validate(); err != nil {
		return model.Counter{}, fmt.Errorf("counter %q: %w", r.ID, err)
	}
	return out, nil
}

func parseRecordTime(raw string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(recordDateLayout, strings.TrimSpace(raw)); err == nil {
		return t, nil
	}
	return model.ParseInstant(raw, loc)
}

func RecordsFromCounters(counters []model.Counter) []CounterRecord {
	out := make([]CounterRecord, 0, len(counters))
	for _, c := range counters {
		out = append(out, RecordFromCounter(c))
	}
	return out
}

// CountersFromRecords converts records in order. A repeated id fails the
// whole conversion with ErrDuplicateID.
func CountersFromRecords(records []CounterRecord, loc *time.Location) ([]model.Counter, error) {
	out := make([]model.Counter, 0, len(records))
	seen := make(map[string]bool, len(records))
	for _, r := range records {
		c, err := r.Counter(loc)
		if err != nil {
			return nil, err
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}
