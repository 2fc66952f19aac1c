package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/elapsed"
	"github.com/sandeepkv93/chronotrack/internal/model"
)

func TestJSONFileStoreMissingFileLoadsEmpty(t *testing.T) {
	store := NewJSONFileStore(filepath.Join(t.TempDir(), "none.json"))
	got, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty list, got %v", got)
	}
}

func TestJSONFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "counters.json")
	store := NewJSONFileStore(path)
	ctx := context.Background()

	in := []model.Counter{sampleCounter(t, "b", "Beta"), sampleCounter(t, "a", "Alpha")}
	in[0].DisplayFormat = elapsed.FormatTotalHours
	in[0].IsWidget = true
	if err := store.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected temp file to be renamed away, stat err = %v", err)
	}

	out, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "a" {
		t.Fatalf("unexpected order: %v", counterIDs(out))
	}
	if out[0].DisplayFormat != elapsed.FormatTotalHours || !out[0].IsWidget {
		t.Fatalf("fields lost in round trip: %#v", out[0])
	}
	if !out[0].StartAt.Equal(in[0].StartAt) {
		t.Fatalf("start changed: %s vs %s", out[0].StartAt, in[0].StartAt)
	}
}

func TestJSONFileStoreWritesFlatRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counters.json")
	store := NewJSONFileStore(path)
	if err := store.Save(context.Background(), []model.Counter{sampleCounter(t, "a", "Alpha")}); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal(raw, &records); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "name", "startDate", "createdAt", "color", "displayFormat", "isWidget"} {
		if _, ok := records[0][key]; !ok {
			t.Fatalf("missing key %q in %s", key, raw)
		}
	}
	if _, ok := records[0]["backgroundImage"]; ok {
		t.Fatalf("empty background image should be omitted: %s", raw)
	}
}

func TestJSONFileStoreRejectsUnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counters.json")
	payload := `[{"id":"x","name":"X","startDate":"2024-06-01T10:00","createdAt":"2024-06-01T10:00:00Z","color":"blue","displayFormat":"weeks","isWidget":false}]`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := NewJSONFileStore(path).Load(context.Background())
	if !errors.Is(err, elapsed.ErrInvalidDisplayFormat) {
		t.Fatalf("expected ErrInvalidDisplayFormat, got %v", err)
	}
}

func TestRecordAcceptsLocalDatetime(t *testing.T) {
	r := CounterRecord{
		ID:            "x",
		Name:          "Local",
		StartDate:     "2024-06-01T10:00",
		Color:         "green",
		DisplayFormat: "days",
	}
	loc := time.FixedZone("CEST", 2*60*60)
	c, err := r.Counter(loc)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC); !c.StartAt.Equal(want) {
		t.Fatalf("start = %s, want %s", c.StartAt, want)
	}
	if !c.CreatedAt.Equal(c.StartAt) {
		t.Fatalf("missing createdAt should default to start, got %s", c.CreatedAt)
	}
	if !strings.HasSuffix(RecordFromCounter(c).StartDate, "Z") {
		t.Fatalf("records should be written in UTC: %+v", RecordFromCounter(c))
	}
}

func TestRecordReadsDateOnlyAsUTC(t *testing.T) {
	r := CounterRecord{
		ID:            "d",
		Name:          "Date only",
		StartDate:     "2024-06-01",
		CreatedAt:     "2024-06-02",
		Color:         "blue",
		DisplayFormat: "full",
	}
	c, err := r.Counter(time.FixedZone("UTC-7", -7*60*60))
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if want := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC); !c.StartAt.Equal(want) {
		t.Fatalf("start = %s, want %s", c.StartAt, want)
	}
	if want := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC); !c.CreatedAt.Equal(want) {
		t.Fatalf("createdAt = %s, want %s", c.CreatedAt, want)
	}
}

func TestCountersFromRecordsRejectsRepeatedID(t *testing.T) {
	r := CounterRecord{ID: "a", Name: "A", StartDate: "2024-06-01T10:00:00Z", Color: "blue", DisplayFormat: "full"}
	if _, err := CountersFromRecords([]CounterRecord{r, r}, time.UTC); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestJSONFileStoreRejectsRepeatedID(t *testing.T) {
	store := NewJSONFileStore(filepath.Join(t.TempDir(), "counters.json"))
	c := model.Counter{
		ID:            "a",
		Name:          "A",
		StartAt:       time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		CreatedAt:     time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC),
		Color:         model.ColorBlue,
		DisplayFormat: elapsed.FormatFull,
	}
	if err := store.Save(context.Background(), []model.Counter{c, c}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
}

func TestOpenUnknownDriver(t *testing.T) {
	if _, _, err := Open("postgres", "x"); !errors.Is(err, ErrUnknownDriver) {
		t.Fatalf("expected ErrUnknownDriver, got %v", err)
	}
}
