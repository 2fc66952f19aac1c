// Package backup reads and writes counter backups as a JSON array of flat
// records, the same shape the JSON store keeps on disk.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/model"
	"github.com/sandeepkv93/chronotrack/internal/storage"
)

var ErrNotAList = errors.New("backup: file is not a list of counters")

const fileNameLayout = "2006-01-02"

// FileName is the default export name for a backup taken at now.
func FileName(now time.Time) string {
	return "chronotrack_backup_" + now.Format(fileNameLayout) + ".json"
}

// Export writes counters to w as an indented JSON array.
func Export(w io.Writer, counters []model.Counter) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(storage.RecordsFromCounters(counters)); err != nil {
		return fmt.Errorf("encode backup: %w", err)
	}
	return nil
}

// Import decodes a backup. Zone-less start dates are read in loc. Any record
// that fails validation fails the whole import.
func Import(r io.Reader, loc *time.Location) ([]model.Counter, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotAList
	}
	var records []storage.CounterRecord
	if err := json.Unmarshal(trimmed, &records); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	if loc == nil {
		loc = time.Local
	}
	return storage.CountersFromRecords(records, loc)
}

// ExportFile writes a backup to path, creating parent directories.
func ExportFile(path string, counters []model.Counter) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	if err := Export(f, counters); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func ImportFile(path string, loc *time.Location) ([]model.Counter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()
	return Import(f, loc)
}
