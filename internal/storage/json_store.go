package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/model"
)

// JSONFileStore keeps the counter list as one JSON array of flat records.
type JSONFileStore struct {
	path string
	loc  *time.Location
	mu   sync.Mutex
}

func NewJSONFileStore(path string) *JSONFileStore {
	return &JSONFileStore{path: strings.TrimSpace(path), loc: time.Local}
}

func (s *JSONFileStore) Path() string { return s.path }

// Load returns an empty list when the file does not exist yet.
func (s *JSONFileStore) Load(ctx context.Context) ([]model.Counter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.Counter{}, nil
		}
		return nil, fmt.Errorf("read counters: %w", err)
	}
	if strings.TrimSpace(string(raw)) == "" {
		return []model.Counter{}, nil
	}
	var records []CounterRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode counters: %w", err)
	}
	return CountersFromRecords(records, s.loc)
}

// Save writes the list through a temp file and rename.
func (s *JSONFileStore) Save(ctx context.Context, counters []model.Counter) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := validateList(counters); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	payload, err := json.MarshalIndent(RecordsFromCounters(counters), "", "  ")
	if err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(payload, '\n'), 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

var _ Store = (*JSONFileStore)(nil)
