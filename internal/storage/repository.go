package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandeepkv93/chronotrack/internal/model"
)

var (
	ErrNotFound    = errors.New("storage: not found")
	ErrDuplicateID = errors.New("storage: duplicate counter id")
)

// validateList checks every counter and rejects a list that repeats an id.
func validateList(counters []model.Counter) error {
	seen := make(map[string]bool, len(counters))
	for _, c := range counters {
		if err := c.Validate(); err != nil {
			return err
		}
		if seen[c.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateID, c.ID)
		}
		seen[c.ID] = true
	}
	return nil
}

// Store is the persistence port the application is built against: the whole
// ordered counter list is loaded once and saved after each change.
type Store interface {
	Load(ctx context.Context) ([]model.Counter, error)
	Save(ctx context.Context, counters []model.Counter) error
}

// Repository adds row-level access for callers that touch one counter.
type Repository interface {
	Store

	CreateCounter(ctx context.Context, in model.Counter) error
	GetCounter(ctx context.Context, id string) (model.Counter, error)
	UpdateCounter(ctx context.Context, in model.Counter) error
	DeleteCounter(ctx context.Context, id string) error
	ListCounters(ctx context.Context, filter CounterListFilter) ([]model.Counter, error)
}
