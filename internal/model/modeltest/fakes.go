// Package modeltest provides test doubles for the model package.
package modeltest

import (
	"fmt"
	"sync"
	"time"

	"github.com/sandeepkv93/chronotrack/internal/model"
)

// FakeClock is a settable clock for tests.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
}

func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{current: t}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = c.current.Add(d)
}

func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = t
}

// SequentialIDs hands out "counter-1", "counter-2", ...
type SequentialIDs struct {
	mu   sync.Mutex
	next int
}

func (g *SequentialIDs) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("counter-%d", g.next)
}

var (
	_ model.Clock       = (*FakeClock)(nil)
	_ model.IDGenerator = (*SequentialIDs)(nil)
)
