package model

import (
	"time"

	"github.com/google/uuid"
)

// Clock provides the current time so that tests can pin it.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// IDGenerator yields identifiers for new counters.
type IDGenerator interface {
	NewID() string
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

var (
	_ Clock       = RealClock{}
	_ IDGenerator = UUIDGenerator{}
)
