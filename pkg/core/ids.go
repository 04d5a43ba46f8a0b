package core

import (
	"fmt"
	"time"
)

// IDGenerator assigns identities to new notes.
type IDGenerator interface {
	Next() int64
	Strategy() string
}

const (
	StrategyMonotonic = "monotonic"
	StrategyTimestamp = "timestamp"
)

// Clock returns the current time. time.Now satisfies it.
type Clock func() time.Time

// MonotonicIDs derives IDs from the wall clock in milliseconds and bumps to last+1
// whenever the clock has not moved past the previous ID.
type MonotonicIDs struct {
	now  Clock
	last int64
}

// NewMonotonicIDs creates a MonotonicIDs generator. A nil clock means time.Now.
func NewMonotonicIDs(now Clock) *MonotonicIDs {
	if now == nil {
		now = time.Now
	}
	return &MonotonicIDs{now: now}
}

// Next returns an ID strictly greater than every ID returned before.
func (g *MonotonicIDs) Next() int64 {
	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

// Strategy implements IDGenerator.
func (g *MonotonicIDs) Strategy() string { return StrategyMonotonic }

// TimestampIDs returns the raw wall clock in milliseconds.
// Two notes created within the same millisecond get the same ID.
type TimestampIDs struct {
	now Clock
}

// NewTimestampIDs creates a TimestampIDs generator. A nil clock means time.Now.
func NewTimestampIDs(now Clock) *TimestampIDs {
	if now == nil {
		now = time.Now
	}
	return &TimestampIDs{now: now}
}

// Next implements IDGenerator.
func (g *TimestampIDs) Next() int64 {
	return g.now().UnixMilli()
}

// Strategy implements IDGenerator.
func (g *TimestampIDs) Strategy() string { return StrategyTimestamp }

// NewIDGenerator builds a generator by strategy name.
func NewIDGenerator(strategy string, now Clock) (IDGenerator, error) {
	switch strategy {
	case "", StrategyMonotonic:
		return NewMonotonicIDs(now), nil
	case StrategyTimestamp:
		return NewTimestampIDs(now), nil
	default:
		return nil, fmt.Errorf("unknown id strategy: %s", strategy)
	}
}
