package clock

import "time"

// Clock abstracts the current time so checks against "now" stay testable.
// All times are UTC; stay boundaries are UTC midnights.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}

// MockClock is a fixed clock for tests.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t.UTC()}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

func (c *MockClock) Set(t time.Time) {
	c.current = t.UTC()
}

func (c *MockClock) Add(d time.Duration) {
	c.current = c.current.Add(d)
}
