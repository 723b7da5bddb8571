package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/cirrosis/internal/common/clock Clock
type Clock interface {
	Now() time.Time
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct {
	// Location is the zone calendar dates are read in; UTC when nil
	Location *time.Location
}

// New returns a system clock reading calendar dates in loc
func New(loc *time.Location) *DefaultClock {
	return &DefaultClock{Location: loc}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// Today returns the calendar date of c.Now() as midnight UTC
func Today(c Clock) time.Time {
	now := c.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
