package clock

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reports wall time in the hotel's local zone.
type SystemClock struct {
	loc *time.Location
}

func NewSystemClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &SystemClock{loc: loc}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// LoadLocation falls back to a fixed offset when the zone database is missing
// (distroless images ship without tzdata).
func LoadLocation(name string, offsetSeconds int) *time.Location {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone(name, offsetSeconds)
}

type FixedClock struct {
	t time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{t: t}
}

func (c *FixedClock) Now() time.Time {
	return c.t
}
