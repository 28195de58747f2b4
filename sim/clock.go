package sim

import "time"

// Clock supplies the wall-clock time used by every cooldown.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real monotonic clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. Tests use it to step through cooldowns.
type ManualClock struct {
	current time.Time
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time {
	return c.current
}

func (c *ManualClock) SetTime(t time.Time) {
	c.current = t
}

func (c *ManualClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// PausableClock is a base clock with paused stretches cut out, so cooldowns
// and the wave timer hold still while the game is paused.
type PausableClock struct {
	base     Clock
	offset   time.Duration
	pausedAt time.Time
}

func NewPausableClock(base Clock) *PausableClock {
	return &PausableClock{base: base}
}

func (c *PausableClock) Now() time.Time {
	if !c.pausedAt.IsZero() {
		return c.pausedAt.Add(-c.offset)
	}
	return c.base.Now().Add(-c.offset)
}

func (c *PausableClock) Paused() bool { return !c.pausedAt.IsZero() }

func (c *PausableClock) Pause() {
	if c.pausedAt.IsZero() {
		c.pausedAt = c.base.Now()
	}
}

func (c *PausableClock) Resume() {
	if c.pausedAt.IsZero() {
		return
	}
	c.offset += c.base.Now().Sub(c.pausedAt)
	c.pausedAt = time.Time{}
}
