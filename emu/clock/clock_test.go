package clock

import (
	"errors"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

type fakeClock struct {
	now    time.Time
	sleeps []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.sleeps = append(c.sleeps, d)
	c.now = c.now.Add(d)
}

func TestNewSchedulerRejectsInvalidRates(t *testing.T) {
	tests := []struct {
		name    string
		ips     int
		timerHz int
	}{
		{"zero ips", 0, 60},
		{"negative ips", -1, 60},
		{"zero timer", 700, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScheduler(&fakeClock{}, tt.ips, tt.timerHz)
			assert.True(t, errors.Is(err, ErrInvalidRate))
		})
	}
}

func TestWaitInstruction(t *testing.T) {
	c := &fakeClock{now: time.Unix(100, 0)}
	s, err := NewScheduler(c, 100, DefaultTimerHz)
	assert.NoError(t, err)
	assert.Equal(t, 10*time.Millisecond, s.InstructionInterval())

	s.WaitInstruction()
	assert.Len(t, c.sleeps, 0)

	s.WaitInstruction()
	assert.Equal(t, []time.Duration{10 * time.Millisecond}, c.sleeps)

	// a slow cycle does not sleep again
	c.now = c.now.Add(15 * time.Millisecond)
	s.WaitInstruction()
	assert.Len(t, c.sleeps, 1)

	c.now = c.now.Add(4 * time.Millisecond)
	s.WaitInstruction()
	assert.Equal(t, []time.Duration{10 * time.Millisecond, 6 * time.Millisecond}, c.sleeps)
}

func TestTimerDue(t *testing.T) {
	c := &fakeClock{now: time.Unix(100, 0)}
	s, err := NewScheduler(c, DefaultIPS, 1)
	assert.NoError(t, err)
	assert.Equal(t, time.Second, s.TimerInterval())

	assert.False(t, s.TimerDue())

	c.now = c.now.Add(999 * time.Millisecond)
	assert.False(t, s.TimerDue())

	c.now = c.now.Add(time.Millisecond)
	assert.True(t, s.TimerDue())
	assert.False(t, s.TimerDue())

	// late callers catch up one tick per call
	c.now = c.now.Add(2 * time.Second)
	assert.True(t, s.TimerDue())
	assert.True(t, s.TimerDue())
	assert.False(t, s.TimerDue())
}

func TestTimerIndependentOfInstructionRate(t *testing.T) {
	c := &fakeClock{now: time.Unix(100, 0)}
	s, err := NewScheduler(c, 600, DefaultTimerHz)
	assert.NoError(t, err)

	ticks := 0
	for i := 0; i < 600; i++ {
		if s.TimerDue() {
			ticks++
		}
		s.WaitInstruction()
	}
	assert.True(t, ticks >= 58 && ticks <= 60)
}
