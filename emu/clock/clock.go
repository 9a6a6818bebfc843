// Package clock paces the interpreter. It keeps two independent clocks on one
// thread: the instruction clock and the timer clock.
package clock

import (
	"errors"
	"fmt"
	"time"
)

const (
	DefaultIPS     = 700
	DefaultTimerHz = 60
)

// ErrInvalidRate is returned for a clock rate that is not positive.
var ErrInvalidRate = errors.New("invalid clock rate")

// Clock is the time source of a Scheduler.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// System is the wall clock.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) Sleep(d time.Duration) { time.Sleep(d) }

// Scheduler decides when the next instruction may run and when the timers
// tick.
type Scheduler struct {
	clock Clock

	instructionInterval time.Duration
	timerInterval       time.Duration

	lastInstruction time.Time
	lastTimer       time.Time
}

// NewScheduler returns a scheduler running ips instructions and timerHz timer
// ticks per second. Both clocks start at the current time.
func NewScheduler(c Clock, ips, timerHz int) (*Scheduler, error) {
	if ips <= 0 {
		return nil, fmt.Errorf("%w: %d instructions per second", ErrInvalidRate, ips)
	}
	if timerHz <= 0 {
		return nil, fmt.Errorf("%w: %d Hz timer", ErrInvalidRate, timerHz)
	}

	now := c.Now()
	return &Scheduler{
		clock:               c,
		instructionInterval: time.Second / time.Duration(ips),
		timerInterval:       time.Second / time.Duration(timerHz),
		lastInstruction:     now.Add(-time.Second / time.Duration(ips)),
		lastTimer:           now,
	}, nil
}

// InstructionInterval returns the time between two instructions.
func (s *Scheduler) InstructionInterval() time.Duration {
	return s.instructionInterval
}

// TimerInterval returns the time between two timer ticks.
func (s *Scheduler) TimerInterval() time.Duration {
	return s.timerInterval
}

// WaitInstruction sleeps until one instruction interval has passed since the
// previous call returned, then marks the start of a new cycle.
func (s *Scheduler) WaitInstruction() {
	next := s.lastInstruction.Add(s.instructionInterval)
	if d := next.Sub(s.clock.Now()); d > 0 {
		s.clock.Sleep(d)
	}
	s.lastInstruction = s.clock.Now()
}

// TimerDue reports whether a timer tick is due and consumes it. At most one
// tick is consumed per call; a late caller catches up over later calls.
func (s *Scheduler) TimerDue() bool {
	if s.clock.Now().Sub(s.lastTimer) < s.timerInterval {
		return false
	}
	s.lastTimer = s.lastTimer.Add(s.timerInterval)
	return true
}
