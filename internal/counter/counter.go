// Package counter ramps a set of displayed numbers from zero to fixed
// targets in discrete steps.
package counter

import (
	"context"
	"errors"
	"time"
)

// Defaults used by the landing page hero stats.
const (
	DefaultDelay    = 500 * time.Millisecond
	DefaultDuration = 2 * time.Second
	DefaultSteps    = 60
)

var ErrInvalidSteps = errors.New("counter: steps must be positive")

// Frame returns the counter values at step out of steps: floor(target*step/steps)
// for each target. The last step returns the targets exactly.
func Frame(targets []int, step, steps int) []int {
	values := make([]int, len(targets))
	if step <= 0 || steps <= 0 {
		return values
	}
	if step >= steps {
		copy(values, targets)
		return values
	}
	for i, target := range targets {
		values[i] = target * step / steps
	}
	return values
}

// Animator drives Frame over time.
type Animator struct {
	Targets  []int
	Delay    time.Duration
	Duration time.Duration
	Steps    int
}

// New returns an animator with the default timing.
func New(targets []int) *Animator {
	return &Animator{
		Targets:  targets,
		Delay:    DefaultDelay,
		Duration: DefaultDuration,
		Steps:    DefaultSteps,
	}
}

// StepInterval is the time between two frames.
func (a *Animator) StepInterval() time.Duration {
	if a.Steps <= 0 {
		return 0
	}
	return a.Duration / time.Duration(a.Steps)
}

// Run waits Delay, then calls onFrame once per step with the step number and
// the values for that step. It returns after the final frame or when ctx is
// done, whichever comes first. No frame is delivered once ctx is done.
func (a *Animator) Run(ctx context.Context, onFrame func(step int, values []int)) error {
	if a.Steps <= 0 {
		return ErrInvalidSteps
	}

	delay := time.NewTimer(a.Delay)
	defer delay.Stop()

	select {
	case <-ctx.Done():
		return nil
	case <-delay.C:
	}

	interval := a.StepInterval()
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for step := 1; step <= a.Steps; {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			onFrame(step, Frame(a.Targets, step, a.Steps))
			step++
		}
	}
	return nil
}
