// Package carousel implements the testimonial rotation state machine.
//
// The index always stays inside [0, n). Manual transitions and the
// automatic advance share one lock; a manual transition does not reset the
// automatic timer.
package carousel

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	ErrEmpty      = errors.New("carousel: no items")
	ErrOutOfRange = errors.New("carousel: index out of range")
)

// Kind names a transition.
type Kind string

const (
	KindAuto Kind = "auto"
	KindNext Kind = "next"
	KindPrev Kind = "prev"
	KindJump Kind = "jump"
)

type Carousel struct {
	mu    sync.Mutex
	index int
	n     int
}

// New returns a carousel over n items positioned at index 0.
func New(n int) (*Carousel, error) {
	if n <= 0 {
		return nil, ErrEmpty
	}
	return &Carousel{n: n}, nil
}

// Len returns the number of items.
func (c *Carousel) Len() int {
	return c.n
}

// Index returns the active position.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Next moves forward one item, wrapping from the last to the first.
func (c *Carousel) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index + 1) % c.n
	return c.index
}

// Prev moves back one item, wrapping from the first to the last.
func (c *Carousel) Prev() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.index = (c.index - 1 + c.n) % c.n
	return c.index
}

// Jump moves directly to i. The state is left unchanged when i is out of range.
func (c *Carousel) Jump(i int) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if i < 0 || i >= c.n {
		return c.index, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, c.n)
	}
	c.index = i
	return c.index, nil
}

// AutoAdvance calls Next every interval and reports the new index to
// onChange. It returns when ctx is done; onChange is never called after
// cancellation has been observed.
func (c *Carousel) AutoAdvance(ctx context.Context, interval time.Duration, onChange func(int)) error {
	if interval <= 0 {
		return fmt.Errorf("carousel: invalid interval %s", interval)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if ctx.Err() != nil {
				return nil
			}
			idx := c.Next()
			if onChange != nil {
				onChange(idx)
			}
		}
	}
}
