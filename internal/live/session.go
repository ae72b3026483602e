// Package live runs the per-visitor state of the landing page.
//
// A Session exists while the visitor's event stream is open. Mounting it
// starts the counter animation and the testimonial auto-advance; unmounting
// stops both and disconnects the scroll-reveal tracker.
package live

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/carousel"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/counter"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/metrics"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/reveal"
)

// EventKind tells the stream what changed.
type EventKind int

const (
	EventCounters EventKind = iota + 1
	EventTestimonial
)

// Event is emitted by a running session's effects.
type Event struct {
	Kind EventKind

	// EventCounters
	Step   int
	Values []int

	// EventTestimonial
	Index int
}

// Options configure a new session.
type Options struct {
	Testimonials     int
	InitialIndex     int
	RevealTargets    []string
	CounterTargets   []int
	CarouselInterval time.Duration
	CounterDelay     time.Duration
	CounterDuration  time.Duration
	CounterSteps     int

	// Manual actions allowed per minute with ActionBurst headroom. Zero
	// means unlimited.
	ActionsPerMinute int
	ActionBurst      int
}

type Session struct {
	ID string

	carousel *carousel.Carousel
	tracker  *reveal.Tracker
	animator *counter.Animator
	interval time.Duration
	limiter  *rate.Limiter

	mu       sync.Mutex
	counters []int
	cancel   context.CancelFunc
	stopped  bool
}

func newSession(id string, opts Options) (*Session, error) {
	c, err := carousel.New(opts.Testimonials)
	if err != nil {
		return nil, err
	}
	if opts.InitialIndex != 0 {
		if _, err := c.Jump(opts.InitialIndex); err != nil {
			return nil, err
		}
	}

	return &Session{
		ID:       id,
		carousel: c,
		tracker:  reveal.New(opts.RevealTargets...),
		animator: &counter.Animator{
			Targets:  opts.CounterTargets,
			Delay:    opts.CounterDelay,
			Duration: opts.CounterDuration,
			Steps:    opts.CounterSteps,
		},
		interval: opts.CarouselInterval,
		limiter:  newLimiter(opts.ActionsPerMinute, opts.ActionBurst),
		counters: make([]int, len(opts.CounterTargets)),
	}, nil
}

func newLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// Allow reports whether another manual action may run now.
func (s *Session) Allow() bool {
	return s.limiter.Allow()
}

// Run drives the session's timed effects until ctx is done or the session is
// unmounted. emit may be called from several goroutines; it is never called
// after Run returns.
func (s *Session) Run(ctx context.Context, emit func(Event)) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return nil
	}
	s.cancel = cancel
	s.mu.Unlock()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		completed := false
		err := s.animator.Run(gctx, func(step int, values []int) {
			s.mu.Lock()
			s.counters = values
			s.mu.Unlock()

			emit(Event{Kind: EventCounters, Step: step, Values: values})
			if step == s.animator.Steps {
				completed = true
			}
		})
		if completed {
			metrics.CounterAnimations.WithLabelValues("completed").Inc()
		} else {
			metrics.CounterAnimations.WithLabelValues("cancelled").Inc()
		}
		return err
	})

	g.Go(func() error {
		return s.carousel.AutoAdvance(gctx, s.interval, func(idx int) {
			metrics.CarouselTransitions.WithLabelValues(string(carousel.KindAuto)).Inc()
			emit(Event{Kind: EventTestimonial, Index: idx})
		})
	})

	return g.Wait()
}

// stop cancels the running effects and releases the reveal observer.
func (s *Session) stop() {
	s.mu.Lock()
	s.stopped = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.tracker.Disconnect()
}

// Counters returns the most recent counter values.
func (s *Session) Counters() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int, len(s.counters))
	copy(out, s.counters)
	return out
}

func (s *Session) Testimonial() int {
	return s.carousel.Index()
}

func (s *Session) Next() int {
	metrics.CarouselTransitions.WithLabelValues(string(carousel.KindNext)).Inc()
	return s.carousel.Next()
}

func (s *Session) Prev() int {
	metrics.CarouselTransitions.WithLabelValues(string(carousel.KindPrev)).Inc()
	return s.carousel.Prev()
}

func (s *Session) Jump(i int) (int, error) {
	idx, err := s.carousel.Jump(i)
	if err != nil {
		return idx, err
	}
	metrics.CarouselTransitions.WithLabelValues(string(carousel.KindJump)).Inc()
	return idx, nil
}

// Reveal marks an element visible and reports whether it was newly revealed.
func (s *Session) Reveal(id string, ratio float64) (bool, error) {
	revealed, err := s.tracker.Observe(id, ratio)
	if revealed {
		metrics.Reveals.Inc()
	}
	return revealed, err
}

// Revealed lists the elements revealed so far.
func (s *Session) Revealed() []string {
	return s.tracker.Revealed()
}
