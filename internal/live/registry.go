package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/config"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/logger"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/metrics"
)

var Module = fx.Module("live",
	fx.Provide(NewRegistryFromConfig),
	fx.Invoke(registerLifecycle),
)

var (
	ErrAlreadyMounted = errors.New("live: session already mounted")
	ErrNotMounted     = errors.New("live: session not mounted")
	ErrInvalidID      = errors.New("live: invalid session id")
)

// Registry tracks the mounted sessions.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	defaults Options
	log      *slog.Logger
}

// NewRegistry creates a registry whose sessions start from defaults.
func NewRegistry(defaults Options, log *slog.Logger) *Registry {
	return &Registry{
		sessions: make(map[string]*Session),
		defaults: defaults,
		log:      log.With(logger.Scope("live")),
	}
}

// DefaultOptions returns the session options for the landing page content
// with the timing from cfg.
func DefaultOptions(cfg config.LiveConfig) Options {
	return Options{
		Testimonials:     len(content.Testimonials),
		RevealTargets:    content.RevealTargets(),
		CounterTargets:   content.StatTargets(),
		CarouselInterval: cfg.CarouselInterval,
		CounterDelay:     cfg.CounterDelay,
		CounterDuration:  cfg.CounterDuration,
		CounterSteps:     cfg.CounterSteps,
		ActionsPerMinute: cfg.ActionsPerMinute,
		ActionBurst:      cfg.ActionBurst,
	}
}

// NewRegistryFromConfig creates the registry for the fx graph.
func NewRegistryFromConfig(cfg *config.Config, log *slog.Logger) *Registry {
	return NewRegistry(DefaultOptions(cfg.Live), log)
}

func registerLifecycle(lc fx.Lifecycle, r *Registry) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			r.Close()
			return nil
		},
	})
}

// NewID returns a fresh session id for a page view.
func NewID() string {
	return uuid.NewString()
}

// Mount creates the session for id positioned at testimonial initialIndex.
func (r *Registry) Mount(id string, initialIndex int) (*Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}

	opts := r.defaults
	opts.InitialIndex = initialIndex
	s, err := newSession(id, opts)
	if err != nil {
		return nil, fmt.Errorf("mount session %s: %w", id, err)
	}

	r.mu.Lock()
	if _, exists := r.sessions[id]; exists {
		r.mu.Unlock()
		return nil, fmt.Errorf("%w: %s", ErrAlreadyMounted, id)
	}
	r.sessions[id] = s
	r.mu.Unlock()

	metrics.LiveSessions.Inc()
	metrics.LiveSessionsTotal.Inc()
	r.log.Debug("session mounted", slog.String("session_id", id))
	return s, nil
}

// Lookup returns the mounted session for id.
func (r *Registry) Lookup(id string) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotMounted, id)
	}
	return s, nil
}

// Unmount stops and forgets the session for id. Unmounting an unknown id is
// a no-op.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return
	}
	s.stop()
	metrics.LiveSessions.Dec()
	r.log.Debug("session unmounted",
		slog.String("session_id", id),
		slog.Int("revealed", len(s.Revealed())),
	)
}

// Len returns the number of mounted sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Close unmounts every session.
func (r *Registry) Close() {
	r.mu.RLock()
	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	for _, id := range ids {
		r.Unmount(id)
	}
}
