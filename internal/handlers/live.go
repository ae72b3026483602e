package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/apperror"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/carousel"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/components"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/live"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/logger"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/reveal"
)

// LiveSignals are the signals the live endpoints read from the page.
type LiveSignals struct {
	SessionID   string `json:"sessionId"`
	Testimonial int    `json:"testimonial"`
}

// Stream is the long-lived SSE endpoint of a page view. The session is
// mounted for as long as the stream is open; counter frames are sent as
// signal patches and automatic carousel moves as element patches.
func (h *Handlers) Stream(w http.ResponseWriter, r *http.Request) {
	// Read signals BEFORE creating SSE
	var signals LiveSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		apperror.WriteError(w, r, h.log, apperror.NewBadRequest("invalid signals").WithInternal(err))
		return
	}

	session, err := h.registry.Mount(signals.SessionID, signals.Testimonial)
	if err != nil {
		apperror.WriteError(w, r, h.log, toAppError(err))
		return
	}
	defer h.registry.Unmount(session.ID)

	sse := datastar.NewSSE(w, r)
	log := h.log.With(slog.String("session_id", session.ID))

	// Carousel controls post to the session only once it is live.
	if err := sse.MarshalAndPatchSignals(map[string]any{"live": true}); err != nil {
		log.Debug("stream write failed", logger.Error(err))
		return
	}

	var mu sync.Mutex
	emit := func(ev live.Event) {
		mu.Lock()
		defer mu.Unlock()

		var err error
		switch ev.Kind {
		case live.EventCounters:
			err = sse.MarshalAndPatchSignals(map[string]any{
				"stats": components.StatsSignal(ev.Values),
			})
		case live.EventTestimonial:
			err = patchCarousel(sse, ev.Index)
		}
		if err != nil {
			log.Debug("stream write failed", logger.Error(err))
		}
	}

	if err := session.Run(r.Context(), emit); err != nil {
		log.Error("live session failed", logger.Error(err))
		mu.Lock()
		_ = sse.ConsoleError(err)
		mu.Unlock()
	}
}

func (h *Handlers) CarouselNext(w http.ResponseWriter, r *http.Request) {
	h.moveCarousel(w, r, func(s *live.Session) (int, error) {
		return s.Next(), nil
	})
}

func (h *Handlers) CarouselPrev(w http.ResponseWriter, r *http.Request) {
	h.moveCarousel(w, r, func(s *live.Session) (int, error) {
		return s.Prev(), nil
	})
}

func (h *Handlers) CarouselJump(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		apperror.WriteError(w, r, h.log, apperror.NewBadRequest("invalid testimonial index").WithInternal(err))
		return
	}
	h.moveCarousel(w, r, func(s *live.Session) (int, error) {
		return s.Jump(index)
	})
}

func (h *Handlers) moveCarousel(w http.ResponseWriter, r *http.Request, move func(*live.Session) (int, error)) {
	session, err := h.session(r)
	if err != nil {
		apperror.WriteError(w, r, h.log, err)
		return
	}
	if !session.Allow() {
		apperror.WriteError(w, r, h.log, apperror.ErrTooManyRequests)
		return
	}

	index, err := move(session)
	if err != nil {
		apperror.WriteError(w, r, h.log, toAppError(err))
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := patchCarousel(sse, index); err != nil {
		h.log.Debug("carousel patch failed", logger.Error(err))
	}
}

// Reveal records that a scroll-reveal element became visible. The browser
// has already shown the element, so a request without a mounted session is
// accepted and dropped. The optional ratio query parameter is the reported
// intersection ratio and defaults to 1.
func (h *Handlers) Reveal(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ratio := 1.0
	if v := r.URL.Query().Get("ratio"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			apperror.WriteError(w, r, h.log, apperror.NewBadRequest(fmt.Sprintf("invalid ratio %q", v)))
			return
		}
		ratio = parsed
	}

	session, err := h.session(r)
	if errors.Is(err, live.ErrNotMounted) {
		h.log.Debug("reveal without live session", slog.String("target", id))
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		apperror.WriteError(w, r, h.log, err)
		return
	}

	revealed, err := session.Reveal(id, ratio)
	if errors.Is(err, reveal.ErrDisconnected) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		apperror.WriteError(w, r, h.log, toAppError(err))
		return
	}
	if !revealed {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(map[string]any{
		"revealed": map[string]bool{id: true},
	}); err != nil {
		h.log.Debug("reveal patch failed", logger.Error(err))
	}
}

// session resolves the mounted session named by the request's signals.
func (h *Handlers) session(r *http.Request) (*live.Session, error) {
	var signals LiveSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		return nil, apperror.NewBadRequest("invalid signals").WithInternal(err)
	}

	s, err := h.registry.Lookup(signals.SessionID)
	if err != nil {
		return nil, apperror.NewSessionNotFound(signals.SessionID).WithInternal(err)
	}
	return s, nil
}

func patchCarousel(sse *datastar.ServerSentEventGenerator, index int) error {
	var b strings.Builder
	if err := components.TestimonialCarousel(index, true).Render(&b); err != nil {
		return fmt.Errorf("render carousel: %w", err)
	}
	if err := sse.PatchElements(b.String()); err != nil {
		return err
	}
	return sse.MarshalAndPatchSignals(map[string]any{"testimonial": index})
}

// toAppError maps live session errors to their HTTP form.
func toAppError(err error) error {
	switch {
	case errors.Is(err, live.ErrInvalidID):
		return apperror.NewBadRequest("invalid session id").WithInternal(err)
	case errors.Is(err, live.ErrAlreadyMounted):
		return apperror.ErrSessionConflict.WithInternal(err)
	case errors.Is(err, live.ErrNotMounted), errors.Is(err, reveal.ErrDisconnected):
		return apperror.ErrSessionNotFound.WithInternal(err)
	case errors.Is(err, carousel.ErrOutOfRange):
		return apperror.NewBadRequest("testimonial index out of range").WithInternal(err)
	case errors.Is(err, reveal.ErrUnknownTarget):
		return apperror.ErrTargetNotFound.WithInternal(err)
	}
	return err
}
