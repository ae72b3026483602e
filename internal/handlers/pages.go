// Package handlers serves the landing page and its live endpoints.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/components"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/content"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/live"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/logger"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/version"
)

// Handlers provides the HTTP handlers of the website.
type Handlers struct {
	registry *live.Registry
	log      *slog.Logger
	startAt  time.Time

	// System readings, replaced in tests.
	getLoadAvg  func(context.Context) (*load.AvgStat, error)
	getMemStats func(context.Context) (*mem.VirtualMemoryStat, error)
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(registry *live.Registry, log *slog.Logger) *Handlers {
	return &Handlers{
		registry: registry,
		log:      log.With(logger.Scope("handlers")),
		startAt:  time.Now(),

		getLoadAvg:  load.AvgWithContext,
		getMemStats: mem.VirtualMemoryWithContext,
	}
}

// LandingPage renders the full page for a new live session. The session is
// mounted once the browser opens the live stream.
func (h *Handlers) LandingPage(w http.ResponseWriter, r *http.Request) {
	page := components.LandingPage(components.PageState{
		SessionID:   live.NewID(),
		Testimonial: testimonialParam(r),
	})

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if r.Method == http.MethodHead {
		return
	}
	if err := page.Render(w); err != nil {
		h.log.Error("render landing page", logger.Error(err))
	}
}

// testimonialParam reads ?testimonial=N. Anything outside the carousel
// falls back to the first testimonial.
func testimonialParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("testimonial"))
	if err != nil || n < 0 || n >= len(content.Testimonials) {
		return 0
	}
	return n
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string       `json:"status"`
	Timestamp    string       `json:"timestamp"`
	Uptime       string       `json:"uptime"`
	Version      version.Info `json:"version"`
	LiveSessions int          `json:"live_sessions"`
	System       *SystemStats `json:"system,omitempty"`
}

// SystemStats are host readings. Fields the platform can't provide are
// omitted.
type SystemStats struct {
	Load1             *float64 `json:"load1,omitempty"`
	MemoryUsedPercent *float64 `json:"memory_used_percent,omitempty"`
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:       "ok",
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Uptime:       time.Since(h.startAt).String(),
		Version:      version.Get(),
		LiveSessions: h.registry.Len(),
		System:       h.systemStats(r.Context()),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handlers) systemStats(ctx context.Context) *SystemStats {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	var stats SystemStats
	if l, err := h.getLoadAvg(ctx); err == nil {
		stats.Load1 = &l.Load1
	} else {
		h.log.Debug("load average unavailable", logger.Error(err))
	}
	if v, err := h.getMemStats(ctx); err == nil {
		stats.MemoryUsedPercent = &v.UsedPercent
	} else {
		h.log.Debug("memory stats unavailable", logger.Error(err))
	}

	if stats.Load1 == nil && stats.MemoryUsedPercent == nil {
		return nil
	}
	return &stats
}
