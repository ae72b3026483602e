// Package server owns the HTTP router and the server lifecycle.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/pogpoggu3-cpu/ayursutra2/internal/assets"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/config"
	"github.com/pogpoggu3-cpu/ayursutra2/internal/logger"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for creating the router
type RouterParams struct {
	fx.In

	Config *config.Config
	Log    *slog.Logger
}

// NewRouter creates the chi router with the middleware stack and the
// infrastructure routes. Feature routes are registered by their modules.
func NewRouter(p RouterParams) *chi.Mux {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		RequestLogger(p.Log),
		middleware.Recoverer,
	)

	r.Handle("/static/*", assets.Handler())
	if p.Config.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}

// RequestLogger logs every request except health checks.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	log = log.With(logger.Scope("http"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}
				attrs := []any{
					slog.String("method", r.Method),
					slog.String("uri", r.RequestURI),
					slog.Int("status", status),
					slog.Duration("latency", time.Since(start)),
					slog.String("request_id", middleware.GetReqID(r.Context())),
				}
				if status >= http.StatusInternalServerError {
					log.Error("request failed", attrs...)
				} else {
					log.Info("request", attrs...)
				}
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown. Open live
// streams are cancelled through the base context before shutdown waits for
// in-flight requests.
func StartServer(lc fx.Lifecycle, r *chi.Mux, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	baseCtx, cancelBase := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:        cfg.Addr(),
		Handler:     r,
		ReadTimeout: cfg.ReadTimeout,
		IdleTimeout: cfg.IdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return baseCtx
		},
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				cancelBase()
				return err
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")
			cancelBase()

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
