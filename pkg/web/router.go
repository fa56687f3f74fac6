package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig configures NewRouter.
type RouterConfig struct {
	// Logger receives request logs. If nil, slog.Default() is used.
	Logger *slog.Logger

	// Metrics enables the Prometheus middleware and a /metrics endpoint.
	Metrics bool

	// Tracing enables the OpenTelemetry middleware.
	Tracing bool
}

// NewRouter builds a chi router with recovery, request logging and the
// configured observability middleware.
func NewRouter(config RouterConfig) *chi.Mux {
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))
	if config.Tracing {
		r.Use(Tracing())
	}
	if config.Metrics {
		r.Use(Metrics())
		r.Handle("/metrics", promhttp.Handler())
	}
	return r
}

// RequestLogger creates middleware that logs each request with method,
// path, status and duration.
func RequestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
			)
		})
	}
}
