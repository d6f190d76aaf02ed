package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"librarian/internal/library/handler"
	"librarian/internal/platform/health"
	request "librarian/pkg/platform/middleware/request"
	"librarian/pkg/platform/validation"
)

const defaultRequestTimeout = 30 * time.Second

// Dependencies are the pieces the router wires together.
// Library and Health are required; the rest are optional.
type Dependencies struct {
	Library        *handler.Handler
	Health         *health.Handler
	Gatherer       prometheus.Gatherer
	Limiter        *request.KeyedLimiter
	RequestMetrics *request.Metrics
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware.
// Probes and /metrics bypass rate limiting and the request timeout.
func NewRouter(deps Dependencies, logger *slog.Logger) http.Handler {
	timeout := deps.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(request.Logger(logger))
	r.Use(request.Latency(deps.RequestMetrics))
	r.Use(request.BodyLimit(validation.MaxBodySize))

	deps.Health.Register(r)
	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Group(func(r chi.Router) {
		r.Use(request.RateLimit(deps.Limiter, deps.RequestMetrics))
		r.Use(request.Timeout(timeout))
		r.Use(request.ContentTypeJSON)
		deps.Library.Register(r)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeStatus(w, http.StatusMethodNotAllowed)
	})

	return r
}
