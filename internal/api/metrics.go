package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the HTTP service.
type Metrics struct {
	// Requests by route pattern, method and status code
	RequestsTotal *prometheus.CounterVec

	// Request latency by route pattern
	RequestDuration *prometheus.HistogramVec

	// Failed requests by error code ("invalid_verifier", "validation_error", ...)
	ErrorsTotal *prometheus.CounterVec

	// RUTs handed out by the generate endpoint
	GeneratedTotal prometheus.Counter
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clforge_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clforge_http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"route"}),

		ErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "clforge_errors_total",
			Help: "Total failed requests by error code",
		}, []string{"code"}),

		GeneratedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "clforge_generated_ruts_total",
			Help: "Total RUTs produced by the generate endpoint",
		}),
	}
}

// ObserveRequest records one finished request.
func (m *Metrics) ObserveRequest(route, method string, status int, d time.Duration) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
	}
}

// IncrementError records a failed request by its error code.
func (m *Metrics) IncrementError(code string) {
	if m != nil {
		m.ErrorsTotal.WithLabelValues(code).Inc()
	}
}

// AddGenerated records n generated RUTs.
func (m *Metrics) AddGenerated(n int) {
	if m != nil {
		m.GeneratedTotal.Add(float64(n))
	}
}

// instrument observes every request under its chi route pattern, so that
// "/v1/ppu/PHZF55" and "/v1/ppu/AB1234" share one series.
func (m *Metrics) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		m.ObserveRequest(routePattern(r), r.Method, statusOf(ww), time.Since(start))
	})
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}

func statusOf(ww middleware.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
