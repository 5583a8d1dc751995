package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/clforge/clforge/handler"
	"github.com/clforge/clforge/pkg/clientip"
	"github.com/clforge/clforge/pkg/config"
	"github.com/clforge/clforge/pkg/environment"
	"github.com/clforge/clforge/pkg/httpserver"
	"github.com/clforge/clforge/pkg/logger"
	"github.com/clforge/clforge/pkg/ratelimiter"
	"github.com/clforge/clforge/pkg/requestid"
	"github.com/clforge/clforge/pkg/verify"
)

// API serves the plate and RUT operations over HTTP.
type API struct {
	settings config.Settings
	log      *slog.Logger
	registry *prometheus.Registry
	metrics  *Metrics

	// budget is nil when settings.GenerateBudget is zero.
	budget      *ratelimiter.Bucket
	budgetStore *ratelimiter.MemoryStore
}

type Option func(*API)

// WithLogger sets the logger for request and error logs.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

// WithRegistry registers the collectors with reg instead of a private
// registry. /metrics serves whatever reg gathers.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(a *API) {
		if reg != nil {
			a.registry = reg
		}
	}
}

// New builds an API. Generation defaults and limits come from settings.
// Call Close when done to stop the budget's background sweep.
func New(settings config.Settings, opts ...Option) (*API, error) {
	a := &API{settings: settings, log: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = prometheus.NewRegistry()
		a.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	a.metrics = NewMetrics(a.registry)

	if settings.GenerateBudget > 0 {
		if settings.GenerateBudget < settings.GenerateMaxCount {
			return nil, fmt.Errorf("%w: generate budget %d is below the per-call cap %d",
				config.ErrInvalidSettings, settings.GenerateBudget, settings.GenerateMaxCount)
		}
		store := ratelimiter.NewMemoryStore()
		budget, err := ratelimiter.NewBucket(store, ratelimiter.Config{
			Capacity:       settings.GenerateBudget,
			RefillRate:     settings.GenerateBudget,
			RefillInterval: settings.GenerateBudgetInterval,
		})
		if err != nil {
			store.Close()
			return nil, err
		}
		a.budget, a.budgetStore = budget, store
	}
	return a, nil
}

// Close releases the generation budget.
func (a *API) Close() {
	if a.budgetStore != nil {
		a.budgetStore.Close()
	}
}

// Metrics returns the collectors the API reports to.
func (a *API) Metrics() *Metrics { return a.metrics }

// Router returns the HTTP handler with all routes and middleware mounted.
func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.CleanPath)
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware(a.settings.TrustProxy))
	r.Use(environment.Middleware(a.settings.Env))
	r.Use(a.metrics.instrument)
	r.Use(a.logRequests)

	r.NotFound(a.fallback(handler.ErrNotFound))
	r.MethodNotAllowed(a.fallback(handler.ErrMethodNotAllowed))

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log, httpserver.Check{Name: "checksum", Fn: selfTest}))
	r.Handle("/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{Registry: a.registry}))

	r.Route("/v1", func(r chi.Router) {
		r.Get("/ppu/{ppu}", a.getPPU())
		r.Get("/ppu/{ppu}/normalized", a.getNormalized())
		r.Get("/ppu/{ppu}/numeric", a.getNumeric())
		r.Get("/rut/{digits}/verifier", a.getVerifier())
		r.Post("/rut/validate", a.validateRUT())
		r.Post("/rut/generate", a.generateRUTs())
	})

	return r
}

// errorHandler counts the failure by code before logging and rendering it.
func (a *API) errorHandler() handler.ErrorHandler[handler.Context] {
	render := handler.NewErrorHandler(a.log)
	return func(ctx handler.Context, err error) {
		a.metrics.IncrementError(handler.Classify(err).Code)
		render(ctx, err)
	}
}

func (a *API) fallback(err handler.HTTPError) http.HandlerFunc {
	onError := a.errorHandler()
	return func(w http.ResponseWriter, r *http.Request) {
		onError(handler.NewContext(w, r), err)
	}
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		a.log.LogAttrs(r.Context(), slog.LevelDebug, "request served",
			logger.Component("api"),
			slog.String("method", r.Method),
			slog.String("route", routePattern(r)),
			slog.Int("status", statusOf(ww)),
			slog.Int("bytes", ww.BytesWritten()),
			logger.Duration(time.Since(start)),
		)
	})
}

var errSelfTest = errors.New("checksum self-test failed")

// selfTest recomputes two known identifiers.
func selfTest(context.Context) error {
	if v, err := verify.Checksum(12345678); err != nil || v != '5' {
		return fmt.Errorf("%w: rut 12345678 gave %q (%v)", errSelfTest, v, err)
	}
	p, err := verify.ParsePPU("PHZF55")
	if err != nil {
		return errors.Join(errSelfTest, err)
	}
	if got := p.Complete(); got != "069455-K" {
		return fmt.Errorf("%w: plate PHZF55 gave %s", errSelfTest, got)
	}
	return nil
}
