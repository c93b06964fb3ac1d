package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"personnummer/internal/lookup/handler"
	lookupmetrics "personnummer/internal/lookup/metrics"
	"personnummer/internal/lookup/service"
	"personnummer/internal/lookup/tracer"
	"personnummer/internal/platform/config"
	"personnummer/internal/platform/health"
	"personnummer/pkg/personnummer"
	"personnummer/pkg/platform/middleware/metadata"
	"personnummer/pkg/platform/middleware/request"
)

// selfTestPIN and selfTestDate feed the readiness check; the pair must
// always parse.
const selfTestPIN = "199908072391"

var selfTestDate = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Registry is what the router needs from a Prometheus registry: somewhere to
// register collectors and something to scrape for /metrics.
type Registry interface {
	prometheus.Registerer
	prometheus.Gatherer
}

// Routes groups the mounted handlers and the middleware settings.
type Routes struct {
	Lookup         *handler.Handler
	Health         *health.Handler
	Metadata       *metadata.Middleware
	Metrics        *request.Metrics
	Gatherer       prometheus.Gatherer
	RequestTimeout time.Duration
	MaxBodyBytes   int64
}

// NewRouter wires all public endpoints with middleware.
func NewRouter(rt Routes, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(request.Recovery(logger))
	r.Use(request.RequestID)
	r.Use(rt.Metadata.Handler)
	r.Use(request.Logger(logger))
	r.Use(request.LatencyMiddleware(rt.Metrics))
	r.Use(request.Timeout(rt.RequestTimeout))
	r.Use(request.BodyLimit(rt.MaxBodyBytes))
	r.Use(request.ContentTypeJSON)

	rt.Health.Register(r)
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(rt.Gatherer, promhttp.HandlerOpts{}))
	rt.Lookup.Register(r)

	return r
}

// NewHandler composes the service from configuration. Production and the
// feature tests share it, so the only seams are the logger, the registry and
// the tracer provider.
func NewHandler(cfg config.Server, logger *slog.Logger, reg Registry, tp trace.TracerProvider) http.Handler {
	svc := service.New(logger,
		service.WithClock(service.ClockFor(cfg.ReferenceDate)),
		service.WithMetrics(lookupmetrics.New(reg)),
		service.WithTracer(tracer.NewOTel(tracer.WithTracerProvider(tp))),
		service.WithPseudonymKey(cfg.PseudonymKey),
	)

	healthHandler := health.New(cfg.Environment, health.WithReferenceDate(cfg.ReferenceDate))
	healthHandler.RegisterCheck("checksum", func() error {
		_, err := personnummer.ParseAt(selfTestPIN, selfTestDate)
		return err
	})

	return NewRouter(Routes{
		Lookup:         handler.New(svc, logger),
		Health:         healthHandler,
		Metadata:       metadata.NewMiddleware(&metadata.Config{TrustedProxies: cfg.TrustedProxies}),
		Metrics:        request.NewMetrics(reg),
		Gatherer:       reg,
		RequestTimeout: cfg.RequestTimeout,
		MaxBodyBytes:   cfg.MaxBodyBytes,
	}, logger)
}
