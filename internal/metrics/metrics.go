package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the HTTP collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inflight        *prometheus.GaugeVec
	unitsOfWork     *prometheus.CounterVec
}

// New registers the finance-server collectors on a fresh registry.
func New() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests processed",
		}, []string{"method", "operation", "status"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "operation"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "http_inflight_requests",
			Help: "HTTP requests in flight",
		}, []string{"method", "operation"}),
		unitsOfWork: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "units_of_work_total",
			Help: "Transactional units of work by result",
		}, []string{"result"}),
	}

	for _, c := range []prometheus.Collector{
		m.requestsTotal,
		m.requestDuration,
		m.inflight,
		m.unitsOfWork,
		collectors.NewGoCollector(),
	} {
		if err := m.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// HumaMiddleware records request count, latency and in-flight requests per
// operation. The operation id keeps label cardinality bounded.
func (m *Metrics) HumaMiddleware(ctx huma.Context, next func(huma.Context)) {
	operation := "unknown"
	if op := ctx.Operation(); op != nil {
		operation = op.OperationID
	}
	method := ctx.Method()

	m.inflight.WithLabelValues(method, operation).Inc()
	start := time.Now()
	defer func() {
		m.inflight.WithLabelValues(method, operation).Dec()
		m.requestDuration.WithLabelValues(method, operation).Observe(time.Since(start).Seconds())

		status := ctx.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.requestsTotal.WithLabelValues(method, operation, strconv.Itoa(status)).Inc()
	}()

	next(ctx)
}

// RecordUnitOfWork counts a finished unit of work.
func (m *Metrics) RecordUnitOfWork(err error) {
	result := "committed"
	if err != nil {
		result = "rolled_back"
	}
	m.unitsOfWork.WithLabelValues(result).Inc()
}
