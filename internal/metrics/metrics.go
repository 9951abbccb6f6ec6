package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the HTTP and background worker instruments.
type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration  *prometheus.HistogramVec
	RequestsTotal    *prometheus.CounterVec
	OrdersPlaced     prometheus.Counter
	ReportsProcessed *prometheus.CounterVec
	CacheHits        *prometheus.CounterVec
}

// New builds a dedicated registry with process and Go collectors attached.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		Registry: registry,
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_http_request_duration_seconds",
			Help:    "HTTP request latency by route and method.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_http_requests_total",
			Help: "HTTP requests by route, method and status code.",
		}, []string{"method", "route", "status"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "storefront_orders_placed_total",
			Help: "Orders accepted since process start.",
		}),
		ReportsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_reports_processed_total",
			Help: "Background report outcomes.",
		}, []string{"outcome"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_cache_requests_total",
			Help: "Response cache lookups by result.",
		}, []string{"result"}),
	}
	registry.MustRegister(m.RequestDuration, m.RequestsTotal, m.OrdersPlaced, m.ReportsProcessed, m.CacheHits)
	return m
}
