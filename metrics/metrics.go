// Package metrics holds the Prometheus instrumentation of the dashboard API.
//
// One Metrics value owns its registry, so tests and the CLI can build as many
// as they need without clashing on the default registerer:
//
//	m := metrics.New()
//	router.Use(middleware.Metrics(m))
//	router.GET("/metrics", gin.WrapH(m.Handler()))
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "dashboard"

type Metrics struct {
	Registry *prometheus.Registry

	RequestDuration *prometheus.HistogramVec
	RequestTotal    *prometheus.CounterVec
	RequestInFlight prometheus.Gauge

	// StoreDuration and StoreErrors are labelled by store operation
	// ("list", "get", "push", ...).
	StoreDuration *prometheus.HistogramVec
	StoreErrors   *prometheus.CounterVec

	MerchantMerges            prometheus.Counter
	MerchantDuplicatesRemoved prometheus.Counter
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		RequestInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served.",
		}),
		StoreDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operation_duration_seconds",
			Help:      "Duration of document store calls in seconds.",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),
		StoreErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "errors_total",
			Help:      "Total failed document store calls, not found excluded.",
		}, []string{"operation"}),
		MerchantMerges: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merchants",
			Name:      "merges_total",
			Help:      "Total duplicate-email merges performed.",
		}),
		MerchantDuplicatesRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "merchants",
			Name:      "duplicates_removed_total",
			Help:      "Total merchant records removed by merges.",
		}),
	}

	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestDuration,
		m.RequestTotal,
		m.RequestInFlight,
		m.StoreDuration,
		m.StoreErrors,
		m.MerchantMerges,
		m.MerchantDuplicatesRemoved,
	)
	return m
}

// ObserveRequest records one served request. route is the matched route
// template, never the raw path.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.RequestDuration.WithLabelValues(method, route, code).Observe(elapsed.Seconds())
	m.RequestTotal.WithLabelValues(method, route, code).Inc()
}

// ObserveMerchantMerge satisfies services.MergeObserver.
func (m *Metrics) ObserveMerchantMerge(removed int) {
	m.MerchantMerges.Inc()
	m.MerchantDuplicatesRemoved.Add(float64(removed))
}

// Handler exposes the registry in the Prometheus text and OpenMetrics formats.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	})
}
