package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsManager holds the application's Prometheus collectors.
type MetricsManager struct {
	Registry              *prometheus.Registry
	BookingsCreatedTotal  prometheus.Counter
	BookingsCancelled     prometheus.Counter
	RatingsSubmittedTotal prometheus.Counter
	StatusChangesTotal    *prometheus.CounterVec // by new status
	ServicesDeletedTotal  prometheus.Counter
	FilterMemoHitsTotal   prometheus.Counter
	FilterMemoMissesTotal prometheus.Counter
	StoreErrorsTotal      *prometheus.CounterVec   // by operation
	HTTPRequestLatency    *prometheus.HistogramVec // by route and status code
}

// NewMetricsManager registers every collector on a private registry.
func NewMetricsManager(namespace string) *MetricsManager {
	registry := prometheus.NewRegistry()

	m := &MetricsManager{
		Registry: registry,
		BookingsCreatedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings recorded.",
		}),
		BookingsCancelled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_cancelled_total",
			Help:      "Total number of bookings cancelled.",
		}),
		RatingsSubmittedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratings_submitted_total",
			Help:      "Total number of ratings submitted.",
		}),
		StatusChangesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "service_status_changes_total",
			Help:      "Admin status changes by resulting status.",
		}, []string{"status"}),
		ServicesDeletedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "services_deleted_total",
			Help:      "Total number of services deleted by admins.",
		}),
		FilterMemoHitsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_memo_hits_total",
			Help:      "Filtered views served from the memo.",
		}),
		FilterMemoMissesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_memo_misses_total",
			Help:      "Filtered views recomputed.",
		}),
		StoreErrorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "client_store_errors_total",
			Help:      "Client store failures by operation.",
		}, []string{"operation"}),
		HTTPRequestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_latency_seconds",
			Help:      "Latency of HTTP requests by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	registry.MustRegister(
		m.BookingsCreatedTotal,
		m.BookingsCancelled,
		m.RatingsSubmittedTotal,
		m.StatusChangesTotal,
		m.ServicesDeletedTotal,
		m.FilterMemoHitsTotal,
		m.FilterMemoMissesTotal,
		m.StoreErrorsTotal,
		m.HTTPRequestLatency,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry for the /metrics route.
func (m *MetricsManager) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
