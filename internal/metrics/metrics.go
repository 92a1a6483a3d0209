package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsRegistry holds all Prometheus metrics for Pitwall
type MetricsRegistry struct {
	// HTTP Metrics
	HTTPRequestsTotal    *prometheus.CounterVec
	HTTPRequestDuration  *prometheus.HistogramVec
	HTTPRequestsInFlight *prometheus.GaugeVec

	// Cache Metrics
	CacheHitsTotal   *prometheus.CounterVec
	CacheMissesTotal *prometheus.CounterVec

	// Business Metrics
	ServiceRecordsLogged   prometheus.Counter
	ScheduleItemsSeeded    prometheus.Counter
	ScheduleMutations      *prometheus.CounterVec
	NotificationsCreated   *prometheus.CounterVec
	NotificationsRetracted prometheus.Counter
	FleetAggregation       *prometheus.HistogramVec
}

// NewMetricsRegistry registers every metric on reg. The server passes
// prometheus.DefaultRegisterer; tests pass a fresh prometheus.NewRegistry().
func NewMetricsRegistry(reg prometheus.Registerer) *MetricsRegistry {
	factory := promauto.With(reg)

	return &MetricsRegistry{
		// HTTP Metrics
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitwall_http_requests_total",
				Help: "Total HTTP requests processed by endpoint, method, and status code",
			},
			[]string{"endpoint", "method", "status_code"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pitwall_http_request_duration_seconds",
				Help:    "HTTP request latency distribution in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"endpoint", "method"},
		),
		HTTPRequestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pitwall_http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
			},
			[]string{"endpoint"},
		),

		// Cache Metrics
		CacheHitsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitwall_cache_hits_total",
				Help: "Total cache hits by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),
		CacheMissesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitwall_cache_misses_total",
				Help: "Total cache misses by cache key pattern",
			},
			[]string{"cache_key_pattern"},
		),

		// Business Metrics
		ServiceRecordsLogged: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pitwall_service_records_logged_total",
				Help: "Total service records logged",
			},
		),
		ScheduleItemsSeeded: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pitwall_schedule_items_seeded_total",
				Help: "Total schedule items created from the factory template",
			},
		),
		ScheduleMutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitwall_schedule_mutations_total",
				Help: "Schedule mutations by kind",
			},
			[]string{"kind"},
		),
		NotificationsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pitwall_notifications_created_total",
				Help: "Notifications created by type",
			},
			[]string{"type"},
		),
		NotificationsRetracted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pitwall_notifications_retracted_total",
				Help: "Like notifications removed because the like was withdrawn",
			},
		),
		FleetAggregation: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pitwall_fleet_aggregation_duration_seconds",
				Help:    "Garage aggregation time in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
			[]string{"view"},
		),
	}
}
