package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "ecohub"

type Metrics struct {
	// Geocoding worker.
	ListingsGeocoded *prometheus.CounterVec
	APIErrors        prometheus.Counter
	RequestSeconds   *prometheus.HistogramVec
	ActiveWorkers    prometheus.Gauge

	// Matchmaking.
	RankingRequests   *prometheus.CounterVec
	RankingCandidates prometheus.Histogram

	// AI advisor.
	AdvisorRequests *prometheus.CounterVec

	// HTTP API.
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ListingsGeocoded: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocoding_listings_processed_total",
			Help:      "Total number of listings processed by the geocoding worker.",
		}, []string{"status"}),
		APIErrors: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocoding_provider_api_errors_total",
			Help:      "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocoding_provider_request_duration_seconds",
			Help:      "Duration of requests to the geocoding provider API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geocoding_active_workers",
			Help:      "Current number of workers geocoding a listing.",
		}),
		RankingRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ranking_requests_total",
			Help:      "Total number of ranking runs by result mode.",
		}, []string{"mode"}),
		RankingCandidates: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "ranking_candidates",
			Help:      "Number of listings considered per ranking run.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		AdvisorRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "advisor_requests_total",
			Help:      "Total number of AI advisor requests by kind and outcome.",
		}, []string{"kind", "outcome"}),
		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests served by the API.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency of HTTP requests served by the API.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}
