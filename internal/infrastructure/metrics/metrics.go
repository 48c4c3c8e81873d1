package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the tubedigest service
type Metrics struct {
	// HTTP metrics
	HTTPRequests        *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Onboarding metrics
	OnboardingCommits    prometheus.Counter
	OnboardingRejections *prometheus.CounterVec

	// Subscription metrics
	SubscriptionsCreated      prometheus.Counter
	SubscriptionsDeduplicated prometheus.Counter
	Unsubscriptions           prometheus.Counter
	CacheHits                 *prometheus.CounterVec

	// Summary metrics
	SummariesIngested prometheus.Counter
	ReadStateChanges  *prometheus.CounterVec

	// Kafka metrics
	EventsPublished *prometheus.CounterVec

	// Metadata fetcher
	MetadataFetchDuration prometheus.Histogram
	MetadataFetchErrors   prometheus.Counter
}

var (
	// DefaultMetrics is the default metrics instance
	DefaultMetrics *Metrics
	once           sync.Once
)

// GetDefaultMetrics returns the singleton metrics instance registered on the default registry
func GetDefaultMetrics() *Metrics {
	once.Do(func() {
		DefaultMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return DefaultMetrics
}

// NewMetrics creates a new Metrics instance registered on reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubedigest_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
		HTTPRequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tubedigest_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),

		OnboardingCommits: f.NewCounter(prometheus.CounterOpts{
			Name: "tubedigest_onboarding_commits_total",
			Help: "Total number of committed notification preferences",
		}),
		OnboardingRejections: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubedigest_onboarding_rejections_total",
				Help: "Total number of onboarding submissions rejected by a guard",
			},
			[]string{"step"},
		),

		SubscriptionsCreated: f.NewCounter(prometheus.CounterOpts{
			Name: "tubedigest_subscriptions_created_total",
			Help: "Total number of channel subscriptions created",
		}),
		SubscriptionsDeduplicated: f.NewCounter(prometheus.CounterOpts{
			Name: "tubedigest_subscriptions_deduplicated_total",
			Help: "Total number of subscribe calls for an already subscribed channel",
		}),
		Unsubscriptions: f.NewCounter(prometheus.CounterOpts{
			Name: "tubedigest_unsubscriptions_total",
			Help: "Total number of removed subscriptions",
		}),
		CacheHits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubedigest_cache_lookups_total",
				Help: "Read cache lookups by result",
			},
			[]string{"result"},
		),

		SummariesIngested: f.NewCounter(prometheus.CounterOpts{
			Name: "tubedigest_summaries_ingested_total",
			Help: "Total number of stored video summaries",
		}),
		ReadStateChanges: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubedigest_read_state_changes_total",
				Help: "Total number of summary read-state changes",
			},
			[]string{"state"},
		),

		EventsPublished: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tubedigest_events_published_total",
				Help: "Total number of published Kafka events",
			},
			[]string{"topic", "status"},
		),

		MetadataFetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "tubedigest_metadata_fetch_duration_seconds",
			Help:    "Duration of channel metadata fetches in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MetadataFetchErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "tubedigest_metadata_fetch_errors_total",
			Help: "Total number of failed channel metadata fetches",
		}),
	}
}
