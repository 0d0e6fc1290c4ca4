package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the car search HTTP handler
	CarSearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cars_search_latency_seconds",
		Help:    "Latency of car search handler",
		Buckets: prometheus.DefBuckets,
	})

	// Total number of car searches served
	CarSearchRequests = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cars_search_requests_total",
		Help: "Total number of car search requests",
	})

	RecommendationFetchFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_fetch_failures_total",
		Help: "How many times the recommendation provider call failed",
	})

	RecommendationCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "recommendation_cache_hits_total",
		Help: "Recommendation score lookups served from the cache",
	})
)

func Init() {
	prometheus.MustRegister(
		CarSearchLatency,
		CarSearchRequests,
		RecommendationFetchFailures,
		RecommendationCacheHits,
	)
}
