package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts requests by method, route and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notary",
		Name:      "http_requests_total",
		Help:      "Total HTTP requests processed.",
	}, []string{"method", "path", "status"})

	// HTTPDuration observes request latency by method and route.
	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "notary",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	// TranscriptionRequests counts transcription attempts by outcome.
	TranscriptionRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "notary",
		Name:      "transcription_requests_total",
		Help:      "Transcription requests by outcome.",
	}, []string{"outcome"})

	// TranscriptionSegments counts audio segments sent to the provider.
	TranscriptionSegments = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "notary",
		Name:      "transcription_segments_total",
		Help:      "Audio segments submitted for transcription.",
	})

	// ProviderLatency observes per-segment provider call latency.
	ProviderLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "notary",
		Name:      "provider_request_duration_seconds",
		Help:      "Latency of AI provider calls.",
		Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
	}, []string{"provider"})
)
