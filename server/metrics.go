package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// RequestsTotal counts handled requests by route pattern and status.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordplay_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"route", "code"},
	)

	// GenerationSeconds times move generation by search mode.
	GenerationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordplay_generation_seconds",
			Help:    "Time spent generating moves for one position",
			Buckets: prometheus.ExponentialBuckets(0.0005, 4, 8),
		},
		[]string{"mode"},
	)

	// MovesReturned tracks how many moves a generation request returned.
	MovesReturned = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wordplay_moves_returned",
			Help:    "Number of moves returned per generation request",
			Buckets: []float64{0, 1, 5, 10, 25, 50},
		},
		[]string{"mode"},
	)
)

func init() {
	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(GenerationSeconds)
	prometheus.MustRegister(MovesReturned)
}
