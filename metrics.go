package mws

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOK             = "ok"
	outcomeSignError      = "sign_error"
	outcomeTransportError = "transport_error"
	outcomeParseError     = "parse_error"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mws_client",
			Name:      "requests_total",
			Help:      "MWS calls by outcome.",
		},
		[]string{"outcome"},
	)

	requestDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "mws_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of MWS calls including signing and parsing.",
			Buckets:   prometheus.DefBuckets,
		},
	)

	responsesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mws_client",
			Name:      "responses_total",
			Help:      "Parsed MWS responses by detected body format.",
		},
		[]string{"format"},
	)
)

func observeCall(outcome string, start time.Time) {
	requestsTotal.WithLabelValues(outcome).Inc()
	requestDuration.Observe(time.Since(start).Seconds())
}
