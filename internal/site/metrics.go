package site

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the site's Prometheus collectors.
type Metrics struct {
	Requests *prometheus.HistogramVec
	Contact  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "portfolio",
				Name:      "http_request_duration_seconds",
				Help:      "Time spent serving HTTP requests.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"route", "method", "code"},
		),
		Contact: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "portfolio",
				Name:      "contact_submissions_total",
				Help:      "Contact form submissions by outcome.",
			},
			[]string{"result"},
		),
	}
	reg.MustRegister(m.Requests, m.Contact)
	return m
}
