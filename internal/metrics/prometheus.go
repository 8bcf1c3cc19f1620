package metrics

import "github.com/prometheus/client_golang/prometheus"

type Prometheus struct {
	Events *prometheus.CounterVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{Events: prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cyto",
			Name:      "events",
		}, []string{"stage", "event"}),
	}
}
