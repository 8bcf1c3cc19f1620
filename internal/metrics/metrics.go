package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var Observer = &Metrics{
	mutex:      new(sync.RWMutex),
	prometheus: NewPrometheusMetrics(),
}

func init() {
	prometheus.MustRegister(Observer.prometheus.Events)
}

type Metrics struct {
	mutex      *sync.RWMutex
	prometheus Prometheus
}

// Increment counts a single event for the given stage.
func (m *Metrics) Increment(stage, event string) {
	m.prometheus.Events.WithLabelValues(stage, event).Inc()
}

// Add counts n events for the given stage.
func (m *Metrics) Add(n float64, stage, event string) {
	m.prometheus.Events.WithLabelValues(stage, event).Add(n)
}

// Flush dumps the collected counters to the log at the end of a run.
// There is no exposition endpoint, the process is a one-shot pipeline.
func (m *Metrics) Flush() {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Error().Err(err).Msg("could not gather metrics")
		return
	}
	for _, family := range families {
		if family.GetName() != "cyto_events" {
			continue
		}
		for _, metric := range family.GetMetric() {
			event := log.Info()
			for _, label := range metric.GetLabel() {
				event = event.Str(label.GetName(), label.GetValue())
			}
			event.Float64("count", metric.GetCounter().GetValue()).Msg("run counter")
		}
	}
}
