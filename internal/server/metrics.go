package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/tartampluch/priroda-razuma/internal/config"
)

// Metrics are the Prometheus counters exported on /metrics.
type Metrics struct {
	Requests *prometheus.CounterVec // by route and status code
	Syncs    *prometheus.CounterVec // by outcome

	gatherer prometheus.Gatherer
}

// NewMetrics creates the counters and registers them on reg.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricRequestsName,
			Help:      config.MetricRequestsHelp,
		}, []string{config.MetricLabelRoute, config.MetricLabelCode}),
		Syncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.MetricsNamespace,
			Name:      config.MetricSyncName,
			Help:      config.MetricSyncHelp,
		}, []string{config.MetricLabelOutcome}),
		gatherer: reg,
	}
	reg.MustRegister(m.Requests, m.Syncs)
	return m
}

// ObserveSync counts one sync run.
func (m *Metrics) ObserveSync(err error) {
	outcome := config.MetricOutcomeSuccess
	if err != nil {
		outcome = config.MetricOutcomeError
	}
	m.Syncs.WithLabelValues(outcome).Inc()
}

func (m *Metrics) instrument(route string, h http.Handler) http.Handler {
	counter := m.Requests.MustCurryWith(prometheus.Labels{config.MetricLabelRoute: route})
	return promhttp.InstrumentHandlerCounter(counter, h)
}

func (m *Metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
