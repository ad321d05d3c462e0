package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "bot_launcher"

// metrics owns a private registry so several handlers can live in one
// process (tests do this) without duplicate registration panics.
type metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

func newMetrics(status StatusProvider) *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "status_http_requests_total",
				Help:      "Requests served by the status endpoint",
			},
			[]string{"method", "route", "code"},
		),
	}

	m.registry.MustRegister(m.requests, &statusCollector{
		status: status,
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(metricsNamespace, "supervisor", "state"),
			"Current supervisor state, always 1 for the labelled state",
			[]string{"mode", "state", "run_id"}, nil,
		),
	})
	return m
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(mw, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		m.requests.WithLabelValues(r.Method, route, strconv.Itoa(mw.statusOrOK())).Inc()
	})
}

// statusCollector reads the supervisor status at scrape time.
type statusCollector struct {
	status StatusProvider
	desc   *prometheus.Desc
}

func (c *statusCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

func (c *statusCollector) Collect(ch chan<- prometheus.Metric) {
	st := c.status.Status()
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1, st.Mode, st.State, st.RunID)
}
