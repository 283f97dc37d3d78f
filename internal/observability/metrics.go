package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the application's Prometheus collectors. A nil *Metrics is a
// valid no-op recorder.
type Metrics struct {
	registry *prometheus.Registry

	chatTurns  *prometheus.CounterVec
	posts      *prometheus.CounterVec
	llmLatency prometheus.Histogram
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		chatTurns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "safehaven_chat_turns_total",
			Help: "Chat turns by outcome.",
		}, []string{"outcome"}),
		posts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "safehaven_posts_total",
			Help: "Community post attempts by result.",
		}, []string{"result"}),
		llmLatency: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "safehaven_llm_request_seconds",
			Help:    "Latency of generation requests.",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		}),
	}
}

func (m *Metrics) ObserveChatTurn(outcome string) {
	if m == nil {
		return
	}
	m.chatTurns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObservePost(result string) {
	if m == nil {
		return
	}
	m.posts.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveLLM(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.llmLatency.Observe(elapsed.Seconds())
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
