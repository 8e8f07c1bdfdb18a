// metrics — prometheus-метрики сервиса. Отдаются через promhttp на /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "top10"

// Результаты обращения к апстриму.
const (
	ResultOK          = "ok"
	ResultUnavailable = "unavailable"
	ResultMalformed   = "malformed"
)

var (
	// UpstreamFetches — обращения к апстриму по результату.
	UpstreamFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "upstream_fetches_total",
		Help:      "Upstream fetches by result.",
	}, []string{"result"})

	// UpstreamDuration — длительность обращения к апстриму.
	UpstreamDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upstream_fetch_duration_seconds",
		Help:      "Upstream fetch duration.",
		Buckets:   prometheus.DefBuckets,
	})

	// DroppedPosts — записи апстрима, отброшенные при нормализации.
	DroppedPosts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_posts_total",
		Help:      "Upstream posts dropped during normalisation.",
	})

	// Exports — собранные экспорты по формату (pdf, summary).
	Exports = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Generated exports by format.",
	}, []string{"format"})
)
