// Package metrics instruments the NEO database with Prometheus collectors.
//
// This binary is batch-shaped, so instead of serving an HTTP endpoint the
// collectors are gathered on demand via Summary for end-of-run reporting.
package metrics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "neo_lookups_total",
			Help: "Total number of NEO lookups by key and result.",
		},
		[]string{"key", "result"},
	)

	queriesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "neo_queries_total",
			Help: "Total number of close-approach queries started.",
		},
	)

	queryResultsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "neo_query_results_total",
			Help: "Total number of close approaches yielded by queries.",
		},
	)

	queryDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "neo_query_duration_seconds",
			Help:    "Wall time spent iterating a query, start to last pull.",
			Buckets: prometheus.DefBuckets,
		},
	)
)

func init() {
	prometheus.MustRegister(lookupsTotal)
	prometheus.MustRegister(queriesTotal)
	prometheus.MustRegister(queryResultsTotal)
	prometheus.MustRegister(queryDurationSeconds)
}

// IncLookupHit records a successful lookup by the given key kind
// ("designation" or "name").
func IncLookupHit(key string) {
	lookupsTotal.WithLabelValues(key, "hit").Inc()
}

// IncLookupMiss records a failed lookup by the given key kind.
func IncLookupMiss(key string) {
	lookupsTotal.WithLabelValues(key, "miss").Inc()
}

// IncQueries records the start of one query iteration.
func IncQueries() {
	queriesTotal.Inc()
}

// AddQueryResults records n approaches yielded to a consumer.
func AddQueryResults(n int) {
	queryResultsTotal.Add(float64(n))
}

// ObserveQueryDuration records the wall time of one consumed query.
func ObserveQueryDuration(seconds float64) {
	queryDurationSeconds.Observe(seconds)
}

// Summary gathers the default registry and renders the neo_* metric families
// as one line per sample, sorted by name. Used by the CLI's --stats flag.
func Summary() string {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Sprintf("gathering metrics: %v", err)
	}

	var lines []string
	for _, mf := range families {
		if !strings.HasPrefix(mf.GetName(), "neo_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			lines = append(lines, renderSample(mf, m))
		}
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func renderSample(mf *dto.MetricFamily, m *dto.Metric) string {
	name := mf.GetName()
	if labels := m.GetLabel(); len(labels) > 0 {
		pairs := make([]string, 0, len(labels))
		for _, l := range labels {
			pairs = append(pairs, fmt.Sprintf("%s=%q", l.GetName(), l.GetValue()))
		}
		name = fmt.Sprintf("%s{%s}", name, strings.Join(pairs, ","))
	}

	switch mf.GetType() {
	case dto.MetricType_COUNTER:
		return fmt.Sprintf("%s %v", name, m.GetCounter().GetValue())
	case dto.MetricType_GAUGE:
		return fmt.Sprintf("%s %v", name, m.GetGauge().GetValue())
	case dto.MetricType_HISTOGRAM:
		h := m.GetHistogram()
		return fmt.Sprintf("%s count=%d sum=%v", name, h.GetSampleCount(), h.GetSampleSum())
	default:
		return name
	}
}
