package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "clause_builder"

// InvalidOperator labels clause requests whose operator did not parse.
const InvalidOperator = "invalid"

var (
	TablesLoaded = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tables_loaded_total",
		Help:      "Tables loaded into workspaces, by source and outcome.",
	}, []string{"source", "result"})

	ClausesGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "clauses_generated_total",
		Help:      "Generated clauses, by operator and outcome.",
	}, []string{"operator", "result"})

	WarehouseQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "warehouse_query_duration_seconds",
		Help:      "Duration of source queries run against the warehouse.",
		Buckets:   prometheus.DefBuckets,
	})
)

// Outcome returns the result label for err.
func Outcome(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
