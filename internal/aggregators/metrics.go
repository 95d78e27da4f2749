package aggregators

import (
	"factory-events/internal/shared/metrics"
)

const (
	queryMachineStats   = "machine_stats"
	queryTopDefectLines = "top_defect_lines"
	queryEventLookup    = "event_lookup"
)

// metricStatsQueryTotal counts stats queries by query name and outcome.
//
// A query rejected for its arguments carries its 1xxx code; a store failure STATS_9000.
var (
	metricStatsQueryTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "query_total",
		},
		[]string{"query", metrics.FieldErrorCode},
	)

	metricMachineStatusTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStats,
			Name:      "machine_status_total",
		},
		[]string{"status"},
	)
)
