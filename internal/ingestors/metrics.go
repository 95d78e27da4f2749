package ingestors

import (
	"factory-events/internal/shared/metrics"
)

const fieldOutcome = "outcome"

var (
	metricBatchIngestedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "batch_ingested_total",
		},
		[]string{metrics.FieldErrorCode},
	)

	metricEventsClassifiedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "events_classified_total",
		},
		[]string{fieldOutcome},
	)
)

func recordClassification(accepted, updated, deduped, rejected int) {
	metricEventsClassifiedTotal.WithLabelValues("accepted").Add(float64(accepted))
	metricEventsClassifiedTotal.WithLabelValues("updated").Add(float64(updated))
	metricEventsClassifiedTotal.WithLabelValues("deduped").Add(float64(deduped))
	metricEventsClassifiedTotal.WithLabelValues("rejected").Add(float64(rejected))
}
