package archivers

import (
	"factory-events/internal/shared/metrics"
)

const (
	outcomeArchived  = "archived"
	outcomeDuplicate = "duplicate"
	outcomeFailed    = "failed"
)

var (
	metricBatchArchivedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArchive,
			Name:      "batches_total",
		},
		[]string{"outcome", metrics.FieldErrorCode},
	)

	metricArchivedBytes = metrics.NewHistogramVec(
		metrics.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubArchive,
			Name:      "batch_size_bytes",
			Buckets:   []float64{1 << 10, 8 << 10, 64 << 10, 256 << 10, 1 << 20, 4 << 20},
		},
		[]string{},
	)
)
