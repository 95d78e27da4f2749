package streams

import (
	"factory-events/internal/shared/metrics"
)

var (
	streamBatchArchive = "batch_archive"

	metricBatchArchivePublishedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_archive_published_total",
		},
		[]string{"stream_id"},
	)

	metricBatchArchiveConsumedTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubStream,
			Name:      "batch_archive_consumed_total",
		},
		[]string{"stream_id", metrics.FieldErrorCode},
	)
)
