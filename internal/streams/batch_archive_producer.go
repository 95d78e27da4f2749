package streams

import (
	"context"

	"factory-events/internal/events"
)

// BatchArchiveProducer hands committed batches to the archive workers. Batches are keyed by
// batch id, so a redelivered batch lands on the same worker as the original.
//
//go:generate mockgen -source=batch_archive_producer.go -destination=./mocks/batch_archive_producer_mock.go -package=mocks
type BatchArchiveProducer interface {
	Produce(ctx context.Context, event *events.BatchIngestedEvent) error
}

type batchArchiveProducer struct {
	queue *PartitionedQueue[*events.BatchIngestedEvent]
}

func NewBatchArchiveProducer(queue *PartitionedQueue[*events.BatchIngestedEvent]) BatchArchiveProducer {
	return &batchArchiveProducer{queue: queue}
}

func (producer *batchArchiveProducer) Produce(ctx context.Context, event *events.BatchIngestedEvent) error {
	if err := producer.queue.Publish(ctx, event.BatchID, event); err != nil {
		return err
	}
	metricBatchArchivePublishedTotal.WithLabelValues(streamBatchArchive).Inc()
	return nil
}

type nopBatchArchiveProducer struct{}

// NewNopBatchArchiveProducer drops every batch; used when archiving is disabled.
func NewNopBatchArchiveProducer() BatchArchiveProducer {
	return nopBatchArchiveProducer{}
}

func (nopBatchArchiveProducer) Produce(context.Context, *events.BatchIngestedEvent) error {
	return nil
}
