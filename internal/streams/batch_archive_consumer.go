package streams

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"factory-events/internal/events"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/shared/metrics"
	"factory-events/internal/shared/svcerrors"
)

// BatchArchiveHandler processes one committed batch.
type BatchArchiveHandler interface {
	Archive(ctx context.Context, event *events.BatchIngestedEvent) *svcerrors.ServiceError
}

type BatchArchiveConsumer interface {
	Start(ctx context.Context)
	// Stop closes the queue and waits until every queued batch has been handled.
	Stop()
}

type batchArchiveConsumer struct {
	queue   *PartitionedQueue[*events.BatchIngestedEvent]
	handler BatchArchiveHandler

	wg       sync.WaitGroup
	stopOnce sync.Once

	logger loggers.Logger
}

func NewBatchArchiveConsumer(queue *PartitionedQueue[*events.BatchIngestedEvent], handler BatchArchiveHandler, logger loggers.Logger) BatchArchiveConsumer {
	return &batchArchiveConsumer{
		queue:   queue,
		handler: handler,
		logger:  logger,
	}
}

// Start spawns 1 worker goroutine per partition.
func (consumer *batchArchiveConsumer) Start(ctx context.Context) {
	for partitionIndex := 0; partitionIndex < consumer.queue.PartitionCount(); partitionIndex++ {
		partitionIndex := partitionIndex
		ch := consumer.queue.partition(partitionIndex)
		consumer.wg.Add(1)
		go func() {
			defer consumer.wg.Done()
			consumer.runPartitionWorker(ctx, partitionIndex, ch)
		}()
	}
}

func (consumer *batchArchiveConsumer) Stop() {
	consumer.stopOnce.Do(consumer.queue.Close)
	consumer.wg.Wait()
}

func (consumer *batchArchiveConsumer) runPartitionWorker(ctx context.Context, partitionIndex int, ch <-chan *events.BatchIngestedEvent) {
	workerLogger := consumer.logger.With().
		Str(loggers.FieldComponent, "batch_archive_consumer").
		Int(loggers.FieldPartitionId, partitionIndex).
		Logger()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-ch:
			if !ok {
				return
			}
			consumer.handle(workerLogger.WithContext(ctx), event)
		}
	}
}

func (consumer *batchArchiveConsumer) handle(ctx context.Context, event *events.BatchIngestedEvent) {
	defer func() {
		if r := recover(); r != nil {
			var panicErr error
			if err, ok := r.(error); ok {
				panicErr = err
			} else {
				panicErr = fmt.Errorf("%v", r)
			}
			svcErr := svcerrors.NewInternalErrorPanic(panicErr)
			loggers.Ctx(ctx).Error().
				Err(panicErr).
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Msg("batch archive consumer panic recovered")
			metricBatchArchiveConsumedTotal.WithLabelValues(streamBatchArchive, svcErr.Code).Inc()
		}
	}()

	ctx = loggers.Ctx(ctx).With().Str(loggers.FieldBatchID, event.BatchID).Logger().WithContext(ctx)
	if svcErr := consumer.handler.Archive(ctx, event); svcErr != nil {
		metricBatchArchiveConsumedTotal.WithLabelValues(streamBatchArchive, svcErr.Code).Inc()
		return
	}
	metricBatchArchiveConsumedTotal.WithLabelValues(streamBatchArchive, metrics.ValueNoError).Inc()
}
