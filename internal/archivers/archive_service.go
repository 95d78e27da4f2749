package archivers

import (
	"bytes"
	"context"
	"errors"
	"time"

	"factory-events/internal/events"
	"factory-events/internal/models"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/shared/metrics"
	"factory-events/internal/shared/svcerrors"
	"factory-events/internal/shared/ulid"
	"factory-events/internal/stores"
)

// ArchiveService keeps a raw copy of every committed batch. It implements the stream handler
// that the archive workers call.
type ArchiveService interface {
	Archive(ctx context.Context, event *events.BatchIngestedEvent) *svcerrors.ServiceError
	// ListHour returns the archive keys of batches received during the UTC hour containing hour.
	ListHour(ctx context.Context, hour time.Time) ([]string, error)
	// ReadBatch loads an archived batch; its hour bucket is recovered from the batch ULID.
	ReadBatch(ctx context.Context, batchID string) ([]*models.Event, error)
}

type archiveService struct {
	encoder BatchEncoder
	store   stores.BatchArchiveStore
}

func NewArchiveService(encoder BatchEncoder, store stores.BatchArchiveStore) ArchiveService {
	return &archiveService{encoder: encoder, store: store}
}

func (s *archiveService) Archive(ctx context.Context, event *events.BatchIngestedEvent) *svcerrors.ServiceError {
	logger := loggers.Ctx(ctx)

	payload, err := s.encoder.Encode(event.Events)
	if err != nil {
		return s.fail(ctx, errInternalEncodeFailed(err))
	}

	key, err := s.store.Put(ctx, event.BatchID, event.ReceivedAt, bytes.NewReader(payload))
	if err != nil {
		if errors.Is(err, stores.ErrBatchAlreadyArchived) {
			logger.Warn().Msg("batch already archived, skipping")
			metricBatchArchivedTotal.WithLabelValues(outcomeDuplicate, metrics.ValueNoError).Inc()
			return nil
		}
		return s.fail(ctx, errInternalArchiveWriteFailed(err))
	}

	metricBatchArchivedTotal.WithLabelValues(outcomeArchived, metrics.ValueNoError).Inc()
	metricArchivedBytes.WithLabelValues().Observe(float64(len(payload)))
	logger.Debug().
		Str("archive_key", key).
		Int("rows", len(event.Events)).
		Int("bytes", len(payload)).
		Msg("batch archived")
	return nil
}

func (s *archiveService) ListHour(ctx context.Context, hour time.Time) ([]string, error) {
	keys, err := s.store.ListHour(ctx, hour)
	if err != nil {
		return nil, errInternalArchiveReadFailed(err)
	}
	return keys, nil
}

func (s *archiveService) ReadBatch(ctx context.Context, batchID string) ([]*models.Event, error) {
	receivedAt, err := ulid.TimeOf(batchID)
	if err != nil {
		return nil, errInvalidBatchID(batchID, err)
	}

	rc, err := s.store.Open(ctx, batchID, receivedAt)
	if err != nil {
		if errors.Is(err, stores.ErrArchivedBatchNotFound) {
			return nil, errArchivedBatchNotFound(batchID, err)
		}
		return nil, errInternalArchiveReadFailed(err)
	}
	defer rc.Close()

	rows, err := s.encoder.Decode(rc)
	if err != nil {
		return nil, errInternalArchiveReadFailed(err)
	}
	return rows, nil
}

func (s *archiveService) fail(ctx context.Context, svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	loggers.Ctx(ctx).Error().
		Err(svcErr.Cause).
		Str(loggers.FieldErrorCode, svcErr.Code).
		Msg("failed to archive batch")
	metricBatchArchivedTotal.WithLabelValues(outcomeFailed, svcErr.Code).Inc()
	return svcErr
}
