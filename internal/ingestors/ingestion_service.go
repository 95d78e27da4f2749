package ingestors

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"factory-events/internal/events"
	"factory-events/internal/models"
	"factory-events/internal/shared/clocks"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/shared/metrics"
	"factory-events/internal/shared/svcerrors"
	"factory-events/internal/shared/ulid"
	"factory-events/internal/streams"

	"github.com/goccy/go-json"
)

const (
	maxBatchBytes = 8 * 1024 * 1024
)

const (
	FormatJSON = "json"
)

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// IngestBatch reads a JSON array of event requests from r and classifies every element.
	// Only a body that is not a JSON array fails the whole call; bad elements become rejections.
	IngestBatch(ctx context.Context, format string, r io.Reader) (*models.BatchIngestResult, error)
	// IngestEvents classifies already decoded requests; a nil element is rejected as INVALID_REQUEST.
	IngestEvents(ctx context.Context, requests []*models.EventIngestRequest) (*models.BatchIngestResult, error)
}

// batchItem is one element of a batch. request is nil when the element could not be decoded;
// eventID is then whatever id could still be recovered from it.
type batchItem struct {
	request *models.EventIngestRequest
	eventID string
}

type ingestionService struct {
	validator            EventValidator
	upserter             BatchUpserter
	batchArchiveProducer streams.BatchArchiveProducer
	clock                clocks.Clock
}

func NewIngestionService(validator EventValidator, upserter BatchUpserter, batchArchiveProducer streams.BatchArchiveProducer, clock clocks.Clock) IngestionService {
	return &ingestionService{
		validator:            validator,
		upserter:             upserter,
		batchArchiveProducer: batchArchiveProducer,
		clock:                clock,
	}
}

func (s *ingestionService) IngestBatch(ctx context.Context, format string, r io.Reader) (*models.BatchIngestResult, error) {
	loggers.Ctx(ctx).Debug().Msgf("started ingesting batch with format: %s", format)

	items, err := s.parseBatch(format, r)
	if err != nil {
		metricBatchIngestedTotal.WithLabelValues(err.Code).Inc()
		return nil, err
	}
	return s.ingest(ctx, items)
}

func (s *ingestionService) IngestEvents(ctx context.Context, requests []*models.EventIngestRequest) (*models.BatchIngestResult, error) {
	items := make([]*batchItem, len(requests))
	for i, req := range requests {
		item := &batchItem{request: req}
		if req != nil {
			item.eventID = req.EventID
		}
		items[i] = item
	}
	return s.ingest(ctx, items)
}

func (s *ingestionService) ingest(ctx context.Context, items []*batchItem) (*models.BatchIngestResult, error) {
	result := models.NewEmptyBatchIngestResult()
	if len(items) == 0 {
		metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
		return result, nil
	}

	now := s.clock.Now()
	batchID := ulid.NewULIDAt(now)
	logger := loggers.Ctx(ctx).With().Str(loggers.FieldBatchID, batchID).Logger()

	rows := make([]*models.Event, 0, len(items))
	for _, item := range items {
		if reason, ok := s.validator.Validate(item.request, now); !ok {
			result.Reject(item.eventID, reason)
			continue
		}
		rows = append(rows, item.request.ToEvent(s.clock.Now()))
	}

	if len(rows) > 0 {
		outcomes, err := s.upserter.Upsert(ctx, rows)
		if err != nil {
			svcErr := errInternalEventStoreFailed(err)
			metricBatchIngestedTotal.WithLabelValues(svcErr.Code).Inc()
			return nil, svcErr
		}
		for _, outcome := range outcomes {
			switch outcome {
			case RowAccepted:
				result.Accepted++
			case RowUpdated:
				result.Updated++
			}
		}
		result.Deduped = len(rows) - result.Accepted - result.Updated
	}

	recordClassification(result.Accepted, result.Updated, result.Deduped, result.Rejected)
	metricBatchIngestedTotal.WithLabelValues(metrics.ValueNoError).Inc()
	logger.Info().
		Int("accepted", result.Accepted).
		Int("updated", result.Updated).
		Int("deduped", result.Deduped).
		Int("rejected", result.Rejected).
		Msg("batch ingested")

	if len(rows) > 0 {
		// The write is committed; archiving is best effort and never changes the response.
		event := events.NewBatchIngestedEvent(batchID, now, rows, result)
		if err := s.batchArchiveProducer.Produce(ctx, event); err != nil {
			logger.Warn().Err(err).Msg("failed to publish batch for archiving")
		}
	}

	return result, nil
}

func (s *ingestionService) parseBatch(format string, r io.Reader) ([]*batchItem, *svcerrors.ServiceError) {
	if !strings.Contains(strings.ToLower(format), FormatJSON) {
		return nil, errValidationFailed(fmt.Sprintf("unsupported input format: %q", format), nil)
	}
	if r == nil {
		return nil, errValidationFailed("empty request body", nil)
	}

	buf, err := io.ReadAll(io.LimitReader(r, maxBatchBytes+1))
	if err != nil {
		return nil, errValidationFailed("failed to read request body", err)
	}
	if len(buf) > maxBatchBytes {
		return nil, errValidationFailed(fmt.Sprintf("batch too large: must be <= %d bytes", maxBatchBytes), nil)
	}
	buf = bytes.TrimSpace(buf)
	if len(buf) == 0 {
		return nil, errValidationFailed("empty request body", nil)
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(buf, &elements); err != nil {
		return nil, errValidationFailed("request body must be a JSON array of events", err)
	}

	items := make([]*batchItem, len(elements))
	for i, raw := range elements {
		items[i] = decodeBatchItem(raw)
	}
	return items, nil
}

// decodeBatchItem never fails: an element that does not decode keeps a nil request.
func decodeBatchItem(raw json.RawMessage) *batchItem {
	var req *models.EventIngestRequest
	if err := json.Unmarshal(raw, &req); err == nil {
		item := &batchItem{request: req}
		if req != nil {
			item.eventID = req.EventID
		}
		return item
	}

	var idOnly struct {
		EventID string `json:"eventId"`
	}
	_ = json.Unmarshal(raw, &idOnly)
	return &batchItem{eventID: idOnly.EventID}
}
