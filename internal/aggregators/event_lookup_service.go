package aggregators

import (
	"context"
	"errors"
	"strings"

	"factory-events/internal/models"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/shared/metrics"
	"factory-events/internal/shared/svcerrors"
	"factory-events/internal/stores"
)

//go:generate mockgen -source=event_lookup_service.go -destination=./mocks/event_lookup_service_mock.go -package=mocks
type EventLookupService interface {
	// FindEvent returns the stored row for eventID as last reconciled.
	FindEvent(ctx context.Context, eventID string) (*models.Event, error)
}

type eventLookupService struct {
	reader stores.EventReader
}

func NewEventLookupService(reader stores.EventReader) EventLookupService {
	return &eventLookupService{reader: reader}
}

func (s *eventLookupService) FindEvent(ctx context.Context, eventID string) (*models.Event, error) {
	if strings.TrimSpace(eventID) == "" {
		return nil, s.fail(errInvalidEventID())
	}

	event, err := s.reader.FindByEventID(ctx, eventID)
	if err != nil {
		if errors.Is(err, stores.ErrEventNotFound) {
			return nil, s.fail(errEventNotFound(eventID, err))
		}
		return nil, s.fail(errInternalEventStoreFailed(err))
	}

	loggers.Ctx(ctx).Debug().Str(loggers.FieldEventID, eventID).Msg("event found")
	metricStatsQueryTotal.WithLabelValues(queryEventLookup, metrics.ValueNoError).Inc()
	return event, nil
}

func (s *eventLookupService) fail(svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	metricStatsQueryTotal.WithLabelValues(queryEventLookup, svcErr.Code).Inc()
	return svcErr
}
