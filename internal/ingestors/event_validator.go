package ingestors

import (
	"time"

	"factory-events/internal/models"
	"factory-events/internal/shared/validators"
)

const (
	maxDurationMs        = int64(6 * time.Hour / time.Millisecond)
	futureEventAllowance = 15 * time.Minute
)

// EventValidator decides whether a single request may be stored. Checks run in a fixed order
// and the first failing one names the rejection reason.
//
//go:generate mockgen -source=event_validator.go -destination=./mocks/event_validator_mock.go -package=mocks
type EventValidator interface {
	Validate(req *models.EventIngestRequest, now time.Time) (models.RejectionReason, bool)
}

type eventValidator struct {
	validate *validators.Validate
}

func NewEventValidator() EventValidator {
	return &eventValidator{validate: validators.New()}
}

func (v *eventValidator) Validate(req *models.EventIngestRequest, now time.Time) (models.RejectionReason, bool) {
	if req == nil {
		return models.RejectionInvalidRequest, false
	}
	if err := v.validate.Struct(req); err != nil {
		return models.RejectionInvalidRequest, false
	}
	if req.DurationMs < 0 || req.DurationMs > maxDurationMs {
		return models.RejectionInvalidDuration, false
	}
	if req.EventTime.After(now.Add(futureEventAllowance)) {
		return models.RejectionFutureEventTime, false
	}
	return "", true
}
