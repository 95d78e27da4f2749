package aggregators

import (
	"fmt"

	"factory-events/internal/shared/svcerrors"
)

// StatsService errors
const (
	codeInvalidMachineWindow = "STATS_1000"
	codeInvalidFactoryWindow = "STATS_1001"

	codeInternalEventStoreFailed = "STATS_9000"
)

// EventLookupService errors
const (
	codeInvalidEventID = "EVT_1000"
	codeEventNotFound  = "EVT_1404"
)

func errInvalidMachineWindow() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidMachineWindow, "invalid machineId/start/end", nil)
}

func errInvalidFactoryWindow() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidFactoryWindow, "invalid factoryId/from/to", nil)
}

// errInternalEventStoreFailed returns an error when an aggregation query fails.
func errInternalEventStoreFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEventStoreFailed, fmt.Errorf("eventStoreFailed: %w", cause))
}

func errInvalidEventID() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidEventID, "invalid eventId", nil)
}

func errEventNotFound(eventID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeEventNotFound, fmt.Sprintf("event %q not found", eventID), cause)
}
