package http

import (
	"fmt"

	"factory-events/internal/shared/svcerrors"
)

// Transport errors
const (
	codeInvalidQueryParam = "HTTP_1000"

	codeStoreUnavailable = "HTTP_9503"
)

func errInvalidQueryParam(name string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidQueryParam, fmt.Sprintf("invalid query parameter %q", name), cause)
}

func errStoreUnavailable(cause error) *svcerrors.ServiceError {
	return svcerrors.NewUnavailableError(codeStoreUnavailable, "event store unavailable", cause)
}
