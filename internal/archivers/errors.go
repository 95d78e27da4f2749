package archivers

import (
	"fmt"

	"factory-events/internal/shared/svcerrors"
)

// ArchiveService errors
const (
	codeInvalidBatchID     = "ARC_1000"
	codeArchivedBatchGone  = "ARC_1404"
	codeInternalEncode     = "ARC_9000"
	codeInternalStoreWrite = "ARC_9001"
	codeInternalStoreRead  = "ARC_9002"
)

func errInvalidBatchID(batchID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidBatchID, fmt.Sprintf("invalid batch id %q", batchID), cause)
}

func errArchivedBatchNotFound(batchID string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeArchivedBatchGone, fmt.Sprintf("archived batch %q not found", batchID), cause)
}

func errInternalEncodeFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEncode, fmt.Errorf("encodeFailed: %w", cause))
}

func errInternalArchiveWriteFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreWrite, fmt.Errorf("archiveWriteFailed: %w", cause))
}

func errInternalArchiveReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreRead, fmt.Errorf("archiveReadFailed: %w", cause))
}
