package archivers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"factory-events/internal/archivers"
	archivermocks "factory-events/internal/archivers/mocks"
	"factory-events/internal/events"
	"factory-events/internal/models"
	"factory-events/internal/shared/filestorages"
	"factory-events/internal/shared/svcerrors"
	"factory-events/internal/shared/ulid"
	"factory-events/internal/stores"
	storemocks "factory-events/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var receivedAt = time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC)

func newBatchEvent(rows ...*models.Event) *events.BatchIngestedEvent {
	return events.NewBatchIngestedEvent(ulid.NewULIDAt(receivedAt), receivedAt, rows,
		&models.BatchIngestResult{Accepted: len(rows)})
}

func newRow(id string) *models.Event {
	return &models.Event{
		EventID:      id,
		FactoryID:    "F01",
		LineID:       "L-A",
		MachineID:    "M-001",
		EventTime:    receivedAt.Add(-time.Minute),
		ReceivedTime: receivedAt,
		DurationMs:   1000,
		DefectCount:  2,
	}
}

func newFileBackedService(t *testing.T) archivers.ArchiveService {
	t.Helper()
	fileStorage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)
	return archivers.NewArchiveService(archivers.NewBatchEncoder(), stores.NewBatchArchiveStore(fileStorage))
}

func TestArchive_WritesAndReadsBack(t *testing.T) {
	t.Parallel()

	service := newFileBackedService(t)
	ctx := context.Background()
	event := newBatchEvent(newRow("E-1"), newRow("E-2"))

	require.Nil(t, service.Archive(ctx, event))

	keys, err := service.ListHour(ctx, receivedAt)
	require.NoError(t, err)
	assert.Equal(t, []string{"raw-batches/20260115T10Z/" + event.BatchID + ".jsonl.gz"}, keys)

	rows, err := service.ReadBatch(ctx, event.BatchID)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "E-1", rows[0].EventID)
	assert.Equal(t, "E-2", rows[1].EventID)
	assert.True(t, receivedAt.Equal(rows[0].ReceivedTime))
}

func TestArchive_RedeliveryIsNotAnError(t *testing.T) {
	t.Parallel()

	service := newFileBackedService(t)
	ctx := context.Background()
	event := newBatchEvent(newRow("E-1"))

	require.Nil(t, service.Archive(ctx, event))
	assert.Nil(t, service.Archive(ctx, event))

	keys, err := service.ListHour(ctx, receivedAt)
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestArchive_EncodeFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	encoder := archivermocks.NewMockBatchEncoder(ctrl)
	store := storemocks.NewMockBatchArchiveStore(ctrl)
	service := archivers.NewArchiveService(encoder, store)

	encoder.EXPECT().Encode(gomock.Any()).Return(nil, errors.New("boom"))

	svcErr := service.Archive(context.Background(), newBatchEvent(newRow("E-1")))
	require.NotNil(t, svcErr)
	assert.Equal(t, "ARC_9000", svcErr.Code)
	assert.True(t, svcErr.IsInternalError())
}

func TestArchive_StoreFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	encoder := archivermocks.NewMockBatchEncoder(ctrl)
	store := storemocks.NewMockBatchArchiveStore(ctrl)
	service := archivers.NewArchiveService(encoder, store)
	event := newBatchEvent(newRow("E-1"))

	encoder.EXPECT().Encode(event.Events).Return([]byte("payload"), nil)
	store.EXPECT().
		Put(gomock.Any(), event.BatchID, receivedAt, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ time.Time, payload io.Reader) (string, error) {
			body, err := io.ReadAll(payload)
			require.NoError(t, err)
			assert.Equal(t, "payload", string(body))
			return "", errors.New("disk full")
		})

	svcErr := service.Archive(context.Background(), event)
	require.NotNil(t, svcErr)
	assert.Equal(t, "ARC_9001", svcErr.Code)
}

func TestReadBatch_InvalidBatchID(t *testing.T) {
	t.Parallel()

	_, err := newFileBackedService(t).ReadBatch(context.Background(), "batch-1")

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ARC_1000", svcErr.Code)
}

func TestReadBatch_NotArchived(t *testing.T) {
	t.Parallel()

	_, err := newFileBackedService(t).ReadBatch(context.Background(), ulid.NewULIDAt(receivedAt))

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ARC_1404", svcErr.Code)
	assert.Equal(t, "not_found", svcErr.Category)
}

func TestReadBatch_CorruptArchive(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockBatchArchiveStore(ctrl)
	service := archivers.NewArchiveService(archivers.NewBatchEncoder(), store)
	batchID := ulid.NewULIDAt(receivedAt)

	store.EXPECT().
		Open(gomock.Any(), batchID, gomock.Any()).
		Return(io.NopCloser(bytes.NewReader([]byte("plain text"))), nil)

	_, err := service.ReadBatch(context.Background(), batchID)

	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, "ARC_9002", svcErr.Code)
}
