package ingestors

import (
	"context"
	"errors"
	"testing"
	"time"

	"factory-events/internal/models"
	"factory-events/internal/stores"
	storemocks "factory-events/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func rowsWithIDs(ids ...string) []*models.Event {
	rows := make([]*models.Event, len(ids))
	for i, id := range ids {
		rows[i] = &models.Event{EventID: id, EventTime: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)}
	}
	return rows
}

// expectTx makes RunInTx invoke the callback with writer and return whatever it returns.
func expectTx(store *storemocks.MockEventStore, writer *storemocks.MockEventWriter) {
	store.EXPECT().
		RunInTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, stores.EventWriter) error) error {
			return fn(ctx, writer)
		})
}

func TestBatchUpserter_Upsert_ClassifiesBothPhases(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockEventStore(ctrl)
	writer := storemocks.NewMockEventWriter(ctrl)
	upserter := NewBatchUpserter(store)

	rows := rowsWithIDs("E-1", "E-2", "E-3", "E-4")
	expectTx(store, writer)
	gomock.InOrder(
		writer.EXPECT().InsertIfAbsent(gomock.Any(), rows).Return([]bool{true, false, true, false}, nil),
		writer.EXPECT().ConditionalUpdate(gomock.Any(), []*models.Event{rows[1], rows[3]}).Return([]bool{false, true}, nil),
	)

	outcomes, err := upserter.Upsert(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, []RowOutcome{RowAccepted, RowDeduped, RowAccepted, RowUpdated}, outcomes)
}

func TestBatchUpserter_Upsert_SkipsUpdateWhenAllInserted(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockEventStore(ctrl)
	writer := storemocks.NewMockEventWriter(ctrl)
	upserter := NewBatchUpserter(store)

	rows := rowsWithIDs("E-1", "E-2")
	expectTx(store, writer)
	writer.EXPECT().InsertIfAbsent(gomock.Any(), rows).Return([]bool{true, true}, nil)

	outcomes, err := upserter.Upsert(context.Background(), rows)
	require.NoError(t, err)
	assert.Equal(t, []RowOutcome{RowAccepted, RowAccepted}, outcomes)
}

func TestBatchUpserter_Upsert_EmptyDoesNotTouchStore(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	store := storemocks.NewMockEventStore(ctrl)
	upserter := NewBatchUpserter(store)

	outcomes, err := upserter.Upsert(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}

func TestBatchUpserter_Upsert_PhaseFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("connection reset")

	t.Run("insert phase", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := storemocks.NewMockEventStore(ctrl)
		writer := storemocks.NewMockEventWriter(ctrl)
		upserter := NewBatchUpserter(store)

		expectTx(store, writer)
		writer.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return(nil, boom)

		outcomes, err := upserter.Upsert(context.Background(), rowsWithIDs("E-1"))
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "insert phase")
		assert.Nil(t, outcomes)
	})

	t.Run("update phase", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := storemocks.NewMockEventStore(ctrl)
		writer := storemocks.NewMockEventWriter(ctrl)
		upserter := NewBatchUpserter(store)

		expectTx(store, writer)
		writer.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return([]bool{false}, nil)
		writer.EXPECT().ConditionalUpdate(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := upserter.Upsert(context.Background(), rowsWithIDs("E-1"))
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "update phase")
	})

	t.Run("result count mismatch", func(t *testing.T) {
		t.Parallel()
		ctrl := gomock.NewController(t)
		store := storemocks.NewMockEventStore(ctrl)
		writer := storemocks.NewMockEventWriter(ctrl)
		upserter := NewBatchUpserter(store)

		expectTx(store, writer)
		writer.EXPECT().InsertIfAbsent(gomock.Any(), gomock.Any()).Return([]bool{true}, nil)

		_, err := upserter.Upsert(context.Background(), rowsWithIDs("E-1", "E-2"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "got 1 results for 2 rows")
	})
}

func TestRowOutcome_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "accepted", RowAccepted.String())
	assert.Equal(t, "updated", RowUpdated.String())
	assert.Equal(t, "deduped", RowDeduped.String())
	assert.Equal(t, "unknown", RowOutcome(0).String())
}
