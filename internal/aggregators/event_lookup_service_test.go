package aggregators_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"factory-events/internal/aggregators"
	"factory-events/internal/models"
	"factory-events/internal/stores"
	storemocks "factory-events/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEventLookupService(t *testing.T) (aggregators.EventLookupService, *storemocks.MockEventReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	reader := storemocks.NewMockEventReader(ctrl)
	return aggregators.NewEventLookupService(reader), reader
}

func TestFindEvent_Found(t *testing.T) {
	t.Parallel()

	service, reader := newEventLookupService(t)
	stored := &models.Event{
		EventID:      "E-1",
		FactoryID:    "F01",
		LineID:       "L-A",
		MachineID:    "M-001",
		EventTime:    windowStart,
		ReceivedTime: windowStart.Add(time.Minute),
		DurationMs:   1000,
		DefectCount:  models.DefectCountUnknown,
	}
	reader.EXPECT().FindByEventID(gomock.Any(), "E-1").Return(stored, nil)

	event, err := service.FindEvent(context.Background(), "E-1")
	require.NoError(t, err)
	assert.Equal(t, stored, event)
}

func TestFindEvent_BlankID(t *testing.T) {
	t.Parallel()

	service, _ := newEventLookupService(t)

	event, err := service.FindEvent(context.Background(), "   ")
	assert.Nil(t, event)
	requireServiceError(t, err, "EVT_1000", "invalid_argument")
}

func TestFindEvent_NotFound(t *testing.T) {
	t.Parallel()

	service, reader := newEventLookupService(t)
	reader.EXPECT().
		FindByEventID(gomock.Any(), "missing").
		Return(nil, fmt.Errorf("find: %w", stores.ErrEventNotFound))

	event, err := service.FindEvent(context.Background(), "missing")
	assert.Nil(t, event)
	requireServiceError(t, err, "EVT_1404", "not_found")
}

func TestFindEvent_StoreFailure(t *testing.T) {
	t.Parallel()

	service, reader := newEventLookupService(t)
	reader.EXPECT().FindByEventID(gomock.Any(), "E-1").Return(nil, errors.New("connection reset"))

	event, err := service.FindEvent(context.Background(), "E-1")
	assert.Nil(t, event)
	requireServiceError(t, err, "STATS_9000", "internal")
}
