package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEventIngestRequest_ToEvent(t *testing.T) {
	t.Parallel()

	eventTime := time.Date(2026, 1, 14, 18, 0, 0, 123456789, time.FixedZone("ICT", 7*3600))
	clientReceived := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	receivedAt := time.Date(2026, 1, 15, 0, 0, 0, 999, time.UTC)

	req := &EventIngestRequest{
		EventID:      "E-1",
		FactoryID:    "F-01",
		LineID:       "L-01",
		MachineID:    "M-001",
		EventTime:    &eventTime,
		ReceivedTime: &clientReceived,
		DurationMs:   1000,
		DefectCount:  DefectCountUnknown,
	}

	e := req.ToEvent(receivedAt)

	assert.Equal(t, "E-1", e.EventID)
	assert.Equal(t, time.Date(2026, 1, 14, 11, 0, 0, 123456000, time.UTC), e.EventTime)
	assert.Equal(t, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), e.ReceivedTime)
	assert.Equal(t, int64(1000), e.DurationMs)
	assert.False(t, e.HasKnownDefects())
}

func TestBatchIngestResult_Reject(t *testing.T) {
	t.Parallel()

	r := NewEmptyBatchIngestResult()
	assert.NotNil(t, r.Rejections)

	r.Accepted = 2
	r.Reject("E-9", RejectionFutureEventTime)

	assert.Equal(t, 1, r.Rejected)
	assert.Equal(t, 3, r.Total())
	assert.Equal(t, &Rejection{EventID: "E-9", Reason: RejectionFutureEventTime}, r.Rejections[0])
}
