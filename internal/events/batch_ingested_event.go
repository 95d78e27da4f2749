package events

import (
	"time"

	"factory-events/internal/models"
)

// BatchIngestedEvent is emitted once a batch's write transaction has committed. It carries the
// rows exactly as they were stamped and handed to the store, plus the classification counts.
//
// Example JSON:
//
//	{
//	  "batchId": "01KF0M8Q3S9Y8W1E6R2T4V5X7Z",
//	  "receivedAt": "2026-01-15T00:00:00Z",
//	  "events": [
//	    {"eventId": "E-1", "factoryId": "F-01", "lineId": "L-01", "machineId": "M-001", ...}
//	  ],
//	  "accepted": 1,
//	  "deduped": 0,
//	  "updated": 0,
//	  "rejected": 1
//	}
type BatchIngestedEvent struct {
	BatchID    string          `json:"batchId"`
	ReceivedAt time.Time       `json:"receivedAt"`
	Events     []*models.Event `json:"events"`
	Accepted   int             `json:"accepted"`
	Deduped    int             `json:"deduped"`
	Updated    int             `json:"updated"`
	Rejected   int             `json:"rejected"`
}

func NewBatchIngestedEvent(batchID string, receivedAt time.Time, rows []*models.Event, result *models.BatchIngestResult) *BatchIngestedEvent {
	return &BatchIngestedEvent{
		BatchID:    batchID,
		ReceivedAt: receivedAt,
		Events:     rows,
		Accepted:   result.Accepted,
		Deduped:    result.Deduped,
		Updated:    result.Updated,
		Rejected:   result.Rejected,
	}
}
