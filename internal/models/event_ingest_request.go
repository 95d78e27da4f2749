package models

import "time"

// EventIngestRequest is one element of a submitted batch. ReceivedTime is accepted on the
// wire for compatibility but never trusted; the server stamps its own.
type EventIngestRequest struct {
	EventID      string     `json:"eventId" validate:"required,notblank"`
	FactoryID    string     `json:"factoryId" validate:"required,notblank"`
	LineID       string     `json:"lineId" validate:"required,notblank"`
	MachineID    string     `json:"machineId" validate:"required,notblank"`
	EventTime    *time.Time `json:"eventTime" validate:"required"`
	ReceivedTime *time.Time `json:"receivedTime,omitempty"`
	DurationMs   int64      `json:"durationMs"`
	DefectCount  int        `json:"defectCount"`
}

// ToEvent builds the row to store, stamped with receivedAt.
func (r *EventIngestRequest) ToEvent(receivedAt time.Time) *Event {
	return &Event{
		EventID:      r.EventID,
		FactoryID:    r.FactoryID,
		LineID:       r.LineID,
		MachineID:    r.MachineID,
		EventTime:    NormalizeInstant(*r.EventTime),
		ReceivedTime: NormalizeInstant(receivedAt),
		DurationMs:   r.DurationMs,
		DefectCount:  r.DefectCount,
	}
}
