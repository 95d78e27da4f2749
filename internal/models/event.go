package models

import "time"

// DefectCountUnknown marks an event whose defect count was not reported.
// Such events still count as events but add nothing to defect totals.
const DefectCountUnknown = -1

// Event is the stored form of a factory-floor event. Exactly one row exists per EventID;
// ReceivedTime is stamped by the server and orders reconciling updates.
//
// Example JSON:
//
//	{
//	  "eventId": "E-1001",
//	  "factoryId": "F-01",
//	  "lineId": "L-01",
//	  "machineId": "M-001",
//	  "eventTime": "2026-01-14T23:30:00Z",
//	  "receivedTime": "2026-01-15T00:00:00.000123Z",
//	  "durationMs": 1000,
//	  "defectCount": 0
//	}
type Event struct {
	EventID      string    `json:"eventId"`
	FactoryID    string    `json:"factoryId"`
	LineID       string    `json:"lineId"`
	MachineID    string    `json:"machineId"`
	EventTime    time.Time `json:"eventTime"`
	ReceivedTime time.Time `json:"receivedTime"`
	DurationMs   int64     `json:"durationMs"`
	DefectCount  int       `json:"defectCount"`
}

// HasKnownDefects reports whether DefectCount should contribute to defect totals.
func (e *Event) HasKnownDefects() bool {
	return e.DefectCount != DefectCountUnknown
}

// NormalizeInstant converts t to UTC at microsecond precision, the resolution every store keeps.
func NormalizeInstant(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
