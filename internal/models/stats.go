package models

import "time"

type MachineStatus string

const (
	MachineHealthy MachineStatus = "Healthy"
	MachineWarning MachineStatus = "Warning"
)

type MachineStatsResponse struct {
	MachineID     string        `json:"machineId"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	EventsCount   int64         `json:"eventsCount"`
	DefectsCount  int64         `json:"defectsCount"`
	AvgDefectRate float64       `json:"avgDefectRate"`
	Status        MachineStatus `json:"status"`
}

type TopDefectLine struct {
	LineID         string  `json:"lineId"`
	TotalDefects   int64   `json:"totalDefects"`
	EventCount     int64   `json:"eventCount"`
	DefectsPercent float64 `json:"defectsPercent"`
}

// MachineAggregate is the raw store answer for one machine over a window.
type MachineAggregate struct {
	EventsCount  int64
	DefectsCount int64
}

// LineAggregate is the raw store answer for one line over a window.
type LineAggregate struct {
	LineID       string
	EventCount   int64
	TotalDefects int64
}
