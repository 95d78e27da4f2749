package aggregators

import (
	"factory-events/internal/models"

	"github.com/shopspring/decimal"
)

const (
	// warningDefectRate is the defects-per-hour rate from which a machine is reported as Warning.
	warningDefectRate = 2.0

	defaultTopLinesLimit = 10
	maxTopLinesLimit     = 100
)

// StatsCalculator turns raw store aggregates into the published statistics.
type StatsCalculator interface {
	MachineStats(machineID string, window models.Window, agg *models.MachineAggregate) *models.MachineStatsResponse
	TopDefectLines(lines []*models.LineAggregate) []*models.TopDefectLine
}

type statsCalculator struct{}

func NewStatsCalculator() StatsCalculator {
	return &statsCalculator{}
}

func (c *statsCalculator) MachineStats(machineID string, window models.Window, agg *models.MachineAggregate) *models.MachineStatsResponse {
	rate := 0.0
	if hours := window.Hours(); hours > 0 {
		rate = float64(agg.DefectsCount) / hours
	}

	// status is decided on the unrounded rate
	status := models.MachineHealthy
	if rate >= warningDefectRate {
		status = models.MachineWarning
	}

	return &models.MachineStatsResponse{
		MachineID:     machineID,
		Start:         window.Start,
		End:           window.End,
		EventsCount:   agg.EventsCount,
		DefectsCount:  agg.DefectsCount,
		AvgDefectRate: roundHalfUp(rate, 2),
		Status:        status,
	}
}

func (c *statsCalculator) TopDefectLines(lines []*models.LineAggregate) []*models.TopDefectLine {
	result := make([]*models.TopDefectLine, 0, len(lines))
	for _, line := range lines {
		percent := 0.0
		if line.EventCount > 0 {
			percent = float64(line.TotalDefects) * 100.0 / float64(line.EventCount)
		}
		result = append(result, &models.TopDefectLine{
			LineID:         line.LineID,
			TotalDefects:   line.TotalDefects,
			EventCount:     line.EventCount,
			DefectsPercent: roundHalfUp(percent, 2),
		})
	}
	return result
}

// clampTopLinesLimit maps non-positive limits to the default and caps the rest.
func clampTopLinesLimit(limit int) int {
	if limit <= 0 {
		return defaultTopLinesLimit
	}
	return min(limit, maxTopLinesLimit)
}

// roundHalfUp rounds the shortest decimal representation of v, ties away from zero.
func roundHalfUp(v float64, places int32) float64 {
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}
