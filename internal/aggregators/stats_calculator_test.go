package aggregators

import (
	"testing"
	"time"

	"factory-events/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundHalfUp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want float64
	}{
		{in: 0, want: 0},
		{in: 1.005, want: 1.01},
		{in: 2.675, want: 2.68},
		{in: 0.125, want: 0.13},
		{in: 0.124999, want: 0.12},
		{in: 33.333333333, want: 33.33},
		{in: 66.666666666, want: 66.67},
		{in: -1.005, want: -1.01},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundHalfUp(tt.in, 2), "roundHalfUp(%v)", tt.in)
	}
}

func TestClampTopLinesLimit(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10, clampTopLinesLimit(-5))
	assert.Equal(t, 10, clampTopLinesLimit(0))
	assert.Equal(t, 1, clampTopLinesLimit(1))
	assert.Equal(t, 100, clampTopLinesLimit(100))
	assert.Equal(t, 100, clampTopLinesLimit(101))
}

func TestStatsCalculator_MachineStats(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	calc := NewStatsCalculator()

	tests := []struct {
		name       string
		end        time.Time
		defects    int64
		wantRate   float64
		wantStatus models.MachineStatus
	}{
		{name: "no defects", end: start.Add(6 * time.Hour), defects: 0, wantRate: 0, wantStatus: models.MachineHealthy},
		{name: "below threshold", end: start.Add(6 * time.Hour), defects: 11, wantRate: 1.83, wantStatus: models.MachineHealthy},
		{name: "exactly threshold", end: start.Add(6 * time.Hour), defects: 12, wantRate: 2.0, wantStatus: models.MachineWarning},
		// 1.999 rounds to 2.00 but the status uses the unrounded rate
		{name: "rounds up to threshold", end: start.Add(1000 * time.Hour), defects: 1999, wantRate: 2.0, wantStatus: models.MachineHealthy},
		{name: "sub second window", end: start.Add(500 * time.Millisecond), defects: 7, wantRate: 0, wantStatus: models.MachineHealthy},
		{name: "thirty minutes", end: start.Add(30 * time.Minute), defects: 3, wantRate: 6, wantStatus: models.MachineWarning},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			window, err := models.NewWindow(start, tt.end)
			require.NoError(t, err)

			stats := calc.MachineStats("M-001", window, &models.MachineAggregate{EventsCount: 5, DefectsCount: tt.defects})

			assert.Equal(t, "M-001", stats.MachineID)
			assert.Equal(t, start, stats.Start)
			assert.Equal(t, tt.end, stats.End)
			assert.Equal(t, int64(5), stats.EventsCount)
			assert.Equal(t, tt.defects, stats.DefectsCount)
			assert.Equal(t, tt.wantRate, stats.AvgDefectRate)
			assert.Equal(t, tt.wantStatus, stats.Status)
		})
	}
}

func TestStatsCalculator_TopDefectLines(t *testing.T) {
	t.Parallel()

	lines := NewStatsCalculator().TopDefectLines([]*models.LineAggregate{
		{LineID: "L-A", EventCount: 2, TotalDefects: 50},
		{LineID: "L-B", EventCount: 3, TotalDefects: 1},
		{LineID: "L-C", EventCount: 0, TotalDefects: 0},
	})

	assert.Equal(t, []*models.TopDefectLine{
		{LineID: "L-A", TotalDefects: 50, EventCount: 2, DefectsPercent: 2500},
		{LineID: "L-B", TotalDefects: 1, EventCount: 3, DefectsPercent: 33.33},
		{LineID: "L-C", TotalDefects: 0, EventCount: 0, DefectsPercent: 0},
	}, lines)

	assert.NotNil(t, NewStatsCalculator().TopDefectLines(nil))
}
