package aggregators

import (
	"context"
	"strings"
	"time"

	"factory-events/internal/models"
	"factory-events/internal/shared/loggers"
	"factory-events/internal/shared/metrics"
	"factory-events/internal/shared/svcerrors"
	"factory-events/internal/stores"
)

//go:generate mockgen -source=stats_service.go -destination=./mocks/stats_service_mock.go -package=mocks
type StatsService interface {
	// MachineStats reports health of one machine over [start, end).
	MachineStats(ctx context.Context, machineID string, start, end time.Time) (*models.MachineStatsResponse, error)
	// TopDefectLines ranks the lines of a factory over [from, to) by total defects.
	TopDefectLines(ctx context.Context, factoryID string, from, to time.Time, limit int) ([]*models.TopDefectLine, error)
}

type statsService struct {
	calculator StatsCalculator
	reader     stores.EventReader
}

func NewStatsService(calculator StatsCalculator, reader stores.EventReader) StatsService {
	return &statsService{calculator: calculator, reader: reader}
}

func (s *statsService) MachineStats(ctx context.Context, machineID string, start, end time.Time) (*models.MachineStatsResponse, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldMachineID, machineID).Msgf("started machine stats for window %s - %s", start, end)

	window, ok := validateWindow(machineID, start, end)
	if !ok {
		return nil, s.fail(queryMachineStats, errInvalidMachineWindow())
	}

	agg, err := s.reader.AggregateByMachine(ctx, machineID, window)
	if err != nil {
		return nil, s.fail(queryMachineStats, errInternalEventStoreFailed(err))
	}

	stats := s.calculator.MachineStats(machineID, window, agg)
	metricStatsQueryTotal.WithLabelValues(queryMachineStats, metrics.ValueNoError).Inc()
	metricMachineStatusTotal.WithLabelValues(string(stats.Status)).Inc()
	return stats, nil
}

func (s *statsService) TopDefectLines(ctx context.Context, factoryID string, from, to time.Time, limit int) ([]*models.TopDefectLine, error) {
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldFactoryID, factoryID).Msgf("started top defect lines for window %s - %s, limit %d", from, to, limit)

	window, ok := validateWindow(factoryID, from, to)
	if !ok {
		return nil, s.fail(queryTopDefectLines, errInvalidFactoryWindow())
	}

	lines, err := s.reader.AggregateTopLines(ctx, factoryID, window, clampTopLinesLimit(limit))
	if err != nil {
		return nil, s.fail(queryTopDefectLines, errInternalEventStoreFailed(err))
	}

	metricStatsQueryTotal.WithLabelValues(queryTopDefectLines, metrics.ValueNoError).Inc()
	return s.calculator.TopDefectLines(lines), nil
}

func (s *statsService) fail(query string, svcErr *svcerrors.ServiceError) *svcerrors.ServiceError {
	metricStatsQueryTotal.WithLabelValues(query, svcErr.Code).Inc()
	return svcErr
}

func validateWindow(id string, start, end time.Time) (models.Window, bool) {
	if strings.TrimSpace(id) == "" {
		return models.Window{}, false
	}
	window, err := models.NewWindow(start, end)
	if err != nil {
		return models.Window{}, false
	}
	return window, true
}
