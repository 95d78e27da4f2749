package http

import (
	"net/http"

	"factory-events/internal/aggregators"
)

const defaultTopLinesLimit = 10

type machineStatsHandler struct {
	statsService aggregators.StatsService
}

func NewMachineStatsHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &machineStatsHandler{statsService: statsService}
}

// Handle processes GET /stats?machineId=&start=&end=.
func (h *machineStatsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	start, err := queryInstant(r, "start")
	if err != nil {
		return err
	}
	end, err := queryInstant(r, "end")
	if err != nil {
		return err
	}

	stats, err := h.statsService.MachineStats(r.Context(), queryString(r, "machineId"), start, end)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, stats)
	return nil
}

type topDefectLinesHandler struct {
	statsService aggregators.StatsService
}

func NewTopDefectLinesHandler(statsService aggregators.StatsService) AppHttpHandler {
	return &topDefectLinesHandler{statsService: statsService}
}

// Handle processes GET /stats/top-defect-lines?factoryId=&from=&to=&limit=.
func (h *topDefectLinesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	from, err := queryInstant(r, "from")
	if err != nil {
		return err
	}
	to, err := queryInstant(r, "to")
	if err != nil {
		return err
	}
	limit, err := queryInt(r, "limit", defaultTopLinesLimit)
	if err != nil {
		return err
	}

	lines, err := h.statsService.TopDefectLines(r.Context(), queryString(r, "factoryId"), from, to, limit)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, lines)
	return nil
}
