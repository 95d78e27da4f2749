package http

import (
	"net/http"

	"factory-events/internal/ingestors"
)

type ingestBatchHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestBatchHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestBatchHandler{ingestionService: ingestionService}
}

// Handle processes POST /events/batch. Row-level rejections are part of a 200 response;
// only a body that cannot be read as a batch fails the request.
func (h *ingestBatchHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestBatch(r.Context(), contentType(r), r.Body)
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, result)
	return nil
}
