package http

import (
	"net/http"

	"factory-events/internal/aggregators"

	"github.com/go-chi/chi/v5"
)

type eventLookupHandler struct {
	lookupService aggregators.EventLookupService
}

func NewEventLookupHandler(lookupService aggregators.EventLookupService) AppHttpHandler {
	return &eventLookupHandler{lookupService: lookupService}
}

// Handle processes GET /events/{eventId}.
func (h *eventLookupHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	event, err := h.lookupService.FindEvent(r.Context(), chi.URLParam(r, "eventId"))
	if err != nil {
		return err
	}

	writeJSON(w, http.StatusOK, event)
	return nil
}
