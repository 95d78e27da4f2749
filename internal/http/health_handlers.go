package http

import (
	"context"
	"net/http"
	"time"

	"factory-events/internal/shared/loggers"
)

const readinessTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// Pinger is satisfied by the event store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type livenessHandler struct{}

func NewLivenessHandler() AppHttpHandler {
	return livenessHandler{}
}

func (livenessHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, healthResponse{Status: "UP"})
	return nil
}

type readinessHandler struct {
	pinger Pinger
}

func NewReadinessHandler(pinger Pinger) AppHttpHandler {
	return &readinessHandler{pinger: pinger}
}

// Handle reports ready only while the event store answers a ping.
func (h *readinessHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		loggers.Ctx(r.Context()).Warn().Err(err).Msg("readiness check failed")
		return errStoreUnavailable(err)
	}

	writeJSON(w, http.StatusOK, healthResponse{Status: "UP"})
	return nil
}
