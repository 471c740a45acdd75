// Package httphandler implements the JSON API driving adapter: health probes
// and the middleware shared by every route.
package httphandler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/ericfisherdev/tokenview/internal/application"
)

// Handler is the HTTP driving adapter that serves the JSON API.
type Handler struct {
	healthSvc *application.HealthService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(healthSvc *application.HealthService, logger *slog.Logger) *Handler {
	return &Handler{
		healthSvc: healthSvc,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers the API routes on mux.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/v1/health", h.Health)
}

// Health reports whether the credential store is reachable.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	report := h.healthSvc.Check(r.Context())

	resp := HealthResponse{
		Status: "ok",
		Store:  report.Store,
		Time:   time.Now().UTC().Format(time.RFC3339),
	}
	if !report.Healthy {
		h.logger.Error("health check failed", "store", report.Store, "error", report.Error)
		resp.Status = "unavailable"
		resp.Error = report.Error
		writeJSON(w, http.StatusServiceUnavailable, resp)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
