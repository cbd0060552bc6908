package handler

import (
	"context"
	"net/http"
	"time"

	"resume-filter/internal/domain"
	apperrors "resume-filter/pkg/errors"
)

const serviceName = "resume-filter"

type HealthHandler struct {
	healthService domain.HealthService
	timeout       time.Duration
}

func NewHealthHandler(healthService domain.HealthService) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
		timeout:       3 * time.Second,
	}
}

// Health is a liveness probe; it never touches a dependency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.healthService.Ready(ctx); err != nil {
		status := http.StatusServiceUnavailable
		if apperrors.IsType(err, apperrors.ErrorTypeUnavailable) {
			status = apperrors.GetStatusCode(err)
		}
		writeError(w, status, "Service not ready")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
