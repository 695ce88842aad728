package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

const healthCheckTimeout = 2 * time.Second

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	if err := h.healthChecker.PingContext(ctx); err != nil {
		logger.FromRequest(r).Err(err).Msg("database ping failed")
		utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusUnavailable}, http.StatusServiceUnavailable)
		return
	}

	utils.WriteJSON(w, models.HealthResponse{Status: models.HealthStatusOK}, http.StatusOK)
}
