package http

import (
	"net/http"

	"github.com/dkovalev/running-log/internal/utils"
	"github.com/dkovalev/running-log/models"
)

// serviceName is reported by the health probe.
const serviceName = "running-log-api"

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
	}, http.StatusOK)
}
