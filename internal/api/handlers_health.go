package api

import (
	"net/http"

	"github.com/iammorganparry/brainstorm/internal/models"
)

// SessionCounter reports how many sessions the backing store holds.
type SessionCounter func() (int, error)

type HealthHandler struct {
	count SessionCounter
}

func NewHealthHandler(count SessionCounter) *HealthHandler {
	return &HealthHandler{count: count}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := models.HealthResponse{
		Status: "ok",
	}

	count, err := h.count()
	if err != nil {
		resp.DB = models.ServiceCheck{Status: "error", Message: err.Error()}
		resp.Status = "degraded"
	} else {
		resp.DB = models.ServiceCheck{Status: "ok"}
		resp.SessionCount = count
	}

	status := http.StatusOK
	if resp.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, resp)
}
