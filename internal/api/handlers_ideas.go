package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/iammorganparry/brainstorm/internal/ideas"
	"github.com/iammorganparry/brainstorm/internal/models"
)

type IdeaHandler struct {
	svc    *ideas.Service
	logger *slog.Logger
}

func NewIdeaHandler(svc *ideas.Service, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{svc: svc, logger: logger}
}

// ForSession handles GET /api/ideas/forsession/{sessionId}
func (h *IdeaHandler) ForSession(w http.ResponseWriter, r *http.Request) {
	sessionID, err := strconv.Atoi(chi.URLParam(r, "sessionId"))
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	list, err := h.svc.ListForSession(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// Create handles POST /api/ideas
func (h *IdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := ideas.ValidateNewIdeaJSON(body); err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	var req models.NewIdeaRequest
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sess, err := h.svc.CreateIdea(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}
