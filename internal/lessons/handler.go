package lessons

import (
	"encoding/json"
	"net/http"

	"github.com/vidyasetu/backend/internal/httpx"
	"github.com/vidyasetu/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateLessonPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Subject == "" || req.Grade == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject and grade are required"})
		return
	}
	if req.Days < 0 || req.Days > 30 {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "days must be between 1 and 30"})
		return
	}

	plan, err := h.service.Generate(r.Context(), req)
	if err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Lesson plan generation unavailable: " + err.Error()})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, plan)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := httpx.IntQueryParam(r.URL.Query(), "limit", 20)
	plans := h.service.Recent(limit)
	if plans == nil {
		plans = []models.LessonPlan{}
	}
	httpx.WriteJSON(w, http.StatusOK, plans)
}
