package reading

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

func (h *Handler) Assess(w http.ResponseWriter, r *http.Request) {
	var req models.ReadingAssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.StudentName == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "student_name is required"})
		return
	}
	if req.DurationSeconds <= 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "duration_seconds must be positive"})
		return
	}
	if WordCount(req) <= 0 {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "word_count or passage_text is required"})
		return
	}

	result, err := h.service.Assess(r.Context(), req)
	if err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Reading assessment unavailable: " + err.Error()})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, result)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := httpx.IntQueryParam(r.URL.Query(), "limit", 20)
	results := h.service.Recent(limit)
	if results == nil {
		results = []models.ReadingAssessmentResult{}
	}
	httpx.WriteJSON(w, http.StatusOK, results)
}
