package content

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
	var req models.GenerateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Prompt == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "prompt is required"})
		return
	}
	if req.ContentType == "" || req.Language == "" || req.Grade == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "content_type, language, and grade are required"})
		return
	}

	item, err := h.service.Generate(r.Context(), req)
	if err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Content generation unavailable: " + err.Error()})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := httpx.IntQueryParam(r.URL.Query(), "limit", 10)
	items := h.service.Recent(limit)
	if items == nil {
		items = []models.GeneratedContent{}
	}
	httpx.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GenerateVisualAid(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateVisualAidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Description == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "description is required"})
		return
	}

	aid, err := h.service.GenerateVisualAid(r.Context(), req)
	if err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Visual aid generation unavailable: " + err.Error()})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, aid)
}

func (h *Handler) ListVisualAids(w http.ResponseWriter, r *http.Request) {
	limit := httpx.IntQueryParam(r.URL.Query(), "limit", 20)
	aids := h.service.RecentVisualAids(limit)
	if aids == nil {
		aids = []models.GeneratedVisualAid{}
	}
	httpx.WriteJSON(w, http.StatusOK, aids)
}
