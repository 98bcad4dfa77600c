package chat

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

func (h *Handler) Ask(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.Question == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "question is required"})
		return
	}

	msg, err := h.service.Ask(r.Context(), req)
	if err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Chat unavailable: " + err.Error()})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, msg)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	limit := httpx.IntQueryParam(r.URL.Query(), "limit", 0) // 0 = full history
	msgs := h.service.History(limit)
	if msgs == nil {
		msgs = []models.ChatMessage{}
	}
	httpx.WriteJSON(w, http.StatusOK, msgs)
}

func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	h.service.ClearHistory()
	httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
