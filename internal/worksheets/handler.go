package worksheets

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
	r.Body = http.MaxBytesReader(w, r.Body, 20<<20) // page photos

	var req models.GenerateWorksheetsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.TextbookText == "" && req.ImageBase64 == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "textbook_text or image_base64 is required"})
		return
	}

	image, err := DecodeImage(req)
	if err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "image_base64 is not valid base64"})
		return
	}

	set, err := h.service.Generate(r.Context(), req, image)
	if err != nil {
		httpx.WriteJSON(w, http.StatusServiceUnavailable, models.ErrorResponse{Error: "Worksheet generation unavailable: " + err.Error()})
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, set)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := httpx.IntQueryParam(r.URL.Query(), "limit", 20)
	sets := h.service.Recent(limit)
	if sets == nil {
		sets = []models.WorksheetSet{}
	}
	httpx.WriteJSON(w, http.StatusOK, sets)
}
