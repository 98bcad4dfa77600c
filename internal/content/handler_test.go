package content

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vidyasetu/backend/internal/dataset"
	"github.com/vidyasetu/backend/internal/llm"
	"github.com/vidyasetu/backend/internal/models"
	"github.com/vidyasetu/backend/internal/store"
	"github.com/vidyasetu/backend/internal/telemetry"
)

func newTestHandler(t *testing.T, provider llm.Provider) *Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "examples.csv")
	csv := "language,grade,content_type,example\n" +
		"Hindi,4,story,Ek gaon mein ek kisan rehta tha.\n" +
		"Hindi,4,story,Nadi kinare ek ped tha.\n" +
		"English,5,poem,The river runs to the sea.\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatalf("write examples: %v", err)
	}

	svc := NewService(provider,
		store.NewList[models.GeneratedContent](),
		store.NewList[models.GeneratedVisualAid](),
		dataset.Load(path),
		zap.NewNop().Sugar(), telemetry.New())
	return NewHandler(svc)
}

func TestGenerate(t *testing.T) {
	h := newTestHandler(t, &llm.MockProvider{Text: "Ek chhoti si kahani."})

	body := `{"prompt": "A story about farming", "content_type": "story", "language": "Hindi", "grade": "4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Generate(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var item models.GeneratedContent
	if err := json.Unmarshal(w.Body.Bytes(), &item); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if item.Content != "Ek chhoti si kahani." {
		t.Errorf("content = %q", item.Content)
	}
	if item.ContentType != "story" || item.Language != "Hindi" {
		t.Errorf("request fields not echoed: %+v", item)
	}
	if item.ID == "" {
		t.Error("missing id")
	}
}

func TestGenerateValidation(t *testing.T) {
	h := newTestHandler(t, llm.NewMockProvider())

	tests := []struct {
		name string
		body string
	}{
		{"bad body", "{oops"},
		{"missing prompt", `{"content_type": "story", "language": "Hindi", "grade": "4"}`},
		{"missing fields", `{"prompt": "A story"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Generate(w, req)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestListLimit(t *testing.T) {
	h := newTestHandler(t, llm.NewMockProvider())

	for i := 0; i < 3; i++ {
		body := `{"prompt": "p", "content_type": "story", "language": "Hindi", "grade": "4"}`
		w := httptest.NewRecorder()
		h.Generate(w, httptest.NewRequest(http.MethodPost, "/api/v1/content", strings.NewReader(body)))
		if w.Code != http.StatusCreated {
			t.Fatalf("generate %d: status %d", i, w.Code)
		}
	}

	w := httptest.NewRecorder()
	h.List(w, httptest.NewRequest(http.MethodGet, "/api/v1/content?limit=2", nil))

	var items []models.GeneratedContent
	if err := json.Unmarshal(w.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("list length = %d, want 2", len(items))
	}
}

func TestGenerateVisualAid(t *testing.T) {
	h := newTestHandler(t, &llm.MockProvider{Text: "1. Draw a large circle for the sun."})

	body := `{"description": "water cycle", "subject": "Science", "grade": "5"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/visual-aids", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.GenerateVisualAid(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}

	var aid models.GeneratedVisualAid
	if err := json.Unmarshal(w.Body.Bytes(), &aid); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !strings.Contains(aid.Instructions, "circle") {
		t.Errorf("instructions = %q", aid.Instructions)
	}
}

func TestGenerateVisualAidRequiresDescription(t *testing.T) {
	h := newTestHandler(t, llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/visual-aids", strings.NewReader(`{"subject": "Maths"}`))
	w := httptest.NewRecorder()
	h.GenerateVisualAid(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
