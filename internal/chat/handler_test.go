package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/vidyasetu/backend/internal/llm"
	"github.com/vidyasetu/backend/internal/models"
	"github.com/vidyasetu/backend/internal/store"
	"github.com/vidyasetu/backend/internal/telemetry"
)

func newTestHandler(provider llm.Provider) *Handler {
	svc := NewService(provider, store.NewList[models.ChatMessage](), zap.NewNop().Sugar(), telemetry.New())
	return NewHandler(svc)
}

func TestAsk(t *testing.T) {
	h := newTestHandler(&llm.MockProvider{Text: "Plants make food from sunlight.\nThis is called photosynthesis."})

	body := `{"question": "How do plants eat?", "language": "Hindi", "grade": "4"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.Ask(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusCreated, w.Body.String())
	}

	var msg models.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msg); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if msg.Question != "How do plants eat?" {
		t.Errorf("question = %q", msg.Question)
	}
	if !strings.Contains(msg.Answer, "photosynthesis") {
		t.Errorf("answer missing model text: %q", msg.Answer)
	}
	if len(msg.Feedback) != 2 {
		t.Errorf("feedback lines = %d, want 2", len(msg.Feedback))
	}
}

func TestAskRequiresQuestion(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"language": "English"}`))
	w := httptest.NewRecorder()
	h.Ask(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestAskRejectsBadBody(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Ask(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestHistoryOrderAndClear(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())

	for _, q := range []string{"first", "second", "third"} {
		body := `{"question": "` + q + `"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
		w := httptest.NewRecorder()
		h.Ask(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("ask %q: status %d", q, w.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", nil)
	w := httptest.NewRecorder()
	h.History(w, req)

	var msgs []models.ChatMessage
	if err := json.Unmarshal(w.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("unmarshal history: %v", err)
	}
	if len(msgs) != 3 {
		t.Fatalf("history length = %d, want 3", len(msgs))
	}
	if msgs[0].Question != "first" || msgs[2].Question != "third" {
		t.Errorf("history not chronological: %q ... %q", msgs[0].Question, msgs[2].Question)
	}

	w = httptest.NewRecorder()
	h.ClearHistory(w, httptest.NewRequest(http.MethodDelete, "/api/v1/chat/history", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("clear status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", nil))
	if err := json.Unmarshal(w.Body.Bytes(), &msgs); err != nil {
		t.Fatalf("unmarshal history after clear: %v", err)
	}
	if len(msgs) != 0 {
		t.Errorf("history after clear = %d entries, want 0", len(msgs))
	}
}

func TestHistoryEmptyIsArray(t *testing.T) {
	h := newTestHandler(llm.NewMockProvider())

	w := httptest.NewRecorder()
	h.History(w, httptest.NewRequest(http.MethodGet, "/api/v1/chat/history", nil))

	if got := strings.TrimSpace(w.Body.String()); got != "[]" {
		t.Errorf("empty history body = %q, want []", got)
	}
}
