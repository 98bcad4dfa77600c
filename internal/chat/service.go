// Package chat implements the teaching assistant Q&A flow. History is
// kept in memory in chronological order and can be cleared.
package chat

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vidyasetu/backend/internal/generator"
	"github.com/vidyasetu/backend/internal/llm"
	"github.com/vidyasetu/backend/internal/models"
	"github.com/vidyasetu/backend/internal/store"
	"github.com/vidyasetu/backend/internal/telemetry"
)

const flow = "chat"

type Service struct {
	provider llm.Provider
	store    *store.List[models.ChatMessage]
	log      *zap.SugaredLogger
	metrics  *telemetry.Metrics
}

func NewService(provider llm.Provider, st *store.List[models.ChatMessage], log *zap.SugaredLogger, metrics *telemetry.Metrics) *Service {
	return &Service{provider: provider, store: st, log: log, metrics: metrics}
}

func (s *Service) Ask(ctx context.Context, req models.ChatRequest) (*models.ChatMessage, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generator.ChatSystemPrompt(),
		Prompt:      generator.BuildChatPrompt(req),
		Temperature: 0.7,
		MaxTokens:   1024,
	})
	if err != nil {
		s.metrics.RecordError(flow)
		return nil, fmt.Errorf("chat: %w", err)
	}
	s.metrics.RecordOK(flow)

	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Question:  req.Question,
		Language:  req.Language,
		Grade:     req.Grade,
		Answer:    resp.Text,
		Feedback:  generator.NormalizeStringList(resp.Text),
		CreatedAt: time.Now().UTC(),
	}
	s.store.Append(msg)
	s.log.Infow("chat answered", "question_len", len(req.Question), "model", s.provider.ModelID())
	return &msg, nil
}

func (s *Service) History(n int) []models.ChatMessage {
	return s.store.Recent(n)
}

func (s *Service) ClearHistory() {
	s.store.Clear()
}
