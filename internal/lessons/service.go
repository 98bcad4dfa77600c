// Package lessons implements the lesson plan flow. Model replies are
// normalized against the lesson plan shape; undecodable replies degrade
// to a deterministic fallback plan instead of failing the request.
package lessons

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vidyasetu/backend/internal/dataset"
	"github.com/vidyasetu/backend/internal/generator"
	"github.com/vidyasetu/backend/internal/llm"
	"github.com/vidyasetu/backend/internal/models"
	"github.com/vidyasetu/backend/internal/store"
	"github.com/vidyasetu/backend/internal/telemetry"
)

const flow = "lesson_plan"

type Service struct {
	provider llm.Provider
	store    *store.List[models.LessonPlan]
	examples *dataset.Table
	log      *zap.SugaredLogger
	metrics  *telemetry.Metrics
}

func NewService(provider llm.Provider, st *store.List[models.LessonPlan], examples *dataset.Table, log *zap.SugaredLogger, metrics *telemetry.Metrics) *Service {
	return &Service{provider: provider, store: st, examples: examples, log: log, metrics: metrics}
}

func (s *Service) Generate(ctx context.Context, req models.GenerateLessonPlanRequest) (*models.LessonPlan, error) {
	rows := s.examples.Filter(map[string]string{
		"subject": req.Subject,
		"grade":   req.Grade,
	}).Sample(3)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generator.LessonPlanSystemPrompt(),
		Prompt:      generator.BuildLessonPlanPrompt(req, dataset.FormatRecords(rows)),
		Temperature: 0.4,
		MaxTokens:   4096,
	})
	if err != nil {
		s.metrics.RecordError(flow)
		return nil, fmt.Errorf("generate lesson plan: %w", err)
	}

	normalized := generator.NormalizeLessonPlan(resp.Text, generator.FallbackLessonPlan(req))
	if normalized.Degraded {
		s.metrics.RecordDegraded(flow)
		s.log.Warnw("lesson plan degraded to fallback", "reason", normalized.Reason)
	} else {
		s.metrics.RecordOK(flow)
	}

	days := req.Days
	if days <= 0 {
		days = len(normalized.Value.Sessions)
	}

	plan := models.LessonPlan{
		ID:        uuid.NewString(),
		Subject:   req.Subject,
		Grade:     req.Grade,
		Topic:     req.Topic,
		Language:  req.Language,
		Days:      days,
		Plan:      normalized.Value,
		Degraded:  normalized.Degraded,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Prepend(plan)
	return &plan, nil
}

func (s *Service) Recent(n int) []models.LessonPlan {
	return s.store.Recent(n)
}
