// Package content implements the content generation and visual aid flows:
// model-authored classroom material seeded with few-shot rows from the
// reference dataset.
package content

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

const (
	flowContent   = "content"
	flowVisualAid = "visual_aid"

	// exampleCount limits how many reference rows get embedded in a prompt.
	exampleCount = 3
)

type Service struct {
	provider llm.Provider
	store    *store.List[models.GeneratedContent]
	aids     *store.List[models.GeneratedVisualAid]
	examples *dataset.Table
	log      *zap.SugaredLogger
	metrics  *telemetry.Metrics
}

func NewService(provider llm.Provider, st *store.List[models.GeneratedContent], aids *store.List[models.GeneratedVisualAid], examples *dataset.Table, log *zap.SugaredLogger, metrics *telemetry.Metrics) *Service {
	return &Service{provider: provider, store: st, aids: aids, examples: examples, log: log, metrics: metrics}
}

// Generate asks the model for content in the requested language and grade,
// seeding the prompt with matching reference rows, and prepends the result
// to the history.
func (s *Service) Generate(ctx context.Context, req models.GenerateContentRequest) (*models.GeneratedContent, error) {
	rows := s.examples.Filter(map[string]string{
		"language":     req.Language,
		"grade":        req.Grade,
		"content_type": req.ContentType,
	}).Sample(exampleCount)

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generator.ContentSystemPrompt(),
		Prompt:      generator.BuildContentPrompt(req, dataset.FormatRecords(rows)),
		Temperature: 0.8,
		MaxTokens:   2048,
	})
	if err != nil {
		s.metrics.RecordError(flowContent)
		return nil, fmt.Errorf("generate content: %w", err)
	}

	item := models.GeneratedContent{
		ID:          uuid.NewString(),
		ContentType: req.ContentType,
		Language:    req.Language,
		Grade:       req.Grade,
		Topic:       req.Prompt,
		Content:     resp.Text,
		CreatedAt:   time.Now().UTC(),
	}
	s.metrics.RecordOK(flowContent)
	s.store.Prepend(item)

	s.log.Infow("content generated",
		"type", item.ContentType, "language", item.Language, "grade", item.Grade,
		"examples", len(rows), "output_tokens", resp.OutputTokens)

	return &item, nil
}

func (s *Service) Recent(n int) []models.GeneratedContent {
	return s.store.Recent(n)
}

// GenerateVisualAid asks the model for blackboard drawing instructions.
func (s *Service) GenerateVisualAid(ctx context.Context, req models.GenerateVisualAidRequest) (*models.GeneratedVisualAid, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generator.VisualAidSystemPrompt(),
		Prompt:      generator.BuildVisualAidPrompt(req),
		Temperature: 0.5,
		MaxTokens:   1024,
	})
	if err != nil {
		s.metrics.RecordError(flowVisualAid)
		return nil, fmt.Errorf("generate visual aid: %w", err)
	}

	aid := models.GeneratedVisualAid{
		ID:           uuid.NewString(),
		Description:  req.Description,
		Subject:      req.Subject,
		Grade:        req.Grade,
		Instructions: resp.Text,
		CreatedAt:    time.Now().UTC(),
	}
	s.metrics.RecordOK(flowVisualAid)
	s.aids.Prepend(aid)
	return &aid, nil
}

func (s *Service) RecentVisualAids(n int) []models.GeneratedVisualAid {
	return s.aids.Recent(n)
}
