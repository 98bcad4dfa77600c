package reading

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/vidyasetu/backend/internal/generator"
	"github.com/vidyasetu/backend/internal/llm"
	"github.com/vidyasetu/backend/internal/models"
	"github.com/vidyasetu/backend/internal/store"
	"github.com/vidyasetu/backend/internal/telemetry"
)

const flow = "reading"

type Service struct {
	provider llm.Provider
	store    *store.List[models.ReadingAssessmentResult]
	log      *zap.SugaredLogger
	metrics  *telemetry.Metrics
}

func NewService(provider llm.Provider, st *store.List[models.ReadingAssessmentResult], log *zap.SugaredLogger, metrics *telemetry.Metrics) *Service {
	return &Service{provider: provider, store: st, log: log, metrics: metrics}
}

// WordCount resolves the word count for a request: the explicit count if
// given, otherwise the number of whitespace-separated words in the passage.
func WordCount(req models.ReadingAssessmentRequest) int {
	if req.WordCount > 0 {
		return req.WordCount
	}
	return len(strings.Fields(req.PassageText))
}

// Assess computes the reading metrics, asks the model for feedback lines,
// and prepends the result to the history. The caller has already verified
// that duration and word count are positive.
func (s *Service) Assess(ctx context.Context, req models.ReadingAssessmentRequest) (*models.ReadingAssessmentResult, error) {
	wordCount := WordCount(req)
	wpm, accuracy, fluency := ComputeMetrics(req.DurationSeconds, float64(wordCount))

	result := models.ReadingAssessmentResult{
		ID:              uuid.NewString(),
		StudentName:     req.StudentName,
		Grade:           req.Grade,
		PassageTitle:    req.PassageTitle,
		WordCount:       wordCount,
		DurationSeconds: req.DurationSeconds,
		WordsPerMinute:  wpm,
		Accuracy:        accuracy,
		Fluency:         fluency,
		CreatedAt:       time.Now().UTC(),
	}

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generator.ReadingFeedbackSystemPrompt(),
		Prompt:      generator.BuildReadingFeedbackPrompt(result),
		Temperature: 0.6,
		MaxTokens:   512,
	})
	if err != nil {
		s.metrics.RecordError(flow)
		return nil, fmt.Errorf("reading feedback: %w", err)
	}

	result.Feedback = generator.NormalizeStringList(resp.Text)
	s.metrics.RecordOK(flow)
	s.store.Prepend(result)

	s.log.Infow("reading assessment recorded",
		"student", result.StudentName, "wpm", result.WordsPerMinute,
		"accuracy", result.Accuracy, "fluency", result.Fluency)

	return &result, nil
}

func (s *Service) Recent(n int) []models.ReadingAssessmentResult {
	return s.store.Recent(n)
}
