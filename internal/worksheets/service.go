// Package worksheets implements the differentiated worksheet flow:
// textbook text or a page photo goes to the model, the reply is
// normalized against the variants shape, and bad replies degrade to the
// fixed three-variant fallback set.
package worksheets

import (
	"context"
	"encoding/base64"
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

const flow = "worksheets"

type Service struct {
	provider llm.Provider
	store    *store.List[models.WorksheetSet]
	log      *zap.SugaredLogger
	metrics  *telemetry.Metrics
}

func NewService(provider llm.Provider, st *store.List[models.WorksheetSet], log *zap.SugaredLogger, metrics *telemetry.Metrics) *Service {
	return &Service{provider: provider, store: st, log: log, metrics: metrics}
}

// DecodeImage turns the request's base64 payload into an llm.Image.
// Returns nil when no image was supplied.
func DecodeImage(req models.GenerateWorksheetsRequest) (*llm.Image, error) {
	if req.ImageBase64 == "" {
		return nil, nil
	}
	data, err := base64.StdEncoding.DecodeString(req.ImageBase64)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	mime := req.ImageMimeType
	if mime == "" {
		mime = "image/jpeg"
	}
	return &llm.Image{Data: data, MIMEType: mime}, nil
}

func (s *Service) Generate(ctx context.Context, req models.GenerateWorksheetsRequest, image *llm.Image) (*models.WorksheetSet, error) {
	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      generator.WorksheetSystemPrompt(),
		Prompt:      generator.BuildWorksheetPrompt(req),
		Image:       image,
		Temperature: 0.4,
		MaxTokens:   4096,
	})
	if err != nil {
		s.metrics.RecordError(flow)
		return nil, fmt.Errorf("generate worksheets: %w", err)
	}

	normalized := generator.NormalizeWorksheets(resp.Text, generator.FallbackWorksheets())
	if normalized.Degraded {
		s.metrics.RecordDegraded(flow)
		s.log.Warnw("worksheets degraded to fallback", "reason", normalized.Reason)
	} else {
		s.metrics.RecordOK(flow)
	}

	set := models.WorksheetSet{
		ID:        uuid.NewString(),
		Subject:   req.Subject,
		Grades:    req.Grades,
		Variants:  normalized.Value,
		Degraded:  normalized.Degraded,
		CreatedAt: time.Now().UTC(),
	}
	s.store.Prepend(set)
	return &set, nil
}

func (s *Service) Recent(n int) []models.WorksheetSet {
	return s.store.Recent(n)
}
