// Package generator builds prompts for the generation provider and
// normalizes its replies into typed domain values. The provider is an
// unreliable, schema-agnostic collaborator: every structured consumer of
// its output degrades to a known-good default instead of surfacing a
// parse error.
package generator

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/vidyasetu/backend/internal/models"
)

// Normalized is the result of normalizing a raw model reply. Degraded is
// set when Value is the caller-supplied fallback rather than parsed model
// output, with Reason describing what failed. Normalization itself never
// returns an error and never logs; both are the caller's concern.
type Normalized[T any] struct {
	Value    T
	Degraded bool
	Reason   string
}

func parsed[T any](v T) Normalized[T] {
	return Normalized[T]{Value: v}
}

func degraded[T any](fallback T, reason string) Normalized[T] {
	return Normalized[T]{Value: fallback, Degraded: true, Reason: reason}
}

// NormalizeLessonPlan decodes raw as a lesson plan body. Decode failure or
// a structurally empty plan yields the fallback verbatim; partial model
// output is never merged with fallback fields.
func NormalizeLessonPlan(raw string, fallback models.LessonPlanFields) Normalized[models.LessonPlanFields] {
	cleaned := stripCodeFences(raw)

	var fields models.LessonPlanFields
	if err := json.Unmarshal([]byte(cleaned), &fields); err != nil {
		return degraded(fallback, fmt.Sprintf("decode lesson plan: %v", err))
	}
	if fields.Title == "" {
		return degraded(fallback, "lesson plan missing title")
	}
	if len(fields.Sessions) == 0 {
		return degraded(fallback, "lesson plan has no sessions")
	}
	return parsed(fields)
}

// NormalizeWorksheets decodes raw as an object whose "variants" key holds a
// non-empty sequence of worksheet variants. Any other shape, including a
// missing key or an empty sequence, yields the fallback verbatim.
func NormalizeWorksheets(raw string, fallback []models.WorksheetVariant) Normalized[[]models.WorksheetVariant] {
	cleaned := stripCodeFences(raw)

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &envelope); err != nil {
		return degraded(fallback, fmt.Sprintf("decode worksheets: %v", err))
	}

	rawVariants, ok := envelope["variants"]
	if !ok {
		return degraded(fallback, "missing variants key")
	}

	var variants []models.WorksheetVariant
	if err := json.Unmarshal(rawVariants, &variants); err != nil {
		return degraded(fallback, fmt.Sprintf("decode variants: %v", err))
	}
	if len(variants) == 0 {
		return degraded(fallback, "empty variants list")
	}
	return parsed(variants)
}

// NormalizeStringList splits raw on line breaks, trims whitespace, and
// drops empty lines and list markers. This path never fails: empty input
// yields an empty list.
func NormalizeStringList(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "* ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}
