package models

import "time"

// GeneratedContent is one stored result of the content generation flow:
// a story, poem, explanation, or similar classroom material authored by
// the model in the requested language.
type GeneratedContent struct {
	ID          string    `json:"id"`
	ContentType string    `json:"type"`
	Language    string    `json:"language"`
	Grade       string    `json:"grade"`
	Topic       string    `json:"topic"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"timestamp"`
}

type GenerateContentRequest struct {
	Prompt      string `json:"prompt"`
	ContentType string `json:"content_type"`
	Language    string `json:"language"`
	Grade       string `json:"grade"`
}

// GeneratedVisualAid holds model-authored blackboard drawing instructions
// for a concept the teacher wants to illustrate.
type GeneratedVisualAid struct {
	ID           string    `json:"id"`
	Description  string    `json:"description"`
	Subject      string    `json:"subject"`
	Grade        string    `json:"grade"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"timestamp"`
}

type GenerateVisualAidRequest struct {
	Description string `json:"description"`
	Subject     string `json:"subject,omitempty"`
	Grade       string `json:"grade,omitempty"`
}
