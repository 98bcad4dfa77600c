package models

import "time"

// LessonPlanFields is the structured body expected from the model for a
// lesson plan request. It is also the shape of the deterministic fallback
// substituted when the model reply cannot be decoded.
type LessonPlanFields struct {
	Title      string          `json:"title"`
	Objectives []string        `json:"objectives"`
	Materials  []string        `json:"materials"`
	Sessions   []LessonSession `json:"sessions"`
}

type LessonSession struct {
	Day        int      `json:"day"`
	Focus      string   `json:"focus"`
	Activities []string `json:"activities"`
}

// LessonPlan is the stored record: request parameters plus the normalized
// plan body. Degraded marks plans that fell back to the default body.
type LessonPlan struct {
	ID        string           `json:"id"`
	Subject   string           `json:"subject"`
	Grade     string           `json:"grade"`
	Topic     string           `json:"topic,omitempty"`
	Language  string           `json:"language,omitempty"`
	Days      int              `json:"days"`
	Plan      LessonPlanFields `json:"plan"`
	Degraded  bool             `json:"degraded,omitempty"`
	CreatedAt time.Time        `json:"timestamp"`
}

type GenerateLessonPlanRequest struct {
	Subject  string `json:"subject"`
	Grade    string `json:"grade"`
	Topic    string `json:"topic,omitempty"`
	Language string `json:"language,omitempty"`
	Days     int    `json:"days,omitempty"`
}
