package models

import "time"

// ReadingAssessmentResult records one oral reading assessment. The three
// scores are derived: words per minute is unclamped, accuracy stays within
// [70, 100] and fluency within [65, 100] regardless of input magnitude.
type ReadingAssessmentResult struct {
	ID              string    `json:"id"`
	StudentName     string    `json:"student_name"`
	Grade           string    `json:"grade"`
	PassageTitle    string    `json:"passage_title"`
	WordCount       int       `json:"word_count"`
	DurationSeconds float64   `json:"duration_seconds"`
	WordsPerMinute  float64   `json:"words_per_minute"`
	Accuracy        float64   `json:"accuracy"`
	Fluency         float64   `json:"fluency"`
	Feedback        []string  `json:"feedback"`
	CreatedAt       time.Time `json:"timestamp"`
}

// ReadingAssessmentRequest supplies either an explicit word count or the
// passage text to count words from.
type ReadingAssessmentRequest struct {
	StudentName     string  `json:"student_name"`
	Grade           string  `json:"grade"`
	PassageTitle    string  `json:"passage_title"`
	PassageText     string  `json:"passage_text,omitempty"`
	WordCount       int     `json:"word_count,omitempty"`
	DurationSeconds float64 `json:"duration_seconds"`
}
