package models

import "time"

// ChatMessage is one question/answer exchange. Answer is the raw model
// reply; Feedback is the same reply split into presentable lines.
type ChatMessage struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Language  string    `json:"language,omitempty"`
	Grade     string    `json:"grade,omitempty"`
	Answer    string    `json:"answer"`
	Feedback  []string  `json:"feedback"`
	CreatedAt time.Time `json:"timestamp"`
}

type ChatRequest struct {
	Question string `json:"question"`
	Language string `json:"language,omitempty"`
	Grade    string `json:"grade,omitempty"`
}
