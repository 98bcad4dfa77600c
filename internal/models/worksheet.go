package models

import "time"

// WorksheetVariant is one differentiated worksheet. Difficulty is Easy,
// Medium, or Hard by convention; the value is model-authored and not
// enforced here.
type WorksheetVariant struct {
	Grade        string              `json:"grade"`
	Difficulty   string              `json:"difficulty"`
	Instructions string              `json:"instructions"`
	Questions    []WorksheetQuestion `json:"questions"`
}

type WorksheetQuestion struct {
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`
	Answer  string   `json:"answer,omitempty"`
}

// WorksheetSet is the stored record of one worksheet request: the variants
// produced for each requested grade level from a textbook page.
type WorksheetSet struct {
	ID        string             `json:"id"`
	Subject   string             `json:"subject,omitempty"`
	Grades    []string           `json:"grades,omitempty"`
	Variants  []WorksheetVariant `json:"variants"`
	Degraded  bool               `json:"degraded,omitempty"`
	CreatedAt time.Time          `json:"timestamp"`
}

// GenerateWorksheetsRequest carries the source material: plain textbook
// text, a base64-encoded page photo, or both.
type GenerateWorksheetsRequest struct {
	TextbookText  string   `json:"textbook_text,omitempty"`
	ImageBase64   string   `json:"image_base64,omitempty"`
	ImageMimeType string   `json:"image_mime_type,omitempty"`
	Subject       string   `json:"subject,omitempty"`
	Grades        []string `json:"grades,omitempty"`
}
