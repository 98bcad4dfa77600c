// Package llm abstracts the generative-language providers used for all
// content synthesis. The service treats every provider as an opaque
// text-in/text-out (and image-in/text-out) collaborator with no format
// guarantee on success.
package llm

import "context"

// Provider is the interface all generation backends satisfy.
type Provider interface {
	// Generate sends one prompt and returns the raw reply text. There is
	// no schema enforcement here; normalization of the reply is the
	// caller's concern.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call. Image, when set, is attached to
// the user turn alongside the prompt text.
type Request struct {
	System      string
	Prompt      string
	Image       *Image
	Temperature float64
	MaxTokens   int
}

type Image struct {
	Data     []byte
	MIMEType string
}

// Response holds the reply text and token usage.
type Response struct {
	Text         string
	InputTokens  int
	OutputTokens int
}
