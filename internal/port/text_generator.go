package port

import "context"

// GenerateOutput carries the model text plus usage accounting.
type GenerateOutput struct {
	Text         string
	ModelUsed    string
	InputTokens  int
	OutputTokens int
}

// TextGenerator abstracts the LLM call that turns OCR text into the
// structured extraction response.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (*GenerateOutput, error)
}
