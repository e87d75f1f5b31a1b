package port

import "context"

// OCREngine abstracts full-text recognition of a PDF chunk.
type OCREngine interface {
	RecognizeText(ctx context.Context, pdfBytes []byte) (string, error)
}
