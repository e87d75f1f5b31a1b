package pdf

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Splitter cuts PDFs into page-bounded chunks so each OCR call stays
// within the engine's page limit.
type Splitter struct {
	conf *model.Configuration
}

// NewSplitter creates a PDF splitter.
func NewSplitter() *Splitter {
	return &Splitter{conf: model.NewDefaultConfiguration()}
}

// Split returns the PDF unchanged when it fits within maxPages, otherwise a
// sequence of chunks of up to maxPages pages each, in page order. The total
// page count is returned alongside.
func (s *Splitter) Split(pdfBytes []byte, maxPages int) ([][]byte, int, error) {
	count, err := api.PageCount(bytes.NewReader(pdfBytes), s.conf)
	if err != nil {
		return nil, 0, fmt.Errorf("counting pdf pages: %w", err)
	}

	if count <= maxPages {
		return [][]byte{pdfBytes}, count, nil
	}

	var chunks [][]byte
	for start := 1; start <= count; start += maxPages {
		end := start + maxPages - 1
		if end > count {
			end = count
		}
		var buf bytes.Buffer
		pages := []string{fmt.Sprintf("%d-%d", start, end)}
		if err := api.Trim(bytes.NewReader(pdfBytes), &buf, pages, s.conf); err != nil {
			return nil, 0, fmt.Errorf("extracting pages %d-%d: %w", start, end, err)
		}
		chunks = append(chunks, buf.Bytes())
	}
	return chunks, count, nil
}

// PageCount returns the number of pages in the PDF.
func (s *Splitter) PageCount(pdfBytes []byte) (int, error) {
	count, err := api.PageCount(bytes.NewReader(pdfBytes), s.conf)
	if err != nil {
		return 0, fmt.Errorf("counting pdf pages: %w", err)
	}
	return count, nil
}
