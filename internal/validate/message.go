package validate

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"firmas/internal/domain"
)

// ParseWorkRequest decodes and validates an inbound queue message body.
// Required fields: a non-empty id, at least one s3:// PDF URI, and a bare
// 14-digit CNPJ.
func ParseWorkRequest(body string) (*domain.WorkRequest, error) {
	var req domain.WorkRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return nil, fmt.Errorf("message body is not valid JSON: %w", err)
	}
	if req.ID == "" {
		return nil, fmt.Errorf("message missing 'id' field")
	}
	if len(req.PDFURIs) == 0 {
		return nil, fmt.Errorf("message missing 'pdf_uris' field")
	}
	for _, uri := range req.PDFURIs {
		if !strings.HasPrefix(uri, "s3://") {
			return nil, fmt.Errorf("invalid pdf uri %q", uri)
		}
	}
	if !isBareCNPJ(req.CNPJ) {
		return nil, fmt.Errorf("invalid 'cnpj' field %q", req.CNPJ)
	}
	return &req, nil
}

func isBareCNPJ(value string) bool {
	if len(value) != domain.CNPJLength {
		return false
	}
	for _, r := range value {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
