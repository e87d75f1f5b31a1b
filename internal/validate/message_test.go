package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firmas/internal/validate"
)

func TestParseWorkRequest_Valid(t *testing.T) {
	body := `{"id":"req-1","pdf_uris":["s3://bucket/a.pdf","s3://bucket/b.pdf"],"cnpj":"12345678000199"}`

	req, err := validate.ParseWorkRequest(body)

	assert.NoError(t, err)
	assert.Equal(t, "req-1", req.ID)
	assert.Len(t, req.PDFURIs, 2)
	assert.Equal(t, "12345678000199", req.CNPJ)
}

func TestParseWorkRequest_InvalidJSON(t *testing.T) {
	_, err := validate.ParseWorkRequest("not json")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestParseWorkRequest_MissingID(t *testing.T) {
	_, err := validate.ParseWorkRequest(`{"pdf_uris":["s3://b/a.pdf"],"cnpj":"12345678000199"}`)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "id")
}

func TestParseWorkRequest_MissingURIs(t *testing.T) {
	_, err := validate.ParseWorkRequest(`{"id":"req-1","cnpj":"12345678000199"}`)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "pdf_uris")
}

func TestParseWorkRequest_NonS3URI(t *testing.T) {
	_, err := validate.ParseWorkRequest(`{"id":"req-1","pdf_uris":["http://x/a.pdf"],"cnpj":"12345678000199"}`)

	assert.Error(t, err)
}

func TestParseWorkRequest_FormattedCNPJRejected(t *testing.T) {
	_, err := validate.ParseWorkRequest(`{"id":"req-1","pdf_uris":["s3://b/a.pdf"],"cnpj":"12.345.678/0001-99"}`)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cnpj")
}
