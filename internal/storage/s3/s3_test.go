package s3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	s3storage "firmas/internal/storage/s3"
)

func TestParseURI(t *testing.T) {
	bucket, key, err := s3storage.ParseURI("s3://my-bucket/docs/contrato.pdf")

	assert.NoError(t, err)
	assert.Equal(t, "my-bucket", bucket)
	assert.Equal(t, "docs/contrato.pdf", key)
}

func TestParseURI_Invalid(t *testing.T) {
	tests := []string{
		"http://my-bucket/contrato.pdf",
		"s3://bucket-only",
		"s3:///no-bucket.pdf",
		"s3://bucket/",
		"",
	}
	for _, uri := range tests {
		_, _, err := s3storage.ParseURI(uri)
		assert.Error(t, err, "uri %q", uri)
	}
}
