package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Bucket      string
	Key         string
	Body        io.Reader
	ContentType string
}

// ObjectStorage abstracts cloud object storage operations. Download resolves
// s3://bucket/key style URIs as produced by the work request.
type ObjectStorage interface {
	Download(ctx context.Context, uri string) ([]byte, error)
	Upload(ctx context.Context, input UploadInput) error
}
