package port

import "context"

// SecretsProvider abstracts retrieval of named secret values.
type SecretsProvider interface {
	GetSecret(ctx context.Context, name string) (string, error)
}
