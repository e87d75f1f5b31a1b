package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"

	"firmas/internal/config"
	"firmas/internal/port"
)

type secretsClient struct {
	client     *secretsmanager.Client
	secretName string

	mu    sync.Mutex
	cache map[string]string
}

// NewSecretsClient creates a Secrets Manager-backed SecretsProvider. The
// named secret holds a JSON object; GetSecret returns values by key within
// it, cached after the first fetch.
func NewSecretsClient(awsCfg *config.AWSConfig, secretName string) (port.SecretsProvider, error) {
	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(awsCfg.Region))

	if awsCfg.AccessKey != "" && awsCfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(awsCfg.AccessKey, awsCfg.SecretKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var smOpts []func(*secretsmanager.Options)
	if awsCfg.Endpoint != "" {
		smOpts = append(smOpts, func(o *secretsmanager.Options) {
			o.BaseEndpoint = aws.String(awsCfg.Endpoint)
		})
	}

	return &secretsClient{
		client:     secretsmanager.NewFromConfig(cfg, smOpts...),
		secretName: secretName,
	}, nil
}

func (c *secretsClient) GetSecret(ctx context.Context, name string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cache == nil {
		result, err := c.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(c.secretName),
		})
		if err != nil {
			return "", fmt.Errorf("fetching secret %s: %w", c.secretName, err)
		}
		var values map[string]string
		if err := json.Unmarshal([]byte(aws.ToString(result.SecretString)), &values); err != nil {
			return "", fmt.Errorf("decoding secret %s: %w", c.secretName, err)
		}
		c.cache = values
	}

	value, ok := c.cache[name]
	if !ok {
		return "", fmt.Errorf("secret key %s not found in %s", name, c.secretName)
	}
	return value, nil
}

// WriteCredentialsFile stores a credentials blob on disk, for tools that
// read service-account credentials from a file path.
func WriteCredentialsFile(credentials, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("creating credentials dir: %w", err)
	}
	if err := os.WriteFile(outputPath, []byte(credentials), 0o600); err != nil {
		return fmt.Errorf("writing credentials file: %w", err)
	}
	return nil
}
