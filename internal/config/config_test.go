package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"firmas/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "us-east-1", cfg.AWS.Region)
	assert.Equal(t, 10, cfg.Queue.WaitTimeSecs)
	assert.Equal(t, 5, cfg.Queue.PollIntervalSecs)
	assert.Equal(t, 1, cfg.Queue.Concurrency)
	assert.Equal(t, "prompt/base_prompt.txt", cfg.S3.PromptURI)
	assert.Equal(t, "us", cfg.OCR.Location)
	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60192, cfg.Gemini.MaxOutputTokens)
	assert.Equal(t, 0.0, cfg.Gemini.Temperature)
	assert.Equal(t, 0.8, cfg.Gemini.TopP)
	assert.Equal(t, "GEMINI_API_KEY", cfg.Secrets.GeminiKey)
	assert.Equal(t, "GCLOUD_ACCESS_TOKEN", cfg.Secrets.GCloudTokenKey)
	assert.Equal(t, 15, cfg.Processing.MaxPagesPerChunk)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("FIRMAS_SERVER_PORT", ":9090")
	t.Setenv("FIRMAS_QUEUE_INPUT_QUEUE_URL", "https://sqs.us-east-1.amazonaws.com/1/input")
	t.Setenv("FIRMAS_QUEUE_CONCURRENCY", "4")
	t.Setenv("FIRMAS_GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("FIRMAS_PROCESSING_MAX_PAGES_PER_CHUNK", "10")

	cfg, err := config.Load()

	assert.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, "https://sqs.us-east-1.amazonaws.com/1/input", cfg.Queue.InputQueueURL)
	assert.Equal(t, 4, cfg.Queue.Concurrency)
	assert.Equal(t, "gemini-2.5-pro", cfg.Gemini.Model)
	assert.Equal(t, 10, cfg.Processing.MaxPagesPerChunk)
}
