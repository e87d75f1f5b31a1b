package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	AWS        AWSConfig
	Queue      QueueConfig
	S3         S3Config
	OCR        OCRConfig
	Gemini     GeminiConfig
	Secrets    SecretsConfig
	Processing ProcessingConfig
	Log        LogConfig
}

// ServerConfig holds HTTP server settings for the health/stats surface.
type ServerConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

// AWSConfig holds the shared AWS client settings.
type AWSConfig struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// QueueConfig holds SQS queue URLs and worker settings.
type QueueConfig struct {
	InputQueueURL    string `mapstructure:"input_queue_url"`
	OutputQueueURL   string `mapstructure:"output_queue_url"`
	DLQURL           string `mapstructure:"dlq_url"`
	WaitTimeSecs     int    `mapstructure:"wait_time_secs"`
	PollIntervalSecs int    `mapstructure:"poll_interval_secs"`
	Concurrency      int    `mapstructure:"concurrency"`
}

// S3Config holds receipt bucket and prompt settings.
type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	PromptURI string `mapstructure:"prompt_uri"`
}

// OCRConfig holds Document AI processor settings.
type OCRConfig struct {
	Project     string `mapstructure:"project"`
	Location    string `mapstructure:"location"`
	ProcessorID string `mapstructure:"processor_id"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// GeminiConfig holds the LLM settings.
type GeminiConfig struct {
	Model           string  `mapstructure:"model"`
	APIKey          string  `mapstructure:"api_key"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens"`
	Temperature     float64 `mapstructure:"temperature"`
	TopP            float64 `mapstructure:"top_p"`
	TimeoutSecs     int     `mapstructure:"timeout_secs"`
}

// SecretsConfig names the Secrets Manager entries holding credentials.
type SecretsConfig struct {
	SecretName     string `mapstructure:"secret_name"`
	GeminiKey      string `mapstructure:"gemini_key"`
	GCloudKey      string `mapstructure:"gcloud_key"`
	GCloudTokenKey string `mapstructure:"gcloud_token_key"`
	GCloudOutput   string `mapstructure:"gcloud_output"`
}

// ProcessingConfig holds document-processing limits.
type ProcessingConfig struct {
	MaxPagesPerChunk int `mapstructure:"max_pages_per_chunk"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from environment variables with the FIRMAS_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FIRMAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.environment", "development")

	// AWS defaults
	v.SetDefault("aws.region", "us-east-1")
	v.SetDefault("aws.endpoint", "")
	v.SetDefault("aws.access_key", "")
	v.SetDefault("aws.secret_key", "")

	// Queue defaults
	v.SetDefault("queue.input_queue_url", "")
	v.SetDefault("queue.output_queue_url", "")
	v.SetDefault("queue.dlq_url", "")
	v.SetDefault("queue.wait_time_secs", 10)
	v.SetDefault("queue.poll_interval_secs", 5)
	v.SetDefault("queue.concurrency", 1)

	// S3 defaults
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.prompt_uri", "prompt/base_prompt.txt")

	// OCR defaults
	v.SetDefault("ocr.project", "")
	v.SetDefault("ocr.location", "us")
	v.SetDefault("ocr.processor_id", "")
	v.SetDefault("ocr.timeout_secs", 120)

	// Gemini defaults
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.max_output_tokens", 60192)
	v.SetDefault("gemini.temperature", 0.0)
	v.SetDefault("gemini.top_p", 0.8)
	v.SetDefault("gemini.timeout_secs", 300)

	// Secrets defaults
	v.SetDefault("secrets.secret_name", "")
	v.SetDefault("secrets.gemini_key", "GEMINI_API_KEY")
	v.SetDefault("secrets.gcloud_key", "GCLOUD_CREDENTIALS")
	v.SetDefault("secrets.gcloud_token_key", "GCLOUD_ACCESS_TOKEN")
	v.SetDefault("secrets.gcloud_output", "/tmp/gcloud_creds.json")

	// Processing defaults
	v.SetDefault("processing.max_pages_per_chunk", 15)

	// Log defaults
	v.SetDefault("log.level", "info")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "FIRMAS_SERVER_PORT",
		"server.environment":             "FIRMAS_SERVER_ENVIRONMENT",
		"aws.region":                     "FIRMAS_AWS_REGION",
		"aws.endpoint":                   "FIRMAS_AWS_ENDPOINT",
		"aws.access_key":                 "FIRMAS_AWS_ACCESS_KEY",
		"aws.secret_key":                 "FIRMAS_AWS_SECRET_KEY",
		"queue.input_queue_url":          "FIRMAS_QUEUE_INPUT_QUEUE_URL",
		"queue.output_queue_url":         "FIRMAS_QUEUE_OUTPUT_QUEUE_URL",
		"queue.dlq_url":                  "FIRMAS_QUEUE_DLQ_URL",
		"queue.wait_time_secs":           "FIRMAS_QUEUE_WAIT_TIME_SECS",
		"queue.poll_interval_secs":       "FIRMAS_QUEUE_POLL_INTERVAL_SECS",
		"queue.concurrency":              "FIRMAS_QUEUE_CONCURRENCY",
		"s3.bucket":                      "FIRMAS_S3_BUCKET",
		"s3.prompt_uri":                  "FIRMAS_S3_PROMPT_URI",
		"ocr.project":                    "FIRMAS_OCR_PROJECT",
		"ocr.location":                   "FIRMAS_OCR_LOCATION",
		"ocr.processor_id":               "FIRMAS_OCR_PROCESSOR_ID",
		"ocr.timeout_secs":               "FIRMAS_OCR_TIMEOUT_SECS",
		"gemini.model":                   "FIRMAS_GEMINI_MODEL",
		"gemini.api_key":                 "FIRMAS_GEMINI_API_KEY",
		"gemini.max_output_tokens":       "FIRMAS_GEMINI_MAX_OUTPUT_TOKENS",
		"gemini.temperature":             "FIRMAS_GEMINI_TEMPERATURE",
		"gemini.top_p":                   "FIRMAS_GEMINI_TOP_P",
		"gemini.timeout_secs":            "FIRMAS_GEMINI_TIMEOUT_SECS",
		"secrets.secret_name":            "FIRMAS_SECRETS_SECRET_NAME",
		"secrets.gemini_key":             "FIRMAS_SECRETS_GEMINI_KEY",
		"secrets.gcloud_key":             "FIRMAS_SECRETS_GCLOUD_KEY",
		"secrets.gcloud_token_key":       "FIRMAS_SECRETS_GCLOUD_TOKEN_KEY",
		"secrets.gcloud_output":          "FIRMAS_SECRETS_GCLOUD_OUTPUT",
		"processing.max_pages_per_chunk": "FIRMAS_PROCESSING_MAX_PAGES_PER_CHUNK",
		"log.level":                      "FIRMAS_LOG_LEVEL",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	cfg.Server = ServerConfig{
		Port:        v.GetString("server.port"),
		Environment: v.GetString("server.environment"),
	}
	cfg.AWS = AWSConfig{
		Region:    v.GetString("aws.region"),
		Endpoint:  v.GetString("aws.endpoint"),
		AccessKey: v.GetString("aws.access_key"),
		SecretKey: v.GetString("aws.secret_key"),
	}
	cfg.Queue = QueueConfig{
		InputQueueURL:    v.GetString("queue.input_queue_url"),
		OutputQueueURL:   v.GetString("queue.output_queue_url"),
		DLQURL:           v.GetString("queue.dlq_url"),
		WaitTimeSecs:     v.GetInt("queue.wait_time_secs"),
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}
	cfg.S3 = S3Config{
		Bucket:    v.GetString("s3.bucket"),
		PromptURI: v.GetString("s3.prompt_uri"),
	}
	cfg.OCR = OCRConfig{
		Project:     v.GetString("ocr.project"),
		Location:    v.GetString("ocr.location"),
		ProcessorID: v.GetString("ocr.processor_id"),
		TimeoutSecs: v.GetInt("ocr.timeout_secs"),
	}
	cfg.Gemini = GeminiConfig{
		Model:           v.GetString("gemini.model"),
		APIKey:          v.GetString("gemini.api_key"),
		MaxOutputTokens: v.GetInt("gemini.max_output_tokens"),
		Temperature:     v.GetFloat64("gemini.temperature"),
		TopP:            v.GetFloat64("gemini.top_p"),
		TimeoutSecs:     v.GetInt("gemini.timeout_secs"),
	}
	cfg.Secrets = SecretsConfig{
		SecretName:     v.GetString("secrets.secret_name"),
		GeminiKey:      v.GetString("secrets.gemini_key"),
		GCloudKey:      v.GetString("secrets.gcloud_key"),
		GCloudTokenKey: v.GetString("secrets.gcloud_token_key"),
		GCloudOutput:   v.GetString("secrets.gcloud_output"),
	}
	cfg.Processing = ProcessingConfig{
		MaxPagesPerChunk: v.GetInt("processing.max_pages_per_chunk"),
	}
	cfg.Log = LogConfig{
		Level: v.GetString("log.level"),
	}

	return cfg, nil
}
