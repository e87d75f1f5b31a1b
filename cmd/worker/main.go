package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"firmas/internal/config"
	"firmas/internal/handler"
	"firmas/internal/llm/gemini"
	"firmas/internal/ocr/documentai"
	"firmas/internal/pdf"
	"firmas/internal/queue/sqs"
	"firmas/internal/router"
	"firmas/internal/secrets"
	"firmas/internal/service"
	s3storage "firmas/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize queue and storage
	queue, err := sqs.NewSQSQueue(&cfg.AWS, &cfg.Queue)
	if err != nil {
		return fmt.Errorf("failed to initialize SQS queue: %w", err)
	}
	storage, err := s3storage.NewS3Client(&cfg.AWS)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize OCR and LLM clients
	ocrClient := documentai.NewClient(&cfg.OCR)
	llmClient := gemini.NewClient(&cfg.Gemini)

	// Resolve credentials from Secrets Manager when configured
	if cfg.Secrets.SecretName != "" {
		if err := resolveSecrets(ctx, cfg, ocrClient, llmClient); err != nil {
			log.Printf("main: secrets resolution failed, using static config: %v", err)
		}
	}

	// Initialize processor
	processor := service.NewProcessor(queue, storage, ocrClient, llmClient,
		pdf.NewSplitter(), service.LogAnomalySink{}, service.ProcessorConfig{
			ReceiptBucket:    cfg.S3.Bucket,
			PromptURI:        cfg.S3.PromptURI,
			MaxPagesPerChunk: cfg.Processing.MaxPagesPerChunk,
		})
	processor.LoadBasePrompt(ctx)

	// Operational HTTP surface
	healthH := handler.NewHealthHandler()
	statsH := handler.NewStatsHandler(processor)
	r := router.Setup(healthH, statsH)
	go func() {
		if err := r.Run(cfg.Server.Port); err != nil {
			log.Printf("main: http server stopped: %v", err)
		}
	}()

	worker := service.NewWorker(queue, processor, service.WorkerConfig{
		PollInterval: time.Duration(cfg.Queue.PollIntervalSecs) * time.Second,
		Concurrency:  cfg.Queue.Concurrency,
	})
	worker.Start(ctx)

	return nil
}

// resolveSecrets fetches the Gemini API key and Google Cloud credentials
// from Secrets Manager and wires them into the clients.
func resolveSecrets(ctx context.Context, cfg *config.Config,
	ocrClient *documentai.Client, llmClient *gemini.Client) error {

	provider, err := secrets.NewSecretsClient(&cfg.AWS, cfg.Secrets.SecretName)
	if err != nil {
		return fmt.Errorf("initializing secrets client: %w", err)
	}

	apiKey, err := provider.GetSecret(ctx, cfg.Secrets.GeminiKey)
	if err != nil {
		return fmt.Errorf("fetching gemini api key: %w", err)
	}
	llmClient.SetAPIKey(apiKey)

	credentials, err := provider.GetSecret(ctx, cfg.Secrets.GCloudKey)
	if err != nil {
		return fmt.Errorf("fetching gcloud credentials: %w", err)
	}
	if err := secrets.WriteCredentialsFile(credentials, cfg.Secrets.GCloudOutput); err != nil {
		return err
	}

	// The OCR token is short-lived and rotated into the secret by the
	// deployment's credential refresher.
	if token, err := provider.GetSecret(ctx, cfg.Secrets.GCloudTokenKey); err == nil {
		ocrClient.SetAccessToken(token)
	} else {
		log.Printf("main: no OCR access token in secret: %v", err)
	}

	return nil
}
