package service

import (
	"context"
	"log"
	"sync"
	"time"

	"firmas/internal/port"
)

// WorkerConfig holds settings for the queue worker.
type WorkerConfig struct {
	PollInterval time.Duration
	Concurrency  int
}

// Worker polls the input queue and dispatches work requests to the
// Processor.
type Worker struct {
	queue     port.MessageQueue
	processor *Processor
	cfg       WorkerConfig
	wg        sync.WaitGroup
}

// NewWorker creates a new Worker.
func NewWorker(queue port.MessageQueue, processor *Processor, cfg WorkerConfig) *Worker {
	return &Worker{
		queue:     queue,
		processor: processor,
		cfg:       cfg,
	}
}

// Start runs the polling loop until ctx is canceled. It blocks until all
// in-flight messages have finished.
func (w *Worker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.PollInterval)
	defer ticker.Stop()

	sem := make(chan struct{}, w.cfg.Concurrency)

	log.Printf("service.Worker: started (poll=%s, concurrency=%d)",
		w.cfg.PollInterval, w.cfg.Concurrency)

	for {
		select {
		case <-ctx.Done():
			log.Printf("service.Worker: shutting down, waiting for in-flight messages...")
			w.wg.Wait()
			log.Printf("service.Worker: shutdown complete")
			return
		case <-ticker.C:
			available := w.cfg.Concurrency - len(sem)
			if available <= 0 {
				continue
			}

			messages, err := w.queue.Receive(ctx, available)
			if err != nil {
				if ctx.Err() != nil {
					continue
				}
				log.Printf("service.Worker: receive error: %v", err)
				continue
			}

			for i := range messages {
				msg := messages[i] // copy for goroutine

				sem <- struct{}{} // acquire
				w.wg.Add(1)
				go func() {
					defer w.wg.Done()
					defer func() { <-sem }() // release

					// Use a fresh context independent of the poll context
					// so in-flight messages complete even during shutdown.
					msgCtx, cancel := context.WithTimeout(context.Background(), 15*time.Minute)
					defer cancel()

					if w.processor.ProcessMessage(msgCtx, msg) {
						if err := w.queue.Delete(msgCtx, msg.ReceiptHandle); err != nil {
							log.Printf("service.Worker: delete error: %v", err)
						}
					}
				}()
			}
		}
	}
}
