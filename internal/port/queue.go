package port

import (
	"context"

	"firmas/internal/domain"
)

// InboundMessage is one raw work request pulled from the queue, together
// with the handle needed to delete it after processing.
type InboundMessage struct {
	Body          string
	ReceiptHandle string
}

// MessageQueue abstracts the work-request queue and the response channel.
type MessageQueue interface {
	Receive(ctx context.Context, max int) ([]InboundMessage, error)
	Delete(ctx context.Context, receiptHandle string) error
	SendResponse(ctx context.Context, response *domain.Response) error
	SendToDLQ(ctx context.Context, body string) error
}
