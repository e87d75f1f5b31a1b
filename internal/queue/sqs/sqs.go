package sqs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sqs"

	"firmas/internal/config"
	"firmas/internal/domain"
	"firmas/internal/port"
)

type sqsQueue struct {
	client         *sqs.Client
	inputQueueURL  string
	outputQueueURL string
	dlqURL         string
	waitTimeSecs   int32
}

// NewSQSQueue creates a new SQS-backed MessageQueue implementation.
func NewSQSQueue(awsCfg *config.AWSConfig, queueCfg *config.QueueConfig) (port.MessageQueue, error) {
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

	var sqsOpts []func(*sqs.Options)
	if awsCfg.Endpoint != "" {
		sqsOpts = append(sqsOpts, func(o *sqs.Options) {
			o.BaseEndpoint = aws.String(awsCfg.Endpoint)
		})
	}

	return &sqsQueue{
		client:         sqs.NewFromConfig(cfg, sqsOpts...),
		inputQueueURL:  queueCfg.InputQueueURL,
		outputQueueURL: queueCfg.OutputQueueURL,
		dlqURL:         queueCfg.DLQURL,
		waitTimeSecs:   int32(queueCfg.WaitTimeSecs),
	}, nil
}

func (q *sqsQueue) Receive(ctx context.Context, max int) ([]port.InboundMessage, error) {
	result, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.inputQueueURL),
		MaxNumberOfMessages: int32(max),
		WaitTimeSeconds:     q.waitTimeSecs,
	})
	if err != nil {
		return nil, fmt.Errorf("sqs receive: %w", err)
	}

	messages := make([]port.InboundMessage, 0, len(result.Messages))
	for _, msg := range result.Messages {
		messages = append(messages, port.InboundMessage{
			Body:          aws.ToString(msg.Body),
			ReceiptHandle: aws.ToString(msg.ReceiptHandle),
		})
	}
	return messages, nil
}

func (q *sqsQueue) Delete(ctx context.Context, receiptHandle string) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.inputQueueURL),
		ReceiptHandle: aws.String(receiptHandle),
	})
	if err != nil {
		return fmt.Errorf("sqs delete: %w", err)
	}
	return nil
}

func (q *sqsQueue) SendResponse(ctx context.Context, response *domain.Response) error {
	body, err := json.Marshal(response)
	if err != nil {
		return fmt.Errorf("marshaling response: %w", err)
	}
	_, err = q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.outputQueueURL),
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		return fmt.Errorf("sqs send: %w", err)
	}
	return nil
}

// SendToDLQ forwards an unprocessable message body to the dead-letter
// queue. A no-op when no DLQ is configured.
func (q *sqsQueue) SendToDLQ(ctx context.Context, body string) error {
	if q.dlqURL == "" {
		return nil
	}
	_, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.dlqURL),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return fmt.Errorf("sqs send to dlq: %w", err)
	}
	return nil
}
