package producer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-hris-etl/internal/events"
	"go-hris-etl/internal/messaging/kafka"
	"go-hris-etl/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	pipelineAggregateType = "upload"
	pipelineEventType     = "pipeline.requested"
)

func pipelineHeaders(messageID string) map[string]string {
	return map[string]string{
		events.HeaderMessageID:   messageID,
		events.HeaderContentType: events.ContentTypeJSON,
	}
}

// DirectEnqueuer writes pipeline messages straight to the broker.
type DirectEnqueuer struct {
	writer MessageWriter
	topic  string
	logger *zap.Logger
}

func NewDirectEnqueuer(writer MessageWriter, topic string, logger ...*zap.Logger) *DirectEnqueuer {
	l := zap.L().Named("kafka.producer.direct")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.producer.direct")
	}
	return &DirectEnqueuer{writer: writer, topic: topic, logger: l}
}

func (e *DirectEnqueuer) Enqueue(ctx context.Context, messageID string, msg events.PipelineMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode pipeline message: %w", err)
	}

	err = e.writer.WriteMessages(ctx, kafkago.Message{
		Topic:   e.topic,
		Key:     []byte(msg.TenantID),
		Value:   payload,
		Headers: toHeaders(pipelineHeaders(messageID)),
	})
	if err != nil {
		return err
	}

	e.logger.Info("pipeline message published",
		append(contextutil.ExtractMetadata(ctx).Fields(),
			zap.String("message_id", messageID),
			zap.String("topic", e.topic),
		)...,
	)
	return nil
}

// OutboxEnqueuer stores the message for the relay worker to publish.
type OutboxEnqueuer struct {
	repo  kafka.OutboxRepository
	topic string
}

func NewOutboxEnqueuer(repo kafka.OutboxRepository, topic string) *OutboxEnqueuer {
	return &OutboxEnqueuer{repo: repo, topic: topic}
}

func (e *OutboxEnqueuer) Enqueue(ctx context.Context, messageID string, msg events.PipelineMessage) error {
	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode pipeline message: %w", err)
	}

	event := kafka.OutboxEvent{
		ID:            messageID,
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: pipelineAggregateType,
		AggregateID:   msg.TenantID,
		EventType:     pipelineEventType,
		Topic:         e.topic,
		Headers:       pipelineHeaders(messageID),
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := kafka.ValidateOutboxEvent(event); err != nil {
		return err
	}

	return e.repo.Create(ctx, event)
}
