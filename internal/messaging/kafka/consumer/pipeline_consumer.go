package consumer

import (
	"context"
	"errors"
	"fmt"

	"go-hris-etl/internal/events"
	"go-hris-etl/internal/pipeline"
	pipelineerrors "go-hris-etl/internal/pipeline/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type Processor interface {
	Process(ctx context.Context, d pipeline.Delivery, ack pipeline.Acknowledger) (pipeline.State, error)
}

// commitAck acknowledges a delivery by committing its offset.
type commitAck struct {
	reader MessageReader
	msg    kafkago.Message
}

func (a commitAck) Complete(ctx context.Context) error {
	return a.reader.CommitMessages(ctx, a.msg)
}

// ConsumePipelineRequested hands every fetched message to processor. Only the
// processor commits; failed and malformed messages are left uncommitted.
func ConsumePipelineRequested(
	ctx context.Context,
	reader MessageReader,
	processor Processor,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.pipeline")
	log.Info("pipeline consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("pipeline consumer stopped")
				return
			}
			log.Error("fetch pipeline message failed", zap.Error(err))
			continue
		}

		delivery := toDelivery(msg)
		state, err := processor.Process(ctx, delivery, commitAck{reader: reader, msg: msg})
		if err != nil {
			fields := []zap.Field{
				zap.String("message_id", delivery.MessageID),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.String("state", string(state)),
				zap.Error(err),
			}
			if errors.Is(err, pipelineerrors.ErrMalformedMessage) {
				log.Error("malformed pipeline message left uncommitted", fields...)
			} else {
				log.Warn("pipeline message not acknowledged", fields...)
			}
			continue
		}

		log.Info("pipeline message committed",
			zap.String("message_id", delivery.MessageID),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
		)
	}
}

func toDelivery(msg kafkago.Message) pipeline.Delivery {
	d := pipeline.Delivery{Body: msg.Value}
	for _, h := range msg.Headers {
		switch h.Key {
		case events.HeaderMessageID:
			d.MessageID = string(h.Value)
		case events.HeaderContentType:
			d.ContentType = string(h.Value)
		}
	}
	return d
}

// RunWorkers starts n consumers, each with its own reader in the same
// consumer group, and waits for all of them to stop.
func RunWorkers(
	ctx context.Context,
	n int,
	newReader func() MessageReader,
	processor Processor,
	logger *zap.Logger,
) error {
	if n < 1 {
		return fmt.Errorf("consumer workers must be at least 1, got %d", n)
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < n; i++ {
		reader := newReader()
		workerLog := logger.With(zap.Int("worker", i))
		g.Go(func() error {
			defer func() {
				if err := reader.Close(); err != nil {
					workerLog.Warn("close reader failed", zap.Error(err))
				}
			}()
			ConsumePipelineRequested(ctx, reader, processor, workerLog)
			return nil
		})
	}
	return g.Wait()
}
