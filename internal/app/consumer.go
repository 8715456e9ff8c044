package app

import (
	"context"

	"go-hris-etl/internal/blob"
	"go-hris-etl/internal/config"
	"go-hris-etl/internal/employee"
	"go-hris-etl/internal/extract"
	"go-hris-etl/internal/jobstatus"
	"go-hris-etl/internal/messaging/kafka/consumer"
	"go-hris-etl/internal/pipeline"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer runs cfg.Kafka.Workers pipeline consumers until ctx is done.
func RunConsumer(ctx context.Context, cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if err := cfg.RequireKafka(); err != nil {
		return err
	}

	infra, err := connectDatabase(cfg)
	if err != nil {
		return err
	}
	defer infra.Close()

	s3Client, err := blob.NewS3Client(ctx, cfg.Storage)
	if err != nil {
		return err
	}

	orchestrator := pipeline.NewOrchestrator(
		extract.NewExtractor(blob.NewS3Store(s3Client, cfg.Storage.Bucket)),
		employee.NewMapper(),
		employee.NewService(employee.NewRepository(infra.GormDB)),
		// the consumer only writes statuses; the read cache belongs to the API
		jobstatus.NewTracker(jobstatus.NewRepository(infra.GormDB), nil, cfg.Redis.StatusTTL),
	)

	newReader := func() consumer.MessageReader {
		return kafkago.NewReader(kafkago.ReaderConfig{
			Brokers:        []string{cfg.Kafka.Broker},
			Topic:          cfg.Kafka.Topic,
			GroupID:        cfg.Kafka.GroupID,
			CommitInterval: 0,
			StartOffset:    kafkago.FirstOffset,
		})
	}

	logger.Info("consumer starting",
		zap.String("topic", cfg.Kafka.Topic),
		zap.String("group_id", cfg.Kafka.GroupID),
		zap.Int("workers", cfg.Kafka.Workers),
	)

	err = consumer.RunWorkers(ctx, cfg.Kafka.Workers, newReader, orchestrator, logger)
	logger.Info("consumer shutting down")
	return err
}
