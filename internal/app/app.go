package app

import (
	"context"
	"database/sql"
	"fmt"

	"go-hris-etl/internal/blob"
	"go-hris-etl/internal/config"
	"go-hris-etl/internal/messaging/kafka"
	"go-hris-etl/internal/messaging/kafka/producer"
	"go-hris-etl/internal/middleware"
	"go-hris-etl/internal/shared/connection"
	"go-hris-etl/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const connectRetries = 5

// Infra holds the shared connections a process opened. Close releases them.
type Infra struct {
	GormDB  *gorm.DB
	SQLDB   *sql.DB
	Redis   *redis.Client
	closers []func() error
}

func (i *Infra) Close() {
	for j := len(i.closers) - 1; j >= 0; j-- {
		if err := i.closers[j](); err != nil {
			zap.L().Warn("close infra failed", zap.Error(err))
		}
	}
}

func connectDatabase(cfg config.Config) (*Infra, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	return &Infra{GormDB: gormDB, SQLDB: sqlDB, closers: []func() error{sqlDB.Close}}, nil
}

// BuildApp opens the API's dependencies and registers its routes on router.
// The returned Infra must be closed by the caller.
func BuildApp(ctx context.Context, router *gin.Engine, cfg config.Config) (*Infra, error) {
	if err := cfg.RequireJWTSecret(); err != nil {
		return nil, err
	}

	infra, err := connectDatabase(cfg)
	if err != nil {
		return nil, err
	}

	rdb, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, connectRetries)
	if err != nil {
		infra.Close()
		return nil, err
	}
	infra.Redis = rdb
	infra.closers = append(infra.closers, rdb.Close)

	s3Client, err := blob.NewS3Client(ctx, cfg.Storage)
	if err != nil {
		infra.Close()
		return nil, err
	}
	store := blob.NewS3Store(s3Client, cfg.Storage.Bucket)

	enqueuer, err := newEnqueuer(cfg, infra)
	if err != nil {
		infra.Close()
		return nil, err
	}

	router.Use(middleware.RequestContext(zap.L()))

	registerModules(router, cfg, infra, store, enqueuer)

	return infra, nil
}

// newEnqueuer picks the submission path: a direct Kafka publish, or an
// outbox row the worker relays later.
func newEnqueuer(cfg config.Config, infra *Infra) (upload.Enqueuer, error) {
	switch cfg.Queue.Mode {
	case config.QueueModeOutbox:
		zap.L().Info("upload enqueuer: outbox")
		return producer.NewOutboxEnqueuer(kafka.NewOutboxRepository(infra.SQLDB), cfg.Kafka.Topic), nil
	case config.QueueModeDirect:
		if err := cfg.RequireKafka(); err != nil {
			return nil, err
		}
		writer, err := connection.ConnectKafkaWithRetry(cfg.Kafka, connectRetries)
		if err != nil {
			return nil, err
		}
		infra.closers = append(infra.closers, writer.Close)
		zap.L().Info("upload enqueuer: direct", zap.String("topic", cfg.Kafka.Topic))
		return producer.NewDirectEnqueuer(writer, cfg.Kafka.Topic), nil
	default:
		return nil, fmt.Errorf("unknown queue mode %q", cfg.Queue.Mode)
	}
}
