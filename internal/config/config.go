package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	QueueModeDirect = "direct"
	QueueModeOutbox = "outbox"
)

type Config struct {
	HTTP     HTTPConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Storage  StorageConfig
	Auth     AuthConfig
	Queue    QueueConfig
	CORS     CORSConfig
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	MaxUploadMB  int64
}

type DatabaseConfig struct {
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	MaxRetries int
}

// DSN is the key/value form gorm's postgres driver expects.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode,
	)
}

// URL is the form golang-migrate expects.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

type RedisConfig struct {
	Addr      string
	StatusTTL time.Duration
}

type KafkaConfig struct {
	Broker  string
	Topic   string
	GroupID string
	Workers int
}

type StorageConfig struct {
	Bucket   string
	Region   string
	Endpoint string
}

type AuthConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TokenTTL time.Duration
}

type QueueConfig struct {
	Mode         string
	PollInterval time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.port", "3000")
	v.SetDefault("http.read_timeout", 5*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.max_upload_mb", 32)

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "hris_etl")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_retries", 5)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.status_ttl", 24*time.Hour)

	v.SetDefault("kafka.broker", "")
	v.SetDefault("kafka.topic", "hr.employee.import.requested.v1")
	v.SetDefault("kafka.group_id", "go-hris-etl-pipeline")
	v.SetDefault("kafka.workers", 4)

	v.SetDefault("storage.bucket", "hr-uploads")
	v.SetDefault("storage.region", "us-east-1")
	v.SetDefault("storage.endpoint", "")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "go-hris-etl")
	v.SetDefault("jwt.audience", "go-hris-etl")
	v.SetDefault("jwt.token_ttl", 3*time.Hour)

	v.SetDefault("queue.mode", QueueModeDirect)
	v.SetDefault("queue.poll_interval", 3*time.Second)

	v.SetDefault("cors.allowed_origins", []string{"*"})
}

// Load reads .env (if present), then config.yaml from configPath (if present),
// then environment variables such as DB_HOST or KAFKA_BROKER.
func Load(configPath string) (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		zap.L().Debug("no config.yaml found, using defaults and env vars")
	}

	cfg := Config{
		HTTP: HTTPConfig{
			Port:         v.GetString("http.port"),
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
			MaxUploadMB:  v.GetInt64("http.max_upload_mb"),
		},
		Database: DatabaseConfig{
			Host:       v.GetString("db.host"),
			Port:       v.GetString("db.port"),
			User:       v.GetString("db.user"),
			Password:   v.GetString("db.password"),
			Name:       v.GetString("db.name"),
			SSLMode:    v.GetString("db.sslmode"),
			MaxRetries: v.GetInt("db.max_retries"),
		},
		Redis: RedisConfig{
			Addr:      v.GetString("redis.addr"),
			StatusTTL: v.GetDuration("redis.status_ttl"),
		},
		Kafka: KafkaConfig{
			Broker:  v.GetString("kafka.broker"),
			Topic:   v.GetString("kafka.topic"),
			GroupID: v.GetString("kafka.group_id"),
			Workers: v.GetInt("kafka.workers"),
		},
		Storage: StorageConfig{
			Bucket:   v.GetString("storage.bucket"),
			Region:   v.GetString("storage.region"),
			Endpoint: v.GetString("storage.endpoint"),
		},
		Auth: AuthConfig{
			Secret:   v.GetString("jwt.secret"),
			Issuer:   v.GetString("jwt.issuer"),
			Audience: v.GetString("jwt.audience"),
			TokenTTL: v.GetDuration("jwt.token_ttl"),
		},
		Queue: QueueConfig{
			Mode:         strings.ToLower(v.GetString("queue.mode")),
			PollInterval: v.GetDuration("queue.poll_interval"),
		},
		CORS: CORSConfig{
			AllowedOrigins: v.GetStringSlice("cors.allowed_origins"),
		},
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Queue.Mode {
	case QueueModeDirect, QueueModeOutbox:
	default:
		return fmt.Errorf("invalid QUEUE_MODE %q", c.Queue.Mode)
	}
	if c.Kafka.Workers < 1 {
		return fmt.Errorf("KAFKA_WORKERS must be at least 1")
	}
	return nil
}

// RequireKafka is checked by the processes that actually talk to the broker.
func (c Config) RequireKafka() error {
	if c.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}
	return nil
}

func (c Config) RequireJWTSecret() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	return nil
}
