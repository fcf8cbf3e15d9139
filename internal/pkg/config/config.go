package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type (
	Tasks struct {
		DriverDistanceMetricsInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter capacity
		RateLimiterBurst int           // middleware rate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
		// MaxConns и MinConns необязательны, 0 - значения пула по умолчанию
		MaxConns int
		MinConns int
	}

	Storage struct {
		Driver         string // postgres | memory
		MigrateOnStart bool
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Handlers        KafkaHandlers
		Producer        KafkaProducer
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderRequested OrderRequested
	}

	OrderRequested struct {
		ProcessTimeout time.Duration
	}

	KafkaProducer struct {
		Topic string // пустой topic отключает публикацию событий
	}

	Distance struct {
		Mode        string // random | fixed
		MaxDistance int64
		FixedValue  int64
	}

	ReportExport struct {
		Enabled      bool
		Schedule     string // cron выражение, например "@every 1h"
		Bucket       string
		Prefix       string
		Endpoint     string // S3-совместимое хранилище, пусто для AWS
		Region       string
		UsePathStyle bool
		Timeout      time.Duration
	}

	Config struct {
		LogLevel     string
		Tasks        Tasks
		Server       HTTPServer
		Database     Database
		Storage      Storage
		Kafka        Kafka
		Distance     Distance
		ReportExport ReportExport
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	distanceMetricsInterval, err := osGetEnvDuration("BACKGROUND_DRIVER_DISTANCE_METRICS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderRequestedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_REQUESTED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMaxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMinConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrateOnStart, err := osGetBool("MIGRATE_ON_START")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxDistance, err := osGetInt64("DISTANCE_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	fixedDistance, err := osGetInt64("DISTANCE_FIXED_VALUE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reportExportEnabled, err := osGetBool("REPORT_EXPORT_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reportExportPathStyle, err := osGetBool("REPORT_EXPORT_S3_USE_PATH_STYLE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	reportExportTimeout, err := osGetEnvDuration("REPORT_EXPORT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		LogLevel: os.Getenv("LOG_LEVEL"),
		Tasks: Tasks{
			DriverDistanceMetricsInterval: distanceMetricsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
			MaxConns: dbMaxConns,
			MinConns: dbMinConns,
		},
		Storage: Storage{
			Driver:         osGetEnvDefault("STORAGE_DRIVER", StorageDriverPostgres),
			MigrateOnStart: migrateOnStart,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderRequested: OrderRequested{
					ProcessTimeout: orderRequestedTimeout,
				},
			},
			Producer: KafkaProducer{
				Topic: os.Getenv("KAFKA_PRODUCER_TOPIC"),
			},
		},
		Distance: Distance{
			Mode:        osGetEnvDefault("DISTANCE_MODE", "random"),
			MaxDistance: maxDistance,
			FixedValue:  fixedDistance,
		},
		ReportExport: ReportExport{
			Enabled:      reportExportEnabled,
			Schedule:     osGetEnvDefault("REPORT_EXPORT_SCHEDULE", "@every 1h"),
			Bucket:       os.Getenv("REPORT_EXPORT_S3_BUCKET"),
			Prefix:       osGetEnvDefault("REPORT_EXPORT_S3_PREFIX", "rank-reports"),
			Endpoint:     os.Getenv("REPORT_EXPORT_S3_ENDPOINT"),
			Region:       osGetEnvDefault("REPORT_EXPORT_S3_REGION", "us-east-1"),
			UsePathStyle: reportExportPathStyle,
			Timeout:      reportExportTimeout,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if err := validateDatabase(cfg.Database); err != nil {
			return err
		}
	case StorageDriverMemory:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be %q or %q, got %q", StorageDriverPostgres, StorageDriverMemory, cfg.Storage.Driver)
	}

	if cfg.Tasks.DriverDistanceMetricsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_DRIVER_DISTANCE_METRICS_INTERVAL is required")
	}

	if cfg.Kafka.Producer.Topic != "" && cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required when KAFKA_PRODUCER_TOPIC is set")
	}

	if cfg.Distance.Mode != "random" && cfg.Distance.Mode != "fixed" {
		return fmt.Errorf("DISTANCE_MODE must be random or fixed, got %q", cfg.Distance.Mode)
	}
	if cfg.Distance.MaxDistance < 0 || cfg.Distance.FixedValue < 0 {
		return errors.New("DISTANCE_MAX and DISTANCE_FIXED_VALUE must not be negative")
	}

	if cfg.ReportExport.Enabled {
		if cfg.ReportExport.Bucket == "" {
			return errors.New("REPORT_EXPORT_S3_BUCKET is required when REPORT_EXPORT_ENABLED")
		}
		if cfg.ReportExport.Timeout == time.Duration(0) {
			return errors.New("REPORT_EXPORT_TIMEOUT is required when REPORT_EXPORT_ENABLED")
		}
	}

	return nil
}

func validateDatabase(db Database) error {
	if db.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if db.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if db.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if db.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if db.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if db.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if db.MaxConns < 0 || db.MinConns < 0 {
		return errors.New("POSTGRES_MAX_CONNS and POSTGRES_MIN_CONNS must not be negative")
	}
	if db.MaxConns > 0 && db.MinConns > db.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS must not exceed POSTGRES_MAX_CONNS")
	}
	return nil
}

// ValidateConsumer проверяет настройки, нужные только воркеру order.requested.
func (c *Config) ValidateConsumer() error {
	if c.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if c.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if c.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if c.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if c.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if c.Kafka.Handlers.OrderRequested.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_REQUESTED_PROCESS_TIMEOUT is required")
	}
	return nil
}

func osGetEnvDefault(s, def string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return def
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
