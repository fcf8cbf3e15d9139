package postgres

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"walt/internal/pkg/config"
	"walt/pkg/logger"
	"walt/pkg/retrier"
	"walt/pkg/retrier/backoff_adapter"
)

const (
	defaultMaxConns = 10
	defaultMinConns = 2
	maxConnLifetime = time.Hour
	maxConnIdleTime = 10 * time.Minute

	pingInitialInterval = 2 * time.Second
)

// NewConnPool создает пул и ждет, пока база начнет отвечать. Пока Postgres поднимается, ошибки ретраятся.
func NewConnPool(ctx context.Context, log logger.Logger, cfg *config.Database) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(newDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}
	poolCfg.MaxConns = defaultMaxConns
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	poolCfg.MinConns = min(defaultMinConns, poolCfg.MaxConns)
	if cfg.MinConns > 0 {
		poolCfg.MinConns = int32(cfg.MinConns)
	}
	poolCfg.MaxConnLifetime = maxConnLifetime
	poolCfg.MaxConnIdleTime = maxConnIdleTime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connection pool: %w", err)
	}

	dbLog := log.With(
		logger.NewField("host", cfg.Host),
		logger.NewField("port", cfg.Port),
		logger.NewField("db", cfg.DBName),
		logger.NewField("max_conns", poolCfg.MaxConns),
	)

	if err := pingDatabase(ctx, dbLog, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("database connection: %w", err)
	}

	return pool, nil
}

// newDSN экранирует учетные данные, пароль может содержать @ и /.
func newDSN(cfg *config.Database) string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return dsn.String()
}

func pingDatabase(ctx context.Context, log logger.Logger, pool *pgxpool.Pool) error {
	// все ошибки ретраим
	pinger := backoff_adapter.New(retrier.Connect(pingInitialInterval, func(attempt uint64, err error, next time.Duration) {
		log.Warn("database is not ready, retrying",
			logger.NewField("attempt", attempt),
			logger.NewField("error", err),
			logger.NewField("next_attempt_in", next.String()),
		)
	}))

	if err := pinger.ExecuteWithContext(ctx, pool.Ping); err != nil {
		log.Error("database connection failed after retries", logger.NewField("error", err))
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connection established")
	return nil
}
