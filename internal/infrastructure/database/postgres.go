package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// DBConfig holds the connection-pool settings.
type DBConfig struct {
	Host              string
	Port              int
	Username          string
	Password          string
	DBName            string
	SSLMode           string
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
	MaxRetries        int
	RetryDelay        time.Duration
	ConnectTimeout    time.Duration
}

// PostgresDB wraps the pgx connection pool.
type PostgresDB struct {
	Pool   *pgxpool.Pool
	config *DBConfig
}

func NewPostgresDB(config *DBConfig) *PostgresDB {
	return &PostgresDB{config: config}
}

func (db *DBConfig) buildConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		db.Username, db.Password, db.Host, db.Port, db.DBName, db.SSLMode,
	)
}

func (db *PostgresDB) configurePool() (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(db.config.buildConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %w", err)
	}

	poolConfig.MaxConns = db.config.MaxConns
	poolConfig.MinConns = db.config.MinConns
	poolConfig.MaxConnLifetime = db.config.MaxConnLifetime
	poolConfig.MaxConnIdleTime = db.config.MaxConnIdleTime
	poolConfig.HealthCheckPeriod = db.config.HealthCheckPeriod

	return poolConfig, nil
}

// connectWithRetry attempts to connect with exponential backoff. The database
// may come up after the application in containerized deployments.
func (db *PostgresDB) connectWithRetry(ctx context.Context, poolConfig *pgxpool.Config) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	delay := db.config.RetryDelay

	for attempt := 1; attempt <= db.config.MaxRetries; attempt++ {
		connectCtx, cancel := context.WithTimeout(ctx, db.config.ConnectTimeout)
		pool, err = pgxpool.NewWithConfig(connectCtx, poolConfig)
		if err == nil {
			err = pool.Ping(connectCtx)
		}
		cancel()

		if err == nil {
			return pool, nil
		}

		if pool != nil {
			pool.Close()
			pool = nil
		}

		log.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_retries", db.config.MaxRetries).
			Dur("retry_in", delay).
			Msg("database connection failed, retrying")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		delay *= 2
	}

	return nil, fmt.Errorf("failed to connect after %d attempts: %w", db.config.MaxRetries, err)
}

// Connect establishes the connection pool.
func (db *PostgresDB) Connect(ctx context.Context) error {
	poolConfig, err := db.configurePool()
	if err != nil {
		return err
	}

	pool, err := db.connectWithRetry(ctx, poolConfig)
	if err != nil {
		return err
	}

	db.Pool = pool

	log.Info().
		Str("host", db.config.Host).
		Int("port", db.config.Port).
		Str("database", db.config.DBName).
		Int32("max_conns", db.config.MaxConns).
		Msg("connected to PostgreSQL")

	return nil
}

// HealthCheck verifies the pool is alive.
func (db *PostgresDB) HealthCheck(ctx context.Context) error {
	if db.Pool == nil {
		return fmt.Errorf("database pool is not initialized")
	}
	return db.Pool.Ping(ctx)
}

// Close releases the pool.
func (db *PostgresDB) Close() {
	if db.Pool != nil {
		db.Pool.Close()
		log.Info().Msg("database connection pool closed")
	}
}
