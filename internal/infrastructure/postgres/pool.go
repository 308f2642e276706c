package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func NewPool(ctx context.Context, dsn string, maxConns, minConns int32, maxConnLife time.Duration) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	cfg.MaxConns = maxConns
	cfg.MinConns = minConns
	cfg.MaxConnLifetime = maxConnLife
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

// WaitForPool pings the database once per second until it answers or the
// attempts are exhausted, so the server can start before the database is up.
func WaitForPool(ctx context.Context, dsn string, maxConns, minConns int32, maxConnLife time.Duration, attempts int, logger *logrus.Logger) (*pgxpool.Pool, error) {
	if attempts < 1 {
		attempts = 1
	}
	var pool *pgxpool.Pool
	var err error
	for i := 0; i < attempts; i++ {
		pool, err = NewPool(ctx, dsn, maxConns, minConns, maxConnLife)
		if err == nil {
			logger.Info("connected to database")
			return pool, nil
		}
		logger.WithError(err).Warn("database unavailable, waiting 1 second...")
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Second):
		}
	}
	return nil, err
}
