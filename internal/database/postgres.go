package database

import (
	"context"
	"fmt"
	"time"

	"github.com/MassBabyGeek/SwiggyRoast-backend/internal/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

var DB *pgxpool.Pool

func ConnectPostgres(cfg *config.Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	DB = pool

	return pool, nil
}

// InitSchema crée les tables si elles n'existent pas. Idempotent,
// sans danger sous premier accès concurrent.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS spend_records (
			id TEXT PRIMARY KEY,
			seq BIGSERIAL,
			customer_id TEXT NOT NULL UNIQUE,
			customer_name TEXT NOT NULL,
			email TEXT NOT NULL,
			total_spend DOUBLE PRECISION NOT NULL DEFAULT 0,
			total_orders INTEGER NOT NULL DEFAULT 0,
			average_order_value DOUBLE PRECISION NOT NULL DEFAULT 0,
			monthly_spend DOUBLE PRECISION NOT NULL DEFAULT 0,
			order_frequency DOUBLE PRECISION NOT NULL DEFAULT 0,
			cancellation_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
			last_order_age TEXT NOT NULL DEFAULT '',
			addresses JSONB NOT NULL DEFAULT '{}',
			verified_by TEXT NOT NULL DEFAULT 'reclaim',
			last_updated TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("could not create spend_records table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS roast_history (
			id TEXT PRIMARY KEY,
			customer_id TEXT NOT NULL,
			overall_roast TEXT NOT NULL,
			spending_shame TEXT NOT NULL,
			roast_level TEXT NOT NULL,
			roast_score INTEGER NOT NULL,
			burn_degree TEXT NOT NULL,
			fun_facts TEXT[] NOT NULL DEFAULT '{}',
			roast_emojis TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	if err != nil {
		return fmt.Errorf("could not create roast_history table: %w", err)
	}

	_, err = pool.Exec(ctx, `
		CREATE INDEX IF NOT EXISTS idx_roast_history_customer
		ON roast_history (customer_id, created_at DESC)
	`)
	if err != nil {
		return fmt.Errorf("could not create roast_history index: %w", err)
	}

	return nil
}
