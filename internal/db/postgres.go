package db

import (
	"context"
	"fmt"
	"time"

	"github.com/AlexeyAndrrr/konoramenidk/internal/branch"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func ConnectPostgres(ctx context.Context, dsn string, log *zap.Logger) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("postgres connection failed: %w", err)
	}

	log.Info("connected to postgres")

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	log.Info("schema initialized")

	return db, nil
}

// initSchema creates the tables if missing and seeds the branch network.
func initSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}

	for _, b := range branch.DefaultBranches() {
		if _, err := db.Exec(ctx, `
			INSERT INTO branches (id, name, address, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO NOTHING
		`, b.ID, b.Name, b.Address, b.Coordinates[0], b.Coordinates[1]); err != nil {
			return err
		}
	}

	return nil
}

var schema = []string{
	// -------------------------------
	// BRANCHES
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS branches (
		id INTEGER PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		address VARCHAR(500) NOT NULL,
		latitude DOUBLE PRECISION NOT NULL,
		longitude DOUBLE PRECISION NOT NULL
	)`,

	// -------------------------------
	// REVIEWS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS reviews (
		id BIGSERIAL PRIMARY KEY,
		branch_id INTEGER NOT NULL REFERENCES branches(id),
		author_name VARCHAR(255) NOT NULL,
		rating SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS reviews_branch_created_idx
		ON reviews (branch_id, created_at DESC)`,

	// -------------------------------
	// TIPS
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS tips (
		id BIGSERIAL PRIMARY KEY,
		branch_id INTEGER NOT NULL REFERENCES branches(id),
		tipper_id UUID NOT NULL,
		amount INTEGER NOT NULL CHECK (amount > 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,

	// -------------------------------
	// MENU (price kept as printed)
	// -------------------------------
	`CREATE TABLE IF NOT EXISTS menu_items (
		id INTEGER PRIMARY KEY,
		position INTEGER NOT NULL DEFAULT 0,
		title VARCHAR(255) NOT NULL,
		category VARCHAR(50) NOT NULL,
		spice_level VARCHAR(50) NOT NULL DEFAULT 'none',
		price_label VARCHAR(50) NOT NULL,
		is_new BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}
