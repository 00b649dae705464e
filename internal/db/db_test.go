package db

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestConnectPostgres_BadDSN(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := ConnectPostgres(ctx, "::not a dsn::", zap.NewNop()); err == nil {
		t.Fatal("expected error for malformed DSN")
	}
}

func TestConnectPostgres(t *testing.T) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool, err := ConnectPostgres(context.Background(), dsn, zap.NewNop())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	var n int
	if err := pool.QueryRow(context.Background(), `SELECT COUNT(*) FROM branches`).Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n < 5 {
		t.Errorf("expected seeded branches, got %d", n)
	}
}
