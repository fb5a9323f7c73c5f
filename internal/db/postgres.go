package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"
)

// OpenPostgres connects to the Postgres database named by dsn, verifies the
// connection and applies the audit schema.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	db.SetMaxOpenConns(10)
	db.SetConnMaxIdleTime(5 * time.Minute)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	if err := MigratePostgres(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running postgres migrations: %w", err)
	}
	return db, nil
}

// MigratePostgres creates the audit schema if it does not exist.
func MigratePostgres(ctx context.Context, db DBTX) error {
	for i, stmt := range postgresMigrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("postgres migration %d: %w", i, err)
		}
	}
	return nil
}

var postgresMigrations = []string{
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id          SERIAL PRIMARY KEY,
		plan_id     TEXT NOT NULL,
		intent_type TEXT NOT NULL,
		outcome     TEXT NOT NULL CHECK(outcome IN ('SUCCESS','FAILURE')),
		timestamp   TIMESTAMPTZ DEFAULT NOW(),
		details     JSONB
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_logs_plan ON audit_logs(plan_id)`,
}
