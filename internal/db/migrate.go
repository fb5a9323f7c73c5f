package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		plan_id     TEXT NOT NULL,
		intent_type TEXT NOT NULL,
		outcome     TEXT NOT NULL CHECK(outcome IN ('SUCCESS','FAILURE')),
		timestamp   TEXT NOT NULL,
		details     TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_audit_logs_plan ON audit_logs(plan_id)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_timestamp ON audit_logs(timestamp)`,
}
