package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/steward/internal/db"
	"github.com/alexanderramin/steward/internal/domain"
)

// PostgresAuditRepo implements AuditRepo against the audit_logs table in
// Postgres, where ids come from a SERIAL column.
type PostgresAuditRepo struct {
	db db.DBTX
}

func NewPostgresAuditRepo(db db.DBTX) *PostgresAuditRepo {
	return &PostgresAuditRepo{db: db}
}

func (r *PostgresAuditRepo) InsertAuditRecord(ctx context.Context, rec *domain.AuditRecord) error {
	details, err := encodeDetails(rec.Details)
	if err != nil {
		return err
	}
	rec.Timestamp = timestampOrNow(rec.Timestamp)

	query := `INSERT INTO audit_logs (plan_id, intent_type, outcome, timestamp, details)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err = r.db.QueryRowContext(ctx, query,
		rec.PlanID,
		string(rec.IntentKind),
		string(rec.Outcome),
		rec.Timestamp,
		details,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("inserting audit record: %w", err)
	}
	return nil
}

func (r *PostgresAuditRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("pinging postgres: %w", err)
	}
	return nil
}
