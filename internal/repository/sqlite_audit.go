package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/steward/internal/db"
	"github.com/alexanderramin/steward/internal/domain"
)

// SQLiteAuditRepo implements AuditRepo using a SQLite database.
type SQLiteAuditRepo struct {
	db db.DBTX
}

// NewSQLiteAuditRepo creates a new SQLiteAuditRepo.
func NewSQLiteAuditRepo(db db.DBTX) *SQLiteAuditRepo {
	return &SQLiteAuditRepo{db: db}
}

func (r *SQLiteAuditRepo) InsertAuditRecord(ctx context.Context, rec *domain.AuditRecord) error {
	details, err := encodeDetails(rec.Details)
	if err != nil {
		return err
	}
	rec.Timestamp = timestampOrNow(rec.Timestamp)

	query := `INSERT INTO audit_logs (plan_id, intent_type, outcome, timestamp, details)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		rec.PlanID,
		string(rec.IntentKind),
		string(rec.Outcome),
		rec.Timestamp.Format(time.RFC3339Nano),
		details,
	)
	if err != nil {
		return fmt.Errorf("inserting audit record: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading audit record id: %w", err)
	}
	rec.ID = id
	return nil
}

func (r *SQLiteAuditRepo) Ping(ctx context.Context) error {
	var one int
	if err := r.db.QueryRowContext(ctx, `SELECT 1`).Scan(&one); err != nil {
		return fmt.Errorf("pinging sqlite: %w", err)
	}
	return nil
}
