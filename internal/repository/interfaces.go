package repository

import (
	"context"

	"github.com/alexanderramin/steward/internal/domain"
)

// AuditRepo persists audit records. It is write-only: nothing in the
// pipeline reads records back.
type AuditRepo interface {
	// InsertAuditRecord stores rec and sets rec.ID to the store-assigned id.
	InsertAuditRecord(ctx context.Context, rec *domain.AuditRecord) error
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
