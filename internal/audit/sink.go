package audit

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
)

// Store is the narrow write interface a durable audit backend exposes.
type Store interface {
	InsertAuditRecord(ctx context.Context, rec *domain.AuditRecord) error
	Ping(ctx context.Context) error
}

// Sink records the outcome of every execution attempt. It never fails: with
// no store, or a store that rejects the write, the record comes back with
// domain.NotPersistedID and a warning is logged.
type Sink struct {
	store  Store
	logger *slog.Logger
	now    func() time.Time

	warnOnce sync.Once
}

// NewSink creates a Sink over store. A nil store disables persistence.
func NewSink(store Store, logger *slog.Logger) *Sink {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sink{store: store, logger: logger, now: time.Now}
}

// Record builds an audit record and tries to persist it. All fields other
// than ID are returned exactly as given.
func (s *Sink) Record(ctx context.Context, planID string, kind domain.IntentKind, outcome domain.Outcome, details map[string]any) domain.AuditRecord {
	rec := domain.AuditRecord{
		ID:         domain.NotPersistedID,
		PlanID:     planID,
		IntentKind: kind,
		Outcome:    outcome,
		Timestamp:  s.now().UTC(),
		Details:    maps.Clone(details),
	}

	if s.store == nil {
		s.warnOnce.Do(func() {
			s.logger.WarnContext(ctx, "no audit store configured; audit logging is disabled")
		})
		return rec
	}

	stored := rec
	stored.Details = maps.Clone(details)
	if err := s.store.InsertAuditRecord(ctx, &stored); err != nil {
		s.logger.WarnContext(ctx, "audit record not persisted",
			"plan_id", planID,
			"intent", kind,
			"outcome", outcome,
			"error", fmt.Errorf("%w: %w", domain.ErrAuditUnavailable, err),
		)
		return rec
	}
	rec.ID = stored.ID
	return rec
}

// Status describes the audit backend for health reporting.
type Status struct {
	Configured bool   `json:"configured"`
	Available  bool   `json:"available"`
	Backend    string `json:"backend"`
	Error      string `json:"error,omitempty"`
}

// Status probes the store. It is unavailable but not an error when no store
// is configured.
func (s *Sink) Status(ctx context.Context) Status {
	if s.store == nil {
		return Status{Backend: "none", Error: "no audit store configured; audit logging is disabled"}
	}
	st := Status{Configured: true, Backend: backendName(s.store)}
	if err := s.store.Ping(ctx); err != nil {
		st.Error = err.Error()
		return st
	}
	st.Available = true
	return st
}

// Named is implemented by stores that can report a backend label.
type Named interface {
	Backend() string
}

func backendName(store Store) string {
	if n, ok := store.(Named); ok {
		return n.Backend()
	}
	return fmt.Sprintf("%T", store)
}
