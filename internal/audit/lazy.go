package audit

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/alexanderramin/steward/internal/domain"
)

// Opener connects to a durable store.
type Opener func(ctx context.Context) (Store, error)

// LazyStore opens its backend on first use and keeps the result, success or
// failure, for the life of the process. A failed open is logged once at
// ERROR since durable auditing stays off until restart.
type LazyStore struct {
	name   string
	open   Opener
	logger *slog.Logger

	once  sync.Once
	store Store
	err   error
}

// NewLazyStore returns a Store that calls open once, on first use.
func NewLazyStore(name string, open Opener, logger *slog.Logger) *LazyStore {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &LazyStore{name: name, open: open, logger: logger}
}

func (l *LazyStore) get(ctx context.Context) (Store, error) {
	l.once.Do(func() {
		l.store, l.err = l.open(ctx)
		if l.err == nil && l.store == nil {
			l.err = fmt.Errorf("%s opener returned no store", l.name)
		}
		if l.err != nil {
			l.logger.ErrorContext(ctx, "audit store unavailable; records will not be persisted until restart",
				"backend", l.name,
				"error", l.err,
			)
		}
	})
	return l.store, l.err
}

func (l *LazyStore) InsertAuditRecord(ctx context.Context, rec *domain.AuditRecord) error {
	store, err := l.get(ctx)
	if err != nil {
		return fmt.Errorf("opening %s audit store: %w", l.name, err)
	}
	return store.InsertAuditRecord(ctx, rec)
}

func (l *LazyStore) Ping(ctx context.Context) error {
	store, err := l.get(ctx)
	if err != nil {
		return fmt.Errorf("opening %s audit store: %w", l.name, err)
	}
	return store.Ping(ctx)
}

func (l *LazyStore) Backend() string {
	return l.name
}
