package config

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/alexanderramin/steward/internal/audit"
	"github.com/alexanderramin/steward/internal/db"
	"github.com/alexanderramin/steward/internal/domain"
	"github.com/alexanderramin/steward/internal/policy"
	"github.com/alexanderramin/steward/internal/registry"
	"github.com/alexanderramin/steward/internal/repository"
)

// Whitelist builds the action whitelist from AllowedActions.
func (c Config) Whitelist() (policy.Whitelist, error) {
	kinds := make([]domain.IntentKind, 0, len(c.AllowedActions))
	for _, name := range c.AllowedActions {
		k, ok := domain.ParseIntentKind(strings.ToUpper(strings.TrimSpace(name)))
		if !ok {
			return policy.Whitelist{}, fmt.Errorf("allowed_actions: unknown action %q", name)
		}
		kinds = append(kinds, k)
	}
	return policy.NewWhitelist(kinds...), nil
}

// PolicyEngine builds the sandbox root and whitelist.
func (c Config) PolicyEngine() (*policy.Engine, error) {
	root, err := policy.NewRoot(c.Root)
	if err != nil {
		return nil, fmt.Errorf("sandbox root: %w", err)
	}
	wl, err := c.Whitelist()
	if err != nil {
		return nil, err
	}
	return policy.NewEngine(root, wl), nil
}

// PlanRegistry returns a Redis-backed registry when Redis.Addr is set, and
// an in-process one otherwise.
func (c Config) PlanRegistry() registry.Registry {
	builder := registry.NewBuilder(c.PlanTTL)
	if c.Redis.Addr == "" {
		return registry.NewMemoryRegistry(builder)
	}
	client := registry.NewRedisClient(c.Redis.Addr, c.Redis.Password, c.Redis.DB)
	return registry.NewRedisRegistry(client, builder, c.Redis.KeyPrefix)
}

// AuditBackend names the store AuditStore will open.
func (c Config) AuditBackend() string {
	switch {
	case c.DatabaseURL != "":
		return "postgres"
	case c.AuditDBPath != "":
		return "sqlite"
	default:
		return "none"
	}
}

// AuditStore returns a lazily opened store for the configured backend, or
// nil when auditing is not configured. DatabaseURL takes precedence.
func (c Config) AuditStore(logger *slog.Logger) audit.Store {
	switch c.AuditBackend() {
	case "postgres":
		dsn := c.DatabaseURL
		return audit.NewLazyStore("postgres", func(ctx context.Context) (audit.Store, error) {
			conn, err := db.OpenPostgres(ctx, dsn)
			if err != nil {
				return nil, err
			}
			return repository.NewPostgresAuditRepo(conn), nil
		}, logger)
	case "sqlite":
		path := c.AuditDBPath
		return audit.NewLazyStore("sqlite", func(context.Context) (audit.Store, error) {
			conn, err := db.OpenDB(path)
			if err != nil {
				return nil, err
			}
			return repository.NewSQLiteAuditRepo(conn), nil
		}, logger)
	default:
		return nil
	}
}
