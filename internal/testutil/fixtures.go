package testutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/google/uuid"
)

// NewSandbox creates a temporary project root populated with files, keyed
// by slash-separated relative path. Parent directories are created as needed.
func NewSandbox(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("creating sandbox dir for %s: %v", rel, err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("writing sandbox file %s: %v", rel, err)
		}
	}
	return dir
}

// Snapshot returns every regular file under dir with its content, keyed by
// slash-separated relative path.
func Snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	if err != nil {
		t.Fatalf("snapshotting %s: %v", dir, err)
	}
	return out
}

// Plan options
type PlanOption func(*domain.Plan)

func WithExpiresAt(at time.Time) PlanOption {
	return func(p *domain.Plan) {
		p.ExpiresAt = at
	}
}

func WithToken(token string) PlanOption {
	return func(p *domain.Plan) {
		p.ConfirmationToken = token
	}
}

// NewTestPlan builds a plan for intent with random ids, expiring in five minutes.
func NewTestPlan(intent domain.Intent, opts ...PlanOption) domain.Plan {
	p := domain.Plan{
		ID:                uuid.New().String(),
		Intent:            intent,
		Summary:           "test plan",
		Steps:             []string{"validate policy for " + string(intent.Kind), "execute " + string(intent.Kind)},
		ConfirmationToken: uuid.New().String(),
		ExpiresAt:         time.Now().Add(5 * time.Minute).UTC(),
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// NewTestAuditRecord builds an unpersisted audit record.
func NewTestAuditRecord(planID string, outcome domain.Outcome) *domain.AuditRecord {
	return &domain.AuditRecord{
		ID:         domain.NotPersistedID,
		PlanID:     planID,
		IntentKind: domain.IntentListFiles,
		Outcome:    outcome,
		Timestamp:  time.Now().UTC().Truncate(time.Second),
		Details:    map[string]any{"summary": "ok"},
	}
}
