package registry

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
)

// MemoryRegistry keeps plans in a process-local map. Plans do not survive a
// restart.
type MemoryRegistry struct {
	builder *Builder

	mu    sync.Mutex
	plans map[string]domain.Plan
}

// NewMemoryRegistry creates an empty registry issuing plans with builder.
func NewMemoryRegistry(builder *Builder) *MemoryRegistry {
	if builder == nil {
		builder = NewBuilder(DefaultTTL)
	}
	return &MemoryRegistry{
		builder: builder,
		plans:   make(map[string]domain.Plan),
	}
}

func (r *MemoryRegistry) Issue(_ context.Context, intent domain.Intent) (domain.Plan, error) {
	plan := r.builder.Build(intent)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sweepLocked(r.builder.Now())
	r.plans[plan.ID] = plan
	return plan.Clone(), nil
}

// Consume removes and returns the plan if token matches. A wrong token leaves
// the plan in place; an expired plan is dropped and reported as expired.
func (r *MemoryRegistry) Consume(_ context.Context, planID, token string) (domain.Plan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	plan, ok := r.plans[planID]
	if !ok {
		return domain.Plan{}, domain.ErrPlanNotFound
	}
	if plan.Expired(r.builder.Now()) {
		delete(r.plans, planID)
		return domain.Plan{}, domain.ErrPlanExpired
	}
	if !tokensEqual(plan.ConfirmationToken, token) {
		return domain.Plan{}, domain.ErrTokenMismatch
	}
	delete(r.plans, planID)
	return plan, nil
}

// Len returns the number of live plans, expired ones included until swept.
func (r *MemoryRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.plans)
}

// Sweep drops every plan expired at now and returns how many were removed.
func (r *MemoryRegistry) Sweep(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sweepLocked(now)
}

func (r *MemoryRegistry) sweepLocked(now time.Time) int {
	n := 0
	for id, p := range r.plans {
		if p.Expired(now) {
			delete(r.plans, id)
			n++
		}
	}
	return n
}

func tokensEqual(want, got string) bool {
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

func (r *MemoryRegistry) Backend() string {
	return "memory"
}
