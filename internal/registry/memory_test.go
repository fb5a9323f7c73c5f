package registry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestRegistry(t *testing.T) (*MemoryRegistry, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	b := NewBuilder(DefaultTTL)
	b.Now = clock.Now
	return NewMemoryRegistry(b), clock
}

func listIntent() domain.Intent {
	return domain.NewIntent(domain.IntentListFiles, domain.RiskLow, nil)
}

func TestMemoryRegistry_IssueThenConsumeOnce(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, listIntent())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	got, err := reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, 0, reg.Len())

	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestMemoryRegistry_UnknownPlan(t *testing.T) {
	reg, _ := newTestRegistry(t)
	_, err := reg.Consume(context.Background(), "nope", "nope")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	assert.NotErrorIs(t, err, domain.ErrPlanExpired)
}

func TestMemoryRegistry_WrongTokenKeepsPlan(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, listIntent())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = reg.Consume(ctx, plan.ID, "guess")
		assert.ErrorIs(t, err, domain.ErrTokenMismatch)
	}
	_, err = reg.Consume(ctx, plan.ID, plan.ID)
	assert.ErrorIs(t, err, domain.ErrTokenMismatch)
	assert.Equal(t, 1, reg.Len())

	got, err := reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
}

func TestMemoryRegistry_ExpiredPlanRejected(t *testing.T) {
	reg, clock := newTestRegistry(t)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, listIntent())
	require.NoError(t, err)

	clock.Advance(DefaultTTL)
	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanExpired)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)

	// Expired is terminal.
	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
	assert.NotErrorIs(t, err, domain.ErrPlanExpired)
}

func TestMemoryRegistry_JustBeforeExpiry(t *testing.T) {
	reg, clock := newTestRegistry(t)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, listIntent())
	require.NoError(t, err)

	clock.Advance(DefaultTTL - time.Second)
	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.NoError(t, err)
}

func TestMemoryRegistry_IssueSweepsExpired(t *testing.T) {
	reg, clock := newTestRegistry(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := reg.Issue(ctx, listIntent())
		require.NoError(t, err)
	}
	clock.Advance(DefaultTTL + time.Second)
	_, err := reg.Issue(ctx, listIntent())
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())

	clock.Advance(DefaultTTL)
	assert.Equal(t, 1, reg.Sweep(clock.Now()))
	assert.Equal(t, 0, reg.Len())
}

func TestMemoryRegistry_ReturnedPlanIsACopy(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, domain.NewIntent(domain.IntentOpenFile, domain.RiskLow, map[string]string{domain.ParamPath: "a.go"}))
	require.NoError(t, err)
	plan.Intent.Parameters[domain.ParamPath] = "../../etc/passwd"
	plan.Steps[0] = "tampered"

	got, err := reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, "a.go", got.Intent.Param(domain.ParamPath))
	assert.Equal(t, "validate policy for OPEN_FILE", got.Steps[0])
}

func TestMemoryRegistry_ConcurrentConsumeAtMostOnce(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, listIntent())
	require.NoError(t, err)

	const callers = 64
	var (
		wg        sync.WaitGroup
		successes atomic.Int32
		notFound  atomic.Int32
		start     = make(chan struct{})
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
			switch {
			case err == nil:
				successes.Add(1)
			case errors.Is(err, domain.ErrPlanNotFound):
				notFound.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(callers-1), notFound.Load())
}

func TestMemoryRegistry_ConcurrentIssueAndConsume(t *testing.T) {
	reg, _ := newTestRegistry(t)
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := reg.Issue(ctx, listIntent())
			if err != nil {
				errs <- err
				return
			}
			if _, err := reg.Consume(ctx, p.ID, p.ConfirmationToken); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}
	assert.Equal(t, 0, reg.Len())
}

func TestMemoryRegistry_Backend(t *testing.T) {
	r, _ := newTestRegistry(t)
	assert.Equal(t, "memory", r.Backend())
}
