package registry

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// redisTestServer is the server a registry test talks to: miniredis by
// default, or a real Redis at STEWARD_TEST_REDIS_ADDR.
type redisTestServer struct {
	mini *miniredis.Miniredis
}

// advance moves the server clock forward so keys past their TTL expire.
func (s redisTestServer) advance(d time.Duration) {
	if s.mini != nil {
		s.mini.FastForward(d)
		return
	}
	time.Sleep(d)
}

// newRedisTestRegistry returns a registry with its own key prefix, backed by
// miniredis unless STEWARD_TEST_REDIS_ADDR is set.
func newRedisTestRegistry(t *testing.T, builder *Builder) (*RedisRegistry, redisTestServer) {
	t.Helper()
	var srv redisTestServer
	addr := os.Getenv("STEWARD_TEST_REDIS_ADDR")
	if addr == "" {
		srv.mini = miniredis.RunT(t)
		addr = srv.mini.Addr()
	}
	client := NewRedisClient(addr, "", 0)
	t.Cleanup(func() { client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())

	return NewRedisRegistry(client, builder, "steward:test:"+uuid.NewString()+":"), srv
}

func TestNewRedisRegistry_Defaults(t *testing.T) {
	client := NewRedisClient("127.0.0.1:0", "", 0)
	defer client.Close()

	r := NewRedisRegistry(client, nil, "")
	assert.Equal(t, DefaultKeyPrefix+"abc", r.key("abc"))
	assert.Equal(t, DefaultTTL, r.builder.TTL)
	assert.Equal(t, "redis", r.Backend())
}

func TestRedisRegistry_IssueThenConsumeOnce(t *testing.T) {
	reg, _ := newRedisTestRegistry(t, NewBuilder(time.Minute))
	ctx := context.Background()

	plan, err := reg.Issue(ctx, domain.NewIntent(domain.IntentOpenFile, domain.RiskLow, map[string]string{domain.ParamPath: "go.mod"}))
	require.NoError(t, err)

	_, err = reg.Consume(ctx, plan.ID, "wrong")
	assert.ErrorIs(t, err, domain.ErrTokenMismatch)

	got, err := reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	require.NoError(t, err)
	assert.Equal(t, plan.ID, got.ID)
	assert.Equal(t, "go.mod", got.Intent.Param(domain.ParamPath))

	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRedisRegistry_KeyExpires(t *testing.T) {
	reg, srv := newRedisTestRegistry(t, NewBuilder(time.Second))
	ctx := context.Background()

	plan, err := reg.Issue(ctx, domain.NewIntent(domain.IntentListFiles, domain.RiskLow, nil))
	require.NoError(t, err)

	srv.advance(1500 * time.Millisecond)
	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRedisRegistry_ExpiredPayloadIsRejected(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	builder := NewBuilder(time.Minute)
	builder.Now = func() time.Time { return now }
	reg, _ := newRedisTestRegistry(t, builder)
	ctx := context.Background()

	plan, err := reg.Issue(ctx, domain.NewIntent(domain.IntentRunTests, domain.RiskMedium, nil))
	require.NoError(t, err)

	// The key is still live on the server but the plan's own window has passed.
	now = now.Add(2 * time.Minute)
	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanExpired)

	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRedisRegistry_UnknownPlan(t *testing.T) {
	reg, _ := newRedisTestRegistry(t, NewBuilder(time.Minute))

	_, err := reg.Consume(context.Background(), uuid.NewString(), "token")
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRedisRegistry_WrongTokenKeepsPlan(t *testing.T) {
	reg, srv := newRedisTestRegistry(t, NewBuilder(time.Minute))
	ctx := context.Background()

	plan, err := reg.Issue(ctx, domain.NewIntent(domain.IntentListFiles, domain.RiskLow, nil))
	require.NoError(t, err)

	_, err = reg.Consume(ctx, plan.ID, "guess")
	require.ErrorIs(t, err, domain.ErrTokenMismatch)
	if srv.mini != nil {
		assert.True(t, srv.mini.Exists(reg.key(plan.ID)))
		assert.Greater(t, srv.mini.TTL(reg.key(plan.ID)), time.Duration(0))
	}

	_, err = reg.Consume(ctx, plan.ID, plan.ConfirmationToken)
	assert.NoError(t, err)
}

func TestRedisRegistry_ServerDown(t *testing.T) {
	mini := miniredis.RunT(t)
	client := NewRedisClient(mini.Addr(), "", 0)
	defer client.Close()
	reg := NewRedisRegistry(client, nil, "")
	mini.Close()

	_, err := reg.Issue(context.Background(), domain.NewIntent(domain.IntentListFiles, domain.RiskLow, nil))
	assert.Error(t, err)
	assert.Error(t, reg.Ping(context.Background()))
}

func TestRedisRegistry_ConcurrentConsumeAtMostOnce(t *testing.T) {
	reg, _ := newRedisTestRegistry(t, NewBuilder(time.Minute))
	ctx := context.Background()

	plan, err := reg.Issue(ctx, domain.NewIntent(domain.IntentListFiles, domain.RiskLow, nil))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var successes atomic.Int32
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := reg.Consume(ctx, plan.ID, plan.ConfirmationToken); err == nil {
				successes.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), successes.Load())
}
