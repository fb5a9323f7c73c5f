package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces plan keys in a shared Redis.
const DefaultKeyPrefix = "steward:plan:"

// consumeScript does the token check and delete in one server-side step.
// KEYS[1] = plan key
// ARGV[1] = supplied confirmation token
// Returns {0} when absent, {2} on token mismatch, {1, plan_json} on success.
var consumeScript = redis.NewScript(`
local raw = redis.call("GET", KEYS[1])
if not raw then
    return {0}
end
local plan = cjson.decode(raw)
if plan["confirmation_token"] ~= ARGV[1] then
    return {2}
end
redis.call("DEL", KEYS[1])
return {1, raw}
`)

const (
	consumeMissing  int64 = 0
	consumeOK       int64 = 1
	consumeMismatch int64 = 2
)

// RedisRegistry keeps plans in Redis so that issuing and consuming can
// happen in different processes. Key expiry mirrors the plan window.
type RedisRegistry struct {
	client  redis.UniversalClient
	builder *Builder
	prefix  string
}

// NewRedisClient creates a client for a single Redis server.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewRedisRegistry creates a registry over client. An empty prefix means
// DefaultKeyPrefix.
func NewRedisRegistry(client redis.UniversalClient, builder *Builder, prefix string) *RedisRegistry {
	if builder == nil {
		builder = NewBuilder(DefaultTTL)
	}
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &RedisRegistry{client: client, builder: builder, prefix: prefix}
}

func (r *RedisRegistry) key(planID string) string {
	return r.prefix + planID
}

func (r *RedisRegistry) Issue(ctx context.Context, intent domain.Intent) (domain.Plan, error) {
	plan := r.builder.Build(intent)
	data, err := json.Marshal(plan)
	if err != nil {
		return domain.Plan{}, fmt.Errorf("encoding plan: %w", err)
	}
	ok, err := r.client.SetNX(ctx, r.key(plan.ID), data, r.builder.TTL).Result()
	if err != nil {
		return domain.Plan{}, fmt.Errorf("storing plan: %w", err)
	}
	if !ok {
		return domain.Plan{}, fmt.Errorf("storing plan: id %s already in use", plan.ID)
	}
	return plan, nil
}

func (r *RedisRegistry) Consume(ctx context.Context, planID, token string) (domain.Plan, error) {
	res, err := consumeScript.Run(ctx, r.client, []string{r.key(planID)}, token).Result()
	if err != nil {
		return domain.Plan{}, fmt.Errorf("consuming plan: %w", err)
	}

	results, ok := res.([]interface{})
	if !ok || len(results) == 0 {
		return domain.Plan{}, errors.New("consuming plan: invalid response from lua script")
	}
	code, _ := results[0].(int64)

	switch code {
	case consumeMissing:
		return domain.Plan{}, domain.ErrPlanNotFound
	case consumeMismatch:
		return domain.Plan{}, domain.ErrTokenMismatch
	case consumeOK:
	default:
		return domain.Plan{}, fmt.Errorf("consuming plan: unexpected script status %d", code)
	}

	if len(results) < 2 {
		return domain.Plan{}, errors.New("consuming plan: missing plan payload")
	}
	raw, _ := results[1].(string)
	var plan domain.Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return domain.Plan{}, fmt.Errorf("decoding plan: %w", err)
	}
	// Redis expiry is the primary guard; this catches clock skew and TTLs
	// rounded up by the server.
	if plan.Expired(r.builder.Now()) {
		return domain.Plan{}, domain.ErrPlanExpired
	}
	return plan, nil
}

// Ping checks the Redis connection.
func (r *RedisRegistry) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRegistry) Backend() string {
	return "redis"
}
