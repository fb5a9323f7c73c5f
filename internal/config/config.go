package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/alexanderramin/steward/internal/registry"
	"gopkg.in/yaml.v3"
)

// RedisConfig selects the shared plan registry. An empty Addr keeps plans
// in process memory.
type RedisConfig struct {
	Addr      string `yaml:"addr"`
	Password  string `yaml:"password"`
	DB        int    `yaml:"db"`
	KeyPrefix string `yaml:"key_prefix"`
}

// Config holds everything needed to assemble the assistant.
type Config struct {
	Root           string        `yaml:"root"`
	PlanTTL        time.Duration `yaml:"plan_ttl"`
	DatabaseURL    string        `yaml:"database_url"`
	AuditDBPath    string        `yaml:"audit_db"`
	Redis          RedisConfig   `yaml:"redis"`
	AllowedActions []string      `yaml:"allowed_actions"`
	LogLevel       string        `yaml:"log_level"`
	LogUseCases    bool          `yaml:"log_use_cases"`
}

// DefaultConfig sandboxes the working directory, keeps plans in memory and
// disables durable auditing.
func DefaultConfig() Config {
	root, err := os.Getwd()
	if err != nil {
		root = "."
	}
	allowed := make([]string, 0, len(domain.AllIntentKinds()))
	for _, k := range domain.AllIntentKinds() {
		allowed = append(allowed, string(k))
	}
	return Config{
		Root:           root,
		PlanTTL:        registry.DefaultTTL,
		Redis:          RedisConfig{KeyPrefix: registry.DefaultKeyPrefix},
		AllowedActions: allowed,
		LogLevel:       "info",
	}
}

// LoadConfig starts from DefaultConfig, applies the YAML file named by
// STEWARD_CONFIG if set, then environment overrides, and validates the result.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	if path := os.Getenv("STEWARD_CONFIG"); path != "" {
		if err := cfg.applyFile(path); err != nil {
			return Config{}, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides file values. Malformed numbers and durations are
// ignored, leaving the previous value in place.
func (c *Config) applyEnv() {
	if v := os.Getenv("STEWARD_ROOT"); v != "" {
		c.Root = v
	}
	if v := os.Getenv("STEWARD_PLAN_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.PlanTTL = d
		}
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("STEWARD_AUDIT_DB"); v != "" {
		c.AuditDBPath = v
	}
	if v := os.Getenv("STEWARD_REDIS_ADDR"); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv("STEWARD_REDIS_PASSWORD"); v != "" {
		c.Redis.Password = v
	}
	if v := os.Getenv("STEWARD_REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Redis.DB = n
		}
	}
	if v := os.Getenv("STEWARD_ALLOWED_ACTIONS"); v != "" {
		c.AllowedActions = splitList(v)
	}
	if v := os.Getenv("STEWARD_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("STEWARD_LOG_USE_CASES"); v != "" {
		c.LogUseCases, _ = strconv.ParseBool(v)
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Validate reports every problem at once.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Root) == "" {
		errs = append(errs, errors.New("root is required"))
	}
	if c.PlanTTL <= 0 {
		errs = append(errs, fmt.Errorf("plan_ttl must be positive, got %s", c.PlanTTL))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("redis.db must not be negative, got %d", c.Redis.DB))
	}
	for _, name := range c.AllowedActions {
		if _, ok := domain.ParseIntentKind(strings.ToUpper(name)); !ok {
			errs = append(errs, fmt.Errorf("allowed_actions: unknown action %q", name))
		}
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel returns the configured log level, INFO when unset.
func (c Config) SlogLevel() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log_level: %w", err)
	}
	return lvl, nil
}
