package registry

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
	"github.com/google/uuid"
)

// DefaultTTL is how long an issued plan stays consumable.
const DefaultTTL = 5 * time.Minute

// Builder turns an intent into a fresh Plan. Ids and tokens are random
// (UUIDv4 from crypto/rand) and never derived from each other.
type Builder struct {
	TTL   time.Duration
	Now   func() time.Time
	NewID func() string
}

// NewBuilder returns a Builder with the given TTL; ttl <= 0 means DefaultTTL.
func NewBuilder(ttl time.Duration) *Builder {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Builder{
		TTL:   ttl,
		Now:   time.Now,
		NewID: func() string { return uuid.New().String() },
	}
}

// Build creates a plan for intent expiring TTL after now.
func (b *Builder) Build(intent domain.Intent) domain.Plan {
	id := b.NewID()
	token := b.NewID()
	for token == id {
		token = b.NewID()
	}
	return domain.Plan{
		ID:                id,
		Intent:            intent.Clone(),
		Summary:           Summary(intent),
		Steps:             Steps(intent),
		ConfirmationToken: token,
		ExpiresAt:         b.Now().Add(b.TTL).UTC(),
	}
}

// Summary describes what executing intent will do, e.g.
// "I will open file for README.md."
func Summary(intent domain.Intent) string {
	verb := strings.ToLower(strings.ReplaceAll(string(intent.Kind), "_", " "))
	s := "I will " + verb
	switch {
	case intent.Param(domain.ParamPath) != "":
		s += " for " + intent.Param(domain.ParamPath)
	case intent.Param(domain.ParamQuery) != "":
		s += " for '" + intent.Param(domain.ParamQuery) + "'"
	}
	return s + "."
}

// Steps lists what will happen, in order.
func Steps(intent domain.Intent) []string {
	return []string{
		fmt.Sprintf("validate policy for %s", intent.Kind),
		fmt.Sprintf("execute %s", intent.Kind),
	}
}
