package policy

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/steward/internal/domain"
)

// Whitelist is the set of intent kinds allowed to run. Anything not in the
// set is denied, including kinds added to the classifier later.
type Whitelist struct {
	allowed map[domain.IntentKind]bool
}

// DefaultWhitelist allows every kind the executor can dispatch.
func DefaultWhitelist() Whitelist {
	return NewWhitelist(domain.AllIntentKinds()...)
}

// NewWhitelist allows exactly the given kinds.
func NewWhitelist(kinds ...domain.IntentKind) Whitelist {
	allowed := make(map[domain.IntentKind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}
	return Whitelist{allowed: allowed}
}

// IsAllowed reports whether kind is whitelisted.
func (w Whitelist) IsAllowed(kind domain.IntentKind) bool {
	return w.allowed[kind]
}

// Check returns ErrActionNotPermitted for kinds outside the whitelist.
func (w Whitelist) Check(kind domain.IntentKind) error {
	if !w.IsAllowed(kind) {
		return fmt.Errorf("%q: %w", kind, domain.ErrActionNotPermitted)
	}
	return nil
}

// Kinds returns the allowed kinds in sorted order.
func (w Whitelist) Kinds() []domain.IntentKind {
	out := make([]domain.IntentKind, 0, len(w.allowed))
	for k := range w.allowed {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
