package domain

import "time"

// Plan is a proposed, not yet executed intent guarded by a single-use
// confirmation token. Plans are never mutated after issue.
type Plan struct {
	ID                string    `json:"plan_id"`
	Intent            Intent    `json:"intent"`
	Summary           string    `json:"summary"`
	Steps             []string  `json:"steps"`
	ConfirmationToken string    `json:"confirmation_token"`
	ExpiresAt         time.Time `json:"expires_at"`
}

// Expired reports whether the plan can no longer be consumed at now.
func (p Plan) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Clone returns a deep copy of the plan.
func (p Plan) Clone() Plan {
	c := p
	c.Intent = p.Intent.Clone()
	c.Steps = append([]string(nil), p.Steps...)
	return c
}

// ExecutionResult is what a successfully executed plan produces.
type ExecutionResult struct {
	Result  any    `json:"result"`
	Message string `json:"message"`
}
