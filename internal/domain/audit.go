package domain

import "time"

// NotPersistedID marks an audit record that no durable store accepted.
const NotPersistedID int64 = -1

// AuditRecord captures the outcome of one execution attempt.
type AuditRecord struct {
	ID         int64          `json:"id"`
	PlanID     string         `json:"plan_id"`
	IntentKind IntentKind     `json:"intent_type"`
	Outcome    Outcome        `json:"outcome"`
	Timestamp  time.Time      `json:"timestamp"`
	Details    map[string]any `json:"details,omitempty"`
}

// Persisted reports whether a store assigned the record an id.
func (r AuditRecord) Persisted() bool {
	return r.ID != NotPersistedID
}
