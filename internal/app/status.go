package app

import "github.com/alexanderramin/steward/internal/audit"

type AuditStatus = audit.Status

type RegistryStatus struct {
	Backend     string `json:"backend"`
	ActivePlans *int   `json:"active_plans,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

type StatusResponse struct {
	Root           string         `json:"root"`
	AllowedActions []string       `json:"allowed_actions"`
	Audit          AuditStatus    `json:"audit"`
	Registry       RegistryStatus `json:"registry"`
}

// Healthy reports whether every configured backend answered.
func (r StatusResponse) Healthy() bool {
	if r.Audit.Configured && !r.Audit.Available {
		return false
	}
	return r.Registry.Available
}
