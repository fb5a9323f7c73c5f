package app

type ExecuteRequest struct {
	PlanID            string `json:"plan_id"`
	ConfirmationToken string `json:"confirmation_token"`
}

type ExecuteResponse struct {
	Success   bool      `json:"success"`
	Result    any       `json:"result,omitempty"`
	Message   string    `json:"message,omitempty"`
	Error     string    `json:"error,omitempty"`
	ErrorCode ErrorCode `json:"error_code,omitempty"`
	// AuditID is the id assigned by the audit store, or -1 when the record
	// was not persisted. Zero when no plan was consumed.
	AuditID int64 `json:"audit_id,omitempty"`
}
