package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrUnrecognized indicates the classifier matched no command pattern.
	ErrUnrecognized = errors.New("unrecognized command")

	// ErrPolicyDenied is the parent of every safety-policy rejection.
	ErrPolicyDenied = errors.New("denied by policy")

	// ErrPathEscapesRoot indicates a path resolved outside the sandbox root.
	ErrPathEscapesRoot = fmt.Errorf("%w: permission denied — path escapes project root", ErrPolicyDenied)

	// ErrActionNotPermitted indicates an intent kind missing from the whitelist.
	ErrActionNotPermitted = fmt.Errorf("%w: action not permitted by policy", ErrPolicyDenied)

	// ErrPlanNotFound covers plans that never existed and plans already consumed.
	ErrPlanNotFound = errors.New("plan not found or expired")

	// ErrPlanExpired indicates the plan existed but its window has elapsed.
	ErrPlanExpired = fmt.Errorf("%w: plan expired", ErrPlanNotFound)

	// ErrTokenMismatch indicates a wrong confirmation token. The plan stays live.
	ErrTokenMismatch = errors.New("invalid confirmation token")

	// ErrExecution is the parent of every failure raised by a dispatched action.
	ErrExecution = errors.New("execution failed")

	// ErrUnknownIntent indicates the executor has no handler for a kind.
	ErrUnknownIntent = fmt.Errorf("%w: unknown intent type", ErrExecution)

	// ErrAuditUnavailable indicates no durable audit store could take a record.
	// It is logged, never returned to callers of the pipeline.
	ErrAuditUnavailable = errors.New("audit store unavailable")
)

// ExecutionError is returned by the executor for any failed action.
type ExecutionError struct {
	Kind IntentKind
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

// Unwrap exposes both ErrExecution and the underlying cause, so callers can
// match a denial inside execution with errors.Is(err, ErrPathEscapesRoot).
func (e *ExecutionError) Unwrap() []error {
	return []error{ErrExecution, e.Err}
}

// NewExecutionError wraps err as a failure of the given action.
func NewExecutionError(kind IntentKind, err error) *ExecutionError {
	return &ExecutionError{Kind: kind, Err: err}
}
