package app

import (
	"errors"

	"github.com/alexanderramin/steward/internal/domain"
)

// ErrInvalidInput indicates a malformed request, before any pipeline stage ran.
var ErrInvalidInput = errors.New("invalid input")

// ErrorCode is the machine-readable failure category carried by responses.
type ErrorCode string

const (
	ErrorCodeUnrecognized    ErrorCode = "UNRECOGNIZED"
	ErrorCodePolicyDenied    ErrorCode = "POLICY_DENIED"
	ErrorCodePlanNotFound    ErrorCode = "PLAN_NOT_FOUND"
	ErrorCodePlanExpired     ErrorCode = "PLAN_EXPIRED"
	ErrorCodeTokenMismatch   ErrorCode = "TOKEN_MISMATCH"
	ErrorCodeExecutionFailed ErrorCode = "EXECUTION_FAILED"
	ErrorCodeInvalidInput    ErrorCode = "INVALID_INPUT"
	ErrorCodeInternal        ErrorCode = "INTERNAL"
)

// CodeFor maps an error from the pipeline to its response code. A path denial
// raised while executing is an execution failure; the same denial raised while
// planning is a policy denial.
func CodeFor(err error) ErrorCode {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidInput):
		return ErrorCodeInvalidInput
	case errors.Is(err, domain.ErrUnrecognized):
		return ErrorCodeUnrecognized
	case errors.Is(err, domain.ErrExecution):
		return ErrorCodeExecutionFailed
	case errors.Is(err, domain.ErrPolicyDenied):
		return ErrorCodePolicyDenied
	case errors.Is(err, domain.ErrPlanExpired):
		return ErrorCodePlanExpired
	case errors.Is(err, domain.ErrPlanNotFound):
		return ErrorCodePlanNotFound
	case errors.Is(err, domain.ErrTokenMismatch):
		return ErrorCodeTokenMismatch
	default:
		return ErrorCodeInternal
	}
}
