package contract

import "github.com/alexanderramin/steward/internal/app"

type ErrorCode = app.ErrorCode

const (
	ErrorCodeUnrecognized    ErrorCode = app.ErrorCodeUnrecognized
	ErrorCodePolicyDenied    ErrorCode = app.ErrorCodePolicyDenied
	ErrorCodePlanNotFound    ErrorCode = app.ErrorCodePlanNotFound
	ErrorCodePlanExpired     ErrorCode = app.ErrorCodePlanExpired
	ErrorCodeTokenMismatch   ErrorCode = app.ErrorCodeTokenMismatch
	ErrorCodeExecutionFailed ErrorCode = app.ErrorCodeExecutionFailed
	ErrorCodeInvalidInput    ErrorCode = app.ErrorCodeInvalidInput
	ErrorCodeInternal        ErrorCode = app.ErrorCodeInternal
)

var ErrInvalidInput = app.ErrInvalidInput

func CodeFor(err error) ErrorCode {
	return app.CodeFor(err)
}
