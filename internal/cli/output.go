package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/alexanderramin/steward/internal/contract"
)

// ResponseError is returned by commands whose request failed, so the process
// exits non-zero. The message has already been shown to the user.
type ResponseError struct {
	Code    contract.ErrorCode
	Message string
}

func (e *ResponseError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}
