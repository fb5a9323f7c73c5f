package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/steward/internal/contract"
	"github.com/alexanderramin/steward/internal/domain"
)

// FormatResult renders the outcome of an execute request.
func FormatResult(resp contract.ExecuteResponse) string {
	var b strings.Builder

	if !resp.Success {
		b.WriteString(FormatError(resp.ErrorCode, resp.Error))
	} else {
		b.WriteString(Success(resp.Message))
		b.WriteString("\n")
		if body := formatResultBody(resp.Result); body != "" {
			b.WriteString("\n")
			b.WriteString(body)
			if !strings.HasSuffix(body, "\n") {
				b.WriteString("\n")
			}
		}
	}

	switch {
	case resp.AuditID == 0:
	case resp.AuditID == domain.NotPersistedID:
		b.WriteString(Dim("audit: not persisted") + "\n")
	default:
		b.WriteString(Dim(fmt.Sprintf("audit: #%d", resp.AuditID)) + "\n")
	}
	return b.String()
}

func formatResultBody(result any) string {
	switch v := result.(type) {
	case nil:
		return ""
	case []string:
		if len(v) == 0 {
			return Dim("(no results)")
		}
		var b strings.Builder
		for _, s := range v {
			fmt.Fprintf(&b, "  %s\n", s)
		}
		return b.String()
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatError renders a failure with its error code, when known.
func FormatError(code contract.ErrorCode, message string) string {
	if code == "" {
		return Failure(message) + "\n"
	}
	return Failure(fmt.Sprintf("%s %s", StyleBold.Render("["+string(code)+"]"), message)) + "\n"
}
