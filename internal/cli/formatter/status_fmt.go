package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/steward/internal/contract"
)

// FormatStatus renders the sandbox and backend health.
func FormatStatus(resp contract.StatusResponse) string {
	var b strings.Builder

	b.WriteString(Header("Steward"))
	b.WriteString("\n")
	b.WriteString(renderFields([]field{
		{"Root", resp.Root},
		{"Allowed", allowedActions(resp.AllowedActions)},
	}))
	b.WriteString("\n")

	registry := resp.Registry.Backend
	if resp.Registry.ActivePlans != nil {
		registry += Dim(fmt.Sprintf(" (%d active plans)", *resp.Registry.ActivePlans))
	}
	b.WriteString(renderFields([]field{
		{"Registry", registry},
		{"", availability(true, resp.Registry.Available, resp.Registry.Error)},
		{"Audit", resp.Audit.Backend},
		{"", availability(resp.Audit.Configured, resp.Audit.Available, resp.Audit.Error)},
	}))
	return b.String()
}

func allowedActions(kinds []string) string {
	if len(kinds) == 0 {
		return StyleRed.Render("none (every action is denied)")
	}
	return strings.Join(kinds, ", ")
}

func availability(configured, available bool, errMsg string) string {
	switch {
	case !configured:
		return StyleYellow.Render("● disabled") + " " + Dim("records are not persisted")
	case available:
		return StyleGreen.Render("● available")
	default:
		return StyleRed.Render("● unavailable") + " " + Dim(errMsg)
	}
}
