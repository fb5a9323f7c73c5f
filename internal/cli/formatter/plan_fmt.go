package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/steward/internal/domain"
)

// FormatPlan renders an issued plan for review before confirmation.
func FormatPlan(plan *domain.Plan, now time.Time) string {
	var b strings.Builder

	b.WriteString(Header("Plan"))
	b.WriteString("\n")
	b.WriteString(Bold(plan.Summary))
	b.WriteString("\n\n")

	for i, step := range plan.Steps {
		fmt.Fprintf(&b, "  %s %s\n", Dim(fmt.Sprintf("%d.", i+1)), step)
	}
	b.WriteString("\n")

	b.WriteString(renderFields([]field{
		{"Intent", StyleBlue.Render(string(plan.Intent.Kind))},
		{"Risk", RiskIndicator(plan.Intent.Risk)},
		{"Plan ID", plan.ID},
		{"Token", plan.ConfirmationToken},
		{"Expires", fmt.Sprintf("%s %s", ExpiresIn(plan.ExpiresAt, now), Dim("("+plan.ExpiresAt.UTC().Format(time.RFC3339)+")"))},
	}))
	return b.String()
}

// FormatExecuteHint shows the command that confirms plan from another shell.
func FormatExecuteHint(plan *domain.Plan) string {
	return Dim(fmt.Sprintf("Confirm with: steward execute --plan %s --token %s", plan.ID, plan.ConfirmationToken)) + "\n"
}
