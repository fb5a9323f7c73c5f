package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// field is one labelled line in a key/value block.
type field struct {
	label string
	value string
}

// renderFields aligns labels to the widest one.
func renderFields(fields []field) string {
	width := 0
	for _, f := range fields {
		width = max(width, lipgloss.Width(f.label))
	}
	var b strings.Builder
	for _, f := range fields {
		if f.label == "" {
			// Continuation of the previous field.
			fmt.Fprintf(&b, "%s  %s\n", strings.Repeat(" ", width+1), f.value)
			continue
		}
		pad := strings.Repeat(" ", width-lipgloss.Width(f.label))
		fmt.Fprintf(&b, "%s%s  %s\n", Dim(f.label+":"), pad, f.value)
	}
	return b.String()
}

// ExpiresIn describes a deadline relative to now, e.g. "in 4m30s" or
// "expired 10s ago". Durations are rounded to the second.
func ExpiresIn(deadline, now time.Time) string {
	d := deadline.Sub(now).Round(time.Second)
	switch {
	case d > 0:
		return "in " + d.String()
	case d == 0:
		return "now"
	default:
		return "expired " + (-d).String() + " ago"
	}
}
