package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexanderramin/steward/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func (a *App) confirm(cmd *cobra.Command, summary string) (bool, error) {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()
	switch {
	case a.Confirm != nil:
		return a.Confirm(in, out, summary)
	case a.interactive():
		return confirmForm(summary)
	default:
		return confirmLine(in, out)
	}
}

// confirmForm asks with a huh confirm field. Aborting the form declines.
func confirmForm(summary string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Run this plan?").
				Description(summary).
				Affirmative("Run").
				Negative("Cancel").
				Value(&ok),
		),
	).WithTheme(stewardHuhTheme()).WithShowHelp(false).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

// confirmLine reads a y/N answer from in. EOF declines.
func confirmLine(in io.Reader, out io.Writer) (bool, error) {
	fmt.Fprint(out, "Confirm? [y/N]: ")
	text, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}
	text = strings.TrimSpace(strings.ToLower(text))
	return text == "y" || text == "yes", nil
}

func stewardHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
