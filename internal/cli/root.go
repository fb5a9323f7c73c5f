package cli

import (
	"io"

	"github.com/alexanderramin/steward/internal/app"
	"github.com/spf13/cobra"
)

// App holds the use cases and terminal hooks used by CLI commands.
type App struct {
	Assistant app.Assistant

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
	// Confirm overrides the interactive prompt. Used by tests.
	Confirm func(in io.Reader, out io.Writer, summary string) (bool, error)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "steward" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "steward",
		Short: "Plan, confirm and run sandboxed project commands",
		Long: "Steward turns short commands such as \"list files\" or \"open README.md\"\n" +
			"into a plan that must be confirmed with a single-use token before it runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newPlanCmd(app),
		newExecuteCmd(app),
		newAskCmd(app),
		newStatusCmd(app),
	)

	return root
}
