package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/steward/internal/cli/formatter"
	"github.com/alexanderramin/steward/internal/contract"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   `plan "<command>"`,
		Short: "Classify a command and issue a plan awaiting confirmation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := app.Assistant.Plan(context.Background(), contract.NewPlanRequest(strings.Join(args, " ")))
			out := cmd.OutOrStdout()

			if asJSON {
				if err := writeJSON(out, resp); err != nil {
					return err
				}
			} else if resp.Success {
				fmt.Fprint(out, formatter.FormatPlan(resp.Plan, time.Now()))
				fmt.Fprint(out, "\n"+formatter.FormatExecuteHint(resp.Plan))
			} else {
				fmt.Fprint(out, formatter.FormatError(resp.ErrorCode, resp.Error))
			}

			if !resp.Success {
				return &ResponseError{Code: resp.ErrorCode, Message: resp.Error}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")

	return cmd
}
