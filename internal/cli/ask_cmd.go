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

func newAskCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   `ask "<command>"`,
		Short: "Plan a command, confirm it and run it",
		Long: "Classify the command, show the resulting plan and ask for confirmation\n" +
			"before running it. Use --yes to confirm without prompting.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			out := cmd.OutOrStdout()

			planResp := app.Assistant.Plan(ctx, contract.NewPlanRequest(strings.Join(args, " ")))
			if !planResp.Success {
				fmt.Fprint(out, formatter.FormatError(planResp.ErrorCode, planResp.Error))
				return &ResponseError{Code: planResp.ErrorCode, Message: planResp.Error}
			}
			plan := planResp.Plan
			fmt.Fprint(out, formatter.FormatPlan(plan, time.Now()))
			fmt.Fprintln(out)

			if !yes {
				ok, err := app.confirm(cmd, plan.Summary)
				if err != nil {
					return fmt.Errorf("reading confirmation: %w", err)
				}
				if !ok {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			execResp := app.Assistant.Execute(ctx, contract.NewExecuteRequest(plan.ID, plan.ConfirmationToken))
			fmt.Fprint(out, formatter.FormatResult(execResp))
			if !execResp.Success {
				return &ResponseError{Code: execResp.ErrorCode, Message: execResp.Error}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Run the plan without asking for confirmation")

	return cmd
}
