package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/steward/internal/cli/formatter"
	"github.com/alexanderramin/steward/internal/contract"
	"github.com/spf13/cobra"
)

func newExecuteCmd(app *App) *cobra.Command {
	var planID, token string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "execute",
		Short: "Run a previously issued plan",
		Long: "Run a plan issued by \"steward plan\". The plan id and confirmation token\n" +
			"must match, and each plan runs at most once. Plans issued by another\n" +
			"process are only visible when a shared Redis registry is configured.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := app.Assistant.Execute(context.Background(), contract.NewExecuteRequest(planID, token))
			out := cmd.OutOrStdout()

			if asJSON {
				if err := writeJSON(out, resp); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, formatter.FormatResult(resp))
			}

			if !resp.Success {
				return &ResponseError{Code: resp.ErrorCode, Message: resp.Error}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&planID, "plan", "", "Plan ID (required)")
	cmd.Flags().StringVar(&token, "token", "", "Confirmation token (required)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the response as JSON")
	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("token")

	return cmd
}
