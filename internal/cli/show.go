package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/regforge/internal/cli/render"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <contract>",
		Short: "Show a merged contract with its addresses and ABI",
		Long: `Show one contract from the merged registry.

The argument is matched against merged contract names, so it includes any
configured prefix and suffix. Partial names are resolved with fuzzy
matching; when several contracts match you are prompted to pick one.`,
		Example: `  # Show a contract by exact name
  regforge show Counter

  # Fuzzy matching resolves partial names
  regforge show count`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			params := usecase.ShowContractParams{
				Name:  args[0],
				Build: buildParamsFromFlags(cmd),
			}

			result, err := app.ShowContract.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				data, err := json.MarshalIndent(result.Contract, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			renderer := render.NewContractRenderer(cmd.OutOrStdout())
			return renderer.RenderContract(result.Contract)
		},
	}

	addFilterFlags(cmd)

	return cmd
}
