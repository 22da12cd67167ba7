package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/regforge/internal/cli/render"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List contracts in the merged registry",
		Long: `Merge the per-network export files in memory and list the resulting
contracts with their addresses per chain.

The same filters as generate apply, so the listing shows exactly what
would be written.`,
		Example: `  # List all merged contracts
  regforge list

  # List only token contracts outside localhost
  regforge list --include 'Token' --exclude-network localhost`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			result, err := app.BuildRegistry.Run(cmd.Context(), buildParamsFromFlags(cmd))
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				data, err := json.MarshalIndent(result.Registry, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			renderer := render.NewContractsRenderer(cmd.OutOrStdout())
			return renderer.RenderContractList(result)
		},
	}

	addFilterFlags(cmd)

	return cmd
}
