package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/regforge/internal/cli/render"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List export files and the networks they carry",
		Long: `List every file in the export directory together with its network name,
chain id, and contract count.

Files excluded by the network filters are listed but never opened, so a
malformed export on a filtered-out network does not fail the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			params := usecase.ListNetworksParams{}
			flags := cmd.Flags()
			params.IncludeNetworks, _ = flags.GetStringArray("include-network")
			params.ExcludeNetworks, _ = flags.GetStringArray("exclude-network")

			result, err := app.ListNetworks.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				data, err := json.MarshalIndent(result.Networks, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			renderer := render.NewNetworksRenderer(cmd.OutOrStdout())
			return renderer.RenderNetworksList(result)
		},
	}

	cmd.Flags().StringArray("include-network", nil, "Networks to include (repeatable)")
	cmd.Flags().StringArray("exclude-network", nil, "Networks to exclude (repeatable)")

	return cmd
}
