package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/regforge/internal/cli/render"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// NewGenerateCmd creates the generate command
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "generate",
		Aliases: []string{"gen"},
		Short:   "Merge exports and write registry artifacts",
		Long: `Merge the per-network export files into a single registry and write it
in every configured output format.

Formats, the output directory, and the target package come from the [gen]
section of regforge.toml and can be overridden per run.`,
		Example: `  # Generate with the configured formats
  regforge generate

  # Write Go and JSON artifacts into ./dist
  regforge generate --format go --format json --out ./dist

  # Only mainnet and base, without mock contracts
  regforge generate --include-network mainnet --include-network base --exclude '^Mock'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Get app from context
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			// Run use case
			params := usecase.GenerateRegistryParams{
				Build: buildParamsFromFlags(cmd),
			}
			params.OutDir, _ = cmd.Flags().GetString("out")
			params.Formats, _ = cmd.Flags().GetStringSlice("format")
			params.Package, _ = cmd.Flags().GetString("package")

			result, err := app.GenerateRegistry.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			// Output JSON if requested
			if app.Config.JSON {
				data, err := json.MarshalIndent(result.Artifacts, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			renderer := render.NewGenerateRenderer(cmd.OutOrStdout())
			return renderer.Render(result)
		},
	}

	addFilterFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "Directory the artifacts are written to")
	cmd.Flags().StringSliceP("format", "f", nil, "Output formats to write (go, json, yaml)")
	cmd.Flags().String("package", "", "Package name for the generated Go file")

	return cmd
}
