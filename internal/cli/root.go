package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/regforge/internal/adapters/progress"
	"github.com/trebuchet-org/regforge/internal/app"
	"github.com/trebuchet-org/regforge/internal/config"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "regforge",
		Short: "Consolidate per-network deployment exports into a single registry",
		Long: `Regforge merges per-network contract deployment exports into one
cross-chain registry and emits it as Go source, JSON, or YAML.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root
			projectRoot := config.FindProjectRoot()

			// Set up viper
			v := config.SetupViper(projectRoot, cmd)

			// Bind global flags that have been set
			bindGlobalFlags(v, cmd)

			// Progress feedback goes to the terminal only in interactive runs
			var sink usecase.ProgressSink = progress.NewNopSink()
			if !v.GetBool("non_interactive") && !v.GetBool("json") {
				sink = progress.NewSpinnerSink()
			}

			// Initialize app with DI
			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			appInstance.Logger.Debug("resolved configuration",
				"projectRoot", appInstance.Config.ProjectRoot,
				"source", appInstance.Config.ConfigSource,
				"profile", appInstance.Config.Profile,
			)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Configuration profile from regforge.toml")
	rootCmd.PersistentFlags().StringP("dir", "d", "", "Directory holding per-network export files")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	generateCmd := NewGenerateCmd()
	generateCmd.GroupID = "main"
	rootCmd.AddCommand(generateCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "main"
	rootCmd.AddCommand(listCmd)

	showCmd := NewShowCmd()
	showCmd.GroupID = "main"
	rootCmd.AddCommand(showCmd)

	// Management commands
	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	configCmd := NewConfigCmd()
	configCmd.GroupID = "management"
	rootCmd.AddCommand(configCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("json"); f != nil && f.Changed {
		v.Set("json", f.Value.String())
	}
	if f := cmd.Flag("profile"); f != nil && f.Changed {
		v.Set("profile", f.Value.String())
	}
	if f := cmd.Flag("dir"); f != nil && f.Changed {
		v.Set("dir", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
