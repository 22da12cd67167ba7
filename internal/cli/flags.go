package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// addFilterFlags registers the contract and network filter flags shared by
// the commands that assemble a registry
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("include", nil, "Contract name patterns to include (repeatable, regex)")
	cmd.Flags().StringArray("exclude", nil, "Contract name patterns to exclude (repeatable, regex)")
	cmd.Flags().StringArray("include-network", nil, "Networks to include (repeatable)")
	cmd.Flags().StringArray("exclude-network", nil, "Networks to exclude (repeatable)")
	cmd.Flags().String("prefix", "", "Prefix prepended to merged contract names")
	cmd.Flags().String("suffix", "", "Suffix appended to merged contract names")
}

// buildParamsFromFlags turns the filter flags into build parameters. Flags
// left at their defaults produce zero values, which keep the configured
// behavior; --prefix and --suffix are pointer overrides so an explicit empty
// string clears the configured value.
func buildParamsFromFlags(cmd *cobra.Command) usecase.BuildRegistryParams {
	var params usecase.BuildRegistryParams
	flags := cmd.Flags()

	params.IncludeContracts, _ = flags.GetStringArray("include")
	params.ExcludeContracts, _ = flags.GetStringArray("exclude")
	params.IncludeNetworks, _ = flags.GetStringArray("include-network")
	params.ExcludeNetworks, _ = flags.GetStringArray("exclude-network")

	if flags.Changed("prefix") {
		prefix, _ := flags.GetString("prefix")
		params.NamePrefix = &prefix
	}
	if flags.Changed("suffix") {
		suffix, _ := flags.GetString("suffix")
		params.NameSuffix = &suffix
	}

	return params
}
