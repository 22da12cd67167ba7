package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/trebuchet-org/regforge/internal/domain/config"
)

// RegforgeTOML represents the raw regforge.toml structure
type RegforgeTOML struct {
	Exports   ExportsSection            `toml:"exports"`
	Contracts ContractsSection          `toml:"contracts"`
	Networks  NetworksSection           `toml:"networks"`
	Gen       GenSection                `toml:"gen"`
	Profile   map[string]ProfileSection `toml:"profile"`
}

// ExportsSection is the [exports] table
type ExportsSection struct {
	Dir string `toml:"dir,omitempty"`
}

// ContractsSection is the [contracts] table. Prefix and suffix are pointers
// so a profile can clear an inherited value with an explicit "".
type ContractsSection struct {
	Include    []string `toml:"include,omitempty"`
	Exclude    []string `toml:"exclude,omitempty"`
	NamePrefix *string  `toml:"name_prefix,omitempty"`
	NameSuffix *string  `toml:"name_suffix,omitempty"`
}

// NetworksSection is the [networks] table
type NetworksSection struct {
	Include []string `toml:"include,omitempty"`
	Exclude []string `toml:"exclude,omitempty"`
}

// GenSection is the [gen] table
type GenSection struct {
	Out     string   `toml:"out,omitempty"`
	Formats []string `toml:"formats,omitempty"`
	Package string   `toml:"package,omitempty"`
}

// ProfileSection is one [profile.<name>] override block. Set values override
// the top-level sections; everything else is inherited.
type ProfileSection struct {
	Exports   ExportsSection   `toml:"exports"`
	Contracts ContractsSection `toml:"contracts"`
	Networks  NetworksSection  `toml:"networks"`
	Gen       GenSection       `toml:"gen"`
}

// loadProjectConfig loads regforge.toml, resolves the requested profile and
// returns the registry and gen configurations plus the config source.
func loadProjectConfig(projectRoot, profile string) (*config.RegistryConfig, *config.GenConfig, string, error) {
	// Load .env files first for variable expansion
	envFiles := []string{
		filepath.Join(projectRoot, ".env"),
		filepath.Join(projectRoot, ".env.local"),
	}
	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				// Log warning but don't fail
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}

	regforgePath := filepath.Join(projectRoot, "regforge.toml")
	if _, err := os.Stat(regforgePath); os.IsNotExist(err) {
		if profile != "" {
			return nil, nil, "", fmt.Errorf("profile %q requires a regforge.toml", profile)
		}
		registry, gen := defaultConfigs()
		return registry, gen, "defaults", nil
	}

	var raw RegforgeTOML
	if _, err := toml.DecodeFile(regforgePath, &raw); err != nil {
		return nil, nil, "", fmt.Errorf("failed to parse regforge.toml: %w", err)
	}

	exports := raw.Exports
	contracts := raw.Contracts
	networks := raw.Networks
	gen := raw.Gen

	if profile != "" {
		override, ok := raw.Profile[profile]
		if !ok {
			return nil, nil, "", fmt.Errorf("profile %q not found in regforge.toml", profile)
		}

		if override.Exports.Dir != "" {
			exports.Dir = override.Exports.Dir
		}
		if override.Contracts.Include != nil {
			contracts.Include = override.Contracts.Include
		}
		if override.Contracts.Exclude != nil {
			contracts.Exclude = override.Contracts.Exclude
		}
		if override.Contracts.NamePrefix != nil {
			contracts.NamePrefix = override.Contracts.NamePrefix
		}
		if override.Contracts.NameSuffix != nil {
			contracts.NameSuffix = override.Contracts.NameSuffix
		}
		if override.Networks.Include != nil {
			networks.Include = override.Networks.Include
		}
		if override.Networks.Exclude != nil {
			networks.Exclude = override.Networks.Exclude
		}
		if override.Gen.Out != "" {
			gen.Out = override.Gen.Out
		}
		if override.Gen.Formats != nil {
			gen.Formats = override.Gen.Formats
		}
		if override.Gen.Package != "" {
			gen.Package = override.Gen.Package
		}
	}

	registryCfg, genCfg := defaultConfigs()
	if exports.Dir != "" {
		registryCfg.ExportDir = os.ExpandEnv(exports.Dir)
	}
	registryCfg.IncludeContracts = contracts.Include
	registryCfg.ExcludeContracts = contracts.Exclude
	if contracts.NamePrefix != nil {
		registryCfg.NamePrefix = *contracts.NamePrefix
	}
	if contracts.NameSuffix != nil {
		registryCfg.NameSuffix = *contracts.NameSuffix
	}
	registryCfg.IncludeNetworks = networks.Include
	registryCfg.ExcludeNetworks = networks.Exclude

	if gen.Out != "" {
		genCfg.OutDir = os.ExpandEnv(gen.Out)
	}
	if gen.Formats != nil {
		genCfg.Formats = gen.Formats
	}
	if gen.Package != "" {
		genCfg.Package = gen.Package
	}

	return registryCfg, genCfg, "regforge.toml", nil
}

// defaultConfigs returns the configuration used when regforge.toml is absent
// or leaves a value unset.
func defaultConfigs() (*config.RegistryConfig, *config.GenConfig) {
	return &config.RegistryConfig{},
		&config.GenConfig{
			OutDir:  "gen",
			Formats: []string{"go"},
			Package: "registry",
		}
}
