package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/regforge/internal/domain/config"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	// Get project root from viper
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".regforge"),
		Profile:        v.GetString("profile"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
		Timeout:        v.GetDuration("timeout"),
	}

	registry, gen, source, err := loadProjectConfig(projectRoot, cfg.Profile)
	if err != nil {
		return nil, err
	}
	cfg.Registry = registry
	cfg.Gen = gen
	cfg.ConfigSource = source

	// Flag and environment overrides on top of regforge.toml
	if dir := v.GetString("dir"); dir != "" {
		cfg.Registry.ExportDir = dir
	}
	if out := v.GetString("out"); out != "" {
		cfg.Gen.OutDir = out
	}
	if pkg := v.GetString("package"); pkg != "" {
		cfg.Gen.Package = pkg
	}
	if formats := v.GetStringSlice("format"); len(formats) > 0 {
		cfg.Gen.Formats = formats
	}

	return cfg, nil
}

// FindProjectRoot walks up from the current directory to find regforge.toml.
// Commands that only read flags still work outside a project, so when no
// regforge.toml exists the current directory is used as the root.
func FindProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	start := dir

	for {
		regforgeToml := filepath.Join(dir, "regforge.toml")
		if _, err := os.Stat(regforgeToml); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".regforge"))

	// Set up environment variables
	v.SetEnvPrefix("REGFORGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("profile", "")
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Bind under the env-style key so dashed flags resolve
		err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		if err != nil {
			panic(err)
		}
	})

	return v
}
