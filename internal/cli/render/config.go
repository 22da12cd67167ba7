package render

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// ConfigRenderer renders config-related output
type ConfigRenderer struct {
	out io.Writer
}

// NewConfigRenderer creates a new config renderer
func NewConfigRenderer(out io.Writer) *ConfigRenderer {
	return &ConfigRenderer{
		out: out,
	}
}

// getRelativePath returns the relative path from current directory
func getRelativePath(path string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(cwd, path)
	if err != nil {
		return path
	}

	return relPath
}

// RenderConfig renders the configuration display
func (r *ConfigRenderer) RenderConfig(result *usecase.ShowConfigResult) error {
	if !result.Exists {
		fmt.Fprintf(r.out, "❌ No .regforge/config.local.json file found\n")
		fmt.Fprintf(r.out, "⚠️  Without config, values come from regforge.toml, flags and environment\n")
		return nil
	}

	fmt.Fprintln(r.out, "📋 Current config:")

	// Show profile (may be empty)
	if result.Config.Profile != "" {
		fmt.Fprintf(r.out, "Profile:    %s\n", result.Config.Profile)
	} else {
		fmt.Fprintf(r.out, "Profile:    %s\n", "(not set)")
	}

	// Show export directory (may be empty)
	if result.Config.ExportDir != "" {
		fmt.Fprintf(r.out, "Export dir: %s\n", result.Config.ExportDir)
	} else {
		fmt.Fprintf(r.out, "Export dir: %s\n", "(not set)")
	}

	// Show output directory (may be empty)
	if result.Config.OutDir != "" {
		fmt.Fprintf(r.out, "Output dir: %s\n", result.Config.OutDir)
	} else {
		fmt.Fprintf(r.out, "Output dir: %s\n", "(not set)")
	}

	// Show config source
	if result.ConfigSource == "regforge.toml" {
		fmt.Fprintf(r.out, "\n📦 Config source: regforge.toml\n")
	} else if result.ConfigSource == "defaults" {
		fmt.Fprintf(r.out, "\n📦 Config source: built-in defaults\n")
	}

	fmt.Fprintf(r.out, "📁 config file: %s\n", getRelativePath(result.ConfigPath))

	return nil
}

// RenderSet renders the result of setting a configuration value
func (r *ConfigRenderer) RenderSet(result *usecase.SetConfigResult) error {
	fmt.Fprintf(r.out, "✅ Set %s to: %s\n", result.Key, result.Value)
	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}

// RenderRemove renders the result of removing a configuration value
func (r *ConfigRenderer) RenderRemove(result *usecase.RemoveConfigResult) error {
	switch result.Key {
	case config.ConfigKeyProfile:
		fmt.Fprintf(r.out, "✅ Removed profile from config\n")
	case config.ConfigKeyExportDir:
		fmt.Fprintf(r.out, "✅ Removed export dir from config\n")
	case config.ConfigKeyOutDir:
		fmt.Fprintf(r.out, "✅ Removed output dir from config\n")
	}

	fmt.Fprintf(r.out, "📁 config saved to: %s\n", getRelativePath(result.ConfigPath))
	return nil
}
