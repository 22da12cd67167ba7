package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Profile selects a [profile.<name>] override block in regforge.toml
	Profile string

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool // Output in JSON format
	Timeout        time.Duration

	// Config source tracking
	ConfigSource string // "regforge.toml" or "defaults"

	// Resolved configurations
	Registry *RegistryConfig
	Gen      *GenConfig
}

// RegistryConfig holds the consolidation settings: which export files take
// part and how contract names are filtered and decorated.
type RegistryConfig struct {
	// ExportDir is the directory holding one export document per network.
	ExportDir string

	// Contract name filters (regular expressions). Excludes win.
	IncludeContracts []string
	ExcludeContracts []string

	// Network filters (exact network ids, i.e. file base names).
	IncludeNetworks []string
	ExcludeNetworks []string

	// Decoration applied to every merged contract name.
	NamePrefix string
	NameSuffix string
}

// GenConfig holds artifact generation settings.
type GenConfig struct {
	// OutDir is where generated artifacts are written.
	OutDir string

	// Formats lists the artifact writers to run ("go", "json", "yaml").
	Formats []string

	// Package is the package name used by the Go artifact writer.
	Package string
}
