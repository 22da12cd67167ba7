package usecase

import (
	"context"

	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/domain/models"
)

// ExportFile identifies one export document inside the export directory
type ExportFile struct {
	Path    string // full path to the file
	Name    string // base name, e.g. "mainnet.json"
	Network string // base name minus extension, e.g. "mainnet"
}

// ExportSource lists and reads per-network deployment exports
type ExportSource interface {
	// ListExports enumerates export files in directory-listing order
	ListExports(ctx context.Context) ([]ExportFile, error)
	// ReadExport parses a single export document
	ReadExport(ctx context.Context, file ExportFile) (*models.DeploymentExport, error)
}

// ArtifactSpec describes one artifact to render
type ArtifactSpec struct {
	Package string // Go package name, used by the Go writer
}

// ArtifactWriter renders a built registry in one output format
type ArtifactWriter interface {
	// Format returns the configuration key for this writer ("go", "json", "yaml")
	Format() string
	// FileName returns the artifact file name for the given spec
	FileName(spec ArtifactSpec) string
	// Render produces the artifact contents
	Render(ctx context.Context, registry *models.Registry, spec ArtifactSpec) ([]byte, error)
}

// FileWriter handles file system operations for generated artifacts
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content []byte) error
	EnsureDirectory(ctx context.Context, path string) error
}

// ContractPicker handles interactive selection of contracts
type ContractPicker interface {
	PickContract(ctx context.Context, contracts []*models.AggregateContract, prompt string) (*models.AggregateContract, error)
}

// LocalConfigStore persists the developer-local configuration under the
// project data directory
type LocalConfigStore interface {
	Exists() bool
	Load(ctx context.Context) (*config.LocalConfig, error)
	Save(ctx context.Context, cfg *config.LocalConfig) error
	GetPath() string
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

// Use case result types

// BuildResult contains the result of consolidating exports into a registry
type BuildResult struct {
	Registry         *models.Registry
	FilesRead        int
	FilesSkipped     int
	ContractsSkipped int
}

// NetworkRow describes one export file for the networks listing
type NetworkRow struct {
	File      string
	Network   string
	ChainID   uint64
	Contracts int
	Included  bool
}

// NetworkListResult contains the result of listing export networks
type NetworkListResult struct {
	Networks []NetworkRow
}

// Artifact describes one written output file
type Artifact struct {
	Format string
	Path   string
	Size   int
}

// GenerateResult contains the result of generating registry artifacts
type GenerateResult struct {
	Build     *BuildResult
	Artifacts []Artifact
}

// ShowContractResult contains the resolved contract for display
type ShowContractResult struct {
	Contract *models.AggregateContract
}
