package codegen

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// YAMLWriterAdapter renders the registry as a YAML document
type YAMLWriterAdapter struct{}

// NewYAMLWriterAdapter creates a new YAML artifact writer
func NewYAMLWriterAdapter() *YAMLWriterAdapter {
	return &YAMLWriterAdapter{}
}

// Format returns the configuration key for this writer
func (w *YAMLWriterAdapter) Format() string { return "yaml" }

// FileName returns the artifact file name
func (w *YAMLWriterAdapter) FileName(spec usecase.ArtifactSpec) string { return "registry.yaml" }

// Render encodes the registry, carrying ABIs as structured YAML.
func (w *YAMLWriterAdapter) Render(ctx context.Context, registry *models.Registry, spec usecase.ArtifactSpec) ([]byte, error) {
	data, err := yaml.Marshal(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to encode registry: %w", err)
	}
	return data, nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactWriter = (*YAMLWriterAdapter)(nil)
