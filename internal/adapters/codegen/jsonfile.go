package codegen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// JSONWriterAdapter renders the registry as a JSON document
type JSONWriterAdapter struct{}

// NewJSONWriterAdapter creates a new JSON artifact writer
func NewJSONWriterAdapter() *JSONWriterAdapter {
	return &JSONWriterAdapter{}
}

// Format returns the configuration key for this writer
func (w *JSONWriterAdapter) Format() string { return "json" }

// FileName returns the artifact file name
func (w *JSONWriterAdapter) FileName(spec usecase.ArtifactSpec) string { return "registry.json" }

// Render encodes the registry. Scalar addresses come out as plain strings,
// diverging ones as chain-keyed objects.
func (w *JSONWriterAdapter) Render(ctx context.Context, registry *models.Registry, spec usecase.ArtifactSpec) ([]byte, error) {
	data, err := json.MarshalIndent(registry, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode registry: %w", err)
	}
	return append(data, '\n'), nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactWriter = (*JSONWriterAdapter)(nil)
