package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trebuchet-org/regforge/internal/domain"
	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// ExportDirAdapter reads per-network deployment exports from a directory
type ExportDirAdapter struct {
	dir string
}

// NewExportDirAdapter creates a new export directory adapter
func NewExportDirAdapter(cfg *config.RuntimeConfig) (*ExportDirAdapter, error) {
	dir := cfg.Registry.ExportDir
	if dir == "" {
		return nil, domain.ErrNoExportDirectory
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(cfg.ProjectRoot, dir)
	}
	return &ExportDirAdapter{dir: dir}, nil
}

// ListExports enumerates export files in lexical order. Subdirectories and
// dotfiles are not export documents and are skipped here; every remaining
// file flows through the network filter and, if it survives, must parse.
func (a *ExportDirAdapter) ListExports(ctx context.Context) ([]usecase.ExportFile, error) {
	entries, err := os.ReadDir(a.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read export directory %s: %w", a.dir, err)
	}

	files := make([]usecase.ExportFile, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		if !entry.Type().IsRegular() {
			continue
		}
		files = append(files, usecase.ExportFile{
			Path:    filepath.Join(a.dir, name),
			Name:    name,
			Network: domain.NetworkID(name),
		})
	}
	return files, nil
}

// ReadExport reads and decodes a single export document. Addresses come back
// exactly as written in the file.
func (a *ExportDirAdapter) ReadExport(ctx context.Context, file usecase.ExportFile) (*models.DeploymentExport, error) {
	data, err := os.ReadFile(file.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read export %s: %w", file.Name, err)
	}

	var export models.DeploymentExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, &domain.ExportParseError{File: file.Name, Err: err}
	}
	return &export, nil
}

// Ensure the adapter implements the interface
var _ usecase.ExportSource = (*ExportDirAdapter)(nil)
