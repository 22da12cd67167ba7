package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"

	"github.com/trebuchet-org/regforge/internal/domain/config"
)

// GenerateRegistryParams contains parameters for generating registry artifacts
type GenerateRegistryParams struct {
	Build BuildRegistryParams

	// Overrides for the [gen] configuration; zero values keep the config.
	Formats []string
	OutDir  string
	Package string
}

// GenerateRegistry builds the registry and writes one artifact per
// configured format
type GenerateRegistry struct {
	config  *config.RuntimeConfig
	build   *BuildRegistry
	writers []ArtifactWriter
	files   FileWriter
	sink    ProgressSink
}

// NewGenerateRegistry creates a new GenerateRegistry use case
func NewGenerateRegistry(
	cfg *config.RuntimeConfig,
	build *BuildRegistry,
	writers []ArtifactWriter,
	files FileWriter,
	sink ProgressSink,
) *GenerateRegistry {
	return &GenerateRegistry{
		config:  cfg,
		build:   build,
		writers: writers,
		files:   files,
		sink:    sink,
	}
}

// Run executes the generate registry use case
func (uc *GenerateRegistry) Run(ctx context.Context, params GenerateRegistryParams) (*GenerateResult, error) {
	formats := uc.config.Gen.Formats
	if len(params.Formats) > 0 {
		formats = params.Formats
	}
	outDir := uc.config.Gen.OutDir
	if params.OutDir != "" {
		outDir = params.OutDir
	}
	pkg := uc.config.Gen.Package
	if params.Package != "" {
		pkg = params.Package
	}

	if len(formats) == 0 {
		return nil, fmt.Errorf("no output formats configured")
	}

	byFormat := lo.SliceToMap(uc.writers, func(w ArtifactWriter) (string, ArtifactWriter) {
		return w.Format(), w
	})
	for _, format := range formats {
		if _, ok := byFormat[format]; !ok {
			known := lo.Keys(byFormat)
			sort.Strings(known)
			return nil, fmt.Errorf("unknown output format %q (supported: %s)", format, strings.Join(known, ", "))
		}
	}

	buildResult, err := uc.build.Run(ctx, params.Build)
	if err != nil {
		return nil, err
	}

	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(uc.config.ProjectRoot, outDir)
	}
	if err := uc.files.EnsureDirectory(ctx, outDir); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	spec := ArtifactSpec{Package: pkg}
	artifacts := make([]Artifact, 0, len(formats))
	for _, format := range formats {
		writer := byFormat[format]

		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "writing",
			Current: len(artifacts) + 1,
			Total:   len(formats),
			Message: fmt.Sprintf("Writing %s artifact", format),
		})

		content, err := writer.Render(ctx, buildResult.Registry, spec)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s artifact: %w", format, err)
		}

		path := filepath.Join(outDir, writer.FileName(spec))
		if err := uc.files.WriteFile(ctx, path, content); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", path, err)
		}

		artifacts = append(artifacts, Artifact{
			Format: format,
			Path:   path,
			Size:   len(content),
		})
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(artifacts),
		Total:   len(artifacts),
		Message: fmt.Sprintf("Wrote %d artifacts to %s", len(artifacts), outDir),
	})

	return &GenerateResult{
		Build:     buildResult,
		Artifacts: artifacts,
	}, nil
}
