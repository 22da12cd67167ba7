package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/regforge/internal/usecase"
)

// GenerateRenderer renders generate command results
type GenerateRenderer struct {
	out io.Writer
}

// NewGenerateRenderer creates a new generate renderer
func NewGenerateRenderer(out io.Writer) Renderer[*usecase.GenerateResult] {
	return &GenerateRenderer{out: out}
}

func (r *GenerateRenderer) Render(result *usecase.GenerateResult) error {
	build := result.Build
	fmt.Fprintf(r.out, "\n✅ Merged %d contracts from %d export files\n",
		len(build.Registry.Contracts), build.FilesRead)
	if build.FilesSkipped > 0 || build.ContractsSkipped > 0 {
		fmt.Fprintln(r.out, subRowStyle.Sprintf("   skipped %d files and %d contracts via filters",
			build.FilesSkipped, build.ContractsSkipped))
	}

	for _, artifact := range result.Artifacts {
		fmt.Fprintf(r.out, "  %-5s %s (%d bytes)\n", artifact.Format, artifact.Path, artifact.Size)
	}
	return nil
}
