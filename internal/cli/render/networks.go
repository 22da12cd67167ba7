package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/regforge/internal/usecase"
)

// NetworksRenderer renders the export file listing
type NetworksRenderer struct {
	out io.Writer
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer) *NetworksRenderer {
	return &NetworksRenderer{out: out}
}

// RenderNetworksList renders one line per export file
func (r *NetworksRenderer) RenderNetworksList(result *usecase.NetworkListResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No export files found")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Export networks:")
	fmt.Fprintln(r.out)

	included := 0
	for _, network := range result.Networks {
		if network.Included {
			included++
			fmt.Fprintf(r.out, "  ✅ %s - %s (chain %d, %d contracts)\n",
				network.Network, network.File, network.ChainID, network.Contracts)
		} else {
			fmt.Fprintln(r.out, subRowStyle.Sprintf("  ✗ %s - %s (excluded)",
				network.Network, network.File))
		}
	}

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%d files, %d included\n", len(result.Networks), included)
	return nil
}
