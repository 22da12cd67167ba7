package usecase

import (
	"context"

	"github.com/trebuchet-org/regforge/internal/domain"
	"github.com/trebuchet-org/regforge/internal/domain/config"
)

// ListNetworksParams contains parameters for listing export networks.
// Set fields override the resolved configuration.
type ListNetworksParams struct {
	IncludeNetworks []string
	ExcludeNetworks []string
}

// ListNetworks is the use case for listing export files and the networks
// they carry
type ListNetworks struct {
	config *config.RuntimeConfig
	source ExportSource
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, source ExportSource) *ListNetworks {
	return &ListNetworks{
		config: cfg,
		source: source,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*NetworkListResult, error) {
	include := uc.config.Registry.IncludeNetworks
	if params.IncludeNetworks != nil {
		include = params.IncludeNetworks
	}
	exclude := uc.config.Registry.ExcludeNetworks
	if params.ExcludeNetworks != nil {
		exclude = params.ExcludeNetworks
	}
	filter := domain.NewNetworkFilter(include, exclude)

	files, err := uc.source.ListExports(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]NetworkRow, 0, len(files))
	for _, file := range files {
		row := NetworkRow{
			File:     file.Name,
			Network:  file.Network,
			Included: filter.ShouldIncludeFile(file.Name),
		}

		// Excluded files stay unopened; only surviving files must parse.
		if row.Included {
			export, err := uc.source.ReadExport(ctx, file)
			if err != nil {
				return nil, err
			}
			row.ChainID = export.ChainID.Uint64()
			row.Contracts = export.Contracts.Len()
		}

		rows = append(rows, row)
	}

	return &NetworkListResult{Networks: rows}, nil
}
