package usecase

import (
	"context"
	"fmt"

	"github.com/sahilm/fuzzy"

	"github.com/trebuchet-org/regforge/internal/domain"
	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/domain/models"
)

// ShowContractParams contains parameters for showing a merged contract
type ShowContractParams struct {
	Name  string
	Build BuildRegistryParams
}

// ShowContract is the use case for inspecting one contract of the merged
// registry. Exact names win; anything else goes through fuzzy matching.
type ShowContract struct {
	config *config.RuntimeConfig
	build  *BuildRegistry
	picker ContractPicker
}

// NewShowContract creates a new ShowContract use case
func NewShowContract(cfg *config.RuntimeConfig, build *BuildRegistry, picker ContractPicker) *ShowContract {
	return &ShowContract{
		config: cfg,
		build:  build,
		picker: picker,
	}
}

// Run executes the show contract use case
func (uc *ShowContract) Run(ctx context.Context, params ShowContractParams) (*ShowContractResult, error) {
	if params.Name == "" {
		return nil, fmt.Errorf("contract name must be provided")
	}

	result, err := uc.build.Run(ctx, params.Build)
	if err != nil {
		return nil, err
	}
	registry := result.Registry

	if contract, ok := registry.Contract(params.Name); ok {
		return &ShowContractResult{Contract: contract}, nil
	}

	matches := fuzzy.Find(params.Name, registry.ContractNames())
	switch len(matches) {
	case 0:
		return nil, &domain.ContractNotFoundErr{Name: params.Name}
	case 1:
		contract, _ := registry.Contract(matches[0].Str)
		return &ShowContractResult{Contract: contract}, nil
	}

	if uc.config.NonInteractive {
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Str
		}
		return nil, &domain.AmbiguousContractErr{Name: params.Name, Matches: names}
	}

	candidates := make([]*models.AggregateContract, len(matches))
	for i, m := range matches {
		candidates[i], _ = registry.Contract(m.Str)
	}

	picked, err := uc.picker.PickContract(ctx, candidates, fmt.Sprintf("Multiple contracts match %q", params.Name))
	if err != nil {
		return nil, err
	}

	return &ShowContractResult{Contract: picked}, nil
}
