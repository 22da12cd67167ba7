package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/trebuchet-org/regforge/internal/domain"
	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/domain/models"
)

// BuildRegistryParams contains parameters for building the registry.
// Set fields override the resolved configuration; nil slices and nil
// pointers leave the configured value in place.
type BuildRegistryParams struct {
	IncludeContracts []string
	ExcludeContracts []string
	IncludeNetworks  []string
	ExcludeNetworks  []string
	NamePrefix       *string
	NameSuffix       *string
}

// BuildRegistry is the use case that consolidates per-network deployment
// exports into a single chain-indexed registry.
type BuildRegistry struct {
	config *config.RuntimeConfig
	source ExportSource
	sink   ProgressSink
}

// NewBuildRegistry creates a new BuildRegistry use case
func NewBuildRegistry(cfg *config.RuntimeConfig, source ExportSource, sink ProgressSink) *BuildRegistry {
	return &BuildRegistry{
		config: cfg,
		source: source,
		sink:   sink,
	}
}

// Run executes the build registry use case
func (uc *BuildRegistry) Run(ctx context.Context, params BuildRegistryParams) (*BuildResult, error) {
	reg := uc.config.Registry

	includes := reg.IncludeContracts
	if params.IncludeContracts != nil {
		includes = params.IncludeContracts
	}
	excludes := reg.ExcludeContracts
	if params.ExcludeContracts != nil {
		excludes = params.ExcludeContracts
	}
	contractFilter, err := domain.NewContractFilter(includes, excludes)
	if err != nil {
		return nil, fmt.Errorf("invalid contract filter: %w", err)
	}

	includeNetworks := reg.IncludeNetworks
	if params.IncludeNetworks != nil {
		includeNetworks = params.IncludeNetworks
	}
	excludeNetworks := reg.ExcludeNetworks
	if params.ExcludeNetworks != nil {
		excludeNetworks = params.ExcludeNetworks
	}
	networkFilter := domain.NewNetworkFilter(includeNetworks, excludeNetworks)

	prefix := reg.NamePrefix
	if params.NamePrefix != nil {
		prefix = *params.NamePrefix
	}
	suffix := reg.NameSuffix
	if params.NameSuffix != nil {
		suffix = *params.NameSuffix
	}

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "scanning",
		Message: "Scanning export directory",
		Spinner: true,
	})

	files, err := uc.source.ListExports(ctx)
	if err != nil {
		return nil, err
	}

	acc := newAggregator(prefix, suffix)
	result := &BuildResult{}

	for _, file := range files {
		// Excluded files are never opened, so a malformed export on a
		// filtered-out network cannot fail the run.
		if !networkFilter.ShouldIncludeFile(file.Name) {
			result.FilesSkipped++
			continue
		}

		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "merging",
			Current: result.FilesRead + 1,
			Total:   len(files),
			Message: fmt.Sprintf("Merging %s", file.Name),
		})

		export, err := uc.source.ReadExport(ctx, file)
		if err != nil {
			return nil, err
		}

		for _, name := range export.Contracts.Names() {
			if !contractFilter.ShouldInclude(name) {
				result.ContractsSkipped++
				continue
			}
			record, _ := export.Contracts.Get(name)
			acc.fold(name, export.ChainID.Uint64(), record)
		}

		acc.sawNetwork(export.Name, file.Network, export.ChainID.Uint64())
		result.FilesRead++
	}

	result.Registry = acc.registry()

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: result.FilesRead,
		Total:   result.FilesRead,
		Message: fmt.Sprintf("Merged %d exports into %d contracts", result.FilesRead, len(result.Registry.Contracts)),
	})

	return result, nil
}

// aggregator folds contract records into aggregate entries, keyed by the
// decorated contract name and kept in first-insertion order.
type aggregator struct {
	prefix  string
	suffix  string
	order   []string
	entries map[string]*aggregateEntry

	networks []models.Network
}

type aggregateEntry struct {
	abi     json.RawMessage
	byChain map[uint64]string
}

func newAggregator(prefix, suffix string) *aggregator {
	return &aggregator{
		prefix:  prefix,
		suffix:  suffix,
		entries: make(map[string]*aggregateEntry),
	}
}

// fold merges one record under its decorated name. The first record seen for
// a name fixes the ABI; each record writes its address under its chain id,
// overwriting any earlier address for the same (name, chain) pair.
func (a *aggregator) fold(rawName string, chainID uint64, record *models.ContractRecord) {
	key := a.prefix + rawName + a.suffix
	entry, ok := a.entries[key]
	if !ok {
		entry = &aggregateEntry{
			abi:     record.ABI,
			byChain: make(map[uint64]string),
		}
		a.entries[key] = entry
		a.order = append(a.order, key)
	}
	entry.byChain[chainID] = record.Address
}

func (a *aggregator) sawNetwork(exportName, fileNetwork string, chainID uint64) {
	name := exportName
	if name == "" {
		name = fileNetwork
	}
	a.networks = append(a.networks, models.Network{Name: name, ChainID: chainID})
}

// registry materializes the aggregate, collapsing each entry's chain map to a
// single address when every chain holds the same one. The collapse happens
// here, after all folds, never in between.
func (a *aggregator) registry() *models.Registry {
	contracts := make([]*models.AggregateContract, 0, len(a.order))
	for _, key := range a.order {
		entry := a.entries[key]
		contracts = append(contracts, &models.AggregateContract{
			Name:    key,
			ABI:     entry.abi,
			Address: collapseAddresses(entry.byChain),
		})
	}
	return &models.Registry{
		Contracts: contracts,
		Networks:  a.networks,
	}
}

// collapseAddresses returns the scalar form when all chains share one
// address, otherwise the full chain map.
func collapseAddresses(byChain map[uint64]string) models.Address {
	var only string
	first := true
	for _, addr := range byChain {
		if first {
			only = addr
			first = false
			continue
		}
		if addr != only {
			return models.ChainAddresses(byChain)
		}
	}
	return models.SingleAddress(only)
}
