package interactive

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/trebuchet-org/regforge/internal/domain/config"
	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// PickerAdapter handles interactive selection of merged contracts
type PickerAdapter struct {
	config *config.RuntimeConfig
}

// NewPickerAdapter creates a new picker adapter
func NewPickerAdapter(cfg *config.RuntimeConfig) (*PickerAdapter, error) {
	return &PickerAdapter{config: cfg}, nil
}

// PickContract selects one contract from a list
func (s *PickerAdapter) PickContract(ctx context.Context, contracts []*models.AggregateContract, prompt string) (*models.AggregateContract, error) {
	// In non-interactive mode, we can't select
	if s.config.NonInteractive {
		return nil, fmt.Errorf("interactive selection not available in non-interactive mode")
	}

	if len(contracts) == 0 {
		return nil, fmt.Errorf("no contracts provided for selection")
	}

	// If only one match, return it directly
	if len(contracts) == 1 {
		return contracts[0], nil
	}

	options := formatContractOptions(contracts)

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . | faint }}",
		Selected: "✓ {{ . | green }}",
		Help:     color.New(color.FgYellow).Sprint("Use arrow keys to navigate, Enter to select"),
	}

	promptSelect := promptui.Select{
		Label:             prompt,
		Items:             options,
		Templates:         templates,
		Size:              10,
		StartInSearchMode: true,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return nil, fmt.Errorf("selection cancelled: %w", err)
	}

	return contracts[index], nil
}

// formatContractOptions creates display strings for contract selection
func formatContractOptions(contracts []*models.AggregateContract) []string {
	options := make([]string, len(contracts))
	for i, contract := range contracts {
		name := color.New(color.FgWhite, color.Bold).Sprint(contract.Name)

		var where string
		if contract.Address.IsSingle() {
			where = color.New(color.FgBlue).Sprint(contract.Address.Single())
		} else {
			where = color.New(color.FgYellow).Sprintf("%d chains", len(contract.Address.ByChain()))
		}

		options[i] = fmt.Sprintf("%s (%s)", name, where)
	}
	return options
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		// Empty search shows all items
		if input == "" {
			return true
		}

		// Convert to lowercase for case-insensitive search
		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		// First try simple substring match
		if strings.Contains(item, input) {
			return true
		}

		// Then try fuzzy match
		pattern := fuzzy.Find(input, []string{item})
		return len(pattern) > 0
	}
}

// Ensure the adapter implements the interface
var _ usecase.ContractPicker = (*PickerAdapter)(nil)
