package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrNoExportDirectory is returned when no export directory is configured
	ErrNoExportDirectory = errors.New("no export directory configured")

	// ErrInvalidChainID is returned when a chain ID is invalid
	ErrInvalidChainID = errors.New("invalid chain ID")
)

// ExportParseError marks an export document that could not be parsed.
// One bad file fails the whole build; the error names the offender.
type ExportParseError struct {
	File string
	Err  error
}

func (e *ExportParseError) Error() string {
	return fmt.Sprintf("failed to parse export %s: %v", e.File, e.Err)
}

func (e *ExportParseError) Unwrap() error {
	return e.Err
}

type ContractNotFoundErr struct {
	Name string
}

func (e ContractNotFoundErr) Error() string {
	return fmt.Sprintf("no contract named %q in the consolidated registry", e.Name)
}

func (e ContractNotFoundErr) Is(target error) bool {
	return target == ErrNotFound
}

type AmbiguousContractErr struct {
	Name    string
	Matches []string
}

func (e AmbiguousContractErr) Error() string {
	// Sort matches for consistent output
	sortedMatches := make([]string, len(e.Matches))
	copy(sortedMatches, e.Matches)
	sort.Strings(sortedMatches)

	var suggestions []string
	for _, name := range sortedMatches {
		suggestions = append(suggestions, fmt.Sprintf("  - %s", name))
	}

	return fmt.Sprintf("multiple contracts match %q - use the exact name to disambiguate:\n%s",
		e.Name, strings.Join(suggestions, "\n"))
}
