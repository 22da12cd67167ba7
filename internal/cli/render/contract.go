package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/fatih/color"
	"github.com/trebuchet-org/regforge/internal/domain/models"
)

// ContractRenderer renders detailed information about a single merged
// contract
type ContractRenderer struct {
	out io.Writer
}

// NewContractRenderer creates a new contract renderer
func NewContractRenderer(out io.Writer) *ContractRenderer {
	return &ContractRenderer{out: out}
}

// RenderContract renders the addresses and ABI summary of one contract
func (r *ContractRenderer) RenderContract(contract *models.AggregateContract) error {
	// Header
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Contract: %s\n", contract.Name)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	// Addresses
	fmt.Fprintln(r.out, "\nAddresses:")
	if contract.Address.IsSingle() {
		fmt.Fprintf(r.out, "  %s %s\n",
			chainStyle.Sprint("all chains:"),
			DisplayAddress(contract.Address.Single()))
	} else {
		byChain := contract.Address.ByChain()
		for _, chainID := range contract.Address.Chains() {
			fmt.Fprintf(r.out, "  %s %s\n",
				chainStyle.Sprintf("chain %d:", chainID),
				DisplayAddress(byChain[chainID]))
		}
	}

	return r.renderABI(contract.ABI)
}

// renderABI prints a function and event summary, falling back to an entry
// count when the ABI does not parse
func (r *ContractRenderer) renderABI(rawABI json.RawMessage) error {
	if len(rawABI) == 0 || string(rawABI) == "null" {
		fmt.Fprintln(r.out, "\nABI: none")
		return nil
	}

	parsed, err := abi.JSON(bytes.NewReader(rawABI))
	if err != nil {
		var entries []json.RawMessage
		if jsonErr := json.Unmarshal(rawABI, &entries); jsonErr == nil {
			fmt.Fprintf(r.out, "\nABI: %d entries\n", len(entries))
			return nil
		}
		fmt.Fprintln(r.out, "\nABI: present")
		return nil
	}

	if len(parsed.Methods) > 0 {
		fmt.Fprintf(r.out, "\nFunctions (%d):\n", len(parsed.Methods))
		names := make([]string, 0, len(parsed.Methods))
		for name := range parsed.Methods {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			method := parsed.Methods[name]
			fmt.Fprintf(r.out, "  %s\n", method.Sig)
		}
	}

	if len(parsed.Events) > 0 {
		fmt.Fprintf(r.out, "\nEvents (%d):\n", len(parsed.Events))
		names := make([]string, 0, len(parsed.Events))
		for name := range parsed.Events {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			event := parsed.Events[name]
			fmt.Fprintf(r.out, "  %s\n", event.Sig)
		}
	}

	if len(parsed.Methods) == 0 && len(parsed.Events) == 0 {
		fmt.Fprintln(r.out, "\nABI: no functions or events")
	}

	return nil
}
