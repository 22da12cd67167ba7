package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// Color styles shared by the registry renderers
var (
	nameStyle    = color.New(color.FgGreen, color.Bold)
	chainStyle   = color.New(color.FgCyan)
	addressStyle = color.New(color.FgWhite)
	subRowStyle  = color.New(color.Faint)
	headerStyle  = color.New(color.Bold, color.FgHiWhite)
)

// ContractsRenderer renders the merged registry as a table
type ContractsRenderer struct {
	out io.Writer
}

// NewContractsRenderer creates a new contracts renderer
func NewContractsRenderer(out io.Writer) *ContractsRenderer {
	return &ContractsRenderer{out: out}
}

// RenderContractList renders the merged contracts with one row per contract,
// expanded to one row per chain when the addresses diverge
func (r *ContractsRenderer) RenderContractList(result *usecase.BuildResult) error {
	registry := result.Registry
	if len(registry.Contracts) == 0 {
		fmt.Fprintln(r.out, "No contracts found in the export files")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.AppendHeader(table.Row{
		headerStyle.Sprint("CONTRACT"),
		headerStyle.Sprint("CHAIN"),
		headerStyle.Sprint("ADDRESS"),
	})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	for _, contract := range registry.Contracts {
		if contract.Address.IsSingle() {
			t.AppendRow(table.Row{
				nameStyle.Sprint(contract.Name),
				chainStyle.Sprint("all"),
				addressStyle.Sprint(DisplayAddress(contract.Address.Single())),
			})
			continue
		}

		byChain := contract.Address.ByChain()
		for i, chainID := range contract.Address.Chains() {
			nameCell := nameStyle.Sprint(contract.Name)
			if i > 0 {
				nameCell = subRowStyle.Sprint("└─")
			}
			t.AppendRow(table.Row{
				nameCell,
				chainStyle.Sprint(strconv.FormatUint(chainID, 10)),
				addressStyle.Sprint(DisplayAddress(byChain[chainID])),
			})
		}
	}

	t.Render()

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Total contracts: %d (from %d files", len(registry.Contracts), result.FilesRead)
	if result.FilesSkipped > 0 {
		fmt.Fprintf(r.out, ", %d skipped", result.FilesSkipped)
	}
	fmt.Fprintln(r.out, ")")
	return nil
}

// DisplayAddress returns the EIP-55 checksummed form when the input is a
// well-formed hex address, otherwise the input unchanged
func DisplayAddress(addr string) string {
	if common.IsHexAddress(addr) {
		return common.HexToAddress(addr).Hex()
	}
	return addr
}
