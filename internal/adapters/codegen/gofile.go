package codegen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

const goFileTemplate = `// Code generated by regforge. DO NOT EDIT.

package {{.Package}}
{{if .Contracts}}
import (
	"github.com/ethereum/go-ethereum/common"
)
{{end}}
{{- range .Contracts}}
{{if .IsSingle}}// {{.Ident}}Address is the deployed address of {{.Name}}.
var {{.Ident}}Address = common.HexToAddress("{{.Single}}")
{{else}}// {{.Ident}}Addresses maps chain id to the deployed address of {{.Name}}.
var {{.Ident}}Addresses = map[uint64]common.Address{
{{- range .ByChain}}
	{{.ChainID}}: common.HexToAddress("{{.Address}}"),
{{- end}}
}
{{end}}
// {{.Ident}}ABI is the ABI of {{.Name}}.
const {{.Ident}}ABI = {{.ABI}}
{{end}}`

// GoWriterAdapter renders the registry as a generated Go source file
type GoWriterAdapter struct{}

// NewGoWriterAdapter creates a new Go artifact writer
func NewGoWriterAdapter() *GoWriterAdapter {
	return &GoWriterAdapter{}
}

// Format returns the configuration key for this writer
func (w *GoWriterAdapter) Format() string { return "go" }

// FileName returns the artifact file name
func (w *GoWriterAdapter) FileName(spec usecase.ArtifactSpec) string { return "registry.go" }

type goContract struct {
	Ident    string
	Name     string
	ABI      string
	IsSingle bool
	Single   string
	ByChain  []goChainAddress
}

type goChainAddress struct {
	ChainID uint64
	Address string
}

// Render produces the Go source artifact. Scalar entries become a single
// common.Address var, diverging entries a chain-keyed map; each entry also
// carries its ABI as a string constant.
func (w *GoWriterAdapter) Render(ctx context.Context, registry *models.Registry, spec usecase.ArtifactSpec) ([]byte, error) {
	pkg := spec.Package
	if pkg == "" {
		pkg = "registry"
	}

	seen := make(map[string]int)
	contracts := make([]goContract, 0, len(registry.Contracts))
	for _, c := range registry.Contracts {
		ident := goIdent(c.Name)
		if n := seen[ident]; n > 0 {
			seen[ident] = n + 1
			ident += strconv.Itoa(n + 1)
		} else {
			seen[ident] = 1
		}

		abi, err := abiLiteral(c.ABI)
		if err != nil {
			return nil, fmt.Errorf("invalid ABI for %s: %w", c.Name, err)
		}

		gc := goContract{
			Ident:    ident,
			Name:     c.Name,
			ABI:      abi,
			IsSingle: c.Address.IsSingle(),
		}
		if gc.IsSingle {
			gc.Single = checksum(c.Address.Single())
		} else {
			byChain := c.Address.ByChain()
			for _, id := range c.Address.Chains() {
				gc.ByChain = append(gc.ByChain, goChainAddress{
					ChainID: id,
					Address: checksum(byChain[id]),
				})
			}
		}
		contracts = append(contracts, gc)
	}

	data := struct {
		Package   string
		Contracts []goContract
	}{
		Package:   pkg,
		Contracts: contracts,
	}

	t := template.Must(template.New("gofile").Parse(goFileTemplate))
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to execute registry template: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated source: %w", err)
	}
	return src, nil
}

var identTitler = cases.Title(language.English, cases.NoLower)

// goIdent derives an exported Go identifier from a contract name.
func goIdent(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	var b strings.Builder
	for _, part := range parts {
		b.WriteString(identTitler.String(part))
	}
	ident := b.String()
	if ident == "" {
		return "Contract"
	}
	if first, _ := utf8.DecodeRuneInString(ident); unicode.IsDigit(first) {
		ident = "X" + ident
	}
	return ident
}

// checksum returns the EIP-55 form of well-formed hex addresses and leaves
// anything else untouched.
func checksum(addr string) string {
	if common.IsHexAddress(addr) {
		return common.HexToAddress(addr).Hex()
	}
	return addr
}

// abiLiteral compacts the raw ABI JSON into a quoted Go string literal.
func abiLiteral(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return strconv.Quote("null"), nil
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return strconv.Quote(buf.String()), nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactWriter = (*GoWriterAdapter)(nil)
