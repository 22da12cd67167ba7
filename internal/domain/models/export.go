package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ChainID is the integer identity of a blockchain network. Deployment
// export documents encode it as a decimal numeral inside a JSON string
// ("1", "137"); a bare JSON number is accepted as well.
type ChainID uint64

// UnmarshalJSON parses a decimal string or bare integer chain id.
func (c *ChainID) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case string:
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("chainId %q is not a decimal integer", v)
		}
		*c = ChainID(id)
		return nil
	case float64:
		if v < 0 || v != float64(uint64(v)) {
			return fmt.Errorf("chainId %v is not an unsigned integer", v)
		}
		*c = ChainID(v)
		return nil
	default:
		return fmt.Errorf("chainId must be a decimal string, got %T", raw)
	}
}

// MarshalJSON writes the chain id back in the export format (decimal string).
func (c ChainID) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c ChainID) Uint64() uint64 {
	return uint64(c)
}

func (c ChainID) String() string {
	return strconv.FormatUint(uint64(c), 10)
}

// ContractRecord is one deployed contract inside an export document: the
// chain-scoped address, the contract's ABI, and optional linked data the
// deployment tool attached. Records are never mutated after decoding.
type ContractRecord struct {
	Address string          `json:"address"`
	ABI     json.RawMessage `json:"abi"`
	Linked  json.RawMessage `json:"linkedData,omitempty"`
}

// ContractMap is a name-keyed collection of contract records that preserves
// the document's own key order. Aggregate output order is defined as
// first-insertion order across files, so the per-file iteration order has to
// be the order the file states, not Go's randomized map order.
type ContractMap struct {
	names   []string
	records map[string]*ContractRecord
}

// UnmarshalJSON decodes the contracts object token by token so key order
// survives. A duplicated key keeps its first position and its last record,
// matching how ordinary JSON object parsing resolves duplicates.
func (m *ContractMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*m = ContractMap{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("contracts: expected object, got %v", tok)
	}

	m.names = nil
	m.records = make(map[string]*ContractRecord)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("contracts: unexpected key %v", keyTok)
		}

		var rec ContractRecord
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("contract %s: %w", name, err)
		}
		if _, seen := m.records[name]; !seen {
			m.names = append(m.names, name)
		}
		m.records[name] = &rec
	}

	_, err = dec.Token()
	return err
}

// Names returns the contract names in document order.
func (m ContractMap) Names() []string {
	return m.names
}

// Get returns the record for a contract name.
func (m ContractMap) Get(name string) (*ContractRecord, bool) {
	rec, ok := m.records[name]
	return rec, ok
}

func (m ContractMap) Len() int {
	return len(m.names)
}

// DeploymentExport is one network's export document, parsed. One instance
// exists per file and lives for a single fold iteration.
type DeploymentExport struct {
	ChainID   ChainID     `json:"chainId"`
	Name      string      `json:"name"`
	Contracts ContractMap `json:"contracts"`
}
