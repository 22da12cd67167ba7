package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// Address is the merged address representation of an aggregate contract:
// either one scalar address shared by every contributing chain, or a
// chain-id→address mapping when the deployments diverge. Exactly one of the
// two forms is active.
type Address struct {
	single  string
	byChain map[uint64]string
}

// SingleAddress returns the scalar form.
func SingleAddress(addr string) Address {
	return Address{single: addr}
}

// ChainAddresses returns the per-chain form.
func ChainAddresses(byChain map[uint64]string) Address {
	return Address{byChain: byChain}
}

// IsSingle reports whether every contributing chain shares one address.
func (a Address) IsSingle() bool {
	return a.byChain == nil
}

// Single returns the scalar address, or "" for the per-chain form.
func (a Address) Single() string {
	return a.single
}

// ByChain returns the chain-id→address mapping, or nil for the scalar form.
func (a Address) ByChain() map[uint64]string {
	return a.byChain
}

// Chains returns the contributing chain ids in ascending order. The scalar
// form returns nil: the collapse discards per-chain attribution.
func (a Address) Chains() []uint64 {
	if a.byChain == nil {
		return nil
	}
	chains := make([]uint64, 0, len(a.byChain))
	for id := range a.byChain {
		chains = append(chains, id)
	}
	sort.Slice(chains, func(i, j int) bool { return chains[i] < chains[j] })
	return chains
}

func (a Address) String() string {
	if a.IsSingle() {
		return a.single
	}
	return fmt.Sprintf("%d chains", len(a.byChain))
}

// MarshalJSON emits the scalar form as a plain string and the per-chain form
// as an object keyed by decimal chain id, in ascending chain order.
func (a Address) MarshalJSON() ([]byte, error) {
	if a.IsSingle() {
		return json.Marshal(a.single)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range a.Chains() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(strconv.FormatUint(id, 10))
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(a.byChain[id])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML mirrors MarshalJSON for the YAML artifact writer.
func (a Address) MarshalYAML() (any, error) {
	if a.IsSingle() {
		return a.single, nil
	}
	return a.byChain, nil
}

// AggregateContract is the chain-spanning output record for one logical
// contract name. The display name carries the configured prefix/suffix
// transform; the ABI is taken from whichever chain folded in first.
type AggregateContract struct {
	Name    string          `json:"name"`
	ABI     json.RawMessage `json:"abi"`
	Address Address         `json:"address"`
}

// MarshalYAML re-decodes the raw ABI so the YAML artifact carries it as
// structure rather than a base64 blob.
func (c *AggregateContract) MarshalYAML() (any, error) {
	var abi any
	if len(c.ABI) > 0 {
		if err := json.Unmarshal(c.ABI, &abi); err != nil {
			return nil, fmt.Errorf("invalid ABI for %s: %w", c.Name, err)
		}
	}
	return struct {
		Name    string  `yaml:"name"`
		Address Address `yaml:"address"`
		ABI     any     `yaml:"abi,omitempty"`
	}{
		Name:    c.Name,
		Address: c.Address,
		ABI:     abi,
	}, nil
}

// Network identifies one export document that contributed to a build.
type Network struct {
	Name    string `json:"name" yaml:"name"`
	ChainID uint64 `json:"chainId" yaml:"chainId"`
}

// Registry is the consolidated output of one build: aggregate contracts in
// first-insertion order, plus the networks that contributed in the order
// their files were read. It is constructed fresh per invocation and owned
// by the caller.
type Registry struct {
	Contracts []*AggregateContract `json:"contracts" yaml:"contracts"`
	Networks  []Network            `json:"networks,omitempty" yaml:"networks,omitempty"`
}

// Contract returns the aggregate entry with the given display name.
func (r *Registry) Contract(name string) (*AggregateContract, bool) {
	for _, c := range r.Contracts {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// ContractNames returns the display names in registry order.
func (r *Registry) ContractNames() []string {
	names := make([]string, len(r.Contracts))
	for i, c := range r.Contracts {
		names[i] = c.Name
	}
	return names
}
