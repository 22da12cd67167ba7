package codegen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

func TestGoWriter_Render(t *testing.T) {
	ctx := context.Background()
	writer := NewGoWriterAdapter()

	t.Run("scalar address", func(t *testing.T) {
		registry := &models.Registry{
			Contracts: []*models.AggregateContract{{
				Name:    "Counter",
				ABI:     json.RawMessage(`[]`),
				Address: models.SingleAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
			}},
		}

		out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{Package: "registry"})
		require.NoError(t, err)

		src := string(out)
		assert.Contains(t, src, "// Code generated by regforge. DO NOT EDIT.")
		assert.Contains(t, src, "package registry")
		assert.Contains(t, src, `"github.com/ethereum/go-ethereum/common"`)
		// EIP-55 checksum applied for display
		assert.Contains(t, src, `var CounterAddress = common.HexToAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed")`)
		assert.Contains(t, src, `const CounterABI = "[]"`)
	})

	t.Run("chain map address in ascending chain order", func(t *testing.T) {
		registry := &models.Registry{
			Contracts: []*models.AggregateContract{{
				Name: "Token",
				ABI:  json.RawMessage(`[{"type":"function","name":"ping"}]`),
				Address: models.ChainAddresses(map[uint64]string{
					137: "0x8ba1f109551bd432803012645ac136ddd64dba72",
					1:   "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed",
				}),
			}},
		}

		out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{Package: "registry"})
		require.NoError(t, err)

		src := string(out)
		assert.Contains(t, src, "var TokenAddresses = map[uint64]common.Address{")
		first := strings.Index(src, "\t1:")
		second := strings.Index(src, "\t137:")
		require.GreaterOrEqual(t, first, 0)
		require.GreaterOrEqual(t, second, 0)
		assert.Less(t, first, second)
		assert.Contains(t, src, `const TokenABI = "[{\"type\":\"function\",\"name\":\"ping\"}]"`)
	})

	t.Run("defaults the package name", func(t *testing.T) {
		registry := &models.Registry{}

		out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{})
		require.NoError(t, err)

		src := string(out)
		assert.Contains(t, src, "package registry")
		// No contracts, so no import either
		assert.NotContains(t, src, "go-ethereum")
	})

	t.Run("contracts keep registry order", func(t *testing.T) {
		registry := &models.Registry{
			Contracts: []*models.AggregateContract{
				{Name: "Zebra", ABI: json.RawMessage(`[]`), Address: models.SingleAddress("0x01")},
				{Name: "Alpha", ABI: json.RawMessage(`[]`), Address: models.SingleAddress("0x02")},
			},
		}

		out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{Package: "registry"})
		require.NoError(t, err)

		src := string(out)
		assert.Less(t, strings.Index(src, "ZebraAddress"), strings.Index(src, "AlphaAddress"))
	})

	t.Run("colliding identifiers get a numeric suffix", func(t *testing.T) {
		registry := &models.Registry{
			Contracts: []*models.AggregateContract{
				{Name: "My-Token", ABI: json.RawMessage(`[]`), Address: models.SingleAddress("0x01")},
				{Name: "My_Token", ABI: json.RawMessage(`[]`), Address: models.SingleAddress("0x02")},
			},
		}

		out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{Package: "registry"})
		require.NoError(t, err)

		src := string(out)
		assert.Contains(t, src, "MyTokenAddress")
		assert.Contains(t, src, "MyToken2Address")
	})

	t.Run("file name and format", func(t *testing.T) {
		assert.Equal(t, "go", writer.Format())
		assert.Equal(t, "registry.go", writer.FileName(usecase.ArtifactSpec{Package: "x"}))
	})
}

func TestGoIdent(t *testing.T) {
	cases := map[string]string{
		"Counter":     "Counter",
		"my-token":    "MyToken",
		"my_token v2": "MyTokenV2",
		"ERC20Vault":  "ERC20Vault",
		"3Pool":       "X3Pool",
		"":            "Contract",
		"---":         "Contract",
	}
	for in, want := range cases {
		assert.Equal(t, want, goIdent(in), "goIdent(%q)", in)
	}
}

func TestJSONWriter_Render(t *testing.T) {
	ctx := context.Background()
	writer := NewJSONWriterAdapter()

	registry := &models.Registry{
		Contracts: []*models.AggregateContract{
			{Name: "Counter", ABI: json.RawMessage(`[]`), Address: models.SingleAddress("0xAA")},
			{Name: "Token", ABI: json.RawMessage(`[]`), Address: models.ChainAddresses(map[uint64]string{1: "0xAA", 137: "0xBB"})},
		},
		Networks: []models.Network{{Name: "mainnet", ChainID: 1}},
	}

	out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{})
	require.NoError(t, err)

	src := string(out)
	assert.Equal(t, "json", writer.Format())
	assert.Equal(t, "registry.json", writer.FileName(usecase.ArtifactSpec{}))
	assert.Contains(t, src, `"address": "0xAA"`)
	assert.Contains(t, src, `"1": "0xAA"`)
	assert.Contains(t, src, `"137": "0xBB"`)
	assert.Contains(t, src, `"chainId": 1`)
	assert.True(t, strings.HasSuffix(src, "\n"))

	// Round-trips as valid JSON
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
}

func TestYAMLWriter_Render(t *testing.T) {
	ctx := context.Background()
	writer := NewYAMLWriterAdapter()

	registry := &models.Registry{
		Contracts: []*models.AggregateContract{
			{Name: "Counter", ABI: json.RawMessage(`[{"type":"function","name":"ping"}]`), Address: models.SingleAddress("0xAA")},
			{Name: "Token", ABI: json.RawMessage(`[]`), Address: models.ChainAddresses(map[uint64]string{1: "0xAA", 137: "0xBB"})},
		},
	}

	out, err := writer.Render(ctx, registry, usecase.ArtifactSpec{})
	require.NoError(t, err)

	src := string(out)
	assert.Equal(t, "yaml", writer.Format())
	assert.Equal(t, "registry.yaml", writer.FileName(usecase.ArtifactSpec{}))
	assert.Contains(t, src, "name: Counter")
	assert.Contains(t, src, "address: 0xAA")
	// ABI carried as structure, not a binary blob
	assert.Contains(t, src, "type: function")
	assert.NotContains(t, src, "!!binary")
	// Chain map form
	assert.Contains(t, src, "1: 0xAA")
	assert.Contains(t, src, "137: 0xBB")
}
