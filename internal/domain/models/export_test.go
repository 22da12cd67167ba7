package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainID_UnmarshalJSON(t *testing.T) {
	t.Run("decimal string", func(t *testing.T) {
		var c ChainID
		require.NoError(t, json.Unmarshal([]byte(`"137"`), &c))
		assert.Equal(t, uint64(137), c.Uint64())
	})

	t.Run("bare number", func(t *testing.T) {
		var c ChainID
		require.NoError(t, json.Unmarshal([]byte(`42161`), &c))
		assert.Equal(t, uint64(42161), c.Uint64())
	})

	t.Run("rejects hex string", func(t *testing.T) {
		var c ChainID
		err := json.Unmarshal([]byte(`"0x89"`), &c)
		require.Error(t, err)
	})

	t.Run("rejects negative number", func(t *testing.T) {
		var c ChainID
		err := json.Unmarshal([]byte(`-1`), &c)
		require.Error(t, err)
	})

	t.Run("rejects fraction", func(t *testing.T) {
		var c ChainID
		err := json.Unmarshal([]byte(`1.5`), &c)
		require.Error(t, err)
	})
}

func TestChainID_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(ChainID(10))
	require.NoError(t, err)
	assert.Equal(t, `"10"`, string(data))
}

func TestContractMap_PreservesKeyOrder(t *testing.T) {
	raw := `{
		"Zebra":   {"address": "0x01", "abi": []},
		"Alpha":   {"address": "0x02", "abi": []},
		"Mango":   {"address": "0x03", "abi": []}
	}`

	var m ContractMap
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, []string{"Zebra", "Alpha", "Mango"}, m.Names())
	rec, ok := m.Get("Alpha")
	require.True(t, ok)
	assert.Equal(t, "0x02", rec.Address)
}

func TestContractMap_DuplicateKeyKeepsLastRecord(t *testing.T) {
	raw := `{
		"Token": {"address": "0x01", "abi": []},
		"Vault": {"address": "0x02", "abi": []},
		"Token": {"address": "0x03", "abi": []}
	}`

	var m ContractMap
	require.NoError(t, json.Unmarshal([]byte(raw), &m))

	assert.Equal(t, []string{"Token", "Vault"}, m.Names())
	rec, ok := m.Get("Token")
	require.True(t, ok)
	assert.Equal(t, "0x03", rec.Address)
}

func TestContractMap_Null(t *testing.T) {
	var m ContractMap
	require.NoError(t, json.Unmarshal([]byte(`null`), &m))
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Names())
}

func TestDeploymentExport_Unmarshal(t *testing.T) {
	raw := `{
		"chainId": "8453",
		"name": "base",
		"contracts": {
			"Counter": {"address": "0xAA", "abi": [{"type":"function","name":"count"}]}
		}
	}`

	var exp DeploymentExport
	require.NoError(t, json.Unmarshal([]byte(raw), &exp))

	assert.Equal(t, uint64(8453), exp.ChainID.Uint64())
	assert.Equal(t, "base", exp.Name)
	require.Equal(t, 1, exp.Contracts.Len())
	rec, ok := exp.Contracts.Get("Counter")
	require.True(t, ok)
	assert.Equal(t, "0xAA", rec.Address)
	assert.JSONEq(t, `[{"type":"function","name":"count"}]`, string(rec.ABI))
}
