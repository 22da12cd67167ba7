package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

func TestListNetworks(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every file, reads only included ones", func(t *testing.T) {
		files := []usecase.ExportFile{
			exportFile("localhost.json"),
			exportFile("mainnet.json"),
			exportFile("polygon.json"),
		}

		source := new(MockExportSource)
		source.On("ListExports", ctx).Return(files, nil)
		source.On("ReadExport", ctx, files[1]).Return(parseExport(t, `{
			"chainId": "1", "name": "mainnet",
			"contracts": {"Foo": {"address": "0xAA", "abi": []}, "Bar": {"address": "0xBB", "abi": []}}
		}`), nil)
		source.On("ReadExport", ctx, files[2]).Return(parseExport(t, `{
			"chainId": "137", "name": "polygon",
			"contracts": {"Foo": {"address": "0xCC", "abi": []}}
		}`), nil)

		cfg := testConfig()
		cfg.Registry.ExcludeNetworks = []string{"localhost"}

		uc := usecase.NewListNetworks(cfg, source)
		result, err := uc.Run(ctx, usecase.ListNetworksParams{})

		require.NoError(t, err)
		require.Len(t, result.Networks, 3)

		local := result.Networks[0]
		assert.Equal(t, "localhost", local.Network)
		assert.False(t, local.Included)
		assert.Zero(t, local.ChainID)

		mainnet := result.Networks[1]
		assert.Equal(t, "mainnet", mainnet.Network)
		assert.True(t, mainnet.Included)
		assert.Equal(t, uint64(1), mainnet.ChainID)
		assert.Equal(t, 2, mainnet.Contracts)

		polygon := result.Networks[2]
		assert.True(t, polygon.Included)
		assert.Equal(t, uint64(137), polygon.ChainID)
		assert.Equal(t, 1, polygon.Contracts)

		source.AssertNotCalled(t, "ReadExport", ctx, files[0])
	})

	t.Run("params override configured network filters", func(t *testing.T) {
		files := []usecase.ExportFile{
			exportFile("mainnet.json"),
			exportFile("polygon.json"),
		}

		source := new(MockExportSource)
		source.On("ListExports", ctx).Return(files, nil)
		source.On("ReadExport", ctx, files[1]).Return(parseExport(t, `{
			"chainId": "137", "name": "polygon", "contracts": {}
		}`), nil)

		cfg := testConfig()
		cfg.Registry.IncludeNetworks = []string{"mainnet"}

		uc := usecase.NewListNetworks(cfg, source)
		result, err := uc.Run(ctx, usecase.ListNetworksParams{
			IncludeNetworks: []string{"polygon"},
		})

		require.NoError(t, err)
		require.Len(t, result.Networks, 2)
		assert.False(t, result.Networks[0].Included)
		assert.True(t, result.Networks[1].Included)
		source.AssertNotCalled(t, "ReadExport", ctx, files[0])
	})

	t.Run("empty directory", func(t *testing.T) {
		source := new(MockExportSource)
		source.On("ListExports", ctx).Return([]usecase.ExportFile{}, nil)

		uc := usecase.NewListNetworks(testConfig(), source)
		result, err := uc.Run(ctx, usecase.ListNetworksParams{})

		require.NoError(t, err)
		assert.Empty(t, result.Networks)
	})
}
