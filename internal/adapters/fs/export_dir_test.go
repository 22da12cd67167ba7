package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/regforge/internal/domain"
	"github.com/trebuchet-org/regforge/internal/domain/config"
)

func newTestExportDir(t *testing.T) (*ExportDirAdapter, string) {
	t.Helper()
	tmpDir := t.TempDir()
	cfg := &config.RuntimeConfig{
		ProjectRoot: tmpDir,
		Registry:    &config.RegistryConfig{ExportDir: tmpDir},
	}
	adapter, err := NewExportDirAdapter(cfg)
	require.NoError(t, err)
	return adapter, tmpDir
}

// writeExport creates an export file in the directory.
func writeExport(t *testing.T, dir, name, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
	require.NoError(t, err)
}

func TestNewExportDirAdapter(t *testing.T) {
	t.Run("requires a configured directory", func(t *testing.T) {
		cfg := &config.RuntimeConfig{Registry: &config.RegistryConfig{}}
		_, err := NewExportDirAdapter(cfg)
		assert.ErrorIs(t, err, domain.ErrNoExportDirectory)
	})

	t.Run("resolves relative directories against the project root", func(t *testing.T) {
		cfg := &config.RuntimeConfig{
			ProjectRoot: "/project",
			Registry:    &config.RegistryConfig{ExportDir: "deployments/exports"},
		}
		adapter, err := NewExportDirAdapter(cfg)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("/project", "deployments", "exports"), adapter.dir)
	})
}

func TestExportDir_ListExports(t *testing.T) {
	ctx := context.Background()

	t.Run("lists regular files in lexical order", func(t *testing.T) {
		adapter, dir := newTestExportDir(t)
		writeExport(t, dir, "polygon.json", "{}")
		writeExport(t, dir, "mainnet.json", "{}")
		writeExport(t, dir, "base.json", "{}")

		files, err := adapter.ListExports(ctx)
		require.NoError(t, err)
		require.Len(t, files, 3)
		assert.Equal(t, "base.json", files[0].Name)
		assert.Equal(t, "mainnet.json", files[1].Name)
		assert.Equal(t, "polygon.json", files[2].Name)
		assert.Equal(t, "mainnet", files[1].Network)
		assert.Equal(t, filepath.Join(dir, "mainnet.json"), files[1].Path)
	})

	t.Run("skips subdirectories and dotfiles", func(t *testing.T) {
		adapter, dir := newTestExportDir(t)
		writeExport(t, dir, "mainnet.json", "{}")
		writeExport(t, dir, ".hidden.json", "{}")
		require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

		files, err := adapter.ListExports(ctx)
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "mainnet.json", files[0].Name)
	})

	t.Run("missing directory is an error", func(t *testing.T) {
		cfg := &config.RuntimeConfig{
			Registry: &config.RegistryConfig{ExportDir: filepath.Join(t.TempDir(), "nope")},
		}
		adapter, err := NewExportDirAdapter(cfg)
		require.NoError(t, err)

		_, err = adapter.ListExports(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nope")
	})
}

func TestExportDir_ReadExport(t *testing.T) {
	ctx := context.Background()

	t.Run("parses a well-formed export", func(t *testing.T) {
		adapter, dir := newTestExportDir(t)
		writeExport(t, dir, "mainnet.json", `{
			"chainId": "1",
			"name": "mainnet",
			"contracts": {
				"Zulu":  {"address": "0xAaAa", "abi": [{"type":"fallback"}]},
				"Alpha": {"address": "0xBBbb", "abi": []}
			}
		}`)

		files, err := adapter.ListExports(ctx)
		require.NoError(t, err)

		export, err := adapter.ReadExport(ctx, files[0])
		require.NoError(t, err)
		assert.Equal(t, uint64(1), export.ChainID.Uint64())
		assert.Equal(t, "mainnet", export.Name)

		// File key order survives decoding, addresses keep their casing.
		assert.Equal(t, []string{"Zulu", "Alpha"}, export.Contracts.Names())
		zulu, ok := export.Contracts.Get("Zulu")
		require.True(t, ok)
		assert.Equal(t, "0xAaAa", zulu.Address)
	})

	t.Run("accepts a bare-number chainId", func(t *testing.T) {
		adapter, dir := newTestExportDir(t)
		writeExport(t, dir, "base.json", `{"chainId": 8453, "name": "base", "contracts": {}}`)

		files, err := adapter.ListExports(ctx)
		require.NoError(t, err)

		export, err := adapter.ReadExport(ctx, files[0])
		require.NoError(t, err)
		assert.Equal(t, uint64(8453), export.ChainID.Uint64())
	})

	t.Run("malformed JSON names the file", func(t *testing.T) {
		adapter, dir := newTestExportDir(t)
		writeExport(t, dir, "broken.json", `{"chainId": "1", "contracts": {`)

		files, err := adapter.ListExports(ctx)
		require.NoError(t, err)

		_, err = adapter.ReadExport(ctx, files[0])
		require.Error(t, err)

		var parseErr *domain.ExportParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "broken.json", parseErr.File)
		assert.Contains(t, err.Error(), "broken.json")
	})

	t.Run("non-numeric chainId names the file", func(t *testing.T) {
		adapter, dir := newTestExportDir(t)
		writeExport(t, dir, "weird.json", `{"chainId": "mainnet", "contracts": {}}`)

		files, err := adapter.ListExports(ctx)
		require.NoError(t, err)

		_, err = adapter.ReadExport(ctx, files[0])
		require.Error(t, err)

		var parseErr *domain.ExportParseError
		require.True(t, errors.As(err, &parseErr))
		assert.Equal(t, "weird.json", parseErr.File)
	})
}
