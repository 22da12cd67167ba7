package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/regforge/internal/domain/models"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// MockArtifactWriter is a mock implementation of ArtifactWriter
type MockArtifactWriter struct {
	mock.Mock
	format string
	file   string
}

func (m *MockArtifactWriter) Format() string { return m.format }

func (m *MockArtifactWriter) FileName(spec usecase.ArtifactSpec) string { return m.file }

func (m *MockArtifactWriter) Render(ctx context.Context, registry *models.Registry, spec usecase.ArtifactSpec) ([]byte, error) {
	args := m.Called(ctx, registry, spec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockFileWriter is a mock implementation of FileWriter
type MockFileWriter struct {
	mock.Mock
}

func (m *MockFileWriter) WriteFile(ctx context.Context, path string, content []byte) error {
	args := m.Called(ctx, path, content)
	return args.Error(0)
}

func (m *MockFileWriter) EnsureDirectory(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func TestGenerateRegistry(t *testing.T) {
	ctx := context.Background()

	newBuild := func(t *testing.T) *usecase.BuildRegistry {
		t.Helper()
		files := []usecase.ExportFile{exportFile("mainnet.json")}
		source := new(MockExportSource)
		source.On("ListExports", ctx).Return(files, nil)
		source.On("ReadExport", ctx, files[0]).Return(parseExport(t, `{
			"chainId": "1", "name": "mainnet",
			"contracts": {"Foo": {"address": "0xAA", "abi": []}}
		}`), nil)
		return usecase.NewBuildRegistry(testConfig(), source, &MockProgressSink{})
	}

	t.Run("writes one artifact per format", func(t *testing.T) {
		goWriter := &MockArtifactWriter{format: "go", file: "registry.go"}
		goWriter.On("Render", ctx, mock.Anything, usecase.ArtifactSpec{Package: "registry"}).
			Return([]byte("package registry\n"), nil)
		jsonWriter := &MockArtifactWriter{format: "json", file: "registry.json"}
		jsonWriter.On("Render", ctx, mock.Anything, mock.Anything).
			Return([]byte("{}\n"), nil)

		cfg := testConfig()
		cfg.ProjectRoot = "/project"
		cfg.Gen.OutDir = "gen"
		cfg.Gen.Formats = []string{"go", "json"}
		cfg.Gen.Package = "registry"

		files := new(MockFileWriter)
		files.On("EnsureDirectory", ctx, filepath.Join("/project", "gen")).Return(nil)
		files.On("WriteFile", ctx, filepath.Join("/project", "gen", "registry.go"), mock.Anything).Return(nil)
		files.On("WriteFile", ctx, filepath.Join("/project", "gen", "registry.json"), mock.Anything).Return(nil)

		uc := usecase.NewGenerateRegistry(cfg, newBuild(t),
			[]usecase.ArtifactWriter{goWriter, jsonWriter}, files, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.GenerateRegistryParams{})

		require.NoError(t, err)
		require.Len(t, result.Artifacts, 2)
		assert.Equal(t, "go", result.Artifacts[0].Format)
		assert.Equal(t, filepath.Join("/project", "gen", "registry.go"), result.Artifacts[0].Path)
		assert.Equal(t, len("package registry\n"), result.Artifacts[0].Size)
		assert.Equal(t, 1, result.Build.FilesRead)

		files.AssertExpectations(t)
		goWriter.AssertExpectations(t)
		jsonWriter.AssertExpectations(t)
	})

	t.Run("params override gen config", func(t *testing.T) {
		yamlWriter := &MockArtifactWriter{format: "yaml", file: "registry.yaml"}
		yamlWriter.On("Render", ctx, mock.Anything, usecase.ArtifactSpec{Package: "other"}).
			Return([]byte("contracts: []\n"), nil)

		cfg := testConfig()
		cfg.ProjectRoot = "/project"
		cfg.Gen.OutDir = "gen"
		cfg.Gen.Formats = []string{"go"}
		cfg.Gen.Package = "registry"

		files := new(MockFileWriter)
		files.On("EnsureDirectory", ctx, "/elsewhere").Return(nil)
		files.On("WriteFile", ctx, filepath.Join("/elsewhere", "registry.yaml"), mock.Anything).Return(nil)

		uc := usecase.NewGenerateRegistry(cfg, newBuild(t),
			[]usecase.ArtifactWriter{yamlWriter}, files, &MockProgressSink{})
		result, err := uc.Run(ctx, usecase.GenerateRegistryParams{
			Formats: []string{"yaml"},
			OutDir:  "/elsewhere",
			Package: "other",
		})

		require.NoError(t, err)
		require.Len(t, result.Artifacts, 1)
		assert.Equal(t, "yaml", result.Artifacts[0].Format)
	})

	t.Run("unknown format fails before reading exports", func(t *testing.T) {
		goWriter := &MockArtifactWriter{format: "go", file: "registry.go"}

		cfg := testConfig()
		cfg.Gen.Formats = []string{"protobuf"}

		source := new(MockExportSource)
		build := usecase.NewBuildRegistry(testConfig(), source, &MockProgressSink{})

		uc := usecase.NewGenerateRegistry(cfg, build,
			[]usecase.ArtifactWriter{goWriter}, new(MockFileWriter), &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.GenerateRegistryParams{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "protobuf")
		assert.Contains(t, err.Error(), "go")
		source.AssertNotCalled(t, "ListExports", ctx)
	})

	t.Run("no formats configured", func(t *testing.T) {
		uc := usecase.NewGenerateRegistry(testConfig(), newBuild(t),
			nil, new(MockFileWriter), &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.GenerateRegistryParams{})
		require.Error(t, err)
	})

	t.Run("write failure propagates", func(t *testing.T) {
		goWriter := &MockArtifactWriter{format: "go", file: "registry.go"}
		goWriter.On("Render", ctx, mock.Anything, mock.Anything).Return([]byte("x"), nil)

		cfg := testConfig()
		cfg.ProjectRoot = "/project"
		cfg.Gen.OutDir = "gen"
		cfg.Gen.Formats = []string{"go"}

		files := new(MockFileWriter)
		files.On("EnsureDirectory", ctx, mock.Anything).Return(nil)
		files.On("WriteFile", ctx, mock.Anything, mock.Anything).Return(assert.AnError)

		uc := usecase.NewGenerateRegistry(cfg, newBuild(t),
			[]usecase.ArtifactWriter{goWriter}, files, &MockProgressSink{})
		_, err := uc.Run(ctx, usecase.GenerateRegistryParams{})

		require.Error(t, err)
		assert.ErrorIs(t, err, assert.AnError)
	})
}
