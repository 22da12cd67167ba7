package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/regforge/internal/adapters/codegen"
	"github.com/trebuchet-org/regforge/internal/adapters/fs"
	"github.com/trebuchet-org/regforge/internal/adapters/interactive"
	"github.com/trebuchet-org/regforge/internal/usecase"
)

// ProvideArtifactWriters provides the artifact writers for every supported
// output format
func ProvideArtifactWriters(
	goWriter *codegen.GoWriterAdapter,
	jsonWriter *codegen.JSONWriterAdapter,
	yamlWriter *codegen.YAMLWriterAdapter,
) []usecase.ArtifactWriter {
	return []usecase.ArtifactWriter{goWriter, jsonWriter, yamlWriter}
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewExportDirAdapter,
	wire.Bind(new(usecase.ExportSource), new(*fs.ExportDirAdapter)),

	fs.NewFileWriterAdapter,
	wire.Bind(new(usecase.FileWriter), new(*fs.FileWriterAdapter)),

	fs.NewLocalConfigStoreAdapter,
	wire.Bind(new(usecase.LocalConfigStore), new(*fs.LocalConfigStoreAdapter)),
)

// CodegenSet provides the artifact writers
var CodegenSet = wire.NewSet(
	codegen.NewGoWriterAdapter,
	codegen.NewJSONWriterAdapter,
	codegen.NewYAMLWriterAdapter,
	ProvideArtifactWriters,
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewPickerAdapter,
	wire.Bind(new(usecase.ContractPicker), new(*interactive.PickerAdapter)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	CodegenSet,
	InteractiveSet,
)
