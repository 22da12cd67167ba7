package config

// LocalConfig represents the local regforge configuration stored in
// .regforge/config.local.json. The JSON keys match the viper keys, so
// saved values feed straight into the runtime configuration.
type LocalConfig struct {
	Profile   string `json:"profile,omitempty"`
	ExportDir string `json:"dir,omitempty"`
	OutDir    string `json:"out,omitempty"`
}

// ConfigKey represents a configuration key
type ConfigKey string

const (
	ConfigKeyProfile   ConfigKey = "profile"
	ConfigKeyExportDir ConfigKey = "dir"
	ConfigKeyOutDir    ConfigKey = "out"
)

// DefaultLocalConfig returns the default local configuration
func DefaultLocalConfig() *LocalConfig {
	return &LocalConfig{}
}

// ValidConfigKeys returns all valid configuration keys
func ValidConfigKeys() []ConfigKey {
	return []ConfigKey{
		ConfigKeyProfile,
		ConfigKeyExportDir,
		ConfigKeyOutDir,
	}
}

// IsValidConfigKey checks if a key is valid
func IsValidConfigKey(key string) bool {
	for _, validKey := range ValidConfigKeys() {
		if string(validKey) == key || (key == "exports" && validKey == ConfigKeyExportDir) {
			return true
		}
	}
	return false
}

// NormalizeConfigKey normalizes a config key (e.g., "exports" -> "dir")
func NormalizeConfigKey(key string) ConfigKey {
	if key == "exports" {
		return ConfigKeyExportDir
	}
	return ConfigKey(key)
}
