package config

const (
	defaultConfigPath    = "~/.config/mxfkit/config.toml"
	defaultProjectConfig = "mxfkit.toml"
	defaultCatalogPath   = "~/.local/share/mxfkit/essence.db"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultOutputFormat  = "table"
	defaultOutputStyle   = "rounded"
	defaultOutputColor   = "auto"
	envPrefix            = "MXFKIT_"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Output: Output{
			Format: defaultOutputFormat,
			Style:  defaultOutputStyle,
			Color:  defaultOutputColor,
		},
		Catalog: Catalog{
			Path: defaultCatalogPath,
		},
	}
}
