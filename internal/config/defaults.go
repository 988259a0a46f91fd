package config

const (
	defaultConfigPath     = "~/.config/mkvedit/config.toml"
	projectConfigName     = "mkvedit.toml"
	defaultMkvmergeBinary = "mkvmerge"
	defaultOutputSuffix   = "_modified"
	defaultLanguage       = "en"
	defaultColor          = ColorAuto
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
)

// Colour modes accepted by ui.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Mkvmerge: Mkvmerge{
			Binary: defaultMkvmergeBinary,
		},
		Output: Output{
			Suffix:    defaultOutputSuffix,
			Preflight: true,
		},
		UI: UI{
			Language: defaultLanguage,
			Color:    defaultColor,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
