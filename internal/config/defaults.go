package config

const (
	defaultConfigPath    = "~/.config/mediameta/config.toml"
	defaultFFprobeBinary = "ffprobe"
	defaultProbeTimeout  = 30
	defaultConcurrency   = 4
	maxConcurrency       = 64
	defaultRounding      = "none"
	defaultSizeUnit      = "byte"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	ffprobeBinaryEnvVar  = "FFPROBE_BINARY"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		FFprobe: FFprobe{
			Binary:         defaultFFprobeBinary,
			TimeoutSeconds: defaultProbeTimeout,
			Concurrency:    defaultConcurrency,
		},
		Display: Display{
			Rounding: defaultRounding,
			SizeUnit: defaultSizeUnit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
