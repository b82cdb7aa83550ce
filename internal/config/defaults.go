package config

const (
	defaultDataDir         = "~/.local/share/logdeck"
	defaultLogDir          = "~/.local/share/logdeck/logs"
	defaultAPIBind         = "127.0.0.1:7411"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultTemplate        = "default"
	defaultPageSize        = 500
	defaultTailPollSeconds = 2
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
			APIBind: defaultAPIBind,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Logs: Logs{
			DefaultTemplate: defaultTemplate,
			PageSize:        defaultPageSize,
			TailPollSeconds: defaultTailPollSeconds,
		},
	}
}
