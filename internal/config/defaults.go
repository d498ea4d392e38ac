package config

const (
	defaultConfigPath         = "~/.config/wphelper/config.toml"
	projectConfigName         = "wphelper.toml"
	defaultWpctlBinary        = "wpctl"
	defaultNicknames          = true
	defaultLockEnabled        = true
	defaultLockFileName       = "wphelper.lock"
	defaultLockTimeoutSeconds = 5
	defaultColorMode          = ColorAuto
	defaultLogFormat          = "console"
	defaultLogLevel           = "warn"
)

// Colour modes accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Wpctl: Wpctl{
			Binary:    defaultWpctlBinary,
			Nicknames: defaultNicknames,
		},
		Lock: Lock{
			Enabled:        defaultLockEnabled,
			TimeoutSeconds: defaultLockTimeoutSeconds,
		},
		Output: Output{
			Color: defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
