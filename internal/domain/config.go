package domain

// Config is the application configuration merged from the global and
// working-directory TOML files.
type Config struct {
	Store StoreConfig `toml:"store"`
	Owner OwnerConfig `toml:"owner"`
	Log   LogConfig   `toml:"log"`
}

// StoreConfig configures the persistence layer.
type StoreConfig struct {
	// Path to the JSON store file. Empty means <data dir>/pawpal.json.
	Path string `toml:"path"`
}

// OwnerConfig configures owner defaults.
type OwnerConfig struct {
	// DefaultDailyMinutes is used when an owner is added without an
	// explicit daily time budget.
	DefaultDailyMinutes int `toml:"default_daily_minutes"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
}

// DefaultDailyMinutes is the fallback daily time budget.
const DefaultDailyMinutes = 120

// NewDefaultConfig returns the configuration used when no config file exists.
func NewDefaultConfig() *Config {
	return &Config{
		Owner: OwnerConfig{DefaultDailyMinutes: DefaultDailyMinutes},
		Log:   LogConfig{Level: "info"},
	}
}
