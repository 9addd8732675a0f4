package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Config represents the complete league tool configuration.
type Config struct {
	League       LeagueConfig       `mapstructure:"league"`
	Registration RegistrationConfig `mapstructure:"registration"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// LeagueConfig identifies the season and how money is displayed.
type LeagueConfig struct {
	// Season is the registration season, e.g. "2026A" (default: "2026A")
	Season string `mapstructure:"season"`
	// Currency is the ISO 4217 code registration fees are shown in (default: "USD")
	Currency string `mapstructure:"currency"`
	// Locale is the BCP 47 tag used to format fees (default: "en-US")
	Locale string `mapstructure:"locale"`
}

// RegistrationConfig controls bulk registration from a manifest.
type RegistrationConfig struct {
	// MaxParallel bounds how many teams are built and registered at once (default: 4)
	MaxParallel int `mapstructure:"max_parallel"`
	// Manifest is the manifest used when a command gets no path argument
	Manifest string `mapstructure:"manifest"`
	// WatchDebounceMs coalesces bursts of file events when watching templates (default: 200)
	WatchDebounceMs int `mapstructure:"watch_debounce_ms"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the log level: "debug", "info", "warn", "error" (default: "info")
	Level string `mapstructure:"level"`
	// Dir is where league.log is written; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		League: LeagueConfig{
			Season:   "2026A",
			Currency: "USD",
			Locale:   "en-US",
		},
		Registration: RegistrationConfig{
			MaxParallel:     4,
			Manifest:        "",
			WatchDebounceMs: 200,
		},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
	}
}

// CurrencyUnit returns the configured currency, or USD if it does not parse.
func (c LeagueConfig) CurrencyUnit() currency.Unit {
	unit, err := currency.ParseISO(c.Currency)
	if err != nil {
		return currency.USD
	}
	return unit
}

// LanguageTag returns the configured locale, or American English if it does
// not parse.
func (c LeagueConfig) LanguageTag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

// WatchDebounce returns the debounce window as a time.Duration.
func (c RegistrationConfig) WatchDebounce() time.Duration {
	return time.Duration(c.WatchDebounceMs) * time.Millisecond
}

// SetDefaults registers default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("league.season", defaults.League.Season)
	viper.SetDefault("league.currency", defaults.League.Currency)
	viper.SetDefault("league.locale", defaults.League.Locale)

	viper.SetDefault("registration.max_parallel", defaults.Registration.MaxParallel)
	viper.SetDefault("registration.manifest", defaults.Registration.Manifest)
	viper.SetDefault("registration.watch_debounce_ms", defaults.Registration.WatchDebounceMs)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load reads the configuration from viper into a Config struct and validates it.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom is Load against a specific viper instance.
func LoadFrom(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when the
// loaded one is invalid.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the path to the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "league")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".league"
	}
	return filepath.Join(home, ".config", "league")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
