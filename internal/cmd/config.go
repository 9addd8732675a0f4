package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/leagueroster/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify league configuration",
	Long: `View or modify league configuration.

Without arguments, displays the current configuration.
Use subcommands to modify settings or create a config file.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  league config set league.season 2027A
  league config set registration.max_parallel 8

Valid keys:
  league.season                  - Season teams are registered for
  league.currency                - ISO 4217 code fees are shown in
  league.locale                  - BCP 47 tag used to format fees
  registration.max_parallel      - Teams registered concurrently (1-64)
  registration.manifest          - Default manifest path
  registration.watch_debounce_ms - Reload delay when watching templates
  logging.level                  - debug, info, warn or error
  logging.dir                    - Directory for league.log (empty = stderr)`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/league/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

// settableKeys maps each key accepted by "config set" to its value kind.
var settableKeys = map[string]string{
	"league.season":                  "string",
	"league.currency":                "string",
	"league.locale":                  "string",
	"registration.max_parallel":      "int",
	"registration.manifest":          "string",
	"registration.watch_debounce_ms": "int",
	"logging.level":                  "string",
	"logging.dir":                    "string",
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "league:")
	fmt.Fprintf(out, "  season: %s\n", cfg.League.Season)
	fmt.Fprintf(out, "  currency: %s\n", cfg.League.Currency)
	fmt.Fprintf(out, "  locale: %s\n", cfg.League.Locale)

	fmt.Fprintln(out, "registration:")
	fmt.Fprintf(out, "  max_parallel: %d\n", cfg.Registration.MaxParallel)
	fmt.Fprintf(out, "  manifest: %s\n", cfg.Registration.Manifest)
	fmt.Fprintf(out, "  watch_debounce_ms: %d\n", cfg.Registration.WatchDebounceMs)

	fmt.Fprintln(out, "logging:")
	fmt.Fprintf(out, "  level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  dir: %s\n", cfg.Logging.Dir)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	kind, ok := settableKeys[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'league config set --help' to see valid keys", key)
	}

	var typedValue any = value
	if kind == "int" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: expected integer", key)
		}
		typedValue = n
	}

	// validate against the full config before writing anything
	viper.Set(key, typedValue)
	if _, err := config.Load(); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	configFile := config.ConfigFile()
	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}

const defaultConfigContent = `# League Configuration

league:
  # Season teams are registered for
  season: 2026A
  # Currency registration fees are shown in (ISO 4217)
  currency: USD
  # Locale used to format fees (BCP 47)
  locale: en-US

registration:
  # Teams built and registered concurrently (1-64)
  max_parallel: 4
  # Manifest used when "league register" gets no argument
  manifest: ""
  # Delay before reloading a watched manifest, in milliseconds
  watch_debounce_ms: 200

logging:
  # debug, info, warn or error
  level: info
  # Directory for league.log; empty logs to stderr
  dir: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := config.ConfigFile()

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'league config set' to modify values", configFile)
	}
	if err := os.MkdirAll(config.ConfigDir(), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(configFile, []byte(defaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", config.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", filepath.Join(config.ConfigDir(), "config.yaml"))
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintf(out, "\nEnvironment variables: LEAGUE_* (e.g., %s)\n", envName("registration.max_parallel"))
	return nil
}

func envName(key string) string {
	return "LEAGUE_" + strings.ToUpper(strings.NewReplacer(".", "_").Replace(key))
}
