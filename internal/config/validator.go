package config

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Field   string // The config field path (e.g., "registration.max_parallel")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d validation errors:\n", len(e))
	for i, err := range e {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, err.Error())
	}
	return sb.String()
}

// Bounds for numeric settings.
const (
	MaxParallelLimit   = 64
	maxSeasonLength    = 32
	maxWatchDebounceMs = 10_000
	maxPathLength      = 4096
)

// ValidLogLevels returns the list of valid log levels.
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config and returns every problem found.
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError
	errors = append(errors, c.validateLeague()...)
	errors = append(errors, c.validateRegistration()...)
	errors = append(errors, c.validateLogging()...)
	return errors
}

func (c *Config) validateLeague() []ValidationError {
	var errors []ValidationError

	season := c.League.Season
	switch {
	case strings.TrimSpace(season) == "":
		errors = append(errors, ValidationError{
			Field:   "league.season",
			Value:   season,
			Message: "must not be empty",
		})
	case strings.ContainsAny(season, " \t\r\n"):
		errors = append(errors, ValidationError{
			Field:   "league.season",
			Value:   season,
			Message: "must not contain whitespace",
		})
	case len(season) > maxSeasonLength:
		errors = append(errors, ValidationError{
			Field:   "league.season",
			Value:   season,
			Message: fmt.Sprintf("exceeds maximum length of %d characters", maxSeasonLength),
		})
	}

	if _, err := currency.ParseISO(c.League.Currency); err != nil {
		errors = append(errors, ValidationError{
			Field:   "league.currency",
			Value:   c.League.Currency,
			Message: "must be an ISO 4217 currency code",
		})
	}

	if _, err := language.Parse(c.League.Locale); err != nil {
		errors = append(errors, ValidationError{
			Field:   "league.locale",
			Value:   c.League.Locale,
			Message: "must be a BCP 47 language tag",
		})
	}

	return errors
}

func (c *Config) validateRegistration() []ValidationError {
	var errors []ValidationError

	if c.Registration.MaxParallel < 1 || c.Registration.MaxParallel > MaxParallelLimit {
		errors = append(errors, ValidationError{
			Field:   "registration.max_parallel",
			Value:   c.Registration.MaxParallel,
			Message: fmt.Sprintf("must be between 1 and %d", MaxParallelLimit),
		})
	}

	if c.Registration.WatchDebounceMs < 0 || c.Registration.WatchDebounceMs > maxWatchDebounceMs {
		errors = append(errors, ValidationError{
			Field:   "registration.watch_debounce_ms",
			Value:   c.Registration.WatchDebounceMs,
			Message: fmt.Sprintf("must be between 0 and %d", maxWatchDebounceMs),
		})
	}

	errors = append(errors, validatePath("registration.manifest", c.Registration.Manifest)...)
	return errors
}

func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	errors = append(errors, validatePath("logging.dir", c.Logging.Dir)...)
	return errors
}

// validatePath checks an optional filesystem path.
func validatePath(field, path string) []ValidationError {
	if path == "" {
		return nil
	}

	var errors []ValidationError
	if strings.ContainsRune(path, '\x00') {
		errors = append(errors, ValidationError{
			Field:   field,
			Value:   path,
			Message: "path contains invalid null character",
		})
	}
	if len(path) > maxPathLength {
		errors = append(errors, ValidationError{
			Field:   field,
			Value:   path,
			Message: fmt.Sprintf("path exceeds maximum length of %d characters", maxPathLength),
		})
	}
	return errors
}
