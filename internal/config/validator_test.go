package config

import (
	"os"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := ValidationError{
		Field:   "registration.max_parallel",
		Value:   0,
		Message: "must be between 1 and 64",
	}

	want := "registration.max_parallel: must be between 1 and 64 (got: 0)"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestValidationErrors_Error(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if got := (ValidationErrors{}).Error(); got != "" {
			t.Errorf("Error() = %q, want empty", got)
		}
	})

	t.Run("single", func(t *testing.T) {
		errs := ValidationErrors{{Field: "a", Value: 1, Message: "bad"}}
		if got := errs.Error(); got != "a: bad (got: 1)" {
			t.Errorf("Error() = %q", got)
		}
	})

	t.Run("multiple", func(t *testing.T) {
		errs := ValidationErrors{
			{Field: "a", Value: 1, Message: "bad"},
			{Field: "b", Value: 2, Message: "worse"},
		}
		got := errs.Error()
		if !strings.HasPrefix(got, "2 validation errors:") {
			t.Errorf("Error() = %q, want count prefix", got)
		}
		if !strings.Contains(got, "1. a: bad") || !strings.Contains(got, "2. b: worse") {
			t.Errorf("Error() = %q, want numbered entries", got)
		}
	})
}

func TestConfig_Validate_League(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		field   string
		wantErr bool
	}{
		{"default", func(c *Config) {}, "", false},
		{"empty season", func(c *Config) { c.League.Season = "  " }, "league.season", true},
		{"season with space", func(c *Config) { c.League.Season = "2026 A" }, "league.season", true},
		{"season too long", func(c *Config) { c.League.Season = strings.Repeat("9", 33) }, "league.season", true},
		{"eur", func(c *Config) { c.League.Currency = "EUR" }, "", false},
		{"bad currency", func(c *Config) { c.League.Currency = "dollars" }, "league.currency", true},
		{"empty currency", func(c *Config) { c.League.Currency = "" }, "league.currency", true},
		{"spanish locale", func(c *Config) { c.League.Locale = "es-AR" }, "", false},
		{"bad locale", func(c *Config) { c.League.Locale = "!!" }, "league.locale", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assertFieldError(t, cfg.Validate(), tt.field, tt.wantErr)
		})
	}
}

func TestConfig_Validate_Registration(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		field   string
		wantErr bool
	}{
		{"min parallel", func(c *Config) { c.Registration.MaxParallel = 1 }, "", false},
		{"max parallel", func(c *Config) { c.Registration.MaxParallel = MaxParallelLimit }, "", false},
		{"zero parallel", func(c *Config) { c.Registration.MaxParallel = 0 }, "registration.max_parallel", true},
		{"too parallel", func(c *Config) { c.Registration.MaxParallel = MaxParallelLimit + 1 }, "registration.max_parallel", true},
		{"negative debounce", func(c *Config) { c.Registration.WatchDebounceMs = -1 }, "registration.watch_debounce_ms", true},
		{"huge debounce", func(c *Config) { c.Registration.WatchDebounceMs = 60_000 }, "registration.watch_debounce_ms", true},
		{"manifest path", func(c *Config) { c.Registration.Manifest = "league.yaml" }, "", false},
		{"manifest null byte", func(c *Config) { c.Registration.Manifest = "a\x00b" }, "registration.manifest", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assertFieldError(t, cfg.Validate(), tt.field, tt.wantErr)
		})
	}
}

func TestConfig_Validate_Logging(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		field   string
		wantErr bool
	}{
		{"debug", func(c *Config) { c.Logging.Level = "debug" }, "", false},
		{"empty level", func(c *Config) { c.Logging.Level = "" }, "", false},
		{"uppercase level", func(c *Config) { c.Logging.Level = "INFO" }, "logging.level", true},
		{"unknown level", func(c *Config) { c.Logging.Level = "verbose" }, "logging.level", true},
		{"long dir", func(c *Config) { c.Logging.Dir = "/" + strings.Repeat("d", maxPathLength) }, "logging.dir", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assertFieldError(t, cfg.Validate(), tt.field, tt.wantErr)
		})
	}
}

func TestConfig_Validate_MultipleErrors(t *testing.T) {
	cfg := Default()
	cfg.League.Season = ""
	cfg.Registration.MaxParallel = -3
	cfg.Logging.Level = "loud"

	if errs := cfg.Validate(); len(errs) != 3 {
		t.Errorf("Validate() returned %d errors, want 3: %v", len(errs), errs)
	}
}

func TestValidLogLevels(t *testing.T) {
	if got := strings.Join(ValidLogLevels(), ","); got != "debug,info,warn,error" {
		t.Errorf("ValidLogLevels() = %s", got)
	}
}

func assertFieldError(t *testing.T, errs []ValidationError, field string, wantErr bool) {
	t.Helper()
	if !wantErr {
		if len(errs) != 0 {
			t.Errorf("unexpected errors: %v", errs)
		}
		return
	}
	for _, e := range errs {
		if e.Field == field {
			return
		}
	}
	t.Errorf("expected error on %s, got %v", field, errs)
}
