// Package errors provides the error kinds raised while assembling and
// registering league teams, plus classification helpers shared by the CLI.
//
// # Error Types
//
// Four semantic error types cover every failure the team-construction
// subsystem can report:
//   - ConfigurationError: a builder was used before required setup was done
//   - ValidationError: a value violates a division policy or roster invariant
//   - NotFoundError: a catalog or division lookup missed
//   - DuplicateNameError: a team name is already registered for the season
//
// Each type carries the offending value so callers can diagnose the failure
// without parsing messages.
//
// # Usage
//
//	err := errors.NewValidationError("jersey number not allowed for division").
//		WithField("jersey_number").
//		WithValue(150).
//		WithCause(errors.ErrNumberNotAllowed)
//
//	var ve *errors.ValidationError
//	if errors.As(err, &ve) { ... }
//	if errors.Is(err, errors.ErrNumberNotAllowed) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityDebug is for errors that are useful for debugging but not critical.
	SeverityDebug Severity = iota
	// SeverityInfo is for informational errors that don't indicate a problem.
	SeverityInfo
	// SeverityWarning is for errors caused by caller input.
	SeverityWarning
	// SeverityError is for errors that indicate a real problem.
	SeverityError
	// SeverityCritical is for errors that require immediate attention.
	SeverityCritical
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Builder sentinel errors
var (
	// ErrDivisionNotSelected indicates a roster operation ran before a division was chosen.
	ErrDivisionNotSelected = New("division not selected")
	// ErrMissingField indicates a mandatory team attribute was never set.
	ErrMissingField = New("required field missing")
)

// Roster rule sentinel errors
var (
	// ErrNumberNotAllowed indicates a jersey number outside the division range.
	ErrNumberNotAllowed = New("jersey number not allowed")
	// ErrRosterSize indicates a roster outside the division size bounds.
	ErrRosterSize = New("roster size out of bounds")
	// ErrDuplicateJersey indicates two players share a jersey number.
	ErrDuplicateJersey = New("duplicate jersey number")
)

// Lookup and registration sentinel errors
var (
	// ErrTemplateNotFound indicates an unknown catalog template key.
	ErrTemplateNotFound = New("template not found")
	// ErrDivisionNotFound indicates an unknown division name.
	ErrDivisionNotFound = New("division not found")
	// ErrTeamNameTaken indicates a team name already registered for the season.
	ErrTeamNameTaken = New("team name already registered")
)

// General sentinel errors
var (
	// ErrInvalidInput indicates that input validation failed.
	ErrInvalidInput = New("invalid input")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// LeagueError is the base interface for all league errors.
type LeagueError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Is reports whether this error matches the target error.
	Is(target error) bool

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool
}

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// formatWithParts renders "<prefix> [k=v, ...]: message[: cause]".
func (e *baseError) formatWithParts(prefix string, parts []string) string {
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Semantic Errors
// -----------------------------------------------------------------------------

// ConfigurationError reports a builder used before its required setup was
// complete, such as adding players before choosing a division.
//
// Example:
//
//	err := errors.NewConfigurationError("team name is required").WithField("name")
//	fmt.Println(err) // "configuration error [field=name]: team name is required"
type ConfigurationError struct {
	baseError
	Field string
}

// NewConfigurationError creates a new ConfigurationError.
func NewConfigurationError(message string) *ConfigurationError {
	return &ConfigurationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityError,
			userFacing: true,
		},
	}
}

// WithField names the missing setting.
func (e *ConfigurationError) WithField(field string) *ConfigurationError {
	e.Field = field
	return e
}

// WithCause adds a cause to the error.
func (e *ConfigurationError) WithCause(cause error) *ConfigurationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ConfigurationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	return e.formatWithParts("configuration error", parts)
}

// Is checks if this error matches the target.
func (e *ConfigurationError) Is(target error) bool {
	if _, ok := target.(*ConfigurationError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ValidationError represents a value rejected by a division policy or by a
// roster invariant.
//
// Example:
//
//	err := errors.NewValidationError("roster size out of bounds")
//	err = err.WithField("roster").WithValue(6)
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
		},
	}
}

// WithField adds a field name to the error context.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue adds the invalid value to the error context.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause adds a cause to the error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *ValidationError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, fmt.Sprintf("field=%s", e.Field))
	}
	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}
	return e.formatWithParts("validation error", parts)
}

// Is checks if this error matches the target.
func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	if errors.Is(target, ErrInvalidInput) {
		return true
	}
	return e.baseError.Is(target)
}

// NotFoundError represents a resource that could not be found.
//
// Example:
//
//	err := errors.NewNotFoundError("team template", "adult-base")
//	fmt.Println(err) // "team template 'adult-base' not found"
type NotFoundError struct {
	baseError
	ResourceType string
	ResourceID   string
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(resourceType, resourceID string) *NotFoundError {
	return &NotFoundError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' not found", resourceType, resourceID),
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		ResourceID:   resourceID,
	}
}

// WithCause adds a cause to the error.
func (e *NotFoundError) WithCause(cause error) *NotFoundError {
	e.cause = cause
	return e
}

// Error returns the formatted error message.
func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s '%s' not found: %v", e.ResourceType, e.ResourceID, e.cause)
	}
	return fmt.Sprintf("%s '%s' not found", e.ResourceType, e.ResourceID)
}

// Is checks if this error matches the target.
func (e *NotFoundError) Is(target error) bool {
	if _, ok := target.(*NotFoundError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// DuplicateNameError represents a team name that is already registered.
//
// Example:
//
//	err := errors.NewDuplicateNameError("team", "Leones FC").WithSeason("2026A")
//	fmt.Println(err) // "team 'Leones FC' already registered for season 2026A"
type DuplicateNameError struct {
	baseError
	ResourceType string
	Name         string
	Season       string
}

// NewDuplicateNameError creates a new DuplicateNameError.
func NewDuplicateNameError(resourceType, name string) *DuplicateNameError {
	return &DuplicateNameError{
		baseError: baseError{
			message:    fmt.Sprintf("%s '%s' already registered", resourceType, name),
			cause:      ErrTeamNameTaken,
			severity:   SeverityWarning,
			userFacing: true,
		},
		ResourceType: resourceType,
		Name:         name,
	}
}

// WithSeason records the season the name collided in.
func (e *DuplicateNameError) WithSeason(season string) *DuplicateNameError {
	e.Season = season
	return e
}

// Error returns the formatted error message.
func (e *DuplicateNameError) Error() string {
	if e.Season != "" {
		return fmt.Sprintf("%s '%s' already registered for season %s", e.ResourceType, e.Name, e.Season)
	}
	return fmt.Sprintf("%s '%s' already registered", e.ResourceType, e.Name)
}

// Is checks if this error matches the target.
func (e *DuplicateNameError) Is(target error) bool {
	if _, ok := target.(*DuplicateNameError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// -----------------------------------------------------------------------------
// Error Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
//
// Example:
//
//	if errors.IsUserFacing(err) {
//	    fmt.Fprintln(os.Stderr, err)
//	} else {
//	    logger.Error("internal error", "error", err)
//	}
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var leagueErr LeagueError
	if As(err, &leagueErr) {
		return leagueErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement LeagueError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityDebug
	}

	var leagueErr LeagueError
	if As(err, &leagueErr) {
		return leagueErr.Severity()
	}

	return SeverityError
}

// IsSemanticError returns true if the error is one of the league error kinds
// (ConfigurationError, ValidationError, NotFoundError, DuplicateNameError).
func IsSemanticError(err error) bool {
	if err == nil {
		return false
	}

	var configuration *ConfigurationError
	var validation *ValidationError
	var notFound *NotFoundError
	var duplicate *DuplicateNameError

	return As(err, &configuration) || As(err, &validation) ||
		As(err, &notFound) || As(err, &duplicate)
}

// Kind returns a short label for the error kind, used in CLI summaries and
// structured log attributes.
func Kind(err error) string {
	var configuration *ConfigurationError
	var validation *ValidationError
	var notFound *NotFoundError
	var duplicate *DuplicateNameError

	switch {
	case err == nil:
		return ""
	case As(err, &configuration):
		return "configuration"
	case As(err, &validation):
		return "validation"
	case As(err, &notFound):
		return "not_found"
	case As(err, &duplicate):
		return "duplicate_name"
	default:
		return "internal"
	}
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
// Unlike fmt.Errorf with %w, nil stays nil.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to build team")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
//
// Example:
//
//	err := errors.Wrapf(baseErr, "team %q", name)
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
