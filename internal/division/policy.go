package division

import (
	"fmt"

	"github.com/Iron-Ham/leagueroster/internal/errors"
)

// NumberRange is an inclusive range of allowed jersey numbers.
type NumberRange struct {
	Min int
	Max int
}

// Contains reports whether n lies within the range.
func (r NumberRange) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// String returns the range as "1-99".
func (r NumberRange) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// PolicyBundle is the immutable rule set for one division: registration fee,
// roster bounds, allowed jersey numbers and match format.
//
// Fields are unexported so a bundle cannot be altered once produced; two
// bundles with the same rules compare equal with ==.
type PolicyBundle struct {
	fee           Money
	minRoster     int
	maxRoster     int
	numbers       NumberRange
	matchMinutes  int
	unlimitedSubs bool
}

// RegistrationFee returns the fee a team pays to enter the division.
func (p PolicyBundle) RegistrationFee() Money {
	return p.fee
}

// MinRosterSize returns the smallest legal roster.
func (p PolicyBundle) MinRosterSize() int {
	return p.minRoster
}

// MaxRosterSize returns the largest legal roster.
func (p PolicyBundle) MaxRosterSize() int {
	return p.maxRoster
}

// NumberIsAllowed reports whether n is a legal jersey number in the division.
func (p PolicyBundle) NumberIsAllowed(n int) bool {
	return p.numbers.Contains(n)
}

// AllowedNumbers returns the inclusive jersey number range.
func (p PolicyBundle) AllowedNumbers() NumberRange {
	return p.numbers
}

// MatchDurationMinutes returns the regulation match length.
func (p PolicyBundle) MatchDurationMinutes() int {
	return p.matchMinutes
}

// AllowsUnlimitedSubstitutions reports whether rolling substitutions are allowed.
func (p PolicyBundle) AllowsUnlimitedSubstitutions() bool {
	return p.unlimitedSubs
}

// RosterSizeAllowed reports whether size lies within the roster bounds.
func (p PolicyBundle) RosterSizeAllowed(size int) bool {
	return size >= p.minRoster && size <= p.maxRoster
}

// IsZero reports whether the bundle was never produced by a division.
func (p PolicyBundle) IsZero() bool {
	return p == PolicyBundle{}
}

// Validate checks the structural invariants every bundle must satisfy.
func (p PolicyBundle) Validate() error {
	if p.minRoster < 1 {
		return errors.NewValidationError("minimum roster size must be at least 1").
			WithField("min_roster_size").
			WithValue(p.minRoster)
	}
	if p.maxRoster < p.minRoster {
		return errors.NewValidationError("maximum roster size must not be below the minimum").
			WithField("max_roster_size").
			WithValue(p.maxRoster)
	}
	if p.numbers.Max < p.numbers.Min {
		return errors.NewValidationError("allowed jersey numbers must form a non-empty range").
			WithField("allowed_numbers").
			WithValue(p.numbers.String())
	}
	if p.fee < 0 {
		return errors.NewValidationError("registration fee must be non-negative").
			WithField("registration_fee").
			WithValue(p.fee.String())
	}
	return nil
}
