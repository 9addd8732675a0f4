// Package division defines the league's fixed set of divisions and the
// policy bundle each one imposes on team registration.
//
// The variant set is closed: [Division] is a string-backed enumeration and
// [Policies] is a pure mapping from a variant to its [PolicyBundle]. The
// values in the table are part of the league's published rules.
//
//	| Division         | Fee   | Roster | Numbers | Minutes | Unlimited subs |
//	|------------------|-------|--------|---------|---------|----------------|
//	| Standard-Adult-A | 50.00 | 11-25  | 1-99    | 80      | no             |
//	| Standard-Adult-B | 45.00 | 9-22   | 1-30    | 70      | yes            |
//	| Youth            | 20.00 | 7-20   | 1-50    | 60      | yes            |
//	| Masters          | 35.00 | 9-22   | 1-99    | 70      | yes            |
package division

import (
	"strings"

	"github.com/Iron-Ham/leagueroster/internal/errors"
)

// Provider supplies the rules and display name of a division. [Division]
// satisfies it; the roster builder depends only on this contract.
type Provider interface {
	CreatePolicies() PolicyBundle
	Name() string
}

// Division identifies one competition category.
type Division string

const (
	// StandardAdultA is the first adult division.
	StandardAdultA Division = "standard-adult-a"

	// StandardAdultB is the second adult division, with a tighter number range.
	StandardAdultB Division = "standard-adult-b"

	// Youth is the junior division.
	Youth Division = "youth"

	// Masters is the veterans division.
	Masters Division = "masters"
)

// All returns every division in display order.
func All() []Division {
	return []Division{StandardAdultA, StandardAdultB, Youth, Masters}
}

// String returns the division key.
func (d Division) String() string {
	return string(d)
}

// IsValid returns true if this is a recognized division.
func (d Division) IsValid() bool {
	switch d {
	case StandardAdultA, StandardAdultB, Youth, Masters:
		return true
	default:
		return false
	}
}

// Name returns the division's display label.
func (d Division) Name() string {
	switch d {
	case StandardAdultA:
		return "Standard-Adult-A"
	case StandardAdultB:
		return "Standard-Adult-B"
	case Youth:
		return "Youth"
	case Masters:
		return "Masters"
	default:
		return string(d)
	}
}

// CreatePolicies returns the division's rule bundle. An unrecognized value
// yields the zero bundle, which every roster check rejects.
func (d Division) CreatePolicies() PolicyBundle {
	p, _ := Policies(d)
	return p
}

// Policies maps a division to its rule bundle.
func Policies(d Division) (PolicyBundle, error) {
	switch d {
	case StandardAdultA:
		return PolicyBundle{
			fee:           Cents(5000),
			minRoster:     11,
			maxRoster:     25,
			numbers:       NumberRange{Min: 1, Max: 99},
			matchMinutes:  80,
			unlimitedSubs: false,
		}, nil
	case StandardAdultB:
		return PolicyBundle{
			fee:           Cents(4500),
			minRoster:     9,
			maxRoster:     22,
			numbers:       NumberRange{Min: 1, Max: 30},
			matchMinutes:  70,
			unlimitedSubs: true,
		}, nil
	case Youth:
		return PolicyBundle{
			fee:           Cents(2000),
			minRoster:     7,
			maxRoster:     20,
			numbers:       NumberRange{Min: 1, Max: 50},
			matchMinutes:  60,
			unlimitedSubs: true,
		}, nil
	case Masters:
		return PolicyBundle{
			fee:           Cents(3500),
			minRoster:     9,
			maxRoster:     22,
			numbers:       NumberRange{Min: 1, Max: 99},
			matchMinutes:  70,
			unlimitedSubs: true,
		}, nil
	default:
		return PolicyBundle{}, errors.NewNotFoundError("division", string(d)).
			WithCause(errors.ErrDivisionNotFound)
	}
}

// Parse resolves a division from its key or display label, ignoring case.
func Parse(s string) (Division, error) {
	needle := strings.TrimSpace(s)
	for _, d := range All() {
		if strings.EqualFold(needle, string(d)) || strings.EqualFold(needle, d.Name()) {
			return d, nil
		}
	}
	return "", errors.NewNotFoundError("division", s).WithCause(errors.ErrDivisionNotFound)
}

// Keys returns the division keys, for help text and config validation.
func Keys() []string {
	all := All()
	keys := make([]string, len(all))
	for i, d := range all {
		keys[i] = string(d)
	}
	return keys
}
