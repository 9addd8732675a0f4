package roster

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/leagueroster/internal/division"
	"github.com/Iron-Ham/leagueroster/internal/errors"
)

// Builder assembles a Team in stages. Setters may be called in any order and
// chain; AddPlayer checks each addition against the selected division, and
// Build runs the whole-roster checks.
//
// A Builder is owned by a single goroutine. It stays usable after a failed
// Build so the caller can correct it and try again.
type Builder struct {
	name     string
	coach    string
	captain  string
	color    string
	provider division.Provider
	policies division.PolicyBundle
	rulesErr error // set when the provider yields no usable policies
	players  []Player
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// ForDivision selects the division and captures its rules. Selecting another
// division later replaces the rules but keeps the players already added.
//
// A provider whose policies fail validation (an unknown Division value, for
// one) leaves the builder without rules: AddPlayer and Build then report a
// ConfigurationError.
func (b *Builder) ForDivision(p division.Provider) *Builder {
	b.provider = p
	b.policies = division.PolicyBundle{}
	b.rulesErr = nil
	if p == nil {
		return b
	}
	policies := p.CreatePolicies()
	if err := policies.Validate(); err != nil {
		b.rulesErr = err
		return b
	}
	b.policies = policies
	return b
}

// Name sets the team name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Coach sets the head coach.
func (b *Builder) Coach(coach string) *Builder {
	b.coach = coach
	return b
}

// Captain sets the captain.
func (b *Builder) Captain(captain string) *Builder {
	b.captain = captain
	return b
}

// Color sets the primary kit color.
func (b *Builder) Color(color string) *Builder {
	b.color = color
	return b
}

// Policies returns the rules of the selected division and whether usable
// rules are in place.
func (b *Builder) Policies() (division.PolicyBundle, bool) {
	return b.policies, b.divisionError() == nil
}

// AddPlayer appends a player after checking the jersey number against the
// division. Repeated numbers are accepted here and rejected by Build.
func (b *Builder) AddPlayer(name string, jerseyNumber int) error {
	if err := b.divisionError(); err != nil {
		return err
	}
	if !b.policies.NumberIsAllowed(jerseyNumber) {
		return b.numberNotAllowed(jerseyNumber)
	}
	p, err := NewPlayer(name, jerseyNumber)
	if err != nil {
		return err
	}
	b.players = append(b.players, p)
	return nil
}

// AddPlayers adds each player in order and stops at the first rejection.
// Players added before the failure stay on the builder.
func (b *Builder) AddPlayers(players ...Player) error {
	for _, p := range players {
		if err := b.AddPlayer(p.Name(), p.JerseyNumber()); err != nil {
			return err
		}
	}
	return nil
}

// RemovePlayer drops the first player with the given name and reports
// whether one was found.
func (b *Builder) RemovePlayer(name string) bool {
	for i, p := range b.players {
		if p.Name() == name {
			b.players = append(b.players[:i], b.players[i+1:]...)
			return true
		}
	}
	return false
}

// Players returns a copy of the players added so far, in insertion order.
func (b *Builder) Players() []Player {
	return ClonePlayers(b.players)
}

// Build validates the accumulated state and returns an immutable Team.
//
// Checks run in order: team name and division set, roster size within the
// division bounds, then each jersey number allowed by the current division
// and distinct (the first offender in insertion order is reported). On
// failure no Team is returned and the builder is left unchanged.
func (b *Builder) Build() (*Team, error) {
	if strings.TrimSpace(b.name) == "" {
		return nil, errors.NewConfigurationError("team name is required").
			WithField("name").
			WithCause(errors.ErrMissingField)
	}
	if err := b.divisionError(); err != nil {
		return nil, err
	}

	size := len(b.players)
	if !b.policies.RosterSizeAllowed(size) {
		return nil, errors.NewValidationError(fmt.Sprintf("roster of %d players outside %d-%d for %s",
			size, b.policies.MinRosterSize(), b.policies.MaxRosterSize(), b.provider.Name())).
			WithField("roster").
			WithValue(size).
			WithCause(errors.ErrRosterSize)
	}

	seen := make(map[int]struct{}, size)
	for _, p := range b.players {
		if !b.policies.NumberIsAllowed(p.JerseyNumber()) {
			return nil, b.numberNotAllowed(p.JerseyNumber())
		}
		if _, dup := seen[p.JerseyNumber()]; dup {
			return nil, errors.NewValidationError(fmt.Sprintf("jersey number %d repeated (%s)",
				p.JerseyNumber(), p.Name())).
				WithField("jersey_number").
				WithValue(p.JerseyNumber()).
				WithCause(errors.ErrDuplicateJersey)
		}
		seen[p.JerseyNumber()] = struct{}{}
	}

	return &Team{
		name:         b.name,
		divisionName: b.provider.Name(),
		policies:     b.policies,
		coach:        b.coach,
		captain:      b.captain,
		primaryColor: b.color,
		roster:       ClonePlayers(b.players),
	}, nil
}

// divisionError reports a missing division or one without usable rules.
func (b *Builder) divisionError() error {
	switch {
	case b.provider == nil:
		return errors.NewConfigurationError("division must be selected").
			WithField("division").
			WithCause(errors.ErrDivisionNotSelected)
	case b.rulesErr != nil:
		return errors.NewConfigurationError(fmt.Sprintf("division %q has no usable policies", b.provider.Name())).
			WithField("division").
			WithCause(fmt.Errorf("%w: %w", errors.ErrDivisionNotSelected, b.rulesErr))
	}
	return nil
}

func (b *Builder) numberNotAllowed(n int) *errors.ValidationError {
	return errors.NewValidationError(fmt.Sprintf("jersey number %d not allowed in %s (allowed %s)",
		n, b.provider.Name(), b.policies.AllowedNumbers())).
		WithField("jersey_number").
		WithValue(n).
		WithCause(errors.ErrNumberNotAllowed)
}
