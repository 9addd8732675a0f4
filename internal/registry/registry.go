// Package registry holds the teams registered for a season.
//
// A process normally shares one Registry obtained from [Instance]. Tests and
// tools that need isolation construct their own with [New].
package registry

import (
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/Iron-Ham/leagueroster/internal/errors"
	"github.com/Iron-Ham/leagueroster/internal/event"
	"github.com/Iron-Ham/leagueroster/internal/logging"
	"github.com/Iron-Ham/leagueroster/internal/roster"
)

// Process-wide instance and the lock guarding its construction.
var (
	instance   atomic.Pointer[Registry]
	instanceMu sync.Mutex
)

// Instance returns the process-wide Registry, creating it on first use.
//
// The season and options of the first call win. Later calls with a
// different season get the existing registry unchanged; the mismatch is
// only logged at debug level.
func Instance(season string, opts ...Option) *Registry {
	if r := instance.Load(); r != nil {
		r.noteSeason(season)
		return r
	}

	instanceMu.Lock()
	defer instanceMu.Unlock()

	if r := instance.Load(); r != nil {
		r.noteSeason(season)
		return r
	}
	r := New(season, opts...)
	instance.Store(r)
	return r
}

// ResetInstance drops the process-wide Registry so the next Instance call
// builds a fresh one. Registries already handed out keep working.
// Intended for tests.
func ResetInstance() {
	instanceMu.Lock()
	defer instanceMu.Unlock()
	instance.Store(nil)
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger. The default discards output.
func WithLogger(l *logging.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithBus publishes registration outcomes on bus.
func WithBus(bus *event.Bus) Option {
	return func(r *Registry) {
		r.bus = bus
	}
}

// Registry maps team names to teams for one season. Names are unique and
// compared exactly. It is safe for concurrent use.
type Registry struct {
	season string
	logger *logging.Logger
	bus    *event.Bus

	mu    sync.Mutex
	teams map[string]*roster.Team
}

// New creates an empty, independent Registry for season.
func New(season string, opts ...Option) *Registry {
	r := &Registry{
		season: season,
		logger: logging.NopLogger(),
		teams:  make(map[string]*roster.Team),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.WithSeason(season)
	return r
}

// Season returns the season fixed at construction.
func (r *Registry) Season() string {
	return r.season
}

// RegisterTeam adds team under its name. It fails with a DuplicateNameError
// if the name is already registered; the check and the insert happen
// atomically, so of two concurrent registrations of one name exactly one
// succeeds.
func (r *Registry) RegisterTeam(team *roster.Team) error {
	if team == nil {
		err := errors.NewValidationError("team is required").
			WithField("team").
			WithCause(errors.ErrMissingField)
		r.reject("", err)
		return err
	}
	name := team.Name()
	if strings.TrimSpace(name) == "" {
		err := errors.NewValidationError("team name is required").
			WithField("name").
			WithCause(errors.ErrMissingField)
		r.reject(name, err)
		return err
	}

	r.mu.Lock()
	if _, taken := r.teams[name]; taken {
		r.mu.Unlock()
		err := errors.NewDuplicateNameError("team", name).WithSeason(r.season)
		r.reject(name, err)
		return err
	}
	r.teams[name] = team
	total := len(r.teams)
	r.mu.Unlock()

	r.logger.WithTeam(name).WithDivision(team.Division()).Info("team registered",
		"players", team.Size(),
		"registered", total)
	if r.bus != nil {
		r.bus.Publish(event.NewTeamRegisteredEvent(r.season, name, team.Division(), team.Size()))
	}
	return nil
}

func (r *Registry) reject(name string, err error) {
	r.logger.WithTeam(name).Warn("team rejected", "error", err, "kind", errors.Kind(err))
	if r.bus != nil {
		r.bus.Publish(event.NewRegistrationRejectedEvent(r.season, name, err))
	}
}

// Lookup returns the team registered under name.
func (r *Registry) Lookup(name string) (*roster.Team, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.teams[name]
	return t, ok
}

// ListTeams returns a snapshot of the registered teams sorted by name.
// Later registrations do not change a returned slice.
func (r *Registry) ListTeams() []*roster.Team {
	r.mu.Lock()
	teams := make([]*roster.Team, 0, len(r.teams))
	for _, t := range r.teams {
		teams = append(teams, t)
	}
	r.mu.Unlock()

	slices.SortFunc(teams, func(a, b *roster.Team) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return teams
}

// Len returns the number of registered teams.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.teams)
}

func (r *Registry) noteSeason(season string) {
	if season != r.season {
		r.logger.Debug("season argument ignored; registry already initialized",
			"requested_season", season)
	}
}
