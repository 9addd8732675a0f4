package event

import "time"

// Event types published by the registry and the manifest watcher.
const (
	TypeTeamRegistered    = "team.registered"
	TypeTeamRejected      = "team.rejected"
	TypeTemplatesReloaded = "templates.reloaded"
)

// Event is implemented by everything published on a Bus.
type Event interface {
	// EventType returns the "category.action" identifier.
	EventType() string
	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// TeamRegisteredEvent is emitted after a team was added to a season.
type TeamRegisteredEvent struct {
	baseEvent
	Season   string
	Team     string
	Division string
	Players  int
}

// NewTeamRegisteredEvent creates a TeamRegisteredEvent.
func NewTeamRegisteredEvent(season, team, division string, players int) TeamRegisteredEvent {
	return TeamRegisteredEvent{
		baseEvent: newBaseEvent(TypeTeamRegistered),
		Season:    season,
		Team:      team,
		Division:  division,
		Players:   players,
	}
}

// RegistrationRejectedEvent is emitted when a registration attempt fails.
type RegistrationRejectedEvent struct {
	baseEvent
	Season string
	Team   string
	Err    error
}

// NewRegistrationRejectedEvent creates a RegistrationRejectedEvent.
func NewRegistrationRejectedEvent(season, team string, err error) RegistrationRejectedEvent {
	return RegistrationRejectedEvent{
		baseEvent: newBaseEvent(TypeTeamRejected),
		Season:    season,
		Team:      team,
		Err:       err,
	}
}

// TemplatesReloadedEvent is emitted when a watched manifest replaced the
// catalog contents, or failed to.
type TemplatesReloadedEvent struct {
	baseEvent
	Path            string
	TeamTemplates   int
	PlayerTemplates int
	Err             error // non-nil when the reload failed and the old templates were kept
}

// NewTemplatesReloadedEvent creates a TemplatesReloadedEvent.
func NewTemplatesReloadedEvent(path string, teamTemplates, playerTemplates int, err error) TemplatesReloadedEvent {
	return TemplatesReloadedEvent{
		baseEvent:       newBaseEvent(TypeTemplatesReloaded),
		Path:            path,
		TeamTemplates:   teamTemplates,
		PlayerTemplates: playerTemplates,
		Err:             err,
	}
}
