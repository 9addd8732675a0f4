package roster

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/leagueroster/internal/errors"
)

// Player is an immutable roster slot: a person and the jersey number they wear.
// Copying a Player by value yields an independent clone.
type Player struct {
	name   string
	number int
}

// NewPlayer creates a Player. The name must not be blank; the jersey number
// is checked against division rules only when the player joins a builder.
func NewPlayer(name string, jerseyNumber int) (Player, error) {
	if strings.TrimSpace(name) == "" {
		return Player{}, errors.NewValidationError("player name cannot be empty").
			WithField("player_name").
			WithValue(name).
			WithCause(errors.ErrMissingField)
	}
	return Player{name: name, number: jerseyNumber}, nil
}

// MustPlayer is NewPlayer for fixtures and literals known to be valid.
// It panics on a blank name.
func MustPlayer(name string, jerseyNumber int) Player {
	p, err := NewPlayer(name, jerseyNumber)
	if err != nil {
		panic(err)
	}
	return p
}

// Name returns the player's name.
func (p Player) Name() string {
	return p.name
}

// JerseyNumber returns the player's number.
func (p Player) JerseyNumber() int {
	return p.number
}

// IsZero reports whether p is the zero Player.
func (p Player) IsZero() bool {
	return p == Player{}
}

// String returns "7 - Name".
func (p Player) String() string {
	return fmt.Sprintf("%d - %s", p.number, p.name)
}

// ClonePlayers returns a new slice holding copies of players. The result
// shares no backing storage with the input; nil stays nil.
func ClonePlayers(players []Player) []Player {
	if players == nil {
		return nil
	}
	out := make([]Player, len(players))
	copy(out, players)
	return out
}
