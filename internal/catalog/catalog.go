// Package catalog keeps reusable roster and player templates that teams are
// cloned from.
//
// Templates are stored as private copies. Every clone hands out fresh values,
// so editing a cloned roster never reaches the stored template or any other
// clone. A Catalog is safe for concurrent use.
package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/Iron-Ham/leagueroster/internal/errors"
	"github.com/Iron-Ham/leagueroster/internal/roster"
)

// Catalog maps template keys to rosters and individual players.
type Catalog struct {
	mu      sync.RWMutex
	teams   map[string][]roster.Player
	players map[string]roster.Player
}

// New returns an empty Catalog.
func New() *Catalog {
	return &Catalog{
		teams:   make(map[string][]roster.Player),
		players: make(map[string]roster.Player),
	}
}

// PutTeamTemplate stores a copy of players under key, replacing any previous
// template with that key.
func (c *Catalog) PutTeamTemplate(key string, players []roster.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.teams[key] = clonePlayersNonNil(players)
}

// CloneTeamTemplate returns a fresh copy of the roster stored under key.
func (c *Catalog) CloneTeamTemplate(key string) ([]roster.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	players, ok := c.teams[key]
	if !ok {
		return nil, errors.NewNotFoundError("team template", key).
			WithCause(errors.ErrTemplateNotFound)
	}
	return clonePlayersNonNil(players), nil
}

// PutPlayerTemplate stores p under key, replacing any previous template.
func (c *Catalog) PutPlayerTemplate(key string, p roster.Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.players[key] = p
}

// ClonePlayer returns a copy of the player stored under key.
func (c *Catalog) ClonePlayer(key string) (roster.Player, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.players[key]
	if !ok {
		return roster.Player{}, errors.NewNotFoundError("player template", key).
			WithCause(errors.ErrTemplateNotFound)
	}
	return p, nil
}

// TeamTemplateKeys returns the roster template keys in sorted order.
func (c *Catalog) TeamTemplateKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.teams)
}

// PlayerTemplateKeys returns the player template keys in sorted order.
func (c *Catalog) PlayerTemplateKeys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return sortedKeys(c.players)
}

// ReplaceAll swaps the whole catalog contents in one step. Readers see either
// the old set or the new one, never a mix. The inputs are copied.
func (c *Catalog) ReplaceAll(teams map[string][]roster.Player, players map[string]roster.Player) {
	nextTeams := make(map[string][]roster.Player, len(teams))
	for k, v := range teams {
		nextTeams[k] = clonePlayersNonNil(v)
	}
	nextPlayers := make(map[string]roster.Player, len(players))
	for k, v := range players {
		nextPlayers[k] = v
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.teams = nextTeams
	c.players = nextPlayers
}

// String summarizes the catalog size, e.g. "catalog(2 rosters, 5 players)".
func (c *Catalog) String() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return fmt.Sprintf("catalog(%d rosters, %d players)", len(c.teams), len(c.players))
}

// clonePlayersNonNil is roster.ClonePlayers except an empty template clones
// to an empty, non-nil slice.
func clonePlayersNonNil(players []roster.Player) []roster.Player {
	if players == nil {
		return []roster.Player{}
	}
	return roster.ClonePlayers(players)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
