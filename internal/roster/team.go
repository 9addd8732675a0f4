package roster

import (
	"fmt"

	"github.com/Iron-Ham/leagueroster/internal/division"
)

// Team is a finalized, immutable team. It can only be produced by
// [Builder.Build], which guarantees:
//   - MinRosterSize <= len(roster) <= MaxRosterSize
//   - every jersey number is unique within the roster
//   - every jersey number is allowed by the division
//
// The roster slice is owned exclusively by the Team; accessors hand out copies.
type Team struct {
	name         string
	divisionName string
	policies     division.PolicyBundle
	coach        string
	captain      string
	primaryColor string
	roster       []Player
}

// Name returns the team name, unique within a season once registered.
func (t *Team) Name() string {
	return t.name
}

// Division returns the display label of the division the team was built for.
func (t *Team) Division() string {
	return t.divisionName
}

// Policies returns the rules the team was validated against.
func (t *Team) Policies() division.PolicyBundle {
	return t.policies
}

// Coach returns the head coach, possibly empty.
func (t *Team) Coach() string {
	return t.coach
}

// Captain returns the captain, possibly empty.
func (t *Team) Captain() string {
	return t.captain
}

// PrimaryColor returns the team's kit color, possibly empty.
func (t *Team) PrimaryColor() string {
	return t.primaryColor
}

// Roster returns a copy of the players in insertion order.
func (t *Team) Roster() []Player {
	return ClonePlayers(t.roster)
}

// Size returns the number of players on the roster.
func (t *Team) Size() int {
	return len(t.roster)
}

// String returns a one-line summary of the team.
func (t *Team) String() string {
	return fmt.Sprintf("[%s] %s (%s) Coach:%s C:%s | Players:%d",
		t.divisionName, t.name, t.primaryColor, t.coach, t.captain, len(t.roster))
}
