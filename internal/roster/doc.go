// Package roster assembles league teams.
//
// It holds the two value types of team construction, [Player] and [Team],
// and the staged [Builder] that turns a division's rules and a list of
// players into a Team.
//
// # Two-phase validation
//
// The Builder validates in two phases. Each [Builder.AddPlayer] call checks
// the single addition: a division must be selected and the jersey number
// must be in the division's range. [Builder.Build] checks the whole roster:
// size within the division bounds and no repeated jersey numbers. Repeats
// are tolerated while the roster is being assembled and only rejected at
// Build.
//
// # Finalized vs in-progress
//
// Builder and Team are distinct types. A Team exists only once Build
// succeeded, so code that accepts a *Team never sees an unfinished roster.
//
//	b := roster.NewBuilder().
//		ForDivision(division.StandardAdultA).
//		Name("Leones FC").
//		Coach("Carlos Ruiz").
//		Captain("J10").
//		Color("Black")
//	for i := 1; i <= 11; i++ {
//		if err := b.AddPlayer(fmt.Sprintf("J%d", i), i); err != nil {
//			return err
//		}
//	}
//	team, err := b.Build()
package roster
