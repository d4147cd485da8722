// Package game implements the core Paper-Rock-Scissors match logic.
//
// The main type is Match, which owns two roles and drives rounds until one of
// them reaches the target score or the round cap is hit.
//
// # Basic Usage
//
// Build two roles and play a match:
//
//	first, _, err := game.NewHumanRole(game.Profile{Name: "alice"}, game.NewConsolePrompter(os.Stdin, os.Stdout))
//	if err != nil {
//	    return err // empty names are rejected
//	}
//	m := game.NewMatch(first, second, game.DefaultSettings(), game.WithOutput(os.Stdout))
//	result, err := m.Play(ctx)
//
// # Deterministic Testing
//
// Moves come from the Role interface, so tests can script both sides. The
// inter-round pause goes through a quartz.Clock which can be replaced with a
// mock:
//
//	m := game.NewMatch(first, second, settings, game.WithClock(quartz.NewMock(t)))
//
// # Validation
//
// Settings and role profiles are validated with warn-and-correct semantics:
// out of range values are replaced with safe defaults and reported as
// Notices. The only fatal case is an empty role name (ErrInvalidName).
package game
