// Package scene defines the Scene interface for state-scoped game screens.
//
// Each screen (main menu, gameplay, etc.) implements the Scene interface
// to attach its setup, per-frame and teardown systems to the state machine.
package scene

import "github.com/younwookim/gamemenu/internal/application/state"

// Scene represents a game screen bound to one or more application states.
//
// The game loop never calls a scene directly: the scene registers hooks
// and systems on the state machine, which runs them while the matching
// state is active.
type Scene interface {
	// Register attaches the scene's enter, exit and per-frame systems.
	// Called once during bootstrap, before the machine starts.
	Register(m *state.Machine)
}
