package state

import "errors"

// AppState represents the current phase of the application
type AppState int

const (
	MainMenu AppState = iota
	InGame
)

// Default is the state the application starts in
const Default = MainMenu

// ErrInvalidTransition is returned when a transition is not part of the state graph
var ErrInvalidTransition = errors.New("invalid state transition")

// String returns the string representation of the app state
func (s AppState) String() string {
	switch s {
	case MainMenu:
		return "MainMenu"
	case InGame:
		return "InGame"
	default:
		return "Unknown"
	}
}

// CanTransition reports whether from -> to is an edge of the state graph.
// InGame is terminal.
func CanTransition(from, to AppState) bool {
	return from == MainMenu && to == InGame
}
