package state

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Hook runs once when a state is entered or exited
type Hook func()

// System runs every frame while its state is active.
// Returning an error stops the game loop.
type System func() error

// Machine drives AppState transitions and the systems scoped to each state.
//
// Transitions are requested with Set and applied at the start of the next
// Update, so a request made by a system never changes the state mid-frame.
type Machine struct {
	current AppState
	next    AppState
	pending bool
	started bool

	enter   map[AppState][]Hook
	exit    map[AppState][]Hook
	systems map[AppState][]System

	logger *log.Logger
}

// NewMachine creates a machine in the Default state
func NewMachine(logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.Default()
	}
	return &Machine{
		current: Default,
		enter:   make(map[AppState][]Hook),
		exit:    make(map[AppState][]Hook),
		systems: make(map[AppState][]System),
		logger:  logger,
	}
}

// OnEnter registers a hook that runs each time s is entered
func (m *Machine) OnEnter(s AppState, h Hook) {
	m.enter[s] = append(m.enter[s], h)
}

// OnExit registers a hook that runs each time s is exited
func (m *Machine) OnExit(s AppState, h Hook) {
	m.exit[s] = append(m.exit[s], h)
}

// WhileIn registers a system that runs every frame while s is current
func (m *Machine) WhileIn(s AppState, sys System) {
	m.systems[s] = append(m.systems[s], sys)
}

// Current returns the active state
func (m *Machine) Current() AppState {
	return m.current
}

// Pending returns the requested next state, if any
func (m *Machine) Pending() (AppState, bool) {
	return m.next, m.pending
}

// Start runs the enter hooks of the initial state. Subsequent calls do nothing.
func (m *Machine) Start() {
	if m.started {
		return
	}
	m.started = true
	m.logger.Debug("entering initial state", "state", m.current)
	runHooks(m.enter[m.current])
}

// Set requests a transition to next. The last request in a frame wins.
// Requesting the current state is a no-op.
func (m *Machine) Set(next AppState) error {
	if next == m.current {
		m.pending = false
		return nil
	}
	if !CanTransition(m.current, next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.current, next)
	}
	m.next = next
	m.pending = true
	return nil
}

// Apply consumes the pending request: exit hooks of the current state run,
// the state changes, then enter hooks of the new state run.
// Returns true if a transition happened.
func (m *Machine) Apply() bool {
	if !m.pending {
		return false
	}
	m.pending = false

	from, to := m.current, m.next
	runHooks(m.exit[from])
	m.current = to
	m.logger.Info("state transition", "from", from, "to", to)
	runHooks(m.enter[to])
	return true
}

// Update applies any pending transition, then runs the systems of the
// current state in registration order.
func (m *Machine) Update() error {
	if !m.started {
		m.Start()
	}
	m.Apply()

	for _, sys := range m.systems[m.current] {
		if err := sys(); err != nil {
			return err
		}
	}
	return nil
}

func runHooks(hooks []Hook) {
	for _, h := range hooks {
		h()
	}
}
