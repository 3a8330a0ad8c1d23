// Package session tracks the lifecycle and progress of one word-search
// puzzle: which words are found, the running score and play time.
package session

import (
	"errors"
	"fmt"
)

// State is a lifecycle phase of a puzzle.
type State int

const (
	StateLoading State = iota
	StatePlaying
	StatePaused
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Event drives a state transition.
type Event int

const (
	EventLoaded Event = iota
	EventPause
	EventResume
	EventAllFound
	EventGiveUp
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventLoaded:
		return "loaded"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventAllFound:
		return "all-found"
	case EventGiveUp:
		return "give-up"
	case EventRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// ErrInvalidTransition is returned when an event does not apply to the
// current state.
var ErrInvalidTransition = errors.New("session: invalid transition")

type transition struct {
	from State
	ev   Event
}

var transitions = map[transition]State{
	{StateLoading, EventLoaded}:   StatePlaying,
	{StatePlaying, EventPause}:    StatePaused,
	{StatePaused, EventResume}:    StatePlaying,
	{StatePlaying, EventAllFound}: StateCompleted,
	{StatePlaying, EventGiveUp}:   StateCompleted,
}

// Machine is the puzzle lifecycle state machine.
// The zero value starts in StateLoading.
type Machine struct {
	state State
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Can reports whether ev applies to the current state.
func (m *Machine) Can(ev Event) bool {
	if ev == EventRestart {
		return true
	}
	_, ok := transitions[transition{m.state, ev}]
	return ok
}

// Fire applies ev. Restart is valid from every state.
func (m *Machine) Fire(ev Event) (State, error) {
	if ev == EventRestart {
		m.state = StateLoading
		return m.state, nil
	}
	next, ok := transitions[transition{m.state, ev}]
	if !ok {
		return m.state, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, ev, m.state)
	}
	m.state = next
	return next, nil
}
