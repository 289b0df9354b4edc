package types

import "fmt"

// State is the movement state of an elevator.
type State int

const (
	Still State = iota
	Up
	Down
)

func (s State) String() string {
	switch s {
	case Still:
		return "Still"
	case Up:
		return "Up"
	case Down:
		return "Down"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ElevatorStatus is a point-in-time snapshot of a single elevator,
// detached from the live state so monitors can hold on to it.
type ElevatorStatus struct {
	Number      int
	Floor       int
	Destination int
	State       State
	Onboard     []string
}
