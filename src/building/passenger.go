package building

import "github.com/google/uuid"

// Passenger is a single transport request travelling through the
// system. It is held by exactly one floor queue or one elevator at any
// time and is immutable after creation.
type Passenger struct {
	id          uuid.UUID
	name        string
	destination *Floor
}

func NewPassenger(name string, destination *Floor) *Passenger {
	return &Passenger{
		id:          uuid.New(),
		name:        name,
		destination: destination,
	}
}

func (p *Passenger) ID() uuid.UUID { return p.id }

func (p *Passenger) Name() string { return p.name }

func (p *Passenger) Destination() *Floor { return p.destination }

// CanReachDestination reports whether an elevator travelling from one
// floor toward another passes the passenger's destination, inclusive of
// the elevator's own destination.
func (p *Passenger) CanReachDestination(from, to *Floor) bool {
	dest := p.destination.Number()
	if from.Number() < dest {
		return to.Number() >= dest
	}
	if from.Number() > dest {
		return to.Number() <= dest
	}
	return false
}

// AskToEnterFloor is how alighting is decided: the passenger enters the
// given floor, firing its enter hook, only if it is the destination.
func (p *Passenger) AskToEnterFloor(floor *Floor) bool {
	if floor != p.destination {
		return false
	}
	floor.enter(p)
	return true
}

// AskToLeaveFloor is how boarding is confirmed: the passenger agrees to
// leave any floor except its destination, firing the floor's leave hook
// on the way out.
func (p *Passenger) AskToLeaveFloor(floor *Floor) bool {
	if !p.willLeave(floor) {
		return false
	}
	floor.leave(p)
	return true
}

// willLeave is the side-effect-free form of AskToLeaveFloor, used while
// a floor queue is selecting candidates under its lock.
func (p *Passenger) willLeave(floor *Floor) bool {
	return floor != p.destination
}
