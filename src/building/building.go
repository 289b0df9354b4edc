// Package building implements the elevator dispatch simulation: floors
// holding waiting passengers, independently running elevators, and the
// coordinator composing them.
package building

import (
	"fmt"
	"math/rand"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"

	"liftsim/src/logging"
	"liftsim/src/metrics"
	"liftsim/src/types"
)

// Building composes a fixed set of floors with a fleet of elevators. It
// accepts transport requests and answers fleet-wide occupancy queries,
// but makes no dispatch decisions itself; each elevator decides
// autonomously and the per-floor queues are the only contended state.
type Building struct {
	name      string
	floors    []*Floor
	elevators []*Elevator
	log       logr.Logger
	rng       *rand.Rand
	group     *errgroup.Group
}

// New creates a building with floors numbered 0..numFloors-1. The
// random source seeds the initial placement of elevators, so passing a
// fixed seed makes a simulation run reproducible.
func New(name string, numFloors int, log logr.Logger, rng *rand.Rand) *Building {
	b := &Building{
		name: name,
		log:  log.WithValues("building", name),
		rng:  rng,
	}
	b.floors = make([]*Floor, numFloors)
	for number := range b.floors {
		b.floors[number] = newFloor(number, b.log)
	}
	return b
}

func (b *Building) Name() string { return b.name }

func (b *Building) NumberOfFloors() int { return len(b.floors) }

func (b *Building) NumberOfElevators() int { return len(b.elevators) }

// AddElevator places a new elevator on a random floor of the building.
// An elevator that cannot be assembled (non-positive capacity, empty
// building) is logged and skipped, never fatal.
func (b *Building) AddElevator(capacity int, floorsPerSecond float64, debug bool) {
	e, err := newElevator(b, len(b.elevators)+1, capacity, floorsPerSecond, debug, b.rng)
	if err != nil {
		b.log.Error(err, "elevator not added")
		return
	}
	b.elevators = append(b.elevators, e)
}

// Floor returns the floor with the given number.
func (b *Building) Floor(number int) (*Floor, error) {
	if !b.floorExists(number) {
		return nil, fmt.Errorf("a floor with the number %d does not exist", number)
	}
	return b.floors[number], nil
}

func (b *Building) floorExists(number int) bool {
	return number >= 0 && number < len(b.floors)
}

// FindFloorWithWaitingPassengers returns a floor where passengers are
// waiting, scanning floors in ascending order.
func (b *Building) FindFloorWithWaitingPassengers() (*Floor, bool) {
	for _, f := range b.floors {
		if f.HasWaitingPassengers() {
			return f, true
		}
	}
	return nil, false
}

// AddRequest submits a transport request: a passenger with the given
// name appears on fromFloor wanting to reach toFloor. It reports false,
// with no side effects, when either floor is outside the building.
func (b *Building) AddRequest(passengerName string, fromFloor, toFloor int) bool {
	if !b.floorExists(fromFloor) || !b.floorExists(toFloor) {
		metrics.RecordRejectedRequest()
		b.log.V(logging.DEBUG).Info("rejected request",
			"passenger", passengerName,
			"from", fromFloor,
			"to", toFloor)
		return false
	}
	metrics.RecordRequest()
	p := NewPassenger(passengerName, b.floors[toFloor])
	return b.floors[fromFloor].AddPassenger(p)
}

// StartOperation launches every elevator's scheduling loop.
func (b *Building) StartOperation() {
	b.group = new(errgroup.Group)
	for _, e := range b.elevators {
		e.operational.Store(true)
		b.group.Go(e.run)
	}
	b.log.Info("operation started", "elevators", len(b.elevators), "floors", len(b.floors))
}

// StopOperation broadcasts a graceful stop to the fleet. Elevators keep
// moving until their onboard passengers have been delivered; use Wait
// to block until they are done.
func (b *Building) StopOperation() {
	for _, e := range b.elevators {
		e.gracefullyStop()
	}
	b.log.Info("operation stopping")
}

// Wait blocks until every elevator loop has exited.
func (b *Building) Wait() error {
	if b.group == nil {
		return nil
	}
	return b.group.Wait()
}

// NumberOfOccupiedElevators counts elevators currently processing
// transport requests.
func (b *Building) NumberOfOccupiedElevators() int {
	occupied := 0
	for _, e := range b.elevators {
		if e.IsOccupied() {
			occupied++
		}
	}
	return occupied
}

// NumberOfWaitingRequests sums the waiting passengers over all floors.
func (b *Building) NumberOfWaitingRequests() int {
	waiting := 0
	for _, f := range b.floors {
		waiting += f.NumberOfWaitingPassengers()
	}
	return waiting
}

// ElevatorStatuses snapshots the whole fleet for monitoring.
func (b *Building) ElevatorStatuses() ([]types.ElevatorStatus, error) {
	statuses := make([]types.ElevatorStatus, 0, len(b.elevators))
	for _, e := range b.elevators {
		status, err := e.Status()
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
