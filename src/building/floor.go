package building

import (
	"sync"

	"github.com/go-logr/logr"

	"liftsim/src/logging"
	"liftsim/src/metrics"
)

// Floor holds the passengers waiting on one level of a building. The
// waiting queue is the only state shared between elevators and request
// submission, so every read and mutation happens under one short-held
// lock; in particular candidate selection and removal are a single
// critical section, which makes a passenger claimable by at most one
// elevator.
type Floor struct {
	number int
	log    logr.Logger

	mu      sync.Mutex
	waiting []*Passenger
}

func newFloor(number int, log logr.Logger) *Floor {
	return &Floor{
		number: number,
		log:    log.WithValues("floor", number),
	}
}

func (f *Floor) Number() int { return f.number }

// AddPassenger appends a passenger to the waiting queue. Floors have no
// capacity limit, so this always succeeds.
func (f *Floor) AddPassenger(p *Passenger) bool {
	f.mu.Lock()
	f.waiting = append(f.waiting, p)
	f.mu.Unlock()

	metrics.IncWaitingPassengers()
	f.log.Info("passenger waiting for an elevator",
		"passenger", p.Name(),
		"destination", p.Destination().Number())
	return true
}

func (f *Floor) HasWaitingPassengers() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.waiting) > 0
}

func (f *Floor) NumberOfWaitingPassengers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.waiting)
}

// takePassengers is the draw used by an elevator with no established
// direction. The head of the queue determines the direction; up to
// spotsLeft-1 further passengers compatible with that direction are
// taken along. A head passenger already at its destination refuses to
// leave, is dropped from the queue, and the draw is retried with the
// remaining passengers.
func (f *Floor) takePassengers(spotsLeft int) []*Passenger {
	if spotsLeft < 1 {
		return nil
	}

	f.mu.Lock()
	var head *Passenger
	dropped := 0
	for len(f.waiting) > 0 {
		candidate := f.waiting[0]
		f.waiting = f.waiting[1:]
		if candidate.willLeave(f) {
			head = candidate
			break
		}
		dropped++
	}
	if head == nil {
		f.mu.Unlock()
		if dropped > 0 {
			metrics.SubWaitingPassengers(dropped)
			f.log.V(logging.DEBUG).Info("dropped passengers already at their destination", "count", dropped)
		}
		return nil
	}
	taken := append([]*Passenger{head}, f.selectToward(spotsLeft-1, head.Destination())...)
	f.mu.Unlock()

	if dropped > 0 {
		metrics.SubWaitingPassengers(dropped)
		f.log.V(logging.DEBUG).Info("dropped passengers already at their destination", "count", dropped)
	}
	f.board(taken)
	return taken
}

// takePassengersToward is the draw used by an elevator that already has
// a destination: only passengers reachable on the way there may board.
func (f *Floor) takePassengersToward(spotsLeft int, destination *Floor) []*Passenger {
	if spotsLeft < 1 {
		return nil
	}

	f.mu.Lock()
	taken := f.selectToward(spotsLeft, destination)
	f.mu.Unlock()

	f.board(taken)
	return taken
}

// selectToward removes and returns up to spots waiting passengers, in
// queue order, whose destination lies on the way from this floor to the
// given destination. A passenger unwilling to leave is skipped, not
// removed. The caller must hold f.mu.
func (f *Floor) selectToward(spots int, destination *Floor) []*Passenger {
	var taken []*Passenger
	kept := f.waiting[:0]
	for _, p := range f.waiting {
		if len(taken) < spots && p.willLeave(f) && p.CanReachDestination(f, destination) {
			taken = append(taken, p)
			continue
		}
		kept = append(kept, p)
	}
	// Zero the vacated tail so claimed passengers are not retained by
	// the backing array.
	for i := len(kept); i < len(f.waiting); i++ {
		f.waiting[i] = nil
	}
	f.waiting = kept
	return taken
}

// board completes a draw by asking every claimed passenger to leave the
// floor, firing the leave hook for each.
func (f *Floor) board(taken []*Passenger) {
	for _, p := range taken {
		p.AskToLeaveFloor(f)
	}
}

// enter records a passenger stepping out of an elevator onto this
// floor. Only the passenger itself calls this, and only at its
// destination.
func (f *Floor) enter(p *Passenger) {
	f.log.Info("passenger reached their destination", "passenger", p.Name())
}

// leave records a passenger boarding an elevator from this floor. It
// guarantees removal from the waiting queue even when the passenger was
// obtained by a path that did not already remove it.
func (f *Floor) leave(p *Passenger) {
	f.mu.Lock()
	for i, q := range f.waiting {
		if q == p {
			f.waiting = append(f.waiting[:i], f.waiting[i+1:]...)
			break
		}
	}
	f.mu.Unlock()

	metrics.SubWaitingPassengers(1)
	f.log.Info("passenger is taking the elevator",
		"passenger", p.Name(),
		"destination", p.Destination().Number())
}
