package building

import (
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/go-logr/logr"
	"github.com/tiendc/go-deepcopy"

	"liftsim/src/config"
	"liftsim/src/logging"
	"liftsim/src/metrics"
	"liftsim/src/types"
)

// Elevator is one independently scheduled unit of the fleet. Its
// goroutine repeatedly exchanges passengers with the current floor,
// evaluates the movement transition, and sleeps for the interval
// derived from its speed. All mutable fields are guarded by mu so that
// occupancy and status queries from other goroutines see a consistent
// view; the floor queues are the only state it shares with other
// elevators.
type Elevator struct {
	building *Building
	number   int
	label    string
	capacity int
	interval time.Duration
	debug    bool
	log      logr.Logger

	// operational is cleared by gracefullyStop; the loop keeps ticking
	// until it is cleared and the last onboard passenger has left.
	operational atomic.Bool

	mu          sync.Mutex
	current     *Floor
	destination *Floor
	state       types.State
	onboard     []*Passenger
}

func newElevator(b *Building, number, capacity int, floorsPerSecond float64, debug bool, rng *rand.Rand) (*Elevator, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("elevator capacity %d must be positive", capacity)
	}
	if b.NumberOfFloors() < 1 {
		return nil, fmt.Errorf("building %q has no floors to place an elevator on", b.Name())
	}

	start, err := b.Floor(rng.Intn(b.NumberOfFloors()))
	if err != nil {
		return nil, err
	}

	interval := config.DefaultTickInterval
	if floorsPerSecond > 0 {
		interval = time.Duration(float64(time.Second) / floorsPerSecond)
	}

	label := fmt.Sprintf("elevator-%d", number)
	return &Elevator{
		building:    b,
		number:      number,
		label:       label,
		capacity:    capacity,
		interval:    interval,
		debug:       debug,
		log:         b.log.WithName(label),
		current:     start,
		destination: start,
		state:       types.Still,
		onboard:     make([]*Passenger, 0, capacity),
	}, nil
}

func (e *Elevator) Number() int { return e.number }

// run is the elevator's scheduling loop. A failed tick only delays
// service, so every tick error is logged and the loop carries on; a
// dead loop would strand its onboard passengers permanently.
func (e *Elevator) run() error {
	e.log.V(logging.DEBUG).Info("elevator operating", "interval", e.interval)
	for e.keepTicking() {
		if err := e.tick(); err != nil {
			e.log.Error(err, "tick skipped")
		}
		time.Sleep(e.interval)
	}
	e.log.V(logging.DEBUG).Info("elevator shut down")
	return nil
}

// keepTicking is the loop condition: operate until stopped, and after
// that until the last onboard passenger has been delivered.
func (e *Elevator) keepTicking() bool {
	if e.operational.Load() {
		return true
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.onboard) > 0
}

// tick performs one simulation step: passenger exchange first, then the
// movement transition, then destination adoption when the elevator is
// left standing still.
func (e *Elevator) tick() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	destinationReached := e.current == e.destination
	if e.debug {
		e.log.V(logging.DEBUG).Info("tick",
			"floor", e.current.Number(),
			"destination", e.destination.Number(),
			"onboard", len(e.onboard),
			"state", e.state.String())
	}

	e.exchangePassengers(destinationReached)

	next, floor, err := NextMove(
		e.state,
		e.current.Number(),
		e.destination.Number(),
		destinationReached,
		0,
		e.building.NumberOfFloors()-1,
	)
	if err != nil {
		return err
	}
	if floor != e.current.Number() {
		f, err := e.building.Floor(floor)
		if err != nil {
			return err
		}
		e.current = f
	}
	if e.state == types.Still && next == types.Still {
		e.adoptDestination()
	}
	e.state = next

	metrics.RecordTick(e.label)
	return nil
}

// exchangePassengers lets onboard passengers alight at the current
// floor, then fills the remaining capacity from the floor's waiting
// queue. With no committed destination the empty draw establishes a new
// one from the first passenger accepted; otherwise only passengers
// compatible with the committed destination may board.
func (e *Elevator) exchangePassengers(destinationReached bool) {
	kept := e.onboard[:0]
	alighted := 0
	for _, p := range e.onboard {
		if p.AskToEnterFloor(e.current) {
			alighted++
			continue
		}
		kept = append(kept, p)
	}
	for i := len(kept); i < len(e.onboard); i++ {
		e.onboard[i] = nil
	}
	e.onboard = kept
	if alighted > 0 {
		metrics.RecordDeliveries(e.label, alighted)
	}

	spotsLeft := e.capacity - len(e.onboard)
	var boarding []*Passenger
	if destinationReached {
		boarding = e.current.takePassengers(spotsLeft)
		if len(boarding) > 0 {
			e.destination = boarding[0].Destination()
		}
	} else {
		boarding = e.current.takePassengersToward(spotsLeft, e.destination)
	}
	e.onboard = append(e.onboard, boarding...)
	if len(boarding) > 0 {
		metrics.RecordBoardings(e.label, len(boarding))
	}
}

// adoptDestination picks the next destination for an elevator standing
// still: the first onboard passenger's destination, or failing that any
// floor in the building where passengers are waiting.
func (e *Elevator) adoptDestination() {
	if len(e.onboard) > 0 {
		e.destination = e.onboard[0].Destination()
		return
	}
	if f, ok := e.building.FindFloorWithWaitingPassengers(); ok {
		e.destination = f
		e.log.V(logging.DEBUG).Info("heading for waiting passengers", "floor", f.Number())
	}
}

// IsOccupied reports whether the elevator is transporting passengers or
// on its way to pick some up.
func (e *Elevator) IsOccupied() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !(len(e.onboard) == 0 && e.state == types.Still)
}

// Status returns a snapshot of the elevator, deep-copied so the caller
// never aliases live state.
func (e *Elevator) Status() (types.ElevatorStatus, error) {
	e.mu.Lock()
	live := types.ElevatorStatus{
		Number:      e.number,
		Floor:       e.current.Number(),
		Destination: e.destination.Number(),
		State:       e.state,
		Onboard:     make([]string, 0, len(e.onboard)),
	}
	for _, p := range e.onboard {
		live.Onboard = append(live.Onboard, p.Name())
	}
	e.mu.Unlock()

	var snap types.ElevatorStatus
	if err := deepcopy.Copy(&snap, &live); err != nil {
		return types.ElevatorStatus{}, fmt.Errorf("copy elevator status: %w", err)
	}
	return snap, nil
}

// gracefullyStop stops the elevator cooperatively: a tick already in
// progress completes, and the loop winds down once every onboard
// passenger has been delivered.
func (e *Elevator) gracefullyStop() {
	e.operational.Store(false)
}
