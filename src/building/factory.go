package building

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"

	"liftsim/src/config"
)

// Factory assembles a correctly configured Building. Every setter
// validates its value and keeps the previous one when it is out of
// range; invalid configuration is never fatal and is reported once, in
// aggregate, when the building is created.
type Factory struct {
	buildingName      string
	numberOfFloors    int
	numberOfElevators int
	elevatorCapacity  int
	elevatorSpeed     float64
	debug             bool
	rng               *rand.Rand
	log               logr.Logger

	ignored error
}

// NewFactory returns a factory preloaded with safe defaults and a
// time-seeded random source.
func NewFactory(log logr.Logger) *Factory {
	return &Factory{
		buildingName:      config.DefaultBuildingName,
		numberOfFloors:    config.DefaultNumberOfFloors,
		numberOfElevators: config.DefaultNumberOfElevators,
		elevatorCapacity:  config.DefaultElevatorCapacity,
		elevatorSpeed:     config.DefaultElevatorSpeed,
		rng:               rand.New(rand.NewSource(time.Now().UnixNano())),
		log:               log,
	}
}

func (f *Factory) SetBuildingName(name string) {
	f.buildingName = name
}

func (f *Factory) SetNumberOfFloors(numberOfFloors int) {
	if numberOfFloors > 0 {
		f.numberOfFloors = numberOfFloors
		return
	}
	f.ignored = multierr.Append(f.ignored,
		fmt.Errorf("number of floors %d is not positive", numberOfFloors))
}

func (f *Factory) SetNumberOfElevators(numberOfElevators int) {
	if numberOfElevators > 0 {
		f.numberOfElevators = numberOfElevators
		return
	}
	f.ignored = multierr.Append(f.ignored,
		fmt.Errorf("number of elevators %d is not positive", numberOfElevators))
}

func (f *Factory) SetElevatorCapacity(elevatorCapacity int) {
	if elevatorCapacity > 0 {
		f.elevatorCapacity = elevatorCapacity
		return
	}
	f.ignored = multierr.Append(f.ignored,
		fmt.Errorf("elevator capacity %d is not positive", elevatorCapacity))
}

func (f *Factory) SetElevatorSpeed(floorsPerSecond float64) {
	if floorsPerSecond > 0 && floorsPerSecond < config.MaxElevatorSpeed {
		f.elevatorSpeed = floorsPerSecond
		return
	}
	f.ignored = multierr.Append(f.ignored,
		fmt.Errorf("elevator speed %v is outside (0, %v)", floorsPerSecond, config.MaxElevatorSpeed))
}

func (f *Factory) SetDebug(debug bool) {
	f.debug = debug
}

// SetRandomSource replaces the time-seeded random source, making the
// elevators' initial placement reproducible.
func (f *Factory) SetRandomSource(rng *rand.Rand) {
	if rng != nil {
		f.rng = rng
	}
}

// Create assembles the building, adds the configured number of
// elevators and starts operation.
func (f *Factory) Create() *Building {
	if f.ignored != nil {
		f.log.Info("ignored invalid configuration values", "values", f.ignored.Error())
	}
	b := New(f.buildingName, f.numberOfFloors, f.log, f.rng)
	for i := 0; i < f.numberOfElevators; i++ {
		b.AddElevator(f.elevatorCapacity, f.elevatorSpeed, f.debug)
	}
	b.StartOperation()
	return b
}
