package config

import "time"

const (
	DefaultBuildingName      = "Building"
	DefaultNumberOfFloors    = 10
	DefaultNumberOfElevators = 2
	DefaultElevatorCapacity  = 6
	DefaultElevatorSpeed     = 2.0 // floors per second

	// MaxElevatorSpeed bounds the configurable speed; anything between
	// 1 and 20 floors per second is reasonable for a simulation.
	MaxElevatorSpeed = 1000.0

	// DefaultTickInterval is used when an elevator's speed is unset.
	DefaultTickInterval = 500 * time.Millisecond

	MonitorInterval = 2 * time.Second
)
