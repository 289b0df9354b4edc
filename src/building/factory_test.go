package building

import (
	"math/rand"
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liftsim/src/config"
)

func TestFactoryDefaults(t *testing.T) {
	f := NewFactory(logr.Discard())
	f.SetRandomSource(rand.New(rand.NewSource(1)))

	b := f.Create()
	defer func() {
		b.StopOperation()
		require.NoError(t, b.Wait())
	}()

	assert.Equal(t, config.DefaultBuildingName, b.Name())
	assert.Equal(t, config.DefaultNumberOfFloors, b.NumberOfFloors())
	assert.Equal(t, config.DefaultNumberOfElevators, b.NumberOfElevators())
}

func TestFactoryIgnoresInvalidValues(t *testing.T) {
	f := NewFactory(logr.Discard())
	f.SetRandomSource(rand.New(rand.NewSource(1)))

	f.SetBuildingName("DC Tower")
	f.SetNumberOfFloors(-5)
	f.SetNumberOfElevators(0)
	f.SetElevatorCapacity(-1)
	f.SetElevatorSpeed(0)
	f.SetElevatorSpeed(config.MaxElevatorSpeed + 1)
	f.SetRandomSource(nil)

	b := f.Create()
	defer func() {
		b.StopOperation()
		require.NoError(t, b.Wait())
	}()

	// Every invalid value falls back to the previously set one.
	assert.Equal(t, "DC Tower", b.Name())
	assert.Equal(t, config.DefaultNumberOfFloors, b.NumberOfFloors())
	assert.Equal(t, config.DefaultNumberOfElevators, b.NumberOfElevators())
}

func TestFactoryCustomValues(t *testing.T) {
	f := NewFactory(logr.Discard())
	f.SetRandomSource(rand.New(rand.NewSource(7)))
	f.SetBuildingName("Small House")
	f.SetNumberOfFloors(3)
	f.SetNumberOfElevators(1)
	f.SetElevatorCapacity(2)
	f.SetElevatorSpeed(400)

	b := f.Create()
	defer func() {
		b.StopOperation()
		require.NoError(t, b.Wait())
	}()

	assert.Equal(t, "Small House", b.Name())
	assert.Equal(t, 3, b.NumberOfFloors())
	assert.Equal(t, 1, b.NumberOfElevators())
}
