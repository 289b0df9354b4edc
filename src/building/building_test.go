package building

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRequestValidation(t *testing.T) {
	b := testBuilding(t, 5)

	assert.False(t, b.AddRequest("X", -1, 3))
	assert.False(t, b.AddRequest("X", 0, 5))
	assert.False(t, b.AddRequest("X", 7, -2))
	assert.Equal(t, 0, b.NumberOfWaitingRequests())

	assert.True(t, b.AddRequest("A", 0, 4))
	assert.Equal(t, 1, b.NumberOfWaitingRequests())
}

func TestFloorLookup(t *testing.T) {
	b := testBuilding(t, 3)

	f, err := b.Floor(2)
	require.NoError(t, err)
	assert.Equal(t, 2, f.Number())

	_, err = b.Floor(3)
	assert.Error(t, err)
	_, err = b.Floor(-1)
	assert.Error(t, err)
}

func TestFindFloorWithWaitingPassengers(t *testing.T) {
	b := testBuilding(t, 6)

	_, ok := b.FindFloorWithWaitingPassengers()
	assert.False(t, ok)

	require.True(t, b.AddRequest("A", 4, 0))
	require.True(t, b.AddRequest("B", 2, 0))

	f, ok := b.FindFloorWithWaitingPassengers()
	require.True(t, ok)
	assert.Equal(t, 2, f.Number(), "expected the lowest floor with waiting passengers")
}

func TestAddElevatorRejectsBadCapacity(t *testing.T) {
	b := testBuilding(t, 5)
	b.AddElevator(0, 2, false)
	assert.Equal(t, 0, b.NumberOfElevators())

	b.AddElevator(6, 2, false)
	assert.Equal(t, 1, b.NumberOfElevators())
}

func TestElevatorStatuses(t *testing.T) {
	b := testBuilding(t, 5)
	addTestElevator(t, b, 6, 1)
	addTestElevator(t, b, 4, 3)

	statuses, err := b.ElevatorStatuses()
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	assert.Equal(t, 1, statuses[0].Number)
	assert.Equal(t, 1, statuses[0].Floor)
	assert.Equal(t, 2, statuses[1].Number)
	assert.Equal(t, 3, statuses[1].Floor)
}

func TestWaitWithoutStart(t *testing.T) {
	b := testBuilding(t, 5)
	assert.NoError(t, b.Wait())
}
