package building

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanReachDestination(t *testing.T) {
	floors := make([]*Floor, 6)
	for n := range floors {
		floors[n] = newFloor(n, logr.Discard())
	}
	p := NewPassenger("A", floors[3])

	tests := []struct {
		name string
		from int
		to   int
		want bool
	}{
		{name: "destination on the way up", from: 0, to: 5, want: true},
		{name: "destination is the elevator's own", from: 0, to: 3, want: true},
		{name: "elevator stops short going up", from: 0, to: 2, want: false},
		{name: "destination on the way down", from: 5, to: 0, want: true},
		{name: "destination is the elevator's own going down", from: 5, to: 3, want: true},
		{name: "elevator stops short going down", from: 5, to: 4, want: false},
		{name: "wrong direction", from: 4, to: 5, want: false},
		{name: "already at destination", from: 3, to: 5, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.CanReachDestination(floors[tt.from], floors[tt.to]))
		})
	}
}

func TestAskToEnterFloor(t *testing.T) {
	destination := newFloor(4, logr.Discard())
	other := newFloor(2, logr.Discard())
	p := NewPassenger("A", destination)

	assert.False(t, p.AskToEnterFloor(other))
	assert.True(t, p.AskToEnterFloor(destination))
}

func TestAskToLeaveFloor(t *testing.T) {
	destination := newFloor(4, logr.Discard())
	origin := newFloor(0, logr.Discard())
	p := NewPassenger("A", destination)

	require.True(t, origin.AddPassenger(p))
	require.Equal(t, 1, origin.NumberOfWaitingPassengers())

	// A passenger already at its destination never re-boards.
	assert.False(t, p.AskToLeaveFloor(destination))

	// Leaving the origin removes the passenger from its waiting queue.
	assert.True(t, p.AskToLeaveFloor(origin))
	assert.Equal(t, 0, origin.NumberOfWaitingPassengers())
}

func TestPassengerIdentity(t *testing.T) {
	destination := newFloor(1, logr.Discard())
	a := NewPassenger("same name", destination)
	b := NewPassenger("same name", destination)
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, destination, a.Destination())
}
