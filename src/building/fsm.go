package building

import (
	"fmt"

	"liftsim/src/types"
)

// NextMove is the pure movement transition of an elevator, evaluated
// once per tick after the passenger exchange. destinationReached must
// be the comparison made at the start of the tick, before the exchange
// possibly replaced the destination; a moving elevator always comes to
// a standstill on the floor it was committed to before it re-evaluates
// where to go.
//
// It returns the next state and the floor the elevator occupies after
// the move. An unknown state is a fatal configuration error; with the
// three declared states it is unreachable.
func NextMove(state types.State, current, destination int, destinationReached bool, bottom, top int) (types.State, int, error) {
	switch state {
	case types.Still:
		if current < destination && current < top {
			return types.Up, current, nil
		}
		if current > destination && current > bottom {
			return types.Down, current, nil
		}
		return types.Still, current, nil
	case types.Up:
		if destinationReached || current == top {
			return types.Still, current, nil
		}
		return types.Up, current + 1, nil
	case types.Down:
		if destinationReached || current == bottom {
			return types.Still, current, nil
		}
		return types.Down, current - 1, nil
	default:
		return state, current, fmt.Errorf("cannot handle movement state %v", state)
	}
}
