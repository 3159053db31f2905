package parser

import "github.com/tilewm/wmconfig"

// trailCapacity bounds how many distinct nested grammar contexts a single
// parse may be inside at once (e.g. INITIAL, MODE, MODE_BINDINGS). Like
// stackCapacity, exceeding it indicates a grammar bug.
const trailCapacity = 10

// stateTrail records the path of distinct states entered since INITIAL,
// used by the recovery engine to find the nearest enclosing state whose
// token table admits an <error> descriptor.
type stateTrail struct {
	states [trailCapacity]int
	length int
}

func newStateTrail(initial int) *stateTrail {
	t := &stateTrail{}
	t.states[0] = initial
	t.length = 1
	return t
}

// push transitions the trail to state. If state already appears in the
// trail, the trail is truncated to just after that occurrence (we are
// jumping back to a context we were already in). Otherwise state is
// appended.
func (t *stateTrail) push(state int) error {
	for i := 0; i < t.length; i++ {
		if t.states[i] == state {
			t.length = i + 1
			return nil
		}
	}
	if t.length >= trailCapacity {
		return wmconfig.FormatError(ErrTrailOverflow, "state-trail overflow: nesting exceeds %d distinct states", trailCapacity)
	}
	t.states[t.length] = state
	t.length++
	return nil
}

// visitedDescending returns the trail's states from most to least
// recently entered, the order the recovery engine must search in.
func (t *stateTrail) visitedDescending() []int {
	out := make([]int, t.length)
	for i := 0; i < t.length; i++ {
		out[i] = t.states[t.length-1-i]
	}
	return out
}
