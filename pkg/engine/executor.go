package engine

import "github.com/dgraph-esolang/directed/pkg/bignum"

// Executor is a logical token walking one GraphInstance's graph. It is the
// unit of scheduling: GraphInstance advances every live Executor by exactly
// one action per step.
type Executor struct {
	id            int
	current       int // index into the owning Graph's Nodes arena
	lastEdgeIndex int // index in current.Parents this executor arrived through
	accumulator   bignum.Integer
	waiting       *junctionSlot // non-nil while parked at a junction
	dead          bool
}

// ID returns the executor's identity, unique within its owning GraphInstance.
func (e *Executor) ID() int { return e.id }

// Accumulator returns the Integer this executor currently carries.
func (e *Executor) Accumulator() bignum.Integer { return e.accumulator }

// indexOf returns the first index of v in xs, or -1 if absent. Parents and
// Children lookups use first-match semantics per the language's tie-break
// rule for last_edge_index.
func indexOf(xs []int, v int) int {
	for i, x := range xs {
		if x == v {
			return i
		}
	}
	return -1
}
