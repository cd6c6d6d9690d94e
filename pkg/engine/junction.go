package engine

import (
	"context"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// junctionSlot holds one in-flight synchronization at a junction node: a
// fixed-size vector, indexed by parent edge index, each position either
// empty (nil) or holding exactly one Executor.
type junctionSlot struct {
	executors []*Executor
	filled    int
}

func newJunctionSlot(arity int) *junctionSlot {
	return &junctionSlot{executors: make([]*Executor, arity)}
}

func (s *junctionSlot) full() bool { return s.filled == len(s.executors) }

// arrive implements the JunctionRegistry synchronization protocol for an
// executor reaching a junction node through parent edge index k: first-fit
// slot assignment, appending a new slot if none fit, and returns the slot the
// executor was placed in.
func (gi *GraphInstance) arrive(nodeIdx int, exec *Executor) *junctionSlot {
	node := &gi.graph.Nodes[nodeIdx]
	arity := len(node.Parents)
	k := exec.lastEdgeIndex

	var slot *junctionSlot
	for _, s := range gi.junctions[nodeIdx] {
		if s.executors[k] == nil {
			slot = s
			break
		}
	}
	if slot == nil {
		slot = newJunctionSlot(arity)
		gi.junctions[nodeIdx] = append(gi.junctions[nodeIdx], slot)
	}

	slot.executors[k] = exec
	slot.filled++
	exec.waiting = slot
	return slot
}

// removeSlot drops slot from nodeIdx's slot list once it has been drained.
func (gi *GraphInstance) removeSlot(nodeIdx int, slot *junctionSlot) {
	slots := gi.junctions[nodeIdx]
	kept := slots[:0]
	for _, s := range slots {
		if s != slot {
			kept = append(kept, s)
		}
	}
	gi.junctions[nodeIdx] = kept
}

// drain fires a fully-populated slot: the node's type executes once with
// the slot's accumulators in parent order, the filling executor survives
// and carries the resulting Outcome, and every other executor in the slot
// is marked dead — the tie-break rule from the junction synchronization
// protocol.
func (gi *GraphInstance) drain(nodeIdx int, slot *junctionSlot, filler *Executor) error {
	node := &gi.graph.Nodes[nodeIdx]

	args := make([]bignum.Integer, len(slot.executors))
	for i, e := range slot.executors {
		args[i] = e.accumulator
	}

	outcome, err := node.Type.Execute(args, gi)
	if err != nil {
		return types.AtPosition(node.Pos, err)
	}

	for _, e := range slot.executors {
		if e != filler {
			e.dead = true
		}
	}
	filler.waiting = nil
	gi.removeSlot(nodeIdx, slot)
	gi.applyOutcome(filler, outcome)
	gi.notifyJunctionFire(nodeIdx)
	if gi.telemetry != nil {
		gi.telemetry.RecordJunctionFire(context.Background(), gi.graph.Name, node.ID)
	}

	return nil
}

// resolveJunction is invoked when an executor's Move lands on a junction
// node with more than one declared parent: it arrives at the slot registry
// and, if that arrival fills the slot, drains it immediately.
func (gi *GraphInstance) resolveJunction(nodeIdx int, exec *Executor) error {
	slot := gi.arrive(nodeIdx, exec)
	if !slot.full() {
		return nil
	}
	return gi.drain(nodeIdx, slot, exec)
}

// recheckJunction re-examines an already-parked executor's reservation on
// its next turn in the scheduler. Under the synchronization protocol a slot
// is always drained synchronously by whichever arrival fills it, so this is
// ordinarily a no-op; it exists to keep a parked executor's per-step action
// faithful to the junction resolver contract rather than silently skipping.
func (gi *GraphInstance) recheckJunction(exec *Executor) error {
	slot := exec.waiting
	if !slot.full() {
		return nil
	}
	return gi.drain(exec.current, slot, exec)
}
