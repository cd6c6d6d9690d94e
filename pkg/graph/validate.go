package graph

import (
	"fmt"

	"github.com/dgraph-esolang/directed/pkg/types"
)

// Validate checks every structural invariant a Graph must satisfy before it
// can be instantiated: in-range node indices, symmetric parent/child
// topology, and junction arity within the declared range. Parameterizable
// types with min > 0 are enforced at construction time by construction
// itself (the parser only ever produces a Parameterize'd type for such a
// node), so that check has no separate runtime validation pass here.
func Validate(g *types.Graph) error {
	n := len(g.Nodes)

	for i := range g.Nodes {
		node := &g.Nodes[i]
		for _, p := range node.Parents {
			if p < 0 || p >= n {
				return types.AtPosition(node.Pos, ErrDanglingEdge)
			}
			if !containsIndex(g.Nodes[p].Children, i) {
				return types.AtPosition(node.Pos, types.ErrAsymmetricTopology)
			}
		}
		for _, c := range node.Children {
			if c < 0 || c >= n {
				return types.AtPosition(node.Pos, ErrDanglingEdge)
			}
			if !containsIndex(g.Nodes[c].Parents, i) {
				return types.AtPosition(node.Pos, types.ErrAsymmetricTopology)
			}
		}

		if jt, ok := types.IsJunction(node.Type); ok {
			min, max := jt.JunctionRange()
			if !types.InRange(len(node.Parents), min, max) {
				return types.AtPosition(node.Pos, fmt.Errorf("%w: node %q has %d parents, want [%d,%d]",
					types.ErrArityOutOfRange, node.Name, len(node.Parents), min, max))
			}
		}
	}

	return nil
}

func containsIndex(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
