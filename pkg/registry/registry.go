package registry

import (
	"io"
	"sync"

	"github.com/dgraph-esolang/directed/pkg/optype"
	"github.com/dgraph-esolang/directed/pkg/types"
)

// Registry holds the name-to-NodeType mapping for one compilation unit. It
// starts pre-populated with every built-in variant and accumulates the
// unit's own user-defined graphs as RegisterGraph is called for each one.
type Registry struct {
	mu       sync.RWMutex
	types    map[string]types.Variant
	declared map[string]*types.Graph // graphs importable from this unit: its own, plus those it imported under their namespaced names
}

// NewRegistry builds a Registry with every built-in variant pre-populated:
// Nop, Die, Return, Out (writing to io.Discard until BindOut is called), the
// eight arithmetic/bitwise operators, the six relational operators, and the
// unparameterized Use.
func NewRegistry() *Registry {
	r := &Registry{
		types:    make(map[string]types.Variant),
		declared: make(map[string]*types.Graph),
	}
	r.registerBuiltins()
	return r
}

func (r *Registry) registerBuiltins() {
	r.types["Nop"] = optype.Nop
	r.types["Die"] = optype.Die
	r.types["Return"] = optype.ReturnNode
	r.types["Out"] = optype.NewOut(nil)

	for _, op := range []optype.Op{
		optype.OpAdd, optype.OpSub, optype.OpMul, optype.OpDiv,
		optype.OpMod, optype.OpAnd, optype.OpOr, optype.OpXor,
	} {
		r.types[op.String()] = optype.NewOperator(op)
	}

	for _, rel := range []optype.Rel{
		optype.RelEq, optype.RelNe, optype.RelLt,
		optype.RelLe, optype.RelGt, optype.RelGe,
	} {
		r.types[rel.String()] = optype.NewRelation(rel)
	}

	r.types["Use"] = optype.Use
}

// BindOut rebinds the unit's Out variant to write to w, so every graph in
// this unit that references Out shares one host stream. Pass nil to discard
// output.
func (r *Registry) BindOut(w io.Writer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types["Out"] = optype.NewOut(w)
}

// Lookup resolves a type name visible in this unit, whether built-in,
// locally declared, or spliced in from an import.
func (r *Registry) Lookup(name string) (types.Variant, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.types[name]
	return v, ok
}

// RegisterGraph declares a user-defined graph under its own name: a graph
// with NArgs of 0 or 1 becomes a plain GraphNode, one with NArgs > 1
// becomes a junction GraphNode — both follow automatically from
// GraphNodeType.JunctionRange, so no branching is needed here. Returns
// types.ErrRedeclaredType if the name is already taken in this unit.
func (r *Registry) RegisterGraph(g *types.Graph) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[g.Name]; exists {
		return types.ErrRedeclaredType
	}

	r.types[g.Name] = optype.NewGraphNode(g)
	r.declared[g.Name] = g
	return nil
}

// importFrom splices every graph in src.declared (src's own graphs and those
// src itself imported, but not built-ins) into r under namespace, except
// that a graph named "Main" is imported bare as namespace itself rather than
// "namespace.Main".
func (r *Registry) importFrom(namespace string, src *Registry) error {
	src.mu.RLock()
	defer src.mu.RUnlock()
	r.mu.Lock()
	defer r.mu.Unlock()

	for name, g := range src.declared {
		visible := namespace + "." + name
		if name == "Main" {
			visible = namespace
		}
		if _, exists := r.types[visible]; exists {
			return types.ErrRedeclaredType
		}
		r.types[visible] = src.types[name]
		r.declared[visible] = g
	}
	return nil
}
