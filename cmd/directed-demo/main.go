// Command directed-demo builds and runs the six canonical Directed programs
// by hand, through the Go construction API, since the external surface
// parser is out of scope for this module.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/engine"
	"github.com/dgraph-esolang/directed/pkg/optype"
	"github.com/dgraph-esolang/directed/pkg/types"
)

func i(n int64) bignum.Integer { return bignum.FromInt64(n) }

func main() {
	fmt.Println("=================================================")
	fmt.Println("Directed engine demo")
	fmt.Println("=================================================")
	fmt.Println()

	echo()
	helloByte()
	conditionalFilter()
	forkAndMerge()
	dieAllPropagation()
	subgraphAsJunction()
}

func report(name string, outcome types.Outcome, err error) {
	if err != nil {
		fmt.Printf("%s: error: %v\n\n", name, err)
		return
	}
	switch outcome.Kind {
	case types.Value:
		fmt.Printf("%s: returned %s\n\n", name, outcome.Value.String())
	case types.Die:
		fmt.Printf("%s: died, no return\n\n", name)
	default:
		fmt.Printf("%s: outcome %s\n\n", name, outcome.Kind.String())
	}
}

func echo() {
	g := types.NewGraph("Main")
	in := g.AddNode(optype.Nop, "in", types.Position{})
	ret := g.AddNode(optype.ReturnNode, "ret", types.Position{})
	g.Connect(in, ret)
	g.MarkInputs(0, []int{in})
	g.ComputeParentless()

	outcome, err := engine.New(g).Run([]bignum.Integer{i(42)})
	report("echo(42)", outcome, err)
}

func helloByte() {
	out := bufio.NewWriter(os.Stdout)

	g := types.NewGraph("Main")
	in := g.AddNode(optype.Nop, "in", types.Position{})
	outNode := g.AddNode(optype.NewOut(out), "out", types.Position{})
	ret := g.AddNode(optype.ReturnNode, "ret", types.Position{})
	g.Connect(in, outNode)
	g.Connect(outNode, ret)
	g.MarkInputs(0, []int{in})
	g.ComputeParentless()

	fmt.Print("hello-byte(65): stdout=")
	outcome, err := engine.New(g).WithOutput(out).Run([]bignum.Integer{i(65)})
	fmt.Println()
	report("hello-byte(65)", outcome, err)
}

func conditionalFilter() {
	g := types.NewGraph("Main")
	lit3 := g.AddNode(optype.NewLiteral(i(3)), "three", types.Position{})
	lit5 := g.AddNode(optype.NewLiteral(i(5)), "five", types.Position{})
	eq := g.AddNode(optype.NewRelation(optype.RelEq), "eq", types.Position{})
	ret := g.AddNode(optype.ReturnNode, "ret", types.Position{})
	g.Connect(lit3, eq)
	g.Connect(lit5, eq)
	g.Connect(eq, ret)
	g.MarkInputs(0, nil)
	g.ComputeParentless()

	outcome, err := engine.New(g).Run(nil)
	report("conditional-filter(3=5)", outcome, err)
}

func forkAndMerge() {
	g := types.NewGraph("Main")
	x := g.AddNode(optype.Nop, "x", types.Position{})
	a := g.AddNode(optype.Nop, "a", types.Position{})
	b := g.AddNode(optype.Nop, "b", types.Position{})
	plus := g.AddNode(optype.NewOperator(optype.OpAdd), "plus", types.Position{})
	ret := g.AddNode(optype.ReturnNode, "ret", types.Position{})
	g.Connect(x, a)
	g.Connect(x, b)
	g.Connect(a, plus)
	g.Connect(b, plus)
	g.Connect(plus, ret)
	g.MarkInputs(0, []int{x})
	g.ComputeParentless()

	outcome, err := engine.New(g).Run([]bignum.Integer{i(7)})
	report("fork-and-merge(7)", outcome, err)
}

func dieAllPropagation() {
	g := types.NewGraph("Main")
	p1 := g.AddNode(optype.Nop, "p1", types.Position{})
	die := g.AddNode(optype.Die, "die", types.Position{})
	p2 := g.AddNode(optype.Nop, "p2", types.Position{})
	mid := g.AddNode(optype.Nop, "mid", types.Position{})
	tail := g.AddNode(optype.Nop, "tail", types.Position{})
	g.Connect(p1, die)
	g.Connect(p2, mid)
	g.Connect(mid, tail)
	g.MarkInputs(0, nil)
	g.ComputeParentless()

	outcome, err := engine.New(g).Run(nil)
	report("die-all-propagation", outcome, err)
}

func subgraphAsJunction() {
	pair := types.NewGraph("Pair")
	a := pair.AddNode(optype.Nop, "a", types.Position{})
	b := pair.AddNode(optype.Nop, "b", types.Position{})
	pret := pair.AddNode(optype.ReturnNode, "ret", types.Position{})
	sink := pair.AddNode(optype.Nop, "sink", types.Position{})
	pair.Connect(a, pret)
	pair.Connect(b, sink)
	pair.MarkInputs(0, []int{a, b})
	pair.ComputeParentless()

	outer := types.NewGraph("Main")
	lit10 := outer.AddNode(optype.NewLiteral(i(10)), "ten", types.Position{})
	lit20 := outer.AddNode(optype.NewLiteral(i(20)), "twenty", types.Position{})
	pairNode := outer.AddNode(optype.NewGraphNode(pair), "pair", types.Position{})
	ret := outer.AddNode(optype.ReturnNode, "ret", types.Position{})
	outer.Connect(lit10, pairNode)
	outer.Connect(lit20, pairNode)
	outer.Connect(pairNode, ret)
	outer.MarkInputs(0, nil)
	outer.ComputeParentless()

	outcome, err := engine.New(outer).Run(nil)
	report("subgraph-as-junction(Pair(10,20))", outcome, err)
}
