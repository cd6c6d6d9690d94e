package optype

import (
	"bytes"
	"testing"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/types"
)

func i(n int64) bignum.Integer { return bignum.FromInt64(n) }

func TestNop(t *testing.T) {
	out, err := Nop.Execute([]bignum.Integer{i(7)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.Value || out.Value.Cmp(i(7)) != 0 {
		t.Fatalf("got %v, want VALUE(7)", out)
	}
	if _, err := Nop.Execute(nil, nil); err != ErrTooFewArgs {
		t.Fatalf("got %v, want ErrTooFewArgs", err)
	}
}

func TestDie(t *testing.T) {
	out, err := Die.Execute(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.DieAll {
		t.Fatalf("got %v, want DIE_ALL", out)
	}
}

func TestReturn(t *testing.T) {
	out, err := ReturnNode.Execute([]bignum.Integer{i(42)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.Return || out.Value.Cmp(i(42)) != 0 {
		t.Fatalf("got %v, want RETURN(42)", out)
	}
}

func TestOut(t *testing.T) {
	var buf bytes.Buffer
	o := NewOut(&buf)
	out, err := o.Execute([]bignum.Integer{i(321)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.Value || out.Value.Cmp(i(321)) != 0 {
		t.Fatalf("got %v, want VALUE(321)", out)
	}
	if got, want := buf.Bytes(), []byte{byte(321 % 256)}; !bytes.Equal(got, want) {
		t.Fatalf("wrote %v, want %v", got, want)
	}
}

func TestLiteral(t *testing.T) {
	l := NewLiteral(i(99))
	out, err := l.Execute(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.Value || out.Value.Cmp(i(99)) != 0 {
		t.Fatalf("got %v, want VALUE(99)", out)
	}
}

func TestOperatorFold(t *testing.T) {
	add := NewOperator(OpAdd)
	out, err := add.Execute([]bignum.Integer{i(1), i(2), i(3)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value.Cmp(i(6)) != 0 {
		t.Fatalf("got %v, want VALUE(6)", out)
	}

	parameterized, err := add.Parameterize([]bignum.Integer{i(10)})
	if err != nil {
		t.Fatalf("parameterize: %v", err)
	}
	out, err = parameterized.Execute([]bignum.Integer{i(1), i(2)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value.Cmp(i(13)) != 0 {
		t.Fatalf("got %v, want VALUE(13)", out)
	}
}

func TestOperatorDivideByZero(t *testing.T) {
	div := NewOperator(OpDiv)
	_, err := div.Execute([]bignum.Integer{i(5), i(0)}, nil)
	if err != bignum.ErrDivideByZero {
		t.Fatalf("got %v, want ErrDivideByZero", err)
	}
}

func TestRelationHolds(t *testing.T) {
	lt := NewRelation(RelLt)
	out, err := lt.Execute([]bignum.Integer{i(1), i(2), i(3)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.Value || out.Value.Cmp(i(1)) != 0 {
		t.Fatalf("got %v, want VALUE(1)", out)
	}
}

func TestRelationFails(t *testing.T) {
	lt := NewRelation(RelLt)
	out, err := lt.Execute([]bignum.Integer{i(3), i(2)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Kind != types.Die {
		t.Fatalf("got %v, want DIE", out)
	}
}

func TestUseUnparameterized(t *testing.T) {
	_, err := Use.Execute([]bignum.Integer{i(1)}, nil)
	if err != ErrUnparameterizedUse {
		t.Fatalf("got %v, want ErrUnparameterizedUse", err)
	}
	if min, max := Use.JunctionRange(); min != 0 || max != 0 {
		t.Fatalf("got (%d,%d), want (0,0)", min, max)
	}
}

func TestUseParameterized(t *testing.T) {
	v, err := Use.Parameterize([]bignum.Integer{i(1)})
	if err != nil {
		t.Fatalf("parameterize: %v", err)
	}
	use := v.(UseType)
	if min, max := use.JunctionRange(); min != 2 || max != -1 {
		t.Fatalf("got (%d,%d), want (2,-1)", min, max)
	}
	out, err := use.Execute([]bignum.Integer{i(10), i(20)}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value.Cmp(i(20)) != 0 {
		t.Fatalf("got %v, want VALUE(20)", out)
	}
	if _, err := use.Execute([]bignum.Integer{i(10)}, nil); err != ErrTooFewArgs {
		t.Fatalf("got %v, want ErrTooFewArgs", err)
	}
}

func TestUseBadParam(t *testing.T) {
	if _, err := Use.Parameterize([]bignum.Integer{i(-1)}); err != ErrParamNotSelector {
		t.Fatalf("got %v, want ErrParamNotSelector", err)
	}
	if _, err := Use.Parameterize(nil); err != ErrWrongParamCount {
		t.Fatalf("got %v, want ErrWrongParamCount", err)
	}
}

type stubRunner struct {
	out types.Outcome
	err error
	got []bignum.Integer
	g   *types.Graph
}

func (s *stubRunner) RunGraph(g *types.Graph, inputs []bignum.Integer) (types.Outcome, error) {
	s.g = g
	s.got = inputs
	return s.out, s.err
}

func TestGraphNodeNonJunction(t *testing.T) {
	g := types.NewGraph("Sub")
	g.NParameters = 1
	g.NArgs = 0
	gn := NewGraphNode(g)
	if min, max := gn.JunctionRange(); min != 1 || max != 1 {
		t.Fatalf("got (%d,%d), want (1,1)", min, max)
	}
	if min, max := gn.ParamRange(); min != 1 || max != 1 {
		t.Fatalf("got (%d,%d), want (1,1)", min, max)
	}
}

func TestGraphNodeJunction(t *testing.T) {
	g := types.NewGraph("Merge")
	g.NArgs = 2
	gn := NewGraphNode(g)
	if min, max := gn.JunctionRange(); min != 2 || max != 2 {
		t.Fatalf("got (%d,%d), want (2,2)", min, max)
	}

	run := &stubRunner{out: types.ReturnOutcome(i(5))}
	out, err := gn.Execute([]bignum.Integer{i(1), i(2)}, run)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Value.Cmp(i(5)) != 0 {
		t.Fatalf("got %v, want RETURN(5) forwarded", out)
	}
	if len(run.got) != 2 || run.got[0].Cmp(i(1)) != 0 || run.got[1].Cmp(i(2)) != 0 {
		t.Fatalf("RunGraph got inputs %v", run.got)
	}
}
