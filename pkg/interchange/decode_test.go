package interchange

import (
	"testing"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/engine"
	"github.com/dgraph-esolang/directed/pkg/registry"
	"github.com/dgraph-esolang/directed/pkg/types"
)

const echoDocument = `{
	"graphs": [
		{
			"name": "Main",
			"nparameters": 0,
			"nargs": 1,
			"nodes": [
				{"name": "in", "type": "Nop"},
				{"name": "ret", "type": "Return"}
			],
			"edges": [[0, 1]],
			"input_nodes": [0]
		}
	]
}`

func TestDecodeEchoDocument(t *testing.T) {
	reg := registry.NewRegistry()

	graphs, err := Decode([]byte(echoDocument), reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(graphs) != 1 {
		t.Fatalf("got %d graphs, want 1", len(graphs))
	}

	outcome, err := engine.New(graphs[0]).Run([]bignum.Integer{bignum.FromInt64(42)})
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if outcome.Kind != types.Value || !outcome.Value.Eq(bignum.FromInt64(42)) {
		t.Fatalf("got %v %v, want VALUE(42)", outcome.Kind, outcome.Value)
	}
}

func TestDecodeRejectsMalformedDocument(t *testing.T) {
	reg := registry.NewRegistry()

	_, err := Decode([]byte(`{"graphs": [{"name": "Main"}]}`), reg)
	if err == nil {
		t.Fatal("expected a schema validation error for a missing required field")
	}
}

func TestDecodeRejectsUnknownType(t *testing.T) {
	reg := registry.NewRegistry()

	doc := `{
		"graphs": [
			{
				"name": "Main",
				"nparameters": 0,
				"nargs": 0,
				"nodes": [{"name": "x", "type": "NoSuchType"}],
				"edges": [],
				"input_nodes": []
			}
		]
	}`

	_, err := Decode([]byte(doc), reg)
	if err == nil {
		t.Fatal("expected an error for an unresolvable type name")
	}
}

func TestDecodeAppliesParameters(t *testing.T) {
	reg := registry.NewRegistry()

	doc := `{
		"graphs": [
			{
				"name": "Main",
				"nparameters": 0,
				"nargs": 1,
				"nodes": [
					{"name": "in", "type": "Nop"},
					{"name": "plus5", "type": "+", "params": [5]},
					{"name": "ret", "type": "Return"}
				],
				"edges": [[0, 1], [1, 2]],
				"input_nodes": [0]
			}
		]
	}`

	graphs, err := Decode([]byte(doc), reg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	outcome, err := engine.New(graphs[0]).Run([]bignum.Integer{bignum.FromInt64(10)})
	if err != nil {
		t.Fatalf("unexpected run error: %v", err)
	}
	if outcome.Kind != types.Value || !outcome.Value.Eq(bignum.FromInt64(15)) {
		t.Fatalf("got %v %v, want VALUE(15)", outcome.Kind, outcome.Value)
	}
}
