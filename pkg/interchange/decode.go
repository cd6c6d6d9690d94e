package interchange

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/graph"
	"github.com/dgraph-esolang/directed/pkg/registry"
	"github.com/dgraph-esolang/directed/pkg/types"
	"github.com/xeipuuv/gojsonschema"
)

type document struct {
	Graphs []graphDoc `json:"graphs"`
}

type graphDoc struct {
	Name        string    `json:"name"`
	NParameters int       `json:"nparameters"`
	NArgs       int       `json:"nargs"`
	Nodes       []nodeDoc `json:"nodes"`
	Edges       [][2]int  `json:"edges"`
	InputNodes  []int     `json:"input_nodes"`
}

type nodeDoc struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Params []int64 `json:"params"`
	Pos    *posDoc `json:"pos"`
}

type posDoc struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

// Decode validates data against the interchange schema, then builds one
// types.Graph per document entry, registering each under reg as it goes so
// sibling graphs in the same document can reference one another as
// sub-graph types regardless of declaration order. Every decoded graph is
// run through graph.Validate before being returned.
func Decode(data []byte, reg *registry.Registry) ([]*types.Graph, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	graphs := make([]*types.Graph, len(doc.Graphs))
	for i, gd := range doc.Graphs {
		g := types.NewGraph(gd.Name)
		g.MarkInputs(gd.NParameters, gd.InputNodes)
		graphs[i] = g
		if err := reg.RegisterGraph(g); err != nil {
			return nil, fmt.Errorf("graph %q: %w", gd.Name, err)
		}
	}

	for i, gd := range doc.Graphs {
		if err := fillGraph(graphs[i], gd, reg); err != nil {
			return nil, fmt.Errorf("graph %q: %w", gd.Name, err)
		}
		if err := graph.Validate(graphs[i]); err != nil {
			return nil, err
		}
	}

	return graphs, nil
}

func validateSchema(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(documentSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("%w: %s", ErrSchemaValidation, strings.Join(msgs, "; "))
}

func fillGraph(g *types.Graph, gd graphDoc, reg *registry.Registry) error {
	for _, nd := range gd.Nodes {
		variant, ok := reg.Lookup(nd.Type)
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownType, nd.Type)
		}

		if len(nd.Params) > 0 {
			pz, ok := types.IsParameterizable(variant)
			if !ok {
				return fmt.Errorf("%w: %q", types.ErrNotParameterizable, nd.Type)
			}
			params := make([]bignum.Integer, len(nd.Params))
			for j, p := range nd.Params {
				params[j] = bignum.FromInt64(p)
			}
			bound, err := pz.Parameterize(params)
			if err != nil {
				return err
			}
			variant = bound
		}

		pos := types.Position{}
		if nd.Pos != nil {
			pos = types.Position{Filename: nd.Pos.Filename, Line: nd.Pos.Line, Column: nd.Pos.Column}
		}
		g.AddNode(variant, nd.Name, pos)
	}

	for _, e := range gd.Edges {
		if e[0] < 0 || e[0] >= len(g.Nodes) || e[1] < 0 || e[1] >= len(g.Nodes) {
			return ErrNodeIndexOutOfRange
		}
		g.Connect(e[0], e[1])
	}

	g.MarkInputs(gd.NParameters, gd.InputNodes)
	g.ComputeParentless()
	return nil
}
