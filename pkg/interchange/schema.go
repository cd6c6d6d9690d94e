package interchange

// documentSchema is the JSON Schema every interchange document must satisfy
// before it is decoded. It mirrors the data model (pkg/types) directly: a
// document is an array of graphs, each with parameter/argument counts, an
// ordered node array, and an ordered edge array of [from, to] index pairs.
const documentSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["graphs"],
	"properties": {
		"graphs": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["name", "nparameters", "nargs", "nodes", "edges", "input_nodes"],
				"properties": {
					"name": {"type": "string", "minLength": 1},
					"nparameters": {"type": "integer", "minimum": 0},
					"nargs": {"type": "integer", "minimum": 0},
					"nodes": {
						"type": "array",
						"items": {
							"type": "object",
							"required": ["name", "type"],
							"properties": {
								"name": {"type": "string"},
								"type": {"type": "string", "minLength": 1},
								"params": {
									"type": "array",
									"items": {"type": "integer"}
								},
								"pos": {
									"type": "object",
									"properties": {
										"filename": {"type": "string"},
										"line": {"type": "integer"},
										"column": {"type": "integer"}
									}
								}
							}
						}
					},
					"edges": {
						"type": "array",
						"items": {
							"type": "array",
							"items": {"type": "integer", "minimum": 0},
							"minItems": 2,
							"maxItems": 2
						}
					},
					"input_nodes": {
						"type": "array",
						"items": {"type": "integer", "minimum": 0}
					}
				}
			}
		}
	}
}`
