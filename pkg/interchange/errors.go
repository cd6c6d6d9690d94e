package interchange

import "errors"

// Sentinel errors for interchange document decoding.
var (
	ErrSchemaValidation = errors.New("interchange document failed schema validation")
	ErrUnknownType       = errors.New("node references a type name not found in the registry")
	ErrUnknownGraphRef   = errors.New("edge or input reference names a graph not present in this document")
	ErrNodeIndexOutOfRange = errors.New("edge references a node index outside the graph's node array")
)
