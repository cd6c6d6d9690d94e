package graph

import "errors"

// ErrDanglingEdge is graph-local: types.Graph's own sentinels
// (ErrArityOutOfRange, ErrAsymmetricTopology) cover the invariants the
// spec names; this one guards the arena-index bookkeeping that validation
// here is responsible for before those checks can even run.
var ErrDanglingEdge = errors.New("edge references a node index outside the arena")
