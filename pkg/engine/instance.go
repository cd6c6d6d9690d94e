package engine

import (
	"bufio"
	"context"
	"os"
	"time"

	"github.com/dgraph-esolang/directed/pkg/bignum"
	"github.com/dgraph-esolang/directed/pkg/config"
	"github.com/dgraph-esolang/directed/pkg/logging"
	"github.com/dgraph-esolang/directed/pkg/observer"
	"github.com/dgraph-esolang/directed/pkg/telemetry"
	"github.com/dgraph-esolang/directed/pkg/types"
	"github.com/google/uuid"
)

// GraphInstance is the scheduler: it owns a graph's live Executors and
// JunctionSlots for the duration of one run, steps them to completion, and
// delivers the resulting return value (or the fact that none arrived).
//
// It implements types.Runner so a GraphNode variant can invoke a nested
// sub-graph synchronously: RunGraph constructs a child GraphInstance sharing
// this one's config, observers, logger, telemetry and stdout, one depth
// level deeper, and runs it to completion before returning.
type GraphInstance struct {
	graph *types.Graph
	cfg   *config.Config

	observers *observer.Manager
	logger    *logging.Logger
	telemetry *telemetry.Provider
	output    *bufio.Writer

	runID string
	depth int

	alive       []*Executor
	pendingAdd  []*Executor
	returnValue *bignum.Integer
	junctions   map[int][]*junctionSlot
	nextID      int
	stepCount   int
}

// New creates a top-level GraphInstance for g, ready to Run. Use the
// With* methods to attach observers, a custom logger, configuration limits,
// telemetry, or a buffered stdout before calling Run.
func New(g *types.Graph) *GraphInstance {
	return &GraphInstance{
		graph:     g,
		cfg:       config.Default(),
		observers: observer.NewManager(),
		logger:    logging.New(logging.DefaultConfig()).WithGraphName(g.Name),
		junctions: make(map[int][]*junctionSlot),
		runID:     uuid.New().String(),
	}
}

// WithConfig attaches the operator safety-valve limits (max steps,
// executors, graph depth) and, when cfg names graphs to trace, registers
// the default debug-mode observer (observer.DebugLineObserver) so §6's
// line format is produced without the caller wiring it by hand. Returns gi
// for chaining.
func (gi *GraphInstance) WithConfig(cfg *config.Config) *GraphInstance {
	if cfg == nil {
		return gi
	}
	gi.cfg = cfg
	if len(cfg.DebugGraphs) > 0 {
		gi.observers.Register(observer.NewDebugLineObserver(os.Stdout, cfg.DebugGraphs...))
	}
	return gi
}

// WithLogger replaces the structured logger. Returns gi for chaining.
func (gi *GraphInstance) WithLogger(l *logging.Logger) *GraphInstance {
	if l != nil {
		gi.logger = l
	}
	return gi
}

// WithTelemetry attaches an OpenTelemetry/Prometheus provider. Returns gi
// for chaining.
func (gi *GraphInstance) WithTelemetry(p *telemetry.Provider) *GraphInstance {
	gi.telemetry = p
	return gi
}

// WithOutput attaches the buffered writer Out nodes were constructed
// against, so the instance can flush it at the end of every step per the
// output-ordering contract. Returns gi for chaining.
func (gi *GraphInstance) WithOutput(w *bufio.Writer) *GraphInstance {
	gi.output = w
	return gi
}

// RegisterObserver adds an observer to receive scheduling events. Returns gi
// for chaining.
func (gi *GraphInstance) RegisterObserver(o observer.Observer) *GraphInstance {
	gi.observers.Register(o)
	return gi
}

// RunID returns the identifier shared by this instance and any nested
// sub-graph instances it spawns, for log/trace correlation.
func (gi *GraphInstance) RunID() string { return gi.runID }

// Depth returns the sub-graph nesting depth of this instance; a top-level
// Main instance is depth 0.
func (gi *GraphInstance) Depth() int { return gi.depth }

// Run seeds executors per the graph's input and parentless nodes and steps
// the scheduler to completion: either a RETURN is observed, or every
// executor dies. The resulting Outcome is VALUE(return_value) in the first
// case, DIE in the second.
func (gi *GraphInstance) Run(inputs []bignum.Integer) (types.Outcome, error) {
	ctx := context.Background()
	start := time.Now()
	gi.notifyRunStart(ctx)

	if err := gi.seed(inputs); err != nil {
		gi.notifyRunEnd(ctx, start, types.Outcome{}, err)
		return types.Outcome{}, err
	}

	var runErr error
	for len(gi.alive) > 0 && gi.returnValue == nil {
		if gi.cfg != nil && gi.cfg.MaxSteps > 0 && gi.stepCount >= gi.cfg.MaxSteps {
			runErr = ErrMaxStepsExceeded
			break
		}
		if err := gi.runStep(ctx); err != nil {
			runErr = err
			break
		}
		if gi.cfg != nil && gi.cfg.MaxExecutors > 0 && len(gi.alive) > gi.cfg.MaxExecutors {
			runErr = ErrMaxExecutorsExceeded
			break
		}
	}

	outcome := gi.outcome()
	if runErr != nil {
		gi.notifyRunEnd(ctx, start, outcome, runErr)
		return types.Outcome{}, runErr
	}
	gi.notifyRunEnd(ctx, start, outcome, nil)
	return outcome, nil
}

// RunGraph implements types.Runner: it runs g to completion in a nested
// GraphInstance sharing this instance's resources, one depth level deeper.
func (gi *GraphInstance) RunGraph(g *types.Graph, inputs []bignum.Integer) (types.Outcome, error) {
	if gi.cfg != nil && gi.cfg.MaxGraphDepth > 0 && gi.depth+1 > gi.cfg.MaxGraphDepth {
		return types.Outcome{}, ErrMaxGraphDepthExceeded
	}

	child := gi.nested(g)
	ctx := context.Background()
	gi.notifySubgraphEnter(ctx, g.Name)
	if gi.telemetry != nil {
		gi.telemetry.RecordSubgraphCall(ctx, gi.graph.Name, g.Name)
	}
	outcome, err := child.Run(inputs)
	gi.notifySubgraphExit(ctx, g.Name)
	return outcome, err
}

func (gi *GraphInstance) nested(g *types.Graph) *GraphInstance {
	return &GraphInstance{
		graph:     g,
		cfg:       gi.cfg,
		observers: gi.observers,
		logger:    gi.logger.WithGraphName(g.Name),
		telemetry: gi.telemetry,
		output:    gi.output,
		runID:     gi.runID,
		depth:     gi.depth + 1,
		junctions: make(map[int][]*junctionSlot),
	}
}

func (gi *GraphInstance) outcome() types.Outcome {
	if gi.returnValue != nil {
		return types.ValueOutcome(*gi.returnValue)
	}
	return types.DieOutcome()
}

// seed creates one executor per input node (carrying the corresponding
// argument) and one per parentless non-input node (carrying zero), each
// immediately moved to itself — its node type's first action runs as part
// of seeding, before the regular step loop begins.
func (gi *GraphInstance) seed(inputs []bignum.Integer) error {
	g := gi.graph

	for i, nodeIdx := range g.InputNodes {
		exec := gi.newExecutor(nodeIdx, inputs[i])
		gi.alive = append(gi.alive, exec)
		if err := gi.move(exec, nodeIdx); err != nil {
			return err
		}
		if gi.returnValue != nil {
			return nil
		}
	}

	for _, nodeIdx := range g.ParentlessNodes {
		exec := gi.newExecutor(nodeIdx, bignum.Zero)
		gi.alive = append(gi.alive, exec)
		if err := gi.move(exec, nodeIdx); err != nil {
			return err
		}
		if gi.returnValue != nil {
			return nil
		}
	}

	return nil
}

func (gi *GraphInstance) newExecutor(current int, acc bignum.Integer) *Executor {
	id := gi.nextID
	gi.nextID++
	return &Executor{id: id, current: current, accumulator: acc, lastEdgeIndex: -1}
}

// runStep performs one scheduler step: advance every currently-alive
// executor by one action, left to right, aborting immediately if a RETURN
// is observed; then compact alive, append pending_add, and flush stdout.
func (gi *GraphInstance) runStep(ctx context.Context) error {
	gi.stepCount++
	gi.notifyStepStart(ctx)

	for _, exec := range gi.alive {
		if err := gi.stepExecutor(exec); err != nil {
			return err
		}
		if gi.returnValue != nil {
			break
		}
	}

	died := gi.compact()
	if died > 0 {
		gi.notifyExecutorDeath(ctx, died)
		if gi.telemetry != nil {
			gi.telemetry.RecordExecutorDeath(ctx, gi.graph.Name, died)
		}
	}

	if gi.output != nil {
		gi.output.Flush()
	}
	return nil
}

// compact removes dead executors from alive in place, preserving the
// relative order of survivors, then appends pending_add at the tail and
// clears it. Returns the number of executors removed.
func (gi *GraphInstance) compact() int {
	survivors := gi.alive[:0]
	died := 0
	for _, e := range gi.alive {
		if e.dead {
			died++
			continue
		}
		survivors = append(survivors, e)
	}
	survivors = append(survivors, gi.pendingAdd...)
	gi.alive = survivors
	gi.pendingAdd = nil
	return died
}

// stepExecutor advances one executor by exactly one action, per the
// executor state machine: skip if dead, re-check a junction reservation if
// parked, die if childless, otherwise fork clones onto children[1:] and
// move this executor onto children[0].
func (gi *GraphInstance) stepExecutor(exec *Executor) error {
	if exec.dead {
		return nil
	}
	if exec.waiting != nil {
		return gi.recheckJunction(exec)
	}

	node := &gi.graph.Nodes[exec.current]
	if len(node.Children) == 0 {
		exec.dead = true
		return nil
	}

	forks := 0
	for _, childIdx := range node.Children[1:] {
		clone := gi.newExecutor(exec.current, exec.accumulator)
		gi.pendingAdd = append(gi.pendingAdd, clone)
		forks++
		if err := gi.move(clone, childIdx); err != nil {
			return err
		}
		if gi.returnValue != nil {
			return nil
		}
	}
	if forks > 0 {
		gi.notifyExecutorFork(context.Background(), forks)
		if gi.telemetry != nil {
			gi.telemetry.RecordExecutorFork(context.Background(), gi.graph.Name, forks)
		}
	}

	return gi.move(exec, node.Children[0])
}

// move advances exec onto the node at targetIdx: it records the parent-edge
// index it arrived through, then either synchronizes at a true junction
// (more than one declared parent) or executes the node's type immediately
// with the single incoming accumulator.
func (gi *GraphInstance) move(exec *Executor, targetIdx int) error {
	prev := exec.current
	node := &gi.graph.Nodes[targetIdx]

	exec.lastEdgeIndex = indexOf(node.Parents, prev)
	exec.current = targetIdx
	gi.notifyExecutorMove(context.Background(), exec)

	if _, ok := types.IsJunction(node.Type); ok && len(node.Parents) > 1 {
		return gi.resolveJunction(targetIdx, exec)
	}

	outcome, err := node.Type.Execute([]bignum.Integer{exec.accumulator}, gi)
	if err != nil {
		return types.AtPosition(node.Pos, err)
	}
	gi.applyOutcome(exec, outcome)
	return nil
}

// applyOutcome dispatches the result of one node execution into the
// scheduler state: VALUE updates the accumulator, RETURN ends the instance,
// DIE removes only exec, DIE_ALL removes every executor the instance owns.
func (gi *GraphInstance) applyOutcome(exec *Executor, outcome types.Outcome) {
	switch outcome.Kind {
	case types.Value:
		exec.accumulator = outcome.Value
	case types.Return:
		v := outcome.Value
		gi.returnValue = &v
	case types.Die:
		exec.dead = true
	case types.DieAll:
		for _, e := range gi.alive {
			e.dead = true
		}
		for _, e := range gi.pendingAdd {
			e.dead = true
		}
		exec.dead = true
	}
}
