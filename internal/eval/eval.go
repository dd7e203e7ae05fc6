// Package eval implements the dependency-driven evaluator for a
// dataflow graph. Evaluating a node recursively resolves its inputs,
// either a stored constant or the output of an upstream node, and
// memoizes every computed output in a per-request cache, so each node
// runs at most once per evaluation even under diamond-shaped sharing.
//
// Evaluation is single-threaded and synchronous. One request owns its
// cache exclusively; the graph must not be mutated while a request is
// in flight.
package eval

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/vk/nodeflowgo/internal/ctxlog"
	"github.com/vk/nodeflowgo/internal/graph"
	"github.com/vk/nodeflowgo/internal/value"
)

// Cache maps output-port identities to their computed values for one
// evaluation request. Once a key is populated it is never recomputed
// within the same request.
type Cache map[graph.PortID]value.Value

// OpFunc computes one node's outputs. It pulls inputs and publishes
// outputs through the Scope, and returns the node's designated output
// value.
type OpFunc func(ctx context.Context, sc *Scope) (value.Value, error)

// Evaluator holds the operation table and the filesystem boundary used
// by file-reading operations. It carries no per-request state, so a
// single Evaluator serves any number of sequential requests.
type Evaluator struct {
	fs  afero.Fs
	ops map[graph.Kind]OpFunc
}

// New returns an Evaluator with every built-in operation registered.
// File-reading operations resolve paths against fsys.
func New(fsys afero.Fs) *Evaluator {
	e := &Evaluator{fs: fsys, ops: make(map[graph.Kind]OpFunc)}
	registerBuiltins(e)
	return e
}

// Register adds an operation for a kind. Registering the same kind
// twice is a programmer error and panics.
func (e *Evaluator) Register(kind graph.Kind, fn OpFunc) {
	if _, exists := e.ops[kind]; exists {
		panic(fmt.Sprintf("operation for kind '%s' already registered", kind))
	}
	e.ops[kind] = fn
}

// Evaluate computes the value produced at the requested node using a
// fresh cache. This is the entry point presentation callers use.
func (e *Evaluator) Evaluate(ctx context.Context, g *graph.Graph, id graph.NodeID) (value.Value, error) {
	return e.EvaluateInto(ctx, g, id, make(Cache))
}

// EvaluateInto is Evaluate with a caller-supplied cache, letting a
// caller evaluate several nodes of one unchanging graph while sharing
// upstream results.
func (e *Evaluator) EvaluateInto(ctx context.Context, g *graph.Graph, id graph.NodeID, cache Cache) (value.Value, error) {
	p := &pass{
		graph:    g,
		cache:    cache,
		visiting: make(map[graph.NodeID]bool),
	}
	return e.evaluateNode(ctx, p, id)
}

// pass is the state of one evaluation request: the read-only graph
// view, the output cache, and the set of nodes currently on the
// recursion stack (for cycle detection).
type pass struct {
	graph    *graph.Graph
	cache    Cache
	visiting map[graph.NodeID]bool
}

// evaluateNode computes all outputs of one node, populating the cache,
// and returns the node's designated output value.
func (e *Evaluator) evaluateNode(ctx context.Context, p *pass, id graph.NodeID) (value.Value, error) {
	n, ok := p.graph.Node(id)
	if !ok {
		return value.Value{}, fmt.Errorf("node %d not found", id)
	}
	if p.visiting[id] {
		return value.Value{}, &CycleError{Node: n.Name()}
	}
	op, ok := e.ops[n.Kind()]
	if !ok {
		return value.Value{}, &UnknownKindError{Node: n.Name(), Kind: string(n.Kind())}
	}

	p.visiting[id] = true
	defer delete(p.visiting, id)

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating node.", "node", n.Name(), "kind", n.Kind())

	v, err := op(ctx, &Scope{eval: e, pass: p, node: n})
	if err != nil {
		return value.Value{}, err
	}
	logger.Debug("Node evaluated.", "node", n.Name(), "result", v.String())
	return v, nil
}

// resolveInput returns the effective value of a named input port: the
// cached or recursively computed upstream output when connected, the
// stored constant otherwise.
func (e *Evaluator) resolveInput(ctx context.Context, p *pass, n *graph.Node, name string) (value.Value, error) {
	in, ok := p.graph.InputNamed(n.ID(), name)
	if !ok {
		return value.Value{}, &UnknownPortError{Node: n.Name(), Port: name}
	}

	outID, connected := p.graph.Upstream(in.ID())
	if !connected {
		return in.Constant(), nil
	}

	if v, hit := p.cache[outID]; hit {
		return v, nil
	}

	// First visit of the upstream node: evaluating it populates the
	// cache for all of its outputs.
	out, ok := p.graph.Output(outID)
	if !ok {
		return value.Value{}, fmt.Errorf("output port %d not found", outID)
	}
	if _, err := e.evaluateNode(ctx, p, out.Node()); err != nil {
		return value.Value{}, err
	}

	v, hit := p.cache[outID]
	if !hit {
		return value.Value{}, fmt.Errorf("%w: output %q of upstream of %s.%s", ErrCacheInvariant, out.Name(), n.Name(), name)
	}
	return v, nil
}

// populateOutput writes a computed value into the cache under the named
// output port's identity and returns the value.
func (p *pass) populateOutput(n *graph.Node, name string, v value.Value) (value.Value, error) {
	out, ok := p.graph.OutputNamed(n.ID(), name)
	if !ok {
		return value.Value{}, &UnknownPortError{Node: n.Name(), Port: name}
	}
	p.cache[out.ID()] = v
	return v, nil
}
