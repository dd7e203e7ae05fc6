package eval

import (
	"context"

	"github.com/spf13/afero"
	"github.com/vk/nodeflowgo/internal/graph"
	"github.com/vk/nodeflowgo/internal/value"
)

// Scope is the view an operation gets of the node it is computing:
// typed input resolution and output population, without exposing the
// cache or the recursion machinery.
type Scope struct {
	eval *Evaluator
	pass *pass
	node *graph.Node
}

// Node returns the node being computed.
func (s *Scope) Node() *graph.Node { return s.node }

// FS returns the filesystem boundary for file-reading operations.
func (s *Scope) FS() afero.Fs { return s.eval.fs }

// Input resolves the named input port to its effective value,
// recursively evaluating upstream nodes as needed.
func (s *Scope) Input(ctx context.Context, name string) (value.Value, error) {
	return s.eval.resolveInput(ctx, s.pass, s.node, name)
}

// InputScalar resolves an input and narrows it to a scalar.
func (s *Scope) InputScalar(ctx context.Context, name string) (float64, error) {
	v, err := s.Input(ctx, name)
	if err != nil {
		return 0, err
	}
	return v.AsScalar()
}

// InputVector resolves an input and narrows it to a vector.
func (s *Scope) InputVector(ctx context.Context, name string) (value.Vec2, error) {
	v, err := s.Input(ctx, name)
	if err != nil {
		return value.Vec2{}, err
	}
	return v.AsVector2()
}

// InputText resolves an input and narrows it to text.
func (s *Scope) InputText(ctx context.Context, name string) (string, error) {
	v, err := s.Input(ctx, name)
	if err != nil {
		return "", err
	}
	return v.AsText()
}

// InputSeries resolves an input and narrows it to a series.
func (s *Scope) InputSeries(ctx context.Context, name string) (value.Series, error) {
	v, err := s.Input(ctx, name)
	if err != nil {
		return value.Series{}, err
	}
	return v.AsSeries()
}

// InputFrame resolves an input and narrows it to a frame.
func (s *Scope) InputFrame(ctx context.Context, name string) (value.Frame, error) {
	v, err := s.Input(ctx, name)
	if err != nil {
		return value.Frame{}, err
	}
	return v.AsFrame()
}

// Output publishes a computed value under the named output port and
// returns it, so an operation's last output doubles as its result. A
// kind with several outputs must publish every one of them before
// returning.
func (s *Scope) Output(name string, v value.Value) (value.Value, error) {
	return s.pass.populateOutput(s.node, name, v)
}
