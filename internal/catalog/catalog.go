// Package catalog holds the node template catalog: for each node kind,
// the input and output ports a fresh node of that kind carries. The
// catalog is what an editor surface instantiates nodes from; the
// evaluator consults only the resulting graph.
package catalog

import (
	"fmt"
	"log/slog"

	"github.com/vk/nodeflowgo/internal/graph"
	"github.com/vk/nodeflowgo/internal/value"
)

// PortSpec declares one port of a template. Default and ConnectionOnly
// apply to inputs only.
type PortSpec struct {
	Name           string
	Type           value.Type
	Default        value.Value
	ConnectionOnly bool
}

// Template declares the port layout of one node kind.
type Template struct {
	Kind    graph.Kind
	Inputs  []PortSpec
	Outputs []PortSpec
}

// Catalog maps kinds to their templates.
type Catalog struct {
	templates map[graph.Kind]*Template
	order     []graph.Kind
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{templates: make(map[graph.Kind]*Template)}
}

// Default returns a catalog with every built-in template registered.
func Default() *Catalog {
	c := New()
	registerBuiltins(c)
	return c
}

// Register adds a template. Registering the same kind twice is a
// programmer error and panics.
func (c *Catalog) Register(t *Template) {
	if _, exists := c.templates[t.Kind]; exists {
		panic(fmt.Sprintf("template for kind '%s' already registered", t.Kind))
	}
	slog.Debug("Registering node template.", "kind", t.Kind)
	c.templates[t.Kind] = t
	c.order = append(c.order, t.Kind)
}

// Template returns the template for a kind.
func (c *Catalog) Template(kind graph.Kind) (*Template, bool) {
	t, ok := c.templates[kind]
	return t, ok
}

// Kinds returns every registered kind in registration order.
func (c *Catalog) Kinds() []graph.Kind {
	out := make([]graph.Kind, len(c.order))
	copy(out, c.order)
	return out
}

// Instantiate adds a node of the given kind to the graph and builds its
// declared ports.
func (c *Catalog) Instantiate(g *graph.Graph, name string, kind graph.Kind) (graph.NodeID, error) {
	t, ok := c.templates[kind]
	if !ok {
		return 0, fmt.Errorf("unknown node kind '%s'", kind)
	}
	id := g.AddNode(name, kind)
	for _, in := range t.Inputs {
		if _, err := g.AddInput(id, in.Name, in.Type, in.Default, in.ConnectionOnly); err != nil {
			g.RemoveNode(id)
			return 0, err
		}
	}
	for _, out := range t.Outputs {
		if _, err := g.AddOutput(id, out.Name, out.Type); err != nil {
			g.RemoveNode(id)
			return 0, err
		}
	}
	return id, nil
}
