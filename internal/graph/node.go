package graph

import (
	"fmt"

	"github.com/vk/nodeflowgo/internal/value"
)

// Node is one instance of an operation kind, with ordered input and
// output ports. Nodes are created through the catalog, which declares
// the ports each kind carries.
type Node struct {
	id      NodeID
	name    string
	kind    Kind
	inputs  []PortID
	outputs []PortID
}

// ID returns the node's handle.
func (n *Node) ID() NodeID { return n.id }

// Name returns the user-facing label.
func (n *Node) Name() string { return n.name }

// Kind returns the operation tag.
func (n *Node) Kind() Kind { return n.kind }

// Inputs returns the input port handles in declaration order.
func (n *Node) Inputs() []PortID { return n.inputs }

// Outputs returns the output port handles in declaration order.
func (n *Node) Outputs() []PortID { return n.outputs }

// InputPort is a named, typed attachment point that receives a value.
// When unconnected it yields its stored constant.
type InputPort struct {
	id       PortID
	node     NodeID
	name     string
	ty       value.Type
	constant value.Value
	// connOnly marks ports whose value may only arrive over a
	// connection; their constant cannot be edited.
	connOnly bool
}

// ID returns the port's handle.
func (p *InputPort) ID() PortID { return p.id }

// Node returns the owning node's handle.
func (p *InputPort) Node() NodeID { return p.node }

// Name returns the port name, unique within its node and role.
func (p *InputPort) Name() string { return p.name }

// Type returns the declared data type.
func (p *InputPort) Type() value.Type { return p.ty }

// Constant returns the stored constant used when the port is
// unconnected.
func (p *InputPort) Constant() value.Value { return p.constant }

// ConnectionOnly reports whether the port's constant may not be edited.
func (p *InputPort) ConnectionOnly() bool { return p.connOnly }

// OutputPort is a named, typed attachment point that produces a value
// during evaluation.
type OutputPort struct {
	id   PortID
	node NodeID
	name string
	ty   value.Type
}

// ID returns the port's handle.
func (p *OutputPort) ID() PortID { return p.id }

// Node returns the owning node's handle.
func (p *OutputPort) Node() NodeID { return p.node }

// Name returns the port name, unique within its node and role.
func (p *OutputPort) Name() string { return p.name }

// Type returns the declared data type.
func (p *OutputPort) Type() value.Type { return p.ty }

// AddInput declares an input port on a node. The default constant must
// match the declared type.
func (g *Graph) AddInput(node NodeID, name string, ty value.Type, def value.Value, connOnly bool) (PortID, error) {
	n, ok := g.nodes[node]
	if !ok {
		return 0, fmt.Errorf("node %d not found", node)
	}
	if _, exists := g.InputNamed(node, name); exists {
		return 0, fmt.Errorf("node %q already has input %q", n.name, name)
	}
	if def.Type() != ty {
		return 0, fmt.Errorf("default for input %q is %s, port is %s", name, def.Type(), ty)
	}
	id := g.nextPort
	g.nextPort++
	g.inputs[id] = &InputPort{id: id, node: node, name: name, ty: ty, constant: def, connOnly: connOnly}
	n.inputs = append(n.inputs, id)
	return id, nil
}

// AddOutput declares an output port on a node.
func (g *Graph) AddOutput(node NodeID, name string, ty value.Type) (PortID, error) {
	n, ok := g.nodes[node]
	if !ok {
		return 0, fmt.Errorf("node %d not found", node)
	}
	if _, exists := g.OutputNamed(node, name); exists {
		return 0, fmt.Errorf("node %q already has output %q", n.name, name)
	}
	id := g.nextPort
	g.nextPort++
	g.outputs[id] = &OutputPort{id: id, node: node, name: name, ty: ty}
	n.outputs = append(n.outputs, id)
	return id, nil
}

// SetConstant replaces the stored constant of an input port. The value
// must match the port's declared type, and the port must accept inline
// values.
func (g *Graph) SetConstant(in PortID, v value.Value) error {
	p, ok := g.inputs[in]
	if !ok {
		return fmt.Errorf("input port %d not found", in)
	}
	if p.connOnly {
		return fmt.Errorf("input %q only accepts connections", p.name)
	}
	if v.Type() != p.ty {
		return fmt.Errorf("input %q is %s, got %s", p.name, p.ty, v.Type())
	}
	p.constant = v
	return nil
}
