// Package graph holds the dataflow graph model: nodes with named,
// typed input and output ports, and directed connections from output
// ports to input ports. Storage is an identity-indexed arena; callers
// address nodes and ports through generated stable handles and read
// them through accessor methods, never through raw storage.
//
// The graph is mutated only between evaluations, by whatever owns the
// editing surface. Evaluation reads topology and constants and writes
// nothing here.
package graph

import "fmt"

// NodeID is a stable handle for one node.
type NodeID int

// PortID is a stable handle for one port, unique across the graph and
// across both port roles. Output port handles double as cache keys
// during evaluation.
type PortID int

// Kind tags which operation a node performs. The set of known kinds
// lives in the catalog; the graph treats kinds as opaque.
type Kind string

// Graph owns all nodes, ports and connections.
type Graph struct {
	nodes   map[NodeID]*Node
	inputs  map[PortID]*InputPort
	outputs map[PortID]*OutputPort
	// conns maps an input port to the output port feeding it. An input
	// has at most one upstream; outputs fan out freely.
	conns map[PortID]PortID

	nextNode NodeID
	nextPort PortID
}

// New returns an initialized, empty Graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[NodeID]*Node),
		inputs:  make(map[PortID]*InputPort),
		outputs: make(map[PortID]*OutputPort),
		conns:   make(map[PortID]PortID),
	}
}

// AddNode creates an empty node of the given kind and returns its
// handle. The name is a user-facing label used in diagnostics and
// lookups; the graph itself does not require it to be unique.
func (g *Graph) AddNode(name string, kind Kind) NodeID {
	id := g.nextNode
	g.nextNode++
	g.nodes[id] = &Node{id: id, name: name, kind: kind}
	return id
}

// RemoveNode deletes a node, its ports, and every connection touching
// them. Removing an unknown node does nothing.
func (g *Graph) RemoveNode(id NodeID) {
	n, ok := g.nodes[id]
	if !ok {
		return
	}
	for _, pid := range n.inputs {
		delete(g.conns, pid)
		delete(g.inputs, pid)
	}
	for _, pid := range n.outputs {
		for in, out := range g.conns {
			if out == pid {
				delete(g.conns, in)
			}
		}
		delete(g.outputs, pid)
	}
	delete(g.nodes, id)
}

// Node returns the node for a handle.
func (g *Graph) Node(id NodeID) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeByName returns the node carrying the given label. Labels come
// from the graph definition, where they are unique.
func (g *Graph) NodeByName(name string) (NodeID, bool) {
	for id, n := range g.nodes {
		if n.name == name {
			return id, true
		}
	}
	return 0, false
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Input returns the input port for a handle.
func (g *Graph) Input(id PortID) (*InputPort, bool) {
	p, ok := g.inputs[id]
	return p, ok
}

// Output returns the output port for a handle.
func (g *Graph) Output(id PortID) (*OutputPort, bool) {
	p, ok := g.outputs[id]
	return p, ok
}

// InputNamed looks up a node's input port by name.
func (g *Graph) InputNamed(node NodeID, name string) (*InputPort, bool) {
	n, ok := g.nodes[node]
	if !ok {
		return nil, false
	}
	for _, pid := range n.inputs {
		if p := g.inputs[pid]; p.name == name {
			return p, true
		}
	}
	return nil, false
}

// OutputNamed looks up a node's output port by name.
func (g *Graph) OutputNamed(node NodeID, name string) (*OutputPort, bool) {
	n, ok := g.nodes[node]
	if !ok {
		return nil, false
	}
	for _, pid := range n.outputs {
		if p := g.outputs[pid]; p.name == name {
			return p, true
		}
	}
	return nil, false
}

// Upstream returns the output port connected to the given input, if
// any.
func (g *Graph) Upstream(in PortID) (PortID, bool) {
	out, ok := g.conns[in]
	return out, ok
}

// Connect wires an output port to an input port. The ports must exist,
// belong to different nodes, and carry the same data type. An existing
// connection on the input is replaced.
func (g *Graph) Connect(out, in PortID) error {
	op, ok := g.outputs[out]
	if !ok {
		return fmt.Errorf("output port %d not found", out)
	}
	ip, ok := g.inputs[in]
	if !ok {
		return fmt.Errorf("input port %d not found", in)
	}
	if op.node == ip.node {
		return fmt.Errorf("cannot connect node %q to itself", g.nodes[op.node].name)
	}
	if op.ty != ip.ty {
		return fmt.Errorf("cannot connect %s output %q to %s input %q", op.ty, op.name, ip.ty, ip.name)
	}
	g.conns[in] = out
	return nil
}

// Disconnect removes the connection feeding an input port, if any.
func (g *Graph) Disconnect(in PortID) {
	delete(g.conns, in)
}
