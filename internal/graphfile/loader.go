// Package graphfile loads dataflow graph definitions from HCL files.
//
// A graph is declared as a set of node blocks, labeled with kind and a
// unique name. Block attributes address the node's input ports: a
// literal sets the port's stored constant, and a reference of the form
// node.<name>.<output> wires a connection from another node's output.
//
//	node "make_scalar" "a" {
//	  value = 5
//	}
//
//	node "add_scalar" "sum" {
//	  A = node.a.out
//	  B = 10
//	}
package graphfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/spf13/afero"
	"github.com/vk/nodeflowgo/internal/catalog"
	"github.com/vk/nodeflowgo/internal/ctxlog"
	"github.com/vk/nodeflowgo/internal/fsutil"
	"github.com/vk/nodeflowgo/internal/graph"
)

// fileSchema describes the top level of a graph definition file.
var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "node", LabelNames: []string{"kind", "name"}},
	},
}

// Loader parses graph definition files into a graph, instantiating
// nodes through the catalog.
type Loader struct {
	fs  afero.Fs
	cat *catalog.Catalog
}

// NewLoader returns a Loader reading through fsys and building nodes
// from cat.
func NewLoader(fsys afero.Fs, cat *catalog.Catalog) *Loader {
	return &Loader{fs: fsys, cat: cat}
}

// pendingConn is a connection recorded during the first pass and wired
// once every node exists.
type pendingConn struct {
	dstInput graph.PortID
	srcName  string
	srcPort  string
	rng      hcl.Range
}

// Load reads the definition at path, a single .hcl file or a directory
// searched recursively, and builds the graph.
func (l *Loader) Load(ctx context.Context, path string) (*graph.Graph, error) {
	logger := ctxlog.FromContext(ctx)

	files, err := l.collectFiles(path)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl graph files found at %q", path)
	}
	logger.Debug("Graph definition files collected.", "count", len(files))

	parser := hclparse.NewParser()
	var blocks []*hcl.Block
	var diags hcl.Diagnostics
	for _, name := range files {
		src, err := afero.ReadFile(l.fs, name)
		if err != nil {
			return nil, fmt.Errorf("read graph file %q: %w", name, err)
		}
		file, parseDiags := parser.ParseHCL(src, name)
		diags = append(diags, parseDiags...)
		if parseDiags.HasErrors() {
			continue
		}
		content, contentDiags := file.Body.Content(fileSchema)
		diags = append(diags, contentDiags...)
		blocks = append(blocks, content.Blocks...)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	g := graph.New()
	byName := make(map[string]graph.NodeID)
	var pending []pendingConn

	// First pass: instantiate every node and decode its attributes;
	// references are deferred so declaration order never matters.
	for _, block := range blocks {
		kind, name := graph.Kind(block.Labels[0]), block.Labels[1]
		if _, dup := byName[name]; dup {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate node name",
				Detail:   fmt.Sprintf("A node named %q is already declared.", name),
				Subject:  &block.DefRange,
			})
			continue
		}
		id, err := l.cat.Instantiate(g, name, kind)
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid node",
				Detail:   err.Error(),
				Subject:  &block.DefRange,
			})
			continue
		}
		byName[name] = id

		conns, attrDiags := l.decodeAttributes(g, id, block)
		diags = append(diags, attrDiags...)
		pending = append(pending, conns...)
	}
	if diags.HasErrors() {
		return nil, diags
	}

	// Second pass: wire the recorded connections.
	for _, pc := range pending {
		srcID, ok := byName[pc.srcName]
		if !ok {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown node reference",
				Detail:   fmt.Sprintf("No node named %q is declared.", pc.srcName),
				Subject:  &pc.rng,
			})
			continue
		}
		src, ok := g.OutputNamed(srcID, pc.srcPort)
		if !ok {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown output port",
				Detail:   fmt.Sprintf("Node %q has no output %q.", pc.srcName, pc.srcPort),
				Subject:  &pc.rng,
			})
			continue
		}
		if err := g.Connect(src.ID(), pc.dstInput); err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid connection",
				Detail:   err.Error(),
				Subject:  &pc.rng,
			})
		}
	}
	if diags.HasErrors() {
		return nil, diags
	}

	logger.Debug("Graph loaded.", "nodes", g.Len())
	return g, nil
}

// decodeAttributes maps one block's attributes onto the node's input
// ports: references become pending connections, literals become stored
// constants.
func (l *Loader) decodeAttributes(g *graph.Graph, id graph.NodeID, block *hcl.Block) ([]pendingConn, hcl.Diagnostics) {
	var pending []pendingConn
	attrs, diags := block.Body.JustAttributes()

	for _, attr := range attrs {
		in, ok := g.InputNamed(id, attr.Name)
		if !ok {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Unknown input port",
				Detail:   fmt.Sprintf("Node kind '%s' has no input %q.", block.Labels[0], attr.Name),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}

		if ref, refDiags, isRef := referenceFor(attr); isRef {
			diags = append(diags, refDiags...)
			if !refDiags.HasErrors() {
				ref.dstInput = in.ID()
				pending = append(pending, ref)
			}
			continue
		}

		v, valDiags := attr.Expr.Value(nil)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		constant, err := fromCty(v, in.Type(), attr.Name)
		if err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid constant",
				Detail:   fmt.Sprintf("Input %q: %s.", attr.Name, err),
				Subject:  attr.Expr.Range().Ptr(),
			})
			continue
		}
		if err := g.SetConstant(in.ID(), constant); err != nil {
			diags = diags.Append(&hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Invalid constant",
				Detail:   err.Error(),
				Subject:  attr.Expr.Range().Ptr(),
			})
		}
	}

	return pending, diags
}

// referenceFor inspects an attribute expression for a node.<name>.<out>
// traversal. An expression with no variables is not a reference; one
// with variables must be exactly one such traversal.
func referenceFor(attr *hcl.Attribute) (pendingConn, hcl.Diagnostics, bool) {
	vars := attr.Expr.Variables()
	if len(vars) == 0 {
		return pendingConn{}, nil, false
	}

	var diags hcl.Diagnostics
	rng := attr.Expr.Range()
	if len(vars) > 1 {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid port reference",
			Detail:   "An input may reference at most one upstream output.",
			Subject:  &rng,
		})
		return pendingConn{}, diags, true
	}

	tr := vars[0]
	if tr.RootName() != "node" || len(tr) != 3 {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid port reference",
			Detail:   "References must take the form node.<name>.<output>.",
			Subject:  &rng,
		})
		return pendingConn{}, diags, true
	}

	nameStep, ok1 := tr[1].(hcl.TraverseAttr)
	portStep, ok2 := tr[2].(hcl.TraverseAttr)
	if !ok1 || !ok2 {
		diags = diags.Append(&hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid port reference",
			Detail:   "References must take the form node.<name>.<output>.",
			Subject:  &rng,
		})
		return pendingConn{}, diags, true
	}

	return pendingConn{srcName: nameStep.Name, srcPort: portStep.Name, rng: rng}, nil, true
}

// collectFiles resolves path to the list of .hcl files to parse.
func (l *Loader) collectFiles(path string) ([]string, error) {
	info, err := l.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat graph path %q: %w", path, err)
	}
	if info.IsDir() {
		return fsutil.FindFilesByExtension(l.fs, path, ".hcl")
	}
	return []string{path}, nil
}
