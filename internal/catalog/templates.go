package catalog

import (
	"github.com/vk/nodeflowgo/internal/graph"
	"github.com/vk/nodeflowgo/internal/value"
)

// The fixed template set.
const (
	MakeScalar        graph.Kind = "make_scalar"
	AddScalar         graph.Kind = "add_scalar"
	SubtractScalar    graph.Kind = "subtract_scalar"
	MakeVector        graph.Kind = "make_vector"
	AddVector         graph.Kind = "add_vector"
	SubtractVector    graph.Kind = "subtract_vector"
	VectorTimesScalar graph.Kind = "vector_times_scalar"
	LoadCSV           graph.Kind = "load_csv"
	CountRows         graph.Kind = "count_rows"
	SelectColumn      graph.Kind = "select_column"
	SimpleFilter      graph.Kind = "simple_filter"
)

func scalarIn(name string) PortSpec {
	return PortSpec{Name: name, Type: value.TypeScalar, Default: value.Scalar(0)}
}

func vectorIn(name string) PortSpec {
	return PortSpec{Name: name, Type: value.TypeVector, Default: value.Vector(0, 0)}
}

func textIn(name string) PortSpec {
	return PortSpec{Name: name, Type: value.TypeText, Default: value.Text("")}
}

func seriesIn(name string) PortSpec {
	return PortSpec{Name: name, Type: value.TypeSeries, Default: value.SeriesVal(value.EmptySeries("empty"))}
}

func frameIn(name string) PortSpec {
	return PortSpec{Name: name, Type: value.TypeFrame, Default: value.FrameVal(value.Frame{})}
}

func out(name string, ty value.Type) PortSpec {
	return PortSpec{Name: name, Type: ty}
}

// registerBuiltins declares the port layout of every built-in kind.
// Port names and defaults are part of the graph-definition contract, so
// changing them breaks existing graph files.
func registerBuiltins(c *Catalog) {
	c.Register(&Template{
		Kind:    MakeScalar,
		Inputs:  []PortSpec{scalarIn("value")},
		Outputs: []PortSpec{out("out", value.TypeScalar)},
	})
	c.Register(&Template{
		Kind:    MakeVector,
		Inputs:  []PortSpec{scalarIn("x"), scalarIn("y")},
		Outputs: []PortSpec{out("out", value.TypeVector)},
	})
	c.Register(&Template{
		Kind:    AddScalar,
		Inputs:  []PortSpec{scalarIn("A"), scalarIn("B")},
		Outputs: []PortSpec{out("out", value.TypeScalar)},
	})
	c.Register(&Template{
		Kind:    SubtractScalar,
		Inputs:  []PortSpec{scalarIn("A"), scalarIn("B")},
		Outputs: []PortSpec{out("out", value.TypeScalar)},
	})
	c.Register(&Template{
		Kind:    AddVector,
		Inputs:  []PortSpec{vectorIn("v1"), vectorIn("v2")},
		Outputs: []PortSpec{out("out", value.TypeVector)},
	})
	c.Register(&Template{
		Kind:    SubtractVector,
		Inputs:  []PortSpec{vectorIn("v1"), vectorIn("v2")},
		Outputs: []PortSpec{out("out", value.TypeVector)},
	})
	c.Register(&Template{
		Kind:    VectorTimesScalar,
		Inputs:  []PortSpec{scalarIn("scalar"), vectorIn("vector")},
		Outputs: []PortSpec{out("out", value.TypeVector)},
	})
	c.Register(&Template{
		Kind:    LoadCSV,
		Inputs:  []PortSpec{textIn("path")},
		Outputs: []PortSpec{out("out", value.TypeFrame)},
	})
	c.Register(&Template{
		Kind:    CountRows,
		Inputs:  []PortSpec{frameIn("df")},
		Outputs: []PortSpec{out("out", value.TypeScalar)},
	})
	c.Register(&Template{
		Kind:    SelectColumn,
		Inputs:  []PortSpec{frameIn("df"), textIn("column")},
		Outputs: []PortSpec{out("out", value.TypeSeries)},
	})
	c.Register(&Template{
		Kind:    SimpleFilter,
		Inputs:  []PortSpec{seriesIn("df"), scalarIn("min"), scalarIn("max")},
		Outputs: []PortSpec{out("out", value.TypeSeries)},
	})
}
