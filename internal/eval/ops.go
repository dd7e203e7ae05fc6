package eval

import (
	"context"

	"github.com/vk/nodeflowgo/internal/catalog"
	"github.com/vk/nodeflowgo/internal/value"
)

// registerBuiltins wires the operation for every catalog kind. The
// table is exhaustive over the built-in template set; a kind without an
// operation fails evaluation with UnknownKindError.
func registerBuiltins(e *Evaluator) {
	e.Register(catalog.MakeScalar, opMakeScalar)
	e.Register(catalog.MakeVector, opMakeVector)
	e.Register(catalog.AddScalar, opAddScalar)
	e.Register(catalog.SubtractScalar, opSubtractScalar)
	e.Register(catalog.AddVector, opAddVector)
	e.Register(catalog.SubtractVector, opSubtractVector)
	e.Register(catalog.VectorTimesScalar, opVectorTimesScalar)
	e.Register(catalog.LoadCSV, opLoadCSV)
	e.Register(catalog.CountRows, opCountRows)
	e.Register(catalog.SelectColumn, opSelectColumn)
	e.Register(catalog.SimpleFilter, opSimpleFilter)
}

func opMakeScalar(ctx context.Context, sc *Scope) (value.Value, error) {
	v, err := sc.InputScalar(ctx, "value")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Scalar(v))
}

func opMakeVector(ctx context.Context, sc *Scope) (value.Value, error) {
	x, err := sc.InputScalar(ctx, "x")
	if err != nil {
		return value.Value{}, err
	}
	y, err := sc.InputScalar(ctx, "y")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Vector(x, y))
}

func opAddScalar(ctx context.Context, sc *Scope) (value.Value, error) {
	a, err := sc.InputScalar(ctx, "A")
	if err != nil {
		return value.Value{}, err
	}
	b, err := sc.InputScalar(ctx, "B")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Scalar(a+b))
}

func opSubtractScalar(ctx context.Context, sc *Scope) (value.Value, error) {
	a, err := sc.InputScalar(ctx, "A")
	if err != nil {
		return value.Value{}, err
	}
	b, err := sc.InputScalar(ctx, "B")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Scalar(a-b))
}

func opAddVector(ctx context.Context, sc *Scope) (value.Value, error) {
	v1, err := sc.InputVector(ctx, "v1")
	if err != nil {
		return value.Value{}, err
	}
	v2, err := sc.InputVector(ctx, "v2")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Of(v1.Add(v2)))
}

func opSubtractVector(ctx context.Context, sc *Scope) (value.Value, error) {
	v1, err := sc.InputVector(ctx, "v1")
	if err != nil {
		return value.Value{}, err
	}
	v2, err := sc.InputVector(ctx, "v2")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Of(v1.Sub(v2)))
}

func opVectorTimesScalar(ctx context.Context, sc *Scope) (value.Value, error) {
	f, err := sc.InputScalar(ctx, "scalar")
	if err != nil {
		return value.Value{}, err
	}
	v, err := sc.InputVector(ctx, "vector")
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.Of(v.Scale(f)))
}

func opLoadCSV(ctx context.Context, sc *Scope) (value.Value, error) {
	path, err := sc.InputText(ctx, "path")
	if err != nil {
		return value.Value{}, err
	}
	frame, err := readFrameCSV(sc.FS(), path)
	if err != nil {
		return value.Value{}, err
	}
	return sc.Output("out", value.FrameVal(frame))
}

func opCountRows(ctx context.Context, sc *Scope) (value.Value, error) {
	df, err := sc.InputFrame(ctx, "df")
	if err != nil {
		return value.Value{}, err
	}
	// Row count as a float, for uniformity with the scalar variant.
	return sc.Output("out", value.Scalar(float64(df.NumRows())))
}

func opSelectColumn(ctx context.Context, sc *Scope) (value.Value, error) {
	df, err := sc.InputFrame(ctx, "df")
	if err != nil {
		return value.Value{}, err
	}
	name, err := sc.InputText(ctx, "column")
	if err != nil {
		return value.Value{}, err
	}
	// A missing column is not an error: the node yields an empty series
	// so downstream nodes keep working while the user types the name.
	col, ok := df.Column(name)
	if !ok {
		col = value.EmptySeries("empty")
	}
	return sc.Output("out", value.SeriesVal(col))
}

func opSimpleFilter(ctx context.Context, sc *Scope) (value.Value, error) {
	series, err := sc.InputSeries(ctx, "df")
	if err != nil {
		return value.Value{}, err
	}
	min, err := sc.InputScalar(ctx, "min")
	if err != nil {
		return value.Value{}, err
	}
	max, err := sc.InputScalar(ctx, "max")
	if err != nil {
		return value.Value{}, err
	}

	// Bounds are inclusive on both ends; nulls never pass the filter.
	kept := value.EmptySeries(series.Name())
	for i := 0; i < series.Len(); i++ {
		f, present := series.At(i)
		if present && f >= min && f <= max {
			kept.Append(f)
		}
	}
	return sc.Output("out", value.SeriesVal(kept))
}
