package graphfile

import (
	"fmt"

	"github.com/vk/nodeflowgo/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// fromCty converts an HCL literal into a port constant of the wanted
// type. name labels series built from inline lists.
func fromCty(v cty.Value, want value.Type, name string) (value.Value, error) {
	switch want {
	case value.TypeScalar:
		f, err := ctyFloat(v)
		if err != nil {
			return value.Value{}, err
		}
		return value.Scalar(f), nil

	case value.TypeText:
		conv, err := convert.Convert(v, cty.String)
		if err != nil {
			return value.Value{}, fmt.Errorf("expected text: %w", err)
		}
		return value.Text(conv.AsString()), nil

	case value.TypeVector:
		elems, err := ctyElements(v)
		if err != nil {
			return value.Value{}, err
		}
		if len(elems) != 2 {
			return value.Value{}, fmt.Errorf("vectors take two components, got %d", len(elems))
		}
		x, err := ctyFloat(elems[0])
		if err != nil {
			return value.Value{}, err
		}
		y, err := ctyFloat(elems[1])
		if err != nil {
			return value.Value{}, err
		}
		return value.Vector(x, y), nil

	case value.TypeSeries:
		elems, err := ctyElements(v)
		if err != nil {
			return value.Value{}, err
		}
		s := value.EmptySeries(name)
		for _, e := range elems {
			if e.IsNull() {
				s.AppendNull()
				continue
			}
			f, err := ctyFloat(e)
			if err != nil {
				return value.Value{}, err
			}
			s.Append(f)
		}
		return value.SeriesVal(s), nil

	case value.TypeFrame:
		return value.Value{}, fmt.Errorf("frame constants cannot be written inline; connect a %s output instead", value.TypeFrame)

	default:
		return value.Value{}, fmt.Errorf("unsupported port type %s", want)
	}
}

// ctyFloat narrows a cty value to a float64.
func ctyFloat(v cty.Value) (float64, error) {
	conv, err := convert.Convert(v, cty.Number)
	if err != nil {
		return 0, fmt.Errorf("expected number: %w", err)
	}
	f, _ := conv.AsBigFloat().Float64()
	return f, nil
}

// ctyElements flattens a tuple or list value into its element slice.
func ctyElements(v cty.Value) ([]cty.Value, error) {
	ty := v.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("expected a list, got %s", ty.FriendlyName())
	}
	return v.AsValueSlice(), nil
}
