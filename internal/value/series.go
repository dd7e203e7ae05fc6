package value

import "fmt"

// Series is one named column of nullable float64 values. The zero
// Series is empty and unnamed.
type Series struct {
	name string
	vals []float64
	null []bool
}

// NewSeries builds a series from a slice of non-null values.
func NewSeries(name string, vals []float64) Series {
	s := Series{name: name, vals: make([]float64, len(vals)), null: make([]bool, len(vals))}
	copy(s.vals, vals)
	return s
}

// EmptySeries builds a series with no elements.
func EmptySeries(name string) Series {
	return Series{name: name}
}

// Name returns the series name.
func (s Series) Name() string { return s.name }

// Len returns the number of elements, nulls included.
func (s Series) Len() int { return len(s.vals) }

// Append adds a non-null element.
func (s *Series) Append(v float64) {
	s.vals = append(s.vals, v)
	s.null = append(s.null, false)
}

// AppendNull adds a null (missing) element.
func (s *Series) AppendNull() {
	s.vals = append(s.vals, 0)
	s.null = append(s.null, true)
}

// At returns the element at i and whether it is present. The value is
// meaningless when the second return is false.
func (s Series) At(i int) (float64, bool) {
	return s.vals[i], !s.null[i]
}

// IsNull reports whether the element at i is missing.
func (s Series) IsNull(i int) bool { return s.null[i] }

// Equal reports elementwise equality, including names and null masks.
// go-cmp picks this method up for comparisons in tests.
func (s Series) Equal(o Series) bool {
	if s.name != o.name || len(s.vals) != len(o.vals) {
		return false
	}
	for i := range s.vals {
		if s.null[i] != o.null[i] {
			return false
		}
		if !s.null[i] && s.vals[i] != o.vals[i] {
			return false
		}
	}
	return true
}

// String renders the series name, length and a short element preview.
func (s Series) String() string {
	return fmt.Sprintf("series %q (%d) %s", s.name, s.Len(), formatSeriesElems(s))
}
