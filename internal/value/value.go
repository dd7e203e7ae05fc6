// Package value defines the closed set of runtime values that flow
// through a node graph: scalars, 2D vectors, text, columnar series and
// tabular frames. Values are tagged; narrowing to a concrete variant is
// fallible and never coerces between tags.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Type identifies which variant a Value holds.
type Type int

const (
	TypeScalar Type = iota
	TypeVector
	TypeText
	TypeSeries
	TypeFrame
)

// String returns the lower-case name of the type, as shown to users in
// error messages and port descriptions.
func (t Type) String() string {
	switch t {
	case TypeScalar:
		return "scalar"
	case TypeVector:
		return "vector"
	case TypeText:
		return "text"
	case TypeSeries:
		return "series"
	case TypeFrame:
		return "frame"
	default:
		return fmt.Sprintf("unknown type %d", int(t))
	}
}

// TypeMismatchError reports a narrowing accessor called against a value
// of a different tag.
type TypeMismatchError struct {
	Expected Type
	Actual   Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("invalid cast from %s to %s", e.Actual, e.Expected)
}

// Vec2 is a two-component vector.
type Vec2 struct {
	X float64
	Y float64
}

// Add returns the componentwise sum of v and o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns the componentwise difference of v and o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v with both components multiplied by f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Value is one tagged value. The zero Value is Scalar(0), matching the
// default constant of an untouched scalar port.
type Value struct {
	ty Type
	v  any
}

// Scalar wraps a float64.
func Scalar(f float64) Value { return Value{ty: TypeScalar, v: f} }

// Vector wraps a 2D vector given by components.
func Vector(x, y float64) Value { return Value{ty: TypeVector, v: Vec2{x, y}} }

// Of wraps an existing Vec2.
func Of(v Vec2) Value { return Value{ty: TypeVector, v: v} }

// Text wraps a string.
func Text(s string) Value { return Value{ty: TypeText, v: s} }

// SeriesVal wraps a Series.
func SeriesVal(s Series) Value { return Value{ty: TypeSeries, v: s} }

// FrameVal wraps a Frame.
func FrameVal(f Frame) Value { return Value{ty: TypeFrame, v: f} }

// Type returns the tag of the value.
func (v Value) Type() Type { return v.ty }

// AsScalar narrows the value to a float64.
func (v Value) AsScalar() (float64, error) {
	if v.ty != TypeScalar {
		return 0, &TypeMismatchError{Expected: TypeScalar, Actual: v.ty}
	}
	f, _ := v.v.(float64)
	return f, nil
}

// AsVector2 narrows the value to a Vec2.
func (v Value) AsVector2() (Vec2, error) {
	if v.ty != TypeVector {
		return Vec2{}, &TypeMismatchError{Expected: TypeVector, Actual: v.ty}
	}
	vec, _ := v.v.(Vec2)
	return vec, nil
}

// AsText narrows the value to a string.
func (v Value) AsText() (string, error) {
	if v.ty != TypeText {
		return "", &TypeMismatchError{Expected: TypeText, Actual: v.ty}
	}
	s, _ := v.v.(string)
	return s, nil
}

// AsSeries narrows the value to a Series.
func (v Value) AsSeries() (Series, error) {
	if v.ty != TypeSeries {
		return Series{}, &TypeMismatchError{Expected: TypeSeries, Actual: v.ty}
	}
	s, _ := v.v.(Series)
	return s, nil
}

// AsFrame narrows the value to a Frame.
func (v Value) AsFrame() (Frame, error) {
	if v.ty != TypeFrame {
		return Frame{}, &TypeMismatchError{Expected: TypeFrame, Actual: v.ty}
	}
	f, _ := v.v.(Frame)
	return f, nil
}

// String renders the value for display and log attachment.
func (v Value) String() string {
	switch v.ty {
	case TypeScalar:
		f, _ := v.AsScalar()
		return strconv.FormatFloat(f, 'g', -1, 64)
	case TypeVector:
		vec, _ := v.AsVector2()
		return fmt.Sprintf("(%s, %s)",
			strconv.FormatFloat(vec.X, 'g', -1, 64),
			strconv.FormatFloat(vec.Y, 'g', -1, 64))
	case TypeText:
		s, _ := v.AsText()
		return strconv.Quote(s)
	case TypeSeries:
		s, _ := v.AsSeries()
		return s.String()
	case TypeFrame:
		f, _ := v.AsFrame()
		return f.String()
	default:
		return "<invalid>"
	}
}

// seriesPreview is how many leading elements a series renders before
// eliding the rest.
const seriesPreview = 8

func formatSeriesElems(s Series) string {
	var sb strings.Builder
	sb.WriteByte('[')
	n := s.Len()
	for i := 0; i < n && i < seriesPreview; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		if s.IsNull(i) {
			sb.WriteString("null")
		} else {
			f, _ := s.At(i)
			sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
		}
	}
	if n > seriesPreview {
		fmt.Fprintf(&sb, ", … %d more", n-seriesPreview)
	}
	sb.WriteByte(']')
	return sb.String()
}
