package value

import (
	"fmt"
	"strings"
)

// Frame is a tabular value: an ordered sequence of named, equal-length
// series. Column names are unique within a frame. The zero Frame has no
// columns and no rows.
type Frame struct {
	cols []Series
}

// AddColumn appends a column. It fails if the name is already taken or
// if the length differs from the existing columns.
func (f *Frame) AddColumn(s Series) error {
	for _, c := range f.cols {
		if c.name == s.name {
			return fmt.Errorf("duplicate column %q", s.name)
		}
	}
	if len(f.cols) > 0 && s.Len() != f.cols[0].Len() {
		return fmt.Errorf("column %q has %d rows, frame has %d", s.name, s.Len(), f.cols[0].Len())
	}
	f.cols = append(f.cols, s)
	return nil
}

// Column returns the named column, if present.
func (f Frame) Column(name string) (Series, bool) {
	for _, c := range f.cols {
		if c.name == name {
			return c, true
		}
	}
	return Series{}, false
}

// ColumnNames returns the column names in declaration order.
func (f Frame) ColumnNames() []string {
	names := make([]string, len(f.cols))
	for i, c := range f.cols {
		names[i] = c.name
	}
	return names
}

// NumRows returns the shared row count of all columns.
func (f Frame) NumRows() int {
	if len(f.cols) == 0 {
		return 0
	}
	return f.cols[0].Len()
}

// NumCols returns the number of columns.
func (f Frame) NumCols() int { return len(f.cols) }

// Equal reports columnwise equality in order. go-cmp picks this method
// up for comparisons in tests.
func (f Frame) Equal(o Frame) bool {
	if len(f.cols) != len(o.cols) {
		return false
	}
	for i := range f.cols {
		if !f.cols[i].Equal(o.cols[i]) {
			return false
		}
	}
	return true
}

// String renders the frame shape and column names.
func (f Frame) String() string {
	return fmt.Sprintf("frame %d×%d [%s]", f.NumRows(), f.NumCols(), strings.Join(f.ColumnNames(), ", "))
}
