package eval

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
	"github.com/vk/nodeflowgo/internal/value"
)

// readFrameCSV loads a comma-delimited file into a frame. The first
// record is the header; column types are inferred from content. A
// column whose non-empty cells all parse as numbers becomes a numeric
// column with nulls for the empty cells; any other column loads as
// all-null, since the value model has no text series. Frame shape and
// row count are preserved either way.
func readFrameCSV(fsys afero.Fs, path string) (value.Frame, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return value.Frame{}, fmt.Errorf("read csv %q: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return value.Frame{}, fmt.Errorf("parse csv %q: %w", path, err)
	}
	if len(records) == 0 {
		return value.Frame{}, fmt.Errorf("parse csv %q: missing header row", path)
	}

	header := records[0]
	rows := records[1:]

	var frame value.Frame
	for col, name := range header {
		s := buildColumn(strings.TrimSpace(name), rows, col)
		if err := frame.AddColumn(s); err != nil {
			return value.Frame{}, fmt.Errorf("parse csv %q: %w", path, err)
		}
	}
	return frame, nil
}

// buildColumn infers one column's type and materializes it.
func buildColumn(name string, rows [][]string, col int) value.Series {
	numeric := true
	for _, row := range rows {
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			numeric = false
			break
		}
	}

	s := value.EmptySeries(name)
	for _, row := range rows {
		cell := strings.TrimSpace(row[col])
		if !numeric || cell == "" {
			s.AppendNull()
			continue
		}
		f, _ := strconv.ParseFloat(cell, 64)
		s.Append(f)
	}
	return s
}
