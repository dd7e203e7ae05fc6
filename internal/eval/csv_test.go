package eval

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nodeflowgo/internal/catalog"
	"github.com/vk/nodeflowgo/internal/value"
)

func writeFile(t *testing.T, fsys afero.Fs, path, content string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0o644))
}

func TestReadFrameCSV(t *testing.T) {
	fsys := afero.NewMemMapFs()

	t.Run("numeric columns with header", func(t *testing.T) {
		writeFile(t, fsys, "data.csv", "a,b\n1,4\n2,5\n3,6\n")

		frame, err := readFrameCSV(fsys, "data.csv")
		require.NoError(t, err)

		assert.Equal(t, 3, frame.NumRows())
		assert.Equal(t, []string{"a", "b"}, frame.ColumnNames())

		col, ok := frame.Column("a")
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(value.NewSeries("a", []float64{1, 2, 3}), col))
	})

	t.Run("empty cells become nulls", func(t *testing.T) {
		writeFile(t, fsys, "gaps.csv", "m,n\n1,4\n,5\n3,\n")

		frame, err := readFrameCSV(fsys, "gaps.csv")
		require.NoError(t, err)

		m, ok := frame.Column("m")
		require.True(t, ok)
		require.Equal(t, 3, m.Len())
		assert.False(t, m.IsNull(0))
		assert.True(t, m.IsNull(1))
		assert.False(t, m.IsNull(2))

		n, ok := frame.Column("n")
		require.True(t, ok)
		assert.True(t, n.IsNull(2))
	})

	t.Run("non-numeric column loads as all-null", func(t *testing.T) {
		writeFile(t, fsys, "mixed.csv", "name,score\nalice,10\nbob,20\n")

		frame, err := readFrameCSV(fsys, "mixed.csv")
		require.NoError(t, err)
		assert.Equal(t, 2, frame.NumRows())

		name, ok := frame.Column("name")
		require.True(t, ok)
		assert.True(t, name.IsNull(0))
		assert.True(t, name.IsNull(1))

		score, ok := frame.Column("score")
		require.True(t, ok)
		assert.Empty(t, cmp.Diff(value.NewSeries("score", []float64{10, 20}), score))
	})

	t.Run("header only yields empty frame with columns", func(t *testing.T) {
		writeFile(t, fsys, "header.csv", "a,b\n")

		frame, err := readFrameCSV(fsys, "header.csv")
		require.NoError(t, err)
		assert.Equal(t, 0, frame.NumRows())
		assert.Equal(t, 2, frame.NumCols())
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := readFrameCSV(fsys, "no-such.csv")
		assert.ErrorContains(t, err, "read csv")
	})

	t.Run("ragged rows fail to parse", func(t *testing.T) {
		writeFile(t, fsys, "ragged.csv", "a,b\n1\n")

		_, err := readFrameCSV(fsys, "ragged.csv")
		assert.ErrorContains(t, err, "parse csv")
	})

	t.Run("empty file fails", func(t *testing.T) {
		writeFile(t, fsys, "empty.csv", "")

		_, err := readFrameCSV(fsys, "empty.csv")
		assert.ErrorContains(t, err, "missing header row")
	})
}

func TestLoadCSVThroughGraph(t *testing.T) {
	h := newHarness(t)
	writeFile(t, h.eval.fs, "rows.csv", "v\n1\n2\n3\n4\n5\n6\n7\n")

	load := h.node("load", catalog.LoadCSV)
	h.set(load, "path", value.Text("rows.csv"))

	count := h.node("count", catalog.CountRows)
	h.connect(load, "out", count, "df")

	assert.Equal(t, 7.0, h.scalar(count))
}

func TestLoadCSVMissingFileAborts(t *testing.T) {
	h := newHarness(t)

	load := h.node("load", catalog.LoadCSV)
	h.set(load, "path", value.Text("missing.csv"))

	count := h.node("count", catalog.CountRows)
	h.connect(load, "out", count, "df")

	_, err := h.eval.Evaluate(context.Background(), h.g, count)
	assert.ErrorContains(t, err, "read csv")
}
