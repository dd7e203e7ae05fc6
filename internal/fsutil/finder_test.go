package fsutil

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFilesByExtension(t *testing.T) {
	fsys := afero.NewMemMapFs()
	for _, path := range []string{
		"graphs/b.hcl",
		"graphs/a.hcl",
		"graphs/nested/c.hcl",
		"graphs/notes.txt",
	} {
		require.NoError(t, afero.WriteFile(fsys, path, []byte("x"), 0o644))
	}

	files, err := FindFilesByExtension(fsys, "graphs", ".hcl")
	require.NoError(t, err)
	assert.Equal(t, []string{"graphs/a.hcl", "graphs/b.hcl", "graphs/nested/c.hcl"}, files)
}

func TestFindFilesByExtensionNoMatches(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("empty", 0o755))

	files, err := FindFilesByExtension(fsys, "empty", ".hcl")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFindFilesByExtensionMissingRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()
	_, err := FindFilesByExtension(fsys, "nowhere", ".hcl")
	assert.Error(t, err)
}

func TestFindFilesByExtensionEmptyExtensionPanics(t *testing.T) {
	fsys := afero.NewMemMapFs()
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(fsys, ".", "")
	})
}
