package ucd

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchCached(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("cache", 0o755))
	require.NoError(t, afero.WriteFile(fs, "cache/UnicodeData.txt", []byte("0041;A;Lu;\n"), 0o644))

	// A cached file is served without touching the network; the bogus host
	// proves no request is made.
	data, err := Fetch(fs, "cache", "http://invalid.invalid/ucd/UnicodeData.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("0041;A;Lu;\n"), data)
}

func TestWriteSource(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, WriteSource(fs, "out.go", []byte("package runeprop\n")))

	data, err := afero.ReadFile(fs, "out.go")
	require.NoError(t, err)
	assert.Equal(t, "package runeprop\n", string(data))
}
