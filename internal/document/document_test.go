package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snippet.py")
	require.NoError(t, os.WriteFile(path, []byte("line one\nline two\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, path, doc.Path)
	assert.Equal(t, "line one\nline two\n", doc.Raw)
	assert.True(t, strings.HasPrefix(doc.Hash, "sha256:"))
	assert.Len(t, doc.Hash, len("sha256:")+64)
	assert.Equal(t, 2, doc.LineCount)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading document")
}

func TestFromReader(t *testing.T) {
	doc, err := FromReader("stdin", strings.NewReader("no trailing newline"))
	require.NoError(t, err)

	assert.Equal(t, "stdin", doc.Path)
	assert.Equal(t, 1, doc.LineCount)
}

func TestCountLines(t *testing.T) {
	tests := []struct {
		content string
		want    int
	}{
		{"", 0},
		{"one", 1},
		{"one\n", 1},
		{"one\ntwo", 2},
		{"one\ntwo\n", 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, countLines(tt.content), "content %q", tt.content)
	}
}

func TestLoad_HashIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte("same content"), 0o644))

	a, err := Load(path)
	require.NoError(t, err)
	b, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, a.Hash, b.Hash)
}
