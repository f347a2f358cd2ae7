package assets

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLines(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{name: "empty file", content: "", expected: []string{}},
		{name: "no trailing newline", content: "a\nb", expected: []string{"a", "b"}},
		{name: "trailing newline", content: "a\nb\n", expected: []string{"a", "b"}},
		{name: "crlf endings", content: "a\r\nb\r\n", expected: []string{"a", "b"}},
		{name: "blank lines kept", content: "\n\nx\n", expected: []string{"", "", "x"}},
		{name: "no trimming", content: "  padded \t\n", expected: []string{"  padded \t"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "f.txt", tc.content)
			lines, err := ReadLines(path)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, lines)
		})
	}
}

func TestReadLines_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.txt")
	lines, err := ReadLines(path)
	require.Error(t, err)
	assert.Nil(t, lines)
	assert.True(t, errors.Is(err, ErrFileNotFound))

	var nf *FileNotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, path, nf.Path)
}

func TestExists(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "sub/f.txt", "x")
	assert.True(t, Exists(path))
	assert.False(t, Exists(filepath.Join(root, "sub")), "directories are not data files")
	assert.False(t, Exists(filepath.Join(root, "missing")))
}
