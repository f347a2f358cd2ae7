package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates rel below root with the given content, creating parent directories.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// row splits on commas and never fails.
type row struct {
	fields []string
}

func (r *row) Fill(line string) (int, bool) {
	r.fields = strings.Split(line, ",")
	return 0, true
}

func (r *row) Recurse(Dir) error { return nil }

// triple expects exactly three comma separated fields.
type triple struct {
	a, b, c string
}

func (r *triple) Fill(line string) (int, bool) {
	f := SplitFields(line, ',', 3)
	f.Require(3)
	r.a, r.b, r.c = f.String(0), f.String(1), f.String(2)
	return f.Err()
}

func (r *triple) Recurse(Dir) error { return nil }

// link names another file of links; "-" ends the chain.
type link struct {
	target   string
	base     string
	children []link
}

func (l *link) Fill(line string) (int, bool) {
	l.target = line
	return 0, true
}

func (l *link) Recurse(dir Dir) error {
	l.base = dir.Path()
	if l.target == "-" {
		return nil
	}
	children, err := LoadRecursive[link, *link](dir, l.target)
	if err != nil {
		return err
	}
	l.children = children
	return nil
}
