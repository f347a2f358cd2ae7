package assets

import (
	"path/filepath"
	"slices"
)

// Dir is an immutable base directory that relative data file names are
// resolved against. Deriving a Dir never modifies the receiver.
type Dir struct {
	path string
	// files currently being resolved above this Dir, outermost first
	chain []string
}

func NewDir(path string) Dir { return Dir{path: path} }

func (d Dir) Path() string { return d.path }

// Join returns the path of rel below d. No I/O is performed.
func (d Dir) Join(rel string) string { return filepath.Join(d.path, rel) }

// Append returns a new Dir rooted at rel below d.
func (d Dir) Append(rel string) Dir {
	return Dir{path: d.Join(rel), chain: d.chain}
}

// Dirname returns the directory part of a relative file name, or "" if it has none.
func Dirname(rel string) string {
	dir := filepath.Dir(rel)
	if dir == "." {
		return ""
	}
	return dir
}

// enter returns a copy of d with file pushed onto the resolution chain.
func (d Dir) enter(file string) Dir {
	chain := make([]string, len(d.chain), len(d.chain)+1)
	copy(chain, d.chain)
	return Dir{path: d.path, chain: append(chain, filepath.Clean(file))}
}

func (d Dir) resolving(file string) bool {
	return slices.Contains(d.chain, filepath.Clean(file))
}

// Chain returns the files being resolved above d, outermost first.
func (d Dir) Chain() []string { return slices.Clone(d.chain) }
