// Package gamedata defines the record types of the game data tree and loads
// the tree from its root index file.
package gamedata

import (
	"log/slog"

	"github.com/hubastard/gamedata/engine/assets"
)

// DefaultIndex is the root file name looked up below the data directory.
const DefaultIndex = "gamedata.txt"

// Tree is a fully resolved game data tree.
type Tree struct {
	Root  string
	Index assets.Ref[Index, *Index]
}

// Load reads the index file below root and everything it references.
func Load(root, index string) (*Tree, error) {
	if index == "" {
		index = DefaultIndex
	}
	t := &Tree{Root: root, Index: assets.NewRef[Index](index)}
	if err := t.Index.Read(assets.NewDir(root)); err != nil {
		return nil, err
	}
	slog.Debug("Game data loaded.", "root", root, "index", index, "summary", t.Summary())
	return t, nil
}

type Summary struct {
	Indexes  int
	Terrains int
	Units    int
	Graphics int
	Programs int
	Fonts    int
}

func (t *Tree) Summary() Summary {
	var s Summary
	for _, x := range t.Index.All() {
		s.Indexes++
		s.Terrains += x.Terrains.Len()
		s.Programs += x.Shaders.Len()
		if x.HasFonts() {
			s.Fonts += x.Fonts.Len()
		}
		for _, u := range x.Units.All() {
			s.Units++
			s.Graphics += u.Graphics.Len()
		}
	}
	return s
}

// Programs returns every shader program of the tree in file order.
func (t *Tree) Programs() []ShaderProgram {
	var out []ShaderProgram
	for _, x := range t.Index.All() {
		out = append(out, x.Shaders.All()...)
	}
	return out
}
