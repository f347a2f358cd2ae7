package gamedata

import (
	"path/filepath"
	"strings"
)

// ShaderStage identifies a programmable pipeline stage.
type ShaderStage int

const (
	StageUnknown ShaderStage = iota
	StageVertex
	StageFragment
	StageGeometry
)

func (s ShaderStage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	case StageGeometry:
		return "geometry"
	default:
		return "unknown"
	}
}

// StageFromExt maps a shader file extension (.vert, .frag, .geom) to its stage.
func StageFromExt(name string) ShaderStage {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".vert", ".vs":
		return StageVertex
	case ".frag", ".fs":
		return StageFragment
	case ".geom", ".gs":
		return StageGeometry
	default:
		return StageUnknown
	}
}
