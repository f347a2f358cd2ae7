package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/gamedata/engine/gamedata"
)

// CompileError carries the driver's info log for a shader that failed to compile.
type CompileError struct {
	Stage gamedata.ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader\n%s", e.Stage, e.Log)
}

// Shader is a compiled shader object. A current GL context is required.
type Shader struct {
	ID    uint32
	Stage gamedata.ShaderStage
}

func glStage(s gamedata.ShaderStage) (uint32, bool) {
	switch s {
	case gamedata.StageVertex:
		return gl.VERTEX_SHADER, true
	case gamedata.StageFragment:
		return gl.FRAGMENT_SHADER, true
	case gamedata.StageGeometry:
		return gl.GEOMETRY_SHADER, true
	default:
		return 0, false
	}
}

// NewShader compiles a null-terminated source. On failure the shader object
// is deleted and a *CompileError is returned.
func NewShader(stage gamedata.ShaderStage, src string) (*Shader, error) {
	kind, ok := glStage(stage)
	if !ok {
		return nil, fmt.Errorf("compile shader: unsupported stage %s", stage)
	}

	sh := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(log))
		gl.DeleteShader(sh)
		return nil, &CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return &Shader{ID: sh, Stage: stage}, nil
}

func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteShader(s.ID)
		s.ID = 0
	}
}
