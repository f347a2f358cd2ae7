package glbackend

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/hubastard/gamedata/engine/gamedata"
)

type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("failed to link program %q\n%s", e.Name, e.Log)
}

type Program struct {
	ID   uint32
	Name string
}

// NewProgram links the given shaders. The shaders stay owned by the caller.
func NewProgram(name string, shaders ...*Shader) (*Program, error) {
	prog := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(prog, sh.ID)
	}
	gl.LinkProgram(prog)
	for _, sh := range shaders {
		gl.DetachShader(prog, sh.ID)
	}

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		gl.DeleteProgram(prog)
		return nil, &LinkError{Name: name, Log: strings.TrimRight(log, "\x00")}
	}
	return &Program{ID: prog, Name: name}, nil
}

// CompileProgram compiles every stage of a loaded shader program and links them.
func CompileProgram(p gamedata.ShaderProgram) (*Program, error) {
	var shaders []*Shader
	defer func() {
		for _, sh := range shaders {
			sh.Delete()
		}
	}()

	for _, stage := range p.Stages() {
		sh, err := NewShader(stage, p.Sources[stage])
		if err != nil {
			return nil, fmt.Errorf("program %q (%s): %w", p.Name, p.Files[stage], err)
		}
		shaders = append(shaders, sh)
	}

	prog, err := NewProgram(p.Name, shaders...)
	if err != nil {
		return nil, err
	}
	slog.Debug("Linked shader program.", "name", p.Name, "stages", len(shaders), "id", prog.ID)
	return prog, nil
}

func (p *Program) Delete() {
	if p.ID != 0 {
		gl.DeleteProgram(p.ID)
		p.ID = 0
	}
}
