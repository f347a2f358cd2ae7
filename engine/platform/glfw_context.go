package platform

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// ContextConfig selects the OpenGL context to create.
type ContextConfig struct {
	Major, Minor int
	// Visible shows the backing window; off for tools that only compile shaders.
	Visible bool
	Title   string
}

func DefaultContextConfig() ContextConfig {
	return ContextConfig{Major: 3, Minor: 3, Title: "gamedata"}
}

// Context owns a GLFW window whose GL context is current on the calling thread.
type Context struct {
	w *glfw.Window
}

// NewContext must be called from the main goroutine before any GL calls.
func NewContext(cfg ContextConfig) (*Context, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("init glfw: %w", err)
	}

	// Core profile (Mac requires forward-compatible flag).
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(64, 64, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create gl context: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("init gl: %w", err)
	}
	slog.Info("GL context ready.", "version", gl.GoStr(gl.GetString(gl.VERSION)), "glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	return &Context{w: win}, nil
}

func (c *Context) Destroy() {
	if c.w != nil {
		c.w.Destroy()
		c.w = nil
		glfw.Terminate()
	}
}
