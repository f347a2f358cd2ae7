package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// LoadShaderSource reads a GLSL file into a null-terminated string for OpenGL.
func LoadShaderSource(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", &FileNotFoundError{Path: path, Err: err}
		}
		return "", fmt.Errorf("load shader %q: %w", path, err)
	}
	// Ensure null termination for gl.Strs
	if len(b) == 0 || b[len(b)-1] != 0 {
		b = append(b, 0)
	}
	return string(b), nil
}
