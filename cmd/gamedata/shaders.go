package main

import (
	"fmt"
	"io"

	"github.com/hubastard/gamedata/engine/gamedata"
	glbackend "github.com/hubastard/gamedata/engine/gfx/gl"
	"github.com/hubastard/gamedata/engine/platform"
)

// compileShaders builds every program of the tree in a hidden GL context and
// reports the first failure.
func compileShaders(tree *gamedata.Tree, out io.Writer) error {
	ctx, err := platform.NewContext(platform.DefaultContextConfig())
	if err != nil {
		return err
	}
	defer ctx.Destroy()

	for _, p := range tree.Programs() {
		prog, err := glbackend.CompileProgram(p)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "compiled %s (%d stages)\n", p.Name, len(p.Stages()))
		prog.Delete()
	}
	return nil
}
