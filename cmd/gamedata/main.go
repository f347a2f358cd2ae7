package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/hubastard/gamedata/engine/gamedata"
	"github.com/hubastard/gamedata/internal/cli"
)

// Graphics contexts require the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, exit, err := cli.Parse(args, stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		var ee *cli.ExitError
		if errors.As(err, &ee) {
			return ee.Code
		}
		return 1
	}
	if exit {
		return 0
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, stderr)
	slog.SetDefault(logger)

	tree, err := gamedata.Load(cfg.Root, cfg.Index)
	if err != nil {
		logger.Error("Failed to load game data.", "root", cfg.Root, "index", cfg.Index, "error", err)
		return 1
	}

	s := tree.Summary()
	fmt.Fprintf(stdout, "%s: %d index records, %d terrains, %d units, %d graphics, %d shader programs, %d fonts\n",
		cfg.Root, s.Indexes, s.Terrains, s.Units, s.Graphics, s.Programs, s.Fonts)

	if cfg.CompileShaders {
		if err := compileShaders(tree, stdout); err != nil {
			logger.Error("Shader compilation failed.", "error", err)
			return 1
		}
	}
	return 0
}
