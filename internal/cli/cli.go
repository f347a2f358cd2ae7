// Package cli parses the gamedata command line and config file.
package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns the validated Config,
// true when the program should exit cleanly (help), or an *ExitError.
// Flags that are set explicitly override values from the -config file.
func Parse(args []string, output io.Writer) (*Config, bool, error) {
	flagSet := flag.NewFlagSet("gamedata", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
gamedata - load and validate a game data tree.

Usage:
  gamedata [options] [ROOT]

Arguments:
  ROOT
    Directory containing the index file.

Options:
`)
		flagSet.PrintDefaults()
	}

	rootFlag := flagSet.String("root", "", "Data root directory.")
	indexFlag := flagSet.String("index", "", "Index file below the root (default \"gamedata.txt\").")
	configFlag := flagSet.String("config", "", "Path to an HCL config file.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error' (default \"info\").")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json' (default \"text\").")
	shadersFlag := flagSet.Bool("compile-shaders", false, "Compile every shader program in a hidden GL context.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	var cfg Config
	if *configFlag != "" {
		fileCfg, err := LoadConfigFile(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = fileCfg
		slog.Debug("Config file loaded.", "path", *configFlag)
	}

	rootSet := false
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "root":
			cfg.Root, rootSet = *rootFlag, true
		case "index":
			cfg.Index = *indexFlag
		case "log-level":
			cfg.LogLevel = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.LogFormat = strings.ToLower(*logFormatFlag)
		case "compile-shaders":
			cfg.CompileShaders = *shadersFlag
		}
	})
	if !rootSet && flagSet.NArg() > 0 {
		cfg.Root = flagSet.Arg(0)
	}

	if cfg.Root == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	config, err := NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parser finished.", "config", config)
	return config, false, nil
}
