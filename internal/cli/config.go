package cli

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hubastard/gamedata/engine/gamedata"
)

// Config holds everything a gamedata run needs.
type Config struct {
	Root           string `hcl:"root,optional"`
	Index          string `hcl:"index,optional"`
	LogLevel       string `hcl:"log_level,optional"`
	LogFormat      string `hcl:"log_format,optional"`
	CompileShaders bool   `hcl:"compile_shaders,optional"`
}

// LoadConfigFile decodes an HCL config file. Missing attributes stay zero.
//
//	root            = "assets/data"
//	index           = "gamedata.txt"
//	log_level       = "debug"
//	log_format      = "json"
//	compile_shaders = true
func LoadConfigFile(path string) (Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}
	return cfg, nil
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == "" {
		return nil, errors.New("root is a required configuration field and cannot be empty")
	}
	if cfg.Index == "" {
		cfg.Index = gamedata.DefaultIndex
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}
	return &cfg, nil
}
