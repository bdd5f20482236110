package config

import (
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// hclFile represents the top-level structure of a configuration file for decoding.
type hclFile struct {
	Algorithm     *string  `hcl:"algorithm,optional"`
	MaxExpansions *int     `hcl:"max_expansions,optional"`
	MazeFile      *string  `hcl:"maze_file,optional"`
	Trace         *bool    `hcl:"trace,optional"`
	Maze          *hclMaze `hcl:"maze,block"`
	Log           *hclLog  `hcl:"log,block"`
}

// hclMaze keeps rows as a raw expression so it can be checked as a list of
// strings with a precise diagnostic.
type hclMaze struct {
	Rows hcl.Expression `hcl:"rows"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the HCL file at path, applies it over Default and validates
// the result.
func Load(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, path, diags)
	}
	return decode(file, filepath.Dir(path))
}

// Parse is Load for in-memory sources; filename is used in diagnostics and
// relative maze_file paths are kept as written.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to parse %s: %w", ErrInvalidConfig, filename, diags)
	}
	return decode(file, "")
}

func decode(file *hcl.File, baseDir string) (*Config, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(file.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: failed to decode: %w", ErrInvalidConfig, diags)
	}

	cfg := Default()
	if parsed.Algorithm != nil {
		cfg.Algorithm = *parsed.Algorithm
	}
	if parsed.MaxExpansions != nil {
		cfg.MaxExpansions = *parsed.MaxExpansions
	}
	if parsed.Trace != nil {
		cfg.Trace = *parsed.Trace
	}
	if parsed.MazeFile != nil {
		cfg.MazeFile = *parsed.MazeFile
		if baseDir != "" && !filepath.IsAbs(cfg.MazeFile) {
			cfg.MazeFile = filepath.Join(baseDir, cfg.MazeFile)
		}
	}
	if parsed.Maze != nil {
		rows, err := decodeRows(parsed.Maze.Rows)
		if err != nil {
			return nil, err
		}
		cfg.MazeRows = rows
	}
	if parsed.Log != nil {
		if parsed.Log.Level != nil {
			cfg.LogLevel = *parsed.Log.Level
		}
		if parsed.Log.Format != nil {
			cfg.LogFormat = *parsed.Log.Format
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decodeRows evaluates the rows expression and converts it to []string.
func decodeRows(expr hcl.Expression) ([]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: maze rows: %w", ErrInvalidConfig, diags)
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, fmt.Errorf("%w: maze rows must be a known list of strings", ErrInvalidConfig)
	}
	listVal, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, fmt.Errorf("%w: maze rows (%s): %w", ErrInvalidConfig, expr.Range(), err)
	}

	var rows []string
	if err := gocty.FromCtyValue(listVal, &rows); err != nil {
		return nil, fmt.Errorf("%w: maze rows: %w", ErrInvalidConfig, err)
	}
	return rows, nil
}
