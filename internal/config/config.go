// Package config loads colorweave.hcl, the optional settings file shared by the
// CLI, the HTTP server and the language server.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/jsvensson/colorweave/internal/notation"
)

const (
	// DefaultPath is read when no path is given and EnvPath is unset.
	DefaultPath = "colorweave.hcl"
	// EnvPath names the environment variable that overrides DefaultPath.
	EnvPath = "COLORWEAVE_CONFIG"
)

// verbosity maps log_level to commonlog verbosity.
var verbosity = map[string]int{
	"none":    -4,
	"error":   -2,
	"warning": -1,
	"notice":  0,
	"info":    1,
	"debug":   2,
}

// Config is the resolved configuration with defaults applied.
type Config struct {
	Path     string
	LogLevel string
	Mode     color.Mode
	Output   format.Output
	Field    Field
	Server   Server
	Palette  map[string]color.Color
}

// Field sizes the picker field and its render pool.
type Field struct {
	Width   int `hcl:"width,optional"`
	Height  int `hcl:"height,optional"`
	Workers int `hcl:"workers,optional"`
}

// Server configures the HTTP API.
type Server struct {
	Addr string `hcl:"addr,optional"`
}

// paletteBlock is decoded first so the rest of the file can reference palette.
type paletteBlock struct {
	Entries hcl.Body `hcl:",remain"`
}

type rawConfig struct {
	Palette *paletteBlock `hcl:"palette,block"`
	Remain  hcl.Body      `hcl:",remain"`
}

type fileConfig struct {
	LogLevel string  `hcl:"log_level,optional"`
	Mode     string  `hcl:"mode,optional"`
	Output   string  `hcl:"output,optional"`
	Field    *Field  `hcl:"field,block"`
	Server   *Server `hcl:"server,block"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		LogLevel: "warning",
		Mode:     color.ModeHex,
		Output:   format.OutputText,
		Field:    Field{Width: 360, Height: 100, Workers: 4},
		Server:   Server{Addr: "localhost:7777"},
		Palette:  make(map[string]color.Color),
	}
}

// Resolve returns the path Load reads for an explicit path, which may be empty.
func Resolve(path string) (resolved string, explicit bool) {
	if path != "" {
		return path, true
	}
	if env := os.Getenv(EnvPath); env != "" {
		return env, true
	}
	return DefaultPath, false
}

// Load reads the configuration. An explicit path, from the argument or
// COLORWEAVE_CONFIG, must exist; a missing colorweave.hcl yields Default.
func Load(path string) (*Config, error) {
	path, explicit := Resolve(path)
	src, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(src, path)
}

// Parse decodes configuration source. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	var raw rawConfig
	if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("decoding palette: %s", diags.Error())
	}

	cfg := Default()
	cfg.Path = filename
	if raw.Palette != nil {
		palette, err := parsePalette(raw.Palette.Entries)
		if err != nil {
			return nil, fmt.Errorf("parsing palette: %w", err)
		}
		cfg.Palette = palette
	}

	var fc fileConfig
	ctx := notation.BuildEvalContext(cfg.Palette)
	if diags := gohcl.DecodeBody(raw.Remain, ctx, &fc); diags.HasErrors() {
		return nil, fmt.Errorf("decoding: %s", diags.Error())
	}
	if err := cfg.merge(fc); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// parsePalette evaluates each palette entry as a colour notation. Entries may use
// the notation functions but not other palette entries.
func parsePalette(body hcl.Body) (map[string]color.Color, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, errors.New(diags.Error())
	}

	ctx := notation.BuildEvalContext(nil)
	palette := make(map[string]color.Color, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(ctx)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating palette.%s: %s", name, diags.Error())
		}
		c, err := notation.Decode(val)
		if err != nil {
			return nil, fmt.Errorf("palette.%s: %w", name, err)
		}
		palette[name] = c
	}
	return palette, nil
}

func (c *Config) merge(fc fileConfig) error {
	if fc.LogLevel != "" {
		c.LogLevel = strings.ToLower(fc.LogLevel)
	}
	if fc.Mode != "" {
		m, err := color.ParseMode(fc.Mode)
		if err != nil {
			return fmt.Errorf("mode: %w", err)
		}
		c.Mode = m
	}
	if fc.Output != "" {
		o, err := format.ParseOutput(fc.Output)
		if err != nil {
			return fmt.Errorf("output: %w", err)
		}
		c.Output = o
	}
	if fc.Field != nil {
		if fc.Field.Width != 0 {
			c.Field.Width = fc.Field.Width
		}
		if fc.Field.Height != 0 {
			c.Field.Height = fc.Field.Height
		}
		if fc.Field.Workers != 0 {
			c.Field.Workers = fc.Field.Workers
		}
	}
	if fc.Server != nil && fc.Server.Addr != "" {
		c.Server.Addr = fc.Server.Addr
	}
	return nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := verbosity[c.LogLevel]; !ok {
		errs = append(errs, fmt.Errorf("log_level: unknown level %q (valid: none, error, warning, notice, info, debug)", c.LogLevel))
	}
	if c.Field.Width <= 0 {
		errs = append(errs, fmt.Errorf("field.width must be positive, got %d", c.Field.Width))
	}
	if c.Field.Height <= 0 {
		errs = append(errs, fmt.Errorf("field.height must be positive, got %d", c.Field.Height))
	}
	if c.Field.Workers <= 0 {
		errs = append(errs, fmt.Errorf("field.workers must be positive, got %d", c.Field.Workers))
	}
	if c.Server.Addr == "" {
		errs = append(errs, errors.New("server.addr must not be empty"))
	}
	return errors.Join(errs...)
}

// Verbosity returns the commonlog verbosity for LogLevel, raised by extra.
func (c *Config) Verbosity(extra int) int {
	return verbosity[c.LogLevel] + extra
}

// Parser returns a notation parser that resolves palette references.
func (c *Config) Parser() *notation.Parser {
	return notation.NewParser(c.Palette)
}
