package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/format"
)

const sampleHCL = `
log_level = "debug"
mode      = "LAB"
output    = "json"

field {
  width   = 200
  workers = 2
}

server {
  addr = ":9000"
}

palette {
  brand  = "#ff8800"
  accent = hsl(200, 50, 50)
  shade  = darken("#ff8800", 0.2)
}
`

func writeTempHCL(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "colorweave.hcl")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeTempHCL(t, sampleHCL)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Path != path {
		t.Errorf("Path = %q, want %q", cfg.Path, path)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Mode != color.ModeLab {
		t.Errorf("Mode = %q, want lab", cfg.Mode)
	}
	if cfg.Output != format.OutputJSON {
		t.Errorf("Output = %q, want json", cfg.Output)
	}
	if want := (Field{Width: 200, Height: 100, Workers: 2}); cfg.Field != want {
		t.Errorf("Field = %+v, want %+v (unset height keeps its default)", cfg.Field, want)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q, want :9000", cfg.Server.Addr)
	}

	wantPalette := map[string]color.Color{
		"brand":  color.Hex("#ff8800"),
		"accent": color.HSL{H: 200, S: 50, L: 50},
		"shade":  color.RGB{R: 153, G: 82, B: 0},
	}
	if diff := cmp.Diff(wantPalette, cfg.Palette); diff != "" {
		t.Errorf("Palette mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPaletteReferences(t *testing.T) {
	cfg, err := Load(writeTempHCL(t, sampleHCL))
	if err != nil {
		t.Fatal(err)
	}
	got, err := cfg.Parser().Parse(`convert(palette.brand, "rgb")`)
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGB{R: 255, G: 136}); got != want {
		t.Errorf("palette.brand = %v, want %v", got, want)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without a file error: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadDefaultPathInWorkingDir(t *testing.T) {
	t.Setenv(EnvPath, "")
	dir := t.TempDir()
	t.Chdir(dir)
	if err := os.WriteFile(DefaultPath, []byte(`mode = "rgb"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != color.ModeRGB || cfg.Path != DefaultPath {
		t.Errorf("Load() = mode %q path %q, want rgb from %s", cfg.Mode, cfg.Path, DefaultPath)
	}
}

func TestLoadEnvPath(t *testing.T) {
	path := writeTempHCL(t, `output = "yaml"`)
	t.Setenv(EnvPath, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Output != format.OutputYAML {
		t.Errorf("Output = %q, want yaml", cfg.Output)
	}
}

func TestLoadExplicitMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.hcl")
	if _, err := Load(missing); err == nil {
		t.Error("Load() of a missing explicit path succeeded, want error")
	}

	t.Setenv(EnvPath, missing)
	if _, err := Load(""); err == nil {
		t.Error("Load() of a missing COLORWEAVE_CONFIG path succeeded, want error")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
	}{
		{"syntax", `mode = `, "parsing HCL"},
		{"unknown attribute", `colour = "red"`, "colour"},
		{"unknown mode", `mode = "oklab"`, "unknown color mode"},
		{"unknown output", `output = "xml"`, "unknown output"},
		{"unknown log level", `log_level = "chatty"`, "log_level"},
		{"negative width", "field {\n  width = -5\n}", "field.width"},
		{"bad palette hex", "palette {\n  x = \"#12\"\n}", "palette.x"},
		{"palette self reference", "palette {\n  a = \"#fff\"\n  b = palette.a\n}", "palette.b"},
		{"nested palette block", "palette {\n  sub {\n    a = \"#fff\"\n  }\n}", "parsing palette"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src), "test.hcl")
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error = %q, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestValidateJoinsErrors(t *testing.T) {
	cfg := Default()
	cfg.Field.Width = 0
	cfg.Field.Workers = -1
	cfg.Server.Addr = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() succeeded, want error")
	}
	for _, want := range []string{"field.width", "field.workers", "server.addr"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Validate() error %q does not mention %s", err, want)
		}
	}
	if Default().Validate() != nil {
		t.Error("Default() does not validate")
	}
}

func TestVerbosity(t *testing.T) {
	cfg := Default()
	if got := cfg.Verbosity(0); got != -1 {
		t.Errorf("warning verbosity = %d, want -1", got)
	}
	if got := cfg.Verbosity(2); got != 1 {
		t.Errorf("warning verbosity with -vv = %d, want 1", got)
	}
	cfg.LogLevel = "debug"
	if got := cfg.Verbosity(0); got != 2 {
		t.Errorf("debug verbosity = %d, want 2", got)
	}
}
