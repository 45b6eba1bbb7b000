package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/notation"
	"github.com/mattn/go-runewidth"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Output selects how Encode writes records.
type Output string

const (
	OutputText Output = "text"
	OutputJSON Output = "json"
	OutputYAML Output = "yaml"
	OutputTOML Output = "toml"
	OutputHCL  Output = "hcl"
)

// ParseOutput parses an output name case-insensitively.
func ParseOutput(s string) (Output, error) {
	switch o := Output(strings.ToLower(strings.TrimSpace(s))); o {
	case OutputText, OutputJSON, OutputYAML, OutputTOML, OutputHCL:
		return o, nil
	}
	return "", fmt.Errorf("unknown output %q (valid: text, json, yaml, toml, hcl)", s)
}

// Record is one converted colour in the tagged shape {type, color: {channels}}.
type Record struct {
	Input string         `json:"input,omitempty" yaml:"input,omitempty" toml:"input,omitempty"`
	Type  color.Mode     `json:"type" yaml:"type" toml:"type"`
	Color map[string]any `json:"color" yaml:"color" toml:"color"`

	value color.Color
}

// NewRecord builds a Record for c. RGB channels are integers, Hex is a string and
// every other channel is a float.
func NewRecord(input string, c color.Color) Record {
	r := Record{Input: input, Type: c.Mode(), Color: make(map[string]any), value: c}
	switch v := c.(type) {
	case color.Hex:
		r.Color["hex"] = string(v)
	case color.RGB:
		r.Color["r"], r.Color["g"], r.Color["b"] = int(v.R), int(v.G), int(v.B)
	default:
		names := notation.Channels(c.Mode())
		for i, val := range notation.Values(c) {
			r.Color[names[i]] = val
		}
	}
	return r
}

// Value returns the colour the record was built from.
func (r Record) Value() color.Color {
	return r.value
}

// Encode writes records to w in the requested output.
func Encode(w io.Writer, records []Record, out Output) error {
	switch out {
	case OutputText, "":
		return EncodeText(w, records, nil)
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
		return nil
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	case OutputTOML:
		return toml.NewEncoder(w).Encode(struct {
			Colors []Record `toml:"colors"`
		}{records})
	case OutputHCL:
		return encodeHCL(w, records)
	}
	return fmt.Errorf("unknown output %q", out)
}

// EncodeText writes one notation per record. When records carry inputs, the input
// column is padded to a common display width. prefix, when non-nil, is written
// before each record.
func EncodeText(w io.Writer, records []Record, prefix func(Record) string) error {
	width := 0
	for _, r := range records {
		width = max(width, runewidth.StringWidth(r.Input))
	}

	for _, r := range records {
		line := Notation(r.value)
		if width > 0 {
			line = runewidth.FillRight(r.Input, width) + "  " + line
		}
		if prefix != nil {
			line = prefix(r) + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func encodeHCL(w io.Writer, records []Record) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()

	for i, r := range records {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("color", []string{string(r.Type)})
		b := block.Body()
		if r.Input != "" {
			b.SetAttributeValue("input", cty.StringVal(r.Input))
		}
		if h, ok := r.value.(color.Hex); ok {
			b.SetAttributeValue("hex", cty.StringVal(string(h)))
			continue
		}
		names := notation.Channels(r.Type)
		for j, v := range notation.Values(r.value) {
			b.SetAttributeValue(names[j], cty.NumberFloatVal(v))
		}
	}

	_, err := w.Write(f.Bytes())
	return err
}
