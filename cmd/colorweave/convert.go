package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/field"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	flagTo       string
	flagAll      bool
	flagOutput   string
	flagTemplate string
	flagSwatch   bool
)

var convertCmd = &cobra.Command{
	Use:   "convert [colors...]",
	Short: "Convert colours to another notation",
	Long: `Convert each colour argument, or each line of stdin when no arguments are
given. Inputs use the notation grammar: #rrggbb, rgb(), hsl(), cmyk(), lab(),
xyz(), oklch(), brighten(), darken(), convert() and palette.<name>.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&flagTo, "to", "t", "", "target mode: hex, rgb, hsl, cmyk, lab, xyz (default from config)")
	convertCmd.Flags().BoolVarP(&flagAll, "all", "a", false, "convert to every mode")
	convertCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "output: text, json, yaml, toml, hcl (default from config)")
	convertCmd.Flags().StringVar(&flagTemplate, "template", "", "Go template rendered per colour, e.g. '{{ hsl .Color }}'")
	convertCmd.Flags().BoolVar(&flagSwatch, "swatch", true, "prefix text output with a colour swatch when writing to a terminal")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	modes := []color.Mode{cfg.Mode}
	if flagTo != "" {
		m, err := color.ParseMode(flagTo)
		if err != nil {
			return err
		}
		modes = []color.Mode{m}
	}
	if flagAll {
		modes = color.Modes
	}

	out := cfg.Output
	if flagOutput != "" {
		o, err := format.ParseOutput(flagOutput)
		if err != nil {
			return err
		}
		out = o
	}

	var tmpl *format.Template
	if flagTemplate != "" {
		t, err := format.ParseTemplate(flagTemplate)
		if err != nil {
			return err
		}
		tmpl = t
	}

	inputs := args
	if len(inputs) == 0 {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		inputs = lines
	}

	parser := cfg.Parser()
	hasErrors := false
	var records []format.Record
	for _, in := range inputs {
		c, err := parser.Parse(in)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error converting %s: %v\n", in, err)
			hasErrors = true
			continue
		}
		if tmpl != nil {
			if err := tmpl.Execute(cmd.OutOrStdout(), in, c); err != nil {
				return err
			}
			continue
		}
		for _, m := range modes {
			records = append(records, format.NewRecord(in, convert.To(c, m)))
		}
	}

	if tmpl == nil {
		if err := writeRecords(cmd.OutOrStdout(), records, out); err != nil {
			return err
		}
	}
	if hasErrors {
		return errFailed
	}
	return nil
}

// writeRecords encodes records, prefixing each text record with a swatch when
// stdout is a colour terminal.
func writeRecords(w io.Writer, records []format.Record, out format.Output) error {
	profile := termenv.Ascii
	if flagSwatch && out == format.OutputText && w == os.Stdout {
		profile = field.TerminalProfile(os.Stdout)
	}
	if profile == termenv.Ascii {
		return format.Encode(w, records, out)
	}
	return format.EncodeText(w, records, swatchPrefix(profile))
}

func swatchPrefix(profile termenv.Profile) func(format.Record) string {
	return func(r format.Record) string {
		return field.Swatch(convert.ToRGB(r.Value()), "   ", profile) + " "
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}
