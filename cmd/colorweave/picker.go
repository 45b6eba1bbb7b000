package main

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/jsvensson/colorweave/internal/color"
	"github.com/jsvensson/colorweave/internal/convert"
	"github.com/jsvensson/colorweave/internal/field"
	"github.com/jsvensson/colorweave/internal/format"
	"github.com/spf13/cobra"
)

var (
	flagOut     string
	flagWidth   int
	flagHeight  int
	flagMode    string
	flagChannel string
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Render the hue/lightness picker field",
	Long: `Render the picker field: hue runs left to right, lightness top to bottom.
Writes an image when --out is given (png, bmp or tiff by extension), otherwise
draws the field on the terminal.`,
	Args: cobra.NoArgs,
	RunE: runField,
}

var sliderCmd = &cobra.Command{
	Use:   "slider <color>",
	Short: "Render a slider strip sweeping one channel of a colour",
	Args:  cobra.ExactArgs(1),
	RunE:  runSlider,
}

var pickCmd = &cobra.Command{
	Use:   "pick <x> <y>",
	Short: "Print the colour at a point of the picker field",
	Args:  cobra.ExactArgs(2),
	RunE:  runPick,
}

var locateCmd = &cobra.Command{
	Use:   "locate <color>",
	Short: "Print the picker field point closest to a colour",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocate,
}

func init() {
	for _, c := range []*cobra.Command{fieldCmd, sliderCmd, pickCmd, locateCmd} {
		c.Flags().IntVar(&flagWidth, "width", 0, "width in pixels (default from config, or the terminal width)")
		c.Flags().IntVar(&flagHeight, "height", 0, "height in pixels (default from config)")
	}
	for _, c := range []*cobra.Command{fieldCmd, sliderCmd} {
		c.Flags().StringVar(&flagOut, "out", "", "write an image file instead of drawing on the terminal")
	}
	sliderCmd.Flags().StringVar(&flagMode, "mode", "rgb", "mode whose channel is swept")
	sliderCmd.Flags().StringVar(&flagChannel, "channel", "r", "channel to sweep")
	pickCmd.Flags().StringVarP(&flagTo, "to", "t", "", "target mode (default from config)")

	rootCmd.AddCommand(fieldCmd, sliderCmd, pickCmd, locateCmd)
}

// size returns the requested dimensions. On a terminal the default width is the
// terminal's and each text row holds two pixel rows.
func size(toTerminal bool, fileHeight, termHeight int) (int, int) {
	w, h := flagWidth, flagHeight
	if w == 0 {
		w = cfg.Field.Width
		if toTerminal {
			w = field.TerminalWidth(os.Stdout, w)
		}
	}
	if h == 0 {
		h = fileHeight
		if toTerminal {
			h = termHeight
		}
	}
	return w, h
}

func runField(cmd *cobra.Command, args []string) error {
	w, h := size(flagOut == "", cfg.Field.Height, 24)
	img, err := field.Render(cmd.Context(), w, h, cfg.Field.Workers)
	if err != nil {
		return err
	}
	return emit(cmd, img)
}

func runSlider(cmd *cobra.Command, args []string) error {
	c, err := cfg.Parser().Parse(args[0])
	if err != nil {
		return err
	}
	mode, err := color.ParseMode(flagMode)
	if err != nil {
		return err
	}
	w, h := size(flagOut == "", 16, 2)
	img, err := field.Slider(c, mode, flagChannel, w, h)
	if err != nil {
		return err
	}
	return emit(cmd, img)
}

func emit(cmd *cobra.Command, img image.Image) error {
	if flagOut == "" {
		if err := field.WriteANSI(cmd.OutOrStdout(), img, field.TerminalProfile(os.Stdout)); err != nil {
			return fmt.Errorf("%w; use --out to write an image file", err)
		}
		return nil
	}

	f, err := field.FormatForPath(flagOut)
	if err != nil {
		return err
	}
	out, err := os.Create(flagOut)
	if err != nil {
		return err
	}
	if err := field.Encode(out, img, f); err != nil {
		out.Close()
		return fmt.Errorf("encoding %s: %w", flagOut, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", flagOut)
	return nil
}

func runPick(cmd *cobra.Command, args []string) error {
	x, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid x %q", args[0])
	}
	y, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid y %q", args[1])
	}
	w, h := size(false, cfg.Field.Height, 0)
	if x < 0 || x >= w || y < 0 || y >= h {
		return fmt.Errorf("point (%d, %d) is outside the %dx%d field", x, y, w, h)
	}

	mode := cfg.Mode
	if flagTo != "" {
		if mode, err = color.ParseMode(flagTo); err != nil {
			return err
		}
	}
	fmt.Fprintln(cmd.OutOrStdout(), format.Notation(convert.To(field.Sample(x, y, w, h), mode)))
	return nil
}

func runLocate(cmd *cobra.Command, args []string) error {
	c, err := cfg.Parser().Parse(args[0])
	if err != nil {
		return err
	}
	w, h := size(false, cfg.Field.Height, 0)
	p := field.Locate(c, w, h)
	fmt.Fprintf(cmd.OutOrStdout(), "%d %d\n", p.X, p.Y)
	return nil
}
