package main

import (
	"fmt"

	"github.com/jsvensson/colorweave/internal/engine"
	"github.com/spf13/cobra"
)

var (
	flagTemplates string
	flagOutDir    string
	flagOnly      []string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Render the config palette through a directory of templates",
	Long: `Render each .tmpl file in the templates directory with the palette from the
config file. The output file is named after the template without .tmpl.`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&flagTemplates, "templates", "templates", "templates directory")
	exportCmd.Flags().StringVar(&flagOutDir, "out", "output", "output directory")
	exportCmd.Flags().StringArrayVar(&flagOnly, "only", nil, "render only these templates (can be repeated)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	e := &engine.Engine{
		TemplatesDir: flagTemplates,
		OutputDir:    flagOutDir,
		Only:         flagOnly,
	}
	written, err := e.Run(cfg.Palette)
	if err != nil {
		return fmt.Errorf("exporting: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Rendered %d file(s) in %s\n", len(written), flagOutDir)
	return nil
}
