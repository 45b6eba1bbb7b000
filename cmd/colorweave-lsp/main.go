package main

import (
	"fmt"
	"os"

	"github.com/jsvensson/colorweave/internal/config"
	"github.com/jsvensson/colorweave/internal/lsp"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var (
	flagConfig  string
	flagLogFile string
	flagVerbose int
	version     = "dev"
)

var rootCmd = &cobra.Command{
	Use:          "colorweave-lsp",
	Short:        "Language server showing colour swatches and pickers for colour notations",
	Version:      version,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "config file providing log_level and the palette")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.Flags().CountVarP(&flagVerbose, "verbose", "v", "increase log verbosity (can be repeated)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		// stdout carries the protocol, so a bad config must not stop the server.
		fmt.Fprintf(cmd.ErrOrStderr(), "loading config: %v\n", err)
		cfg = config.Default()
	}

	var path *string
	if flagLogFile != "" {
		path = &flagLogFile
	}
	commonlog.Configure(cfg.Verbosity(flagVerbose), path)

	return lsp.NewServer(version, cfg.Palette).Run()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
