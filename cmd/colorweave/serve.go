package main

import (
	"os"
	"os/signal"

	"github.com/jsvensson/colorweave/internal/web"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
)

var (
	flagAddr string
	flagOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the conversion API and picker images over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().BoolVar(&flagOpen, "open", false, "open the index page in a browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if flagAddr != "" {
		addr = flagAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	browser.Stdout = cmd.ErrOrStderr()
	ready := func(url string) {
		cmd.Printf("Serving on %s\n", url)
		if !flagOpen {
			return
		}
		if err := browser.OpenURL(url); err != nil {
			commonlog.GetLogger("colorweave").Warningf("opening browser: %s", err)
		}
	}
	return web.Serve(ctx, addr, web.New(cfg).Handler(), ready)
}
