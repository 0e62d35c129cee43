package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/midbel/heatmap"
	"github.com/midbel/heatmap/config"
	"github.com/midbel/heatmap/fetch"
	"github.com/midbel/heatmap/logging"
)

type options struct {
	config  string
	url     string
	input   string
	verbose bool
	format  string

	cfg    config.Config
	logger *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	root := &cobra.Command{
		Use:           "heatmap",
		Short:         "Draw the monthly global temperature heatmap",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVarP(&opts.config, "config", "c", "", "configuration file (yaml)")
	flags.StringVar(&opts.url, "url", "", "url of the dataset")
	flags.StringVar(&opts.input, "input", "", "read the dataset from a local file instead of the url")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logs")
	flags.StringVar(&opts.format, "log-format", "", "log format (text, json)")

	root.AddCommand(newRenderCmd(&opts))
	root.AddCommand(newServeCmd(&opts))
	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.config)
	if err != nil {
		return err
	}
	if o.url != "" {
		cfg.URL = o.url
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if o.format != "" {
		cfg.Log.Format = o.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, _ := config.ParseLevel(cfg.Log.Level)
	o.cfg = cfg
	o.logger = logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	return nil
}

func (o *options) source() heatmap.Source {
	if o.input != "" {
		return fetch.File{Path: o.input}
	}
	return fetch.NewClient(o.cfg.URL, o.cfg.Timeout, o.logger)
}

func (o *options) pipeline() heatmap.Pipeline {
	return heatmap.Pipeline{
		Source: o.source(),
		Canvas: o.cfg.Surface(),
		Title:  o.cfg.Title,
	}
}
