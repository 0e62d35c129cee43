package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	svg    string
	legend string
	png    string
	html   string
}

func newRenderCmd(opts *options) *cobra.Command {
	var ro renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Fetch the dataset once and write the heatmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), opts, ro, cmd.OutOrStdout())
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&ro.svg, "output", "o", "heatmap.svg", "svg output file (- for stdout)")
	flags.StringVar(&ro.legend, "legend", "", "svg output file of the legend")
	flags.StringVar(&ro.png, "png", "", "png output file")
	flags.StringVar(&ro.html, "html", "", "html page embedding the heatmap and its legend")
	return cmd
}

// check rejects a destination shared by several outputs.
func (ro renderOptions) check() error {
	seen := make(map[string]struct{})
	for _, file := range []string{ro.svg, ro.legend, ro.png, ro.html} {
		if file == "" {
			continue
		}
		if _, ok := seen[file]; ok {
			return fmt.Errorf("%s: used by several outputs", file)
		}
		seen[file] = struct{}{}
	}
	return nil
}

type writeFunc func(io.Writer) error

func runRender(ctx context.Context, opts *options, ro renderOptions, stdout io.Writer) error {
	if err := ro.check(); err != nil {
		return err
	}
	ch, err := opts.pipeline().Build(ctx)
	if err != nil {
		return err
	}
	legend := ch.LegendSurface()

	outputs := map[string]writeFunc{
		ro.svg:    ch.Render,
		ro.legend: legend.Render,
		ro.png:    ch.EncodePNG,
		ro.html: func(w io.Writer) error {
			return writePage(w, ch, legend)
		},
	}
	delete(outputs, "")

	var grp errgroup.Group
	for file, write := range outputs {
		grp.Go(func() error {
			if err := writeOutput(file, stdout, write); err != nil {
				return fmt.Errorf("%s: %w", file, err)
			}
			opts.logger.Info("output written", "file", file, "cells", len(ch.Cells))
			return nil
		})
	}
	return grp.Wait()
}

func writeOutput(file string, stdout io.Writer, write writeFunc) error {
	if file == "-" {
		return write(stdout)
	}
	w, err := os.Create(file)
	if err != nil {
		return err
	}
	if err := write(w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
