package main

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/midbel/heatmap"
)

func newServeCmd(opts *options) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the heatmap over http, drawing it again on every request",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr != "" {
				opts.cfg.Server.Addr = addr
			}
			return runServe(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listening address")
	return cmd
}

func runServe(ctx context.Context, opts *options) error {
	srv := &http.Server{
		Addr:              opts.cfg.Server.Addr,
		Handler:           newHandler(opts.pipeline(), opts.logger),
		ReadHeaderTimeout: 5 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		opts.logger.Info("listening", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type handler struct {
	pipeline heatmap.Pipeline
	logger   *slog.Logger
}

func newHandler(p heatmap.Pipeline, logger *slog.Logger) http.Handler {
	h := handler{
		pipeline: p,
		logger:   logger,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", h.serve("text/html; charset=utf-8", func(ch heatmap.Chart, b *bytes.Buffer) error {
		return writePage(b, ch, ch.LegendSurface())
	}))
	mux.HandleFunc("GET /heatmap.svg", h.serve("image/svg+xml", func(ch heatmap.Chart, b *bytes.Buffer) error {
		return ch.Render(b)
	}))
	mux.HandleFunc("GET /legend.svg", h.serve("image/svg+xml", func(ch heatmap.Chart, b *bytes.Buffer) error {
		return ch.LegendSurface().Render(b)
	}))
	mux.HandleFunc("GET /heatmap.png", h.serve("image/png", func(ch heatmap.Chart, b *bytes.Buffer) error {
		return ch.EncodePNG(b)
	}))
	return mux
}

func (h handler) serve(ctype string, write func(heatmap.Chart, *bytes.Buffer) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ch, err := h.pipeline.Build(r.Context())
		if err != nil {
			h.logger.Error("build heatmap", "path", r.URL.Path, "err", err)
			http.Error(w, err.Error(), http.StatusBadGateway)
			return
		}
		var buf bytes.Buffer
		if err := write(ch, &buf); err != nil {
			h.logger.Error("write heatmap", "path", r.URL.Path, "err", err)
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", ctype)
		if _, err := w.Write(buf.Bytes()); err != nil {
			h.logger.Debug("send heatmap", "path", r.URL.Path, "err", err)
			return
		}
		h.logger.Debug("heatmap served", "path", r.URL.Path, "bytes", buf.Len())
	}
}
