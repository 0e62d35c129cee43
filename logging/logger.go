package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// New creates the logger of the command. Text output goes through a tint
// handler, json output through the standard JSON handler.
func New(w io.Writer, level slog.Level, format string) *slog.Logger {
	if format == "json" {
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
		return slog.New(h).With("app", "heatmap")
	}
	h := tint.NewHandler(w, &tint.Options{
		Level:      level,
		AddSource:  level == slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})
	return slog.New(h)
}
