/* logger.go
 * Contains the construction of the run logger from the logging configuration
 */

package cli

import (
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// newLogger builds a slog logger writing to w. Every record carries the run id so interleaved runs can be
// told apart. An unknown level falls back to warn
func newLogger(w io.Writer, cfg LoggingConfig) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			level = slog.LevelWarn
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With("run_id", uuid.NewString())
}
