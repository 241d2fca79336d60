package logx

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

var Error = tint.Err //nolint:gochecknoglobals

const FormatJSON = "json"

func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// NewHandler returns a JSON handler for FormatJSON and a colored console
// handler otherwise.
func NewHandler(w io.Writer, format string, level slog.Leveler) slog.Handler {
	if format == FormatJSON {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}) //nolint:exhaustruct
	}

	return tint.NewHandler(w, &tint.Options{ //nolint:exhaustruct
		Level:      level,
		TimeFormat: time.DateTime,
	})
}
