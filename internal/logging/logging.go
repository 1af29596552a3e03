// Package logging builds the slog loggers used across cubesim.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Mode selects a logger preset.
type Mode uint8

const (
	ModeDev     Mode = iota // text, debug level
	ModeProd                // JSON, info level
	ModeSilence             // discard everything
)

func (m Mode) String() string {
	switch m {
	case ModeDev:
		return "dev"
	case ModeProd:
		return "prod"
	case ModeSilence:
		return "silence"
	default:
		return "unknown"
	}
}

// ParseMode maps a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dev", "":
		return ModeDev, nil
	case "prod":
		return ModeProd, nil
	case "silence", "silent":
		return ModeSilence, nil
	default:
		return 0, fmt.Errorf("unknown log mode %q (want dev, prod or silence)", s)
	}
}

// New returns a logger for mode writing to w. A nil w means stderr.
func New(mode Mode, w io.Writer) *slog.Logger {
	return slog.New(Handler(mode, w))
}

// Handler returns the handler behind New.
func Handler(mode Mode, w io.Writer) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	switch mode {
	case ModeProd:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	case ModeSilence:
		return slog.DiscardHandler
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}
