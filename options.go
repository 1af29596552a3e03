package cubesim

import (
	"log/slog"

	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// Option configures Session behavior.
type Option func(*config)

type config struct {
	scrambleLength int
	seed           *uint64
	logger         *slog.Logger
	onMove         func(types.Move)
	moveHistory    bool
}

func defaultConfig() *config {
	return &config{
		scrambleLength: scramble.DefaultLength,
		logger:         slog.New(slog.DiscardHandler),
		moveHistory:    true,
	}
}

// WithScrambleLength sets the scramble length used when a caller asks for
// zero or fewer moves. Non-positive values are ignored.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithSeed makes scrambles reproducible.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = &seed
	}
}

// WithLogger sets the logger for session events. Moves are logged at debug
// level.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMoveCallback registers a function called after every applied move,
// outside the session lock.
func WithMoveCallback(fn func(types.Move)) Option {
	return func(c *config) {
		c.onMove = fn
	}
}

// WithMoveHistory enables or disables the list returned by History.
// Solve still detects moves made after a scramble when it is disabled.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}
