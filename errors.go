package cubesim

import (
	"errors"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
)

// Sentinel errors for the cubesim package.
var (
	// Parsing errors
	ErrInvalidMove  = notation.ErrInvalidMove
	ErrInvalidState = cube.ErrInvalidState

	// Solve errors
	ErrNoScramble      = errors.New("cubesim: no scramble recorded")
	ErrHistoryDiverged = errors.New("cubesim: moves applied since the recorded scramble")
)
