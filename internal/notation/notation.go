// Package notation parses, formats and inverts cube move notation.
package notation

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/cases"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// ErrInvalidMove is returned for empty tokens, unknown face letters and
// unknown modifiers.
var ErrInvalidMove = errors.New("cubesim: invalid move")

// ParseToken parses one move token such as R, r', U2 or f2'.
//
// Grammar: face letter (any case) followed by at most one modifier:
// none (clockwise), ' or ` (counter-clockwise), 2 or 2' (half turn).
func ParseToken(s string) (types.Move, error) {
	tok := cases.Fold().String(strings.TrimSpace(s))
	if len(tok) == 0 {
		return types.Move{}, fmt.Errorf("%w: empty token", ErrInvalidMove)
	}

	var face types.Face
	switch tok[0] {
	case 'r':
		face = types.FaceR
	case 'l':
		face = types.FaceL
	case 'u':
		face = types.FaceU
	case 'd':
		face = types.FaceD
	case 'f':
		face = types.FaceF
	case 'b':
		face = types.FaceB
	default:
		return types.Move{}, fmt.Errorf("%w: unknown face in %q", ErrInvalidMove, s)
	}

	var turn types.Turn
	switch tok[1:] {
	case "":
		turn = types.TurnCW
	case "'", "`":
		turn = types.TurnCCW
	case "2", "2'":
		turn = types.Turn180
	default:
		return types.Move{}, fmt.Errorf("%w: unknown modifier in %q", ErrInvalidMove, s)
	}

	return types.Move{Face: face, Turn: turn}, nil
}

// ParseTokens parses each token. Valid tokens are returned in order even
// when others fail; every failure is included in the returned error.
func ParseTokens(tokens []string) ([]types.Move, error) {
	moves := make([]types.Move, 0, len(tokens))
	var errs error
	for i, tok := range tokens {
		m, err := ParseToken(tok)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("token %d: %w", i, err))
			continue
		}
		moves = append(moves, m)
	}
	return moves, errs
}

// ParseSequence parses a whitespace-separated sequence of moves.
func ParseSequence(s string) ([]types.Move, error) {
	return ParseTokens(strings.Fields(s))
}

// Canonical rewrites tokens into canonical notation (R, R', R2).
func Canonical(tokens []string) ([]string, error) {
	moves, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return Tokens(moves), nil
}

// Tokens returns the notation of each move.
func Tokens(moves []types.Move) []string {
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.Notation()
	}
	return out
}

// Format formats a slice of moves as a space-separated string.
func Format(moves []types.Move) string {
	return strings.Join(Tokens(moves), " ")
}

// InvertMoves returns the moves that undo moves: reversed order, each move
// inverted.
func InvertMoves(moves []types.Move) []types.Move {
	out := make([]types.Move, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}

// Invert returns the token sequence that undoes tokens. It knows nothing
// about cube state: the result restores solved only when tokens are the
// only moves applied since solved.
func Invert(tokens []string) ([]string, error) {
	moves, err := ParseTokens(tokens)
	if err != nil {
		return nil, err
	}
	return Tokens(InvertMoves(moves)), nil
}
