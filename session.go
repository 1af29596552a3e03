package cubesim

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"go.uber.org/multierr"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// MoveResult is the outcome of one token in ApplySequence.
type MoveResult struct {
	Token string     `json:"token"`
	Move  types.Move `json:"move"`
	Err   error      `json:"-"`
}

// OK reports whether the token was applied.
func (r MoveResult) OK() bool {
	return r.Err == nil
}

// Session owns one cube and the scramble applied to it. It is the only
// writer of its cube; callers construct and hold their own sessions.
type Session struct {
	cfg *config
	log *slog.Logger

	mu          sync.RWMutex
	cube        *cube.Cube
	gen         *scramble.Generator
	scramble    []string // canonical tokens of the recorded scramble
	hasScramble bool
	sinceMoves  int          // moves applied since the scramble was recorded
	history     []types.Move // moves since the last reset or scramble
}

// NewSession creates a session holding a solved cube.
func NewSession(opts ...Option) *Session {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	gen := scramble.NewRandom()
	if cfg.seed != nil {
		gen = scramble.New(*cfg.seed)
	}

	return &Session{
		cfg:  cfg,
		log:  cfg.logger,
		cube: cube.New(),
		gen:  gen,
	}
}

// Reset returns the cube to solved and forgets the recorded scramble.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.log.Debug("session reset")
}

func (s *Session) resetLocked() {
	s.cube.Reset()
	s.scramble = nil
	s.hasScramble = false
	s.sinceMoves = 0
	s.history = nil
}

// Load replaces the cube with a serialized state. The recorded scramble is
// dropped because it no longer describes how the state was reached.
func (s *Session) Load(state string) error {
	c, err := cube.Parse(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
	s.cube = c
	return nil
}

// ApplyMove parses and applies one token. A token that does not parse
// leaves the cube untouched and returns an error wrapping ErrInvalidMove.
func (s *Session) ApplyMove(token string) error {
	m, err := notation.ParseToken(token)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.applyLocked(m)
	s.mu.Unlock()

	s.notify(m)
	return nil
}

// Apply applies already parsed moves, such as the predefined R or TPerm.
func (s *Session) Apply(moves ...types.Move) {
	for _, m := range moves {
		s.mu.Lock()
		s.applyLocked(m)
		s.mu.Unlock()
		s.notify(m)
	}
}

// ApplySequence applies each token in order. A bad token is skipped and
// the rest are still applied; the returned error combines every failure
// so the caller can decide whether that is fatal.
func (s *Session) ApplySequence(tokens []string) ([]MoveResult, error) {
	return s.applySequence(tokens, false)
}

// ApplySequenceStrict applies tokens in order and stops at the first one
// that fails. Moves before it stay applied.
func (s *Session) ApplySequenceStrict(tokens []string) ([]MoveResult, error) {
	return s.applySequence(tokens, true)
}

func (s *Session) applySequence(tokens []string, strict bool) ([]MoveResult, error) {
	results := make([]MoveResult, 0, len(tokens))
	var errs error

	for i, tok := range tokens {
		m, err := notation.ParseToken(tok)
		if err != nil {
			err = fmt.Errorf("token %d: %w", i, err)
			results = append(results, MoveResult{Token: tok, Err: err})
			errs = multierr.Append(errs, err)
			if strict {
				break
			}
			continue
		}

		s.mu.Lock()
		s.applyLocked(m)
		s.mu.Unlock()
		s.notify(m)

		results = append(results, MoveResult{Token: tok, Move: m})
	}

	return results, errs
}

func (s *Session) applyLocked(m types.Move) {
	s.cube.ApplyMove(m)
	if s.hasScramble {
		s.sinceMoves++
	}
	if s.cfg.moveHistory {
		s.history = append(s.history, m)
	}
	s.log.Debug("move applied", slog.String("move", m.Notation()))
}

func (s *Session) notify(m types.Move) {
	if s.cfg.onMove != nil {
		s.cfg.onMove(m)
	}
}

// IsSolved reports whether every face is a single color.
func (s *Session) IsSolved() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cube.IsSolved()
}

// Serialize returns the 54-character state string.
func (s *Session) Serialize() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cube.Serialize()
}

// Cube returns a copy of the current cube.
func (s *Session) Cube() *cube.Cube {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cube.Clone()
}

// History returns the moves applied since the last reset or scramble.
func (s *Session) History() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return notation.Tokens(s.history)
}

// GenerateScramble returns n random tokens without applying them.
// n <= 0 selects the session's configured scramble length.
func (s *Session) GenerateScramble(n int) []string {
	if n <= 0 {
		n = s.cfg.scrambleLength
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen.Generate(n)
}

// Scramble resets the cube, applies a fresh scramble of n moves and
// records it for Solve. n <= 0 selects the configured length.
func (s *Session) Scramble(n int) []string {
	tokens := s.GenerateScramble(n)
	moves, _ := notation.ParseTokens(tokens)

	s.mu.Lock()
	s.recordLocked(tokens, moves)
	s.mu.Unlock()

	s.log.Info("scrambled", slog.Int("moves", len(tokens)), slog.String("scramble", notation.Format(moves)))
	return tokens
}

// RecordScramble resets the cube and applies a scramble supplied by the
// caller, recording it for Solve. Nothing changes if any token is invalid.
func (s *Session) RecordScramble(tokens []string) error {
	moves, err := notation.ParseTokens(tokens)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.recordLocked(notation.Tokens(moves), moves)
	s.mu.Unlock()
	return nil
}

func (s *Session) recordLocked(tokens []string, moves []types.Move) {
	s.resetLocked()
	s.cube.Apply(moves...)
	s.scramble = append([]string(nil), tokens...)
	s.hasScramble = true
}

// ScrambleRecord returns the recorded scramble, or nil if there is none.
func (s *Session) ScrambleRecord() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasScramble {
		return nil
	}
	return append([]string{}, s.scramble...)
}

// Solution returns the inverse of the recorded scramble. It works from
// history only, so it fails with ErrHistoryDiverged once other moves
// have been applied since the scramble.
func (s *Session) Solution() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.solutionLocked()
}

func (s *Session) solutionLocked() ([]string, error) {
	if !s.hasScramble {
		return nil, ErrNoScramble
	}
	if s.sinceMoves > 0 {
		return nil, fmt.Errorf("%w: %d move(s)", ErrHistoryDiverged, s.sinceMoves)
	}
	return notation.Invert(s.scramble)
}

// Solve applies the solution and clears the recorded scramble. It returns
// the moves it applied.
func (s *Session) Solve() ([]string, error) {
	s.mu.Lock()
	solution, err := s.solutionLocked()
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	moves, _ := notation.ParseTokens(solution)
	s.cube.Apply(moves...)
	s.scramble = nil
	s.hasScramble = false
	s.sinceMoves = 0
	if s.cfg.moveHistory {
		s.history = append(s.history, moves...)
	}
	solved := s.cube.IsSolved()
	s.mu.Unlock()

	for _, m := range moves {
		s.notify(m)
	}
	s.log.Info("solved from scramble record", slog.Int("moves", len(moves)), slog.Bool("solved", solved))
	return solution, nil
}

// Invert returns the tokens that undo tokens, in reverse order.
func Invert(tokens []string) ([]string, error) {
	return notation.Invert(tokens)
}

// GenerateScramble returns n random tokens from the 18-token alphabet
// using a freshly seeded generator.
func GenerateScramble(n int) []string {
	return scramble.NewRandom().Generate(n)
}

// ParseMove parses one token.
func ParseMove(token string) (types.Move, error) {
	return notation.ParseToken(token)
}

// IsInvalidMove reports whether err was caused by a bad token.
func IsInvalidMove(err error) bool {
	return errors.Is(err, ErrInvalidMove)
}
