package recorder

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/internal/storage"
)

// Recorder binds a session to the state file and the scramble history.
// Every mutating call persists before returning.
type Recorder struct {
	db        *storage.DB
	stateFile *StateFile
	session   *cubesim.Session
	log       *slog.Logger

	scrambleLength int
	scrambleRepo   *storage.ScrambleRepository
	moveRepo       *storage.MoveRepository
}

// ScrambleResult describes a recorded scramble.
type ScrambleResult struct {
	ID     string
	Tokens []string
	Seed   *uint64
	State  string
}

// New restores the session described by stateFile.
func New(db *storage.DB, stateFile *StateFile, log *slog.Logger, opts ...cubesim.Option) (*Recorder, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	cfg := append([]cubesim.Option{cubesim.WithLogger(log)}, opts...)
	cfg = append(cfg, cubesim.WithMoveHistory(true))

	r := &Recorder{
		db:             db,
		stateFile:      stateFile,
		session:        cubesim.NewSession(cfg...),
		log:            log,
		scrambleLength: scramble.DefaultLength,
		scrambleRepo:   storage.NewScrambleRepository(db),
		moveRepo:       storage.NewMoveRepository(db),
	}

	if err := r.restore(); err != nil {
		return nil, err
	}
	return r, nil
}

// SetScrambleLength sets the length used when Scramble is asked for n <= 0.
func (r *Recorder) SetScrambleLength(n int) {
	if n > 0 {
		r.scrambleLength = n
	}
}

// restore rebuilds the session. With an active scramble the scramble is
// replayed so Solve keeps working; the stored cube state wins whenever the
// replay disagrees with it.
func (r *Recorder) restore() error {
	st := r.stateFile.State()

	if st.ActiveScrambleID != "" {
		rec, err := r.scrambleRepo.Get(st.ActiveScrambleID)
		switch {
		case errors.Is(err, storage.ErrNotFound):
			r.log.Warn("active scramble missing from database", slog.String("scramble_id", st.ActiveScrambleID))
		case err != nil:
			return err
		default:
			if err := r.session.RecordScramble(rec.Tokens); err != nil {
				return fmt.Errorf("stored scramble %s: %w", rec.ScrambleID, err)
			}
			if _, err := r.session.ApplySequence(st.Moves); err != nil {
				r.log.Warn("stored moves did not replay cleanly", slog.Any("error", err))
			}
			if st.CubeState == "" || r.session.Serialize() == st.CubeState {
				return nil
			}
			r.log.Warn("state file disagrees with scramble replay, using stored state")
		}
	}

	if st.CubeState == "" {
		r.session.Reset()
		return nil
	}
	if err := r.session.Load(st.CubeState); err != nil {
		return fmt.Errorf("state file %s: %w", r.stateFile.Path(), err)
	}
	return nil
}

// Session returns the underlying session.
func (r *Recorder) Session() *cubesim.Session {
	return r.session
}

// ActiveScrambleID returns the scramble being worked on, if any.
func (r *Recorder) ActiveScrambleID() string {
	if r.session.ScrambleRecord() == nil {
		return ""
	}
	return r.stateFile.ActiveScrambleID()
}

func (r *Recorder) save(activeID string) error {
	return r.stateFile.Update(AppState{
		DBPath:           r.db.Path(),
		ActiveScrambleID: activeID,
		CubeState:        r.session.Serialize(),
		Moves:            r.session.History(),
	})
}

// Scramble generates n moves (the configured length for n <= 0), applies
// them to a solved cube and records them. A non-nil seed makes the
// scramble reproducible.
func (r *Recorder) Scramble(n int, seed *uint64) (*ScrambleResult, error) {
	if n <= 0 {
		n = r.scrambleLength
	}

	var tokens []string
	if seed != nil {
		tokens = scramble.New(*seed).Generate(n)
	} else {
		tokens = r.session.GenerateScramble(n)
	}

	if err := r.session.RecordScramble(tokens); err != nil {
		return nil, err
	}
	state := r.session.Serialize()

	id, err := r.scrambleRepo.Create(tokens, seed, state)
	if err != nil {
		return nil, err
	}
	if _, err := r.moveRepo.Append(id, tokens, storage.SourceScramble); err != nil {
		return nil, err
	}

	r.log.Info("scramble recorded", slog.String("scramble_id", id), slog.Int("moves", len(tokens)))

	if err := r.save(id); err != nil {
		return nil, err
	}
	return &ScrambleResult{ID: id, Tokens: tokens, Seed: seed, State: state}, nil
}

// Move applies tokens. In strict mode it stops at the first bad token;
// otherwise bad tokens are skipped. Applied moves are persisted either way
// and logged against the active scramble.
func (r *Recorder) Move(tokens []string, strict bool) ([]cubesim.MoveResult, error) {
	var results []cubesim.MoveResult
	var applyErr error
	if strict {
		results, applyErr = r.session.ApplySequenceStrict(tokens)
	} else {
		results, applyErr = r.session.ApplySequence(tokens)
	}

	var applied []string
	for _, res := range results {
		if res.OK() {
			applied = append(applied, res.Move.Notation())
		}
	}

	activeID := r.ActiveScrambleID()
	if activeID != "" && len(applied) > 0 {
		if _, err := r.moveRepo.Append(activeID, applied, storage.SourceManual); err != nil {
			return results, err
		}
	}

	if err := r.save(activeID); err != nil {
		return results, err
	}
	return results, applyErr
}

// Solution returns the inverse of the active scramble without applying it.
func (r *Recorder) Solution() ([]string, error) {
	return r.session.Solution()
}

// SolutionFor returns the inverse of a stored scramble.
func (r *Recorder) SolutionFor(scrambleID string) ([]string, error) {
	rec, err := r.scrambleRepo.Get(scrambleID)
	if err != nil {
		return nil, err
	}
	return notation.Invert(rec.Tokens)
}

// Solve applies the inverse of the active scramble and marks it solved.
func (r *Recorder) Solve() ([]string, error) {
	activeID := r.ActiveScrambleID()

	solution, err := r.session.Solve()
	if err != nil {
		return nil, err
	}

	if activeID != "" {
		if _, err := r.moveRepo.Append(activeID, solution, storage.SourceSolve); err != nil {
			return solution, err
		}
		if err := r.scrambleRepo.MarkSolved(activeID, solution); err != nil {
			return solution, err
		}
	}

	if err := r.save(""); err != nil {
		return solution, err
	}
	return solution, nil
}

// Reset returns the cube to solved and forgets the active scramble. The
// scramble stays in the history unsolved.
func (r *Recorder) Reset() error {
	r.session.Reset()
	return r.save("")
}

// History lists recorded scrambles, newest first.
func (r *Recorder) History(limit int) ([]storage.Scramble, error) {
	return r.scrambleRepo.List(limit)
}

// Moves returns the move log of a recorded scramble.
func (r *Recorder) Moves(scrambleID string) ([]storage.MoveRecord, error) {
	return r.moveRepo.GetByScramble(scrambleID)
}
