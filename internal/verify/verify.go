// Package verify runs randomized round trips through the cube model and
// summarizes how evenly the scramble generator uses its alphabet.
package verify

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/internal/scramble"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// Config controls a verification run.
type Config struct {
	Rounds int
	Moves  int     // moves per scramble
	Seed   *uint64 // nil draws a random seed
}

// Failure describes one scramble that broke an invariant.
type Failure struct {
	Round    int
	Scramble []string
	Reason   string
}

// Report summarizes a run.
type Report struct {
	Rounds   int
	Moves    int
	Failures []Failure

	// Freq counts how often each move token was drawn, indexed by
	// types.Move.Token.
	Freq [types.TokenCount]float64

	Mean      float64 // mean count per token
	StdDev    float64
	ChiSquare float64 // against a uniform draw
	PValue    float64 // chi-square survival with TokenCount-1 degrees of freedom

	// Effective scramble length after merging and cancelling neighbors.
	EffectiveMean   float64
	EffectiveStdDev float64

	effective []float64
}

// OK reports whether every round held.
func (r *Report) OK() bool {
	return len(r.Failures) == 0
}

// Run scrambles a fresh cube Rounds times and checks each one:
//   - the sticker multiset is unchanged (nine of each color);
//   - the state string parses back to the same cube;
//   - applying the inverse restores the solved cube.
//
// onRound, if not nil, is called after each round.
func Run(cfg Config, onRound func()) (*Report, error) {
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.Moves <= 0 {
		return nil, fmt.Errorf("moves must be positive, got %d", cfg.Moves)
	}

	gen := scramble.NewRandom()
	if cfg.Seed != nil {
		gen = scramble.New(*cfg.Seed)
	}

	rep := &Report{Rounds: cfg.Rounds, Moves: cfg.Moves}
	c := cube.New()

	for round := 0; round < cfg.Rounds; round++ {
		tokens := gen.Generate(cfg.Moves)
		moves, err := notation.ParseTokens(tokens)
		if err != nil {
			return nil, fmt.Errorf("generator produced bad tokens: %w", err)
		}
		for _, m := range moves {
			rep.Freq[m.Token()]++
		}
		rep.effective = append(rep.effective, float64(len(notation.Simplify(moves))))

		if reason := check(c, moves); reason != "" {
			rep.Failures = append(rep.Failures, Failure{Round: round, Scramble: tokens, Reason: reason})
		}
		if onRound != nil {
			onRound()
		}
	}

	rep.summarize()
	return rep, nil
}

func check(c *cube.Cube, moves []types.Move) string {
	c.Reset()
	c.Apply(moves...)

	if err := c.Validate(); err != nil {
		return err.Error()
	}
	parsed, err := cube.Parse(c.Serialize())
	if err != nil {
		return "state string does not parse: " + err.Error()
	}
	if !parsed.Equal(c) {
		return "state string does not round-trip"
	}

	c.Apply(notation.InvertMoves(moves)...)
	if !c.IsSolved() {
		return "inverse did not restore the solved cube"
	}
	return ""
}

func (r *Report) summarize() {
	obs := r.Freq[:]
	total := 0.0
	for _, v := range obs {
		total += v
	}

	exp := make([]float64, len(obs))
	for i := range exp {
		exp[i] = total / float64(len(obs))
	}

	r.Mean, r.StdDev = stat.MeanStdDev(obs, nil)
	r.ChiSquare = stat.ChiSquare(obs, exp)
	r.PValue = distuv.ChiSquared{K: float64(len(obs) - 1)}.Survival(r.ChiSquare)
	r.EffectiveMean, r.EffectiveStdDev = stat.MeanStdDev(r.effective, nil)
}
