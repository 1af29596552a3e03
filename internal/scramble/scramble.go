// Package scramble generates random move sequences.
package scramble

import (
	"math/rand/v2"

	"github.com/SeamusWaldron/cubesim/pkg/types"
)

// DefaultLength is the number of moves in a scramble when none is given.
const DefaultLength = 20

var alphabet = []string{
	"F", "F'", "F2",
	"B", "B'", "B2",
	"U", "U'", "U2",
	"D", "D'", "D2",
	"L", "L'", "L2",
	"R", "R'", "R2",
}

// Alphabet returns the 18 tokens a scramble is drawn from.
func Alphabet() []string {
	out := make([]string, len(alphabet))
	copy(out, alphabet)
	return out
}

// InAlphabet reports whether tok is one of the 18 scramble tokens.
func InAlphabet(tok string) bool {
	for _, a := range alphabet {
		if a == tok {
			return true
		}
	}
	return false
}

// Generator draws scrambles from a random source. A Generator is not safe
// for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator whose output is fully determined by seed.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom returns a generator seeded from the runtime's entropy.
func NewRandom() *Generator {
	return New(rand.Uint64())
}

// Generate returns n tokens drawn uniformly with replacement. Repeated or
// cancelling neighbors are left in.
func (g *Generator) Generate(n int) []string {
	if n <= 0 {
		return []string{}
	}
	out := make([]string, n)
	for i := range out {
		out[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return out
}

// GenerateMoves is Generate in parsed form.
func (g *Generator) GenerateMoves(n int) []types.Move {
	if n <= 0 {
		return []types.Move{}
	}
	out := make([]types.Move, n)
	for i := range out {
		out[i] = types.MoveFromToken(uint8(g.rng.IntN(types.TokenCount)))
	}
	return out
}
