package verify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubesim/internal/cube"
	"github.com/SeamusWaldron/cubesim/internal/notation"
	"github.com/SeamusWaldron/cubesim/pkg/types"
)

func TestRunHoldsInvariants(t *testing.T) {
	seed := uint64(2024)
	calls := 0
	rep, err := Run(Config{Rounds: 200, Moves: 25, Seed: &seed}, func() { calls++ })
	require.NoError(t, err)

	assert.True(t, rep.OK(), "failures: %+v", rep.Failures)
	assert.Equal(t, 200, calls)

	total := 0.0
	for _, v := range rep.Freq {
		total += v
	}
	assert.Equal(t, float64(200*25), total)
	assert.InDelta(t, total/types.TokenCount, rep.Mean, 1e-9)

	// About one in six neighbors shares a face, so simplified scrambles
	// are shorter on average but never longer.
	assert.Less(t, rep.EffectiveMean, 25.0)
	assert.Greater(t, rep.EffectiveMean, 15.0)
}

func TestRunIsUniformEnough(t *testing.T) {
	seed := uint64(99)
	rep, err := Run(Config{Rounds: 1000, Moves: 20, Seed: &seed}, nil)
	require.NoError(t, err)

	// 20000 draws over 18 tokens; a fair generator essentially never
	// lands below 1e-4.
	assert.Greater(t, rep.PValue, 1e-4)
	for tok, v := range rep.Freq {
		assert.Positive(t, v, "token %s never drawn", types.MoveFromToken(uint8(tok)).Notation())
	}
}

func TestRunIsReproducible(t *testing.T) {
	seed := uint64(5)
	a, err := Run(Config{Rounds: 10, Moves: 10, Seed: &seed}, nil)
	require.NoError(t, err)
	b, err := Run(Config{Rounds: 10, Moves: 10, Seed: &seed}, nil)
	require.NoError(t, err)
	assert.Equal(t, a.Freq, b.Freq)
	assert.Equal(t, a.ChiSquare, b.ChiSquare)
}

func TestRunRejectsBadConfig(t *testing.T) {
	_, err := Run(Config{Rounds: 0, Moves: 10}, nil)
	assert.Error(t, err)
	_, err = Run(Config{Rounds: 10, Moves: -1}, nil)
	assert.Error(t, err)
}

func TestCheckLeavesCubeSolved(t *testing.T) {
	moves, err := notation.ParseSequence("R U F' L2 D B")
	require.NoError(t, err)

	c := cube.New()
	c.Turn(cube.R, 1) // check starts from solved regardless
	assert.Empty(t, check(c, moves))
	assert.True(t, c.IsSolved())
}
