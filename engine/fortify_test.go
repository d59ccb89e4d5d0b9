package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitil-jpg/chess-sub000/engine"
)

func TestFortifyDensity(t *testing.T) {
	f := engine.NewFortify(engine.DefaultFortifyWeights(), testRNG())

	// Bare rook to a4: nobody defends, nobody attacks.
	b := mustFEN(t, "7k/8/8/8/8/8/8/R3K3 w Q - 0 1")
	bd := f.Evaluate(b, findMove(t, b, "a1a4"))
	assert.Equal(t, 0, bd.Defenders)
	assert.Equal(t, 0, bd.Attackers)
	assert.Equal(t, 0, bd.Density)

	// The b3 pawn defends a4, the h4 rook attacks it: density 0 again.
	b = mustFEN(t, "7k/8/8/8/7r/1P6/8/R3K3 w Q - 0 1")
	bd = f.Evaluate(b, findMove(t, b, "a1a4"))
	assert.Equal(t, 1, bd.Defenders)
	assert.Equal(t, 1, bd.Attackers)
	assert.Equal(t, 0, bd.Density)

	// Add the c3 knight: two defenders against one attacker.
	b = mustFEN(t, "7k/8/8/8/7r/1PN5/8/R3K3 w Q - 0 1")
	bd = f.Evaluate(b, findMove(t, b, "a1a4"))
	assert.Equal(t, 2, bd.Defenders)
	assert.Equal(t, 1, bd.Attackers)
	assert.Equal(t, 1, bd.Density)
}

func TestFortifyEvaluateFlagsCapture(t *testing.T) {
	f := engine.NewFortify(engine.DefaultFortifyWeights(), testRNG())
	b := mustFEN(t, "4k3/8/8/3q4/2P5/8/8/4K3 w - - 0 1")
	bd := f.Evaluate(b, findMove(t, b, "c4d5"))
	assert.True(t, bd.Capture)
}

func TestFortifyChoosesDevelopmentFromStartpos(t *testing.T) {
	f := engine.NewFortify(engine.DefaultFortifyWeights(), testRNG())
	b := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	m, reason, ok := f.Choose(b)
	require.True(t, ok)
	require.NotNil(t, m)
	assert.Equal(t, engine.TierFortify, reason.Tier())
}

func TestFortifySafeOnlySkipsHangingSquares(t *testing.T) {
	// Bxg7 strips a shield pawn and tops the board, but it hangs the bishop
	// to the king. Safe-only mode must pass it over.
	b := mustFEN(t, "6k1/6pp/8/8/8/8/1B6/7K w - - 0 1")

	f := engine.NewFortify(engine.DefaultFortifyWeights(), testRNG())
	m, bd, ok := f.BestMove(b)
	require.True(t, ok)
	assert.Equal(t, "b2g7", m.String())
	assert.True(t, bd.Capture)
	assert.Equal(t, -1, bd.Density)

	f.SafeOnly(true)
	m, bd, ok = f.BestMove(b)
	require.True(t, ok)
	assert.NotEqual(t, "b2g7", m.String())
	assert.False(t, bd.Attackers > 0 && bd.Defenders == 0)
}

func TestFortifyScoreIsPure(t *testing.T) {
	// Evaluate excludes the jitter, so two scorers with different RNG streams
	// agree on every breakdown.
	f1 := engine.NewFortify(engine.DefaultFortifyWeights(), testRNG())
	f2 := engine.NewFortify(engine.DefaultFortifyWeights(), testRNG())
	b := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")
	for _, m := range b.LegalMoves() {
		assert.Equal(t, f1.Evaluate(b, m), f2.Evaluate(b, m), m.String())
	}
}
