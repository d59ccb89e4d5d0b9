package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitil-jpg/chess-sub000/engine"
)

func TestThreatScoutFindsMate(t *testing.T) {
	// Scholar's mate one move before the end: Qxf7# leaves no replies, which
	// scores as mate and dominates every other first move.
	ts := engine.NewThreatScout(engine.DefaultThreatWeights())
	b := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5Q2/PPPP1PPP/RNB1K1NR w KQkq - 0 4")

	line, ok := ts.Probe(b)
	require.True(t, ok)
	assert.Equal(t, "f3f7", line.Move.String())
	assert.Equal(t, 1000, line.Worst)
	assert.Nil(t, line.Reply)
	assert.Nil(t, line.FollowUp)

	m, reason, chosen := ts.Choose(b)
	require.True(t, chosen)
	assert.Equal(t, "f3f7", m.String())
	assert.Equal(t, engine.TierDepth2, reason.Tier())
	assert.Contains(t, string(reason), "worst=1000")
}

func TestThreatScoutQuietPositionDeclines(t *testing.T) {
	// From the starting position no first move guarantees a threat worth the
	// threshold, and twenty replies always overflow the opponent cap.
	ts := engine.NewThreatScout(engine.DefaultThreatWeights())
	b := mustFEN(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	line, ok := ts.Probe(b)
	require.True(t, ok)
	assert.Less(t, line.Worst, 90)
	assert.True(t, line.Capped)
	assert.NotNil(t, line.Reply)

	_, _, chosen := ts.Choose(b)
	assert.False(t, chosen)
}

func TestThreatScoutForcedForkScore(t *testing.T) {
	// Rd8+ forces Qxd8 (the king has no flight square and nothing else
	// reaches d8), after which Nf7+ forks king and queen. The follow-up
	// score is fully determined: 90 for attacking the queen, 70 for the
	// fork, 50 for the check, 10 for the safe landing square.
	ts := engine.NewThreatScout(engine.DefaultThreatWeights())
	b := mustFEN(t, "7k/6pp/8/q5N1/8/8/8/3R2K1 w - - 0 1")

	line, ok := ts.Probe(b)
	require.True(t, ok)
	assert.Equal(t, "d1d8", line.Move.String())
	assert.Equal(t, "a5d8", line.Reply.String())
	assert.Equal(t, "g5f7", line.FollowUp.String())
	assert.Equal(t, 220, line.Worst)
	assert.False(t, line.Capped)

	m, reason, chosen := ts.Choose(b)
	require.True(t, chosen)
	assert.Equal(t, "d1d8", m.String())
	assert.Contains(t, string(reason), "worst=220")
}

func TestThreatScoutReplyOrderingUnderCap(t *testing.T) {
	// White's only move is Kg1; with the opponent cap at one, the single
	// retained reply must be the check Rh1+, whose refutation Kxh1 scores
	// the hanging rook (80) plus the safety bonus (10). A mis-ordered trim
	// would keep a quiet reply and score near 10 instead.
	w := engine.DefaultThreatWeights()
	w.MaxOpp = 1
	ts := engine.NewThreatScout(w)
	b := mustFEN(t, "7r/8/8/3k4/8/8/6P1/7K w - - 0 1")

	line, ok := ts.Probe(b)
	require.True(t, ok)
	assert.Equal(t, "h1g1", line.Move.String())
	assert.Equal(t, "h8h1", line.Reply.String())
	assert.Equal(t, "g1h1", line.FollowUp.String())
	assert.Equal(t, 90, line.Worst)
	assert.True(t, line.Capped)
}

func TestThreatScoutTightCapsStillAnswer(t *testing.T) {
	// Caps of one branch per side degrade quality, never availability.
	w := engine.DefaultThreatWeights()
	w.MaxOpp = 1
	w.MaxOur = 1
	ts := engine.NewThreatScout(w)
	b := mustFEN(t, "r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3")

	line, ok := ts.Probe(b)
	require.True(t, ok)
	require.NotNil(t, line.Move)
	assert.True(t, line.Capped)
}
