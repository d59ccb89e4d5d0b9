package engine

import (
	"github.com/notnil/chess"
	"lukechampine.com/frand"

	"github.com/fitil-jpg/chess-sub000/board"
)

// Fortify scores candidate moves by how well the resulting position holds
// together: defense density on the landing square, development, captures and
// damage to the opponent's pawn structure and king shield.
type Fortify struct {
	w        FortifyWeights
	rng      *frand.RNG
	safeOnly bool
}

// ScoreBreakdown carries the per-term components of one candidate, mostly for
// diagnostics and tests.
type ScoreBreakdown struct {
	Density    int
	Defenders  int
	Attackers  int
	Develops   bool
	Capture    bool
	OppDoubled int
	OppShield  int
	Score      float64
}

func NewFortify(w FortifyWeights, rng *frand.RNG) *Fortify {
	return &Fortify{w: w, rng: rng}
}

// SafeOnly makes BestMove skip moves that land on an attacked, undefended
// square.
func (f *Fortify) SafeOnly(on bool) { f.safeOnly = on }

// Evaluate computes the breakdown for a single legal move, jitter excluded.
// Scoring is a pure function of (board, move, weights).
func (f *Fortify) Evaluate(b board.Board, m *chess.Move) ScoreBreakdown {
	us := b.Turn()
	opp := us.Other()
	after := b.Apply(m)
	to := m.S2()

	bd := ScoreBreakdown{
		Defenders: after.Attackers(us, to),
		Attackers: after.Attackers(opp, to),
		Develops:  developsMove(b, m),
		Capture:   b.IsCapture(m),
	}
	bd.Density = bd.Defenders - bd.Attackers

	if d := after.DoubledPawns(opp) - b.DoubledPawns(opp); d > 0 {
		bd.OppDoubled = d
	}
	if d := b.KingShield(opp) - after.KingShield(opp); d > 0 {
		bd.OppShield = d
	}

	score := f.w.Density*float64(bd.Density) + f.w.Defenders*float64(bd.Defenders)
	if bd.Develops {
		score += f.w.Develop * developPieceWeight[b.PieceAt(m.S1()).Type()]
	}
	if bd.Capture {
		score += f.w.Capture
	}
	score += f.w.OppDoubled * float64(bd.OppDoubled)
	score += f.w.OppShield * float64(bd.OppShield)
	bd.Score = score
	return bd
}

// BestMove scores every legal move and returns the maximum. Exact ties are
// broken by the jitter alone; there is no secondary deterministic key.
func (f *Fortify) BestMove(b board.Board) (*chess.Move, ScoreBreakdown, bool) {
	var best *chess.Move
	var bestBD ScoreBreakdown
	bestScore := 0.0
	for _, m := range b.LegalMoves() {
		bd := f.Evaluate(b, m)
		if f.safeOnly && bd.Attackers > 0 && bd.Defenders == 0 {
			continue
		}
		jittered := bd.Score + (f.rng.Float64()*2-1)*f.w.JitterEps
		if best == nil || jittered > bestScore {
			best, bestBD, bestScore = m, bd, jittered
		}
	}
	return best, bestBD, best != nil
}

func (f *Fortify) Name() string { return TierFortify }

// Choose accepts the top candidate only if it develops a piece or its
// defense density reaches 1, so purely neutral shuffles fall through.
func (f *Fortify) Choose(b board.Board) (*chess.Move, Reason, bool) {
	m, bd, ok := f.BestMove(b)
	if !ok || (!bd.Develops && bd.Density < 1) {
		return nil, "", false
	}
	return m, reasonf(TierFortify, "dens=%d def=%d att=%d | dev=%d cap=%d",
		bd.Density, bd.Defenders, bd.Attackers, b2i(bd.Develops), b2i(bd.Capture)), true
}

func b2i(v bool) int {
	if v {
		return 1
	}
	return 0
}
