package engine

import (
	"github.com/notnil/chess"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"github.com/fitil-jpg/chess-sub000/board"
)

// Aggression scores moves by immediate tactical payoff through a fixed
// feature table: hanging captures crush everything, then development, checks
// and plain captures.
type Aggression struct {
	w   AggressionWeights
	rng *frand.RNG
}

func NewAggression(w AggressionWeights, rng *frand.RNG) *Aggression {
	return &Aggression{w: w, rng: rng}
}

// Score maps one move's features to its table value.
func (a *Aggression) Score(b board.Board, m *chess.Move) int {
	us := b.Turn()
	after := b.Apply(m)

	capture := b.IsCapture(m)
	hanging := capture && after.Attackers(us.Other(), m.S2()) == 0
	check := b.GivesCheck(m)
	safeCheck := check && after.Attackers(us, m.S2()) > 0

	switch {
	case hanging:
		return a.w.HangingCapture
	case developsMinor(b, m):
		return a.w.Develop
	case safeCheck:
		return a.w.Check + a.w.SafeCheckBonus
	case check:
		return a.w.Check
	case capture:
		return a.w.Capture
	}
	return a.w.Quiet
}

// BestMove returns the highest-scoring legal move; ties are broken by a
// uniform pick from the tied set on the injected RNG.
func (a *Aggression) BestMove(b board.Board) (*chess.Move, int) {
	legal := b.LegalMoves()
	if len(legal) == 0 {
		return nil, 0
	}
	scores := make(map[*chess.Move]int, len(legal))
	best := 0
	for _, m := range legal {
		s := a.Score(b, m)
		scores[m] = s
		if s > best {
			best = s
		}
	}
	tied := lo.Filter(legal, func(m *chess.Move, _ int) bool { return scores[m] == best })
	return tied[a.rng.Intn(len(tied))], best
}

// CreatesHangingThreat reports whether, after the move, some enemy piece is
// attacked by the mover with zero defenders. Kings are skipped; attacking the
// king is a check and counted elsewhere.
func CreatesHangingThreat(b board.Board, m *chess.Move) bool {
	us := b.Turn()
	opp := us.Other()
	after := b.Apply(m)
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := after.PieceAt(sq)
		if p == chess.NoPiece || p.Color() != opp || p.Type() == chess.King {
			continue
		}
		if after.Attackers(us, sq) > 0 && after.Attackers(opp, sq) == 0 {
			return true
		}
	}
	return false
}

func (a *Aggression) Name() string { return TierAggressive }

// Choose accepts only when the best score clears the aggression threshold.
func (a *Aggression) Choose(b board.Board) (*chess.Move, Reason, bool) {
	m, score := a.BestMove(b)
	if m == nil || score < aggressionThreshold {
		return nil, "", false
	}
	return m, reasonf(TierAggressive, "score=%d cap=%d chk=%d",
		score, b2i(b.IsCapture(m)), b2i(b.GivesCheck(m))), true
}
