package engine

import (
	"github.com/notnil/chess"
	"github.com/samber/lo"

	"github.com/fitil-jpg/chess-sub000/board"
)

// EndgamePlanner runs only with very low own material. Sub-searches in strict
// order: immediate mate, promotion preference, safe passed-pawn push, then a
// generic endgame mover.
type EndgamePlanner struct {
	fallback Strategy
}

const queenPromoBonus = 2

func NewEndgamePlanner(fallback Strategy) *EndgamePlanner {
	return &EndgamePlanner{fallback: fallback}
}

func (e *EndgamePlanner) Name() string { return TierEndgame }

func (e *EndgamePlanner) Choose(b board.Board) (*chess.Move, Reason, bool) {
	legal := b.LegalMoves()
	if len(legal) == 0 {
		return nil, "", false
	}

	// Apply-and-test for mate in one.
	for _, m := range legal {
		if b.Apply(m).Status() == chess.Checkmate {
			return m, reasonf(TierEndgame, "mode=mate move=%s", m.String()), true
		}
	}

	if m, dens, ok := e.bestPromotion(b, legal); ok {
		return m, reasonf(TierEndgame, "mode=promo piece=%s dens=%d",
			promoLetter(m.Promo()), dens), true
	}

	if m, dens, ok := e.bestPassedPush(b, legal); ok {
		return m, reasonf(TierEndgame, "mode=push dens=%d", dens), true
	}

	if m, _, ok := e.fallback.Choose(b); ok {
		return m, reasonf(TierEndgame, "mode=generic move=%s", m.String()), true
	}
	return nil, "", false
}

func promoLetter(pt chess.PieceType) string {
	switch pt {
	case chess.Queen:
		return "q"
	case chess.Rook:
		return "r"
	case chess.Bishop:
		return "b"
	case chess.Knight:
		return "n"
	}
	return "-"
}

// bestPromotion prefers the promotion with the highest post-move defense
// density, with a flat bonus for promoting to a queen.
func (e *EndgamePlanner) bestPromotion(b board.Board, legal []*chess.Move) (*chess.Move, int, bool) {
	us := b.Turn()
	promos := lo.Filter(legal, func(m *chess.Move, _ int) bool {
		return m.Promo() != chess.NoPieceType
	})
	var best *chess.Move
	bestScore, bestDens := 0, 0
	for _, m := range promos {
		after := b.Apply(m)
		dens := after.Attackers(us, m.S2()) - after.Attackers(us.Other(), m.S2())
		score := dens
		if m.Promo() == chess.Queen {
			score += queenPromoBonus
		}
		if best == nil || score > bestScore {
			best, bestScore, bestDens = m, score, dens
		}
	}
	return best, bestDens, best != nil
}

// bestPassedPush picks the passed-pawn push with the highest non-negative
// defense density.
func (e *EndgamePlanner) bestPassedPush(b board.Board, legal []*chess.Move) (*chess.Move, int, bool) {
	us := b.Turn()
	var best *chess.Move
	bestDens := 0
	for _, m := range legal {
		p := b.PieceAt(m.S1())
		if p == chess.NoPiece || p.Type() != chess.Pawn {
			continue
		}
		after := b.Apply(m)
		if !after.PassedPawn(us, m.S2()) {
			continue
		}
		dens := after.Attackers(us, m.S2()) - after.Attackers(us.Other(), m.S2())
		if dens < 0 {
			continue
		}
		if best == nil || dens > bestDens {
			best, bestDens = m, dens
		}
	}
	return best, bestDens, best != nil
}
