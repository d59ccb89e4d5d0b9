package engine

import (
	"github.com/notnil/chess"

	"github.com/fitil-jpg/chess-sub000/board"
)

// CenterBot is the terminal fallback: shove something toward the middle of
// the board. It always answers when any legal move exists.
type CenterBot struct{}

func NewCenterBot() *CenterBot { return &CenterBot{} }

func (c *CenterBot) Name() string { return TierCenter }

var centerSquares = [4]chess.Square{chess.D4, chess.E4, chess.D5, chess.E5}

// centerDistance is the Chebyshev distance from sq to the nearest of the
// four true center squares.
func centerDistance(sq chess.Square) int {
	best := 8
	for _, c := range centerSquares {
		df := abs(int(sq.File()) - int(c.File()))
		dr := abs(int(sq.Rank()) - int(c.Rank()))
		d := df
		if dr > d {
			d = dr
		}
		if d < best {
			best = d
		}
	}
	return best
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (c *CenterBot) Choose(b board.Board) (*chess.Move, Reason, bool) {
	var best *chess.Move
	bestDist := 0
	for _, m := range b.LegalMoves() {
		d := centerDistance(m.S2())
		if best == nil || d < bestDist {
			best, bestDist = m, d
		}
	}
	if best == nil {
		return nil, "", false
	}
	return best, reasonf(TierCenter, "dist=%d move=%s", bestDist, best.String()), true
}

// KingActivityMover is the generic endgame collaborator: safe pawn advances
// first, then walking the king toward the center, then anything legal.
type KingActivityMover struct{}

func NewKingActivityMover() *KingActivityMover { return &KingActivityMover{} }

func (k *KingActivityMover) Name() string { return TierEndgame }

func (k *KingActivityMover) Choose(b board.Board) (*chess.Move, Reason, bool) {
	legal := b.LegalMoves()
	if len(legal) == 0 {
		return nil, "", false
	}
	us := b.Turn()

	var bestPawn *chess.Move
	bestDens := 0
	var bestKing *chess.Move
	bestDist := 0
	for _, m := range legal {
		p := b.PieceAt(m.S1())
		if p == chess.NoPiece {
			continue
		}
		switch p.Type() {
		case chess.Pawn:
			after := b.Apply(m)
			dens := after.Attackers(us, m.S2()) - after.Attackers(us.Other(), m.S2())
			if dens >= 0 && (bestPawn == nil || dens > bestDens) {
				bestPawn, bestDens = m, dens
			}
		case chess.King:
			d := centerDistance(m.S2())
			if bestKing == nil || d < bestDist {
				bestKing, bestDist = m, d
			}
		}
	}
	switch {
	case bestPawn != nil:
		return bestPawn, reasonf(TierEndgame, "mode=generic move=%s", bestPawn.String()), true
	case bestKing != nil:
		return bestKing, reasonf(TierEndgame, "mode=generic move=%s", bestKing.String()), true
	}
	return legal[0], reasonf(TierEndgame, "mode=generic move=%s", legal[0].String()), true
}
