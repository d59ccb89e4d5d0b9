package engine

import (
	"github.com/notnil/chess"

	"github.com/fitil-jpg/chess-sub000/board"
)

// The 16 center-adjacent squares (c3..f6) a minor piece is considered
// developed onto.
var center16 = func() map[chess.Square]bool {
	m := make(map[chess.Square]bool, 16)
	for f := int(chess.FileC); f <= int(chess.FileF); f++ {
		for r := int(chess.Rank3); r <= int(chess.Rank6); r++ {
			m[chess.NewSquare(chess.File(f), chess.Rank(r))] = true
		}
	}
	return m
}()

func backRank(c chess.Color) chess.Rank {
	if c == chess.White {
		return chess.Rank1
	}
	return chess.Rank8
}

func pawnStartRank(c chess.Color) chess.Rank {
	if c == chess.White {
		return chess.Rank2
	}
	return chess.Rank7
}

// developsMinor is the minimal pattern shared by the aggression scorer and
// the threat search: knight or bishop leaving the back rank for the center.
func developsMinor(b board.Board, m *chess.Move) bool {
	p := b.PieceAt(m.S1())
	if p == chess.NoPiece {
		return false
	}
	if p.Type() != chess.Knight && p.Type() != chess.Bishop {
		return false
	}
	return m.S1().Rank() == backRank(p.Color()) && center16[m.S2()]
}

// developsMove is the wider Fortify notion of development.
func developsMove(b board.Board, m *chess.Move) bool {
	p := b.PieceAt(m.S1())
	if p == chess.NoPiece {
		return false
	}
	back := backRank(p.Color())
	switch p.Type() {
	case chess.Knight, chess.Bishop:
		return m.S1().Rank() == back && center16[m.S2()]
	case chess.Rook:
		return m.S1().Rank() == back && m.S2().Rank() != back
	case chess.Queen:
		// A short repositioning slide along the back rank.
		if m.S1().Rank() != back || m.S2().Rank() != back {
			return false
		}
		d := int(m.S2().File()) - int(m.S1().File())
		if d < 0 {
			d = -d
		}
		return d >= 1 && d <= 2
	case chess.Pawn:
		f := m.S1().File()
		return (f == chess.FileD || f == chess.FileE) && m.S1().Rank() == pawnStartRank(p.Color())
	}
	return false
}
