package engine

import (
	"github.com/notnil/chess"

	"github.com/fitil-jpg/chess-sub000/board"
)

// Context is the pre-computed evaluation summary for one position. Callers
// that already track these numbers pass their own to avoid recomputation;
// otherwise ChooseMove builds a default. It replaces the shared evaluator
// the engine used to lazily create per process.
type Context struct {
	Material   int // material balance from the mover's perspective, pawn units
	OwnPieces  int // mover's non-king piece count, gates the endgame tier
	Mobility   int // mover's legal move count
	KingShield int // mover's pawn shield
}

var materialValue = map[chess.PieceType]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
}

// ComputeContext builds the default summary for the side to move.
func ComputeContext(b board.Board) Context {
	us := b.Turn()
	balance := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.PieceAt(sq)
		if p == chess.NoPiece {
			continue
		}
		v := materialValue[p.Type()]
		if p.Color() == us {
			balance += v
		} else {
			balance -= v
		}
	}
	return Context{
		Material:   balance,
		OwnPieces:  b.CountPieces(us, false),
		Mobility:   len(b.LegalMoves()),
		KingShield: b.KingShield(us),
	}
}
