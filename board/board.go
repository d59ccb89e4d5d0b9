// Package board adapts github.com/notnil/chess into the narrow oracle surface
// the move-selection engine consumes: legal moves, move predicates,
// attacker/defender counts, pawn-structure queries and non-mutating
// hypothetical application of moves.
package board

import (
	"fmt"

	"github.com/notnil/chess"
)

// Board is an immutable handle on a single position. Apply never touches the
// receiver; every lookahead works on its own copy.
type Board struct {
	pos *chess.Position
}

// New returns the starting position.
func New() Board {
	return Board{pos: chess.NewGame().Position()}
}

// FromPosition wraps an existing position (e.g. from a running chess.Game).
func FromPosition(pos *chess.Position) Board {
	return Board{pos: pos}
}

// FromFEN parses a FEN string. A malformed position is the caller's problem
// and comes back as a wrapped parse error.
func FromFEN(fen string) (Board, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return Board{}, fmt.Errorf("invalid board state %q: %w", fen, err)
	}
	return Board{pos: chess.NewGame(opt).Position()}, nil
}

func (b Board) Position() *chess.Position { return b.pos }

func (b Board) Turn() chess.Color { return b.pos.Turn() }

func (b Board) LegalMoves() []*chess.Move { return b.pos.ValidMoves() }

// Apply plays a legal move on a fresh copy and returns the resulting board.
func (b Board) Apply(m *chess.Move) Board {
	return Board{pos: b.pos.Update(m)}
}

func (b Board) IsCapture(m *chess.Move) bool {
	return m.HasTag(chess.Capture) || m.HasTag(chess.EnPassant)
}

func (b Board) GivesCheck(m *chess.Move) bool {
	return m.HasTag(chess.Check)
}

func (b Board) SAN(m *chess.Move) string {
	return chess.AlgebraicNotation{}.Encode(b.pos, m)
}

// Status reports checkmate/stalemate detection for the position itself.
func (b Board) Status() chess.Method { return b.pos.Status() }

func (b Board) IsGameOver() bool { return b.pos.Status() != chess.NoMethod }

func (b Board) PieceAt(sq chess.Square) chess.Piece {
	return b.pos.Board().Piece(sq)
}

// King returns the king square of the given color. The boolean is false only
// for corrupt positions with no king.
func (b Board) King(c chess.Color) (chess.Square, bool) {
	return b.FindPiece(c, chess.King)
}

// FindPiece returns the first square (A1..H8 scan order) holding a piece of
// the given color and type.
func (b Board) FindPiece(c chess.Color, pt chess.PieceType) (chess.Square, bool) {
	brd := b.pos.Board()
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := brd.Piece(sq)
		if p != chess.NoPiece && p.Color() == c && p.Type() == pt {
			return sq, true
		}
	}
	return 0, false
}

// CountPieces counts pieces of one color, optionally skipping the king.
func (b Board) CountPieces(c chess.Color, includeKing bool) int {
	brd := b.pos.Board()
	n := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := brd.Piece(sq)
		if p == chess.NoPiece || p.Color() != c {
			continue
		}
		if p.Type() == chess.King && !includeKing {
			continue
		}
		n++
	}
	return n
}
