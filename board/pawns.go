package board

import "github.com/notnil/chess"

// DoubledPawns counts surplus pawns per file for one side: two pawns on a
// file contribute 1, three contribute 2, and so on.
func (b Board) DoubledPawns(c chess.Color) int {
	brd := b.pos.Board()
	var perFile [8]int
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := brd.Piece(sq)
		if p != chess.NoPiece && p.Color() == c && p.Type() == chess.Pawn {
			perFile[int(sq.File())]++
		}
	}
	n := 0
	for _, cnt := range perFile {
		if cnt > 1 {
			n += cnt - 1
		}
	}
	return n
}

// KingShield counts own pawns on the three files around the king, on the two
// ranks immediately in front of it.
func (b Board) KingShield(c chess.Color) int {
	kingSq, ok := b.King(c)
	if !ok {
		return 0
	}
	brd := b.pos.Board()
	kf, kr := int(kingSq.File()), int(kingSq.Rank())
	dir := pawnDir(c)
	n := 0
	for df := -1; df <= 1; df++ {
		for _, dr := range [2]int{dir, 2 * dir} {
			f, r := kf+df, kr+dr
			if !onBoard(f, r) {
				continue
			}
			p := brd.Piece(square(f, r))
			if p != chess.NoPiece && p.Color() == c && p.Type() == chess.Pawn {
				n++
			}
		}
	}
	return n
}

// PassedPawn reports whether a pawn of color c on sq has no enemy pawn on its
// own or an adjacent file on any rank ahead of it.
func (b Board) PassedPawn(c chess.Color, sq chess.Square) bool {
	brd := b.pos.Board()
	opp := c.Other()
	f, r := int(sq.File()), int(sq.Rank())
	dir := pawnDir(c)
	for df := -1; df <= 1; df++ {
		nf := f + df
		if nf < 0 || nf > 7 {
			continue
		}
		for nr := r + dir; nr >= 0 && nr < 8; nr += dir {
			p := brd.Piece(square(nf, nr))
			if p != chess.NoPiece && p.Color() == opp && p.Type() == chess.Pawn {
				return false
			}
		}
	}
	return true
}
