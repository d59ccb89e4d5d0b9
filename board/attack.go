package board

import "github.com/notnil/chess"

// Classical attack walking over the 8x8 board. notnil/chess keeps its attack
// bitboards private, so attacker counts are recomputed here with plain
// geometry plus occupancy blocking for the sliders.

var knightDeltas = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingDeltas = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

func onBoard(f, r int) bool { return f >= 0 && f < 8 && r >= 0 && r < 8 }

func square(f, r int) chess.Square {
	return chess.NewSquare(chess.File(f), chess.Rank(r))
}

// pawnDir is the forward rank delta for the given color.
func pawnDir(c chess.Color) int {
	if c == chess.White {
		return 1
	}
	return -1
}

// Attackers counts the pieces of color c that attack sq on the current
// position, occupancy included. The occupant of sq itself never counts.
// Defenders of a square are simply Attackers with the owning color.
func (b Board) Attackers(c chess.Color, sq chess.Square) int {
	brd := b.pos.Board()
	f, r := int(sq.File()), int(sq.Rank())
	n := 0

	isPiece := func(nf, nr int, pt chess.PieceType) bool {
		if !onBoard(nf, nr) {
			return false
		}
		p := brd.Piece(square(nf, nr))
		return p != chess.NoPiece && p.Color() == c && p.Type() == pt
	}

	// Pawns attack diagonally forward, so an attacker sits one rank behind.
	pr := r - pawnDir(c)
	for _, pf := range [2]int{f - 1, f + 1} {
		if isPiece(pf, pr, chess.Pawn) {
			n++
		}
	}

	for _, d := range knightDeltas {
		if isPiece(f+d[0], r+d[1], chess.Knight) {
			n++
		}
	}

	for _, d := range kingDeltas {
		if isPiece(f+d[0], r+d[1], chess.King) {
			n++
		}
	}

	n += b.slidingAttackers(c, f, r, rookDirs, chess.Rook)
	n += b.slidingAttackers(c, f, r, bishopDirs, chess.Bishop)
	return n
}

func (b Board) slidingAttackers(c chess.Color, f, r int, dirs [4][2]int, slider chess.PieceType) int {
	brd := b.pos.Board()
	n := 0
	for _, d := range dirs {
		nf, nr := f+d[0], r+d[1]
		for onBoard(nf, nr) {
			p := brd.Piece(square(nf, nr))
			if p != chess.NoPiece {
				if p.Color() == c && (p.Type() == slider || p.Type() == chess.Queen) {
					n++
				}
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return n
}

// AttacksSquare reports whether the piece standing on from attacks target.
func (b Board) AttacksSquare(from, target chess.Square) bool {
	p := b.PieceAt(from)
	if p == chess.NoPiece || from == target {
		return false
	}
	ff, fr := int(from.File()), int(from.Rank())
	tf, tr := int(target.File()), int(target.Rank())

	switch p.Type() {
	case chess.Pawn:
		return PawnAttacks(p.Color(), from, target)
	case chess.Knight:
		df, dr := abs(tf-ff), abs(tr-fr)
		return (df == 1 && dr == 2) || (df == 2 && dr == 1)
	case chess.King:
		return abs(tf-ff) <= 1 && abs(tr-fr) <= 1
	case chess.Rook:
		return b.slides(ff, fr, tf, tr, rookDirs)
	case chess.Bishop:
		return b.slides(ff, fr, tf, tr, bishopDirs)
	case chess.Queen:
		return b.slides(ff, fr, tf, tr, rookDirs) || b.slides(ff, fr, tf, tr, bishopDirs)
	}
	return false
}

func (b Board) slides(ff, fr, tf, tr int, dirs [4][2]int) bool {
	brd := b.pos.Board()
	for _, d := range dirs {
		nf, nr := ff+d[0], fr+d[1]
		for onBoard(nf, nr) {
			if nf == tf && nr == tr {
				return true
			}
			if brd.Piece(square(nf, nr)) != chess.NoPiece {
				break
			}
			nf += d[0]
			nr += d[1]
		}
	}
	return false
}

// PawnAttacks is pure geometry: would a pawn of color c on from attack target?
func PawnAttacks(c chess.Color, from, target chess.Square) bool {
	df := int(target.File()) - int(from.File())
	dr := int(target.Rank()) - int(from.Rank())
	return (df == 1 || df == -1) && dr == pawnDir(c)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
