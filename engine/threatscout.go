package engine

import (
	"math"

	"github.com/notnil/chess"
	"golang.org/x/exp/slices"

	"github.com/fitil-jpg/chess-sub000/board"
)

// ThreatScout runs a bounded two-ply adversarial probe: for each of our first
// moves it assumes the opponent's worst (for us) reply among an ordered,
// capped set, then values the position by our best follow-up. The result is
// the first move with the highest worst-case follow-up score. Without the
// caps the nested enumeration is legal^3 per move, so ordering heuristics
// keep the most relevant branches inside the budget.
type ThreatScout struct {
	w ThreatWeights
}

// ThreatLine is the realizing line of one probe: the chosen first move, the
// opponent's worst reply and our follow-up against it.
type ThreatLine struct {
	Move     *chess.Move
	Reply    *chess.Move
	FollowUp *chess.Move
	Worst    int
	Capped   bool // an enumeration hit MaxOpp/MaxOur; informational only
}

const (
	mateScore  = 1000 // first move leaves the opponent mated
	matedScore = -200 // a reply leaves us without any follow-up
)

func NewThreatScout(w ThreatWeights) *ThreatScout {
	return &ThreatScout{w: w}
}

// Probe examines every legal first move, all of them, no cap at the root.
func (t *ThreatScout) Probe(b board.Board) (ThreatLine, bool) {
	best := ThreatLine{Worst: math.MinInt}
	for _, m1 := range b.LegalMoves() {
		line := t.evalFirstMove(b, m1)
		if line.Worst > best.Worst {
			best = line
		}
	}
	return best, best.Move != nil
}

func (t *ThreatScout) evalFirstMove(b board.Board, m1 *chess.Move) ThreatLine {
	after1 := b.Apply(m1)
	line := ThreatLine{Move: m1}

	replies := after1.LegalMoves()
	if len(replies) == 0 {
		if after1.Status() == chess.Checkmate {
			line.Worst = mateScore
		}
		return line
	}

	replies = t.orderReplies(after1, replies, &line.Capped)
	worst := math.MaxInt
	for _, r := range replies {
		after2 := after1.Apply(r)
		m2, score := t.bestFollowUp(after2, &line.Capped)
		if score < worst {
			worst, line.Reply, line.FollowUp = score, r, m2
		}
	}
	line.Worst = worst
	return line
}

// orderReplies sorts the opponent's replies by (gives check, is capture,
// protects their queen) and trims to MaxOpp.
func (t *ThreatScout) orderReplies(after1 board.Board, replies []*chess.Move, capped *bool) []*chess.Move {
	us := after1.Turn().Other() // we moved first; after1 is the opponent's turn
	qBefore := 0
	qSq, hasQueen := after1.FindPiece(after1.Turn(), chess.Queen)
	if hasQueen {
		qBefore = after1.Attackers(us, qSq)
	}

	keys := make(map[*chess.Move]int, len(replies))
	for _, r := range replies {
		k := 0
		if after1.GivesCheck(r) {
			k += 4
		}
		if after1.IsCapture(r) {
			k += 2
		}
		if hasQueen {
			afterR := after1.Apply(r)
			if nq, ok := afterR.FindPiece(after1.Turn(), chess.Queen); ok && afterR.Attackers(us, nq) < qBefore {
				k++
			}
		}
		keys[r] = k
	}
	slices.SortStableFunc(replies, func(a, b *chess.Move) bool { return keys[a] > keys[b] })
	if len(replies) > t.w.MaxOpp {
		*capped = true
		replies = replies[:t.w.MaxOpp]
	}
	return replies
}

// bestFollowUp orders our follow-ups by (gives check, is capture, pawn move),
// trims to MaxOur and returns the maximum threat score.
func (t *ThreatScout) bestFollowUp(pre board.Board, capped *bool) (*chess.Move, int) {
	ours := pre.LegalMoves()
	if len(ours) == 0 {
		return nil, matedScore
	}

	keys := make(map[*chess.Move]int, len(ours))
	for _, m := range ours {
		k := 0
		if pre.GivesCheck(m) {
			k += 4
		}
		if pre.IsCapture(m) {
			k += 2
		}
		if p := pre.PieceAt(m.S1()); p != chess.NoPiece && p.Type() == chess.Pawn {
			k++
		}
		keys[m] = k
	}
	slices.SortStableFunc(ours, func(a, b *chess.Move) bool { return keys[a] > keys[b] })
	if len(ours) > t.w.MaxOur {
		*capped = true
		ours = ours[:t.w.MaxOur]
	}

	var best *chess.Move
	bestScore := math.MinInt
	for _, m := range ours {
		if s := t.threatScore(pre, m); s > bestScore {
			best, bestScore = m, s
		}
	}
	return best, bestScore
}

// threatScore values one follow-up move. Bonuses stack, except that the pawn
// and generic queen-attack terms are exclusive.
func (t *ThreatScout) threatScore(pre board.Board, m *chess.Move) int {
	us := pre.Turn()
	opp := us.Other()
	after := pre.Apply(m)
	to := m.S2()
	moved := pre.PieceAt(m.S1())

	score := 0
	if qSq, ok := after.FindPiece(opp, chess.Queen); ok {
		switch {
		case moved.Type() == chess.Pawn &&
			board.PawnAttacks(us, to, qSq) && !board.PawnAttacks(us, m.S1(), qSq):
			score += t.w.PawnAttacksQueen
		case after.AttacksSquare(to, qSq):
			score += t.w.AttacksQueen
		}
	}
	if moved.Type() == chess.Knight && t.forkTargets(after, opp, to) >= 2 {
		score += t.w.KnightFork
	}
	if pre.IsCapture(m) {
		if after.Attackers(opp, to) == 0 {
			score += t.w.HangingCapture
		} else {
			score += t.w.DefendedCapture
		}
	}
	if pre.GivesCheck(m) {
		score += t.w.Check
	}
	if developsMinor(pre, m) {
		score += t.w.Develop
	}

	att := after.Attackers(opp, to)
	def := after.Attackers(us, to)
	if att > def {
		score -= t.w.UnsafePerPiece * (att - def)
	} else {
		score += t.w.SafeBonus
	}
	return score
}

// forkTargets counts valuable enemy pieces (queen, rook, king) attacked from
// the knight's landing square.
func (t *ThreatScout) forkTargets(after board.Board, opp chess.Color, from chess.Square) int {
	n := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := after.PieceAt(sq)
		if p == chess.NoPiece || p.Color() != opp {
			continue
		}
		switch p.Type() {
		case chess.Queen, chess.Rook, chess.King:
			if after.AttacksSquare(from, sq) {
				n++
			}
		}
	}
	return n
}

func (t *ThreatScout) Name() string { return TierDepth2 }

// Choose accepts only a worst case at or above the depth-2 threshold.
func (t *ThreatScout) Choose(b board.Board) (*chess.Move, Reason, bool) {
	line, ok := t.Probe(b)
	if !ok || line.Worst < depth2Threshold {
		return nil, "", false
	}
	reply, follow := "-", "-"
	if line.Reply != nil {
		reply = line.Reply.String()
	}
	if line.FollowUp != nil {
		follow = line.FollowUp.String()
	}
	return line.Move, reasonf(TierDepth2, "worst=%d reply=%s follow=%s capped=%d",
		line.Worst, reply, follow, b2i(line.Capped)), true
}
