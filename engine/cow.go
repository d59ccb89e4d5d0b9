package engine

import (
	"github.com/notnil/chess"

	"github.com/fitil-jpg/chess-sub000/board"
)

// CowPlanner is the deterministic development plan for the first plies:
// central pawns one step forward, knights to the third rank through their
// waypoints, then a bishop off the back rank. It never looks at opponent
// replies and never searches beyond one ply.
type CowPlanner struct{}

type pawnStep struct {
	from, to chess.Square
}

type knightPath struct {
	start, waypoint, target chess.Square
}

type cowPlan struct {
	pawns         [2]pawnStep
	knights       [2]knightPath // first path preferred on ties
	bishopTargets [4]chess.Square
}

var cowPlans = map[chess.Color]cowPlan{
	chess.White: {
		pawns: [2]pawnStep{{chess.D2, chess.D3}, {chess.E2, chess.E3}},
		knights: [2]knightPath{
			{chess.B1, chess.D2, chess.B3},
			{chess.G1, chess.E2, chess.G3},
		},
		bishopTargets: [4]chess.Square{chess.D2, chess.E2, chess.C4, chess.F4},
	},
	chess.Black: {
		pawns: [2]pawnStep{{chess.D7, chess.D6}, {chess.E7, chess.E6}},
		knights: [2]knightPath{
			{chess.B8, chess.D7, chess.B6},
			{chess.G8, chess.E7, chess.G6},
		},
		bishopTargets: [4]chess.Square{chess.D7, chess.E7, chess.C5, chess.F5},
	},
}

func NewCowPlanner() *CowPlanner { return &CowPlanner{} }

func (c *CowPlanner) Name() string { return TierCow }

// IsComplete holds once all three stage predicates do. A stage whose pieces
// were traded away counts as complete so the plan cannot wedge the cascade.
func (c *CowPlanner) IsComplete(b board.Board) bool {
	plan := cowPlans[b.Turn()]
	return c.pawnsDone(b, plan) && c.knightsDone(b, plan) && c.bishopDone(b, plan)
}

func (c *CowPlanner) pawnsDone(b board.Board, plan cowPlan) bool {
	us := b.Turn()
	for _, step := range plan.pawns {
		p := b.PieceAt(step.from)
		if p != chess.NoPiece && p.Color() == us && p.Type() == chess.Pawn {
			return false
		}
	}
	return true
}

func (c *CowPlanner) knightsDone(b board.Board, plan cowPlan) bool {
	us := b.Turn()
	onTarget := 0
	for _, path := range plan.knights {
		p := b.PieceAt(path.target)
		if p != chess.NoPiece && p.Color() == us && p.Type() == chess.Knight {
			onTarget++
		}
	}
	total := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.PieceAt(sq)
		if p != chess.NoPiece && p.Color() == us && p.Type() == chess.Knight {
			total++
		}
	}
	want := total
	if want > len(plan.knights) {
		want = len(plan.knights)
	}
	return onTarget >= want
}

func (c *CowPlanner) bishopDone(b board.Board, plan cowPlan) bool {
	us := b.Turn()
	total := 0
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := b.PieceAt(sq)
		if p != chess.NoPiece && p.Color() == us && p.Type() == chess.Bishop {
			total++
			if sq.Rank() != backRank(us) {
				for _, t := range plan.bishopTargets {
					if sq == t {
						return true
					}
				}
			}
		}
	}
	return total == 0
}

// Choose walks the incomplete stages in order and returns the first scored
// step it finds.
func (c *CowPlanner) Choose(b board.Board) (*chess.Move, Reason, bool) {
	plan := cowPlans[b.Turn()]
	type stage struct {
		id   int
		done bool
		step func(board.Board, cowPlan) *chess.Move
	}
	for _, st := range []stage{
		{1, c.pawnsDone(b, plan), c.pawnStep},
		{2, c.knightsDone(b, plan), c.knightStep},
		{3, c.bishopDone(b, plan), c.bishopStep},
	} {
		if st.done {
			continue
		}
		if m := st.step(b, plan); m != nil {
			return m, reasonf(TierCow, "stage=%d move=%s", st.id, m.String()), true
		}
	}
	return nil, "", false
}

// pawnStep prefers the exact start->target push; a destination left
// undefended is penalized but an exact push stays playable, so the stage
// cannot stall with both targets uncovered.
func (c *CowPlanner) pawnStep(b board.Board, plan cowPlan) *chess.Move {
	us := b.Turn()
	var best *chess.Move
	bestScore := 0
	for _, m := range b.LegalMoves() {
		p := b.PieceAt(m.S1())
		if p == chess.NoPiece || p.Type() != chess.Pawn {
			continue
		}
		for _, step := range plan.pawns {
			if m.S2() != step.to {
				continue
			}
			score := 1
			if m.S1() == step.from {
				score = 2
			}
			if b.Apply(m).Attackers(us, step.to) == 0 {
				score--
			}
			if score > bestScore {
				best, bestScore = m, score
			}
		}
	}
	return best
}

// knightStep pushes each knight along its fixed waypoint path, waypoint
// before target only in the sense that a reachable target always wins and the
// first path wins ties.
func (c *CowPlanner) knightStep(b board.Board, plan cowPlan) *chess.Move {
	us := b.Turn()
	var best *chess.Move
	bestScore := 0
	for _, m := range b.LegalMoves() {
		p := b.PieceAt(m.S1())
		if p == chess.NoPiece || p.Type() != chess.Knight {
			continue
		}
		score := 0
		for i, path := range plan.knights {
			if m.S1() == path.target {
				score = -1 // already arrived, stay put
				break
			}
			// The later path scores marginally lower so the first waypoint
			// is preferred when both knights can step.
			if m.S2() == path.target {
				score = 6 - i
			} else if m.S2() == path.waypoint {
				score = 4 - i
			}
		}
		if score <= 0 {
			continue
		}
		after := b.Apply(m)
		if after.Attackers(us.Other(), m.S2()) > after.Attackers(us, m.S2()) {
			score -= 6
		}
		if score > bestScore {
			best, bestScore = m, score
		}
	}
	return best
}

// bishopStep develops a bishop onto one of the four plan squares, rejecting
// steps that hang the bishop or abandon a pawn only that bishop was holding.
func (c *CowPlanner) bishopStep(b board.Board, plan cowPlan) *chess.Move {
	us := b.Turn()
	for _, target := range plan.bishopTargets {
		for _, m := range b.LegalMoves() {
			p := b.PieceAt(m.S1())
			if p == chess.NoPiece || p.Type() != chess.Bishop {
				continue
			}
			if m.S1().Rank() != backRank(us) || m.S2() != target {
				continue
			}
			after := b.Apply(m)
			if after.Attackers(us.Other(), m.S2()) > after.Attackers(us, m.S2()) {
				continue
			}
			if c.abandonsPawn(b, after, m, us) {
				continue
			}
			return m
		}
	}
	return nil
}

// abandonsPawn reports whether a pawn defended by the moving bishop ends up
// with zero defenders.
func (c *CowPlanner) abandonsPawn(before, after board.Board, m *chess.Move, us chess.Color) bool {
	for sq := chess.A1; sq <= chess.H8; sq++ {
		p := before.PieceAt(sq)
		if p == chess.NoPiece || p.Color() != us || p.Type() != chess.Pawn {
			continue
		}
		if before.AttacksSquare(m.S1(), sq) && after.Attackers(us, sq) == 0 {
			return true
		}
	}
	return false
}
