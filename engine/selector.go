// Package engine implements the cascading move-selection engine: an ordered
// set of heuristic strategy tiers that is walked top to bottom until one
// tier yields a qualifying move.
package engine

import (
	"encoding/binary"
	"errors"

	"github.com/notnil/chess"
	"github.com/rs/zerolog"
	"lukechampine.com/frand"

	"github.com/fitil-jpg/chess-sub000/board"
)

// ErrNoLegalMove comes back when the position has no legal moves at all; the
// caller should have checked for game over first.
var ErrNoLegalMove = errors.New("engine: board has no legal moves")

// Fixed cascade thresholds. The scorer weights were tuned against these, so
// they are deliberately not configurable.
const (
	depth2Threshold     = 90
	aggressionThreshold = 70
	endgameMaterial     = 7 // own non-king pieces
	lowMobilityLimit    = 8
)

// Strategy is the one interface every tier implements: a fixed
// (board) -> (move, reason, ok) signature regardless of how the tier decides.
type Strategy interface {
	Name() string
	Choose(b board.Board) (*chess.Move, Reason, bool)
}

// Selector owns one cascade instance: weights, a seeded RNG stream and the
// concrete strategies. It holds no per-call state, so a Selector is safe to
// share across goroutines only if each caller uses its own instance (the RNG
// stream is not synchronized).
type Selector struct {
	weights Weights
	rng     *frand.RNG
	log     zerolog.Logger

	cow     *CowPlanner
	scout   *ThreatScout
	fortify *Fortify
	aggro   *Aggression
	endgame *EndgamePlanner
	center  Strategy
}

type Option func(*Selector)

func WithWeights(w Weights) Option {
	return func(s *Selector) { s.weights = w }
}

func WithLogger(l zerolog.Logger) Option {
	return func(s *Selector) { s.log = l }
}

// WithCenterBot swaps the terminal fallback collaborator.
func WithCenterBot(st Strategy) Option {
	return func(s *Selector) { s.center = st }
}

// NewSelector builds a cascade with the given RNG seed. The same seed over
// the same position always produces the same move and reason.
func NewSelector(seed uint64, opts ...Option) *Selector {
	s := &Selector{
		weights: DefaultWeights(),
		rng:     seededRNG(seed),
		log:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}
	if s.center == nil {
		s.center = NewCenterBot()
	}
	s.cow = NewCowPlanner()
	s.scout = NewThreatScout(s.weights.Threat)
	s.fortify = NewFortify(s.weights.Fortify, s.rng)
	s.aggro = NewAggression(s.weights.Aggression, s.rng)
	s.endgame = NewEndgamePlanner(NewKingActivityMover())
	return s
}

func seededRNG(seed uint64) *frand.RNG {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return frand.NewCustom(key[:], 1024, 12)
}

// ChooseMove walks the tiers in fixed priority order and returns the first
// accepted move. ctx may be nil, in which case a default summary is computed.
func (s *Selector) ChooseMove(b board.Board, ctx *Context) (*chess.Move, Reason, error) {
	legal := b.LegalMoves()
	if len(legal) == 0 {
		return nil, "", ErrNoLegalMove
	}
	if ctx == nil {
		c := ComputeContext(b)
		ctx = &c
	}

	// 1. A defended check is rarely unsound and always forcing.
	if m, r, ok := s.safeCheck(b, legal); ok {
		return s.accept(m, r)
	}

	// 2. With no tactic on the board, keep developing.
	if !s.tacticallyActive(b, legal) && !s.cow.IsComplete(b) {
		if m, r, ok := s.cow.Choose(b); ok {
			return s.accept(m, r)
		}
	}

	// 3. Two-ply threat search.
	if m, r, ok := s.scout.Choose(b); ok {
		return s.accept(m, r)
	}

	// 4. Fortify, outside of endgames only.
	if ctx.OwnPieces > endgameMaterial {
		if m, r, ok := s.fortify.Choose(b); ok {
			return s.accept(m, r)
		}
	}

	// 5. Aggression above its threshold.
	if m, r, ok := s.aggro.Choose(b); ok {
		return s.accept(m, r)
	}

	// 6. Endgame sub-searches.
	if ctx.OwnPieces <= endgameMaterial {
		if m, r, ok := s.endgame.Choose(b); ok {
			return s.accept(m, r)
		}
	}

	// 7. Low mobility: uniform random pick.
	if ctx.Mobility < lowMobilityLimit {
		m := legal[s.rng.Intn(len(legal))]
		return s.accept(m, reasonf(TierLow, "n=%d", len(legal)))
	}

	// 8. Terminal fallback.
	if m, r, ok := s.center.Choose(b); ok {
		return s.accept(m, r)
	}
	// The center bot answers whenever legal moves exist; this is unreachable
	// with a sane fallback but a custom collaborator may decline.
	m := legal[0]
	return s.accept(m, reasonf(TierCenter, "move=%s", m.String()))
}

func (s *Selector) accept(m *chess.Move, r Reason) (*chess.Move, Reason, error) {
	s.log.Debug().
		Str("tier", r.Tier()).
		Str("move", m.String()).
		Str("reason", string(r)).
		Msg("move selected")
	return m, r, nil
}

// safeCheck returns the first legal move that gives check while landing on a
// square defended by its own side.
func (s *Selector) safeCheck(b board.Board, legal []*chess.Move) (*chess.Move, Reason, bool) {
	us := b.Turn()
	for _, m := range legal {
		if !b.GivesCheck(m) {
			continue
		}
		after := b.Apply(m)
		def := after.Attackers(us, m.S2())
		if def == 0 {
			continue
		}
		return m, reasonf(TierSafeCheck, "move=%s def=%d att=%d",
			m.String(), def, after.Attackers(us.Other(), m.S2())), true
	}
	return nil, "", false
}

// tacticallyActive reports whether any legal move is a capture, a check or
// creates a hanging-piece threat.
func (s *Selector) tacticallyActive(b board.Board, legal []*chess.Move) bool {
	for _, m := range legal {
		if b.IsCapture(m) || b.GivesCheck(m) || CreatesHangingThreat(b, m) {
			return true
		}
	}
	return false
}

// Weights exposes the selector's effective configuration (read-only copy).
func (s *Selector) Weights() Weights { return s.weights }
