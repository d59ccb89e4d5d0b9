package engine

import "github.com/notnil/chess"

// =============================================================================
// SCORER WEIGHTS
// =============================================================================
// One weight set per scorer, immutable after construction. Callers override
// single entries at construction time; everything else keeps the defaults
// below. These numbers are the tuned values the cascade thresholds in
// selector.go were calibrated against, so tweak with care.

type FortifyWeights struct {
	Density    float64 // defenders minus attackers on the destination
	Defenders  float64 // raw defender count on the destination
	Develop    float64 // multiplied by the per-piece develop weight
	Capture    float64
	OppDoubled float64 // new doubled pawns inflicted on the opponent
	OppShield  float64 // opponent king-shield pawns stripped
	JitterEps  float64 // uniform tie-break noise in [-eps, eps]
}

func DefaultFortifyWeights() FortifyWeights {
	return FortifyWeights{
		Density:    5.0,
		Defenders:  0.5,
		Develop:    3.0,
		Capture:    2.5,
		OppDoubled: 4.0,
		OppShield:  5.0,
		JitterEps:  0.01,
	}
}

// developPieceWeight scales the Fortify develop term by mover type.
var developPieceWeight = map[chess.PieceType]float64{
	chess.Pawn:   1.0,
	chess.Knight: 1.2,
	chess.Bishop: 1.1,
	chess.Rook:   0.8,
	chess.Queen:  0.5,
}

type AggressionWeights struct {
	HangingCapture int
	Develop        int
	Check          int
	SafeCheckBonus int
	Capture        int
	Quiet          int
}

func DefaultAggressionWeights() AggressionWeights {
	return AggressionWeights{
		HangingCapture: 100,
		Develop:        70,
		Check:          35,
		SafeCheckBonus: 5,
		Capture:        20,
		Quiet:          1,
	}
}

type ThreatWeights struct {
	PawnAttacksQueen int
	AttacksQueen     int
	KnightFork       int
	HangingCapture   int
	DefendedCapture  int
	Check            int
	Develop          int
	UnsafePerPiece   int // per point of attacker surplus on the landing square
	SafeBonus        int

	// Enumeration caps. These bound worst-case CPU per move, nothing else.
	MaxOpp int
	MaxOur int
}

func DefaultThreatWeights() ThreatWeights {
	return ThreatWeights{
		PawnAttacksQueen: 120,
		AttacksQueen:     90,
		KnightFork:       70,
		HangingCapture:   80,
		DefendedCapture:  30,
		Check:            50,
		Develop:          15,
		UnsafePerPiece:   40,
		SafeBonus:        10,
		MaxOpp:           18,
		MaxOur:           24,
	}
}

// Weights bundles the per-scorer sets for one selector instance.
type Weights struct {
	Fortify    FortifyWeights
	Aggression AggressionWeights
	Threat     ThreatWeights
}

func DefaultWeights() Weights {
	return Weights{
		Fortify:    DefaultFortifyWeights(),
		Aggression: DefaultAggressionWeights(),
		Threat:     DefaultThreatWeights(),
	}
}
