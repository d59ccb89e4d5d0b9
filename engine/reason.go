package engine

import (
	"fmt"
	"strings"
)

// Reason is the short machine-parsable tag returned with every move:
// "<TIER> | <key>=<value> ... | ...". Log consumers key on the tier names
// below and on field order, so both are frozen.
type Reason string

const (
	TierSafeCheck  = "SAFE_CHECK"
	TierCow        = "COW"
	TierDepth2     = "DEPTH2"
	TierFortify    = "FORTIFY"
	TierAggressive = "AGGRESSIVE"
	TierEndgame    = "ENDGAME"
	TierLow        = "LOW"
	TierCenter     = "CENTER"
)

func reasonf(tier, format string, args ...any) Reason {
	if format == "" {
		return Reason(tier)
	}
	return Reason(tier + " | " + fmt.Sprintf(format, args...))
}

// Tier returns the tier-name prefix of the reason.
func (r Reason) Tier() string {
	s := string(r)
	if i := strings.Index(s, " | "); i >= 0 {
		return s[:i]
	}
	return s
}
