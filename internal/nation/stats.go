// Package nation holds per-nation state: the five bounded capability scores,
// demographics, and the social-class measures derived from them.
package nation

import (
	"fmt"
	"log/slog"
)

// Stat bounds. Every score is clamped into this range on every write path.
const (
	MinStat = 1
	MaxStat = 5
)

// Stat identifies one of the five capability scores.
type Stat uint8

const (
	StatMilitary Stat = iota
	StatEconomy
	StatStability
	StatInnovation
	StatPrestige
)

// AllStats lists the scores in canonical order.
var AllStats = [5]Stat{StatMilitary, StatEconomy, StatStability, StatInnovation, StatPrestige}

func (s Stat) String() string {
	switch s {
	case StatMilitary:
		return "military"
	case StatEconomy:
		return "economy"
	case StatStability:
		return "stability"
	case StatInnovation:
		return "innovation"
	case StatPrestige:
		return "prestige"
	}
	return "unknown"
}

// ParseStat resolves a stat name from reference data files.
func ParseStat(name string) (Stat, error) {
	for _, s := range AllStats {
		if s.String() == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown stat %q", name)
}

// Stats is an immutable snapshot of a nation's capability scores.
type Stats struct {
	Military   int `json:"military"`
	Economy    int `json:"economy"`
	Stability  int `json:"stability"`
	Innovation int `json:"innovation"`
	Prestige   int `json:"prestige"`
}

// Get returns the score for a single stat.
func (st Stats) Get(s Stat) int {
	switch s {
	case StatMilitary:
		return st.Military
	case StatEconomy:
		return st.Economy
	case StatStability:
		return st.Stability
	case StatInnovation:
		return st.Innovation
	case StatPrestige:
		return st.Prestige
	}
	return 0
}

func (st *Stats) set(s Stat, v int) {
	switch s {
	case StatMilitary:
		st.Military = v
	case StatEconomy:
		st.Economy = v
	case StatStability:
		st.Stability = v
	case StatInnovation:
		st.Innovation = v
	case StatPrestige:
		st.Prestige = v
	}
}

// Apply sums the pending deltas into a copy of the snapshot and clamps every
// resulting score to [MinStat, MaxStat]. Clamping is silent; a delta that
// would have left the range is surfaced at debug level for balance tuning.
func (st Stats) Apply(deltas map[Stat]int) Stats {
	out := st
	for _, s := range AllStats {
		d, ok := deltas[s]
		if !ok {
			continue
		}
		raw := out.Get(s) + d
		if raw < MinStat || raw > MaxStat {
			slog.Debug("stat delta clamped", "stat", s.String(), "raw", raw, "delta", d)
		}
		out.set(s, clampStat(raw))
	}
	return out
}

// Clamped returns a copy with every score forced into [MinStat, MaxStat].
func (st Stats) Clamped() Stats {
	out := st
	for _, s := range AllStats {
		out.set(s, clampStat(out.Get(s)))
	}
	return out
}

func clampStat(v int) int {
	if v < MinStat {
		return MinStat
	}
	if v > MaxStat {
		return MaxStat
	}
	return v
}

// ClampPercent forces a percentage-like gauge into [0, 100]. Satisfaction,
// morale, strength, and readiness all share this policy.
func ClampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
