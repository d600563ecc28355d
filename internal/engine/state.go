// Package engine runs the national simulation: the four data engines, the
// consequence state machine, and the per-year orchestration that ties them
// to the stat ledger.
package engine

import (
	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/economy"
	"github.com/talgya/statecraft/internal/military"
	"github.com/talgya/statecraft/internal/nation"
)

// NationState is the full per-nation snapshot a tick consumes and produces.
// Ticks never mutate their input; every year yields a fresh state.
type NationState struct {
	Tag          string                    `json:"tag"`
	Name         string                    `json:"name"`
	Stats        nation.Stats              `json:"stats"`
	Economy      *economy.NationalEconomy  `json:"economy"`
	Military     *military.NationalMilitary `json:"military"`
	Demographics *nation.Demographics      `json:"demographics"`
	Active       []crisis.ActiveConsequence `json:"active_consequences"`
	AtWar        bool                      `json:"at_war"`
	WarYears     int                       `json:"war_years"` // consecutive years at war
}

// HasActive reports whether a crisis of the given type is live.
func (n *NationState) HasActive(t crisis.Type) bool {
	for _, a := range n.Active {
		if a.Type == t {
			return true
		}
	}
	return false
}

// Clone returns a deep copy. Worker goroutines and persistence work on
// clones; the live state is only swapped whole at the end of a year.
func (n *NationState) Clone() *NationState {
	out := *n
	if n.Economy != nil {
		ec := *n.Economy
		out.Economy = &ec
	}
	out.Military = n.Military.Clone()
	out.Demographics = n.Demographics.Clone()
	out.Active = append([]crisis.ActiveConsequence(nil), n.Active...)
	return &out
}

// Flags are the environmental inputs upstream subsystems supply for a year.
type Flags struct {
	AtWar  bool `json:"at_war"`
	Famine bool `json:"famine"`
	Plague bool `json:"plague"`
}

// Event is a notable occurrence, shaped for the presentation layer or an
// external narrative generator. The engines fill category and description;
// the orchestrator stamps year and nation.
type Event struct {
	Year        int    `json:"year" db:"year"`
	Nation      string `json:"nation" db:"nation"`
	Category    string `json:"category" db:"category"` // "economy", "military", "population", "crisis", "signal"
	Description string `json:"description" db:"description"`
}

// Escalation records one crisis being replaced by a more severe one.
type Escalation struct {
	From crisis.Type `json:"from"`
	To   crisis.Type `json:"to"`
}

// Transitions lists the consequence state changes of one year, for
// telemetry or UI badges.
type Transitions struct {
	Spawned   []crisis.Type `json:"spawned,omitempty"`
	Resolved  []crisis.Type `json:"resolved,omitempty"`
	Escalated []Escalation  `json:"escalated,omitempty"`
}

// TickResult is everything one simulated year produces for one nation.
type TickResult struct {
	State       *NationState `json:"state"`
	Events      []Event      `json:"events"`
	Transitions Transitions  `json:"transitions"`
}

// MergeDeltas sums per-stat deltas from any number of producers into one
// map, which is applied to the stat ledger exactly once per tick.
func MergeDeltas(maps ...map[nation.Stat]int) map[nation.Stat]int {
	out := make(map[nation.Stat]int)
	for _, m := range maps {
		for s, d := range m {
			out[s] += d
		}
	}
	return out
}
