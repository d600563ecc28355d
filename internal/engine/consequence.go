// Consequence engine — the crisis state machine. Per type the states are
// Inactive → Active → {Escalated | Resolved}: escalation replaces the
// instance with one of a harsher type, resolution removes it. At most one
// instance per type is ever live for a nation.
package engine

import (
	"fmt"

	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/nation"
)

// Roller is the random stream the state machine consumes. entropy.Source
// satisfies it; tests substitute fixed rollers to force or forbid spawns.
type Roller interface {
	Percent() float64
}

// ConsequenceInput is what the trigger scan evaluates: the pre-tick stat
// snapshot plus the freshly computed class unrest and war-duration figures.
type ConsequenceInput struct {
	Year     int
	Stats    nation.Stats
	Unrest   float64
	WarYears int
}

// ConsequenceResult is one year of the state machine: the surviving and
// newly spawned instances, the transitions taken, and the summed stat-delta
// map the orchestrator feeds into the stat ledger.
type ConsequenceResult struct {
	Active      []crisis.ActiveConsequence
	Transitions Transitions
	Deltas      map[nation.Stat]int
	Events      []Event
}

// AdvanceConsequences runs the per-year algorithm. Triggers are evaluated
// in declaration order and active instances in collection order, so a fixed
// seed replays the same transitions.
//
// The ordering inside instance processing is load-bearing: duration expiry
// and the auto-resolve roll are checked before escalation, and a resolving
// instance accrues no escalation risk that year. An instance whose duration
// runs out the same year its risk would cross the threshold resolves; it
// does not escalate.
func AdvanceConsequences(lib *crisis.Library, active []crisis.ActiveConsequence, in ConsequenceInput, roll Roller) ConsequenceResult {
	res := ConsequenceResult{Deltas: make(map[nation.Stat]int)}

	live := make(map[crisis.Type]bool, len(active))
	for _, a := range active {
		live[a.Type] = true
	}

	// Trigger scan. Types already active are suppressed before any
	// condition is evaluated, so no roll is consumed for them.
	var spawned []crisis.ActiveConsequence
	for _, tr := range lib.Triggers {
		if live[tr.Produces] {
			continue
		}
		prob, ok := triggerProbability(tr, in)
		if !ok {
			continue
		}
		if roll.Percent() >= prob {
			continue
		}
		tmpl, _ := lib.Template(tr.Produces)
		spawned = append(spawned, crisis.ActiveConsequence{
			Type:      tmpl.Type,
			StartYear: in.Year,
			Remaining: tmpl.Duration,
		})
		live[tmpl.Type] = true
		res.Transitions.Spawned = append(res.Transitions.Spawned, tmpl.Type)
		res.Events = append(res.Events, Event{
			Category:    "crisis",
			Description: fmt.Sprintf("%s breaks out: %s", tmpl.Name, tmpl.Description),
		})
	}

	// Process the instances that were active at the start of the year.
	// Instances spawned above sit the year out; their duration starts
	// counting next year.
	for _, a := range active {
		tmpl, ok := lib.Template(a.Type)
		if !ok {
			continue // unreachable after Library.Validate
		}

		// Effects land every active year, the resolution year included.
		for s, d := range tmpl.Effects {
			res.Deltas[s] += d
		}

		a.Remaining--
		resolved := a.Remaining <= 0
		if !resolved && tmpl.AutoResolveChance > 0 && roll.Percent() < tmpl.AutoResolveChance {
			resolved = true
		}
		if resolved {
			live[a.Type] = false
			res.Transitions.Resolved = append(res.Transitions.Resolved, a.Type)
			res.Events = append(res.Events, Event{
				Category:    "crisis",
				Description: fmt.Sprintf("%s has run its course", tmpl.Name),
			})
			continue
		}

		if tmpl.EscalatesTo != crisis.TypeNone {
			risk := a.EscalationRisk + 10
			if in.Stats.Stability <= 2 {
				risk += 10
			}
			if in.Stats.Economy <= 2 {
				risk += 5
			}
			if risk >= tmpl.EscalationThreshold {
				target, _ := lib.Template(tmpl.EscalatesTo)
				live[a.Type] = false
				res.Transitions.Escalated = append(res.Transitions.Escalated, Escalation{From: a.Type, To: target.Type})
				res.Events = append(res.Events, Event{
					Category:    "crisis",
					Description: fmt.Sprintf("%s escalates into %s", tmpl.Name, target.Name),
				})
				if live[target.Type] {
					// The target type is already live; the old crisis folds
					// into it rather than spawning a duplicate instance.
					continue
				}
				live[target.Type] = true
				res.Active = append(res.Active, crisis.ActiveConsequence{
					Type:      target.Type,
					StartYear: in.Year,
					Remaining: target.Duration,
				})
				continue
			}
			a.EscalationRisk = risk
		}

		res.Active = append(res.Active, a)
	}

	res.Active = append(res.Active, spawned...)
	return res
}

// triggerProbability evaluates a trigger's conditions against the year's
// input. All present conditions gate (AND); the unrest and war-years
// conditions also raise the probability by their margin, and each stat
// modifier adds weight × (3 − score). The result is clamped to [0, 100].
func triggerProbability(tr crisis.Trigger, in ConsequenceInput) (float64, bool) {
	prob := tr.Probability

	for stat, below := range tr.StatBelow {
		if in.Stats.Get(stat) >= below {
			return 0, false
		}
	}
	if tr.MinUnrest > 0 {
		if in.Unrest < tr.MinUnrest {
			return 0, false
		}
		prob += in.Unrest - tr.MinUnrest
	}
	if tr.MinWarYears > 0 {
		if in.WarYears < tr.MinWarYears {
			return 0, false
		}
		prob += float64(in.WarYears-tr.MinWarYears) * 2
	}
	for stat, w := range tr.StatModifiers {
		prob += w * float64(3-in.Stats.Get(stat))
	}

	if prob < 0 {
		prob = 0
	}
	if prob > 100 {
		prob = 100
	}
	return prob, true
}
