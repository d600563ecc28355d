// Population engine — births, deaths, migration, urbanization, literacy,
// and class-satisfaction shifts from era tables and yearly modifiers.
package engine

import (
	"fmt"

	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/nation"
)

// ClassChange records one satisfaction shift for the caller to apply.
// Class "*" targets every class.
type ClassChange struct {
	Class  string  `json:"class"`
	Delta  float64 `json:"delta"`
	Reason string  `json:"reason"`
}

// PopulationUpdate is the population engine's output for one year. It is a
// description of changes, not a mutation: ApplyPopulationUpdate folds it
// into a Demographics record exactly once.
type PopulationUpdate struct {
	Births        int64         `json:"births"`
	Deaths        int64         `json:"deaths"`
	Migration     int64         `json:"migration"`
	NewPopulation int64         `json:"new_population"`
	GrowthRate    float64       `json:"growth_rate"`
	Urbanization  float64       `json:"urbanization"`
	Literacy      float64       `json:"literacy"`
	ClassChanges  []ClassChange `json:"class_changes,omitempty"`
	Events        []Event       `json:"events,omitempty"`
}

// SimulatePopulation computes one year of demographic change. A nil
// demographics record yields a zero-value no-op update rather than an
// error; the turn loop owns structural completeness.
//
// The growth rate starts from the era table and every modifier is additive:
// war, famine, plague, historical mortality years, and the economy,
// innovation, and stability scores all shift the same signed rate.
func SimulatePopulation(d *nation.Demographics, stats nation.Stats, year int, era history.Era, atWar, famine, plague bool) PopulationUpdate {
	if d == nil {
		return PopulationUpdate{}
	}

	var u PopulationUpdate
	growth := era.Rates().Base

	if atWar {
		growth -= 0.5
	}
	if famine {
		growth -= 1.0
		u.ClassChanges = append(u.ClassChanges,
			ClassChange{Class: "Peasants", Delta: -8, Reason: "famine"},
			ClassChange{Class: "Urban Poor", Delta: -10, Reason: "famine"},
		)
	}
	if plague {
		growth -= 0.8
	}
	if m, ok := history.MortalityFor(year); ok {
		growth -= m.DeathRate / 10
		u.Events = append(u.Events, Event{
			Category:    "population",
			Description: fmt.Sprintf("%s sweeps the country; the burial registers fill", m.Name),
		})
	}

	switch {
	case stats.Economy >= 4:
		growth += 0.2
	case stats.Economy <= 2:
		growth -= 0.2
		u.ClassChanges = append(u.ClassChanges,
			ClassChange{Class: "Urban Poor", Delta: -5, Reason: "economic hardship"})
	}
	if stats.Innovation >= 4 {
		growth += 0.1
	}
	if stats.Stability <= 2 {
		growth -= 0.3
		u.Events = append(u.Events, Event{
			Category:    "population",
			Description: "Unrest empties the markets and scatters families from the towns",
		})
	}

	prev := d.TotalPopulation
	floor := int64(float64(prev) * 0.005) // 0.5% baseline churn
	if growth > 0 {
		u.Births = int64(float64(prev) * growth * 1.5 / 100)
		if u.Births < floor {
			u.Births = floor
		}
		u.Deaths = floor
	} else {
		u.Births = floor
		u.Deaths = int64(float64(prev) * -growth * 1.5 / 100)
		if u.Deaths < floor {
			u.Deaths = floor
		}
	}
	u.Migration = int64(float64(prev) * growth / 100 * 0.2)

	u.GrowthRate = growth
	u.NewPopulation = prev + u.Births - u.Deaths + u.Migration
	if u.NewPopulation < 0 {
		u.NewPopulation = 0
	}

	// Urbanization creeps toward the era target. The pace follows the
	// era's urban-rural growth gap; industrial innovation doubles it.
	rates := era.Rates()
	step := 0.3 + (rates.Urban-rates.Rural)/2
	if step < 0.1 {
		step = 0.1
	}
	if stats.Innovation >= 4 {
		step *= 2
	}
	target := era.UrbanizationTarget()
	urb := d.Urbanization
	switch {
	case urb < target:
		urb += step
		if urb > target {
			urb = target
		}
	case urb > target:
		urb -= step
		if urb < target {
			urb = target
		}
	}
	u.Urbanization = urb

	lit := d.Literacy
	if stats.Innovation >= 3 {
		lit += 0.5
	}
	if stats.Economy >= 4 {
		lit += 0.3
	}
	if lit > 99 {
		lit = 99
	}
	u.Literacy = lit

	return u
}

// ApplyPopulationUpdate folds an update into a copy of the demographics.
// The input record is untouched; calling this once per update is the
// caller's contract. Class changes match by name, with "*" fanning out to
// every class; satisfaction always lands clamped in [0, 100]. Population
// centers are rescaled with the national total.
func ApplyPopulationUpdate(d *nation.Demographics, u PopulationUpdate) *nation.Demographics {
	if d == nil {
		return nil
	}
	out := d.Clone()
	if u.NewPopulation == 0 && u.Births == 0 && u.Deaths == 0 {
		return out // no-op update from an absent-demographics tick
	}

	prev := out.TotalPopulation
	out.TotalPopulation = u.NewPopulation
	out.GrowthRate = u.GrowthRate
	out.Urbanization = u.Urbanization
	out.Literacy = u.Literacy

	for _, ch := range u.ClassChanges {
		if ch.Class == "*" {
			for i := range out.Classes {
				out.Classes[i].Satisfaction = nation.ClampPercent(out.Classes[i].Satisfaction + ch.Delta)
			}
			continue
		}
		nation.AdjustSatisfaction(out.Classes, ch.Class, ch.Delta)
	}

	if prev > 0 {
		ratio := float64(u.NewPopulation) / float64(prev)
		for i := range out.Centers {
			out.Centers[i].Population = int64(float64(out.Centers[i].Population) * ratio)
		}
	}
	return out
}
