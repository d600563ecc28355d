package crisis

import (
	"fmt"

	"github.com/talgya/statecraft/internal/nation"
)

// Consequence is the immutable template for one crisis type. Effects are
// stat deltas applied once per year the crisis is active. A zero
// EscalatesTo means the crisis never escalates; AutoResolveChance is a
// per-year percentage roll.
type Consequence struct {
	Type                Type                `json:"type"`
	Name                string              `json:"name"`
	Severity            Severity            `json:"severity"`
	Description         string              `json:"description"`
	Effects             map[nation.Stat]int `json:"effects"`
	Duration            int                 `json:"duration"` // years
	SpreadChance        float64             `json:"spread_chance,omitempty"`
	EscalatesTo         Type                `json:"escalates_to,omitempty"`
	EscalationThreshold float64             `json:"escalation_threshold,omitempty"`
	AutoResolveChance   float64             `json:"auto_resolve_chance,omitempty"`
}

// Trigger decides when a crisis type spawns. All present conditions are
// AND-combined gates; a satisfied unrest or war-years condition also raises
// the roll probability by its margin over the threshold. StatModifiers are a
// secondary gate: each entry adds weight × (3 − score) to the probability,
// so weak scores make the roll easier and strong ones harder.
type Trigger struct {
	Produces      Type                    `json:"produces"`
	StatBelow     map[nation.Stat]int     `json:"stat_below,omitempty"`
	MinUnrest     float64                 `json:"min_unrest,omitempty"`
	MinWarYears   int                     `json:"min_war_years,omitempty"`
	Probability   float64                 `json:"probability"`
	StatModifiers map[nation.Stat]float64 `json:"stat_modifiers,omitempty"`
}

// ActiveConsequence is a live crisis instance owned by one nation.
// Remaining counts down each year; the instance resolves at ≤ 0.
// EscalationRisk accumulates each active year and, at the template's
// threshold, replaces the instance with a fresh one of the escalated type.
type ActiveConsequence struct {
	Type           Type    `json:"type"`
	StartYear      int     `json:"start_year"`
	Remaining      int     `json:"remaining"`
	EscalationRisk float64 `json:"escalation_risk"`
}

// Library is the loaded, validated reference data for the consequence
// system. Triggers keep declaration order: the trigger scan is defined to
// evaluate them in sequence, which keeps seeded runs reproducible.
type Library struct {
	Templates map[Type]Consequence
	Triggers  []Trigger
}

// Template returns the template for a type. The bool follows map semantics;
// after Validate has passed, lookups for any referenced type always hit.
func (l *Library) Template(t Type) (Consequence, bool) {
	c, ok := l.Templates[t]
	return c, ok
}

// Validate checks referential integrity: every trigger must produce a known
// template and every escalation target must exist with a positive threshold.
// Reference-data problems fail here, at load, never during a tick.
func (l *Library) Validate() error {
	for t, c := range l.Templates {
		if c.Type != t {
			return fmt.Errorf("template keyed %s declares type %s", t, c.Type)
		}
		if c.Duration < 1 {
			return fmt.Errorf("template %s: duration must be ≥ 1, got %d", t, c.Duration)
		}
		if c.EscalatesTo != TypeNone {
			if c.EscalatesTo == t {
				return fmt.Errorf("template %s escalates to itself", t)
			}
			if _, ok := l.Templates[c.EscalatesTo]; !ok {
				return fmt.Errorf("template %s escalates to undefined type %s", t, c.EscalatesTo)
			}
			if c.EscalationThreshold <= 0 {
				return fmt.Errorf("template %s: escalation target set without a threshold", t)
			}
		}
		if c.AutoResolveChance < 0 || c.AutoResolveChance > 100 {
			return fmt.Errorf("template %s: auto-resolve chance %v outside [0,100]", t, c.AutoResolveChance)
		}
	}
	for i, tr := range l.Triggers {
		if _, ok := l.Templates[tr.Produces]; !ok {
			return fmt.Errorf("trigger %d produces undefined type %s", i, tr.Produces)
		}
		if tr.Probability < 0 || tr.Probability > 100 {
			return fmt.Errorf("trigger %d: base probability %v outside [0,100]", i, tr.Probability)
		}
	}
	return nil
}

// DefaultLibrary returns the built-in crisis tables. Escalation chains run
// famine → riot → rebellion → revolution on the unrest side and
// debt crisis → economic collapse on the fiscal side; mutiny feeds the
// unrest chain from the army.
func DefaultLibrary() *Library {
	lib := &Library{
		Templates: map[Type]Consequence{
			TypeFamine: {
				Type:                TypeFamine,
				Name:                "Famine",
				Severity:            SeveritySevere,
				Description:         "Failed harvests leave granaries empty and the countryside starving.",
				Effects:             map[nation.Stat]int{nation.StatEconomy: -1, nation.StatStability: -1},
				Duration:            2,
				EscalatesTo:         TypeRiot,
				EscalationThreshold: 60,
				AutoResolveChance:   40,
			},
			TypeRiot: {
				Type:                TypeRiot,
				Name:                "Riots",
				Severity:            SeverityMinor,
				Description:         "Bread riots and broken shop windows in the capital.",
				Effects:             map[nation.Stat]int{nation.StatStability: -1},
				Duration:            1,
				EscalatesTo:         TypeRebellion,
				EscalationThreshold: 50,
				AutoResolveChance:   50,
			},
			TypeRebellion: {
				Type:                TypeRebellion,
				Name:                "Rebellion",
				Severity:            SeveritySevere,
				Description:         "Armed bands hold whole provinces against the crown.",
				Effects:             map[nation.Stat]int{nation.StatStability: -2, nation.StatMilitary: -1},
				Duration:            3,
				EscalatesTo:         TypeRevolution,
				EscalationThreshold: 80,
				AutoResolveChance:   20,
			},
			TypeRevolution: {
				Type:              TypeRevolution,
				Name:              "Revolution",
				Severity:          SeverityCritical,
				Description:       "The old order is overthrown; committees rule from the capital.",
				Effects:           map[nation.Stat]int{nation.StatStability: -2, nation.StatEconomy: -1, nation.StatPrestige: -1},
				Duration:          4,
				AutoResolveChance: 15,
			},
			TypeDebtCrisis: {
				Type:                TypeDebtCrisis,
				Name:                "Debt Crisis",
				Severity:            SeverityModerate,
				Description:         "Creditors refuse new loans and demand repayment in gold.",
				Effects:             map[nation.Stat]int{nation.StatEconomy: -1},
				Duration:            2,
				EscalatesTo:         TypeEconomicCollapse,
				EscalationThreshold: 70,
				AutoResolveChance:   30,
			},
			TypeEconomicCollapse: {
				Type:              TypeEconomicCollapse,
				Name:              "Economic Collapse",
				Severity:          SeverityCritical,
				Description:       "Banks fail, the currency is waste paper, trade grinds to a halt.",
				Effects:           map[nation.Stat]int{nation.StatEconomy: -2, nation.StatStability: -1},
				Duration:          3,
				AutoResolveChance: 10,
			},
			TypeMutiny: {
				Type:                TypeMutiny,
				Name:                "Mutiny",
				Severity:            SeverityModerate,
				Description:         "Regiments refuse orders; officers are shot by their own men.",
				Effects:             map[nation.Stat]int{nation.StatMilitary: -1},
				Duration:            1,
				EscalatesTo:         TypeRebellion,
				EscalationThreshold: 60,
				AutoResolveChance:   40,
			},
			TypePlague: {
				Type:              TypePlague,
				Name:              "Plague Outbreak",
				Severity:          SeveritySevere,
				Description:       "Disease spreads through the crowded quarters of the cities.",
				Effects:           map[nation.Stat]int{nation.StatEconomy: -1, nation.StatStability: -1},
				Duration:          2,
				SpreadChance:      20,
				AutoResolveChance: 30,
			},
		},
		Triggers: []Trigger{
			{
				Produces:      TypeFamine,
				StatBelow:     map[nation.Stat]int{nation.StatEconomy: 2},
				Probability:   30,
				StatModifiers: map[nation.Stat]float64{nation.StatInnovation: 3},
			},
			{
				Produces:    TypeRiot,
				MinUnrest:   50,
				Probability: 25,
			},
			{
				Produces:      TypeRebellion,
				StatBelow:     map[nation.Stat]int{nation.StatStability: 2},
				MinUnrest:     70,
				Probability:   20,
				StatModifiers: map[nation.Stat]float64{nation.StatMilitary: 4},
			},
			{
				Produces:    TypeRevolution,
				StatBelow:   map[nation.Stat]int{nation.StatStability: 2},
				MinUnrest:   85,
				Probability: 10,
			},
			{
				Produces:    TypeDebtCrisis,
				StatBelow:   map[nation.Stat]int{nation.StatEconomy: 2},
				Probability: 20,
			},
			{
				Produces:      TypeMutiny,
				MinWarYears:   3,
				Probability:   15,
				StatModifiers: map[nation.Stat]float64{nation.StatMilitary: 5},
			},
			{
				Produces:    TypePlague,
				Probability: 3,
			},
		},
	}
	return lib
}
