// Package military defines the armed-forces record, unit instances and
// templates, and the pure combat-strength aggregate. Yearly evolution lives
// in internal/engine.
package military

import "github.com/talgya/statecraft/internal/nation"

// UnitStatus tracks what a unit is doing this year. Only active units
// (ready, deployed, or in combat) contribute to combat strength.
type UnitStatus uint8

const (
	StatusReady UnitStatus = iota
	StatusTraining
	StatusMobilizing
	StatusDeployed
	StatusInCombat
	StatusRecovering
)

func (s UnitStatus) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusTraining:
		return "training"
	case StatusMobilizing:
		return "mobilizing"
	case StatusDeployed:
		return "deployed"
	case StatusInCombat:
		return "in_combat"
	case StatusRecovering:
		return "recovering"
	}
	return "unknown"
}

// Active reports whether a unit in this status fights.
func (s UnitStatus) Active() bool {
	return s == StatusReady || s == StatusDeployed || s == StatusInCombat
}

// Unit is one formation: a regiment, a squadron, a battery. Strength and
// Morale are 0–100 gauges and stay clamped on every write path.
type Unit struct {
	Kind       Kind       `json:"kind"`
	Name       string     `json:"name"`
	Manpower   int        `json:"manpower"`
	Equipment  int        `json:"equipment"`
	Attack     float64    `json:"attack"`
	Defense    float64    `json:"defense"`
	Morale     float64    `json:"morale"`
	Experience float64    `json:"experience"`
	SupplyCost float64    `json:"supply_cost"`
	Speed      float64    `json:"speed"`
	Status     UnitStatus `json:"status"`
	Strength   float64    `json:"strength"` // % of establishment, 0–100
}

// Force is an army or navy aggregate; the two share a shape.
type Force struct {
	Manpower     int     `json:"manpower"`
	Units        []Unit  `json:"units"`
	Reserves     int     `json:"reserves"`
	ConscriptPool int    `json:"conscript_pool"`
	Organization float64 `json:"organization"` // 0–100
	Doctrine     string  `json:"doctrine"`
}

// Logistics tracks supply state shared by both forces.
type Logistics struct {
	SupplyCapacity float64 `json:"supply_capacity"`
	SupplyCurrent  float64 `json:"supply_current"`
	SupplyLines    int     `json:"supply_lines"`
	Materiel       float64 `json:"materiel"`
	Fuel           float64 `json:"fuel"`
}

// NationalMilitary aggregates a nation's armed forces.
type NationalMilitary struct {
	Army           Force     `json:"army"`
	Navy           Force     `json:"navy"`
	Logistics      Logistics `json:"logistics"`
	CommandQuality int       `json:"command_quality"` // 1–5
	Fortifications int       `json:"fortifications"`
	WarReadiness   float64   `json:"war_readiness"` // 0–100
	Morale         float64   `json:"morale"`        // 0–100
	AttritionRate  float64   `json:"attrition_rate"` // % per year while at war
}

// Clone returns a deep copy; unit slices are never shared.
func (m *NationalMilitary) Clone() *NationalMilitary {
	if m == nil {
		return nil
	}
	out := *m
	out.Army.Units = append([]Unit(nil), m.Army.Units...)
	out.Navy.Units = append([]Unit(nil), m.Navy.Units...)
	return &out
}

// CombatStrength aggregates current fighting power. Each active unit
// contributes (attack + defense) scaled by its strength and morale
// percentages and its force's organization; the total is scaled by command
// quality around the neutral score of 3 and takes a 0.7 penalty when
// current supply sits below half of capacity. Pure: no state is touched.
func CombatStrength(m *NationalMilitary) float64 {
	total := forceStrength(m.Army) + forceStrength(m.Navy)
	total *= 1 + float64(m.CommandQuality-3)*0.1
	if m.Logistics.SupplyCapacity > 0 && m.Logistics.SupplyCurrent < m.Logistics.SupplyCapacity*0.5 {
		total *= 0.7
	}
	return total
}

func forceStrength(f Force) float64 {
	var sum float64
	for _, u := range f.Units {
		if !u.Status.Active() {
			continue
		}
		sum += (u.Attack + u.Defense) * (u.Strength / 100) * (u.Morale / 100)
	}
	return sum * (f.Organization / 100)
}

// ClampUnit forces a unit's gauges back into [0, 100].
func ClampUnit(u *Unit) {
	u.Strength = nation.ClampPercent(u.Strength)
	u.Morale = nation.ClampPercent(u.Morale)
	u.Experience = nation.ClampPercent(u.Experience)
}
