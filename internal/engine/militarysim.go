// Military engine — peacetime recovery, wartime attrition, and supply decay.
package engine

import (
	"fmt"

	"github.com/talgya/statecraft/internal/military"
	"github.com/talgya/statecraft/internal/nation"
)

// Wartime constants. Attrition is a flat yearly rate; units bleed strength
// and gain experience at fixed increments.
const (
	wartimeAttrition    = 5.0
	wartimeStrengthLoss = 8.0
	wartimeExperience   = 10.0
)

// SimulateMilitary advances the armed forces by one year. The input is
// cloned, never mutated. Supply-critical and collapsed-morale events are
// advisory: they signal mutiny risk to the consequence system but force no
// transition themselves.
func SimulateMilitary(m *military.NationalMilitary, atWar bool, year int) (*military.NationalMilitary, []Event) {
	out := m.Clone()
	var events []Event

	if atWar {
		out.AttritionRate = wartimeAttrition
		out.Morale = nation.ClampPercent(out.Morale - 5)

		for _, f := range []*military.Force{&out.Army, &out.Navy} {
			for i := range f.Units {
				u := &f.Units[i]
				u.Strength -= wartimeStrengthLoss
				u.Morale -= 3
				u.Experience += wartimeExperience
				if u.Status == military.StatusReady {
					u.Status = military.StatusInCombat
				}
				military.ClampUnit(u)
			}
		}

		out.Logistics.SupplyCurrent *= 0.9
		if out.Logistics.SupplyCapacity > 0 && out.Logistics.SupplyCurrent < out.Logistics.SupplyCapacity*0.3 {
			events = append(events, Event{
				Category:    "military",
				Description: fmt.Sprintf("Supply stores down to %.0f%% of capacity; the quartermasters ration powder", out.Logistics.SupplyCurrent/out.Logistics.SupplyCapacity*100),
			})
		}
	} else {
		out.AttritionRate = 0
		out.Morale = nation.ClampPercent(out.Morale + 5)
		out.WarReadiness = nation.ClampPercent(out.WarReadiness + 10)

		for _, f := range []*military.Force{&out.Army, &out.Navy} {
			for i := range f.Units {
				u := &f.Units[i]
				u.Strength += 10
				u.Morale += 5
				switch u.Status {
				case military.StatusInCombat:
					u.Status = military.StatusReady
				case military.StatusRecovering:
					if u.Strength >= 80 {
						u.Status = military.StatusReady
					}
				}
				military.ClampUnit(u)
			}
		}

		recovered := out.Logistics.SupplyCurrent + out.Logistics.SupplyCapacity*0.1
		if recovered > out.Logistics.SupplyCapacity {
			recovered = out.Logistics.SupplyCapacity
		}
		out.Logistics.SupplyCurrent = recovered
	}

	if out.Morale < 30 {
		events = append(events, Event{
			Category:    "military",
			Description: "Morale has fallen below thirty; talk of mutiny spreads through the barracks",
		})
	}

	out.Army.Manpower = military.ForceManpower(out.Army.Units)
	out.Navy.Manpower = military.ForceManpower(out.Navy.Units)
	return out, events
}
