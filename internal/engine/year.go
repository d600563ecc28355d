// Year orchestration — one tick is one simulated year for one nation.
package engine

import (
	"fmt"

	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/nation"
)

// TickYear advances one nation by one year. The fixed sequence is the
// contract: Economic → Military → Population → Consequence, with every
// engine reading the pre-tick stat snapshot. Only the consequence engine
// additionally sees this year's derived figures (class unrest, war years).
// All stat deltas are merged and applied to the ledger exactly once, at the
// end. The input state is never mutated.
func TickYear(st *NationState, year int, flags Flags, lib *crisis.Library, roll Roller, harvest float64) TickResult {
	era := history.EraForYear(year)
	stats := st.Stats // pre-tick snapshot; engines never see mid-tick values

	// An active famine or plague crisis counts as the environmental flag
	// even when the caller didn't set it.
	famine := flags.Famine || st.HasActive(crisis.TypeFamine)
	plague := flags.Plague || st.HasActive(crisis.TypePlague)

	var population int64
	if st.Demographics != nil {
		population = st.Demographics.TotalPopulation
	}

	econOut, econEvents := SimulateEconomy(*st.Economy, stats, era, flags.AtWar, famine, population, harvest)
	milOut, milEvents := SimulateMilitary(st.Military, flags.AtWar, year)
	popUpd := SimulatePopulation(st.Demographics, stats, year, era, flags.AtWar, famine, plague)
	newDemo := ApplyPopulationUpdate(st.Demographics, popUpd)

	warYears := 0
	if flags.AtWar {
		warYears = st.WarYears + 1
	}

	var unrest float64
	if newDemo != nil {
		unrest = nation.ClassUnrest(newDemo.Classes)
	}

	consRes := AdvanceConsequences(lib, st.Active, ConsequenceInput{
		Year:     year,
		Stats:    stats,
		Unrest:   unrest,
		WarYears: warYears,
	}, roll)

	newStats := stats.Apply(MergeDeltas(consRes.Deltas))

	events := make([]Event, 0, len(econEvents)+len(milEvents)+len(popUpd.Events)+len(consRes.Events)+1)
	events = append(events, econEvents...)
	events = append(events, milEvents...)
	events = append(events, popUpd.Events...)
	events = append(events, consRes.Events...)

	if newDemo != nil {
		if kind := nation.CheckClassConflict(newDemo.Classes); kind != nation.ConflictNone {
			events = append(events, Event{
				Category:    "population",
				Description: fmt.Sprintf("The satisfaction gap between the classes points toward %s", kind),
			})
		}
	}

	for i := range events {
		events[i].Year = year
		events[i].Nation = st.Tag
	}

	return TickResult{
		State: &NationState{
			Tag:          st.Tag,
			Name:         st.Name,
			Stats:        newStats,
			Economy:      &econOut,
			Military:     milOut,
			Demographics: newDemo,
			Active:       consRes.Active,
			AtWar:        flags.AtWar,
			WarYears:     warYears,
		},
		Events:      events,
		Transitions: consRes.Transitions,
	}
}
