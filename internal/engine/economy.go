// Economic engine — yearly growth, budget, debt, inflation, and trade
// evolution from the capability scores and era constants.
package engine

import (
	"fmt"

	"github.com/talgya/statecraft/internal/economy"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/nation"
)

// SimulateEconomy advances one nation's economy by one year. The input is
// taken by value and never mutated. harvest is a small signed growth swing
// (percentage points) from the world's noise field; population feeds the
// per-capita figure. Crisis-signal events carry category "signal": they are
// advisory flags for the consequence system and the presentation layer, not
// stat deltas.
func SimulateEconomy(ec economy.NationalEconomy, stats nation.Stats, era history.Era, atWar, famine bool, population int64, harvest float64) (economy.NationalEconomy, []Event) {
	var events []Event

	growth := 1.0 +
		0.5*float64(stats.Economy-3) +
		0.3*float64(stats.Innovation-3) +
		0.2*float64(stats.Stability-3) +
		era.GrowthBonus() +
		harvest

	if atWar {
		growth -= 1.5
		ec.Expenditure.Military *= 1.5
		ec.Budget.Debt *= 1.1
	}
	if famine {
		growth -= 2.0
	}

	ec.GrowthRate = growth
	ec.GDP *= 1 + growth/100
	if population > 0 {
		ec.GDPPerCapita = ec.GDP * 1e6 / float64(population)
		ec.Labor.Workforce = population * 2 / 5
	}

	// Tax base and trade volumes follow output.
	ec.Revenue.Taxes *= 1 + growth/100
	ec.Trade.Exports *= 1 + growth/100
	ec.Trade.Imports *= 1 + growth/100

	// Unemployment drifts against the cycle.
	switch {
	case growth < 0:
		ec.Labor.Unemployment += 1.5
	case growth > 2.5:
		ec.Labor.Unemployment -= 1.0
	}
	if ec.Labor.Unemployment < 2 {
		ec.Labor.Unemployment = 2
	}
	if ec.Labor.Unemployment > 40 {
		ec.Labor.Unemployment = 40
	}

	// Industrialization slowly shifts output and builds rail and wire.
	if era >= history.EraIndustrial {
		if ec.Sectors.Agriculture > 20 {
			ec.Sectors.Agriculture -= 0.2
			ec.Sectors.Manufacturing += 0.2
		}
		if stats.Innovation >= 3 {
			ec.Infra.Railways++
		}
		if stats.Innovation >= 4 {
			ec.Infra.Telegraph += 2
		}
	}

	// Settle the budget, fold any deficit into the debt stock, then settle
	// again so the year's totals carry the new debt service.
	ec.Recalculate()
	if ec.Budget.Balance < 0 {
		ec.Budget.Debt += -ec.Budget.Balance
	}
	ec.Recalculate()

	inflation := 2.0
	if atWar {
		inflation += 3.0
	}
	if ec.Budget.Balance < 0 {
		inflation += 1.0
	}
	if ec.Budget.DebtToGDP > 100 {
		inflation += 2.0
	}
	ec.Monetary.Inflation = inflation

	if ec.Budget.DebtToGDP > 150 {
		events = append(events, Event{
			Category:    "signal",
			Description: fmt.Sprintf("Sovereign debt stands at %.0f%% of output; creditors grow nervous", ec.Budget.DebtToGDP),
		})
	}
	if ec.Monetary.Inflation > 10 {
		events = append(events, Event{
			Category:    "signal",
			Description: fmt.Sprintf("Prices are rising at %.1f%% a year; wages cannot keep pace", ec.Monetary.Inflation),
		})
	}
	if ec.Labor.Unemployment > 15 {
		events = append(events, Event{
			Category:    "signal",
			Description: fmt.Sprintf("Unemployment has reached %.1f%%; the workhouses are full", ec.Labor.Unemployment),
		})
	}

	return ec, events
}
