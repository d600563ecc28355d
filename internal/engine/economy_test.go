package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/statecraft/internal/economy"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/nation"
)

func econFixture() economy.NationalEconomy {
	return economy.NationalEconomy{
		GDP:      1_000,
		Revenue:  economy.Revenue{Taxes: 100},
		Monetary: economy.Monetary{InterestRate: 4},
		Trade:    economy.Trade{Exports: 50, Imports: 40},
		Labor:    economy.Labor{Unemployment: 5},
		Sectors:  economy.Sectors{Agriculture: 60, Manufacturing: 20, Services: 15, Mining: 5},
	}
}

func TestSimulateEconomyGrowth(t *testing.T) {
	t.Run("Neutral Scores Neutral Era", func(t *testing.T) {
		// All scores at 3 cancel; EraRevolutionary adds nothing.
		out, _ := SimulateEconomy(econFixture(), calmStats(), history.EraRevolutionary, false, false, 1_000_000, 0)
		assert.InDelta(t, 1.0, out.GrowthRate, 1e-9)
		assert.InDelta(t, 1_010, out.GDP, 1e-6)
		assert.InDelta(t, 101, out.Revenue.Taxes, 1e-9)
	})

	t.Run("Scores Shift Growth", func(t *testing.T) {
		stats := nation.Stats{Military: 3, Economy: 5, Stability: 4, Innovation: 4, Prestige: 3}
		out, _ := SimulateEconomy(econFixture(), stats, history.EraRevolutionary, false, false, 1_000_000, 0)
		// 1.0 + 0.5×2 + 0.3×1 + 0.2×1 = 2.5
		assert.InDelta(t, 2.5, out.GrowthRate, 1e-9)
	})

	t.Run("War Contracts And Rearms", func(t *testing.T) {
		ec := econFixture()
		ec.Expenditure.Military = 40
		ec.Budget.Debt = 100
		out, _ := SimulateEconomy(ec, calmStats(), history.EraRevolutionary, true, false, 1_000_000, 0)
		assert.InDelta(t, -0.5, out.GrowthRate, 1e-9)
		assert.InDelta(t, 60, out.Expenditure.Military, 1e-9)
	})

	t.Run("Famine Cuts Two Points", func(t *testing.T) {
		out, _ := SimulateEconomy(econFixture(), calmStats(), history.EraRevolutionary, false, true, 1_000_000, 0)
		assert.InDelta(t, -1.0, out.GrowthRate, 1e-9)
	})

	t.Run("Harvest Swing Is Additive", func(t *testing.T) {
		out, _ := SimulateEconomy(econFixture(), calmStats(), history.EraRevolutionary, false, false, 1_000_000, 0.4)
		assert.InDelta(t, 1.4, out.GrowthRate, 1e-9)
	})

	t.Run("Per Capita From Population", func(t *testing.T) {
		out, _ := SimulateEconomy(econFixture(), calmStats(), history.EraRevolutionary, false, false, 1_000_000, 0)
		// GDP is in millions of currency units.
		assert.InDelta(t, out.GDP*1e6/1_000_000, out.GDPPerCapita, 1e-6)
		assert.Equal(t, int64(400_000), out.Labor.Workforce)
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		ec := econFixture()
		_, _ = SimulateEconomy(ec, calmStats(), history.EraRevolutionary, true, true, 1_000_000, 0)
		assert.InDelta(t, 1_000, ec.GDP, 1e-9)
	})
}

func TestSimulateEconomyUnemployment(t *testing.T) {
	t.Run("Contraction Raises It", func(t *testing.T) {
		out, _ := SimulateEconomy(econFixture(), calmStats(), history.EraRevolutionary, false, true, 1_000_000, 0)
		assert.InDelta(t, 6.5, out.Labor.Unemployment, 1e-9)
	})

	t.Run("Boom Lowers It", func(t *testing.T) {
		stats := nation.Stats{Military: 3, Economy: 5, Stability: 5, Innovation: 5, Prestige: 3}
		out, _ := SimulateEconomy(econFixture(), stats, history.EraIndustrial, false, false, 1_000_000, 0)
		assert.InDelta(t, 4.0, out.Labor.Unemployment, 1e-9)
	})

	t.Run("Floor At Two", func(t *testing.T) {
		ec := econFixture()
		ec.Labor.Unemployment = 2.5
		stats := nation.Stats{Military: 3, Economy: 5, Stability: 5, Innovation: 5, Prestige: 3}
		out, _ := SimulateEconomy(ec, stats, history.EraIndustrial, false, false, 1_000_000, 0)
		assert.InDelta(t, 2.0, out.Labor.Unemployment, 1e-9)
	})
}

func TestSimulateEconomyDebtSpiral(t *testing.T) {
	ec := econFixture()
	ec.Budget.Debt = 2_000
	ec.Expenditure.Administration = 200 // force a deficit

	out, events := SimulateEconomy(ec, calmStats(), history.EraRevolutionary, false, false, 1_000_000, 0)

	// Deficit folds into the debt stock and the ratio is recomputed.
	assert.Greater(t, out.Budget.Debt, 2_000.0)
	assert.Greater(t, out.Budget.DebtToGDP, 150.0)

	var sawDebtSignal bool
	for _, e := range events {
		if e.Category == "signal" {
			sawDebtSignal = true
		}
	}
	assert.True(t, sawDebtSignal, "expected a debt signal event")

	// The returned totals already carry the new debt service: the budget is
	// settled again after the deficit folds into the stock.
	assert.InDelta(t, out.Budget.Debt*out.Monetary.InterestRate/100, out.Budget.Interest, 1e-9)
	assert.InDelta(t, out.Budget.Interest, out.Expenditure.DebtService, 1e-9)
	assert.InDelta(t, out.Expenditure.Total(), out.Budget.Expenditure, 1e-9)
	assert.InDelta(t, out.Budget.Revenue-out.Budget.Expenditure, out.Budget.Balance, 1e-9)
}

func TestSimulateEconomyIndustrialization(t *testing.T) {
	ec := econFixture()
	stats := calmStats()
	stats.Innovation = 4

	out, _ := SimulateEconomy(ec, stats, history.EraIndustrial, false, false, 1_000_000, 0)
	assert.Less(t, out.Sectors.Agriculture, ec.Sectors.Agriculture)
	assert.Greater(t, out.Sectors.Manufacturing, ec.Sectors.Manufacturing)
	assert.Equal(t, ec.Infra.Railways+1, out.Infra.Railways)
	assert.Equal(t, ec.Infra.Telegraph+2, out.Infra.Telegraph)

	// Pre-industrial eras leave the structure alone.
	out, _ = SimulateEconomy(ec, stats, history.EraEnlightenment, false, false, 1_000_000, 0)
	assert.Equal(t, ec.Sectors, out.Sectors)
	assert.Equal(t, ec.Infra.Railways, out.Infra.Railways)
}

func TestSimulateEconomyInflation(t *testing.T) {
	t.Run("Peace And Surplus", func(t *testing.T) {
		out, _ := SimulateEconomy(econFixture(), calmStats(), history.EraRevolutionary, false, false, 1_000_000, 0)
		assert.InDelta(t, 2.0, out.Monetary.Inflation, 1e-9)
	})

	t.Run("War Deficit And Debt Stack Up", func(t *testing.T) {
		ec := econFixture()
		ec.Budget.Debt = 1_500
		ec.Expenditure.Administration = 300
		out, _ := SimulateEconomy(ec, calmStats(), history.EraRevolutionary, true, false, 1_000_000, 0)
		// 2 base + 3 war + 1 deficit + 2 heavy debt
		assert.InDelta(t, 8.0, out.Monetary.Inflation, 1e-9)
	})
}
