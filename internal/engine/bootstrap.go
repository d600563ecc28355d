// Nation initialization from historical baselines.
package engine

import (
	"github.com/talgya/statecraft/internal/economy"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/military"
	"github.com/talgya/statecraft/internal/nation"
)

// NewNation builds a nation's starting state for a year by interpolating
// its baseline anchors and stamping an era-appropriate force and class
// structure. Reference tables are shared; everything else is owned by the
// new state.
func NewNation(b history.Baseline, year int) *NationState {
	pop, gdp := b.At(year)
	era := history.EraForYear(year)

	return &NationState{
		Tag:          b.Tag,
		Name:         b.Name,
		Stats:        b.Stats.Clamped(),
		Economy:      newEconomy(b, gdp, pop, era),
		Military:     newMilitary(b, pop, era),
		Demographics: newDemographics(b, pop, era),
	}
}

func newEconomy(b history.Baseline, gdp float64, pop int64, era history.Era) *economy.NationalEconomy {
	ec := &economy.NationalEconomy{
		GDP: gdp,
		Revenue: economy.Revenue{
			Taxes:            gdp * 0.060,
			Tariffs:          gdp * 0.015,
			StateEnterprises: gdp * 0.010,
			Other:            gdp * 0.005,
		},
		Expenditure: economy.Expenditure{
			Military:       gdp * 0.035,
			Administration: gdp * 0.015,
			Infrastructure: gdp * 0.010,
			Court:          gdp * 0.005,
			Social:         gdp * 0.005,
		},
		Monetary: economy.Monetary{
			Currency:     b.Currency,
			Inflation:    2.0,
			InterestRate: 5.0,
			GoldReserves: gdp * 0.02,
		},
		Trade: economy.Trade{
			Exports:    gdp * 0.080,
			Imports:    gdp * 0.075,
			TariffRate: 15,
		},
		Labor: economy.Labor{
			Workforce:    pop * 2 / 5,
			Unemployment: 6,
		},
	}
	ec.Budget.Debt = gdp * 0.30

	switch {
	case era < history.EraIndustrial:
		ec.Sectors = economy.Sectors{Agriculture: 65, Manufacturing: 15, Services: 12, Mining: 8}
		ec.Infra = economy.Infra{Roads: 20, Canals: 4, Ports: 6}
	case era < history.EraImperial:
		ec.Sectors = economy.Sectors{Agriculture: 45, Manufacturing: 30, Services: 17, Mining: 8}
		ec.Infra = economy.Infra{Roads: 45, Railways: 8, Canals: 10, Ports: 10, Telegraph: 5}
	default:
		ec.Sectors = economy.Sectors{Agriculture: 30, Manufacturing: 40, Services: 22, Mining: 8}
		ec.Infra = economy.Infra{Roads: 80, Railways: 30, Canals: 12, Ports: 15, Telegraph: 40}
	}

	ec.Recalculate()
	if pop > 0 {
		ec.GDPPerCapita = ec.GDP * 1e6 / float64(pop)
	}
	return ec
}

func newMilitary(b history.Baseline, pop int64, era history.Era) *military.NationalMilitary {
	scale := int(pop/1_500_000) + 2
	army, navy := military.DefaultRoster(era, scale)

	doctrine := "line tactics"
	switch {
	case era >= history.EraGreatWar:
		doctrine = "trench warfare"
	case era >= history.EraImperial:
		doctrine = "rifle and telegraph"
	case era >= history.EraIndustrial:
		doctrine = "railway mobilization"
	}

	supply := 0.0
	for _, u := range append(append([]military.Unit(nil), army...), navy...) {
		supply += u.SupplyCost
	}
	capacity := supply * 150

	return &military.NationalMilitary{
		Army: military.Force{
			Manpower:      military.ForceManpower(army),
			Units:         army,
			Reserves:      scale * 500,
			ConscriptPool: int(pop / 50),
			Organization:  70,
			Doctrine:      doctrine,
		},
		Navy: military.Force{
			Manpower:     military.ForceManpower(navy),
			Units:        navy,
			Reserves:     scale * 100,
			Organization: 70,
			Doctrine:     doctrine,
		},
		Logistics: military.Logistics{
			SupplyCapacity: capacity,
			SupplyCurrent:  capacity,
			SupplyLines:    scale/4 + 1,
			Materiel:       capacity * 0.8,
			Fuel:           0,
		},
		CommandQuality: b.Stats.Military,
		Fortifications: scale/2 + 1,
		WarReadiness:   60,
		Morale:         70,
	}
}

func newDemographics(b history.Baseline, pop int64, era history.Era) *nation.Demographics {
	urb := era.UrbanizationTarget() - 5
	if urb < 5 {
		urb = 5
	}

	var lit float64
	switch {
	case era >= history.EraInterwar:
		lit = 70
	case era >= history.EraGreatWar:
		lit = 60
	case era >= history.EraImperial:
		lit = 45
	case era >= history.EraIndustrial:
		lit = 30
	default:
		lit = 18
	}

	return &nation.Demographics{
		TotalPopulation: pop,
		Urbanization:    urb,
		Literacy:        lit,
		Classes: []nation.SocialClass{
			{Name: "Aristocracy", Share: 2, Wealth: 5, Influence: 5, Satisfaction: 75,
				Description: "Landed nobility and court officials"},
			{Name: "Bourgeoisie", Share: 8, Wealth: 4, Influence: 3, Satisfaction: 60,
				Description: "Merchants, financiers, and manufacturers"},
			{Name: "Artisans", Share: 10, Wealth: 3, Influence: 2, Satisfaction: 55,
				Description: "Guild craftsmen and shopkeepers"},
			{Name: "Urban Poor", Share: 15, Wealth: 1, Influence: 1, Satisfaction: 45,
				Description: "Laborers and the unemployed of the cities"},
			{Name: "Peasants", Share: 65, Wealth: 2, Influence: 1, Satisfaction: 50,
				Description: "Tenant farmers and rural laborers"},
		},
		Centers: []nation.PopulationCenter{
			{Name: b.Capital, Population: pop / 10},
		},
	}
}
