// Package economy defines the national economy record and the pure policy
// transforms over it. The yearly evolution of these figures lives in
// internal/engine; this package owns the shapes and their derived fields.
package economy

// NationalEconomy aggregates a nation's economic state. Created once from
// historical baselines at nation initialization, then mutated once per
// simulated year.
type NationalEconomy struct {
	GDP          float64 `json:"gdp"` // millions of currency units
	GDPPerCapita float64 `json:"gdp_per_capita"`
	GrowthRate   float64 `json:"growth_rate"` // % per year, signed

	Budget      Budget      `json:"budget"`
	Revenue     Revenue     `json:"revenue"`
	Expenditure Expenditure `json:"expenditure"`
	Monetary    Monetary    `json:"monetary"`
	Trade       Trade       `json:"trade"`
	Sectors     Sectors     `json:"sectors"`
	Labor       Labor       `json:"labor"`
	Infra       Infra       `json:"infrastructure"`
}

// Budget holds the fiscal aggregates. Balance, DebtToGDP, and Interest are
// derived; Recalculate keeps them consistent with the breakdowns.
type Budget struct {
	Revenue     float64 `json:"revenue"`
	Expenditure float64 `json:"expenditure"`
	Balance     float64 `json:"balance"`
	Debt        float64 `json:"debt"`
	DebtToGDP   float64 `json:"debt_to_gdp"` // %
	Interest    float64 `json:"interest"`    // annual interest payments
}

// Revenue breaks state income down by source.
type Revenue struct {
	Taxes            float64 `json:"taxes"`
	Tariffs          float64 `json:"tariffs"`
	StateEnterprises float64 `json:"state_enterprises"`
	Other            float64 `json:"other"`
}

func (r Revenue) Total() float64 {
	return r.Taxes + r.Tariffs + r.StateEnterprises + r.Other
}

// Expenditure breaks state spending down by purpose.
type Expenditure struct {
	Military       float64 `json:"military"`
	Administration float64 `json:"administration"`
	Infrastructure float64 `json:"infrastructure"`
	Court          float64 `json:"court"`
	DebtService    float64 `json:"debt_service"`
	Social         float64 `json:"social"`
}

func (e Expenditure) Total() float64 {
	return e.Military + e.Administration + e.Infrastructure + e.Court + e.DebtService + e.Social
}

// Monetary holds currency figures.
type Monetary struct {
	Currency     string  `json:"currency"`
	Inflation    float64 `json:"inflation"`     // % per year
	InterestRate float64 `json:"interest_rate"` // % on sovereign debt
	GoldReserves float64 `json:"gold_reserves"` // tons
}

// Trade holds external trade figures.
type Trade struct {
	Exports    float64 `json:"exports"`
	Imports    float64 `json:"imports"`
	Balance    float64 `json:"balance"`
	TariffRate float64 `json:"tariff_rate"` // %
}

// Sectors is the composition of output; the four shares sum to ~100.
type Sectors struct {
	Agriculture   float64 `json:"agriculture"`
	Manufacturing float64 `json:"manufacturing"`
	Services      float64 `json:"services"`
	Mining        float64 `json:"mining"`
}

// Labor holds workforce figures.
type Labor struct {
	Workforce    int64   `json:"workforce"`
	Unemployment float64 `json:"unemployment"` // %
}

// Infra counts infrastructure stock.
type Infra struct {
	Roads     int `json:"roads"`     // km, thousands
	Railways  int `json:"railways"`  // km, thousands
	Canals    int `json:"canals"`    // km, hundreds
	Ports     int `json:"ports"`
	Telegraph int `json:"telegraph"` // km of line, thousands
}

// Recalculate refreshes every derived field from the breakdowns and the
// current GDP and debt: budget totals, balance, trade balance, debt ratio,
// and interest payments.
func (e *NationalEconomy) Recalculate() {
	e.Budget.Interest = e.Budget.Debt * e.Monetary.InterestRate / 100
	e.Expenditure.DebtService = e.Budget.Interest
	e.Budget.Revenue = e.Revenue.Total()
	e.Budget.Expenditure = e.Expenditure.Total()
	e.Budget.Balance = e.Budget.Revenue - e.Budget.Expenditure
	e.Trade.Balance = e.Trade.Exports - e.Trade.Imports
	if e.GDP > 0 {
		e.Budget.DebtToGDP = e.Budget.Debt / e.GDP * 100
	} else {
		e.Budget.DebtToGDP = 0
	}
}
