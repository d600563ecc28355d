package economy

import "fmt"

// Policy names a fiscal or trade lever the government can pull.
type Policy uint8

const (
	PolicyRaiseTaxes Policy = iota
	PolicyLowerTaxes
	PolicyRaiseTariffs
	PolicyFreeTrade
	PolicyAusterity
	PolicyStimulus
)

func (p Policy) String() string {
	switch p {
	case PolicyRaiseTaxes:
		return "raise_taxes"
	case PolicyLowerTaxes:
		return "lower_taxes"
	case PolicyRaiseTariffs:
		return "raise_tariffs"
	case PolicyFreeTrade:
		return "free_trade"
	case PolicyAusterity:
		return "austerity"
	case PolicyStimulus:
		return "stimulus"
	}
	return "unknown"
}

// ApplyPolicy is a pure transform: it multiplies the affected revenue,
// expenditure, and trade fields by fixed factors, recomputes the derived
// budget fields, and returns the updated economy with a short narrative
// line for the presentation layer. The input is never mutated.
func ApplyPolicy(e NationalEconomy, p Policy) (NationalEconomy, string) {
	var note string
	switch p {
	case PolicyRaiseTaxes:
		e.Revenue.Taxes *= 1.20
		note = "Tax collectors fan out across the provinces; the treasury swells and tempers fray."
	case PolicyLowerTaxes:
		e.Revenue.Taxes *= 0.85
		note = "Tax relief is proclaimed in every market square to general rejoicing."
	case PolicyRaiseTariffs:
		e.Trade.TariffRate *= 1.50
		e.Revenue.Tariffs *= 1.40
		e.Trade.Imports *= 0.85
		note = "Customs houses double their take as foreign goods grow dear."
	case PolicyFreeTrade:
		e.Trade.TariffRate *= 0.50
		e.Revenue.Tariffs *= 0.60
		e.Trade.Imports *= 1.20
		e.Trade.Exports *= 1.15
		note = "The ports are thrown open; merchantmen crowd the harbors."
	case PolicyAusterity:
		e.Expenditure.Administration *= 0.80
		e.Expenditure.Court *= 0.70
		e.Expenditure.Social *= 0.75
		note = "Ministries are shuttered and pensions trimmed in the name of solvency."
	case PolicyStimulus:
		e.Expenditure.Infrastructure *= 1.50
		e.Expenditure.Social *= 1.30
		note = "Public works spring up along every road and canal."
	default:
		return e, fmt.Sprintf("No such policy (%d); the ministers shuffle their papers.", p)
	}
	e.Recalculate()
	return e, note
}
