// Package history holds the immutable historical reference tables: era
// constants, mortality years, and per-nation baselines used to initialize a
// nation. Loaded once, read-only, shared by every simulated nation.
package history

// Era partitions the simulated timeline. Era constants drive economic growth
// bonuses, population growth tables, and urbanization targets.
type Era uint8

const (
	EraEnlightenment Era = iota // 1700–1788
	EraRevolutionary            // 1789–1814
	EraIndustrial               // 1815–1869
	EraImperial                 // 1870–1913
	EraGreatWar                 // 1914–1918
	EraInterwar                 // 1919–1938
	EraSecondWar                // 1939–1945
)

func (e Era) String() string {
	switch e {
	case EraEnlightenment:
		return "enlightenment"
	case EraRevolutionary:
		return "revolutionary"
	case EraIndustrial:
		return "industrial"
	case EraImperial:
		return "imperial"
	case EraGreatWar:
		return "great_war"
	case EraInterwar:
		return "interwar"
	case EraSecondWar:
		return "second_war"
	}
	return "unknown"
}

// EraForYear maps a calendar year to its era. Years past the table's end
// stay in the final era.
func EraForYear(year int) Era {
	switch {
	case year < 1789:
		return EraEnlightenment
	case year < 1815:
		return EraRevolutionary
	case year < 1870:
		return EraIndustrial
	case year < 1914:
		return EraImperial
	case year < 1919:
		return EraGreatWar
	case year < 1939:
		return EraInterwar
	default:
		return EraSecondWar
	}
}

// GrowthBonus is the era's fixed contribution to annual GDP growth, in
// percentage points. Industrial eras run hot; world-war eras contract.
func (e Era) GrowthBonus() float64 {
	switch e {
	case EraEnlightenment:
		return 0.2
	case EraRevolutionary:
		return 0.0
	case EraIndustrial:
		return 0.8
	case EraImperial:
		return 0.6
	case EraGreatWar:
		return -1.0
	case EraInterwar:
		return 0.1
	case EraSecondWar:
		return -1.2
	}
	return 0
}

// PopulationRates holds an era's base, urban, and rural growth percentages.
type PopulationRates struct {
	Base  float64
	Urban float64
	Rural float64
}

var popRates = map[Era]PopulationRates{
	EraEnlightenment: {Base: 0.5, Urban: 0.4, Rural: 0.6},
	EraRevolutionary: {Base: 0.4, Urban: 0.5, Rural: 0.4},
	EraIndustrial:    {Base: 0.9, Urban: 1.4, Rural: 0.6},
	EraImperial:      {Base: 1.0, Urban: 1.6, Rural: 0.5},
	EraGreatWar:      {Base: 0.1, Urban: 0.3, Rural: 0.0},
	EraInterwar:      {Base: 0.7, Urban: 1.0, Rural: 0.3},
	EraSecondWar:     {Base: 0.0, Urban: 0.2, Rural: -0.1},
}

// Rates returns the era's population growth table.
func (e Era) Rates() PopulationRates {
	return popRates[e]
}

// UrbanizationTarget is the share of population an era's economy pulls
// toward the cities. Urbanization creeps toward this each year.
func (e Era) UrbanizationTarget() float64 {
	switch e {
	case EraEnlightenment:
		return 12
	case EraRevolutionary:
		return 15
	case EraIndustrial:
		return 28
	case EraImperial:
		return 42
	case EraGreatWar:
		return 45
	case EraInterwar:
		return 52
	case EraSecondWar:
		return 55
	}
	return 10
}
