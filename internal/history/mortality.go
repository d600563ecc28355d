package history

// MortalityEvent marks a year of historically elevated death rates. The
// population engine subtracts DeathRate/10 from that year's growth rate.
type MortalityEvent struct {
	Name      string
	DeathRate float64 // excess deaths per 1000 population
}

var mortalityYears = map[int]MortalityEvent{
	1709: {Name: "Great Frost famine", DeathRate: 15},
	1740: {Name: "Great Irish Frost", DeathRate: 12},
	1771: {Name: "Russian plague", DeathRate: 10},
	1816: {Name: "Year Without a Summer", DeathRate: 8},
	1832: {Name: "Cholera pandemic", DeathRate: 9},
	1847: {Name: "Famine and typhus", DeathRate: 14},
	1855: {Name: "Third cholera pandemic", DeathRate: 7},
	1871: {Name: "Smallpox epidemic", DeathRate: 6},
	1918: {Name: "Spanish Flu", DeathRate: 25},
}

// MortalityFor returns the mortality event for a year, if one occurred.
func MortalityFor(year int) (MortalityEvent, bool) {
	e, ok := mortalityYears[year]
	return e, ok
}
