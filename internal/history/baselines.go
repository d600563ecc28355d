package history

import "github.com/talgya/statecraft/internal/nation"

// Anchor pins a nation's population and GDP at a historical year.
// GDP figures are millions of the nation's currency unit.
type Anchor struct {
	Year       int
	Population int64
	GDP        float64
}

// Baseline is the historical starting material for one nation. Values
// between anchors are linearly interpolated; outside the anchor range the
// nearest anchor holds.
type Baseline struct {
	Tag      string
	Name     string
	Currency string
	Capital  string
	Stats    nation.Stats
	Anchors  []Anchor // ascending by year
}

// At interpolates population and GDP for a year.
func (b Baseline) At(year int) (population int64, gdp float64) {
	if len(b.Anchors) == 0 {
		return 0, 0
	}
	first := b.Anchors[0]
	if year <= first.Year {
		return first.Population, first.GDP
	}
	last := b.Anchors[len(b.Anchors)-1]
	if year >= last.Year {
		return last.Population, last.GDP
	}
	for i := 1; i < len(b.Anchors); i++ {
		hi := b.Anchors[i]
		if year > hi.Year {
			continue
		}
		lo := b.Anchors[i-1]
		f := float64(year-lo.Year) / float64(hi.Year-lo.Year)
		pop := float64(lo.Population) + f*float64(hi.Population-lo.Population)
		gdp := lo.GDP + f*(hi.GDP-lo.GDP)
		return int64(pop), gdp
	}
	return last.Population, last.GDP
}

// DefaultBaselines returns the built-in great-power roster.
func DefaultBaselines() []Baseline {
	return []Baseline{
		{
			Tag: "GBR", Name: "Great Britain", Currency: "pound", Capital: "London",
			Stats: nation.Stats{Military: 4, Economy: 4, Stability: 4, Innovation: 4, Prestige: 4},
			Anchors: []Anchor{
				{Year: 1700, Population: 8_500_000, GDP: 1_200},
				{Year: 1800, Population: 16_000_000, GDP: 3_600},
				{Year: 1850, Population: 27_000_000, GDP: 9_500},
				{Year: 1900, Population: 41_000_000, GDP: 28_000},
				{Year: 1945, Population: 49_000_000, GDP: 52_000},
			},
		},
		{
			Tag: "FRA", Name: "France", Currency: "franc", Capital: "Paris",
			Stats: nation.Stats{Military: 4, Economy: 3, Stability: 3, Innovation: 4, Prestige: 4},
			Anchors: []Anchor{
				{Year: 1700, Population: 21_000_000, GDP: 2_100},
				{Year: 1800, Population: 29_000_000, GDP: 4_200},
				{Year: 1850, Population: 36_000_000, GDP: 8_800},
				{Year: 1900, Population: 40_500_000, GDP: 20_000},
				{Year: 1945, Population: 40_000_000, GDP: 29_000},
			},
		},
		{
			Tag: "PRU", Name: "Prussia", Currency: "thaler", Capital: "Berlin",
			Stats: nation.Stats{Military: 5, Economy: 3, Stability: 4, Innovation: 3, Prestige: 3},
			Anchors: []Anchor{
				{Year: 1700, Population: 2_200_000, GDP: 280},
				{Year: 1800, Population: 9_500_000, GDP: 1_300},
				{Year: 1850, Population: 16_000_000, GDP: 4_100},
				{Year: 1900, Population: 56_000_000, GDP: 26_000},
				{Year: 1945, Population: 65_000_000, GDP: 48_000},
			},
		},
		{
			Tag: "AUS", Name: "Austria", Currency: "gulden", Capital: "Vienna",
			Stats: nation.Stats{Military: 3, Economy: 3, Stability: 3, Innovation: 3, Prestige: 4},
			Anchors: []Anchor{
				{Year: 1700, Population: 11_000_000, GDP: 1_100},
				{Year: 1800, Population: 24_000_000, GDP: 2_600},
				{Year: 1850, Population: 31_000_000, GDP: 5_600},
				{Year: 1900, Population: 47_000_000, GDP: 14_000},
				{Year: 1918, Population: 51_000_000, GDP: 13_000},
			},
		},
		{
			Tag: "RUS", Name: "Russia", Currency: "ruble", Capital: "Saint Petersburg",
			Stats: nation.Stats{Military: 4, Economy: 2, Stability: 3, Innovation: 2, Prestige: 3},
			Anchors: []Anchor{
				{Year: 1700, Population: 14_000_000, GDP: 1_000},
				{Year: 1800, Population: 37_000_000, GDP: 2_800},
				{Year: 1850, Population: 68_000_000, GDP: 6_200},
				{Year: 1900, Population: 132_000_000, GDP: 18_000},
				{Year: 1945, Population: 170_000_000, GDP: 40_000},
			},
		},
		{
			Tag: "OTT", Name: "Ottoman Empire", Currency: "piastre", Capital: "Constantinople",
			Stats: nation.Stats{Military: 3, Economy: 2, Stability: 2, Innovation: 2, Prestige: 3},
			Anchors: []Anchor{
				{Year: 1700, Population: 24_000_000, GDP: 1_600},
				{Year: 1800, Population: 25_000_000, GDP: 1_900},
				{Year: 1850, Population: 27_000_000, GDP: 2_600},
				{Year: 1900, Population: 25_000_000, GDP: 3_900},
				{Year: 1920, Population: 14_000_000, GDP: 2_800},
			},
		},
		{
			Tag: "ESP", Name: "Spain", Currency: "real", Capital: "Madrid",
			Stats: nation.Stats{Military: 3, Economy: 2, Stability: 2, Innovation: 2, Prestige: 3},
			Anchors: []Anchor{
				{Year: 1700, Population: 7_500_000, GDP: 900},
				{Year: 1800, Population: 11_500_000, GDP: 1_500},
				{Year: 1850, Population: 15_000_000, GDP: 2_400},
				{Year: 1900, Population: 18_600_000, GDP: 5_200},
				{Year: 1945, Population: 27_000_000, GDP: 8_900},
			},
		},
		{
			Tag: "USA", Name: "United States", Currency: "dollar", Capital: "Washington",
			Stats: nation.Stats{Military: 2, Economy: 4, Stability: 4, Innovation: 4, Prestige: 2},
			Anchors: []Anchor{
				{Year: 1790, Population: 3_900_000, GDP: 450},
				{Year: 1850, Population: 23_000_000, GDP: 7_000},
				{Year: 1900, Population: 76_000_000, GDP: 52_000},
				{Year: 1945, Population: 140_000_000, GDP: 223_000},
			},
		},
	}
}
