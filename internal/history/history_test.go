package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEraForYear(t *testing.T) {
	cases := []struct {
		year int
		want Era
	}{
		{1700, EraEnlightenment},
		{1788, EraEnlightenment},
		{1789, EraRevolutionary},
		{1814, EraRevolutionary},
		{1815, EraIndustrial},
		{1869, EraIndustrial},
		{1870, EraImperial},
		{1913, EraImperial},
		{1914, EraGreatWar},
		{1918, EraGreatWar},
		{1919, EraInterwar},
		{1938, EraInterwar},
		{1939, EraSecondWar},
		{1945, EraSecondWar},
		{2000, EraSecondWar}, // past the table's end, final era holds
	}
	for _, c := range cases {
		assert.Equal(t, c.want, EraForYear(c.year), "year %d", c.year)
	}
}

func TestEraTables(t *testing.T) {
	// Industrial eras run hot, world wars contract.
	assert.Greater(t, EraIndustrial.GrowthBonus(), EraEnlightenment.GrowthBonus())
	assert.Negative(t, EraGreatWar.GrowthBonus())
	assert.Negative(t, EraSecondWar.GrowthBonus())

	// Urbanization targets rise monotonically through the timeline.
	eras := []Era{EraEnlightenment, EraRevolutionary, EraIndustrial, EraImperial, EraGreatWar, EraInterwar, EraSecondWar}
	for i := 1; i < len(eras); i++ {
		assert.GreaterOrEqual(t, eras[i].UrbanizationTarget(), eras[i-1].UrbanizationTarget())
	}

	// Every era has a population table entry.
	for _, e := range eras {
		r := e.Rates()
		assert.NotEqual(t, PopulationRates{}, r, "era %s has no rates", e)
	}
}

func TestMortalityFor(t *testing.T) {
	flu, ok := MortalityFor(1918)
	require.True(t, ok)
	assert.Equal(t, "Spanish Flu", flu.Name)
	assert.Equal(t, 25.0, flu.DeathRate)

	_, ok = MortalityFor(1920)
	assert.False(t, ok)
}

func TestBaselineAt(t *testing.T) {
	b := Baseline{
		Tag: "TST",
		Anchors: []Anchor{
			{Year: 1700, Population: 8_500_000, GDP: 1_200},
			{Year: 1800, Population: 16_000_000, GDP: 3_600},
		},
	}

	t.Run("Exact Anchor", func(t *testing.T) {
		pop, gdp := b.At(1700)
		assert.Equal(t, int64(8_500_000), pop)
		assert.Equal(t, 1_200.0, gdp)
	})

	t.Run("Midpoint Interpolation", func(t *testing.T) {
		pop, gdp := b.At(1750)
		assert.Equal(t, int64(12_250_000), pop)
		assert.Equal(t, 2_400.0, gdp)
	})

	t.Run("Before First Anchor", func(t *testing.T) {
		pop, _ := b.At(1600)
		assert.Equal(t, int64(8_500_000), pop)
	})

	t.Run("After Last Anchor", func(t *testing.T) {
		pop, _ := b.At(1900)
		assert.Equal(t, int64(16_000_000), pop)
	})

	t.Run("No Anchors", func(t *testing.T) {
		pop, gdp := Baseline{}.At(1800)
		assert.Zero(t, pop)
		assert.Zero(t, gdp)
	})
}

func TestDefaultBaselines(t *testing.T) {
	bs := DefaultBaselines()
	require.NotEmpty(t, bs)

	seen := make(map[string]bool)
	for _, b := range bs {
		assert.False(t, seen[b.Tag], "duplicate tag %s", b.Tag)
		seen[b.Tag] = true
		require.NotEmpty(t, b.Anchors, "%s has no anchors", b.Tag)
		for i := 1; i < len(b.Anchors); i++ {
			assert.Greater(t, b.Anchors[i].Year, b.Anchors[i-1].Year, "%s anchors out of order", b.Tag)
		}
		clamped := b.Stats.Clamped()
		assert.Equal(t, b.Stats, clamped, "%s baseline stats outside bounds", b.Tag)
	}

	// The United States enters the roster late.
	assert.True(t, seen["USA"])
	for _, b := range bs {
		if b.Tag == "USA" {
			assert.Greater(t, b.Anchors[0].Year, 1700)
		}
	}
}
