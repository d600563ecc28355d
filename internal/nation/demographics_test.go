package nation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassUnrest(t *testing.T) {
	t.Run("Fully Satisfied", func(t *testing.T) {
		classes := []SocialClass{{Name: "Everyone", Share: 100, Wealth: 3, Satisfaction: 100}}
		assert.Equal(t, 0.0, ClassUnrest(classes))
	})

	t.Run("Fully Miserable", func(t *testing.T) {
		classes := []SocialClass{{Name: "Everyone", Share: 100, Wealth: 3, Satisfaction: 0}}
		assert.Equal(t, 100.0, ClassUnrest(classes))
	})

	t.Run("Poor Classes Weigh More", func(t *testing.T) {
		// Equal shares, the poor class unhappy, the rich one content.
		// Weight share×(6−wealth) makes the poor class dominate.
		classes := []SocialClass{
			{Name: "Rich", Share: 50, Wealth: 5, Satisfaction: 100},
			{Name: "Poor", Share: 50, Wealth: 1, Satisfaction: 0},
		}
		// Weights: rich 50, poor 250 → unrest = 100×250/300.
		assert.InDelta(t, 83.33, ClassUnrest(classes), 0.01)
	})

	t.Run("No Classes", func(t *testing.T) {
		assert.Equal(t, 0.0, ClassUnrest(nil))
	})
}

func TestCheckClassConflict(t *testing.T) {
	mk := func(richSat, poorSat, midSat float64) []SocialClass {
		return []SocialClass{
			{Name: "Aristocracy", Wealth: 5, Satisfaction: richSat},
			{Name: "Artisans", Wealth: 3, Satisfaction: midSat},
			{Name: "Peasants", Wealth: 1, Satisfaction: poorSat},
		}
	}

	t.Run("Class War At Gap 50", func(t *testing.T) {
		assert.Equal(t, ConflictClassWar, CheckClassConflict(mk(80, 30, 60)))
	})

	t.Run("Riots At Gap 30", func(t *testing.T) {
		assert.Equal(t, ConflictRiots, CheckClassConflict(mk(70, 40, 60)))
	})

	t.Run("No Conflict Below Gap 30", func(t *testing.T) {
		assert.Equal(t, ConflictNone, CheckClassConflict(mk(60, 40, 60)))
	})

	t.Run("Liberal Uprising From The Middle", func(t *testing.T) {
		assert.Equal(t, ConflictLiberalUprising, CheckClassConflict(mk(50, 40, 30)))
	})

	t.Run("Gap Takes Precedence Over Middle", func(t *testing.T) {
		assert.Equal(t, ConflictClassWar, CheckClassConflict(mk(90, 20, 30)))
	})
}

func TestAdjustSatisfaction(t *testing.T) {
	classes := []SocialClass{
		{Name: "Peasants", Satisfaction: 50},
		{Name: "Urban Poor", Satisfaction: 5},
	}

	AdjustSatisfaction(classes, "Peasants", -8)
	assert.Equal(t, 42.0, classes[0].Satisfaction)

	// Clamped at zero.
	AdjustSatisfaction(classes, "Urban Poor", -10)
	assert.Equal(t, 0.0, classes[1].Satisfaction)

	// Unknown names are ignored.
	AdjustSatisfaction(classes, "Clergy", 10)
	assert.Equal(t, 42.0, classes[0].Satisfaction)
}

func TestDemographicsClone(t *testing.T) {
	d := &Demographics{
		TotalPopulation: 1_000_000,
		Classes:         []SocialClass{{Name: "Peasants", Satisfaction: 50}},
		Centers:         []PopulationCenter{{Name: "Capital", Population: 100_000}},
	}

	c := d.Clone()
	c.Classes[0].Satisfaction = 10
	c.Centers[0].Population = 5

	assert.Equal(t, 50.0, d.Classes[0].Satisfaction)
	assert.Equal(t, int64(100_000), d.Centers[0].Population)

	var nilDemo *Demographics
	assert.Nil(t, nilDemo.Clone())
}
