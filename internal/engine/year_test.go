package engine

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/nation"
)

func testNation(t *testing.T) *NationState {
	t.Helper()
	for _, b := range history.DefaultBaselines() {
		if b.Tag == "FRA" {
			return NewNation(b, 1750)
		}
	}
	t.Fatal("FRA baseline missing")
	return nil
}

func TestTickYear(t *testing.T) {
	lib := crisis.DefaultLibrary()

	t.Run("Input Not Mutated", func(t *testing.T) {
		st := testNation(t)
		before, err := json.Marshal(st)
		require.NoError(t, err)

		_ = TickYear(st, 1751, Flags{AtWar: true, Famine: true}, lib, fixedRoller{99}, 0)

		after, err := json.Marshal(st)
		require.NoError(t, err)
		assert.JSONEq(t, string(before), string(after))
	})

	t.Run("Events Stamped With Year And Nation", func(t *testing.T) {
		st := testNation(t)
		res := TickYear(st, 1918, Flags{AtWar: true}, lib, fixedRoller{99}, 0)
		require.NotEmpty(t, res.Events, "1918 should at least produce the mortality event")
		for _, e := range res.Events {
			assert.Equal(t, 1918, e.Year)
			assert.Equal(t, "FRA", e.Nation)
		}
	})

	t.Run("War Years Count And Reset", func(t *testing.T) {
		st := testNation(t)
		res := TickYear(st, 1751, Flags{AtWar: true}, lib, fixedRoller{99}, 0)
		assert.Equal(t, 1, res.State.WarYears)
		assert.True(t, res.State.AtWar)

		res = TickYear(res.State, 1752, Flags{AtWar: true}, lib, fixedRoller{99}, 0)
		assert.Equal(t, 2, res.State.WarYears)

		res = TickYear(res.State, 1753, Flags{}, lib, fixedRoller{99}, 0)
		assert.Zero(t, res.State.WarYears)
		assert.False(t, res.State.AtWar)
	})

	t.Run("Active Crisis Effects Reach The Ledger", func(t *testing.T) {
		st := testNation(t)
		st.Active = []crisis.ActiveConsequence{{Type: crisis.TypeFamine, StartYear: 1750, Remaining: 2}}
		before := st.Stats

		res := TickYear(st, 1751, Flags{}, lib, fixedRoller{99}, 0)

		// Famine effects: economy −1, stability −1.
		assert.Equal(t, before.Economy-1, res.State.Stats.Economy)
		assert.Equal(t, before.Stability-1, res.State.Stats.Stability)
	})

	t.Run("Active Famine Implies The Flag", func(t *testing.T) {
		st := testNation(t)
		st.Active = []crisis.ActiveConsequence{{Type: crisis.TypeFamine, StartYear: 1750, Remaining: 3}}

		res := TickYear(st, 1751, Flags{}, lib, fixedRoller{99}, 0)
		// The famine environmental penalty drags growth well below the
		// no-crisis run of the same year.
		clean := TickYear(testNation(t), 1751, Flags{}, lib, fixedRoller{99}, 0)
		assert.Less(t, res.State.Economy.GrowthRate, clean.State.Economy.GrowthRate)
	})

	t.Run("Demographics Advance", func(t *testing.T) {
		st := testNation(t)
		res := TickYear(st, 1751, Flags{}, lib, fixedRoller{99}, 0)
		assert.NotEqual(t, st.Demographics.TotalPopulation, res.State.Demographics.TotalPopulation)
	})
}

func TestMergeDeltas(t *testing.T) {
	merged := MergeDeltas(
		map[nation.Stat]int{nation.StatEconomy: -1, nation.StatStability: -1},
		map[nation.Stat]int{nation.StatEconomy: -1, nation.StatMilitary: 1},
	)
	assert.Equal(t, map[nation.Stat]int{
		nation.StatEconomy:   -2,
		nation.StatStability: -1,
		nation.StatMilitary:  1,
	}, merged)

	assert.Empty(t, MergeDeltas())
}

func TestNationStateClone(t *testing.T) {
	st := testNation(t)
	st.Active = []crisis.ActiveConsequence{{Type: crisis.TypeRiot, Remaining: 1}}

	c := st.Clone()
	c.Stats.Economy = 1
	c.Economy.GDP = 0
	c.Demographics.TotalPopulation = 0
	c.Military.Army.Units[0].Strength = 0
	c.Active[0].Remaining = 99

	assert.NotEqual(t, 1, st.Stats.Economy)
	assert.NotZero(t, st.Economy.GDP)
	assert.NotZero(t, st.Demographics.TotalPopulation)
	assert.NotZero(t, st.Military.Army.Units[0].Strength)
	assert.Equal(t, 1, st.Active[0].Remaining)
}

func TestHasActive(t *testing.T) {
	st := &NationState{Active: []crisis.ActiveConsequence{{Type: crisis.TypePlague}}}
	assert.True(t, st.HasActive(crisis.TypePlague))
	assert.False(t, st.HasActive(crisis.TypeFamine))
}
