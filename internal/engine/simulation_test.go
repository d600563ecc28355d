package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/history"
)

func newTestWorld(t *testing.T, seed int64, startYear int) *World {
	t.Helper()
	w, err := NewWorld(seed, crisis.DefaultLibrary(), history.DefaultBaselines(), startYear)
	require.NoError(t, err)
	return w
}

func TestNewWorld(t *testing.T) {
	t.Run("Late Entrants Are Skipped", func(t *testing.T) {
		w := newTestWorld(t, 42, 1700)
		for _, n := range w.Nations {
			assert.NotEqual(t, "USA", n.Tag, "USA enters in 1790, not 1700")
		}

		w = newTestWorld(t, 42, 1800)
		var found bool
		for _, n := range w.Nations {
			if n.Tag == "USA" {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("No Coverage Is An Error", func(t *testing.T) {
		_, err := NewWorld(42, crisis.DefaultLibrary(), history.DefaultBaselines(), 1500)
		assert.Error(t, err)
	})

	t.Run("Invalid Library Is An Error", func(t *testing.T) {
		bad := &crisis.Library{
			Templates: map[crisis.Type]crisis.Consequence{
				crisis.TypeRiot: {Type: crisis.TypeRiot, Duration: 0},
			},
		}
		_, err := NewWorld(42, bad, history.DefaultBaselines(), 1700)
		assert.Error(t, err)
	})

	t.Run("Zero Seed Draws One", func(t *testing.T) {
		w := newTestWorld(t, 0, 1700)
		assert.NotZero(t, w.Seed)
	})
}

func TestStepYearDeterminism(t *testing.T) {
	a := newTestWorld(t, 1789, 1700)
	b := newTestWorld(t, 1789, 1700)

	for i := 0; i < 10; i++ {
		a.StepYear()
		b.StepYear()
	}

	assert.Equal(t, a.CurrentYear(), b.CurrentYear())
	_, sa := a.Snapshot()
	_, sb := b.Snapshot()
	require.Equal(t, len(sa), len(sb))
	for i := range sa {
		assert.Equal(t, sa[i].Stats, sb[i].Stats, "%s stats diverged", sa[i].Tag)
		assert.Equal(t, sa[i].Economy.GDP, sb[i].Economy.GDP, "%s GDP diverged", sa[i].Tag)
		assert.Equal(t, sa[i].Active, sb[i].Active, "%s crises diverged", sa[i].Tag)
		assert.Equal(t, sa[i].Demographics.TotalPopulation, sb[i].Demographics.TotalPopulation)
	}
	assert.Equal(t, a.RecentEvents(100), b.RecentEvents(100))
}

func TestStepYearAdvances(t *testing.T) {
	w := newTestWorld(t, 7, 1700)
	results := w.StepYear()

	assert.Equal(t, 1701, w.CurrentYear())
	assert.Len(t, results, len(w.Nations))
	for _, r := range results {
		assert.NotNil(t, r.State)
	}
}

func TestSetFlagsReachTheTick(t *testing.T) {
	w := newTestWorld(t, 7, 1700)
	w.SetFlags("GBR", Flags{AtWar: true})
	w.StepYear()

	st, ok := w.NationByTag("GBR")
	require.True(t, ok)
	assert.True(t, st.AtWar)
	assert.Equal(t, 1, st.WarYears)

	fra, ok := w.NationByTag("FRA")
	require.True(t, ok)
	assert.False(t, fra.AtWar)
}

func TestSnapshotIsolation(t *testing.T) {
	w := newTestWorld(t, 7, 1700)

	st, ok := w.NationByTag("GBR")
	require.True(t, ok)
	st.Stats.Economy = 1
	st.Demographics.TotalPopulation = 0

	again, _ := w.NationByTag("GBR")
	assert.NotEqual(t, 1, again.Stats.Economy)
	assert.NotZero(t, again.Demographics.TotalPopulation)

	_, all := w.Snapshot()
	all[0].Stats.Economy = 1
	verify, _ := w.NationByTag(all[0].Tag)
	assert.NotEqual(t, 1, verify.Stats.Economy)
}

func TestRecentEventsLimit(t *testing.T) {
	w := newTestWorld(t, 7, 1700)
	for i := 0; i < 30; i++ {
		w.StepYear()
	}
	events := w.RecentEvents(5)
	assert.LessOrEqual(t, len(events), 5)
}

func TestRestore(t *testing.T) {
	w := newTestWorld(t, 7, 1700)
	w.StepYear()
	w.StepYear()
	_, saved := w.Snapshot()
	year := w.CurrentYear()

	fresh := newTestWorld(t, 7, 1700)
	fresh.Restore(year, saved)

	assert.Equal(t, year, fresh.CurrentYear())
	_, restored := fresh.Snapshot()
	require.Equal(t, len(saved), len(restored))
	for i := range saved {
		assert.Equal(t, saved[i].Stats, restored[i].Stats)
	}

	// A restored world keeps stepping.
	fresh.StepYear()
	assert.Equal(t, year+1, fresh.CurrentYear())
}

func TestWorldStatistics(t *testing.T) {
	w := newTestWorld(t, 7, 1700)
	stats := w.Statistics()
	assert.Positive(t, stats.TotalPopulation)
	assert.Zero(t, stats.NationsAtWar)

	w.SetFlags("GBR", Flags{AtWar: true})
	w.StepYear()
	assert.Equal(t, 1, w.Statistics().NationsAtWar)
}
