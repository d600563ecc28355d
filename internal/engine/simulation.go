// World ties the simulated nations together and steps them each year.
package engine

import (
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/statecraft/internal/crisis"
	"github.com/talgya/statecraft/internal/entropy"
	"github.com/talgya/statecraft/internal/history"
	"github.com/talgya/statecraft/internal/nation"
)

// World holds every nation's state plus the shared immutable reference
// data. Nations never observe each other's mid-year state: a year is a
// fan-out over prior-year snapshots and a fan-in before the next begins.
type World struct {
	mu sync.RWMutex

	Seed    int64
	Year    int
	Nations []*NationState
	Lib     *crisis.Library
	Events  []Event // Recent events (trimmed to the last 1000)

	// Per-nation flags supplied by upstream subsystems (wars, disasters).
	flags map[string]Flags

	// Per-nation deterministic random streams, forked from the world seed.
	streams map[string]*entropy.Source

	// Smooth harvest/trade variance field, deterministic from the seed.
	noise opensimplex.Noise

	// Statistics tracked per year.
	Stats WorldStats
}

// WorldStats tracks aggregate figures across all nations.
type WorldStats struct {
	TotalPopulation int64   `json:"total_population"`
	NationsAtWar    int     `json:"nations_at_war"`
	ActiveCrises    int     `json:"active_crises"`
	AvgUnrest       float64 `json:"avg_unrest"`
}

// NewWorld builds a world at startYear from historical baselines. Nations
// whose first baseline anchor lies after startYear are left out. Seed 0
// draws a fresh root seed, making the run non-reproducible.
func NewWorld(seed int64, lib *crisis.Library, baselines []history.Baseline, startYear int) (*World, error) {
	if err := lib.Validate(); err != nil {
		return nil, fmt.Errorf("crisis reference data: %w", err)
	}

	root := entropy.NewSource(seed)
	w := &World{
		Seed:    root.Seed(),
		Year:    startYear,
		Lib:     lib,
		flags:   make(map[string]Flags),
		streams: make(map[string]*entropy.Source),
		noise:   opensimplex.NewNormalized(root.Seed()),
	}

	for _, b := range baselines {
		if len(b.Anchors) == 0 || b.Anchors[0].Year > startYear {
			continue
		}
		n := NewNation(b, startYear)
		w.Nations = append(w.Nations, n)
		w.streams[n.Tag] = root.Fork(n.Tag)
	}
	if len(w.Nations) == 0 {
		return nil, fmt.Errorf("no baseline covers start year %d", startYear)
	}

	w.updateStats()
	return w, nil
}

// Restore replaces the world's nations and year with a saved snapshot.
// Random streams are re-forked from the world seed, so a restored run
// stays seeded but does not replay the interrupted run's exact draws.
func (w *World) Restore(year int, states []*NationState) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.Year = year
	w.Nations = states

	root := entropy.NewSource(w.Seed)
	for _, n := range states {
		if _, ok := w.streams[n.Tag]; !ok {
			w.streams[n.Tag] = root.Fork(n.Tag)
		}
	}
	w.updateStats()
}

// SetFlags records the environmental flags a nation carries into its next
// year. War years are counted by the tick itself.
func (w *World) SetFlags(tag string, f Flags) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.flags[tag] = f
}

// StepYear advances every nation by one year. Each nation ticks in its own
// goroutine against its prior-year snapshot and its own random stream; the
// fan-in completes before any result becomes visible.
func (w *World) StepYear() []TickResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.Year++
	results := make([]TickResult, len(w.Nations))

	var wg sync.WaitGroup
	for i, n := range w.Nations {
		harvest := w.harvestSwing(n.Tag)
		wg.Add(1)
		go func(i int, n *NationState, harvest float64) {
			defer wg.Done()
			results[i] = TickYear(n, w.Year, w.flags[n.Tag], w.Lib, w.streams[n.Tag], harvest)
		}(i, n, harvest)
	}
	wg.Wait()

	for i := range results {
		w.Nations[i] = results[i].State
		w.Events = append(w.Events, results[i].Events...)
	}

	// Trim old events to prevent unbounded growth (keep last 1000).
	if len(w.Events) > 1000 {
		w.Events = w.Events[len(w.Events)-1000:]
	}

	w.updateStats()
	w.logYear(results)
	return results
}

// harvestSwing samples the noise field for a nation-year, yielding a smooth
// signed growth swing of at most ±0.4 percentage points.
func (w *World) harvestSwing(tag string) float64 {
	h := fnv.New32a()
	h.Write([]byte(tag))
	lane := float64(h.Sum32()%97) * 3.1
	v := w.noise.Eval2(float64(w.Year+1)*0.37, lane)
	return (v - 0.5) * 0.8
}

// NationByTag returns a deep copy of one nation's current state.
func (w *World) NationByTag(tag string) (*NationState, bool) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	for _, n := range w.Nations {
		if n.Tag == tag {
			return n.Clone(), true
		}
	}
	return nil, false
}

// Snapshot returns deep copies of every nation plus the current year,
// safe to read while the world keeps stepping.
func (w *World) Snapshot() (int, []*NationState) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]*NationState, len(w.Nations))
	for i, n := range w.Nations {
		out[i] = n.Clone()
	}
	return w.Year, out
}

// CurrentYear returns the year the world has simulated through.
func (w *World) CurrentYear() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.Year
}

// Statistics returns the aggregate figures from the most recent year.
func (w *World) Statistics() WorldStats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.Stats
}

// RecentEvents returns up to limit of the newest events, newest last.
func (w *World) RecentEvents(limit int) []Event {
	w.mu.RLock()
	defer w.mu.RUnlock()
	start := 0
	if len(w.Events) > limit {
		start = len(w.Events) - limit
	}
	return append([]Event(nil), w.Events[start:]...)
}

func (w *World) updateStats() {
	var st WorldStats
	var unrestSum float64
	var unrestN int
	for _, n := range w.Nations {
		if n.Demographics != nil {
			st.TotalPopulation += n.Demographics.TotalPopulation
			unrestSum += nation.ClassUnrest(n.Demographics.Classes)
			unrestN++
		}
		if n.AtWar {
			st.NationsAtWar++
		}
		st.ActiveCrises += len(n.Active)
	}
	if unrestN > 0 {
		st.AvgUnrest = unrestSum / float64(unrestN)
	}
	w.Stats = st
}

func (w *World) logYear(results []TickResult) {
	spawned, resolved, escalated := 0, 0, 0
	for _, r := range results {
		spawned += len(r.Transitions.Spawned)
		resolved += len(r.Transitions.Resolved)
		escalated += len(r.Transitions.Escalated)
	}

	slog.Info("yearly report",
		"year", w.Year,
		"era", history.EraForYear(w.Year).String(),
		"population", w.Stats.TotalPopulation,
		"at_war", w.Stats.NationsAtWar,
		"active_crises", w.Stats.ActiveCrises,
		"avg_unrest", fmt.Sprintf("%.1f", w.Stats.AvgUnrest),
		"crises_spawned", spawned,
		"crises_resolved", resolved,
		"crises_escalated", escalated,
	)

	for _, r := range results {
		for _, e := range r.Events {
			if e.Category == "crisis" {
				slog.Info("event", "nation", e.Nation, "category", e.Category, "description", e.Description)
			}
		}
	}
}
