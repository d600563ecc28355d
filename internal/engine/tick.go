// Turn loop — paces the simulation through calendar years.
package engine

import (
	"log/slog"
	"time"
)

// Engine drives the world forward one year at a time. A tick is cheap and
// atomic, so pause and stop only ever take effect between years.
type Engine struct {
	Speed    float64       // Multiplier: 1.0 = one year per interval, 0 = paused
	Interval time.Duration // Base interval per simulated year
	Running  bool

	// OnYear runs once per simulated year — populated during setup.
	OnYear func()
}

// NewEngine creates a turn-loop engine with default pacing.
func NewEngine() *Engine {
	return &Engine{
		Speed:    1.0,
		Interval: time.Second,
	}
}

// Run starts the loop. Blocks until Stop() is called.
func (e *Engine) Run() {
	e.Running = true
	slog.Info("turn engine started", "speed", e.Speed)

	for e.Running {
		if e.Speed <= 0 {
			// Paused — sleep briefly and check again.
			time.Sleep(100 * time.Millisecond)
			continue
		}

		start := time.Now()

		if e.OnYear != nil {
			e.OnYear()
		}

		// Sleep for the remainder of the interval, adjusted for speed.
		elapsed := time.Since(start)
		target := time.Duration(float64(e.Interval) / e.Speed)
		if elapsed < target {
			time.Sleep(target - elapsed)
		}
	}

	slog.Info("turn engine stopped")
}

// Stop halts the loop after the current year completes.
func (e *Engine) Stop() {
	e.Running = false
}
