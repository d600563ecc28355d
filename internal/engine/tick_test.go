package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEngineRunsYears(t *testing.T) {
	eng := NewEngine()
	eng.Interval = time.Millisecond
	eng.Speed = 10

	years := 0
	eng.OnYear = func() {
		years++
		if years >= 3 {
			eng.Stop()
		}
	}

	eng.Run() // blocks until Stop
	assert.Equal(t, 3, years)
	assert.False(t, eng.Running)
}

func TestEngineNilCallback(t *testing.T) {
	eng := NewEngine()
	eng.Interval = time.Millisecond

	go func() {
		time.Sleep(10 * time.Millisecond)
		eng.Stop()
	}()
	eng.Run() // must not panic without an OnYear
}

func TestEnginePausedSpeed(t *testing.T) {
	eng := NewEngine()
	eng.Interval = time.Millisecond
	eng.Speed = 0 // paused

	ticked := false
	eng.OnYear = func() { ticked = true }

	go func() {
		time.Sleep(20 * time.Millisecond)
		eng.Stop()
	}()
	eng.Run()
	assert.False(t, ticked, "a paused engine must not tick")
}
