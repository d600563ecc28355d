package crisis

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/statecraft/internal/nation"
)

func writeLib(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crises.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadLibrary(t *testing.T) {
	path := writeLib(t, `
templates:
  - type: famine
    name: Famine
    severity: severe
    description: test famine
    effects:
      economy: -1
      stability: -1
    duration: 2
    escalates_to: riot
    escalation_threshold: 60
    auto_resolve_chance: 40
  - type: riot
    name: Riot
    severity: minor
    effects:
      stability: -1
    duration: 1
triggers:
  - produces: famine
    stat_below:
      economy: 2
    probability: 30
    stat_modifiers:
      innovation: 3
  - produces: riot
    min_unrest: 50
    probability: 25
`)

	lib, err := LoadLibrary(path)
	require.NoError(t, err)

	assert.Len(t, lib.Templates, 2)
	assert.Len(t, lib.Triggers, 2)

	famine, ok := lib.Template(TypeFamine)
	require.True(t, ok)
	assert.Equal(t, "Famine", famine.Name)
	assert.Equal(t, SeveritySevere, famine.Severity)
	assert.Equal(t, TypeRiot, famine.EscalatesTo)
	assert.Equal(t, 60.0, famine.EscalationThreshold)
	assert.Equal(t, map[nation.Stat]int{nation.StatEconomy: -1, nation.StatStability: -1}, famine.Effects)

	tr := lib.Triggers[0]
	assert.Equal(t, TypeFamine, tr.Produces)
	assert.Equal(t, 2, tr.StatBelow[nation.StatEconomy])
	assert.Equal(t, 3.0, tr.StatModifiers[nation.StatInnovation])

	assert.Equal(t, 50.0, lib.Triggers[1].MinUnrest)
}

func TestLoadLibraryErrors(t *testing.T) {
	t.Run("Missing File", func(t *testing.T) {
		_, err := LoadLibrary(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("Unknown Crisis Type", func(t *testing.T) {
		path := writeLib(t, `
templates:
  - type: locusts
    name: Locusts
    severity: minor
    duration: 1
`)
		_, err := LoadLibrary(path)
		assert.ErrorContains(t, err, "unknown crisis type")
	})

	t.Run("Unknown Stat Name", func(t *testing.T) {
		path := writeLib(t, `
templates:
  - type: riot
    name: Riot
    severity: minor
    effects:
      charisma: -1
    duration: 1
`)
		_, err := LoadLibrary(path)
		assert.ErrorContains(t, err, "unknown stat")
	})

	t.Run("Duplicate Template", func(t *testing.T) {
		path := writeLib(t, `
templates:
  - type: riot
    name: Riot
    severity: minor
    duration: 1
  - type: riot
    name: Riot Again
    severity: minor
    duration: 1
`)
		_, err := LoadLibrary(path)
		assert.ErrorContains(t, err, "duplicate")
	})

	t.Run("Dangling Escalation", func(t *testing.T) {
		path := writeLib(t, `
templates:
  - type: famine
    name: Famine
    severity: severe
    duration: 2
    escalates_to: revolution
    escalation_threshold: 50
`)
		_, err := LoadLibrary(path)
		assert.ErrorContains(t, err, "undefined type")
	})
}
