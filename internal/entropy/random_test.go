package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceDeterminism(t *testing.T) {
	a := NewSource(42)
	b := NewSource(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.Percent(), b.Percent(), "draw %d diverged", i)
	}
}

func TestPercentRange(t *testing.T) {
	s := NewSource(7)
	for i := 0; i < 200; i++ {
		v := s.Percent()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 100.0)
	}
}

func TestFork(t *testing.T) {
	t.Run("Same Label Same Stream", func(t *testing.T) {
		a := NewSource(42).Fork("GBR")
		b := NewSource(42).Fork("GBR")
		for i := 0; i < 20; i++ {
			assert.Equal(t, a.Float(), b.Float())
		}
	})

	t.Run("Different Labels Different Seeds", func(t *testing.T) {
		root := NewSource(42)
		assert.NotEqual(t, root.Fork("GBR").Seed(), root.Fork("FRA").Seed())
	})

	t.Run("Fork Independent Of Parent Draws", func(t *testing.T) {
		a := NewSource(42)
		a.Percent()
		a.Percent()
		b := NewSource(42)
		assert.Equal(t, b.Fork("RUS").Seed(), a.Fork("RUS").Seed())
	})
}

func TestZeroSeed(t *testing.T) {
	s := NewSource(0)
	assert.NotZero(t, s.Seed())
}

func TestIntn(t *testing.T) {
	s := NewSource(3)
	for i := 0; i < 100; i++ {
		v := s.Intn(10)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 10)
	}
}
