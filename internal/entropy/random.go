// Package entropy provides the simulation's random streams. A Source is a
// deterministic PRNG stream: given the same seed it replays the same run,
// which is the regression-test strategy for the stochastic crisis logic.
// The root seed comes from crypto/rand when none is supplied.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"hash/fnv"
	mrand "math/rand"
)

// Source is one independent random stream. Not safe for concurrent use;
// each nation gets its own stream via Fork.
type Source struct {
	seed int64
	rng  *mrand.Rand
}

// NewSource creates a stream from a seed. Seed 0 means "not reproducible":
// a fresh seed is drawn from crypto/rand.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = CryptoSeed()
	}
	return &Source{seed: seed, rng: mrand.New(mrand.NewSource(seed))}
}

// Seed returns the seed this stream was built from.
func (s *Source) Seed() int64 {
	return s.seed
}

// Float returns the next value in [0, 1).
func (s *Source) Float() float64 {
	return s.rng.Float64()
}

// Percent returns the next value in [0, 100). Crisis rolls compare this
// against percentage chances.
func (s *Source) Percent() float64 {
	return s.rng.Float64() * 100
}

// Intn returns the next value in [0, n).
func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Fork derives an independent stream keyed by label. The same parent seed
// and label always yield the same child stream, so per-nation streams stay
// reproducible regardless of how many nations a world holds.
func (s *Source) Fork(label string) *Source {
	h := fnv.New64a()
	h.Write([]byte(label))
	child := s.seed ^ int64(h.Sum64())
	if child == 0 {
		child = 1
	}
	return NewSource(child)
}

// CryptoSeed draws a seed from crypto/rand.
func CryptoSeed() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Should never happen; a fixed seed beats a panic here.
		return 1
	}
	seed := int64(binary.LittleEndian.Uint64(buf[:]) >> 1)
	if seed == 0 {
		seed = 1
	}
	return seed
}
