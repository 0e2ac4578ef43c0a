// Package random provides the seeded randomness source used by the
// simulation, plus cryptographic seed generation.
//
// A Source is stateful and must be drawn from sequentially: given the same
// seed and the same sequence of calls it always yields the same values.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source supplies uniform integers and floats.
type Source interface {
	// Intn returns a uniform int in [0, n). Panics when n <= 0.
	Intn(n int) int
	// Float64 returns a uniform float in [0, 1).
	Float64() float64
}

// Seeded is a Source backed by math/rand, remembering its seed and the
// number of draws made so far.
type Seeded struct {
	seed  int64
	rng   *rand.Rand
	draws int64
}

// New creates a Source for seed.
func New(seed int64) *Seeded {
	return &Seeded{seed: seed, rng: rand.New(rand.NewSource(seed))}
}

// NewFromEntropy creates a Source seeded from crypto/rand.
func NewFromEntropy() (*Seeded, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return New(seed), nil
}

// Intn returns a uniform int in [0, n).
func (s *Seeded) Intn(n int) int {
	s.draws++
	return s.rng.Intn(n)
}

// Float64 returns a uniform float in [0, 1).
func (s *Seeded) Float64() float64 {
	s.draws++
	return s.rng.Float64()
}

// Seed returns the seed the source was created with.
func (s *Seeded) Seed() int64 {
	return s.seed
}

// Draws returns the number of values drawn so far.
func (s *Seeded) Draws() int64 {
	return s.draws
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
