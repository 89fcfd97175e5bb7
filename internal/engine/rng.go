// Package engine holds the pure game logic shared by the slot and plinko games.
package engine

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
	"sync"
)

// RandomSource is the only randomness the games use
type RandomSource interface {
	IntN(n int) int   // uniform in [0, n)
	Float64() float64 // uniform in [0, 1)
}

type lockedRNG struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (l *lockedRNG) IntN(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.IntN(n)
}

func (l *lockedRNG) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

// DefaultRNG returns a PCG source seeded from crypto/rand
func DefaultRNG() RandomSource {
	var buf [16]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// fall back to the runtime-seeded global source
		return NewSeededRNG(rand.Uint64())
	}
	seed1 := binary.BigEndian.Uint64(buf[:8])
	seed2 := binary.BigEndian.Uint64(buf[8:])
	return &lockedRNG{r: rand.New(rand.NewPCG(seed1, seed2))}
}

// NewSeededRNG returns a reproducible source (tests, replays)
func NewSeededRNG(seed uint64) RandomSource {
	return &lockedRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

// RandomSign returns v or -v with equal probability
func RandomSign(rng RandomSource, v float64) float64 {
	if rng.Float64() > 0.5 {
		return -v
	}
	return v
}
