// Package randx isolates the pseudo-randomness behind command outcomes and
// world events. All rolls flow through a single Source so gameplay replays
// exactly in tests with a fixed seed.
package randx

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// Source yields the rolls consumed by the dispatcher and the event system.
// Implementations need not be safe for concurrent use; commands are resolved
// one at a time.
type Source interface {
	// Float64 returns a roll in [0.0, 1.0).
	Float64() float64

	// Intn returns a roll in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// Rand adapts math/rand to Source.
type Rand struct {
	rng *rand.Rand
}

// New returns a Rand seeded from crypto/rand.
func New() (*Rand, error) {
	seed, err := NewSeed()
	if err != nil {
		return nil, err
	}
	return NewSeeded(seed), nil
}

// NewSeeded returns a Rand with a fixed seed. Given the same seed and the
// same call sequence, the rolls are identical.
func NewSeeded(seed int64) *Rand {
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

func (r *Rand) Float64() float64 { return r.rng.Float64() }

func (r *Rand) Intn(n int) int { return r.rng.Intn(n) }

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
