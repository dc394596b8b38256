package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// pcgStream is the fixed second PCG word; the seed alone selects the stream.
const pcgStream uint64 = 0x9e3779b97f4a7c15

// Source draws uniformly distributed integers.
type Source interface {
	// Draw returns an integer in [0, k]. k must not be negative.
	Draw(k int) int
}

// Rand is a Source backed by math/rand/v2. It is not safe for concurrent use.
type Rand struct {
	r    *rand.Rand
	seed uint64
}

// NewSeeded returns a deterministic source. Sources built from the same seed
// return the same values for the same sequence of bounds.
func NewSeeded(seed uint64) *Rand {
	return &Rand{
		r:    rand.New(rand.NewPCG(seed, pcgStream)),
		seed: seed,
	}
}

// NewUnseeded returns a ChaCha8 source keyed from crypto/rand.
func NewUnseeded() (*Rand, error) {
	var key [32]byte
	if _, err := crand.Read(key[:]); err != nil {
		return nil, fmt.Errorf("failed to generate random key: %w", err)
	}
	return &Rand{r: rand.New(rand.NewChaCha8(key))}, nil
}

// NewSeed returns a fresh seed for NewSeeded.
func NewSeed() (uint64, error) {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err != nil {
		return 0, fmt.Errorf("failed to generate seed: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// Seed returns the seed the source was built from. Unseeded sources return 0.
func (r *Rand) Seed() uint64 {
	return r.seed
}

func (r *Rand) Draw(k int) int {
	return r.r.IntN(k + 1)
}

type randSource struct {
	r *rand.Rand
}

// FromRand adapts an existing generator.
func FromRand(r *rand.Rand) Source {
	return randSource{r: r}
}

func (s randSource) Draw(k int) int {
	return s.r.IntN(k + 1)
}
