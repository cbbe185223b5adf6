// Package sampler draws random result counts and random drawings.
//
// The random source is injected so generation runs can be replayed with a
// fixed seed or driven by a scripted source in tests.
package sampler

import (
	"fmt"
	"math/rand/v2"
	"sync"

	"harnesspair/internal/domain"
)

const (
	// MinResultCount is the smallest number of pairs a run produces
	MinResultCount = 3
	// MaxResultCount is the exclusive upper bound on pairs per run
	MaxResultCount = 5
)

// Source is the random capability the sampler needs.
// *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

// Sampler draws from a Source. It is safe for concurrent use; the source
// itself is only touched while holding the lock.
type Sampler struct {
	mu  sync.Mutex
	src Source
}

// New creates a sampler over src
func New(src Source) *Sampler {
	return &Sampler{src: src}
}

// NewSeeded creates a sampler with a deterministic PCG source
func NewSeeded(seed uint64) *Sampler {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewDefault creates a sampler seeded once from the runtime's entropy
func NewDefault() *Sampler {
	return New(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

func (s *Sampler) intN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.IntN(n)
}

// PickCount returns how many pairs a run should collect, uniform over
// [MinResultCount, MaxResultCount)
func (s *Sampler) PickCount() int {
	return MinResultCount + s.intN(MaxResultCount-MinResultCount)
}

// Pick returns a uniformly random element of items. An empty slice is an
// error and consumes no randomness.
func Pick[T any](s *Sampler, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, fmt.Errorf("%w: cannot pick from an empty sequence", domain.ErrInvalidArgument)
	}
	return items[s.intN(len(items))], nil
}
