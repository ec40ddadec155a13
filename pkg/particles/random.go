package particles

import "math/rand"

// Sampler draws uniform random values. An emitter consults it once per
// frame for the spawn trial; no ordering contract is required across
// emitters sharing one sampler.
type Sampler interface {
	Uniform(low, high float32) float32
}

type randSampler struct {
	rng *rand.Rand
}

func (s randSampler) Uniform(low, high float32) float32 {
	if low >= high {
		return low
	}
	return low + s.rng.Float32()*(high-low)
}

// NewSampler returns a Sampler seeded for reproducible runs.
func NewSampler(seed int64) Sampler {
	return randSampler{rng: rand.New(rand.NewSource(seed))}
}

type globalSampler struct{}

func (globalSampler) Uniform(low, high float32) float32 {
	if low >= high {
		return low
	}
	return low + rand.Float32()*(high-low)
}

// DefaultSampler returns a Sampler backed by the shared math/rand source.
func DefaultSampler() Sampler { return globalSampler{} }
