package verify

import (
	"math"
	"math/rand/v2"
)

// pcgStream decorrelates the two PCG seed words derived from one seed.
const pcgStream = 0xda3e39cb94b95bdb

// GenerateOption configures Generate.
type GenerateOption func(*generateConfig)

type generateConfig struct {
	seed   *int64
	source rand.Source
	limit  int
}

// WithSeed makes the output reproducible: the same n, min, max and seed
// always yield the same sequence.
func WithSeed(seed int64) GenerateOption {
	return func(c *generateConfig) {
		c.seed = &seed
	}
}

// WithSource draws from src instead of a seeded PCG. It takes precedence over
// WithSeed. The source is used by a single call and must not be shared.
func WithSource(src rand.Source) GenerateOption {
	return func(c *generateConfig) {
		if src != nil {
			c.source = src
		}
	}
}

// WithLimit caps n. Requests above the cap fail with KindInvalidInput.
// A limit <= 0 means no cap.
func WithLimit(limit int) GenerateOption {
	return func(c *generateConfig) {
		c.limit = limit
	}
}

// Generate returns n distinct RUTs whose correlatives are drawn without
// replacement from [min, max], in sampling order.
//
// Checks run in order: min > max fails with KindInvalidRange; n <= 0, a
// negative min or a max beyond 32 bits fails with KindInvalidInput; a range
// holding fewer than n values fails with KindInsufficientRange.
//
// Sampling is a sparse Fisher-Yates shuffle, so memory is proportional to n
// rather than to the range. Randomness comes from math/rand/v2's PCG seeded
// with SplitMix64-mixed words of the seed; without WithSeed a fresh seed is
// drawn from the runtime source.
func Generate(n int, min, max int64, opts ...GenerateOption) ([]RUT, error) {
	cfg := &generateConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	if min > max {
		return nil, &Error{Kind: KindInvalidRange, Min: min, Max: max}
	}
	if n <= 0 {
		return nil, errInvalidInput("n must be greater than zero")
	}
	if cfg.limit > 0 && n > cfg.limit {
		return nil, errInvalidInput("n exceeds the generation limit")
	}
	if min < 0 {
		return nil, errInvalidInput("min must not be negative")
	}
	if max > math.MaxUint32 {
		return nil, errInvalidInput("max does not fit in 32 bits")
	}

	available := uint64(max-min) + 1
	requested := uint64(n)
	if requested > available {
		return nil, &Error{Kind: KindInsufficientRange, Requested: requested, Available: available}
	}

	rng := rand.New(cfg.rngSource())

	// moved holds the offsets displaced by earlier swaps; an absent key i
	// still holds offset i.
	moved := make(map[uint64]uint64, n)
	at := func(i uint64) uint64 {
		if v, ok := moved[i]; ok {
			return v
		}
		return i
	}

	out := make([]RUT, 0, n)
	for i := uint64(0); i < requested; i++ {
		j := i + rng.Uint64N(available-i)
		picked, current := at(j), at(i)
		moved[j] = current
		delete(moved, i)

		if picked >= available {
			return nil, errUnexpectedGeneration("offset %d outside range of %d values", picked, available)
		}
		correlative := uint64(min) + picked
		v, err := Checksum(correlative)
		if err != nil {
			return nil, err
		}
		out = append(out, RUT{Correlative: uint32(correlative), Verifier: v})
	}

	if uint64(len(out)) != requested {
		return nil, errUnexpectedGeneration("produced %d ruts, want %d", len(out), requested)
	}
	return out, nil
}

func (c *generateConfig) rngSource() rand.Source {
	if c.source != nil {
		return c.source
	}
	var seed uint64
	if c.seed != nil {
		seed = uint64(*c.seed)
	} else {
		seed = rand.Uint64()
	}
	return rand.NewPCG(splitMix64(seed), splitMix64(seed^pcgStream))
}

// splitMix64 is the SplitMix64 finalizer (Vigna 2014).
func splitMix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}
