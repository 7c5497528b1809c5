package geo

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Fuzzer offsets true coordinates by a random bearing and a random distance
// drawn from a configured band. The result is meant to be computed once and
// stored, so an item's public position never moves between reads.
type Fuzzer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewFuzzer creates a Fuzzer drawing from rng. A nil rng uses a time-seeded source.
func NewFuzzer(rng *rand.Rand) *Fuzzer {
	if rng == nil {
		//nolint:gosec // location fuzzing, not cryptographic
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Fuzzer{rng: rng}
}

// Fuzz returns a point whose haversine distance from p lies in
// [minOffsetM, maxOffsetM], in a uniformly random direction.
func (f *Fuzzer) Fuzz(p Point, minOffsetM, maxOffsetM float64) (Point, error) {
	if err := p.Validate(); err != nil {
		return Point{}, fmt.Errorf("fuzz: %w", err)
	}
	if minOffsetM < 0 || maxOffsetM < minOffsetM {
		return Point{}, fmt.Errorf("fuzz: invalid offset band [%v, %v]", minOffsetM, maxOffsetM)
	}

	f.mu.Lock()
	bearing := f.rng.Float64() * 360
	distance := minOffsetM + f.rng.Float64()*(maxOffsetM-minOffsetM)
	f.mu.Unlock()

	return Destination(p, bearing, distance), nil
}
