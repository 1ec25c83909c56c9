package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"stocklens/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// FillUniformRange fills dst with random values in range [minVal, maxVal).
// Locks only once per call (preferred over calling Float64 in a loop).
func (r *RNG) FillUniformRange(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*(maxVal-minVal)
	}
}

// Records generates n valid inventory records with distinct ProductIDs.
func (r *RNG) Records(n int) []model.InventoryRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.InventoryRecord, n)
	for i := range out {
		out[i] = model.InventoryRecord{
			ProductID:    fmt.Sprintf("P%04d", i+1),
			Stock:        r.rand.Intn(200),
			ReorderLevel: r.rand.Intn(50),
			Price:        float64(r.rand.Intn(10000)) / 100,
		}
	}
	return out
}

// Vectors generates one attribute vector per label, each of dimension dim,
// with components in [minVal, maxVal).
func (r *RNG) Vectors(labels []string, dim int, minVal, maxVal float64) []model.AttributeVector {
	out := make([]model.AttributeVector, len(labels))
	for i, label := range labels {
		components := make([]float64, dim)
		r.FillUniformRange(components, minVal, maxVal)
		out[i] = model.AttributeVector{Label: label, Components: components}
	}
	return out
}
