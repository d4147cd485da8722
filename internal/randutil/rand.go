// Package randutil derives reproducible random generators from int64 seeds.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The same seed yields the same sequence in every process.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewUnseeded returns a generator seeded from the wall clock, for roles
// that were not given a seed.
func NewUnseeded() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Derive returns the i-th child seed of base. Children are decorrelated so
// neighbouring indices do not produce related sequences.
func Derive(base int64, i int) int64 {
	return int64(mix(uint64(base) + uint64(i+1)*goldenRatio64))
}

// mix is the splitmix64 finaliser.
func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
