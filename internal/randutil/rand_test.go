package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.IntN(3), b.IntN(3), "draw %d", i)
	}
}

func TestNewDiffersBySeed(t *testing.T) {
	a := New(1)
	b := New(2)
	same := true
	for i := 0; i < 32; i++ {
		if a.Uint64() != b.Uint64() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds should give different streams")
}

func TestDerive(t *testing.T) {
	assert.Equal(t, Derive(7, 3), Derive(7, 3))

	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		s := Derive(7, i)
		assert.False(t, seen[s], "duplicate derived seed at %d", i)
		seen[s] = true
	}
	assert.NotEqual(t, Derive(7, 0), Derive(8, 0))
}
