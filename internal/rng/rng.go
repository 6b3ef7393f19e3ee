// Package rng provides the seedable dice roller injected into dungeon
// generation. A fixed seed reproduces the same dungeon.
package rng

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ErrInvalidSize is returned when asked to roll a die with fewer than one side.
var ErrInvalidSize = errors.New("die size must be positive")

// Roller rolls dice from its own seeded source.
type Roller struct {
	r *rand.Rand
}

var _ dice.Roller = (*Roller)(nil)

// New returns a Roller seeded with seed.
func New(seed int64) *Roller {
	return &Roller{r: rand.New(rand.NewSource(seed))}
}

// Roll returns a value in [1, size].
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, fmt.Errorf("roll d%d: %w", size, ErrInvalidSize)
	}
	return r.r.Intn(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count < 0 {
		return nil, fmt.Errorf("roll %dd%d: negative count", count, size)
	}
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Between returns a value in [lo, hi] using roller, inclusive on both ends.
func Between(roller dice.Roller, lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("between %d and %d: %w", lo, hi, ErrInvalidSize)
	}
	v, err := roller.Roll(hi - lo + 1)
	if err != nil {
		return 0, err
	}
	return lo + v - 1, nil
}
