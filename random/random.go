// Package random draws random integers, reals, dice rolls, and picks from
// lists.
package random

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"
)

// ErrInput is wrapped by errors for ranges or counts that cannot be drawn
// from.
var ErrInput = errors.New("invalid input")

// MaxDice is the most dice that can be rolled at once.
const MaxDice = 200

// Generator draws random values. It is safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a generator with the given seed.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// NewTime returns a generator seeded from the clock.
func NewTime() *Generator {
	return New(time.Now().UnixNano())
}

func finite(xs ...float64) error {
	for _, x := range xs {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: bound is not finite", ErrInput)
		}
	}
	return nil
}

func order(a, b float64) (lo, hi float64) {
	if a > b {
		return b, a
	}
	return a, b
}

// maxCount is 2^63, the least count of integers that does not fit in an
// int64.
const maxCount = 1 << 63

// IntCount returns the number of integers between a and b inclusive, in
// either order. Counts too large for an int64 are clamped to math.MaxInt64.
func IntCount(a, b float64) int64 {
	lo, hi := order(a, b)
	n := math.Floor(hi) - math.Ceil(lo) + 1
	switch {
	case n < 0:
		return 0
	case n >= maxCount:
		return math.MaxInt64
	}
	return int64(n)
}

// Int returns a uniformly random integer between a and b inclusive, in either
// order. The bounds must lie within the range of int64, and so must the count
// of integers between them.
func (g *Generator) Int(a, b float64) (int64, error) {
	if err := finite(a, b); err != nil {
		return 0, err
	}
	lo, hi := order(a, b)
	lo, hi = math.Ceil(lo), math.Floor(hi)
	if lo < -maxCount || hi >= maxCount {
		return 0, fmt.Errorf("%w: bounds %v and %v are outside the 64-bit integer range", ErrInput, a, b)
	}
	n := hi - lo + 1
	if n >= maxCount {
		return 0, fmt.Errorf("%w: too many integers between %v and %v", ErrInput, a, b)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: no integers between %v and %v", ErrInput, a, b)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Int63n(int64(n)) + int64(lo), nil
}

// Float returns a uniformly random real in [lo, hi), where lo and hi are a
// and b in ascending order.
func (g *Generator) Float(a, b float64) (float64, error) {
	if err := finite(a, b); err != nil {
		return 0, err
	}
	lo, hi := order(a, b)
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.Float64()*(hi-lo) + lo, nil
}

// Dice rolls count dice with the given number of sides and returns the rolls
// and their sum.
func (g *Generator) Dice(sides, count int) ([]int, int, error) {
	if sides < 2 || count < 1 || count > MaxDice {
		return nil, 0, fmt.Errorf("%w: need at least 2 sides and 1 to %d dice", ErrInput, MaxDice)
	}
	rolls := make([]int, count)
	sum := 0
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := range rolls {
		rolls[i] = 1 + g.rng.Intn(sides)
		sum += rolls[i]
	}
	return rolls, sum, nil
}

// Candidates splits a comma-separated list, dropping blank items.
func Candidates(s string) []string {
	var r []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			r = append(r, item)
		}
	}
	return r
}

// Pick draws k distinct items from list without replacement. If k exceeds
// the length of the list, the whole list is returned shuffled.
func (g *Generator) Pick(list []string, k int) ([]string, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: no candidates", ErrInput)
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k must be at least 1", ErrInput)
	}
	k = min(k, len(list))
	r := append([]string(nil), list...)
	g.mu.Lock()
	defer g.mu.Unlock()
	for i := len(r) - 1; i > 0; i-- {
		j := g.rng.Intn(i + 1)
		r[i], r[j] = r[j], r[i]
	}
	return r[:k], nil
}
