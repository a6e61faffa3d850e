// Package discrete implements integer arithmetic helpers: gcd and lcm,
// permutations and combinations, primality, divisors, and factorization.
package discrete

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrInput is wrapped by errors for arguments out of range.
var ErrInput = errors.New("invalid input")

// GCD computes the greatest common divisor of |a| and |b| by Euclid's
// algorithm. The steps are the divisions performed, one per line.
func GCD(a, b int64) (g int64, steps []string) {
	a, b = abs(a), abs(b)
	x, y := a, b
	for y != 0 {
		steps = append(steps, fmt.Sprintf("%d = %d * %d + %d", x, y, x/y, x%y))
		x, y = y, x%y
	}
	if len(steps) == 0 {
		steps = []string{fmt.Sprintf("one of %d and %d is zero, so the gcd is the other", a, b)}
	}
	return x, steps
}

// LCM computes the least common multiple of |a| and |b|, which is zero if
// either is zero.
func LCM(a, b int64) int64 {
	a, b = abs(a), abs(b)
	if a == 0 || b == 0 {
		return 0
	}
	g, _ := GCD(a, b)
	return a / g * b
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func checkNR(n, r int64) error {
	if n < 0 || r < 0 || r > n {
		return fmt.Errorf("%w: need 0 ≤ r ≤ n, have n=%d r=%d", ErrInput, n, r)
	}
	return nil
}

// Perm computes nPr = n!/(n-r)!.
func Perm(n, r int64) (*big.Int, error) {
	if err := checkNR(n, r); err != nil {
		return nil, err
	}
	if r == 0 {
		return big.NewInt(1), nil
	}
	return new(big.Int).MulRange(n-r+1, n), nil
}

// Comb computes nCr = n!/(r!(n-r)!).
func Comb(n, r int64) (*big.Int, error) {
	if err := checkNR(n, r); err != nil {
		return nil, err
	}
	return new(big.Int).Binomial(n, r), nil
}

// Primality describes a trial division.
type Primality struct {
	N     int64
	Prime bool
	// Divisor is the least divisor found, or zero.
	Divisor int64
	// Limit is the largest odd candidate tried, ⌊√n⌋, or zero if no odd
	// candidates were needed.
	Limit int64
}

// PrimeCheck tests n for primality by trial division by 2 and then by odd
// numbers up to √n.
func PrimeCheck(n int64) (*Primality, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d is negative", ErrInput, n)
	}
	p := Primality{N: n}
	switch {
	case n < 2:
		return &p, nil
	case n == 2:
		p.Prime = true
		return &p, nil
	case n%2 == 0:
		p.Divisor = 2
		return &p, nil
	}
	p.Limit = isqrt(n)
	for i := int64(3); i <= p.Limit; i += 2 {
		if n%i == 0 {
			p.Divisor = i
			return &p, nil
		}
	}
	p.Prime = true
	return &p, nil
}

func (p *Primality) String() string {
	switch {
	case p.N < 2:
		return fmt.Sprintf("%d is not prime (primes start at 2)", p.N)
	case p.N == 2:
		return "2 is prime"
	case p.Divisor == 2:
		return fmt.Sprintf("%d is divisible by 2 → not prime", p.N)
	case p.Divisor != 0:
		return fmt.Sprintf("%d is divisible by %d → not prime\n(checked odd numbers 3..%d)", p.N, p.Divisor, p.Limit)
	}
	return fmt.Sprintf("%d is prime\n(checked odd numbers 3..%d)", p.N, p.Limit)
}

// isqrt returns ⌊√n⌋ for n ≥ 0. Squares are compared by division so that n
// near math.MaxInt64 does not overflow.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// Divisors lists the positive divisors of n in ascending order.
func Divisors(n int64) ([]int64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrInput, n)
	}
	var lo, hi []int64
	r := isqrt(n)
	for i := int64(1); i <= r; i++ {
		if n%i == 0 {
			lo = append(lo, i)
			if i*i != n {
				hi = append(hi, n/i)
			}
		}
	}
	for i := len(hi) - 1; i >= 0; i-- {
		lo = append(lo, hi[i])
	}
	return lo, nil
}

// Factor is a prime raised to a power.
type Factor struct {
	P int64
	K int
}

func (f Factor) String() string {
	if f.K == 1 {
		return strconv.FormatInt(f.P, 10)
	}
	return strconv.FormatInt(f.P, 10) + "^" + strconv.Itoa(f.K)
}

// Factorization is the prime factorization of N with the divisions that
// produced it.
type Factorization struct {
	N       int64
	Factors []Factor
	Steps   []string
}

// Factorize computes the prime factorization of a positive integer by trial
// division.
func Factorize(n int64) (*Factorization, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d is not a positive integer", ErrInput, n)
	}
	r := Factorization{N: n}
	x := n
	for p := int64(2); p <= x/p; {
		k := 0
		for x%p == 0 {
			r.Steps = append(r.Steps, fmt.Sprintf("%d ÷ %d = %d", x, p, x/p))
			x /= p
			k++
		}
		if k > 0 {
			r.Factors = append(r.Factors, Factor{P: p, K: k})
		}
		if p == 2 {
			p = 3
		} else {
			p += 2
		}
	}
	if x > 1 {
		r.Factors = append(r.Factors, Factor{P: x, K: 1})
		if x != n {
			r.Steps = append(r.Steps, fmt.Sprintf("the remaining %d is prime and is a factor", x))
		}
	}
	if len(r.Steps) == 0 {
		r.Steps = []string{fmt.Sprintf("%d is prime or cannot be divided further", n)}
	}
	return &r, nil
}

// String renders the factorization as e.g. "2^2 * 3".
func (r *Factorization) String() string {
	p := make([]string, len(r.Factors))
	for i, f := range r.Factors {
		p[i] = f.String()
	}
	return strings.Join(p, " * ")
}
