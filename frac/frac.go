// Package frac implements exact rational numbers with a fixed-width numerator
// and denominator.
//
// A Fraction is always in lowest terms with the sign carried by the
// numerator. An operation whose numerator or denominator does not fit panics
// with ErrOverflow rather than wrapping.
package frac

import (
	"errors"
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

var (
	// ErrZeroDenominator is the panic value for creating a fraction with a
	// zero denominator, including by dividing by zero.
	ErrZeroDenominator = errors.New("frac: zero denominator")
	// ErrOverflow is the panic value for an operation whose numerator or
	// denominator does not fit in 64 bits.
	ErrOverflow = errors.New("frac: overflow")
)

// Fraction is a rational number. The zero value is 0.
type Fraction struct {
	num int64
	// den is the denominator, or 0 meaning 1.
	den uint64
}

// New creates the fraction num/den in lowest terms. Panics with
// ErrZeroDenominator if den is zero.
func New(num int64, den uint64) Fraction {
	if den == 0 {
		panic(ErrZeroDenominator)
	}
	c := gcd(abs(num), den)
	return Fraction{num: signed(num < 0, abs(num)/c), den: den / c}
}

// Int creates a whole number.
func Int(n int64) Fraction {
	return Fraction{num: n, den: 1}
}

// Num returns the numerator.
func (f Fraction) Num() int64 {
	return f.num
}

// Den returns the denominator, which is always positive.
func (f Fraction) Den() uint64 {
	if f.den == 0 {
		return 1
	}
	return f.den
}

// IsZero returns whether f is 0.
func (f Fraction) IsZero() bool {
	return f.num == 0
}

// Sign returns -1, 0, or +1 according to the sign of f.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// Add returns f + g.
func (f Fraction) Add(g Fraction) Fraction {
	fd, gd := f.Den(), g.Den()
	c := gcd(fd, gd)
	return New(sum(scale(f.num, gd/c), scale(g.num, fd/c)), mul(fd/c, gd))
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) Fraction {
	fd, gd := f.Den(), g.Den()
	c := gcd(fd, gd)
	return New(diff(scale(f.num, gd/c), scale(g.num, fd/c)), mul(fd/c, gd))
}

// Mul returns f * g.
func (f Fraction) Mul(g Fraction) Fraction {
	fn, gn := abs(f.num), abs(g.num)
	c1 := gcd(fn, g.Den())
	c2 := gcd(gn, f.Den())
	n := mul(fn/c1, gn/c2)
	return New(signed((f.num < 0) != (g.num < 0), n), mul(f.Den()/c2, g.Den()/c1))
}

// Div returns f / g. Panics with ErrZeroDenominator if g is zero.
func (f Fraction) Div(g Fraction) Fraction {
	if g.num == 0 {
		panic(ErrZeroDenominator)
	}
	fn, gn := abs(f.num), abs(g.num)
	c1 := gcd(fn, gn)
	c2 := gcd(f.Den(), g.Den())
	n := mul(fn/c1, g.Den()/c2)
	return New(signed((f.num < 0) != (g.num < 0), n), mul(f.Den()/c2, gn/c1))
}

// Float64 returns the nearest float64 to f.
func (f Fraction) Float64() float64 {
	r, _ := f.Rat().Float64()
	return r
}

// Rat returns f as a new big.Rat.
func (f Fraction) Rat() *big.Rat {
	d := new(big.Int).SetUint64(f.Den())
	return new(big.Rat).SetFrac(big.NewInt(f.num), d)
}

// String formats f as "n" if it is whole or "n/d" otherwise.
func (f Fraction) String() string {
	s := strconv.FormatInt(f.num, 10)
	if f.Den() == 1 {
		return s
	}
	return s + "/" + strconv.FormatUint(f.Den(), 10)
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the magnitude of n. It is correct for math.MinInt64.
func abs(n int64) uint64 {
	if n < 0 {
		return uint64(-n)
	}
	return uint64(n)
}

// mul multiplies magnitudes, panicking on overflow.
func mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		panic(ErrOverflow)
	}
	return lo
}

// signed applies a sign to a magnitude, panicking if the result does not fit
// in an int64.
func signed(neg bool, m uint64) int64 {
	if neg {
		if m > 1<<63 {
			panic(ErrOverflow)
		}
		return int64(-m)
	}
	if m > math.MaxInt64 {
		panic(ErrOverflow)
	}
	return int64(m)
}

// scale returns n*m, panicking on overflow.
func scale(n int64, m uint64) int64 {
	return signed(n < 0, mul(abs(n), m))
}

// sum returns a+b, panicking on overflow.
func sum(a, b int64) int64 {
	s := a + b
	if (a < 0) == (b < 0) && (s < 0) != (a < 0) {
		panic(ErrOverflow)
	}
	return s
}

// diff returns a-b, panicking on overflow.
func diff(a, b int64) int64 {
	s := a - b
	if (a < 0) != (b < 0) && (s < 0) != (a < 0) {
		panic(ErrOverflow)
	}
	return s
}
