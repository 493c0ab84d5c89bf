package frac

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGCD(t *testing.T) {
	assert.Equal(t, uint64(4), gcd(12, 8))
	assert.Equal(t, uint64(12), gcd(24, 36))
	assert.Equal(t, uint64(100), gcd(100, 200))
	assert.Equal(t, uint64(7), gcd(0, 7))
}

func TestNew(t *testing.T) {
	cases := []struct {
		num  int64
		den  uint64
		want Fraction
	}{
		{1, 2, Fraction{1, 2}},
		{3, 4, Fraction{3, 4}},
		{-5, 2, Fraction{-5, 2}},
		{0, 1, Fraction{0, 1}},
		{0, 7, Fraction{0, 1}},
		{6, 4, Fraction{3, 2}},
		{-6, 4, Fraction{-3, 2}},
		{math.MinInt64, 2, Fraction{math.MinInt64 / 2, 1}},
		{math.MinInt64, 1 << 63, Fraction{-1, 1}},
		{math.MinInt64, 1, Fraction{math.MinInt64, 1}},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, New(c.num, c.den), "%d/%d", c.num, c.den)
	}
}

func TestNewPanic(t *testing.T) {
	assert.PanicsWithValue(t, ErrZeroDenominator, func() { New(1, 0) })
}

func TestZeroValue(t *testing.T) {
	var z Fraction
	assert.True(t, z.IsZero())
	assert.Equal(t, uint64(1), z.Den())
	assert.Equal(t, "0", z.String())
	assert.Equal(t, New(1, 2), z.Add(New(1, 2)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "1/2", New(1, 2).String())
	assert.Equal(t, "3/4", New(3, 4).String())
	assert.Equal(t, "-5/2", New(-5, 2).String())
	assert.Equal(t, "0", New(0, 1).String())
	assert.Equal(t, "2", New(4, 2).String())
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 0.5, New(1, 2).Float64())
	assert.Equal(t, 0.75, New(3, 4).Float64())
	assert.Equal(t, -2.5, New(-5, 2).Float64())
	assert.Equal(t, 0.0, New(0, 1).Float64())
}

func TestRat(t *testing.T) {
	assert.Equal(t, 0, New(-6, 4).Rat().Cmp(big.NewRat(-3, 2)))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, New(-1, 3).Sign())
	assert.Equal(t, 0, Int(0).Sign())
	assert.Equal(t, 1, New(1, 3).Sign())
}

func TestAdd(t *testing.T) {
	assert.Equal(t, Int(1), New(1, 2).Add(New(1, 2)))
	assert.Equal(t, New(3, 2), New(1, 2).Add(Int(1)))
	assert.Equal(t, New(3, 2), Int(1).Add(New(1, 2)))
	assert.Equal(t, New(3, 4), New(1, 2).Add(New(1, 4)))
	assert.Equal(t, New(5, 2), New(1, 2).Add(Int(2)))
	assert.Equal(t, Int(0), New(-1, 2).Add(New(1, 2)))
}

func TestSub(t *testing.T) {
	assert.Equal(t, Int(0), New(1, 2).Sub(New(1, 2)))
	assert.Equal(t, New(-1, 2), New(1, 2).Sub(Int(1)))
	assert.Equal(t, New(1, 2), Int(1).Sub(New(1, 2)))
	assert.Equal(t, New(1, 4), New(1, 2).Sub(New(1, 4)))
	assert.Equal(t, New(-3, 2), New(1, 2).Sub(Int(2)))
	assert.Equal(t, New(3, 2), Int(2).Sub(New(1, 2)))
}

func TestMul(t *testing.T) {
	assert.Equal(t, New(1, 4), New(1, 2).Mul(New(1, 2)))
	assert.Equal(t, Int(1), New(1, 2).Mul(Int(2)))
	assert.Equal(t, Int(1), Int(2).Mul(New(1, 2)))
	assert.Equal(t, New(1, 8), New(1, 2).Mul(New(1, 4)))
	assert.Equal(t, New(-1, 8), New(-1, 2).Mul(New(1, 4)))
	assert.Equal(t, Int(0), Int(0).Mul(New(1, 4)))
}

func TestDiv(t *testing.T) {
	assert.Equal(t, Int(1), New(1, 2).Div(New(1, 2)))
	assert.Equal(t, New(1, 4), New(1, 2).Div(Int(2)))
	assert.Equal(t, Int(4), Int(2).Div(New(1, 2)))
	assert.Equal(t, Int(2), New(1, 2).Div(New(1, 4)))
	assert.Equal(t, New(1, 8), New(1, 2).Div(Int(4)))
	assert.Equal(t, Int(8), Int(4).Div(New(1, 2)))
}

func TestDivSigns(t *testing.T) {
	cases := []struct {
		a, b, want Fraction
	}{
		{New(1, 2), New(1, 3), New(3, 2)},
		{New(-1, 2), New(1, 3), New(-3, 2)},
		{New(1, 2), New(-1, 3), New(-3, 2)},
		{New(-1, 2), New(-1, 3), New(3, 2)},
		{Int(0), New(-1, 3), Int(0)},
	}
	for _, c := range cases {
		assert.Equalf(t, c.want, c.a.Div(c.b), "%v / %v", c.a, c.b)
	}
}

func TestDivPanic(t *testing.T) {
	assert.PanicsWithValue(t, ErrZeroDenominator, func() { Int(1).Div(Int(0)) })
}

func TestOverflow(t *testing.T) {
	tiny := New(1, 1<<40)
	huge := Int(math.MaxInt64)
	cases := []struct {
		name string
		f    func() Fraction
	}{
		{"mul-den", func() Fraction { return tiny.Mul(tiny) }},
		{"div-den", func() Fraction { return tiny.Div(Int(1 << 40)) }},
		{"add-num", func() Fraction { return New(math.MaxInt64, 2).Add(New(1, 2)) }},
		{"add-whole", func() Fraction { return huge.Add(Int(1)) }},
		{"sub-num", func() Fraction { return Int(math.MinInt64).Sub(Int(1)) }},
		{"sub-min", func() Fraction { return Int(0).Sub(Int(math.MinInt64)) }},
		{"mul-num", func() Fraction { return huge.Mul(Int(2)) }},
		{"div-num", func() Fraction { return huge.Div(New(1, 2)) }},
		{"scale", func() Fraction { return huge.Add(New(1, 3)) }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.PanicsWithValue(t, ErrOverflow, func() { c.f() })
		})
	}
}

func TestNoSpuriousOverflow(t *testing.T) {
	half := New(1, 1<<32)
	assert.Equal(t, New(1, 1<<31), half.Add(half))
	assert.Equal(t, Int(0), half.Sub(half))
	assert.Equal(t, Int(1), New(1<<40, 3).Mul(New(3, 1<<40)))
	assert.Equal(t, Int(1), New(1, 1<<40).Div(New(1, 1<<40)))
	assert.Equal(t, Int(math.MinInt64), Int(math.MinInt64+1).Sub(Int(1)))
	assert.Equal(t, Int(math.MinInt64), Int(math.MinInt64/2).Mul(Int(2)))
	assert.Equal(t, Int(math.MaxInt64), New(math.MaxInt64, 2).Mul(Int(2)))
}
