package intexpr

import (
	"errors"
	"strings"

	"github.com/zephyrtronium/intexpr/frac"
)

// ComputeExact evaluates an expression over rational numbers instead of
// integers, so that division does not truncate. "1/3+1/6" is 1/2.
//
// Parsing and evaluation order are exactly as in Compute. Division by zero is
// an error matching ErrDivisionByZero, and a numerator or denominator too
// large to represent is a *RangeError matching frac.ErrOverflow.
func ComputeExact(expr string) (frac.Fraction, error) {
	toks, err := Lex(strings.NewReader(expr))
	if err != nil {
		return frac.Fraction{}, err
	}
	toks, err = Normalize(toks)
	if err != nil {
		return frac.Fraction{}, err
	}
	return reduce(toks, frac.Int, ratio)
}

// ratio applies a binary operator to fractions.
func ratio(at int, op TokenKind, a, b frac.Fraction) (r frac.Fraction, err error) {
	if op == Div && b.IsZero() {
		return r, &DivisionError{Index: at, Dividend: a.String()}
	}
	defer func() {
		x := recover()
		if x == nil {
			return
		}
		e, ok := x.(error)
		if !ok || !errors.Is(e, frac.ErrOverflow) {
			panic(x)
		}
		err = &RangeError{Index: at, Op: op, Err: e}
	}()
	switch op {
	case Add:
		return a.Add(b), nil
	case Sub:
		return a.Sub(b), nil
	case Mul:
		return a.Mul(b), nil
	case Div:
		return a.Div(b), nil
	default:
		panic("intexpr: invalid operator " + op.String())
	}
}
