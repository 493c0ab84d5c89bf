package intexpr

import "strconv"

// Evaluate computes the value of a normalized token sequence in a single pass
// using an operand stack and an operator stack. Sequences that are not
// normalized may still evaluate, but a sign without its implicit zero is an
// error.
//
// An empty sequence is an error matching ErrEmptyExpression. Division by zero
// is an error matching ErrDivisionByZero rather than a panic.
func Evaluate(toks []Token) (int64, error) {
	return reduce(toks, intleaf, arith)
}

func intleaf(v int64) int64 {
	return v
}

// arith applies a binary operator to integers. Division truncates toward
// zero, and overflow wraps.
func arith(at int, op TokenKind, a, b int64) (int64, error) {
	switch op {
	case Add:
		return a + b, nil
	case Sub:
		return a - b, nil
	case Mul:
		return a * b, nil
	case Div:
		if b == 0 {
			return 0, &DivisionError{Index: at, Dividend: strconv.FormatInt(a, 10)}
		}
		return a / b, nil
	default:
		panic("intexpr: invalid operator " + op.String())
	}
}
