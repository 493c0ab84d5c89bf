package intexpr

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token kind. ok is false if the kind is
// not a binary operator.
func binop(k TokenKind) (op operator, ok bool) {
	switch k {
	case Add, Sub:
		return operator{1, false}, true
	case Mul, Div:
		return operator{5, false}, true
	default:
		return operator{}, false
	}
}

// pending is an entry on the operator stack.
type pending struct {
	kind TokenKind
	// at is the index of the token that pushed the entry.
	at int
}

// reducer runs the two-stack operator precedence algorithm over operands of
// type T. It does not build any intermediate structure of its own; leaf and
// apply decide what an operand is.
type reducer[T any] struct {
	operands  []T
	operators []pending
	// leaf converts a Number token's value to an operand.
	leaf func(v int64) T
	// apply combines two operands with the binary operator at index at.
	apply func(at int, op TokenKind, a, b T) (T, error)
}

// reduce computes the single operand that toks reduce to. toks should be
// normalized, but every structural problem is still reported as an error.
func reduce[T any](toks []Token, leaf func(int64) T, apply func(int, TokenKind, T, T) (T, error)) (T, error) {
	var zero T
	if len(toks) == 0 {
		return zero, &EmptyExpressionError{}
	}
	r := reducer[T]{
		operands:  make([]T, 0, len(toks)/2+1),
		operators: make([]pending, 0, len(toks)/2+1),
		leaf:      leaf,
		apply:     apply,
	}
	for i, tok := range toks {
		if err := r.step(i, tok); err != nil {
			return zero, err
		}
	}
	for len(r.operators) > 0 {
		op := r.pop()
		if op.kind == LeftParen {
			return zero, &BracketError{Index: len(toks), Open: r.unclosed() + 1}
		}
		if err := r.operate(op); err != nil {
			return zero, err
		}
	}
	if len(r.operands) != 1 {
		return zero, &StackError{Index: len(toks), Have: len(r.operands)}
	}
	return r.operands[0], nil
}

// step handles a single token.
func (r *reducer[T]) step(i int, tok Token) error {
	switch tok.Kind {
	case Number:
		r.operands = append(r.operands, r.leaf(tok.Value))
	case Add, Sub, Mul, Div:
		p, _ := binop(tok.Kind)
		for len(r.operators) > 0 {
			top, ok := binop(r.top().kind)
			if !ok || p.moreBinding(top) {
				break
			}
			if err := r.operate(r.pop()); err != nil {
				return err
			}
		}
		r.operators = append(r.operators, pending{kind: tok.Kind, at: i})
	case LeftParen:
		r.operators = append(r.operators, pending{kind: LeftParen, at: i})
	case RightParen:
		for {
			if len(r.operators) == 0 {
				return &BracketError{Index: i}
			}
			op := r.pop()
			if op.kind == LeftParen {
				break
			}
			if err := r.operate(op); err != nil {
				return err
			}
		}
	default:
		return &SyntaxError{Index: i, Next: tok}
	}
	return nil
}

// operate pops two operands, applies op to them, and pushes the result.
func (r *reducer[T]) operate(op pending) error {
	n := len(r.operands)
	if n < 2 {
		return &StackError{Index: op.at, Have: n, Op: op.kind}
	}
	a, b := r.operands[n-2], r.operands[n-1]
	c, err := r.apply(op.at, op.kind, a, b)
	if err != nil {
		return err
	}
	r.operands[n-2] = c
	r.operands = r.operands[:n-1]
	return nil
}

// pop removes the top of the operator stack and returns it.
func (r *reducer[T]) pop() pending {
	op := r.operators[len(r.operators)-1]
	r.operators = r.operators[:len(r.operators)-1]
	return op
}

// top is a shortcut to get the top of the operator stack.
func (r *reducer[T]) top() pending {
	return r.operators[len(r.operators)-1]
}

// unclosed counts the open parentheses remaining on the operator stack.
func (r *reducer[T]) unclosed() int {
	n := 0
	for _, op := range r.operators {
		if op.kind == LeftParen {
			n++
		}
	}
	return n
}
