package intexpr

import (
	"io"
	"strings"
)

// Expr is a parsed expression. Evaluating an Expr gives the same result as
// Evaluate on the tokens it was parsed from.
type Expr struct {
	// n is the root node of the expression.
	n *node
}

// Parse lexes and normalizes an expression and builds its syntax tree.
func Parse(src io.RuneScanner) (*Expr, error) {
	toks, err := Lex(src)
	if err != nil {
		return nil, err
	}
	return ParseTokens(toks)
}

// ParseString is a shortcut to parse a string expression.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// ParseTokens normalizes a token sequence and builds its syntax tree.
func ParseTokens(toks []Token) (*Expr, error) {
	toks, err := Normalize(toks)
	if err != nil {
		return nil, err
	}
	n, err := reduce(toks, numnode, opnodes)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

func numnode(v int64) *node {
	return &node{kind: nodeNum, val: v}
}

func opnodes(at int, op TokenKind, a, b *node) (*node, error) {
	return &node{kind: opnode(op), at: at, left: a, right: b}, nil
}

// Eval computes the value of the expression by walking its syntax tree.
func (e *Expr) Eval() (int64, error) {
	return e.n.eval()
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	return e.n.String()
}
