package intexpr

import (
	"io"
	"strings"
)

// Eval lexes, normalizes, and evaluates an expression, returning the first
// error from any stage.
func Eval(src io.RuneScanner) (int64, error) {
	toks, err := Lex(src)
	if err != nil {
		return 0, err
	}
	toks, err = Normalize(toks)
	if err != nil {
		return 0, err
	}
	return Evaluate(toks)
}

// Compute is a shortcut to evaluate a string expression.
func Compute(expr string) (int64, error) {
	return Eval(strings.NewReader(expr))
}

// Format writes tokens in source form with no spacing. Lexing the result
// gives back the same tokens, provided every Number is non-negative and no two
// are adjacent. In particular, Format round-trips the output of Normalize
// applied to the output of Lex.
func Format(toks []Token) string {
	var b strings.Builder
	for _, tok := range toks {
		b.WriteString(tok.String())
	}
	return b.String()
}
