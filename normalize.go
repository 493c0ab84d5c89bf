package intexpr

// rule is the decision for a token in the position it appears.
type rule int8

const (
	// deny rejects the token.
	deny rule = iota
	// allow emits the token unchanged.
	allow
	// rewrite emits an implicit 0 and then the token, making a sign into a
	// subtraction or addition.
	rewrite
)

// initialRules decides the first token of an expression.
var initialRules = [ncategories]rule{
	catNumber: allow,
	catAddSub: rewrite,
	catMulDiv: deny,
	catOpen:   allow,
	catClose:  deny,
}

// transitionRules decides a token given the category of the one before it.
// The first index is the previous token's category.
var transitionRules = [ncategories][ncategories]rule{
	catNumber: {
		catNumber: allow,
		catAddSub: allow,
		catMulDiv: allow,
		catOpen:   deny,
		catClose:  allow,
	},
	catAddSub: {
		catNumber: allow,
		catAddSub: deny,
		catMulDiv: deny,
		catOpen:   allow,
		catClose:  deny,
	},
	catMulDiv: {
		catNumber: allow,
		catAddSub: deny,
		catMulDiv: deny,
		catOpen:   allow,
		catClose:  deny,
	},
	catOpen: {
		catNumber: allow,
		catAddSub: rewrite,
		catMulDiv: deny,
		catOpen:   allow,
		catClose:  deny,
	},
	catClose: {
		catNumber: deny,
		catAddSub: allow,
		catMulDiv: allow,
		catOpen:   deny,
		catClose:  allow,
	},
}

// Normalize rewrites signs as binary operations with an explicit zero left
// operand and checks that tokens appear in a valid order with balanced
// parentheses. The result is a new slice; toks is not modified. Normalizing
// tokens without signs returns an equal sequence.
//
// Normalize does not check that the expression is complete. A trailing
// operator is left for Evaluate to reject.
func Normalize(toks []Token) ([]Token, error) {
	if len(toks) == 0 {
		return nil, nil
	}
	r := make([]Token, 0, len(toks)+len(toks)/4+1)
	var prev category
	depth := 0
	for i, tok := range toks {
		c, ok := tok.Kind.category()
		if !ok {
			return nil, syntaxerr(toks, i, nil)
		}
		d := initialRules[c]
		if i > 0 {
			d = transitionRules[prev][c]
		}
		switch d {
		case deny:
			return nil, syntaxerr(toks, i, nil)
		case rewrite:
			r = append(r, Num(0))
		}
		switch tok.Kind {
		case LeftParen:
			depth++
		case RightParen:
			depth--
			if depth < 0 {
				return nil, syntaxerr(toks, i, &BracketError{Index: i})
			}
		}
		r = append(r, tok)
		prev = c
	}
	if depth > 0 {
		return nil, syntaxerr(toks, len(toks), &BracketError{Index: len(toks), Open: depth})
	}
	return r, nil
}

// syntaxerr creates an error for the token at index i, which may be the
// length of toks to indicate the end of input.
func syntaxerr(toks []Token, i int, cause error) *SyntaxError {
	err := SyntaxError{Index: i, Err: cause}
	if i > 0 {
		err.Prev = toks[i-1]
	}
	if i < len(toks) {
		err.Next = toks[i]
	}
	return &err
}
