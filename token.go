package intexpr

import "strconv"

// Token is a single lexical unit of an expression. Tokens are comparable.
type Token struct {
	// Kind is the kind of token.
	Kind TokenKind
	// Value is the value of a Number token. It is zero for other kinds.
	Value int64
}

// Num creates a Number token.
func Num(v int64) Token {
	return Token{Kind: Number, Value: v}
}

// Op creates a token of an operator or parenthesis kind.
func Op(k TokenKind) Token {
	return Token{Kind: k}
}

// String returns the token as it would appear in source text.
func (t Token) String() string {
	if t.Kind == Number {
		return strconv.FormatInt(t.Value, 10)
	}
	return t.Kind.symbol()
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// Invalid is the zero TokenKind. The lexer never produces it.
	Invalid TokenKind = iota
	// Number is an integer literal.
	Number
	// Add is the + operator.
	Add
	// Sub is the - operator.
	Sub
	// Mul is the * operator.
	Mul
	// Div is the / operator.
	Div
	// LeftParen is an opening parenthesis.
	LeftParen
	// RightParen is a closing parenthesis.
	RightParen
)

var kindnames = [...]string{
	Invalid:    "Invalid",
	Number:     "Number",
	Add:        "Add",
	Sub:        "Sub",
	Mul:        "Mul",
	Div:        "Div",
	LeftParen:  "LeftParen",
	RightParen: "RightParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(kindnames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindnames[k]
}

// symbol gets the source text of an operator or parenthesis. Numbers and
// invalid kinds use characters the lexer ignores.
func (k TokenKind) symbol() string {
	switch k {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	default:
		return "$" + k.String() + "$"
	}
}

// category groups token kinds by their role in expression structure.
type category int8

const (
	catNumber category = iota
	catAddSub
	catMulDiv
	catOpen
	catClose

	ncategories
)

// category gets the category of a token kind. ok is false for invalid kinds.
func (k TokenKind) category() (c category, ok bool) {
	switch k {
	case Number:
		return catNumber, true
	case Add, Sub:
		return catAddSub, true
	case Mul, Div:
		return catMulDiv, true
	case LeftParen:
		return catOpen, true
	case RightParen:
		return catClose, true
	default:
		return -1, false
	}
}
