package intexpr

import (
	"errors"
	"strconv"
)

// Error kinds. Every error returned from evaluating an integer expression
// matches exactly one of these with errors.Is, except that an unbalanced
// parenthesis found by Normalize matches both ErrInvalidExpression and
// ErrUnbalancedParen.
var (
	// ErrMalformedLiteral is the kind of error for an integer literal that
	// cannot be represented.
	ErrMalformedLiteral = errors.New("malformed literal")
	// ErrInvalidExpression is the kind of error for tokens in an order that
	// cannot form an expression.
	ErrInvalidExpression = errors.New("invalid expression")
	// ErrStackUnderflow is the kind of error for an operator without enough
	// operands, or operands without operators to combine them.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrUnbalancedParen is the kind of error for a parenthesis without a
	// partner.
	ErrUnbalancedParen = errors.New("unbalanced parenthesis")
	// ErrDivisionByZero is the kind of error for dividing by zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrEmptyExpression is the kind of error for evaluating no tokens.
	ErrEmptyExpression = errors.New("empty expression")
)

// LiteralError indicates an integer literal that does not fit in an int64.
type LiteralError struct {
	// Text is the literal.
	Text string
	// Col is the 1-based rune column at which the literal starts.
	Col int
	// Err is the error from parsing the literal.
	Err error
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "malformed literal "+strconv.Quote(err.Text))
}

func (err *LiteralError) Is(target error) bool {
	return target == ErrMalformedLiteral
}

func (err *LiteralError) Unwrap() error {
	return err.Err
}

// SyntaxError indicates a token that cannot follow the one before it.
type SyntaxError struct {
	// Index is the index of the offending token in the normalizer's input.
	Index int
	// Prev is the token before the offending one. Its kind is Invalid if
	// the offending token is first.
	Prev Token
	// Next is the offending token. Its kind is Invalid at the end of input.
	Next Token
	// Err is an underlying cause, if any.
	Err error
}

func (err *SyntaxError) Error() string {
	if err.Err != nil {
		return errpos(err.Index, "invalid expression: "+err.Err.Error())
	}
	if _, ok := err.Next.Kind.category(); !ok {
		return errpos(err.Index, "invalid token "+err.Next.Kind.String())
	}
	if err.Prev.Kind == Invalid {
		return errpos(err.Index, "expression cannot start with "+strconv.Quote(err.Next.String()))
	}
	return errpos(err.Index, strconv.Quote(err.Next.String())+" cannot follow "+strconv.Quote(err.Prev.String()))
}

func (err *SyntaxError) Is(target error) bool {
	return target == ErrInvalidExpression
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}

// BracketError indicates a parenthesis with no partner.
type BracketError struct {
	// Index is the index of the unmatched close parenthesis, or the length
	// of the input for an unclosed open parenthesis.
	Index int
	// Open is the number of open parentheses that were never closed. It is
	// zero when the error is an unmatched close parenthesis.
	Open int
}

func (err *BracketError) Error() string {
	if err.Open == 0 {
		return errpos(err.Index, "close paren with no open paren")
	}
	if err.Open == 1 {
		return errpos(err.Index, "open paren with no close paren")
	}
	return errpos(err.Index, strconv.Itoa(err.Open)+" open parens with no close paren")
}

func (err *BracketError) Is(target error) bool {
	return target == ErrUnbalancedParen
}

// StackError indicates that the operand stack did not hold what an operation
// needed.
type StackError struct {
	// Index is the index of the operator being applied, or the length of the
	// input if the error was found after all tokens were consumed.
	Index int
	// Have is the number of operands that were on the stack.
	Have int
	// Op is the operator being applied. It is Invalid when the error is in
	// the final result.
	Op TokenKind
}

func (err *StackError) Error() string {
	if err.Op == Invalid {
		return errpos(err.Index, "expression leaves "+strconv.Itoa(err.Have)+" values")
	}
	return errpos(err.Index, "operator "+strconv.Quote(err.Op.symbol())+" has "+strconv.Itoa(err.Have)+" operands")
}

func (err *StackError) Is(target error) bool {
	return target == ErrStackUnderflow
}

// DivisionError indicates a division by zero.
type DivisionError struct {
	// Index is the index of the division operator in the normalized tokens.
	Index int
	// Dividend is the left operand.
	Dividend string
}

func (err *DivisionError) Error() string {
	return errpos(err.Index, "division of "+err.Dividend+" by zero")
}

func (err *DivisionError) Is(target error) bool {
	return target == ErrDivisionByZero
}

// RangeError indicates an exact result that cannot be represented.
type RangeError struct {
	// Index is the index of the operator in the normalized tokens.
	Index int
	// Op is the operator.
	Op TokenKind
	// Err is the cause, e.g. frac.ErrOverflow.
	Err error
}

func (err *RangeError) Error() string {
	return errpos(err.Index, "result of "+strconv.Quote(err.Op.symbol())+" out of range: "+err.Err.Error())
}

func (err *RangeError) Unwrap() error {
	return err.Err
}

// EmptyExpressionError indicates an expression with no tokens.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "no expression"
}

func (err *EmptyExpressionError) Is(target error) bool {
	return target == ErrEmptyExpression
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}
