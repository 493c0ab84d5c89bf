// Package intexpr implements a calculator for integer arithmetic expressions.
//
// Expressions contain decimal integer literals, the operators + - * /, and
// parentheses. Multiplication and division bind more tightly than addition
// and subtraction, all operators are left-associative, and division truncates
// toward zero. A leading + or -, or one directly after an open parenthesis,
// is a sign: "-1+(-1-1)" is -3. Juxtaposition is not multiplication, so
// "(1+1)(2+2)" is an error.
//
// Evaluation happens in three stages. Lex turns text into tokens, Normalize
// makes signs explicit binary operations and checks the token order, and
// Evaluate computes the value with an operator stack and an operand stack.
// Compute runs all three. Every stage is a pure function of its input, so
// any number of expressions may be evaluated concurrently.
//
// Arithmetic is on int64 and wraps on overflow.
package intexpr
