package intexpr

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Operators contains the runes which are lexed as operators or parentheses.
// Any other rune that is not an ASCII digit is ignored.
const Operators = "+-*/()"

var opkinds = [...]TokenKind{Add, Sub, Mul, Div, LeftParen, RightParen}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	toks []Token
	// rune is the number of runes read so far.
	rune int
	// start is the column at which the pending literal began.
	start int
}

// Lex scans an expression into tokens. Digits accumulate into a literal until
// an operator or parenthesis or the end of input. Other runes are skipped
// without ending the literal, so "1 000" is the single literal 1000.
func Lex(src io.RuneScanner) ([]Token, error) {
	l := lexer{src: src}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		if '0' <= r && r <= '9' {
			if l.buf.Len() == 0 {
				l.start = l.rune
			}
			l.buf.WriteRune(r)
			continue
		}
		k := strings.IndexRune(Operators, r)
		if k < 0 {
			continue
		}
		if err := l.flush(); err != nil {
			return nil, err
		}
		l.toks = append(l.toks, Op(opkinds[k]))
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.toks, nil
}

// LexString is a shortcut to lex a string.
func LexString(src string) ([]Token, error) {
	return Lex(strings.NewReader(src))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// flush emits the pending literal, if there is one.
func (l *lexer) flush() error {
	if l.buf.Len() == 0 {
		return nil
	}
	defer l.buf.Reset()
	s := l.buf.String()
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &LiteralError{Text: s, Col: l.start, Err: err}
	}
	l.toks = append(l.toks, Num(v))
	return nil
}
