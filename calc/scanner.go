package calc

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokNeg
	tokOp
	tokLParen
	tokRParen
)

type token struct {
	kind tokenKind
	pos  int
	text string
	op   byte
	num  float64

	// mulNext is set on a literal that runs straight into a letter.
	mulNext bool
}

type lexer struct {
	s string
	i int
}

func (l *lexer) next() (token, error) {
	for l.i < len(l.s) {
		c := l.s[l.i]
		if c != ',' && !isSpace(c) {
			break
		}
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}, nil
	}

	start := l.i
	c := l.s[l.i]
	switch c {
	case '+', '-', '*', '/', '^':
		l.i++
		return token{kind: tokOp, pos: start, op: c, text: l.s[start:l.i]}, nil
	case '(':
		l.i++
		return token{kind: tokLParen, pos: start, text: "("}, nil
	case ')':
		l.i++
		return token{kind: tokRParen, pos: start, text: ")"}, nil
	case '~':
		l.i++
		return token{kind: tokNeg, pos: start, text: "~"}, nil
	}

	if isLetter(c) {
		for l.i < len(l.s) && isLetter(l.s[l.i]) {
			l.i++
		}
		word := strings.ToLower(l.s[start:l.i])
		if word == "neg" {
			return token{kind: tokNeg, pos: start, text: word}, nil
		}
		return token{kind: tokIdent, pos: start, text: word}, nil
	}
	if c == '.' || isDigit(c) {
		return l.number()
	}

	r, _ := utf8.DecodeRuneInString(l.s[start:])
	return token{}, newError(ErrUnexpectedChar, start, strconv.QuoteRune(r))
}

// number scans digits, at most one point, and more digits. There is no
// exponent notation: the "e" in "2e3" is scanned as an identifier.
func (l *lexer) number() (token, error) {
	start := l.i
	digits := 0
	for l.i < len(l.s) && isDigit(l.s[l.i]) {
		l.i++
		digits++
	}
	if l.i < len(l.s) && l.s[l.i] == '.' {
		l.i++
		for l.i < len(l.s) && isDigit(l.s[l.i]) {
			l.i++
			digits++
		}
	}
	if digits == 0 {
		return token{}, newError(ErrMalformedNumber, start, l.s[start:l.i])
	}
	if l.i < len(l.s) && l.s[l.i] == '.' {
		return token{}, newError(ErrMalformedNumber, start, l.s[start:l.i+1])
	}

	txt := l.s[start:l.i]
	v, err := strconv.ParseFloat(txt, 64)
	if err != nil {
		return token{}, newError(ErrMalformedNumber, start, txt)
	}
	return token{
		kind:    tokNumber,
		pos:     start,
		text:    txt,
		num:     v,
		mulNext: l.i < len(l.s) && isLetter(l.s[l.i]),
	}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
