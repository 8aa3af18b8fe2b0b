package rpn

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// last is the column of the last rune written to buf.
	last int
	out  []Token
}

// Lex scans an expression into a sequence of Number and Operator tokens.
// Digits and decimal points accumulate into a numeric literal; any other rune
// ends the literal. Operator runes become Operator tokens, and everything else,
// including whitespace, produces no token. No syntax is checked here.
//
// The only input error is a literal that is not a valid number, e.g. "1.2.3",
// which is reported as a *LexError with no tokens.
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
		if '0' <= r && r <= '9' || r == '.' {
			l.buf.WriteRune(r)
			l.last = l.rune
			continue
		}
		if err := l.flush(); err != nil {
			return nil, err
		}
		if IsOperator(r) {
			l.out = append(l.out, Op(r))
		}
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.out, nil
}

// Tokenize is a shortcut to lex a string.
func Tokenize(text string) ([]Token, error) {
	return Lex(strings.NewReader(text))
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (rune, error) {
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
	v, err := strconv.ParseFloat(l.buf.String(), 64)
	// Literals too long to fit are still numbers; ParseFloat gives ±Inf.
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return l.error()
	}
	l.out = append(l.out, Num(v))
	return nil
}

func (l *lexer) error() error {
	return &LexError{
		Text: l.buf.String(),
		Col:  l.last,
	}
}

// LexError indicates a numeric literal that could not be parsed. It
// implements InputError.
type LexError struct {
	// Text is the literal the lexer was scanning.
	Text string
	// Col is the number of runes scanned up to and including the last rune of
	// the literal.
	Col int
}

func (err *LexError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
