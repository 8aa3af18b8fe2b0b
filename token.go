package rpn

import (
	"strconv"
	"strings"
)

// Token is a single element of an expression, either a number or an operator
// symbol. Tokens are comparable; two tokens are equal exactly when they have
// the same kind and the same payload.
type Token struct {
	// Kind is the variant of the token.
	Kind Kind
	// Num is the value of a Number token.
	Num float64
	// Op is the symbol of an Operator token, one of + - * / ^ ( ).
	Op rune
}

// Kind distinguishes numbers from operators.
type Kind int8

const (
	// Number is a numeric literal.
	Number Kind = iota + 1
	// Operator is an operator or bracket.
	Operator
)

//go:generate stringer -type=Kind

// Num creates a Number token.
func Num(v float64) Token {
	return Token{Kind: Number, Num: v}
}

// Op creates an Operator token.
func Op(r rune) Token {
	return Token{Kind: Operator, Op: r}
}

func (t Token) String() string {
	switch t.Kind {
	case Number:
		return strconv.FormatFloat(t.Num, 'g', -1, 64)
	case Operator:
		return string(t.Op)
	default:
		return "invalid token"
	}
}

// Format renders a token sequence with single spaces between tokens.
func Format(tokens []Token) string {
	var b strings.Builder
	for i, t := range tokens {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
