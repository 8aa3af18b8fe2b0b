package rpn

import (
	"io"
	"math"
	"strings"
)

// Evaluate computes the value of a postfix token sequence. Numbers are pushed
// onto a stack, and each operator replaces the top two values with the result
// of applying it, the deeper value being the left operand. The result is the
// top of the stack once every token is consumed.
//
// Evaluate never fails. An operator with fewer than two values available uses
// 0 for each missing operand, an operator other than + - * / ^ results in 0,
// and an empty sequence evaluates to 0.
func Evaluate(postfix []Token) float64 {
	stack := make([]float64, 0, len(postfix)/2+1)
	pop := func() float64 {
		if len(stack) == 0 {
			return 0
		}
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return r
	}
	for _, tok := range postfix {
		switch tok.Kind {
		case Number:
			stack = append(stack, tok.Num)
		case Operator:
			r := pop()
			l := pop()
			stack = append(stack, apply(tok.Op, l, r))
		default:
			panic("rpn: invalid token kind " + tok.Kind.String())
		}
	}
	return pop()
}

// apply applies a binary operator.
func apply(op rune, l, r float64) float64 {
	switch op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	default:
		return 0
	}
}

// Eval is a shortcut to lex, convert, and evaluate an expression.
func Eval(src io.RuneScanner) (float64, error) {
	tokens, err := Lex(src)
	if err != nil {
		return 0, err
	}
	return Evaluate(ToPostfix(tokens)), nil
}

// EvalString is a shortcut to evaluate a string expression.
func EvalString(src string) (float64, error) {
	return Eval(strings.NewReader(src))
}

// EvalStrict evaluates a string expression like EvalString, but malformed
// expressions are errors instead of evaluating permissively. Every error it
// returns implements InputError.
func EvalStrict(src string) (float64, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return 0, err
	}
	if err := CheckBrackets(tokens); err != nil {
		return 0, err
	}
	postfix := ToPostfix(tokens)
	if err := CheckPostfix(postfix); err != nil {
		return 0, err
	}
	return Evaluate(postfix), nil
}
