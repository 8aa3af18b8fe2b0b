package rpn

import "strings"

// Operators contains the runes which are binary operators with a precedence.
const Operators = "+-*/^"

// Brackets contains the runes which group subexpressions. They are Operator
// tokens, but they have no precedence.
const Brackets = "()"

// IsOperator returns whether r becomes an Operator token.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators+Brackets, r)
}

// Rule returns the precedence and associativity of an operator. Higher
// precedence is more binding. Runes which are not in Operators have precedence
// -1 and are left-associative.
func Rule(op rune) (prec int, right bool) {
	o := rule(op)
	return int(o.prec), o.right
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
}

func rule(op rune) operator {
	switch op {
	case '^':
		return operator{5, true}
	case '*', '/':
		return operator{3, false}
	case '+', '-':
		return operator{1, false}
	default:
		return operator{-1, false}
	}
}

// yields reports whether an operator already on the stack must be output
// before incoming is pushed.
func (p operator) yields(incoming operator) bool {
	if p.prec != incoming.prec {
		return p.prec > incoming.prec
	}
	return !incoming.right
}
