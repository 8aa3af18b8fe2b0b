package rpn

import "strings"

// CheckBrackets returns a *BracketError if the brackets in an infix sequence
// are unbalanced. ToPostfix accepts such sequences, but their results are
// generally meaningless.
func CheckBrackets(infix []Token) error {
	var open []int
	for i, tok := range infix {
		if tok.Kind != Operator {
			continue
		}
		switch tok.Op {
		case '(':
			open = append(open, i)
		case ')':
			if len(open) == 0 {
				return &BracketError{Index: i + 1, Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Index: open[len(open)-1] + 1, Left: "("}
	}
	return nil
}

// CheckPostfix returns an error if Evaluate would need to fall back to a
// default value for a postfix sequence: an operator with fewer than two
// operands, an operator that cannot be evaluated, or an empty sequence. It is
// also an error for more than one value to remain at the end.
func CheckPostfix(postfix []Token) error {
	if len(postfix) == 0 {
		return &EmptyExpressionError{}
	}
	n := 0
	for i, tok := range postfix {
		switch tok.Kind {
		case Number:
			n++
		case Operator:
			if !strings.ContainsRune(Operators, tok.Op) {
				return &OperatorError{Index: i + 1, Operator: tok.Op}
			}
			if n < 2 {
				return &StackError{Index: i + 1, Op: tok.Op, Have: n}
			}
			n--
		default:
			panic("rpn: invalid token kind " + tok.Kind.String())
		}
	}
	if n != 1 {
		return &StackError{Index: len(postfix), Have: n}
	}
	return nil
}
