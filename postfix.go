package rpn

// ToPostfix reorders an infix token sequence into postfix order using the
// shunting-yard algorithm. Operators of higher precedence bind more tightly,
// left-associative operators group left to right, and ^ groups right to left.
// Brackets are dropped from the result.
//
// A - is a prefix minus where an operand is expected: at the start, after an
// operator, or after an open bracket. A prefix minus followed by a number is
// rewritten as that number times -1, e.g. "3 * -4" becomes "3 4 -1 * *".
//
// ToPostfix never fails. A close bracket without a matching open bracket stops
// popping when the stack is exhausted, and an unclosed open bracket is output
// at the end. The input slice is not modified.
func ToPostfix(infix []Token) []Token {
	var (
		stack []rune
		out   = make([]Token, 0, len(infix))
		// unary is whether the next - is a prefix minus.
		unary = true
	)
	for i := 0; i < len(infix); i++ {
		tok := infix[i]
		switch tok.Kind {
		case Number:
			out = append(out, tok)
			unary = false
		case Operator:
			switch op := tok.Op; {
			case op == '(':
				stack = append(stack, op)
				unary = true
			case op == ')':
				for len(stack) > 0 {
					top := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					if top == '(' {
						break
					}
					out = append(out, Op(top))
				}
				unary = false
			case op == '-' && unary:
				// -x -> x -1 *
				if i+1 < len(infix) && infix[i+1].Kind == Number {
					i++
					out = append(out, infix[i])
				}
				out = append(out, Num(-1), Op('*'))
			default:
				in := rule(op)
				for len(stack) > 0 {
					top := stack[len(stack)-1]
					if top == '(' || !rule(top).yields(in) {
						break
					}
					stack = stack[:len(stack)-1]
					out = append(out, Op(top))
				}
				stack = append(stack, op)
				unary = true
			}
		default:
			panic("rpn: invalid token kind " + tok.Kind.String())
		}
	}
	for len(stack) > 0 {
		out = append(out, Op(stack[len(stack)-1]))
		stack = stack[:len(stack)-1]
	}
	return out
}
