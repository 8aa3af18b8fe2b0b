package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEvalString(f *testing.F) {
	f.Add("1")
	f.Add("-2 ^ 3")
	f.Add("(1 + 2")
	f.Add("1 + 2)")
	f.Add("100 + 2 / (5*34*2 +7)")
	f.Fuzz(func(t *testing.T, s string) {
		tokens, err := rpn.Tokenize(s)
		if err != nil {
			if _, ok := err.(*rpn.LexError); !ok {
				t.Fatalf("%q: error %v is not a LexError", s, err)
			}
			return
		}
		postfix := rpn.ToPostfix(tokens)
		for _, tok := range postfix {
			if tok.Kind == rpn.Operator && tok.Op == ')' {
				t.Fatalf("%q: close bracket in postfix %s", s, rpn.Format(postfix))
			}
		}
		rpn.Evaluate(postfix)
		if rpn.CheckBrackets(tokens) == nil && rpn.CheckPostfix(postfix) == nil {
			for _, tok := range postfix {
				if tok.Kind == rpn.Operator && tok.Op == '(' {
					t.Fatalf("%q: open bracket in checked postfix %s", s, rpn.Format(postfix))
				}
			}
		}
	})
}
