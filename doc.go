// Package rpn evaluates infix arithmetic by way of Reverse Polish notation.
//
// Evaluation is three separate steps, each a pure function of its input:
// Tokenize scans text into Tokens, ToPostfix reorders them with the
// shunting-yard algorithm, and Evaluate runs the postfix sequence on a stack
// machine. "-2 ^ 3" is the same as "(-2)^3", since a prefix minus is rewritten
// as a multiplication by -1 applied to the operand that follows it, and
// "2 ^ 3 ^ 2" is "2^(3^2)".
//
// Malformed input is evaluated permissively: missing operands are 0 and
// unmatched brackets are ignored. Only a numeric literal that fails to parse
// is an error. CheckBrackets, CheckPostfix, and EvalStrict report the
// malformed cases instead.
//
package rpn
