package rpn

import "strconv"

// OperatorError is an error indicating an operator symbol that cannot be
// evaluated. It implements InputError.
type OperatorError struct {
	// Index is the 1-based position of the operator in the token sequence.
	Index int
	// Operator is the symbol that was not understood.
	Operator rune
}

func (err *OperatorError) Error() string {
	return errpos(err.Index, "unknown operator "+strconv.QuoteRune(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Index
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Index is the 1-based position of the unmatched bracket in the token
	// sequence.
	Index int
	// Left is the unclosed opening bracket, or the empty string if the error
	// is an extra closing bracket.
	Left string
	// Right is the unopened closing bracket, or the empty string if the error
	// is an unclosed opening bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Index, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Index, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Index
}

// StackError is an error indicating a postfix sequence that does not leave
// exactly one value for each operator. It implements InputError.
type StackError struct {
	// Index is the 1-based position in the postfix sequence where the error
	// was detected.
	Index int
	// Op is the operator which lacked operands. If Op is 0, the sequence
	// ended with more than one value.
	Op rune
	// Have is the number of values that were available.
	Have int
}

func (err *StackError) Error() string {
	if err.Op == 0 {
		return errpos(err.Index, strconv.Itoa(err.Have)+" values with no operator to combine them")
	}
	return errpos(err.Index, "operator "+string(err.Op)+" needs 2 operands but has "+strconv.Itoa(err.Have))
}

func (err *StackError) Pos() int {
	return err.Index
}

// EmptyExpressionError is an error indicating an expression with no tokens.
// It implements InputError.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return errpos(0, "no expression")
}

func (err *EmptyExpressionError) Pos() int {
	return 0
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error. For LexError, it is a count of
	// runes; for other errors, it is a 1-based index into a token sequence.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*StackError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LexError)(nil)
)
