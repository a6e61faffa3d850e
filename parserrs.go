package calc

import "strconv"

// ParseError is an error indicating an expression whose tokens do not form a
// valid expression. Every error from the parser implements ParseError.
type ParseError interface {
	error
	parseError()
}

// OperatorError is an error indicating a symbol that is not understood by the
// parser.
type OperatorError struct {
	// Operator is the symbol that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return "unknown symbol " + strconv.Quote(err.Operator)
}

// BracketError is an error indicating mismatched parentheses.
type BracketError struct {
	// Left is the opening parenthesis that was never closed, if any.
	Left string
	// Right is the closing parenthesis that was never opened, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return "mismatched parentheses: close " + err.Right + " with no open"
	}
	return "mismatched parentheses: open " + err.Left + " with no close"
}

// SeparatorError is an error indicating an illegal use of a comma.
type SeparatorError struct {
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return "invalid occurrence of separator " + strconv.Quote(err.Sep)
}

// NameError is an error indicating an identifier that is neither a function
// followed by an argument, a constant, nor a keyword.
type NameError struct {
	// Name is the unknown identifier.
	Name string
}

func (err *NameError) Error() string {
	return "unknown name: " + strconv.Quote(err.Name)
}

func (*OperatorError) parseError()  {}
func (*BracketError) parseError()   {}
func (*SeparatorError) parseError() {}
func (*NameError) parseError()      {}

var (
	_ ParseError = (*OperatorError)(nil)
	_ ParseError = (*BracketError)(nil)
	_ ParseError = (*SeparatorError)(nil)
	_ ParseError = (*NameError)(nil)
)
