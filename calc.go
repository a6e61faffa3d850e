package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrEmpty is returned for an expression with no characters other than
// whitespace.
var ErrEmpty = errors.New("empty expression")

// Check rejects input that is not worth parsing. Structural problems such as
// mismatched parentheses are left to the parser.
func Check(src string) error {
	if strings.TrimSpace(src) == "" {
		return ErrEmpty
	}
	return nil
}

// EvalString parses and evaluates an expression with a new context. A result
// that is infinite or NaN is a NotFiniteError.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	return NewContext(opts...).EvalString(src)
}

// EvalString parses and evaluates an expression. A result that is infinite
// or NaN is a NotFiniteError.
func (ctx *Context) EvalString(src string) (float64, error) {
	if err := Check(src); err != nil {
		return 0, err
	}
	e, err := Parse(src)
	if err != nil {
		return 0, err
	}
	r, err := ctx.Eval(e)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &NotFiniteError{X: r}
	}
	return r, nil
}

var varx = regexp.MustCompile(`(?i)\bx\b`)

// Substitute replaces each whole-word x in src, in either case, with x's
// value in parentheses.
func Substitute(src string, x float64) string {
	v := "(" + strconv.FormatFloat(x, 'f', -1, 64) + ")"
	return varx.ReplaceAllLiteralString(src, v)
}

// Eval evaluates an expression in the variable x with a new context.
func Eval(src string, x float64, opts ...ContextOption) (float64, error) {
	return EvalString(Substitute(src, x), opts...)
}
