package calc

import (
	"strconv"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently; evaluations in parallel each need their own, e.g. via
// Clone.
type Context struct {
	stack []float64
	angle AngleMode
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type angleopt AngleMode

func (angleopt) ctxOption() {}

// Angle sets the unit of trigonometric function arguments.
func Angle(mode AngleMode) ContextOption {
	return angleopt(mode)
}

// NewContext creates a new evaluation context. If no angle mode is given, the
// default is Degrees.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{angle: Degrees}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{
		stack: make([]float64, 0, cap(ctx.stack)),
		angle: ctx.angle,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case angleopt:
			n.angle = AngleMode(opt)
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// AngleMode returns the angle mode of the context.
func (ctx *Context) AngleMode() AngleMode {
	return ctx.angle
}

// Eval evaluates an expression and returns the result. Division by zero and
// other non-finite results are not errors here; see EvalString.
func (ctx *Context) Eval(e *Expr) (float64, error) {
	ctx.stack = ctx.stack[:0]
	for _, t := range e.rpn {
		switch t.kind {
		case rpnNum:
			ctx.push(t.num)
		case rpnOp:
			d := describe(t.op)
			if len(ctx.stack) < int(d.arity) {
				return 0, &EvalError{Reason: "stack underflow at " + t.op.String()}
			}
			var a, b float64
			if d.arity == 2 {
				b = ctx.pop()
			}
			a = ctx.pop()
			r, err := t.op.apply(a, b)
			if err != nil {
				return 0, err
			}
			ctx.push(r)
		case rpnFunc:
			if len(ctx.stack) < 1 {
				return 0, &EvalError{Reason: "stack underflow at " + t.fn.String()}
			}
			ctx.push(t.fn.call(ctx.pop(), ctx.angle))
		default:
			panic("calc: invalid postfix token " + t.String())
		}
	}
	if len(ctx.stack) != 1 {
		return 0, &EvalError{Reason: strconv.Itoa(len(ctx.stack)) + " values left on the stack"}
	}
	return ctx.pop(), nil
}

func (ctx *Context) push(x float64) {
	ctx.stack = append(ctx.stack, x)
}

func (ctx *Context) pop() float64 {
	r := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	return r
}

// EvalError is an error indicating a postfix program that does not leave
// exactly one value, i.e. an expression with too few or too many operands.
type EvalError struct {
	Reason string
}

func (err *EvalError) Error() string {
	return "invalid expression: " + err.Reason
}

// FactorialError is an error indicating an argument to ! that is not a
// non-negative integer no greater than MaxFactorial.
type FactorialError struct {
	// X is the out-of-domain argument.
	X float64
	// Reason describes the violation.
	Reason string
}

func (err *FactorialError) Error() string {
	return "factorial of " + strconv.FormatFloat(err.X, 'g', -1, 64) + ": " + err.Reason
}

// NotFiniteError is an error indicating an expression whose value is
// infinite or NaN.
type NotFiniteError struct {
	// X is the result.
	X float64
}

func (err *NotFiniteError) Error() string {
	return "result is not finite: " + Format(err.X)
}
