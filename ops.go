package calc

import (
	"math"
	"strconv"
	"strings"
)

// opKind identifies an operator.
type opKind int8

const (
	opNone opKind = iota

	opAdd     // a + b
	opSub     // a - b
	opMul     // a * b
	opDiv     // a / b
	opMod     // a mod b, sign of a
	opPow     // a ^ b
	opNeg     // -a
	opPercent // a %
	opFact    // a !
)

func (k opKind) String() string {
	switch k {
	case opNone:
		return "none"
	case opAdd:
		return "+"
	case opSub:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opMod:
		return "mod"
	case opPow:
		return "^"
	case opNeg:
		return "neg"
	case opPercent:
		return "%"
	case opFact:
		return "!"
	default:
		return "opKind(" + strconv.Itoa(int(k)) + ")"
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// arity is the number of operands, 1 or 2.
	arity int8
	// postfix indicates an operator written after its operand. Postfix
	// operators bypass the operator stack.
	postfix bool
	// op is the operator this descriptor describes.
	op opKind
}

// resolvesBefore reports whether an operator already on the stack must be
// output before p is pushed.
func (p operator) resolvesBefore(top operator) bool {
	if p.right {
		return p.prec < top.prec
	}
	return p.prec <= top.prec
}

// describe gets the descriptor for an operator kind.
func describe(k opKind) operator {
	switch k {
	case opAdd, opSub:
		return operator{prec: 1, arity: 2, op: k}
	case opMul, opDiv, opMod:
		return operator{prec: 2, arity: 2, op: k}
	case opNeg:
		return operator{prec: 3, right: true, arity: 1, op: k}
	case opPow:
		return operator{prec: 4, right: true, arity: 2, op: k}
	case opPercent:
		return operator{prec: 5, arity: 1, postfix: true, op: k}
	case opFact:
		return operator{prec: 6, arity: 1, postfix: true, op: k}
	default:
		panic("calc: invalid operator " + k.String())
	}
}

// binop gets the binary operator for a symbol. If there is no such operator,
// the result is opNone.
func binop(text string) opKind {
	switch text {
	case "+":
		return opAdd
	case "-":
		return opSub
	case "*":
		return opMul
	case "/":
		return opDiv
	case "^":
		return opPow
	case "mod":
		return opMod
	default:
		return opNone
	}
}

// apply computes an operator on its operands. For unary operators, b is
// ignored.
func (k opKind) apply(a, b float64) (float64, error) {
	switch k {
	case opAdd:
		return a + b, nil
	case opSub:
		return a - b, nil
	case opMul:
		return a * b, nil
	case opDiv:
		return a / b, nil
	case opMod:
		return math.Mod(a, b), nil
	case opPow:
		return math.Pow(a, b), nil
	case opNeg:
		return -a, nil
	case opPercent:
		return a / 100, nil
	case opFact:
		return factorial(a)
	default:
		panic("calc: apply of invalid operator " + k.String())
	}
}

// MaxFactorial is the largest argument of ! whose result is finite.
const MaxFactorial = 170

func factorial(x float64) (float64, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, &FactorialError{X: x, Reason: "not finite"}
	}
	n := math.Round(x)
	if math.Abs(n-x) > 1e-10 {
		return 0, &FactorialError{X: x, Reason: "not an integer"}
	}
	if n < 0 {
		return 0, &FactorialError{X: x, Reason: "negative"}
	}
	if n > MaxFactorial {
		return 0, &FactorialError{X: x, Reason: "too large"}
	}
	r := 1.0
	for i := 2.0; i <= n; i++ {
		r *= i
	}
	return r, nil
}

// funcKind identifies a function of one argument.
type funcKind int8

const (
	fnNone funcKind = iota

	fnSin
	fnCos
	fnTan
	fnLn
	fnLog
	fnSqrt
	fnAbs
)

func (k funcKind) String() string {
	switch k {
	case fnNone:
		return "none"
	case fnSin:
		return "sin"
	case fnCos:
		return "cos"
	case fnTan:
		return "tan"
	case fnLn:
		return "ln"
	case fnLog:
		return "log"
	case fnSqrt:
		return "sqrt"
	case fnAbs:
		return "abs"
	default:
		return "funcKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// lookupFunc gets the function with a name. If there is no such function,
// the result is fnNone.
func lookupFunc(name string) funcKind {
	switch name {
	case "sin":
		return fnSin
	case "cos":
		return fnCos
	case "tan":
		return fnTan
	case "ln":
		return fnLn
	case "log":
		return fnLog
	case "sqrt":
		return fnSqrt
	case "abs":
		return fnAbs
	default:
		return fnNone
	}
}

// call evaluates a function. Only the trigonometric functions depend on the
// angle mode.
func (k funcKind) call(x float64, mode AngleMode) float64 {
	switch k {
	case fnSin:
		return math.Sin(mode.radians(x))
	case fnCos:
		return math.Cos(mode.radians(x))
	case fnTan:
		return math.Tan(mode.radians(x))
	case fnLn:
		return math.Log(x)
	case fnLog:
		return math.Log10(x)
	case fnSqrt:
		return math.Sqrt(x)
	case fnAbs:
		return math.Abs(x)
	default:
		panic("calc: call of invalid function " + k.String())
	}
}

// lookupConst gets the value of a named constant.
func lookupConst(name string) (float64, bool) {
	switch name {
	case "pi":
		return math.Pi, true
	case "e":
		return math.E, true
	default:
		return 0, false
	}
}

// AngleMode selects the unit of the arguments of sin, cos, and tan.
type AngleMode bool

const (
	Degrees AngleMode = true
	Radians AngleMode = false
)

func (m AngleMode) radians(x float64) float64 {
	if m == Degrees {
		return x * math.Pi / 180
	}
	return x
}

func (m AngleMode) String() string {
	if m == Degrees {
		return "DEG"
	}
	return "RAD"
}

// ParseAngleMode parses "deg", "degrees", "rad", or "radians", ignoring case.
func ParseAngleMode(s string) (AngleMode, error) {
	switch strings.ToLower(s) {
	case "deg", "degree", "degrees":
		return Degrees, nil
	case "rad", "radian", "radians":
		return Radians, nil
	default:
		return Degrees, &AngleModeError{Mode: s}
	}
}

// AngleModeError indicates an unrecognized angle mode name.
type AngleModeError struct {
	Mode string
}

func (err *AngleModeError) Error() string {
	return "unknown angle mode " + strconv.Quote(err.Mode) + " (want deg or rad)"
}
