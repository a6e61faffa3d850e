package calc

import (
	"strconv"
	"strings"
)

// Expr = num | const | Call | Neg | Add | Sub | Mul | Div | Mod | Pow | Percent | Fact | '(' Expr ')'
// Call = funcname '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Mod = Expr 'mod' Expr
// Pow = Expr '^' Expr
// Percent = Expr '%'
// Fact = Expr '!'

// Expr is a parsed expression in postfix order that can be evaluated with a
// context.
type Expr struct {
	rpn []rpnToken
}

type rpnToken struct {
	kind rpnKind
	num  float64
	op   opKind
	fn   funcKind
}

type rpnKind int8

const (
	rpnNone rpnKind = iota
	// rpnNum pushes num.
	rpnNum
	// rpnOp applies op to the top one or two values.
	rpnOp
	// rpnFunc applies fn to the top value.
	rpnFunc
	// rpnParen is an open parenthesis. It only appears on the parser's
	// operator stack, never in an Expr.
	rpnParen
)

func (t rpnToken) String() string {
	switch t.kind {
	case rpnNum:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case rpnOp:
		return t.op.String()
	case rpnFunc:
		return t.fn.String()
	case rpnParen:
		return "("
	default:
		panic("calc: invalid postfix token kind " + strconv.Itoa(int(t.kind)))
	}
}

// class is the kind of the previous token, used to tell unary minus from
// binary minus.
type class int8

const (
	classStart class = iota
	classValue
	classOperator
	classLeftParen
	classComma
	classFunction
)

// unaryContext reports whether a minus sign following a token of class c is
// a negation.
func (c class) unaryContext() bool {
	switch c {
	case classStart, classOperator, classLeftParen, classComma, classFunction:
		return true
	default:
		return false
	}
}

// parser holds the state of one shunting-yard pass.
type parser struct {
	out   []rpnToken
	stack []rpnToken
	prev  class
}

// Parse parses an expression so it can be evaluated with a context.
func Parse(src string) (*Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	rpn, err := toPostfix(toks)
	if err != nil {
		return nil, err
	}
	return &Expr{rpn: rpn}, nil
}

// toPostfix reorders infix tokens into postfix order.
func toPostfix(toks []token) ([]rpnToken, error) {
	p := parser{
		out:   make([]rpnToken, 0, len(toks)),
		stack: make([]rpnToken, 0, 8),
		prev:  classStart,
	}
	for i, tok := range toks {
		switch tok.kind {
		case tokenNum:
			p.output(rpnToken{kind: rpnNum, num: tok.num})
			p.prev = classValue
		case tokenName:
			call := i+1 < len(toks) && toks[i+1].kind == tokenSym && toks[i+1].text == "("
			if err := p.name(tok.text, call); err != nil {
				return nil, err
			}
		case tokenSym:
			if err := p.symbol(tok.text); err != nil {
				return nil, err
			}
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
	for len(p.stack) > 0 {
		top := p.pop()
		if top.kind == rpnParen {
			return nil, &BracketError{Left: "("}
		}
		p.output(top)
	}
	return p.out, nil
}

// name handles an identifier. call is whether the next token is an open
// parenthesis.
func (p *parser) name(name string, call bool) error {
	if fn := lookupFunc(name); fn != fnNone && call {
		p.push(rpnToken{kind: rpnFunc, fn: fn})
		p.prev = classFunction
		return nil
	}
	if v, ok := lookupConst(name); ok {
		p.output(rpnToken{kind: rpnNum, num: v})
		p.prev = classValue
		return nil
	}
	if op := binop(name); op == opMod {
		p.operator(op)
		p.prev = classOperator
		return nil
	}
	return &NameError{Name: name}
}

// symbol handles a one-character symbol.
func (p *parser) symbol(sym string) error {
	switch sym {
	case "(":
		p.push(rpnToken{kind: rpnParen})
		p.prev = classLeftParen
	case ")":
		if !p.unwind() {
			return &BracketError{Right: ")"}
		}
		p.pop()
		if p.top().kind == rpnFunc {
			p.output(p.pop())
		}
		p.prev = classValue
	case ",":
		// No function takes more than one argument, so a comma can never be
		// valid. It still closes the operators of its group so that it
		// reports the bracket structure when misplaced.
		if !p.unwind() {
			return &SeparatorError{Sep: sym}
		}
		p.prev = classComma
	case "%":
		p.output(rpnToken{kind: rpnOp, op: opPercent})
		p.prev = classValue
	case "!":
		p.output(rpnToken{kind: rpnOp, op: opFact})
		p.prev = classValue
	default:
		op := binop(sym)
		if op == opNone {
			return &OperatorError{Operator: sym}
		}
		if op == opSub && p.prev.unaryContext() {
			op = opNeg
		}
		p.operator(op)
		p.prev = classOperator
	}
	return nil
}

// operator pushes an operator after outputting every stacked operator that
// binds at least as tightly.
func (p *parser) operator(op opKind) {
	cur := describe(op)
	for len(p.stack) > 0 {
		top := p.top()
		if top.kind != rpnOp || !cur.resolvesBefore(describe(top.op)) {
			break
		}
		p.output(p.pop())
	}
	p.push(rpnToken{kind: rpnOp, op: op})
}

// unwind outputs operators down to the nearest open parenthesis, leaving the
// parenthesis on the stack. Returns false if the stack empties first.
func (p *parser) unwind() bool {
	for len(p.stack) > 0 {
		if p.top().kind == rpnParen {
			return true
		}
		p.output(p.pop())
	}
	return false
}

func (p *parser) output(t rpnToken) {
	p.out = append(p.out, t)
}

func (p *parser) push(t rpnToken) {
	p.stack = append(p.stack, t)
}

func (p *parser) pop() rpnToken {
	t := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	return t
}

// top returns the top of the stack, or the zero token if the stack is empty.
func (p *parser) top() rpnToken {
	if len(p.stack) == 0 {
		return rpnToken{}
	}
	return p.stack[len(p.stack)-1]
}

// String renders the postfix program with spaces between tokens.
func (e *Expr) String() string {
	var b strings.Builder
	for i, t := range e.rpn {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
