package calc

import (
	"fmt"
	"math"
)

type opEntry struct {
	op  byte
	pos int
}

type pendingFunc struct {
	name string
	fn   mathFunc
	pos  int
}

// machine is the per-call evaluation state.
type machine struct {
	cfg   Config
	vals  stack[float64]
	ops   stack[opEntry]
	funcs stack[pendingFunc]

	neg    bool
	negPos int
}

// Eval evaluates one line of calculator input.
func Eval(line string, cfg Config) (float64, error) {
	cfg = cfg.withDefaults()
	if len(line) > cfg.MaxInput {
		return 0, newError(ErrCapacityExceeded, cfg.MaxInput, fmt.Sprintf("input longer than %d bytes", cfg.MaxInput))
	}

	m := &machine{
		cfg:   cfg,
		vals:  newStack[float64](cfg.MaxDepth),
		ops:   newStack[opEntry](cfg.MaxDepth),
		funcs: newStack[pendingFunc](cfg.MaxDepth),
	}
	lx := lexer{s: line}
	for {
		tok, err := lx.next()
		if err != nil {
			return 0, err
		}
		switch tok.kind {
		case tokEOF:
			return m.finish(tok.pos)
		case tokNumber:
			err = m.number(tok)
		case tokNeg:
			m.neg = true
			m.negPos = tok.pos
		case tokIdent:
			err = m.function(tok)
		case tokLParen:
			err = m.pushOp('(', tok.pos)
		case tokRParen:
			err = m.closeGroup(tok.pos)
		case tokOp:
			err = m.operator(tok)
		}
		if err != nil {
			return 0, err
		}
	}
}

func precedence(op byte) int {
	switch op {
	case '+', '-':
		return 1
	case '*', '/':
		return 2
	case '^':
		return 3
	}
	return 0
}

func (m *machine) pushVal(v float64, pos int) error {
	if !m.vals.push(v) {
		return newError(ErrCapacityExceeded, pos, "too many operands")
	}
	return nil
}

func (m *machine) pushOp(op byte, pos int) error {
	if !m.ops.push(opEntry{op: op, pos: pos}) {
		return newError(ErrCapacityExceeded, pos, "too many pending operators")
	}
	return nil
}

func (m *machine) number(tok token) error {
	v := tok.num
	if m.neg {
		v = -v
		m.neg = false
	}
	if err := m.pushVal(v, tok.pos); err != nil {
		return err
	}
	if tok.mulNext {
		// Implicit product goes straight onto the stack without resolving
		// what is already there.
		return m.pushOp('*', tok.pos+len(tok.text))
	}
	return nil
}

func (m *machine) function(tok token) error {
	fn, ok := functions[tok.text]
	if !ok {
		return newError(ErrUnknownFunction, tok.pos, tok.text)
	}
	if !m.funcs.push(pendingFunc{name: tok.text, fn: fn, pos: tok.pos}) {
		return newError(ErrCapacityExceeded, tok.pos, "too many pending functions")
	}
	return nil
}

// operator resolves every stacked operator of equal or higher precedence,
// then pushes the new one. "(" has precedence 0 and stops the loop.
func (m *machine) operator(tok token) error {
	p := precedence(tok.op)
	for {
		top, ok := m.ops.peek()
		if !ok || precedence(top.op) < p {
			break
		}
		if err := m.apply(); err != nil {
			return err
		}
	}
	return m.pushOp(tok.op, tok.pos)
}

func (m *machine) apply() error {
	top, _ := m.ops.pop()
	if m.vals.len() < 2 {
		return newError(ErrIncomplete, top.pos, fmt.Sprintf("operator %c needs two operands", top.op))
	}
	b, _ := m.vals.pop()
	a, _ := m.vals.pop()

	var r float64
	switch top.op {
	case '+':
		r = a + b
	case '-':
		r = a - b
	case '*':
		r = a * b
	case '/':
		if b == 0 {
			if !m.cfg.ClampDivZero {
				return newError(ErrDivisionByZero, top.pos, "")
			}
			r = 0
		} else {
			r = a / b
		}
	case '^':
		r = math.Pow(a, b)
	default:
		return newError(ErrUnexpectedChar, top.pos, string(top.op))
	}
	return m.pushVal(r, top.pos)
}

// closeGroup resolves back to the matching "(" and then applies the most
// recently scanned pending function, if any, to the group's value.
func (m *machine) closeGroup(pos int) error {
	for {
		top, ok := m.ops.peek()
		if !ok {
			return newError(ErrUnmatchedParenthesis, pos, "no matching (")
		}
		if top.op == '(' {
			m.ops.pop()
			break
		}
		if err := m.apply(); err != nil {
			return err
		}
	}
	if m.funcs.len() == 0 {
		return nil
	}
	f, _ := m.funcs.pop()
	return m.call(f)
}

func (m *machine) call(f pendingFunc) error {
	x, ok := m.vals.pop()
	if !ok {
		return newError(ErrIncomplete, f.pos, f.name+" has no argument")
	}
	v, err := f.fn(x, m.cfg.Angle)
	if err != nil {
		return newError(err, f.pos, fmt.Sprintf("%s(%g)", f.name, x))
	}
	return m.pushVal(v, f.pos)
}

func (m *machine) finish(end int) (float64, error) {
	if m.neg {
		return 0, newError(ErrIncomplete, m.negPos, "negation without a number")
	}
	for m.ops.len() > 0 {
		top, _ := m.ops.peek()
		if top.op == '(' {
			return 0, newError(ErrUnmatchedParenthesis, top.pos, "missing )")
		}
		if err := m.apply(); err != nil {
			return 0, err
		}
	}
	for m.funcs.len() > 0 {
		f, _ := m.funcs.pop()
		if err := m.call(f); err != nil {
			return 0, err
		}
	}

	switch m.vals.len() {
	case 1:
		v, _ := m.vals.pop()
		return v, nil
	case 0:
		return 0, newError(ErrIncomplete, end, "empty expression")
	default:
		return 0, newError(ErrIncomplete, end, "missing operator")
	}
}
