// Copyright 2018 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"strconv"
	"strings"
)

var (
	errExprParse = errors.New("expression syntax error")
	errDivide    = errors.New("division by zero")
)

// ErrBadNumber is returned when a numeric literal cannot be parsed.
var ErrBadNumber = errors.New("invalid number")

type resolver interface {
	resolveIdentifier(s string) (int64, error)
}

type binaryOp struct {
	symbol string
	eval   func(a, b int64) (int64, error)
}

// Binary operators grouped by precedence, lowest first.
var binaryOps = [][]binaryOp{
	{{"|", func(a, b int64) (int64, error) { return a | b, nil }}},
	{{"^", func(a, b int64) (int64, error) { return a ^ b, nil }}},
	{{"&", func(a, b int64) (int64, error) { return a & b, nil }}},
	{
		{"<<", func(a, b int64) (int64, error) { return a << uint32(b), nil }},
		{">>", func(a, b int64) (int64, error) { return a >> uint32(b), nil }},
	},
	{
		{"+", func(a, b int64) (int64, error) { return a + b, nil }},
		{"-", func(a, b int64) (int64, error) { return a - b, nil }},
	},
	{
		{"*", func(a, b int64) (int64, error) { return a * b, nil }},
		{"/", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivide
			}
			return a / b, nil
		}},
		{"%", func(a, b int64) (int64, error) {
			if b == 0 {
				return 0, errDivide
			}
			return a % b, nil
		}},
	},
}

//
// exprParser
//

// An exprParser evaluates integer expressions typed at the host prompt.
// Operands are numbers ($hex, 0xhex, %binary, 0bbinary, decimal), quoted
// characters ('A') and identifiers such as register names. The unary
// operators '<' and '>' select the low and high byte of their operand.
type exprParser struct {
	hexMode bool
	t       tstring
	r       resolver
}

func newExprParser() *exprParser {
	return &exprParser{}
}

func (p *exprParser) Parse(expr string, r resolver) (int64, error) {
	p.t, p.r = tstring(expr), r
	defer func() { p.t, p.r = "", nil }()

	v, err := p.parseBinary(0)
	if err != nil {
		return 0, err
	}
	if p.t = p.t.consumeWhitespace(); len(p.t) > 0 {
		return 0, errExprParse
	}
	return v, nil
}

func (p *exprParser) parseBinary(level int) (int64, error) {
	if level == len(binaryOps) {
		return p.parseUnary()
	}

	a, err := p.parseBinary(level + 1)
	if err != nil {
		return 0, err
	}

	for {
		op := p.matchOp(binaryOps[level])
		if op == nil {
			return a, nil
		}
		b, err := p.parseBinary(level + 1)
		if err != nil {
			return 0, err
		}
		if a, err = op.eval(a, b); err != nil {
			return 0, err
		}
	}
}

func (p *exprParser) matchOp(ops []binaryOp) *binaryOp {
	p.t = p.t.consumeWhitespace()
	for i := range ops {
		if strings.HasPrefix(string(p.t), ops[i].symbol) {
			p.t = p.t.consume(len(ops[i].symbol))
			return &ops[i]
		}
	}
	return nil
}

func (p *exprParser) parseUnary() (int64, error) {
	p.t = p.t.consumeWhitespace()
	if len(p.t) == 0 {
		return 0, errExprParse
	}

	switch c := p.t[0]; c {
	case '-', '+', '~', '<', '>':
		p.t = p.t.consume(1)
		v, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		switch c {
		case '-':
			return -v, nil
		case '~':
			return ^v, nil
		case '<':
			return v & 0xff, nil
		case '>':
			return (v >> 8) & 0xff, nil
		default:
			return v, nil
		}

	case '(':
		p.t = p.t.consume(1)
		v, err := p.parseBinary(0)
		if err != nil {
			return 0, err
		}
		p.t = p.t.consumeWhitespace()
		if len(p.t) == 0 || p.t[0] != ')' {
			return 0, errExprParse
		}
		p.t = p.t.consume(1)
		return v, nil

	case '\'':
		if len(p.t) < 3 || p.t[2] != '\'' {
			return 0, errExprParse
		}
		v := int64(p.t[1])
		p.t = p.t.consume(3)
		return v, nil

	default:
		return p.parseOperand()
	}
}

func (p *exprParser) parseOperand() (int64, error) {
	c := p.t[0]
	switch {
	case c == '$' || c == '%' || decimal(c):
		return p.parseNumber()
	case identifier(c):
		var id tstring
		id, p.t = p.t.consumeWhile(identifier)
		if p.hexMode && id.scanWhile(hexadecimal) == len(id) {
			return parseInt(string(id), 16)
		}
		return p.r.resolveIdentifier(string(id))
	default:
		return 0, errExprParse
	}
}

func (p *exprParser) parseNumber() (int64, error) {
	base, fn, num := 10, decimal, p.t
	if p.hexMode {
		base, fn = 16, hexadecimal
	}

	switch {
	case num[0] == '$':
		base, fn, num = 16, hexadecimal, num.consume(1)
	case num[0] == '%':
		base, fn, num = 2, binary, num.consume(1)
	case len(num) > 1 && num[0] == '0' && (num[1] == 'x' || num[1] == 'b' || num[1] == 'd'):
		switch num[1] {
		case 'x':
			base, fn = 16, hexadecimal
		case 'b':
			base, fn = 2, binary
		case 'd':
			base, fn = 10, decimal
		}
		num = num.consume(2)
	}

	var digits tstring
	digits, num = num.consumeWhile(fn)
	if len(num) > 0 && identifier(num[0]) {
		return 0, ErrBadNumber
	}
	p.t = num
	return parseInt(string(digits), base)
}

func parseInt(s string, base int) (int64, error) {
	if s == "" {
		return 0, ErrBadNumber
	}
	v, err := strconv.ParseInt(s, base, 64)
	if err != nil {
		return 0, ErrBadNumber
	}
	return v, nil
}

//
// tstring
//

type tstring string

func (t tstring) consume(n int) tstring {
	return t[n:]
}

func (t tstring) consumeWhitespace() tstring {
	return t.consume(t.scanWhile(whitespace))
}

func (t tstring) scanWhile(fn func(c byte) bool) int {
	i := 0
	for ; i < len(t) && fn(t[i]); i++ {
	}
	return i
}

func (t tstring) consumeWhile(fn func(c byte) bool) (consumed, remain tstring) {
	i := t.scanWhile(fn)
	return t[:i], t[i:]
}

func whitespace(c byte) bool {
	return c == ' ' || c == '\t'
}

func decimal(c byte) bool {
	return (c >= '0' && c <= '9')
}

func hexadecimal(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func binary(c byte) bool {
	return c == '0' || c == '1'
}

func identifier(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '_' || c == '.'
}
