package engine

import (
	"fmt"
	"math"
	"strconv"

	"github.com/zhubert/tally/internal/errors"
)

// Evaluate parses and computes text as an infix arithmetic expression over
// + - * / with parentheses, conventional precedence, left-to-right
// associativity, and unary minus. It supports nothing else: no identifiers,
// no calls, no attribute access. That restriction is what makes the
// evaluator safe to run on raw user input.
//
// Grammar:
//
//	expr   = term   { ("+" | "-") term }
//	term   = unary  { ("*" | "/") unary }
//	unary  = "-" unary | factor
//	factor = number | "(" expr ")"
func Evaluate(text string) (float64, error) {
	p := &parser{input: text}

	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}

	p.skipSpaces()
	if p.pos < len(p.input) {
		return 0, errors.MalformedExpression(fmt.Sprintf("unexpected %q", string(p.input[p.pos])))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, errors.NonFiniteResult()
	}
	return value, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

// parseExpr handles the loosest-binding level, addition and subtraction.
func (p *parser) parseExpr() (float64, error) {
	value, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value += rhs
		case '-':
			p.pos++
			rhs, err := p.parseTerm()
			if err != nil {
				return 0, err
			}
			value -= rhs
		default:
			return value, nil
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	value, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		p.skipSpaces()
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			value *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, errors.DivisionByZero()
			}
			value /= rhs
		default:
			return value, nil
		}
	}
}

func (p *parser) parseUnary() (float64, error) {
	p.skipSpaces()
	if p.peek() == '-' {
		p.pos++
		value, err := p.parseUnary()
		return -value, err
	}
	return p.parseFactor()
}

func (p *parser) parseFactor() (float64, error) {
	p.skipSpaces()
	if p.peek() == '(' {
		p.pos++
		value, err := p.parseExpr()
		if err != nil {
			return 0, err
		}
		p.skipSpaces()
		if p.peek() != ')' {
			return 0, errors.MalformedExpression("missing closing parenthesis")
		}
		p.pos++
		return value, nil
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		if (c >= '0' && c <= '9') || c == '.' {
			p.pos++
		} else {
			break
		}
	}
	if p.pos == start {
		if p.pos >= len(p.input) {
			return 0, errors.MalformedExpression("unexpected end of expression")
		}
		return 0, errors.MalformedExpression(fmt.Sprintf("unexpected %q", string(p.input[p.pos])))
	}

	text := p.input[start:p.pos]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, errors.MalformedExpression(fmt.Sprintf("bad number %q", text))
	}
	return value, nil
}
