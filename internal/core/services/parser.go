package services

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// ParseExpression parses a unit expression such as "kg*m/s^2" into its terms.
//
// An expression is one or more groups separated by '/'. A group is one or more
// factors separated by '*'. A factor is a unit symbol or a parenthesised
// expression, optionally followed by '^' and a signed integer exponent.
// Every factor after the first '/' contributes its negated exponent, so
// "a/b/c" is "a*b^-1*c^-1". Whitespace is removed before parsing.
//
// Parsing is purely syntactic: symbols are not checked against any registry.
// Every resulting exponent lies within domain.MaxExponent.
// All failures are *domain.ExpressionError values wrapping domain.ErrMalformedExpression.
func ParseExpression(expression string) (domain.CompoundUnit, error) {
	p := &parser{
		input: expression,
		src:   stripSpace(expression),
	}

	if p.src == "" {
		return nil, p.fail("empty expression")
	}

	terms, err := p.expression()
	if err != nil {
		return nil, err
	}

	if !p.done() {
		if p.peek() == ')' {
			return nil, p.fail("unbalanced ')'")
		}
		return nil, p.fail(fmt.Sprintf("unexpected %s", p.describe()))
	}

	return terms, nil
}

// stripSpace removes every whitespace rune.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// parser is a recursive descent parser over the whitespace-stripped input.
type parser struct {
	input string
	src   string
	pos   int
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

func (p *parser) peek() byte {
	if p.done() {
		return 0
	}
	return p.src[p.pos]
}

// describe names the token at the current position for error messages.
func (p *parser) describe() string {
	if p.done() {
		return "end of expression"
	}
	r, _ := utf8.DecodeRuneInString(p.src[p.pos:])
	return strconv.QuoteRune(r)
}

func (p *parser) fail(reason string) error {
	return p.failAt(p.pos, reason)
}

func (p *parser) failAt(pos int, reason string) error {
	return &domain.ExpressionError{
		Expression: p.input,
		Pos:        pos,
		Reason:     reason,
	}
}

// expression := group ( '/' group )*
func (p *parser) expression() (domain.CompoundUnit, error) {
	terms, err := p.group()
	if err != nil {
		return nil, err
	}

	for p.peek() == '/' {
		p.pos++
		divisor, err := p.group()
		if err != nil {
			return nil, err
		}
		for _, t := range divisor {
			t.Exponent = -t.Exponent
			terms = append(terms, t)
		}
	}

	return terms, nil
}

// group := factor ( '*' factor )*
func (p *parser) group() (domain.CompoundUnit, error) {
	terms, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.peek() == '*' {
		p.pos++
		more, err := p.factor()
		if err != nil {
			return nil, err
		}
		terms = append(terms, more...)
	}

	return terms, nil
}

// factor := atom ( '^' integer )?
func (p *parser) factor() (domain.CompoundUnit, error) {
	terms, err := p.atom()
	if err != nil {
		return nil, err
	}

	if p.peek() != '^' {
		return terms, nil
	}
	p.pos++

	at := p.pos
	exp, err := p.exponent()
	if err != nil {
		return nil, err
	}
	for i := range terms {
		e := int64(terms[i].Exponent) * int64(exp)
		if !domain.ExponentInRange(e) {
			return nil, p.failAt(at, "exponent out of range")
		}
		terms[i].Exponent = int(e)
	}

	return terms, nil
}

// atom := symbol | '(' expression ')'
func (p *parser) atom() (domain.CompoundUnit, error) {
	c := p.peek()
	switch {
	case p.done():
		return nil, p.fail("expected unit symbol, found end of expression")

	case c == '(':
		open := p.pos
		p.pos++
		if p.peek() == ')' {
			return nil, p.fail("empty parentheses")
		}
		terms, err := p.expression()
		if err != nil {
			return nil, err
		}
		if p.peek() != ')' {
			return nil, p.failAt(open, "unbalanced '('")
		}
		p.pos++
		return terms, nil

	case domain.IsSymbolByte(c):
		start := p.pos
		for !p.done() && domain.IsSymbolByte(p.peek()) {
			p.pos++
		}
		return domain.CompoundUnit{{Symbol: p.src[start:p.pos], Exponent: 1}}, nil

	case isOperator(c):
		return nil, p.fail(fmt.Sprintf("expected unit symbol, found %s", p.describe()))

	default:
		return nil, p.fail(fmt.Sprintf("invalid character %s", p.describe()))
	}
}

// exponent := ( '+' | '-' )? digit+
// Fractional exponents and magnitudes above domain.MaxExponent are rejected.
func (p *parser) exponent() (int, error) {
	start := p.pos
	if c := p.peek(); c == '+' || c == '-' {
		p.pos++
	}

	digits := p.pos
	for !p.done() && p.peek() >= '0' && p.peek() <= '9' {
		p.pos++
	}
	if p.pos == digits {
		return 0, p.fail(fmt.Sprintf("exponent must be an integer, found %s", p.describe()))
	}
	if c := p.peek(); c == '.' || c == ',' {
		return 0, p.failAt(start, "exponent must be an integer")
	}

	exp, err := strconv.Atoi(p.src[start:p.pos])
	if err != nil || !domain.ExponentInRange(exp) {
		return 0, p.failAt(start, "exponent out of range")
	}
	return exp, nil
}

func isOperator(c byte) bool {
	switch c {
	case '*', '/', '^', ')':
		return true
	default:
		return false
	}
}
