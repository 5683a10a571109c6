package services

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/veridian-labs/dimens-cli/internal/core/domain"
)

// The expression grammar shared by kind definitions, unit definitions
// and the CLI/MCP surfaces:
//
//	expr   := term (('*' | '/') term)*
//	term   := factor ('^' exp)?
//	factor := ident | '1' | '(' expr ')'
//	exp    := ['-'] int | '(' ['-'] int '/' int ')'
//
// Idents resolve against the registry; '1' is the dimensionless spec or
// the unit one, depending on evaluation mode.

type exprNode interface{ isExprNode() }

type identNode string

type oneNode struct{}

type binNode struct {
	op   byte // '*' or '/'
	l, r exprNode
}

type powNode struct {
	base exprNode
	exp  domain.Exponent
}

func (identNode) isExprNode() {}
func (oneNode) isExprNode()   {}
func (binNode) isExprNode()   {}
func (powNode) isExprNode()   {}

type exprParser struct {
	input string
	pos   int
}

// parseExpr parses an expression into its AST without resolving names.
func parseExpr(input string) (exprNode, error) {
	p := &exprParser{input: input}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.input) {
		return nil, fmt.Errorf("%w: unexpected %q at offset %d",
			domain.ErrMalformedExpression, p.rest(), p.pos)
	}
	return node, nil
}

func (p *exprParser) expr() (exprNode, error) {
	node, err := p.term()
	if err != nil {
		return nil, err
	}
	for {
		p.skipSpace()
		switch {
		case p.peek('*'):
			p.pos++
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			node = binNode{op: '*', l: node, r: right}
		case p.peek('/'):
			p.pos++
			right, err := p.term()
			if err != nil {
				return nil, err
			}
			node = binNode{op: '/', l: node, r: right}
		default:
			return node, nil
		}
	}
}

func (p *exprParser) term() (exprNode, error) {
	node, err := p.factor()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.peek('^') {
		return node, nil
	}
	p.pos++
	exp, err := p.exponent()
	if err != nil {
		return nil, err
	}
	return powNode{base: node, exp: exp}, nil
}

func (p *exprParser) factor() (exprNode, error) {
	p.skipSpace()
	switch {
	case p.peek('('):
		p.pos++
		node, err := p.expr()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.peek(')') {
			return nil, fmt.Errorf("%w: missing ')' at offset %d",
				domain.ErrMalformedExpression, p.pos)
		}
		p.pos++
		return node, nil
	case p.peek('1'):
		p.pos++
		return oneNode{}, nil
	default:
		name := p.ident()
		if name == "" {
			return nil, fmt.Errorf("%w: expected name at offset %d",
				domain.ErrMalformedExpression, p.pos)
		}
		return identNode(name), nil
	}
}

func (p *exprParser) exponent() (domain.Exponent, error) {
	p.skipSpace()
	if p.peek('(') {
		p.pos++
		num, err := p.integer()
		if err != nil {
			return domain.Exponent{}, err
		}
		p.skipSpace()
		if !p.peek('/') {
			return domain.Exponent{}, fmt.Errorf("%w: expected '/' in rational exponent at offset %d",
				domain.ErrMalformedExpression, p.pos)
		}
		p.pos++
		den, err := p.integer()
		if err != nil {
			return domain.Exponent{}, err
		}
		p.skipSpace()
		if !p.peek(')') {
			return domain.Exponent{}, fmt.Errorf("%w: missing ')' after exponent at offset %d",
				domain.ErrMalformedExpression, p.pos)
		}
		p.pos++
		return domain.NewExponent(num, den)
	}
	num, err := p.integer()
	if err != nil {
		return domain.Exponent{}, err
	}
	return domain.ExpInt(num), nil
}

func (p *exprParser) integer() (int, error) {
	p.skipSpace()
	start := p.pos
	if p.peek('-') {
		p.pos++
	}
	for p.pos < len(p.input) && p.input[p.pos] >= '0' && p.input[p.pos] <= '9' {
		p.pos++
	}
	n, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil {
		return 0, fmt.Errorf("%w: expected integer at offset %d",
			domain.ErrMalformedExpression, start)
	}
	return n, nil
}

// ident consumes a name: letters, digits, underscores; must start with
// a letter.
func (p *exprParser) ident() string {
	start := p.pos
	for p.pos < len(p.input) {
		c := rune(p.input[p.pos])
		if unicode.IsLetter(c) || c == '_' || (p.pos > start && unicode.IsDigit(c)) {
			p.pos++
			continue
		}
		break
	}
	return p.input[start:p.pos]
}

func (p *exprParser) skipSpace() {
	for p.pos < len(p.input) && p.input[p.pos] == ' ' {
		p.pos++
	}
}

func (p *exprParser) peek(c byte) bool {
	return p.pos < len(p.input) && p.input[p.pos] == c
}

func (p *exprParser) rest() string {
	if p.pos >= len(p.input) {
		return ""
	}
	return p.input[p.pos:]
}

// evalSpec resolves an AST against the registry's kind vocabulary.
func evalSpec(reg *Registry, node exprNode) (domain.QuantitySpec, error) {
	switch n := node.(type) {
	case identNode:
		spec, ok := reg.Spec(string(n))
		if !ok {
			return nil, fmt.Errorf("%w: unknown quantity kind %q", domain.ErrNotFound, string(n))
		}
		return spec, nil
	case oneNode:
		return domain.Dimensionless, nil
	case binNode:
		l, err := evalSpec(reg, n.l)
		if err != nil {
			return nil, err
		}
		r, err := evalSpec(reg, n.r)
		if err != nil {
			return nil, err
		}
		if n.op == '*' {
			return domain.MulSpec(l, r)
		}
		return domain.DivSpec(l, r)
	case powNode:
		base, err := evalSpec(reg, n.base)
		if err != nil {
			return nil, err
		}
		return domain.PowSpec(base, n.exp)
	default:
		return nil, fmt.Errorf("%w: unhandled expression node", domain.ErrMalformedExpression)
	}
}

// evalUnit resolves an AST against the registry's unit vocabulary. The
// unit algebra is total, so only name resolution can fail.
func evalUnit(reg *Registry, node exprNode) (domain.Unit, error) {
	switch n := node.(type) {
	case identNode:
		unit, ok := reg.Unit(string(n))
		if !ok {
			return nil, fmt.Errorf("%w: unknown unit %q", domain.ErrNotFound, string(n))
		}
		return unit, nil
	case oneNode:
		return domain.One, nil
	case binNode:
		l, err := evalUnit(reg, n.l)
		if err != nil {
			return nil, err
		}
		r, err := evalUnit(reg, n.r)
		if err != nil {
			return nil, err
		}
		if n.op == '*' {
			return domain.MulUnit(l, r), nil
		}
		return domain.DivUnit(l, r), nil
	case powNode:
		base, err := evalUnit(reg, n.base)
		if err != nil {
			return nil, err
		}
		return domain.PowUnit(base, n.exp), nil
	default:
		return nil, fmt.Errorf("%w: unhandled expression node", domain.ErrMalformedExpression)
	}
}

// evalLooseSpec resolves idents as kinds first and falls back to the
// associated spec of a unit with that name, so "metre / second" checks
// like "length / time". Used by the check surface only; definitions
// stay strict.
func evalLooseSpec(reg *Registry, node exprNode) (domain.QuantitySpec, error) {
	switch n := node.(type) {
	case identNode:
		if spec, ok := reg.Spec(string(n)); ok {
			return spec, nil
		}
		if unit, ok := reg.Unit(string(n)); ok {
			return domain.AssociatedSpec(unit)
		}
		return nil, fmt.Errorf("%w: unknown kind or unit %q", domain.ErrNotFound, string(n))
	case oneNode:
		return domain.Dimensionless, nil
	case binNode:
		l, err := evalLooseSpec(reg, n.l)
		if err != nil {
			return nil, err
		}
		r, err := evalLooseSpec(reg, n.r)
		if err != nil {
			return nil, err
		}
		if n.op == '*' {
			return domain.MulSpec(l, r)
		}
		return domain.DivSpec(l, r)
	case powNode:
		base, err := evalLooseSpec(reg, n.base)
		if err != nil {
			return nil, err
		}
		return domain.PowSpec(base, n.exp)
	default:
		return nil, fmt.Errorf("%w: unhandled expression node", domain.ErrMalformedExpression)
	}
}

// ParseSpec parses a quantity-spec expression in the registry's
// vocabulary.
func ParseSpec(reg *Registry, input string) (domain.QuantitySpec, error) {
	node, err := parseExpr(input)
	if err != nil {
		return nil, err
	}
	return evalSpec(reg, node)
}

// ParseUnit parses a unit expression in the registry's vocabulary.
// Units resolve by name or symbol.
func ParseUnit(reg *Registry, input string) (domain.Unit, error) {
	node, err := parseExpr(input)
	if err != nil {
		return nil, err
	}
	return evalUnit(reg, node)
}

// ParseReference parses "spec@unit" into a bound reference. A bare unit
// expression (no '@') coerces through its associated spec.
func ParseReference(reg *Registry, input string) (domain.Reference, error) {
	specPart, unitPart, bound := strings.Cut(input, "@")
	if !bound {
		unit, err := ParseUnit(reg, input)
		if err != nil {
			return domain.Reference{}, err
		}
		return domain.ReferenceForUnit(unit)
	}
	spec, err := ParseSpec(reg, specPart)
	if err != nil {
		return domain.Reference{}, err
	}
	unit, err := ParseUnit(reg, unitPart)
	if err != nil {
		return domain.Reference{}, err
	}
	return domain.NewReference(spec, unit)
}
