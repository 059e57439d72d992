package parser

import (
	"wollok/internal/ast"
	"wollok/token"
)

// parseCollection reads comma separated expressions up to and including
// closing. The opening delimiter is already consumed. A trailing comma is
// accepted, and newlines or comments between elements are ignored.
func (p *Parser) parseCollection(closing token.Punctuation) []ast.Expr {
	elements := []ast.Expr{}
	end := token.Punct(closing)

	p.skipTrivia()
	if p.consume(end) {
		return elements
	}

	for {
		p.skipTrivia()
		elements = append(elements, p.parseExpr())
		p.skipTrivia()

		what := "',' or " + end.Describe()
		tok := p.expect(what)
		switch {
		case tok.Token.IsPunct(token.COMMA):
			p.skipTrivia()
			if p.consume(end) {
				return elements
			}
		case tok.Token == end:
			return elements
		default:
			p.unexpected(tok, what)
		}
	}
}

// parseArgs reads a parenthesized argument list.
func (p *Parser) parseArgs() []ast.Expr {
	p.expectPunct(token.LEFT_PAREN)
	return p.parseCollection(token.RIGHT_PAREN)
}

// parseParams reads `(a, b)`. A trailing comma is rejected.
func (p *Parser) parseParams() []string {
	params := []string{}

	p.expectPunct(token.LEFT_PAREN)
	if p.consumePunct(token.RIGHT_PAREN) {
		return params
	}

	for {
		params = append(params, p.expectIdent("parameter name"))

		tok := p.expect("',' or ')'")
		switch {
		case tok.Token.IsPunct(token.COMMA):
			if next, ok := p.peek(); ok && next.Token.IsPunct(token.RIGHT_PAREN) {
				p.errorAt(next.Span, "expected parameter name, found trailing ','")
			}
		case tok.Token.IsPunct(token.RIGHT_PAREN):
			return params
		default:
			p.unexpected(tok, "',' or ')'")
		}
	}
}

// parseSuperclasses reads the names after `inherits`. At least one name
// is required and a trailing comma before the body is rejected.
func (p *Parser) parseSuperclasses() []string {
	supers := []string{p.expectIdent("superclass identifier")}

	for p.consumePunct(token.COMMA) {
		if next, ok := p.peek(); ok && next.Token.IsPunct(token.LEFT_BRACE) {
			p.errorAt(next.Span, "expected superclass identifier, found trailing ','")
		}
		supers = append(supers, p.expectIdent("superclass identifier"))
	}

	return supers
}

// parseQualifiedName reads `a.b.c`. It reports whether the name ended in
// a `.*` wildcard.
func (p *Parser) parseQualifiedName(what string) (string, bool) {
	name := p.expectIdent(what)

	for p.consumePunct(token.DOT) {
		if p.consumePunct(token.STAR) {
			return name, true
		}
		name += "." + p.expectIdent(what)
	}

	return name, false
}

// parseNameOrString reads a test or describe name, which may be quoted.
func (p *Parser) parseNameOrString(what string) string {
	tok := p.expectMatch(what, func(t token.Token) bool {
		return t.Kind == token.IDENTIFIER || (t.Kind == token.LITERAL && t.Literal.Kind == token.STRING)
	})
	if tok.Token.Kind == token.IDENTIFIER {
		return tok.Token.Text
	}
	return tok.Token.Literal.Str
}
