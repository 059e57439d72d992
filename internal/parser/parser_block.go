package parser

import (
	"wollok/internal/ast"
	"wollok/token"
)

// parseBlockBody reads statements up to the closing brace. The opening
// brace is already consumed.
func (p *Parser) parseBlockBody() *ast.Block {
	block := &ast.Block{Stmts: []ast.Expr{}}

	for {
		p.skipSeparators()
		if p.consumePunct(token.RIGHT_BRACE) {
			return block
		}
		if p.atEnd() {
			p.eof("'}'")
		}
		block.Stmts = append(block.Stmts, p.parseExpr())
	}
}

// parseClosure reads `{ a, b => body }` or `{ body }` after the opening
// brace. A body of exactly one statement is kept as that expression.
func (p *Parser) parseClosure() *ast.ExprClosure {
	closure := &ast.ExprClosure{Params: []string{}}

	p.optional(func() bool {
		params, ok := p.closureParams()
		if ok {
			closure.Params = params
		}
		return ok
	})

	body := p.parseBlockBody()
	if len(body.Stmts) == 1 {
		closure.Body = body.Stmts[0]
	} else {
		closure.Body = &ast.ExprBlock{Body: body}
	}
	return closure
}

// closureParams speculatively reads `a, b =>`.
func (p *Parser) closureParams() ([]string, bool) {
	var params []string

	p.skipTrivia()
	for {
		tok, ok := p.peek()
		if !ok || tok.Token.Kind != token.IDENTIFIER {
			return nil, false
		}
		p.advance()
		params = append(params, tok.Token.Text)

		switch {
		case p.consumePunct(token.COMMA):
			p.skipTrivia()
		case p.consumePunct(token.FAT_ARROW):
			return params, true
		default:
			return nil, false
		}
	}
}

// atTerminator reports whether the next token ends a statement.
func (p *Parser) atTerminator() bool {
	tok, ok := p.peek()
	return !ok ||
		tok.Token.IsTrivia() ||
		tok.Token.IsPunct(token.SEMICOLON) ||
		tok.Token.IsPunct(token.RIGHT_BRACE)
}
