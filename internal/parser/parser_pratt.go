package parser

import (
	"math"

	"wollok/internal/ast"
	"wollok/token"
)

var binaryOperators = map[token.Punctuation]ast.BinaryOp{
	token.OR:            ast.OR,
	token.AND:           ast.AND,
	token.EQUAL_EQUAL:   ast.EQ,
	token.BANG_EQUAL:    ast.NE,
	token.LESS:          ast.LT,
	token.LESS_EQUAL:    ast.LE,
	token.GREATER:       ast.GT,
	token.GREATER_EQUAL: ast.GE,
	token.PLUS:          ast.ADD,
	token.MINUS:         ast.SUB,
	token.STAR:          ast.MUL,
	token.SLASH:         ast.DIV,
	token.PERCENT:       ast.MOD,
	token.CARET:         ast.POW,
}

// parseExpr parses an expression including assignment, which is right
// associative and only accepts a field as its target.
func (p *Parser) parseExpr() ast.Expr {
	left := p.parsePrattExpr(1)

	tok, ok := p.peek()
	if !ok || !tok.Token.IsPunct(token.EQUAL) {
		return left
	}
	if _, isField := left.(*ast.ExprField); !isField {
		p.errorAt(tok.Span, "invalid assignment target")
	}
	p.advance()
	p.skipTrivia()

	return &ast.ExprAssign{Target: left, Value: p.parseExpr()}
}

func (p *Parser) parsePrattExpr(minPrec int) ast.Expr {
	return p.parseBinaryRest(p.parseUnaryExpr(), minPrec)
}

func (p *Parser) parseBinaryRest(left ast.Expr, minPrec int) ast.Expr {
	for {
		op, operand, ok := p.peekBinary()
		if !ok || op.Precedence() < minPrec {
			return left
		}
		p.advance()

		var right ast.Expr
		if operand != nil {
			right = p.parseBinaryRest(p.parsePostfixExpr(operand), op.Precedence()+1)
		} else {
			p.skipTrivia()
			right = p.parsePrattExpr(op.Precedence() + 1)
		}

		left = &ast.ExprBinary{Op: op, Left: left, Right: right}
	}
}

// peekBinary looks for a binary operator after an operand. The tokenizer
// reads `a -1` as an operand followed by the literal -1, so a signed
// number in operator position is split into the operator and the literal
// magnitude, returned as operand.
func (p *Parser) peekBinary() (ast.BinaryOp, *ast.ExprLit, bool) {
	tok, ok := p.peek()
	if !ok {
		return 0, nil, false
	}

	switch tok.Token.Kind {
	case token.PUNCTUATION:
		op, ok := binaryOperators[tok.Token.Punct]
		return op, nil, ok
	case token.LITERAL:
		return p.splitSigned(tok)
	}
	return 0, nil, false
}

func (p *Parser) splitSigned(tok token.SpannedToken) (ast.BinaryOp, *ast.ExprLit, bool) {
	text := tok.Span.Text(p.source)
	if text == "" || (text[0] != '-' && text[0] != '+') {
		return 0, nil, false
	}

	op := ast.ADD
	if text[0] == '-' {
		op = ast.SUB
	}

	lit := tok.Token.Literal
	switch lit.Kind {
	case token.INTEGER:
		// The positive half of -9223372036854775808 has no int64 value.
		if lit.Int == math.MinInt64 {
			p.errorAt(tok.Span, "integer literal out of range")
		}
		if lit.Int < 0 {
			lit.Int = -lit.Int
		}
	case token.FLOAT:
		lit.Float = math.Abs(lit.Float)
	default:
		return 0, nil, false
	}

	return op, &ast.ExprLit{Value: lit}, true
}

func (p *Parser) parseUnaryExpr() ast.Expr {
	switch {
	case p.consumePunct(token.BANG):
		return &ast.ExprUnary{Op: ast.NOT, Operand: p.parseUnaryExpr()}
	case p.consumePunct(token.MINUS):
		return &ast.ExprUnary{Op: ast.NEG, Operand: p.parseUnaryExpr()}
	}
	return p.parsePostfixExpr(p.parsePrimaryExpr())
}

// parsePostfixExpr applies member access, method calls and calls. A `.`
// at the start of the next line continues the chain.
func (p *Parser) parsePostfixExpr(expr ast.Expr) ast.Expr {
	for {
		cp := p.save()
		p.skipTrivia()
		if p.consumePunct(token.DOT) {
			p.skipTrivia()
			name := p.expectIdent("member name")
			if p.checkPunct(token.LEFT_PAREN) {
				expr = &ast.ExprMethodCall{Receiver: expr, Name: name, Args: p.parseArgs()}
			} else {
				expr = &ast.ExprField{Base: expr, Name: name}
			}
			continue
		}
		p.restore(cp)

		if p.checkPunct(token.LEFT_PAREN) && callable(expr) {
			expr = &ast.ExprCall{Callee: expr, Args: p.parseArgs()}
			continue
		}
		return expr
	}
}

func callable(expr ast.Expr) bool {
	switch expr.(type) {
	case *ast.ExprField, *ast.ExprCall, *ast.ExprMethodCall, *ast.ExprNew, *ast.ExprSelf:
		return true
	}
	return false
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	tok := p.expect("expression")

	switch tok.Token.Kind {
	case token.LITERAL:
		return &ast.ExprLit{Value: tok.Token.Literal}
	case token.IDENTIFIER:
		return ast.FieldOfSelf(tok.Token.Text)
	case token.KEYWORD:
		if expr := p.parseKeywordExpr(tok.Token.Keyword); expr != nil {
			return expr
		}
	case token.PUNCTUATION:
		switch tok.Token.Punct {
		case token.LEFT_BRACKET:
			return &ast.ExprArray{Elements: p.parseCollection(token.RIGHT_BRACKET)}
		case token.HASH:
			p.expectPunct(token.LEFT_BRACE)
			return &ast.ExprSet{Elements: p.parseCollection(token.RIGHT_BRACE)}
		case token.LEFT_PAREN:
			return p.parseParenExpr()
		case token.LEFT_BRACE:
			return p.parseClosure()
		}
	}

	p.unexpected(tok, "expression")
	return nil
}

// parseKeywordExpr parses the expressions introduced by a keyword, which
// is already consumed. It returns nil for keywords that cannot start one.
func (p *Parser) parseKeywordExpr(kw token.Keyword) ast.Expr {
	switch kw {
	case token.SELF:
		return ast.Self()
	case token.NEW:
		class, _ := p.parseQualifiedName("class name")
		return &ast.ExprNew{Class: class, Args: p.parseArgs()}
	case token.IF:
		return p.parseIf()
	case token.RETURN:
		if p.atTerminator() {
			return &ast.ExprReturn{}
		}
		return &ast.ExprReturn{Value: p.parseExpr()}
	case token.TRY:
		p.skipTrivia()
		if p.consumePunct(token.LEFT_BRACE) {
			return &ast.ExprTryBlock{Body: p.parseBlockBody()}
		}
		return &ast.ExprTry{Inner: p.parseExpr()}
	case token.SUPER:
		return &ast.ExprSuper{Args: p.parseArgs()}
	case token.LET:
		name, value := p.parseBinding()
		return &ast.ExprLet{Name: name, Value: value}
	case token.CONST:
		name, value := p.parseBinding()
		return &ast.ExprConst{Name: name, Value: value}
	}
	return nil
}

// parseParenExpr handles `()`, `(e)` and tuples `(a,)`, `(a, b)`.
func (p *Parser) parseParenExpr() ast.Expr {
	p.skipTrivia()
	if p.consumePunct(token.RIGHT_PAREN) {
		return &ast.ExprTuple{Elements: []ast.Expr{}}
	}

	first := p.parseExpr()
	p.skipTrivia()

	tok := p.expect("',' or ')'")
	switch {
	case tok.Token.IsPunct(token.RIGHT_PAREN):
		return &ast.ExprParen{Inner: first}
	case tok.Token.IsPunct(token.COMMA):
		rest := p.parseCollection(token.RIGHT_PAREN)
		return &ast.ExprTuple{Elements: append([]ast.Expr{first}, rest...)}
	}

	p.unexpected(tok, "',' or ')'")
	return nil
}

// parseIf reads `(cond) { ... }` and an optional else branch, which may
// start on a following line.
func (p *Parser) parseIf() *ast.ExprIf {
	p.expectPunct(token.LEFT_PAREN)
	p.skipTrivia()
	cond := p.parseExpr()
	p.skipTrivia()
	p.expectPunct(token.RIGHT_PAREN)

	p.skipTrivia()
	p.expectPunct(token.LEFT_BRACE)
	expr := &ast.ExprIf{Cond: &ast.ExprParen{Inner: cond}, Then: p.parseBlockBody()}

	p.optional(func() bool {
		p.skipTrivia()
		if !p.consumeKeyword(token.ELSE) {
			return false
		}
		p.skipTrivia()
		switch {
		case p.consumeKeyword(token.IF):
			expr.Else = p.parseIf()
		case p.consumePunct(token.LEFT_BRACE):
			expr.Else = &ast.ExprBlock{Body: p.parseBlockBody()}
		default:
			expr.Else = p.parseExpr()
		}
		return true
	})

	return expr
}
