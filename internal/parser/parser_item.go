package parser

import (
	"fmt"

	"wollok/internal/ast"
	"wollok/token"
)

// parseItem parses a const, let, property or method declaration.
func (p *Parser) parseItem() ast.Item {
	tok := p.expect("declaration")

	switch {
	case tok.Token.IsKeyword(token.CONST):
		name, value := p.parseBinding()
		log.Debugf("parsed const '%s'", name)
		return &ast.ItemConst{Name: name, Value: value}
	case tok.Token.IsKeyword(token.LET):
		name, value := p.parseBinding()
		log.Debugf("parsed let '%s'", name)
		return &ast.ItemLet{Name: name, Value: value}
	case tok.Token.IsKeyword(token.PROPERTY):
		name, value := p.parseBinding()
		log.Debugf("parsed property '%s'", name)
		return &ast.ItemProperty{Name: name, Value: value}
	case tok.Token.IsKeyword(token.METHOD):
		return p.parseMethod()
	}

	p.unexpected(tok, "declaration (const, let, property or method)")
	return nil
}

// parseBinding reads `name = expr` after a binding keyword.
func (p *Parser) parseBinding() (string, ast.Expr) {
	name := p.expectIdent("identifier")
	p.expectPunct(token.EQUAL)
	p.skipTrivia()
	return name, p.parseExpr()
}

// parseMethod reads a method after its keyword. The body is either a
// block or `= expr`, the latter stored as a one statement block.
func (p *Parser) parseMethod() *ast.ItemMethod {
	name := p.expectIdent("method name")
	method := &ast.ItemMethod{
		Signature: ast.Signature{Name: name, Params: p.parseParams()},
	}

	tok := p.expect("'{' or '=' after method signature")
	switch {
	case tok.Token.IsPunct(token.LEFT_BRACE):
		method.Body = p.parseBlockBody()
	case tok.Token.IsPunct(token.EQUAL):
		p.skipTrivia()
		method.Body = &ast.Block{Stmts: []ast.Expr{p.parseExpr()}}
		method.Inline = true
	default:
		p.errorAt(tok.Span, "expected '{' or '=' after method signature, found "+tok.Token.Describe())
	}

	log.Debugf("parsed method '%s'", method.Signature)
	return method
}

// parseClassItem is parseItem plus the method prefixes that only classes
// accept.
func (p *Parser) parseClassItem() ast.Item {
	var prefix ast.MethodPrefix

	switch {
	case p.consumeKeyword(token.OVERRIDE):
		prefix = ast.OVERRIDE
		if p.consumeKeyword(token.FALLIBLE) {
			prefix = ast.OVERRIDE_FALLIBLE
		}
	case p.consumeKeyword(token.FALLIBLE):
		prefix = ast.FALLIBLE
	default:
		return p.parseItem()
	}

	next, ok := p.peek()
	if !ok {
		p.eof("method after '" + prefix.String() + "'")
	}
	if !next.Token.IsKeyword(token.METHOD) {
		p.errorAt(next.Span, fmt.Sprintf("'%s' must be followed by a method, found %s", prefix, next.Token.Describe()))
	}
	p.advance()

	return &ast.ItemPrefixedMethod{Prefix: prefix, Method: p.parseMethod()}
}

// parseMembers reads a brace delimited list of items. Blank lines,
// comments and semicolons between members are skipped.
func (p *Parser) parseMembers(member func() ast.Item) []ast.Item {
	items := []ast.Item{}

	p.skipTrivia()
	p.expectPunct(token.LEFT_BRACE)
	for {
		p.skipSeparators()
		if p.consumePunct(token.RIGHT_BRACE) {
			return items
		}
		if p.atEnd() {
			p.eof("'}'")
		}
		items = append(items, member())
	}
}

func (p *Parser) parseObject() *ast.ItemObject {
	p.expectKeyword(token.OBJECT)
	name := p.expectIdent("object identifier")
	body := p.parseMembers(p.parseItem)

	log.Debugf("parsed object '%s' with %d items", name, len(body))
	return &ast.ItemObject{Name: name, Body: body}
}

func (p *Parser) parseClass() *ast.ItemClass {
	p.expectKeyword(token.CLASS)
	class := &ast.ItemClass{Name: p.expectIdent("class identifier")}

	if p.consumeKeyword(token.INHERITS) {
		class.Superclasses = p.parseSuperclasses()
	}
	class.Body = p.parseMembers(p.parseClassItem)

	log.Debugf("parsed class '%s' with %d items", class.Name, len(class.Body))
	return class
}

func (p *Parser) parseImport() *ast.ItemImport {
	p.expectKeyword(token.IMPORT)
	module, wildcard := p.parseQualifiedName("module name")
	return &ast.ItemImport{Module: module, Wildcard: wildcard}
}

func (p *Parser) parseTest() *ast.ItemTest {
	p.expectKeyword(token.TEST)
	name := p.parseNameOrString("test name")
	return &ast.ItemTest{Name: name, Body: p.parseItemBody()}
}

func (p *Parser) parseProgram() *ast.ItemProgram {
	p.expectKeyword(token.PROGRAM)
	name := p.expectIdent("program name")
	return &ast.ItemProgram{Name: name, Body: p.parseItemBody()}
}

// parsePackage handles both `package name { }` and `describe "name" { }`.
// Their bodies hold declarations, tests included.
func (p *Parser) parsePackage() *ast.ItemPackage {
	pkg := &ast.ItemPackage{}

	if p.consumeKeyword(token.DESCRIBE) {
		pkg.Describe = true
		pkg.Name = p.parseNameOrString("describe name")
	} else {
		p.expectKeyword(token.PACKAGE)
		pkg.Name, _ = p.parseQualifiedName("package name")
	}
	pkg.Body = p.parseMembers(p.parsePackageItem)

	return pkg
}

func (p *Parser) parsePackageItem() ast.Item {
	tok, _ := p.peek()
	switch {
	case tok.Token.IsKeyword(token.OBJECT):
		return p.parseObject()
	case tok.Token.IsKeyword(token.CLASS):
		return p.parseClass()
	case tok.Token.IsKeyword(token.TEST):
		return p.parseTest()
	case tok.Token.IsKeyword(token.PROGRAM):
		return p.parseProgram()
	case tok.Token.IsKeyword(token.PACKAGE), tok.Token.IsKeyword(token.DESCRIBE):
		return p.parsePackage()
	}
	return p.parseItem()
}

// parseItemBody reads the body of a test or program: a block or a single
// expression.
func (p *Parser) parseItemBody() ast.Expr {
	p.skipTrivia()
	if p.consumePunct(token.LEFT_BRACE) {
		return &ast.ExprBlock{Body: p.parseBlockBody()}
	}
	return p.parseExpr()
}
