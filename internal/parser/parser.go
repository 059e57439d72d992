// Package parser builds a syntax tree from Wollok source with a
// backtracking recursive-descent parser. The first error aborts the parse
// and is returned as an *errors.Diagnostic.
package parser

import (
	"fmt"
	"os"

	"github.com/tliron/commonlog"
	"wollok/internal/ast"
	"wollok/internal/lexer"
	"wollok/token"
)

var log = commonlog.GetLogger("wollok.parser")

type Parser struct {
	*cursor
	filename string
	source   string
}

func New(filename, source string) *Parser {
	return &Parser{
		cursor:   newCursor(lexer.New(source)),
		filename: filename,
		source:   source,
	}
}

func ParseFile(path string) (*ast.Scope, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return ParseSource(path, string(source))
}

func ParseSource(filename string, source string) (*ast.Scope, error) {
	return New(filename, source).ParseScope()
}

// ParseScope parses the whole input. A Parser is used once.
func (p *Parser) ParseScope() (scope *ast.Scope, err error) {
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			log.Debugf("%s: %s", p.filename, b.diag)
			scope, err = nil, b.diag
		}
	}()

	return p.parseScope(), nil
}

func (p *Parser) parseScope() *ast.Scope {
	scope := &ast.Scope{Stmts: []ast.Stmt{}}
	for p.skipPreStatement() {
		scope.Stmts = append(scope.Stmts, p.parseStatement())
	}
	return scope
}

func (p *Parser) parseStatement() ast.Stmt {
	tok, _ := p.peek()
	if tok.Token.Kind != token.KEYWORD {
		return p.parseExpr()
	}

	switch tok.Token.Keyword {
	case token.OBJECT:
		return p.parseObject()
	case token.CLASS:
		return p.parseClass()
	case token.CONST, token.LET:
		return p.parseItem()
	case token.IMPORT:
		return p.parseImport()
	case token.TEST:
		return p.parseTest()
	case token.PROGRAM:
		return p.parseProgram()
	case token.PACKAGE, token.DESCRIBE:
		return p.parsePackage()
	}
	return p.parseExpr()
}
