package parser

import (
	"errors"
	"time"

	"wollok/internal/ast"
	"wollok/internal/lexer"
	"wollok/token"

	werrors "wollok/internal/errors"
)

// ParseResult contains the full parsing result for tools that need more
// than the tree: the token stream and timing.
type ParseResult struct {
	Scope      *ast.Scope
	Diagnostic *werrors.Diagnostic
	Tokens     []token.SpannedToken
	Duration   time.Duration
}

// ParseSourceWithTokens parses source and also collects its tokens. On a
// lexical error the tokens before it are still returned.
func ParseSourceWithTokens(path string, source string) *ParseResult {
	start := time.Now()
	scope, err := ParseSource(path, source)
	result := &ParseResult{Scope: scope, Duration: time.Since(start)}

	if err != nil {
		var diag *werrors.Diagnostic
		if !errors.As(err, &diag) {
			diag = werrors.Structural(token.Char(0), err.Error())
		}
		result.Diagnostic = diag
	}

	result.Tokens, _ = lexer.Tokenize(source)
	return result
}

// Failed reports whether parsing stopped at an error.
func (pr *ParseResult) Failed() bool {
	return pr.Diagnostic != nil
}
