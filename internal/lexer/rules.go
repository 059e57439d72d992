package lexer

import (
	"fmt"
	"strconv"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
	"wollok/token"
)

// family is one token recognizer. Families are tried in declaration order
// and the first one that matches at the current offset wins.
type family struct {
	name    string
	pattern string
	// build converts the matched text into a token. A nil build means the
	// family is skipped (whitespace).
	build func(text string) (token.Token, error)
}

var families = []family{
	{"Whitespace", `[ \t\r]+`, nil},
	{"Comment", `//[^\n]*`, buildComment},
	{"String", `"[^"\n]*"|'[^'\n]*'`, buildString},
	{"Number", `[+-]?[0-9]+(\.[0-9]+)?`, buildNumber},
	// Keywords, booleans and null are classified after matching the whole
	// word. RE2's \b only knows ASCII word characters, so `letñ` must not
	// be split into `let` and `ñ`.
	{"Word", `[\p{L}_][\p{L}\p{N}_]*`, buildWord},
	{"Operator", `==|!=|<=|>=|&&|\|\||->|=>|[-+*/%^!<>=&|]`, buildPunctuation},
	{"Punctuation", `[,;:.$#(){}\[\]\n]`, buildPunctuation},
}

// Definition is the compiled rule table shared by every Tokenizer.
var Definition = plexer.MustStateful(rules())

// symbolFamilies maps participle token types back to their family.
var symbolFamilies = func() map[plexer.TokenType]*family {
	byName := make(map[string]*family, len(families))
	for i := range families {
		byName[families[i].name] = &families[i]
	}

	m := make(map[plexer.TokenType]*family)
	for name, tt := range Definition.Symbols() {
		if f, ok := byName[name]; ok {
			m[tt] = f
		}
	}
	return m
}()

func rules() plexer.Rules {
	root := make([]plexer.Rule, 0, len(families))
	for _, f := range families {
		root = append(root, plexer.Rule{Name: f.name, Pattern: f.pattern})
	}
	return plexer.Rules{"Root": root}
}

func buildComment(text string) (token.Token, error) {
	return token.Comment(strings.TrimPrefix(text, "//")), nil
}

func buildString(text string) (token.Token, error) {
	return token.Str(text[1 : len(text)-1]), nil
}

// buildNumber parses the magnitude and applies the sign afterwards.
func buildNumber(text string) (token.Token, error) {
	negative := strings.HasPrefix(text, "-")
	magnitude := strings.TrimLeft(text, "+-")

	if strings.Contains(magnitude, ".") {
		f, err := strconv.ParseFloat(magnitude, 64)
		if err != nil {
			return token.Token{}, fmt.Errorf("float out of range")
		}
		if negative {
			f = -f
		}
		return token.Float(f), nil
	}

	u, err := strconv.ParseUint(magnitude, 10, 64)
	if err != nil {
		return token.Token{}, fmt.Errorf("integer out of range")
	}
	switch {
	case negative && u == 1<<63:
		return token.Int(-1 << 63), nil
	case u > 1<<63-1:
		return token.Token{}, fmt.Errorf("integer out of range")
	case negative:
		return token.Int(-int64(u)), nil
	}
	return token.Int(int64(u)), nil
}

// buildWord turns a maximal word into a keyword, boolean, null or
// identifier token.
func buildWord(text string) (token.Token, error) {
	if k, ok := token.LookupKeyword(text); ok {
		return token.Kw(k), nil
	}
	switch text {
	case "true", "false":
		return token.Bool(text == "true"), nil
	case "null":
		return token.Null(), nil
	}
	return token.Ident(text), nil
}

func buildPunctuation(text string) (token.Token, error) {
	p, ok := token.LookupPunctuation(text)
	if !ok {
		return token.Token{}, fmt.Errorf("unknown punctuation")
	}
	return token.Punct(p), nil
}
