package token

import "fmt"

type Keyword int

const (
	CONST Keyword = iota
	LET
	PROPERTY
	METHOD
	OBJECT
	CLASS
	INHERITS
	OVERRIDE
	FALLIBLE
	IMPORT
	PACKAGE
	TEST
	PROGRAM
	DESCRIBE
	IF
	ELSE
	NEW
	SUPER
	RETURN
	SELF
	TRY
)

var KEYWORDS = map[string]Keyword{
	"const":    CONST,
	"let":      LET,
	"property": PROPERTY,
	"method":   METHOD,
	"object":   OBJECT,
	"class":    CLASS,
	"inherits": INHERITS,
	"override": OVERRIDE,
	"fallible": FALLIBLE,
	"import":   IMPORT,
	"package":  PACKAGE,
	"test":     TEST,
	"program":  PROGRAM,
	"describe": DESCRIBE,
	"if":       IF,
	"else":     ELSE,
	"new":      NEW,
	"super":    SUPER,
	"return":   RETURN,
	"self":     SELF,
	"try":      TRY,
}

var keywordText = func() map[Keyword]string {
	m := make(map[Keyword]string, len(KEYWORDS))
	for text, k := range KEYWORDS {
		m[k] = text
	}
	return m
}()

// LookupKeyword reports whether word is reserved.
func LookupKeyword(word string) (Keyword, bool) {
	k, ok := KEYWORDS[word]
	return k, ok
}

func (k Keyword) String() string {
	if text, ok := keywordText[k]; ok {
		return text
	}
	return fmt.Sprintf("Keyword(%d)", int(k))
}
