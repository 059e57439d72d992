package ast

type ItemConst struct {
	Name  string
	Value Expr
}

type ItemLet struct {
	Name  string
	Value Expr
}

type ItemProperty struct {
	Name  string
	Value Expr
}

type Signature struct {
	Name   string
	Params []string
}

// ItemMethod is a method declaration. Inline is set for the `= expr`
// form, whose body is a block holding that single expression.
type ItemMethod struct {
	Signature Signature
	Body      *Block
	Inline    bool
}

// ItemPrefixedMethod wraps a class method written with override and/or
// fallible in front of it.
type ItemPrefixedMethod struct {
	Prefix MethodPrefix
	Method *ItemMethod
}

// ItemClass is a class declaration. Superclasses is nil when there is no
// inherits clause.
type ItemClass struct {
	Name         string
	Superclasses []string
	Body         []Item
}

type ItemObject struct {
	Name string
	Body []Item
}

// ItemImport is `import a.b.c` or, with Wildcard, `import a.b.*`.
type ItemImport struct {
	Module   string
	Wildcard bool
}

type ItemTest struct {
	Name string
	Body Expr
}

type ItemProgram struct {
	Name string
	Body Expr
}

// ItemPackage groups items. Describe marks a `describe "..." { }` suite.
type ItemPackage struct {
	Name     string
	Describe bool
	Body     []Item
}

func (*ItemConst) isStmt()          {}
func (*ItemLet) isStmt()            {}
func (*ItemProperty) isStmt()       {}
func (*ItemMethod) isStmt()         {}
func (*ItemPrefixedMethod) isStmt() {}
func (*ItemClass) isStmt()          {}
func (*ItemObject) isStmt()         {}
func (*ItemImport) isStmt()         {}
func (*ItemTest) isStmt()           {}
func (*ItemProgram) isStmt()        {}
func (*ItemPackage) isStmt()        {}

func (*ItemConst) isItem()          {}
func (*ItemLet) isItem()            {}
func (*ItemProperty) isItem()       {}
func (*ItemMethod) isItem()         {}
func (*ItemPrefixedMethod) isItem() {}
func (*ItemClass) isItem()          {}
func (*ItemObject) isItem()         {}
func (*ItemImport) isItem()         {}
func (*ItemTest) isItem()           {}
func (*ItemProgram) isItem()        {}
func (*ItemPackage) isItem()        {}
