// Package ast defines the syntax tree produced by the parser.
//
// The tree is strictly owned: every composite node holds its children and
// nothing points back at a parent. Nodes are built bottom-up by a single
// parse and are not mutated afterwards.
package ast

type Node interface {
	NodeType() NodeType
	String() string
}

// Stmt is anything that may appear in a Scope: an Item or an Expr.
type Stmt interface {
	Node
	isStmt()
}

// Item is a named declaration.
type Item interface {
	Stmt
	isItem()
}

// Expr is an evaluated construct.
type Expr interface {
	Stmt
	isExpr()
}

// Scope is the ordered statement list of a file or REPL line.
type Scope struct {
	Stmts []Stmt
}

// Block is the ordered expression list of a method, if branch or closure.
type Block struct {
	Stmts []Expr
}

func (*Scope) NodeType() NodeType { return SCOPE }
func (*Block) NodeType() NodeType { return BLOCK }

func (*ItemConst) NodeType() NodeType          { return ITEM_CONST }
func (*ItemLet) NodeType() NodeType            { return ITEM_LET }
func (*ItemProperty) NodeType() NodeType       { return ITEM_PROPERTY }
func (*ItemMethod) NodeType() NodeType         { return ITEM_METHOD }
func (*ItemPrefixedMethod) NodeType() NodeType { return ITEM_PREFIXED_METHOD }
func (*ItemClass) NodeType() NodeType          { return ITEM_CLASS }
func (*ItemObject) NodeType() NodeType         { return ITEM_OBJECT }
func (*ItemImport) NodeType() NodeType         { return ITEM_IMPORT }
func (*ItemTest) NodeType() NodeType           { return ITEM_TEST }
func (*ItemProgram) NodeType() NodeType        { return ITEM_PROGRAM }
func (*ItemPackage) NodeType() NodeType        { return ITEM_PACKAGE }

func (*ExprLit) NodeType() NodeType        { return EXPR_LIT }
func (*ExprArray) NodeType() NodeType      { return EXPR_ARRAY }
func (*ExprSet) NodeType() NodeType        { return EXPR_SET }
func (*ExprBinary) NodeType() NodeType     { return EXPR_BINARY }
func (*ExprUnary) NodeType() NodeType      { return EXPR_UNARY }
func (*ExprAssign) NodeType() NodeType     { return EXPR_ASSIGN }
func (*ExprField) NodeType() NodeType      { return EXPR_FIELD }
func (*ExprMethodCall) NodeType() NodeType { return EXPR_METHOD_CALL }
func (*ExprCall) NodeType() NodeType       { return EXPR_CALL }
func (*ExprNew) NodeType() NodeType        { return EXPR_NEW }
func (*ExprClosure) NodeType() NodeType    { return EXPR_CLOSURE }
func (*ExprParen) NodeType() NodeType      { return EXPR_PAREN }
func (*ExprTuple) NodeType() NodeType      { return EXPR_TUPLE }
func (*ExprIf) NodeType() NodeType         { return EXPR_IF }
func (*ExprLet) NodeType() NodeType        { return EXPR_LET }
func (*ExprConst) NodeType() NodeType      { return EXPR_CONST }
func (*ExprReturn) NodeType() NodeType     { return EXPR_RETURN }
func (*ExprTry) NodeType() NodeType        { return EXPR_TRY }
func (*ExprTryBlock) NodeType() NodeType   { return EXPR_TRY_BLOCK }
func (*ExprSuper) NodeType() NodeType      { return EXPR_SUPER }
func (*ExprSelf) NodeType() NodeType       { return EXPR_SELF }
func (*ExprBlock) NodeType() NodeType      { return EXPR_BLOCK }
