package ast

import "wollok/token"

type ExprLit struct {
	Value token.Literal
}

type ExprArray struct {
	Elements []Expr
}

type ExprSet struct {
	Elements []Expr
}

type ExprBinary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

type ExprUnary struct {
	Op      UnaryOp
	Operand Expr
}

type ExprAssign struct {
	Target Expr
	Value  Expr
}

// ExprField reads Name from Base. A bare identifier is a field of self.
type ExprField struct {
	Base Expr
	Name string
}

type ExprMethodCall struct {
	Receiver Expr
	Name     string
	Args     []Expr
}

type ExprCall struct {
	Callee Expr
	Args   []Expr
}

type ExprNew struct {
	Class string
	Args  []Expr
}

// ExprClosure is `{ a, b => body }`. A single statement body is kept as
// that expression, anything else becomes an ExprBlock.
type ExprClosure struct {
	Params []string
	Body   Expr
}

type ExprParen struct {
	Inner Expr
}

type ExprTuple struct {
	Elements []Expr
}

// ExprIf has a block for the then branch. Else is nil, an ExprBlock, or
// another expression (an ExprIf for else-if chains).
type ExprIf struct {
	Cond Expr
	Then *Block
	Else Expr
}

type ExprLet struct {
	Name  string
	Value Expr
}

type ExprConst struct {
	Name  string
	Value Expr
}

// ExprReturn has a nil Value for a bare return.
type ExprReturn struct {
	Value Expr
}

type ExprTry struct {
	Inner Expr
}

type ExprTryBlock struct {
	Body *Block
}

type ExprSuper struct {
	Args []Expr
}

type ExprSelf struct{}

type ExprBlock struct {
	Body *Block
}

// Self is the implicit receiver of unqualified names.
func Self() *ExprSelf { return &ExprSelf{} }

// FieldOfSelf builds the node an unqualified identifier parses to.
func FieldOfSelf(name string) *ExprField {
	return &ExprField{Base: Self(), Name: name}
}

func (*ExprLit) isStmt()        {}
func (*ExprArray) isStmt()      {}
func (*ExprSet) isStmt()        {}
func (*ExprBinary) isStmt()     {}
func (*ExprUnary) isStmt()      {}
func (*ExprAssign) isStmt()     {}
func (*ExprField) isStmt()      {}
func (*ExprMethodCall) isStmt() {}
func (*ExprCall) isStmt()       {}
func (*ExprNew) isStmt()        {}
func (*ExprClosure) isStmt()    {}
func (*ExprParen) isStmt()      {}
func (*ExprTuple) isStmt()      {}
func (*ExprIf) isStmt()         {}
func (*ExprLet) isStmt()        {}
func (*ExprConst) isStmt()      {}
func (*ExprReturn) isStmt()     {}
func (*ExprTry) isStmt()        {}
func (*ExprTryBlock) isStmt()   {}
func (*ExprSuper) isStmt()      {}
func (*ExprSelf) isStmt()       {}
func (*ExprBlock) isStmt()      {}

func (*ExprLit) isExpr()        {}
func (*ExprArray) isExpr()      {}
func (*ExprSet) isExpr()        {}
func (*ExprBinary) isExpr()     {}
func (*ExprUnary) isExpr()      {}
func (*ExprAssign) isExpr()     {}
func (*ExprField) isExpr()      {}
func (*ExprMethodCall) isExpr() {}
func (*ExprCall) isExpr()       {}
func (*ExprNew) isExpr()        {}
func (*ExprClosure) isExpr()    {}
func (*ExprParen) isExpr()      {}
func (*ExprTuple) isExpr()      {}
func (*ExprIf) isExpr()         {}
func (*ExprLet) isExpr()        {}
func (*ExprConst) isExpr()      {}
func (*ExprReturn) isExpr()     {}
func (*ExprTry) isExpr()        {}
func (*ExprTryBlock) isExpr()   {}
func (*ExprSuper) isExpr()      {}
func (*ExprSelf) isExpr()       {}
func (*ExprBlock) isExpr()      {}
