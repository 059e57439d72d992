package ast

import "fmt"

type NodeType int

const (
	// Containers
	SCOPE NodeType = iota
	BLOCK

	// Items
	ITEM_CONST
	ITEM_LET
	ITEM_PROPERTY
	ITEM_METHOD
	ITEM_PREFIXED_METHOD
	ITEM_CLASS
	ITEM_OBJECT
	ITEM_IMPORT
	ITEM_TEST
	ITEM_PROGRAM
	ITEM_PACKAGE

	// Expressions
	EXPR_LIT
	EXPR_ARRAY
	EXPR_SET
	EXPR_BINARY
	EXPR_UNARY
	EXPR_ASSIGN
	EXPR_FIELD
	EXPR_METHOD_CALL
	EXPR_CALL
	EXPR_NEW
	EXPR_CLOSURE
	EXPR_PAREN
	EXPR_TUPLE
	EXPR_IF
	EXPR_LET
	EXPR_CONST
	EXPR_RETURN
	EXPR_TRY
	EXPR_TRY_BLOCK
	EXPR_SUPER
	EXPR_SELF
	EXPR_BLOCK
)

var nodeTypeNames = [...]string{
	SCOPE:                "Scope",
	BLOCK:                "Block",
	ITEM_CONST:           "Const",
	ITEM_LET:             "Let",
	ITEM_PROPERTY:        "Property",
	ITEM_METHOD:          "Method",
	ITEM_PREFIXED_METHOD: "PrefixedMethod",
	ITEM_CLASS:           "Class",
	ITEM_OBJECT:          "Object",
	ITEM_IMPORT:          "Import",
	ITEM_TEST:            "Test",
	ITEM_PROGRAM:         "Program",
	ITEM_PACKAGE:         "Package",
	EXPR_LIT:             "Literal",
	EXPR_ARRAY:           "Array",
	EXPR_SET:             "Set",
	EXPR_BINARY:          "Binary",
	EXPR_UNARY:           "Unary",
	EXPR_ASSIGN:          "Assign",
	EXPR_FIELD:           "Field",
	EXPR_METHOD_CALL:     "MethodCall",
	EXPR_CALL:            "Call",
	EXPR_NEW:             "New",
	EXPR_CLOSURE:         "Closure",
	EXPR_PAREN:           "Paren",
	EXPR_TUPLE:           "Tuple",
	EXPR_IF:              "If",
	EXPR_LET:             "LetBinding",
	EXPR_CONST:           "ConstBinding",
	EXPR_RETURN:          "Return",
	EXPR_TRY:             "Try",
	EXPR_TRY_BLOCK:       "TryBlock",
	EXPR_SUPER:           "Super",
	EXPR_SELF:            "Self",
	EXPR_BLOCK:           "BlockExpr",
}

func (nt NodeType) String() string {
	if int(nt) >= 0 && int(nt) < len(nodeTypeNames) {
		return nodeTypeNames[nt]
	}
	return fmt.Sprintf("NodeType(%d)", int(nt))
}

// BinaryOp is an infix operator
type BinaryOp int

const (
	ADD BinaryOp = iota
	SUB
	MUL
	DIV
	MOD
	POW
	EQ
	NE
	LT
	LE
	GT
	GE
	AND
	OR
)

var binaryOpText = [...]string{
	ADD: "+", SUB: "-", MUL: "*", DIV: "/", MOD: "%", POW: "^",
	EQ: "==", NE: "!=", LT: "<", LE: "<=", GT: ">", GE: ">=",
	AND: "&&", OR: "||",
}

// Precedence of the operator. Higher binds tighter.
var binaryPrecedence = [...]int{
	OR:  1,
	AND: 2,
	EQ:  3, NE: 3,
	LT: 4, LE: 4, GT: 4, GE: 4,
	ADD: 5, SUB: 5,
	MUL: 6, DIV: 6, MOD: 6,
	POW: 7,
}

func (op BinaryOp) Precedence() int { return binaryPrecedence[op] }

func (op BinaryOp) String() string {
	if int(op) >= 0 && int(op) < len(binaryOpText) {
		return binaryOpText[op]
	}
	return fmt.Sprintf("BinaryOp(%d)", int(op))
}

// UnaryOp is a prefix operator
type UnaryOp int

const (
	NOT UnaryOp = iota
	NEG
)

func (op UnaryOp) String() string {
	if op == NOT {
		return "!"
	}
	return "-"
}

// MethodPrefix records the modifiers written before a class method
type MethodPrefix int

const (
	OVERRIDE MethodPrefix = iota
	FALLIBLE
	OVERRIDE_FALLIBLE
)

func (p MethodPrefix) String() string {
	switch p {
	case OVERRIDE:
		return "override"
	case FALLIBLE:
		return "fallible"
	default:
		return "override fallible"
	}
}
