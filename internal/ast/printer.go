package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// The String methods render source text that parses back to the same tree.

func (s *Scope) String() string {
	parts := make([]string, 0, len(s.Stmts))
	for _, stmt := range s.Stmts {
		parts = append(parts, stmt.String())
	}
	return strings.Join(parts, "\n")
}

func (b *Block) String() string {
	if b == nil || len(b.Stmts) == 0 {
		return "{}"
	}

	var sb strings.Builder
	sb.WriteString("{\n")
	for _, stmt := range b.Stmts {
		sb.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func writeItems(b *strings.Builder, items []Item) {
	if len(items) == 0 {
		b.WriteString("{}")
		return
	}
	b.WriteString("{\n")
	for _, item := range items {
		b.WriteString("  " + strings.ReplaceAll(item.String(), "\n", "\n  ") + "\n")
	}
	b.WriteString("}")
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, e.String())
	}
	return strings.Join(parts, ", ")
}

func (c *ItemConst) String() string {
	return fmt.Sprintf("const %s = %s", c.Name, c.Value)
}

func (l *ItemLet) String() string {
	return fmt.Sprintf("let %s = %s", l.Name, l.Value)
}

func (p *ItemProperty) String() string {
	return fmt.Sprintf("property %s = %s", p.Name, p.Value)
}

func (s Signature) String() string {
	return fmt.Sprintf("%s(%s)", s.Name, strings.Join(s.Params, ", "))
}

func (m *ItemMethod) String() string {
	if m.Inline && m.Body != nil && len(m.Body.Stmts) == 1 {
		return fmt.Sprintf("method %s = %s", m.Signature, m.Body.Stmts[0])
	}
	return fmt.Sprintf("method %s %s", m.Signature, m.Body)
}

func (pm *ItemPrefixedMethod) String() string {
	return pm.Prefix.String() + " " + pm.Method.String()
}

func (c *ItemClass) String() string {
	var b strings.Builder

	b.WriteString("class ")
	b.WriteString(c.Name)
	if len(c.Superclasses) > 0 {
		b.WriteString(" inherits ")
		b.WriteString(strings.Join(c.Superclasses, ", "))
	}
	b.WriteString(" ")
	writeItems(&b, c.Body)

	return b.String()
}

func (o *ItemObject) String() string {
	var b strings.Builder

	b.WriteString("object ")
	b.WriteString(o.Name)
	b.WriteString(" ")
	writeItems(&b, o.Body)

	return b.String()
}

func (i *ItemImport) String() string {
	if i.Wildcard {
		return fmt.Sprintf("import %s.*", i.Module)
	}
	return "import " + i.Module
}

func (t *ItemTest) String() string {
	return fmt.Sprintf("test %s %s", strconv.Quote(t.Name), t.Body)
}

func (p *ItemProgram) String() string {
	return fmt.Sprintf("program %s %s", p.Name, p.Body)
}

func (p *ItemPackage) String() string {
	var b strings.Builder

	if p.Describe {
		b.WriteString("describe ")
		b.WriteString(strconv.Quote(p.Name))
	} else {
		b.WriteString("package ")
		b.WriteString(p.Name)
	}
	b.WriteString(" ")
	writeItems(&b, p.Body)

	return b.String()
}

func (l *ExprLit) String() string {
	return l.Value.String()
}

func (a *ExprArray) String() string {
	return "[" + joinExprs(a.Elements) + "]"
}

func (s *ExprSet) String() string {
	return "#{" + joinExprs(s.Elements) + "}"
}

func (be *ExprBinary) String() string {
	left := be.Left.String()
	if needsParens(be.Left, be.Op.Precedence(), false) {
		left = "(" + left + ")"
	}
	right := be.Right.String()
	if needsParens(be.Right, be.Op.Precedence(), true) {
		right = "(" + right + ")"
	}
	return fmt.Sprintf("%s %s %s", left, be.Op, right)
}

// needsParens reports whether a binary operand must be wrapped to keep the
// tree shape when re-read. Operators are left associative, so a right
// operand of equal precedence needs them too.
func needsParens(operand Expr, parent int, right bool) bool {
	switch o := operand.(type) {
	case *ExprBinary:
		prec := o.Op.Precedence()
		return prec < parent || (right && prec == parent)
	case *ExprAssign:
		return true
	}
	return false
}

func (ue *ExprUnary) String() string {
	operand := ue.Operand.String()
	switch ue.Operand.(type) {
	case *ExprBinary, *ExprAssign:
		operand = "(" + operand + ")"
	case *ExprLit:
		// -1 would lex as a signed literal
		operand = " " + operand
	}
	return ue.Op.String() + operand
}

func (a *ExprAssign) String() string {
	return fmt.Sprintf("%s = %s", a.Target, a.Value)
}

func (f *ExprField) String() string {
	if _, ok := f.Base.(*ExprSelf); ok {
		return f.Name
	}
	return fmt.Sprintf("%s.%s", f.Base, f.Name)
}

func (mc *ExprMethodCall) String() string {
	return fmt.Sprintf("%s.%s(%s)", mc.Receiver, mc.Name, joinExprs(mc.Args))
}

func (c *ExprCall) String() string {
	return fmt.Sprintf("%s(%s)", c.Callee, joinExprs(c.Args))
}

func (n *ExprNew) String() string {
	return fmt.Sprintf("new %s(%s)", n.Class, joinExprs(n.Args))
}

func (c *ExprClosure) String() string {
	var b strings.Builder

	b.WriteString("{")
	if len(c.Params) > 0 {
		b.WriteString(" ")
		b.WriteString(strings.Join(c.Params, ", "))
		b.WriteString(" =>")
	}

	body, isBlock := c.Body.(*ExprBlock)
	switch {
	case isBlock && len(body.Body.Stmts) == 0:
		if len(c.Params) > 0 {
			b.WriteString(" ")
		}
	case isBlock:
		b.WriteString("\n")
		for _, stmt := range body.Body.Stmts {
			b.WriteString("  " + strings.ReplaceAll(stmt.String(), "\n", "\n  ") + "\n")
		}
	default:
		b.WriteString(" ")
		b.WriteString(c.Body.String())
		b.WriteString(" ")
	}
	b.WriteString("}")

	return b.String()
}

func (p *ExprParen) String() string {
	return "(" + p.Inner.String() + ")"
}

func (t *ExprTuple) String() string {
	if len(t.Elements) == 1 {
		return "(" + t.Elements[0].String() + ",)"
	}
	return "(" + joinExprs(t.Elements) + ")"
}

func (i *ExprIf) String() string {
	s := fmt.Sprintf("if %s %s", i.Cond, i.Then)
	if i.Else != nil {
		s += " else " + i.Else.String()
	}
	return s
}

func (l *ExprLet) String() string {
	return fmt.Sprintf("let %s = %s", l.Name, l.Value)
}

func (c *ExprConst) String() string {
	return fmt.Sprintf("const %s = %s", c.Name, c.Value)
}

func (r *ExprReturn) String() string {
	if r.Value == nil {
		return "return"
	}
	return "return " + r.Value.String()
}

func (t *ExprTry) String() string {
	return "try " + t.Inner.String()
}

func (t *ExprTryBlock) String() string {
	return "try " + t.Body.String()
}

func (s *ExprSuper) String() string {
	return "super(" + joinExprs(s.Args) + ")"
}

func (*ExprSelf) String() string {
	return "self"
}

func (b *ExprBlock) String() string {
	return b.Body.String()
}
