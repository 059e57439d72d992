// Package pretty renders a syntax tree as an indented outline for the
// command line tools.
package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"wollok/internal/ast"
)

const title = "Wollok AST Scope"

type Config struct {
	UseColors bool
}

type Printer struct {
	config Config
	level  int
	out    strings.Builder

	keyword *color.Color
	name    *color.Color
	literal *color.Color
	op      *color.Color
	heading *color.Color
}

func New(config Config) *Printer {
	p := &Printer{
		config:  config,
		keyword: color.New(color.FgHiMagenta),
		name:    color.New(color.FgHiYellow),
		literal: color.New(color.FgGreen),
		op:      color.New(color.FgCyan),
		heading: color.New(color.FgHiBlue, color.Bold),
	}

	for _, c := range []*color.Color{p.keyword, p.name, p.literal, p.op, p.heading} {
		if config.UseColors {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print renders every statement of scope, separated by blank lines.
func (p *Printer) Print(scope *ast.Scope) string {
	p.out.Reset()
	p.level = 0

	p.out.WriteString(p.heading.Sprint(title))
	p.out.WriteString("\n")
	p.out.WriteString(strings.Repeat("═", 50))
	p.out.WriteString("\n")

	for i, stmt := range scope.Stmts {
		if i > 0 {
			p.out.WriteString("\n")
		}
		p.node(stmt)
	}
	return p.out.String()
}

func (p *Printer) line(parts ...string) {
	p.out.WriteString(strings.Repeat("  ", p.level))
	p.out.WriteString(strings.Join(parts, " "))
	p.out.WriteString("\n")
}

func (p *Printer) nested(nodes ...ast.Node) {
	p.level++
	for _, n := range nodes {
		p.node(n)
	}
	p.level--
}

func (p *Printer) exprs(label string, exprs []ast.Expr) {
	if len(exprs) == 0 {
		return
	}
	p.level++
	p.line(label)
	for _, e := range exprs {
		p.nested(e)
	}
	p.level--
}

func (p *Printer) items(items []ast.Item) {
	p.level++
	for _, item := range items {
		p.node(item)
	}
	p.level--
}

func (p *Printer) kw(s string) string { return p.keyword.Sprint(s) }
func (p *Printer) id(s string) string { return p.name.Sprint(s) }
func (p *Printer) quote(s string) string { return p.literal.Sprint(strconv.Quote(s)) }

func (p *Printer) node(node ast.Node) {
	switch n := node.(type) {
	case *ast.ItemConst:
		p.line(p.kw("const"), p.id(n.Name), "=")
		p.nested(n.Value)
	case *ast.ItemLet:
		p.line(p.kw("let"), p.id(n.Name), "=")
		p.nested(n.Value)
	case *ast.ItemProperty:
		p.line(p.kw("property"), p.id(n.Name), "=")
		p.nested(n.Value)
	case *ast.ItemMethod:
		p.method("", n)
	case *ast.ItemPrefixedMethod:
		p.method(n.Prefix.String(), n.Method)
	case *ast.ItemClass:
		header := []string{p.kw("class"), p.id(n.Name)}
		if len(n.Superclasses) > 0 {
			header = append(header, p.kw("inherits"), strings.Join(n.Superclasses, ", "))
		}
		p.line(header...)
		p.items(n.Body)
	case *ast.ItemObject:
		p.line(p.kw("object"), p.id(n.Name))
		p.items(n.Body)
	case *ast.ItemImport:
		module := n.Module
		if n.Wildcard {
			module += ".*"
		}
		p.line(p.kw("import"), p.id(module))
	case *ast.ItemTest:
		p.line(p.kw("test"), p.quote(n.Name))
		p.nested(n.Body)
	case *ast.ItemProgram:
		p.line(p.kw("program"), p.id(n.Name))
		p.nested(n.Body)
	case *ast.ItemPackage:
		if n.Describe {
			p.line(p.kw("describe"), p.quote(n.Name))
		} else {
			p.line(p.kw("package"), p.id(n.Name))
		}
		p.items(n.Body)

	case *ast.Block:
		p.line("block")
		for _, stmt := range n.Stmts {
			p.nested(stmt)
		}
	case *ast.ExprLit:
		p.line("literal", p.literal.Sprint(n.Value.String()))
	case *ast.ExprArray:
		p.line(fmt.Sprintf("array [%d]", len(n.Elements)))
		p.exprsFlat(n.Elements)
	case *ast.ExprSet:
		p.line(fmt.Sprintf("set #{%d}", len(n.Elements)))
		p.exprsFlat(n.Elements)
	case *ast.ExprTuple:
		p.line(fmt.Sprintf("tuple (%d)", len(n.Elements)))
		p.exprsFlat(n.Elements)
	case *ast.ExprBinary:
		p.line("binary", p.op.Sprint(n.Op.String()))
		p.nested(n.Left, n.Right)
	case *ast.ExprUnary:
		p.line("unary", p.op.Sprint(n.Op.String()))
		p.nested(n.Operand)
	case *ast.ExprAssign:
		p.line("assign")
		p.nested(n.Target, n.Value)
	case *ast.ExprField:
		if _, onSelf := n.Base.(*ast.ExprSelf); onSelf {
			p.line("field", p.id(n.Name))
			return
		}
		p.line("field", p.id(n.Name), "of")
		p.nested(n.Base)
	case *ast.ExprMethodCall:
		p.line("send", p.id(n.Name))
		p.nested(n.Receiver)
		p.exprs("args", n.Args)
	case *ast.ExprCall:
		p.line("call")
		p.nested(n.Callee)
		p.exprs("args", n.Args)
	case *ast.ExprNew:
		p.line(p.kw("new"), p.id(n.Class))
		p.exprs("args", n.Args)
	case *ast.ExprClosure:
		p.line(fmt.Sprintf("closure (%s)", strings.Join(n.Params, ", ")))
		p.nested(n.Body)
	case *ast.ExprParen:
		p.line("paren")
		p.nested(n.Inner)
	case *ast.ExprIf:
		p.line(p.kw("if"))
		p.nested(n.Cond)
		p.level++
		p.line(p.kw("then"))
		p.nested(n.Then)
		if n.Else != nil {
			p.line(p.kw("else"))
			p.nested(n.Else)
		}
		p.level--
	case *ast.ExprLet:
		p.line(p.kw("let"), p.id(n.Name), "=")
		p.nested(n.Value)
	case *ast.ExprConst:
		p.line(p.kw("const"), p.id(n.Name), "=")
		p.nested(n.Value)
	case *ast.ExprReturn:
		p.line(p.kw("return"))
		if n.Value != nil {
			p.nested(n.Value)
		}
	case *ast.ExprTry:
		p.line(p.kw("try"))
		p.nested(n.Inner)
	case *ast.ExprTryBlock:
		p.line(p.kw("try"))
		p.nested(n.Body)
	case *ast.ExprSuper:
		p.line(p.kw("super"))
		p.exprs("args", n.Args)
	case *ast.ExprSelf:
		p.line(p.kw("self"))
	case *ast.ExprBlock:
		p.node(n.Body)
	default:
		p.line(fmt.Sprintf("unknown %T", node))
	}
}

func (p *Printer) method(prefix string, m *ast.ItemMethod) {
	header := []string{}
	if prefix != "" {
		header = append(header, p.kw(prefix))
	}
	header = append(header, p.kw("method"), p.id(m.Signature.Name)+"("+strings.Join(m.Signature.Params, ", ")+")")
	if m.Inline {
		header = append(header, "=")
	}
	p.line(header...)

	if m.Body != nil {
		for _, stmt := range m.Body.Stmts {
			p.nested(stmt)
		}
	}
}

func (p *Printer) exprsFlat(exprs []ast.Expr) {
	for _, e := range exprs {
		p.nested(e)
	}
}
