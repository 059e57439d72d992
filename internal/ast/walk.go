package ast

// Inspect traverses the tree rooted at node in depth-first order. It calls
// fn for every node; when fn returns false the children of that node are
// skipped.
func Inspect(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, fn)
	}
}

// Children returns the direct children of a node in source order.
func Children(node Node) []Node {
	var out []Node
	add := func(nodes ...Node) {
		for _, n := range nodes {
			if n != nil && !isNilNode(n) {
				out = append(out, n)
			}
		}
	}
	addExprs := func(exprs []Expr) {
		for _, e := range exprs {
			add(e)
		}
	}
	addItems := func(items []Item) {
		for _, i := range items {
			add(i)
		}
	}

	switch n := node.(type) {
	case *Scope:
		for _, stmt := range n.Stmts {
			add(stmt)
		}
	case *Block:
		addExprs(n.Stmts)

	case *ItemConst:
		add(n.Value)
	case *ItemLet:
		add(n.Value)
	case *ItemProperty:
		add(n.Value)
	case *ItemMethod:
		add(n.Body)
	case *ItemPrefixedMethod:
		add(n.Method)
	case *ItemClass:
		addItems(n.Body)
	case *ItemObject:
		addItems(n.Body)
	case *ItemTest:
		add(n.Body)
	case *ItemProgram:
		add(n.Body)
	case *ItemPackage:
		addItems(n.Body)

	case *ExprArray:
		addExprs(n.Elements)
	case *ExprSet:
		addExprs(n.Elements)
	case *ExprBinary:
		add(n.Left, n.Right)
	case *ExprUnary:
		add(n.Operand)
	case *ExprAssign:
		add(n.Target, n.Value)
	case *ExprField:
		add(n.Base)
	case *ExprMethodCall:
		add(n.Receiver)
		addExprs(n.Args)
	case *ExprCall:
		add(n.Callee)
		addExprs(n.Args)
	case *ExprNew:
		addExprs(n.Args)
	case *ExprClosure:
		add(n.Body)
	case *ExprParen:
		add(n.Inner)
	case *ExprTuple:
		addExprs(n.Elements)
	case *ExprIf:
		add(n.Cond, n.Then, n.Else)
	case *ExprLet:
		add(n.Value)
	case *ExprConst:
		add(n.Value)
	case *ExprReturn:
		add(n.Value)
	case *ExprTry:
		add(n.Inner)
	case *ExprTryBlock:
		add(n.Body)
	case *ExprSuper:
		addExprs(n.Args)
	case *ExprBlock:
		add(n.Body)
	}

	return out
}

// isNilNode catches typed nil pointers stored in an interface.
func isNilNode(n Node) bool {
	switch v := n.(type) {
	case *Block:
		return v == nil
	case *ItemMethod:
		return v == nil
	}
	return false
}

// Declarations returns the names declared by items anywhere in the tree,
// in source order. Method names are included.
func Declarations(node Node) []string {
	var names []string
	Inspect(node, func(n Node) bool {
		switch d := n.(type) {
		case *ItemConst:
			names = append(names, d.Name)
		case *ItemLet:
			names = append(names, d.Name)
		case *ItemProperty:
			names = append(names, d.Name)
		case *ItemMethod:
			names = append(names, d.Signature.Name)
		case *ItemClass:
			names = append(names, d.Name)
		case *ItemObject:
			names = append(names, d.Name)
		case *ExprLet:
			names = append(names, d.Name)
		case *ExprConst:
			names = append(names, d.Name)
		}
		return true
	})
	return names
}
