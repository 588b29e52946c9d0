package ast

// Walk traverses the tree rooted at n in depth-first pre-order, calling fn
// for every node. If fn returns false the node's children are skipped.
// Nil children are never visited.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range children(n) {
		Walk(child, fn)
	}
}

func appendExpr(out []Node, e Expr) []Node {
	if e != nil {
		out = append(out, e)
	}
	return out
}

func appendExprs(out []Node, exprs []Expr) []Node {
	for _, e := range exprs {
		out = appendExpr(out, e)
	}
	return out
}

func appendStmts(out []Node, stmts []Statement) []Node {
	for _, s := range stmts {
		out = append(out, s)
	}
	return out
}

func appendArguments(out []Node, a *Arguments) []Node {
	if a != nil {
		out = append(out, a)
	}
	return out
}

// children returns the direct child nodes of n in source order.
func children(n Node) []Node {
	var out []Node
	switch v := n.(type) {
	case *Module:
		out = appendStmts(out, v.Body)
	case *Interactive:
		out = appendStmts(out, v.Body)
	case *Expression:
		out = appendExpr(out, v.Body)

	case *FunctionDef:
		out = appendExprs(out, v.Decorators)
		out = appendArguments(out, v.Args)
		out = appendExpr(out, v.Returns)
		out = appendStmts(out, v.Body)
	case *AsyncFunctionDef:
		out = appendExprs(out, v.Decorators)
		out = appendArguments(out, v.Args)
		out = appendExpr(out, v.Returns)
		out = appendStmts(out, v.Body)
	case *ClassDef:
		out = appendExprs(out, v.Decorators)
		out = appendExprs(out, v.Bases)
		for _, k := range v.Keywords {
			out = append(out, k)
		}
		out = appendStmts(out, v.Body)
	case *For:
		out = appendExpr(out, v.Target)
		out = appendExpr(out, v.Iter)
		out = appendStmts(out, v.Body)
		out = appendStmts(out, v.OrElse)
	case *AsyncFor:
		out = appendExpr(out, v.Target)
		out = appendExpr(out, v.Iter)
		out = appendStmts(out, v.Body)
		out = appendStmts(out, v.OrElse)
	case *While:
		out = appendExpr(out, v.Test)
		out = appendStmts(out, v.Body)
		out = appendStmts(out, v.OrElse)
	case *If:
		out = appendExpr(out, v.Test)
		out = appendStmts(out, v.Body)
		out = appendStmts(out, v.OrElse)
	case *With:
		out = appendExpr(out, v.ContextExpr)
		out = appendExpr(out, v.OptionalVars)
		out = appendStmts(out, v.Body)
	case *AsyncWith:
		out = appendExpr(out, v.ContextExpr)
		out = appendExpr(out, v.OptionalVars)
		out = appendStmts(out, v.Body)
	case *TryExcept:
		out = appendStmts(out, v.Body)
		for _, h := range v.Handlers {
			out = append(out, h)
		}
		out = appendStmts(out, v.OrElse)
	case *TryFinally:
		out = appendStmts(out, v.Body)
		out = appendStmts(out, v.FinalBody)
	case *ExceptHandler:
		out = appendExpr(out, v.Type)
		out = appendExpr(out, v.Name)
		out = appendStmts(out, v.Body)
	case *Return:
		out = appendExpr(out, v.Value)
	case *Delete:
		out = appendExprs(out, v.Targets)
	case *Assign:
		out = appendExprs(out, v.Targets)
		out = appendExpr(out, v.Value)
	case *AugAssign:
		out = appendExpr(out, v.Target)
		out = appendExpr(out, v.Value)
	case *AnnAssign:
		out = appendExpr(out, v.Target)
		out = appendExpr(out, v.Annotation)
		out = appendExpr(out, v.Value)
	case *Print:
		out = appendExpr(out, v.Dest)
		out = appendExprs(out, v.Values)
	case *Raise:
		out = appendExpr(out, v.Exc)
		out = appendExpr(out, v.Cause)
	case *Assert:
		out = appendExpr(out, v.Test)
		out = appendExpr(out, v.Msg)
	case *Import:
		for _, a := range v.Names {
			out = append(out, a)
		}
	case *ImportFrom:
		for _, a := range v.Names {
			out = append(out, a)
		}
	case *Exec:
		out = appendExpr(out, v.Body)
		out = appendExpr(out, v.Globals)
		out = appendExpr(out, v.Locals)
	case *ExprStmt:
		out = appendExpr(out, v.Value)

	case *BoolOp:
		out = appendExprs(out, v.Values)
	case *BinOp:
		out = appendExpr(out, v.Left)
		out = appendExpr(out, v.Right)
	case *UnaryOp:
		out = appendExpr(out, v.Operand)
	case *Lambda:
		out = appendArguments(out, v.Args)
		out = appendExpr(out, v.Body)
	case *IfExp:
		out = appendExpr(out, v.Test)
		out = appendExpr(out, v.Body)
		out = appendExpr(out, v.OrElse)
	case *Dict:
		for i := range v.Keys {
			out = appendExpr(out, v.Keys[i])
			if i < len(v.Values) {
				out = appendExpr(out, v.Values[i])
			}
		}
	case *Set:
		out = appendExprs(out, v.Elts)
	case *ListComp:
		out = appendExpr(out, v.Elt)
		for _, g := range v.Generators {
			out = append(out, g)
		}
	case *SetComp:
		out = appendExpr(out, v.Elt)
		for _, g := range v.Generators {
			out = append(out, g)
		}
	case *DictComp:
		out = appendExpr(out, v.Key)
		out = appendExpr(out, v.Value)
		for _, g := range v.Generators {
			out = append(out, g)
		}
	case *GeneratorExp:
		out = appendExpr(out, v.Elt)
		for _, g := range v.Generators {
			out = append(out, g)
		}
	case *Comprehension:
		out = appendExpr(out, v.Target)
		out = appendExpr(out, v.Iter)
		out = appendExprs(out, v.Ifs)
	case *Await:
		out = appendExpr(out, v.Value)
	case *Yield:
		out = appendExpr(out, v.Value)
	case *YieldFrom:
		out = appendExpr(out, v.Value)
	case *Compare:
		out = appendExpr(out, v.Left)
		out = appendExprs(out, v.Comparators)
	case *Call:
		out = appendExpr(out, v.Func)
		out = appendExprs(out, v.Args)
		for _, k := range v.Keywords {
			out = append(out, k)
		}
		out = appendExpr(out, v.StarArgs)
		out = appendExpr(out, v.KwArgs)
	case *Keyword:
		out = appendExpr(out, v.Value)
	case *Repr:
		out = appendExpr(out, v.Value)
	case *FormattedValue:
		out = appendExpr(out, v.Value)
		out = appendExpr(out, v.FormatSpec)
	case *JoinedStr:
		out = appendExprs(out, v.Values)
	case *Attribute:
		out = appendExpr(out, v.Value)
	case *Subscript:
		out = appendExpr(out, v.Value)
		out = appendExpr(out, v.Slice)
	case *Starred:
		out = appendExpr(out, v.Value)
	case *List:
		out = appendExprs(out, v.Elts)
	case *Tuple:
		out = appendExprs(out, v.Elts)
	case *Slice:
		out = appendExpr(out, v.Lower)
		out = appendExpr(out, v.Upper)
		out = appendExpr(out, v.Step)
	case *ExtSlice:
		out = appendExprs(out, v.Dims)
	case *Index:
		out = appendExpr(out, v.Value)
	case *Arguments:
		for _, a := range v.Args {
			out = append(out, a)
		}
		out = appendExprs(out, v.Defaults)
		if v.VarArg != nil {
			out = append(out, v.VarArg)
		}
		for _, a := range v.KwOnlyArgs {
			out = append(out, a)
		}
		out = appendExprs(out, v.KwDefaults)
		if v.KwArg != nil {
			out = append(out, v.KwArg)
		}
	case *Arg:
		out = appendExpr(out, v.Annotation)

	case *KeyValuePair:
		out = appendExpr(out, v.Key)
		out = appendExpr(out, v.Value)
	case *StarArg:
		out = appendExpr(out, v.Arg)
	case *DoubleStarArg:
		out = appendExpr(out, v.Arg)
	case *KeywordArg:
		out = appendExpr(out, v.Arg)
		out = appendExpr(out, v.Value)
	}
	return out
}
