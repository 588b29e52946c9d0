package unparse

import (
	"github.com/rubiojr/pyunparse/ast"
)

func (e *emitter) emitBoolOp(v *ast.BoolOp) error {
	myPrec := precedenceOf(v)
	parentPrec := precedenceOf(e.parentNode())
	// Lower-or-equal parenthesizes so distinct and/or chains never merge.
	return e.parenthesizeIf(myPrec <= parentPrec, func() error {
		opts := defaultListOptions()
		opts.separator = " " + v.Op.String() + " "
		opts.finalSeparator = false
		return e.writeExpressionList(v.Values, opts)
	})
}

func (e *emitter) emitBinOp(v *ast.BinOp) error {
	parent := e.parentNode()
	myPrec := precedenceOf(v)
	parentPrec := precedenceOf(parent)

	var shouldParenthesize bool
	switch {
	case myPrec < parentPrec:
		shouldParenthesize = true
	case myPrec == parentPrec:
		if pb, ok := parent.(*ast.BinOp); ok {
			if v.Op == ast.Pow {
				// Exponentiation is right-associative: only a left operand
				// that is itself a power needs explicit grouping.
				shouldParenthesize = pb.Left == ast.Expr(v)
			} else {
				// Left-associative operators: parenthesize an equal-precedence
				// right operand so a - (b - c) does not reassociate.
				shouldParenthesize = pb.Right == ast.Expr(v)
			}
		}
	}

	return e.parenthesizeIf(shouldParenthesize, func() error {
		if err := e.visit(v.Left); err != nil {
			return err
		}
		e.w.write(" " + v.Op.String() + " ")
		return e.visit(v.Right)
	})
}

func (e *emitter) emitUnaryOp(v *ast.UnaryOp) error {
	myPrec := precedenceOf(v)
	parentPrec := precedenceOf(e.parentNode())
	return e.parenthesizeIf(myPrec < parentPrec, func() error {
		e.w.write(v.Op.String())
		return e.visit(v.Operand)
	})
}

// operandContext reports whether parent is a context that forces
// parenthesization of lambda and conditional expressions: an operand of any
// operator, or the base of a call, attribute access or subscript.
func operandContext(parent ast.Node) bool {
	switch parent.(type) {
	case *ast.BinOp, *ast.UnaryOp, *ast.Compare, *ast.Attribute, *ast.Subscript, *ast.Call:
		return true
	}
	return false
}

func (e *emitter) emitLambda(v *ast.Lambda) error {
	parent := e.parentNode()
	shouldParenthesize := operandContext(parent)
	if _, ok := parent.(*ast.IfExp); ok {
		shouldParenthesize = true
	}
	return e.parenthesizeIf(shouldParenthesize, func() error {
		e.w.write("lambda")
		if hasParams(v.Args) {
			e.w.write(" ")
		}
		if err := e.visit(v.Args); err != nil {
			return err
		}
		e.w.write(": ")
		return e.visit(v.Body)
	})
}

func hasParams(a *ast.Arguments) bool {
	return len(a.Args) > 0 || a.VarArg != nil || len(a.KwOnlyArgs) > 0 || a.KwArg != nil
}

func (e *emitter) emitIfExp(v *ast.IfExp) error {
	parent := e.parentNode()
	shouldParenthesize := operandContext(parent)
	if pi, ok := parent.(*ast.IfExp); ok {
		// A conditional nested as the test or true branch of another
		// conditional is ambiguous without grouping.
		if pi.Test == ast.Expr(v) || pi.Body == ast.Expr(v) {
			shouldParenthesize = true
		}
	}
	return e.parenthesizeIf(shouldParenthesize, func() error {
		if err := e.visit(v.Body); err != nil {
			return err
		}
		e.w.write(" if ")
		if err := e.visit(v.Test); err != nil {
			return err
		}
		e.w.write(" else ")
		return e.visit(v.OrElse)
	})
}

func (e *emitter) emitDict(v *ast.Dict) error {
	e.w.write("{")
	items := make([]ast.Expr, len(v.Keys))
	for i := range v.Keys {
		if v.Keys[i] == nil {
			// Dict unpacking has no key: {**mapping}.
			items[i] = &ast.DoubleStarArg{Arg: v.Values[i]}
		} else {
			items[i] = &ast.KeyValuePair{Key: v.Keys[i], Value: v.Values[i]}
		}
	}
	opts := defaultListOptions()
	opts.needParens = false
	if err := e.writeExpressionList(items, opts); err != nil {
		return err
	}
	e.w.write("}")
	return nil
}

func (e *emitter) emitKeyValuePair(v *ast.KeyValuePair) error {
	if err := e.visit(v.Key); err != nil {
		return err
	}
	e.w.write(": ")
	return e.visit(v.Value)
}

func (e *emitter) emitSet(v *ast.Set) error {
	e.w.write("{")
	opts := defaultListOptions()
	opts.needParens = false
	if err := e.writeExpressionList(v.Elts, opts); err != nil {
		return err
	}
	e.w.write("}")
	return nil
}

func (e *emitter) emitComp(elt ast.Expr, generators []*ast.Comprehension, start, end string) error {
	e.w.write(start)
	elems := make([]ast.Expr, 0, len(generators)+1)
	elems = append(elems, elt)
	for _, g := range generators {
		elems = append(elems, g)
	}
	opts := defaultListOptions()
	opts.separator = " "
	opts.needParens = false
	if err := e.writeExpressionList(elems, opts); err != nil {
		return err
	}
	e.w.write(end)
	return nil
}

func (e *emitter) emitDictComp(v *ast.DictComp) error {
	e.w.write("{")
	elems := make([]ast.Expr, 0, len(v.Generators)+1)
	elems = append(elems, &ast.KeyValuePair{Key: v.Key, Value: v.Value})
	for _, g := range v.Generators {
		elems = append(elems, g)
	}
	opts := defaultListOptions()
	opts.separator = " "
	opts.needParens = false
	if err := e.writeExpressionList(elems, opts); err != nil {
		return err
	}
	e.w.write("}")
	return nil
}

func (e *emitter) emitComprehension(v *ast.Comprehension) error {
	if v.IsAsync {
		e.w.write("async for ")
	} else {
		e.w.write("for ")
	}
	if err := e.visit(v.Target); err != nil {
		return err
	}
	e.w.write(" in ")
	if err := e.visit(v.Iter); err != nil {
		return err
	}
	for _, cond := range v.Ifs {
		e.w.write(" if ")
		if err := e.visit(cond); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitAwait(v *ast.Await) error {
	myPrec := precedenceOf(v)
	parentPrec := precedenceOf(e.parentNode())
	return e.parenthesizeIf(myPrec < parentPrec, func() error {
		e.w.write("await ")
		return e.visit(v.Value)
	})
}

// yieldContext reports whether a yield expression may appear bare under
// parent: as a whole expression statement or on either side of a plain or
// augmented assignment.
func yieldContext(parent ast.Node) bool {
	switch parent.(type) {
	case *ast.ExprStmt, *ast.Assign, *ast.AugAssign:
		return true
	}
	return false
}

func (e *emitter) emitYield(v *ast.Yield) error {
	return e.parenthesizeIf(!yieldContext(e.parentNode()), func() error {
		e.w.write("yield")
		if v.Value != nil {
			e.w.write(" ")
			return e.visit(v.Value)
		}
		return nil
	})
}

func (e *emitter) emitYieldFrom(v *ast.YieldFrom) error {
	return e.parenthesizeIf(!yieldContext(e.parentNode()), func() error {
		e.w.write("yield from ")
		return e.visit(v.Value)
	})
}

func (e *emitter) emitCompare(v *ast.Compare) error {
	myPrec := precedenceOf(v)
	parentPrec := precedenceOf(e.parentNode())
	// Lower-or-equal parenthesizes so distinct comparison chains never merge.
	return e.parenthesizeIf(myPrec <= parentPrec, func() error {
		if err := e.visit(v.Left); err != nil {
			return err
		}
		for i, op := range v.Ops {
			e.w.write(" " + op.String() + " ")
			if err := e.visit(v.Comparators[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (e *emitter) emitCall(v *ast.Call) error {
	if err := e.visit(v.Func); err != nil {
		return err
	}
	e.w.write("(")

	// The arguments sit in their own delimited context: push a marker so
	// they see the lowest parent precedence instead of the call's.
	e.nodeStack = append(e.nodeStack, &ast.CallArgs{})
	defer func() {
		e.nodeStack = e.nodeStack[:len(e.nodeStack)-1]
	}()

	args := make([]ast.Expr, 0, len(v.Args)+len(v.Keywords)+2)
	args = append(args, v.Args...)
	for _, k := range v.Keywords {
		args = append(args, k)
	}
	if v.StarArgs != nil {
		args = append(args, &ast.StarArg{Arg: v.StarArgs})
	}
	if v.KwArgs != nil {
		args = append(args, &ast.DoubleStarArg{Arg: v.KwArgs})
	}

	if len(args) > 0 {
		opts := defaultListOptions()
		opts.needParens = false
		// A trailing separator is illegal after *args and **kwargs.
		opts.finalSeparator = false
		if err := e.writeExpressionList(args, opts); err != nil {
			return err
		}
	}
	e.w.write(")")
	return nil
}

func (e *emitter) emitKeyword(v *ast.Keyword) error {
	// A keyword without a name is double-star unpacking: f(**kwargs).
	if v.Arg == "" {
		e.w.write("**")
	} else {
		e.w.write(v.Arg + "=")
	}
	return e.visit(v.Value)
}

func (e *emitter) emitStarArg(v *ast.StarArg) error {
	e.w.write("*")
	if v.Arg != nil {
		return e.visit(v.Arg)
	}
	return nil
}

func (e *emitter) emitKeywordArg(v *ast.KeywordArg) error {
	if err := e.visit(v.Arg); err != nil {
		return err
	}
	// Annotated defaults use spaced equals, per PEP 8.
	if arg, ok := v.Arg.(*ast.Arg); ok && arg.Annotation != nil {
		e.w.write(" = ")
	} else {
		e.w.write("=")
	}
	return e.visit(v.Value)
}

func (e *emitter) emitRepr(v *ast.Repr) error {
	e.w.write("`")
	if err := e.visit(v.Value); err != nil {
		return err
	}
	e.w.write("`")
	return nil
}

func (e *emitter) emitAttribute(v *ast.Attribute) error {
	if err := e.visit(v.Value); err != nil {
		return err
	}
	e.w.write("." + v.Attr)
	return nil
}

func (e *emitter) emitSubscript(v *ast.Subscript) error {
	if err := e.visit(v.Value); err != nil {
		return err
	}
	e.w.write("[")
	if err := e.visit(v.Slice); err != nil {
		return err
	}
	e.w.write("]")
	return nil
}

func (e *emitter) emitList(v *ast.List) error {
	e.w.write("[")
	opts := defaultListOptions()
	opts.needParens = false
	if err := e.writeExpressionList(v.Elts, opts); err != nil {
		return err
	}
	e.w.write("]")
	return nil
}

// tupleContext reports whether parent is a statement context where a bare
// separator-joined tuple is legal and preferred over explicit parentheses.
func tupleContext(parent ast.Node) bool {
	switch parent.(type) {
	case *ast.ExprStmt, *ast.Assign, *ast.AugAssign, *ast.Return, *ast.Yield:
		return true
	}
	return false
}

func (e *emitter) emitTuple(v *ast.Tuple) error {
	if len(v.Elts) == 0 {
		e.w.write("()")
		return nil
	}
	shouldParenthesize := !tupleContext(e.parentNode())
	return e.parenthesizeIf(shouldParenthesize, func() error {
		if len(v.Elts) == 1 {
			if err := e.visit(v.Elts[0]); err != nil {
				return err
			}
			e.w.write(",")
			return nil
		}
		opts := defaultListOptions()
		opts.needParens = !shouldParenthesize
		return e.writeExpressionList(v.Elts, opts)
	})
}

func (e *emitter) emitSlice(v *ast.Slice) error {
	if v.Lower != nil {
		if err := e.visit(v.Lower); err != nil {
			return err
		}
	}
	e.w.write(":")
	if v.Upper != nil {
		if err := e.visit(v.Upper); err != nil {
			return err
		}
	}
	if v.Step != nil {
		e.w.write(":")
		if err := e.visit(v.Step); err != nil {
			return err
		}
	}
	return nil
}

func (e *emitter) emitExtSlice(v *ast.ExtSlice) error {
	opts := defaultListOptions()
	opts.needParens = false
	return e.writeExpressionList(v.Dims, opts)
}

func (e *emitter) emitArguments(v *ast.Arguments) error {
	numDefaults := len(v.Defaults)
	split := len(v.Args) - numDefaults

	args := make([]ast.Expr, 0, len(v.Args)+len(v.KwOnlyArgs)+2)
	for _, a := range v.Args[:split] {
		args = append(args, a)
	}
	for i, a := range v.Args[split:] {
		args = append(args, &ast.KeywordArg{Arg: a, Value: v.Defaults[i]})
	}
	if v.VarArg != nil {
		args = append(args, &ast.StarArg{Arg: v.VarArg})
	} else if len(v.KwOnlyArgs) > 0 {
		// Keyword-only parameters without *args need a bare star marker.
		args = append(args, &ast.StarArg{})
	}
	for i, a := range v.KwOnlyArgs {
		if i < len(v.KwDefaults) && v.KwDefaults[i] != nil {
			args = append(args, &ast.KeywordArg{Arg: a, Value: v.KwDefaults[i]})
		} else {
			args = append(args, a)
		}
	}
	if v.KwArg != nil {
		args = append(args, &ast.DoubleStarArg{Arg: v.KwArg})
	}

	if len(args) == 0 {
		return nil
	}
	opts := defaultListOptions()
	opts.needParens = false
	opts.finalSeparator = false
	// A lambda's parameter list has no legal line break.
	if _, ok := e.parentNode().(*ast.Lambda); ok {
		opts.allowNewlines = false
	}
	return e.writeExpressionList(args, opts)
}

func (e *emitter) emitArg(v *ast.Arg) error {
	e.w.write(v.Name)
	if v.Annotation != nil {
		e.w.write(": ")
		return e.visit(v.Annotation)
	}
	return nil
}

func (e *emitter) emitAlias(v *ast.Alias) error {
	e.w.write(v.Name)
	if v.AsName != "" {
		e.w.write(" as " + v.AsName)
	}
	return nil
}
