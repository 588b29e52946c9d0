package unparse

import (
	"strings"

	"github.com/rubiojr/pyunparse/ast"
)

func (e *emitter) emitFunctionDef(v *ast.FunctionDef) error {
	return e.emitFuncDef(v.Decorators, "def ", v.Name, v.Args, v.Returns, v.Body)
}

func (e *emitter) emitAsyncFunctionDef(v *ast.AsyncFunctionDef) error {
	return e.emitFuncDef(v.Decorators, "async def ", v.Name, v.Args, v.Returns, v.Body)
}

func (e *emitter) emitFuncDef(decorators []ast.Expr, keyword, name string, args *ast.Arguments, returns ast.Expr, body []ast.Statement) error {
	e.w.newline()
	if err := e.writeDecorators(decorators); err != nil {
		return err
	}
	e.w.writeIndentation()
	e.w.write(keyword + name + "(")
	if err := e.visit(args); err != nil {
		return err
	}
	e.w.write(")")
	if returns != nil {
		e.w.write(" -> ")
		if err := e.visit(returns); err != nil {
			return err
		}
	}
	e.w.write(":")
	e.w.newline()
	return e.writeSuite(body)
}

func (e *emitter) emitClassDef(v *ast.ClassDef) error {
	e.w.newline()
	e.w.newline()
	if err := e.writeDecorators(v.Decorators); err != nil {
		return err
	}
	e.w.writeIndentation()
	e.w.write("class " + v.Name + "(")
	elems := make([]ast.Expr, 0, len(v.Bases)+len(v.Keywords))
	for _, b := range v.Bases {
		elems = append(elems, b)
	}
	for _, k := range v.Keywords {
		elems = append(elems, k)
	}
	opts := defaultListOptions()
	opts.needParens = false
	if err := e.writeExpressionList(elems, opts); err != nil {
		return err
	}
	e.w.write("):")
	e.w.newline()
	return e.writeSuite(v.Body)
}

func (e *emitter) writeDecorators(decorators []ast.Expr) error {
	for _, d := range decorators {
		e.w.writeIndentation()
		e.w.write("@")
		if err := e.visit(d); err != nil {
			return err
		}
		e.w.newline()
	}
	return nil
}

func (e *emitter) emitFor(v *ast.For) error {
	return e.emitForLoop("for ", v.Target, v.Iter, v.Body, v.OrElse)
}

func (e *emitter) emitAsyncFor(v *ast.AsyncFor) error {
	return e.emitForLoop("async for ", v.Target, v.Iter, v.Body, v.OrElse)
}

func (e *emitter) emitForLoop(keyword string, target, iter ast.Expr, body, orElse []ast.Statement) error {
	e.w.writeIndentation()
	e.w.write(keyword)
	if err := e.visit(target); err != nil {
		return err
	}
	e.w.write(" in ")
	if err := e.visit(iter); err != nil {
		return err
	}
	e.w.write(":")
	e.w.newline()
	if err := e.writeSuite(body); err != nil {
		return err
	}
	return e.writeElse(orElse)
}

func (e *emitter) emitWhile(v *ast.While) error {
	e.w.writeIndentation()
	e.w.write("while ")
	if err := e.visit(v.Test); err != nil {
		return err
	}
	e.w.write(":")
	e.w.newline()
	if err := e.writeSuite(v.Body); err != nil {
		return err
	}
	return e.writeElse(v.OrElse)
}

func (e *emitter) emitIf(v *ast.If) error {
	e.w.writeIndentation()
	e.w.write("if ")
	if err := e.visit(v.Test); err != nil {
		return err
	}
	e.w.write(":")
	e.w.newline()
	if err := e.writeSuite(v.Body); err != nil {
		return err
	}
	// Collapse a lone nested If in the else branch into an elif chain.
	node := v
	for len(node.OrElse) == 1 {
		next, ok := node.OrElse[0].(*ast.If)
		if !ok {
			break
		}
		node = next
		e.w.writeIndentation()
		e.w.write("elif ")
		if err := e.visit(node.Test); err != nil {
			return err
		}
		e.w.write(":")
		e.w.newline()
		if err := e.writeSuite(node.Body); err != nil {
			return err
		}
	}
	return e.writeElse(node.OrElse)
}

func (e *emitter) writeElse(orElse []ast.Statement) error {
	if len(orElse) == 0 {
		return nil
	}
	e.w.writeIndentation()
	e.w.write("else:")
	e.w.newline()
	return e.writeSuite(orElse)
}

func (e *emitter) emitWith(v *ast.With) error {
	// Collapse a chain of with blocks whose entire body is the next with.
	items := []*ast.With{v}
	body := v.Body
	for len(body) == 1 {
		next, ok := body[0].(*ast.With)
		if !ok {
			break
		}
		items = append(items, next)
		body = next.Body
	}
	e.w.writeIndentation()
	e.w.write("with ")
	for i, item := range items {
		if i > 0 {
			e.w.write(", ")
		}
		if err := e.writeWithItem(item.ContextExpr, item.OptionalVars); err != nil {
			return err
		}
	}
	e.w.write(":")
	e.w.newline()
	return e.writeSuite(body)
}

func (e *emitter) emitAsyncWith(v *ast.AsyncWith) error {
	items := []*ast.AsyncWith{v}
	body := v.Body
	for len(body) == 1 {
		next, ok := body[0].(*ast.AsyncWith)
		if !ok {
			break
		}
		items = append(items, next)
		body = next.Body
	}
	e.w.writeIndentation()
	e.w.write("async with ")
	for i, item := range items {
		if i > 0 {
			e.w.write(", ")
		}
		if err := e.writeWithItem(item.ContextExpr, item.OptionalVars); err != nil {
			return err
		}
	}
	e.w.write(":")
	e.w.newline()
	return e.writeSuite(body)
}

func (e *emitter) writeWithItem(context, optionalVars ast.Expr) error {
	if err := e.visit(context); err != nil {
		return err
	}
	if optionalVars != nil {
		e.w.write(" as ")
		return e.visit(optionalVars)
	}
	return nil
}

func (e *emitter) emitTryExcept(v *ast.TryExcept) error {
	e.w.writeIndentation()
	e.w.write("try:")
	e.w.newline()
	if err := e.writeSuite(v.Body); err != nil {
		return err
	}
	for _, h := range v.Handlers {
		if err := e.visit(h); err != nil {
			return err
		}
	}
	return e.writeElse(v.OrElse)
}

func (e *emitter) emitTryFinally(v *ast.TryFinally) error {
	// try/except wrapped by try/finally renders as a single construct with
	// the finally clause after the handlers.
	if len(v.Body) == 1 {
		if inner, ok := v.Body[0].(*ast.TryExcept); ok {
			if err := e.visit(inner); err != nil {
				return err
			}
			return e.writeFinally(v.FinalBody)
		}
	}
	e.w.writeIndentation()
	e.w.write("try:")
	e.w.newline()
	if err := e.writeSuite(v.Body); err != nil {
		return err
	}
	return e.writeFinally(v.FinalBody)
}

func (e *emitter) writeFinally(finalBody []ast.Statement) error {
	e.w.writeIndentation()
	e.w.write("finally:")
	e.w.newline()
	return e.writeSuite(finalBody)
}

func (e *emitter) emitExceptHandler(v *ast.ExceptHandler) error {
	e.w.writeIndentation()
	e.w.write("except")
	if v.Type != nil {
		e.w.write(" ")
		if err := e.visit(v.Type); err != nil {
			return err
		}
		if v.Name != nil {
			e.w.write(" as ")
			if err := e.visit(v.Name); err != nil {
				return err
			}
		}
	}
	e.w.write(":")
	e.w.newline()
	return e.writeSuite(v.Body)
}

func (e *emitter) emitReturn(v *ast.Return) error {
	e.w.writeIndentation()
	e.w.write("return")
	if v.Value != nil {
		e.w.write(" ")
		if err := e.visit(v.Value); err != nil {
			return err
		}
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitDelete(v *ast.Delete) error {
	e.w.writeIndentation()
	e.w.write("del ")
	if err := e.writeExpressionList(v.Targets, defaultListOptions()); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitAssign(v *ast.Assign) error {
	e.w.writeIndentation()
	opts := defaultListOptions()
	opts.separator = " = "
	if err := e.writeExpressionList(v.Targets, opts); err != nil {
		return err
	}
	e.w.write(" = ")
	if err := e.visit(v.Value); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitAugAssign(v *ast.AugAssign) error {
	e.w.writeIndentation()
	if err := e.visit(v.Target); err != nil {
		return err
	}
	e.w.write(" " + v.Op.String() + "= ")
	if err := e.visit(v.Value); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitAnnAssign(v *ast.AnnAssign) error {
	e.w.writeIndentation()
	if err := e.parenthesizeIf(!v.Simple, func() error {
		return e.visit(v.Target)
	}); err != nil {
		return err
	}
	e.w.write(": ")
	if err := e.visit(v.Annotation); err != nil {
		return err
	}
	if v.Value != nil {
		e.w.write(" = ")
		if err := e.visit(v.Value); err != nil {
			return err
		}
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitPrint(v *ast.Print) error {
	e.w.writeIndentation()
	e.w.write("print")
	if v.Dest != nil {
		e.w.write(" >>")
		if err := e.visit(v.Dest); err != nil {
			return err
		}
		if len(v.Values) > 0 {
			e.w.write(",")
		}
	}
	if len(v.Values) > 0 {
		e.w.write(" ")
	}
	opts := defaultListOptions()
	opts.allowNewlines = false
	if err := e.writeExpressionList(v.Values, opts); err != nil {
		return err
	}
	if !v.NL {
		e.w.write(",")
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitRaise(v *ast.Raise) error {
	e.w.writeIndentation()
	e.w.write("raise")
	if v.Exc != nil {
		e.w.write(" ")
		if err := e.visit(v.Exc); err != nil {
			return err
		}
		if v.Cause != nil {
			e.w.write(" from ")
			if err := e.visit(v.Cause); err != nil {
				return err
			}
		}
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitAssert(v *ast.Assert) error {
	e.w.writeIndentation()
	e.w.write("assert ")
	if err := e.visit(v.Test); err != nil {
		return err
	}
	if v.Msg != nil {
		e.w.write(", ")
		if err := e.visit(v.Msg); err != nil {
			return err
		}
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitImport(v *ast.Import) error {
	e.w.writeIndentation()
	e.w.write("import ")
	if err := e.writeExpressionList(aliasList(v.Names), defaultListOptions()); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitImportFrom(v *ast.ImportFrom) error {
	if v.Module == "__future__" {
		for _, alias := range v.Names {
			if alias.Name == "unicode_literals" {
				e.hasUnicodeLiterals = true
			}
		}
	}
	e.w.writeIndentation()
	e.w.write("from " + strings.Repeat(".", v.Level))
	if v.Module != "" {
		e.w.write(v.Module)
	}
	e.w.write(" import ")
	if err := e.writeExpressionList(aliasList(v.Names), defaultListOptions()); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func aliasList(names []*ast.Alias) []ast.Expr {
	exprs := make([]ast.Expr, len(names))
	for i, a := range names {
		exprs[i] = a
	}
	return exprs
}

func (e *emitter) emitExec(v *ast.Exec) error {
	e.w.writeIndentation()
	e.w.write("exec ")
	if err := e.visit(v.Body); err != nil {
		return err
	}
	if v.Globals != nil {
		e.w.write(" in ")
		if err := e.visit(v.Globals); err != nil {
			return err
		}
	}
	if v.Locals != nil {
		e.w.write(", ")
		if err := e.visit(v.Locals); err != nil {
			return err
		}
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitNameList(prefix string, names []string) error {
	e.w.writeIndentation()
	e.w.write(prefix)
	exprs := make([]ast.Expr, len(names))
	for i, name := range names {
		exprs[i] = &ast.Name{ID: name}
	}
	if err := e.writeExpressionList(exprs, defaultListOptions()); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitExprStmt(v *ast.ExprStmt) error {
	e.w.writeIndentation()
	if err := e.visit(v.Value); err != nil {
		return err
	}
	e.w.newline()
	return nil
}

func (e *emitter) emitSimple(keyword string) error {
	e.w.writeIndentation()
	e.w.write(keyword)
	e.w.newline()
	return nil
}
