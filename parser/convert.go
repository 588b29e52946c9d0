package parser

import (
	"fmt"
	"strconv"

	"github.com/rubiojr/pyunparse/ast"
)

// convertRoot maps a raw dump value to a root AST node.
func convertRoot(v rawValue) (ast.Node, error) {
	n, ok := v.(*rawNode)
	if !ok {
		return nil, fmt.Errorf("expected a node at the dump root, got %T", v)
	}
	switch n.name {
	case "Module":
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Module{Body: body}, nil
	case "Interactive":
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Interactive{Body: body}, nil
	case "Expression":
		body, err := fieldExpr(n, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Expression{Body: body}, nil
	default:
		return nil, fmt.Errorf("unknown root node: %s", n.name)
	}
}

func isNone(v rawValue) bool {
	id, ok := v.(rawIdent)
	return ok && id == "None"
}

// --- Field helpers ---

func fieldNode(n *rawNode, field string) (*rawNode, bool) {
	v, ok := n.get(field)
	if !ok || isNone(v) {
		return nil, false
	}
	node, ok := v.(*rawNode)
	return node, ok
}

func fieldList(n *rawNode, field string) rawList {
	v, ok := n.get(field)
	if !ok || isNone(v) {
		return nil
	}
	list, _ := v.(rawList)
	return list
}

func fieldExpr(n *rawNode, field string) (ast.Expr, error) {
	v, ok := n.get(field)
	if !ok || isNone(v) {
		return nil, nil
	}
	return convExpr(v)
}

func fieldExprs(n *rawNode, field string) ([]ast.Expr, error) {
	var exprs []ast.Expr
	for _, v := range fieldList(n, field) {
		e, err := convExpr(v)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, e)
	}
	return exprs, nil
}

func fieldStmts(n *rawNode, field string) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for _, v := range fieldList(n, field) {
		s, err := convStmt(v)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func fieldString(n *rawNode, field string) string {
	v, ok := n.get(field)
	if !ok || isNone(v) {
		return ""
	}
	if s, ok := v.(rawString); ok {
		return string(s)
	}
	return ""
}

func fieldStrings(n *rawNode, field string) []string {
	var names []string
	for _, v := range fieldList(n, field) {
		if s, ok := v.(rawString); ok {
			names = append(names, string(s))
		}
	}
	return names
}

func fieldInt(n *rawNode, field string) int {
	v, ok := n.get(field)
	if !ok || isNone(v) {
		return 0
	}
	num, ok := v.(rawNumber)
	if !ok {
		return 0
	}
	// Dump ints are plain decimals; anything else falls back to zero.
	val, _ := strconv.Atoi(string(num))
	return val
}

func fieldBool(n *rawNode, field string) bool {
	v, ok := n.get(field)
	if !ok {
		return false
	}
	id, ok := v.(rawIdent)
	return ok && id == "True"
}

// --- Operator tables ---

var binOpKinds = map[string]ast.BinOpKind{
	"Add":      ast.Add,
	"Sub":      ast.Sub,
	"Mult":     ast.Mult,
	"MatMult":  ast.MatMult,
	"Div":      ast.Div,
	"Mod":      ast.Mod,
	"Pow":      ast.Pow,
	"LShift":   ast.LShift,
	"RShift":   ast.RShift,
	"BitOr":    ast.BitOr,
	"BitXor":   ast.BitXor,
	"BitAnd":   ast.BitAnd,
	"FloorDiv": ast.FloorDiv,
}

var unaryOpKinds = map[string]ast.UnaryOpKind{
	"Invert": ast.Invert,
	"Not":    ast.Not,
	"UAdd":   ast.UAdd,
	"USub":   ast.USub,
}

var cmpOpKinds = map[string]ast.CmpOpKind{
	"Eq":    ast.Eq,
	"NotEq": ast.NotEq,
	"Lt":    ast.Lt,
	"LtE":   ast.LtE,
	"Gt":    ast.Gt,
	"GtE":   ast.GtE,
	"Is":    ast.Is,
	"IsNot": ast.IsNot,
	"In":    ast.In,
	"NotIn": ast.NotIn,
}

func fieldBinOp(n *rawNode, field string) (ast.BinOpKind, error) {
	op, ok := fieldNode(n, field)
	if !ok {
		return 0, fmt.Errorf("%s: missing operator field %q", n.name, field)
	}
	kind, ok := binOpKinds[op.name]
	if !ok {
		return 0, fmt.Errorf("unknown binary operator: %s", op.name)
	}
	return kind, nil
}

// --- Statements ---

func convStmt(v rawValue) (ast.Statement, error) {
	n, ok := v.(*rawNode)
	if !ok {
		return nil, fmt.Errorf("expected a statement node, got %T", v)
	}
	switch n.name {
	case "FunctionDef", "AsyncFunctionDef":
		args, err := convArguments(n, "args")
		if err != nil {
			return nil, err
		}
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		decorators, err := fieldExprs(n, "decorator_list")
		if err != nil {
			return nil, err
		}
		returns, err := fieldExpr(n, "returns")
		if err != nil {
			return nil, err
		}
		if n.name == "AsyncFunctionDef" {
			return &ast.AsyncFunctionDef{
				Name: fieldString(n, "name"), Args: args, Body: body,
				Decorators: decorators, Returns: returns,
			}, nil
		}
		return &ast.FunctionDef{
			Name: fieldString(n, "name"), Args: args, Body: body,
			Decorators: decorators, Returns: returns,
		}, nil

	case "ClassDef":
		bases, err := fieldExprs(n, "bases")
		if err != nil {
			return nil, err
		}
		keywords, err := convKeywords(n)
		if err != nil {
			return nil, err
		}
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		decorators, err := fieldExprs(n, "decorator_list")
		if err != nil {
			return nil, err
		}
		return &ast.ClassDef{
			Name: fieldString(n, "name"), Bases: bases, Keywords: keywords,
			Body: body, Decorators: decorators,
		}, nil

	case "Return":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Return{Value: value}, nil

	case "Delete":
		targets, err := fieldExprs(n, "targets")
		if err != nil {
			return nil, err
		}
		return &ast.Delete{Targets: targets}, nil

	case "Assign":
		targets, err := fieldExprs(n, "targets")
		if err != nil {
			return nil, err
		}
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Assign{Targets: targets, Value: value}, nil

	case "AugAssign":
		target, err := fieldExpr(n, "target")
		if err != nil {
			return nil, err
		}
		op, err := fieldBinOp(n, "op")
		if err != nil {
			return nil, err
		}
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.AugAssign{Target: target, Op: op, Value: value}, nil

	case "AnnAssign":
		target, err := fieldExpr(n, "target")
		if err != nil {
			return nil, err
		}
		annotation, err := fieldExpr(n, "annotation")
		if err != nil {
			return nil, err
		}
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.AnnAssign{
			Target: target, Annotation: annotation, Value: value,
			Simple: fieldInt(n, "simple") != 0,
		}, nil

	case "Print":
		dest, err := fieldExpr(n, "dest")
		if err != nil {
			return nil, err
		}
		values, err := fieldExprs(n, "values")
		if err != nil {
			return nil, err
		}
		return &ast.Print{Dest: dest, Values: values, NL: fieldBool(n, "nl")}, nil

	case "For", "AsyncFor":
		target, err := fieldExpr(n, "target")
		if err != nil {
			return nil, err
		}
		iter, err := fieldExpr(n, "iter")
		if err != nil {
			return nil, err
		}
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		orElse, err := fieldStmts(n, "orelse")
		if err != nil {
			return nil, err
		}
		if n.name == "AsyncFor" {
			return &ast.AsyncFor{Target: target, Iter: iter, Body: body, OrElse: orElse}, nil
		}
		return &ast.For{Target: target, Iter: iter, Body: body, OrElse: orElse}, nil

	case "While":
		test, err := fieldExpr(n, "test")
		if err != nil {
			return nil, err
		}
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		orElse, err := fieldStmts(n, "orelse")
		if err != nil {
			return nil, err
		}
		return &ast.While{Test: test, Body: body, OrElse: orElse}, nil

	case "If":
		test, err := fieldExpr(n, "test")
		if err != nil {
			return nil, err
		}
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		orElse, err := fieldStmts(n, "orelse")
		if err != nil {
			return nil, err
		}
		return &ast.If{Test: test, Body: body, OrElse: orElse}, nil

	case "With", "AsyncWith":
		return convWith(n)

	case "Raise":
		exc, err := fieldExpr(n, "exc")
		if err != nil {
			return nil, err
		}
		if exc == nil {
			// Legacy dumps use type/inst/tback.
			if exc, err = fieldExpr(n, "type"); err != nil {
				return nil, err
			}
		}
		cause, err := fieldExpr(n, "cause")
		if err != nil {
			return nil, err
		}
		return &ast.Raise{Exc: exc, Cause: cause}, nil

	case "Try", "TryStar":
		return convTry(n)

	case "TryExcept":
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		handlers, err := convHandlers(n)
		if err != nil {
			return nil, err
		}
		orElse, err := fieldStmts(n, "orelse")
		if err != nil {
			return nil, err
		}
		return &ast.TryExcept{Body: body, Handlers: handlers, OrElse: orElse}, nil

	case "TryFinally":
		body, err := fieldStmts(n, "body")
		if err != nil {
			return nil, err
		}
		finalBody, err := fieldStmts(n, "finalbody")
		if err != nil {
			return nil, err
		}
		return &ast.TryFinally{Body: body, FinalBody: finalBody}, nil

	case "Assert":
		test, err := fieldExpr(n, "test")
		if err != nil {
			return nil, err
		}
		msg, err := fieldExpr(n, "msg")
		if err != nil {
			return nil, err
		}
		return &ast.Assert{Test: test, Msg: msg}, nil

	case "Import":
		names, err := convAliases(n)
		if err != nil {
			return nil, err
		}
		return &ast.Import{Names: names}, nil

	case "ImportFrom":
		names, err := convAliases(n)
		if err != nil {
			return nil, err
		}
		return &ast.ImportFrom{
			Module: fieldString(n, "module"),
			Names:  names,
			Level:  fieldInt(n, "level"),
		}, nil

	case "Exec":
		body, err := fieldExpr(n, "body")
		if err != nil {
			return nil, err
		}
		globals, err := fieldExpr(n, "globals")
		if err != nil {
			return nil, err
		}
		locals, err := fieldExpr(n, "locals")
		if err != nil {
			return nil, err
		}
		return &ast.Exec{Body: body, Globals: globals, Locals: locals}, nil

	case "Global":
		return &ast.Global{Names: fieldStrings(n, "names")}, nil

	case "Nonlocal":
		return &ast.Nonlocal{Names: fieldStrings(n, "names")}, nil

	case "Expr":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Value: value}, nil

	case "Pass":
		return &ast.Pass{}, nil
	case "Break":
		return &ast.Break{}, nil
	case "Continue":
		return &ast.Continue{}, nil

	default:
		return nil, fmt.Errorf("unknown statement node: %s", n.name)
	}
}

// convWith maps both the legacy single-item shape and the py3 items list.
// Multiple items nest, the exact inverse of the unparser's chain collapse.
func convWith(n *rawNode) (ast.Statement, error) {
	body, err := fieldStmts(n, "body")
	if err != nil {
		return nil, err
	}
	async := n.name == "AsyncWith"

	items := fieldList(n, "items")
	if items == nil {
		context, err := fieldExpr(n, "context_expr")
		if err != nil {
			return nil, err
		}
		optional, err := fieldExpr(n, "optional_vars")
		if err != nil {
			return nil, err
		}
		return makeWith(async, context, optional, body), nil
	}

	type withItem struct {
		context  ast.Expr
		optional ast.Expr
	}
	parsed := make([]withItem, 0, len(items))
	for _, item := range items {
		wn, ok := item.(*rawNode)
		if !ok || wn.name != "withitem" {
			return nil, fmt.Errorf("expected withitem in %s", n.name)
		}
		context, err := fieldExpr(wn, "context_expr")
		if err != nil {
			return nil, err
		}
		optional, err := fieldExpr(wn, "optional_vars")
		if err != nil {
			return nil, err
		}
		parsed = append(parsed, withItem{context, optional})
	}
	if len(parsed) == 0 {
		return nil, fmt.Errorf("%s without items", n.name)
	}
	stmt := makeWith(async, parsed[len(parsed)-1].context, parsed[len(parsed)-1].optional, body)
	for i := len(parsed) - 2; i >= 0; i-- {
		stmt = makeWith(async, parsed[i].context, parsed[i].optional, []ast.Statement{stmt})
	}
	return stmt, nil
}

func makeWith(async bool, context, optional ast.Expr, body []ast.Statement) ast.Statement {
	if async {
		return &ast.AsyncWith{ContextExpr: context, OptionalVars: optional, Body: body}
	}
	return &ast.With{ContextExpr: context, OptionalVars: optional, Body: body}
}

// convTry maps the unified py3 Try node onto the two-node form the
// unparser renders from.
func convTry(n *rawNode) (ast.Statement, error) {
	body, err := fieldStmts(n, "body")
	if err != nil {
		return nil, err
	}
	handlers, err := convHandlers(n)
	if err != nil {
		return nil, err
	}
	orElse, err := fieldStmts(n, "orelse")
	if err != nil {
		return nil, err
	}
	finalBody, err := fieldStmts(n, "finalbody")
	if err != nil {
		return nil, err
	}

	var stmt ast.Statement
	if len(handlers) > 0 || len(orElse) > 0 {
		stmt = &ast.TryExcept{Body: body, Handlers: handlers, OrElse: orElse}
		if len(finalBody) > 0 {
			stmt = &ast.TryFinally{Body: []ast.Statement{stmt}, FinalBody: finalBody}
		}
		return stmt, nil
	}
	if len(finalBody) == 0 {
		return nil, fmt.Errorf("Try without handlers or finalbody")
	}
	return &ast.TryFinally{Body: body, FinalBody: finalBody}, nil
}

func convHandlers(n *rawNode) ([]*ast.ExceptHandler, error) {
	var handlers []*ast.ExceptHandler
	for _, v := range fieldList(n, "handlers") {
		hn, ok := v.(*rawNode)
		if !ok || hn.name != "ExceptHandler" {
			return nil, fmt.Errorf("expected ExceptHandler, got %T", v)
		}
		typ, err := fieldExpr(hn, "type")
		if err != nil {
			return nil, err
		}
		body, err := fieldStmts(hn, "body")
		if err != nil {
			return nil, err
		}
		// The bound name is a plain string in py3 dumps, a Name node in
		// legacy ones.
		var name ast.Expr
		if raw, ok := hn.get("name"); ok && !isNone(raw) {
			switch nv := raw.(type) {
			case rawString:
				name = &ast.Name{ID: string(nv)}
			default:
				if name, err = convExpr(raw); err != nil {
					return nil, err
				}
			}
		}
		handlers = append(handlers, &ast.ExceptHandler{Type: typ, Name: name, Body: body})
	}
	return handlers, nil
}

func convAliases(n *rawNode) ([]*ast.Alias, error) {
	var aliases []*ast.Alias
	for _, v := range fieldList(n, "names") {
		an, ok := v.(*rawNode)
		if !ok || an.name != "alias" {
			return nil, fmt.Errorf("expected alias, got %T", v)
		}
		aliases = append(aliases, &ast.Alias{
			Name:   fieldString(an, "name"),
			AsName: fieldString(an, "asname"),
		})
	}
	return aliases, nil
}
