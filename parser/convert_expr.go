package parser

import (
	"fmt"

	"github.com/rubiojr/pyunparse/ast"
)

func convExpr(v rawValue) (ast.Expr, error) {
	n, ok := v.(*rawNode)
	if !ok {
		return nil, fmt.Errorf("expected an expression node, got %T", v)
	}
	switch n.name {
	case "BoolOp":
		op, ok := fieldNode(n, "op")
		if !ok {
			return nil, fmt.Errorf("BoolOp without op")
		}
		var kind ast.BoolOpKind
		switch op.name {
		case "And":
			kind = ast.And
		case "Or":
			kind = ast.Or
		default:
			return nil, fmt.Errorf("unknown boolean operator: %s", op.name)
		}
		values, err := fieldExprs(n, "values")
		if err != nil {
			return nil, err
		}
		return &ast.BoolOp{Op: kind, Values: values}, nil

	case "BinOp":
		left, err := fieldExpr(n, "left")
		if err != nil {
			return nil, err
		}
		op, err := fieldBinOp(n, "op")
		if err != nil {
			return nil, err
		}
		right, err := fieldExpr(n, "right")
		if err != nil {
			return nil, err
		}
		return &ast.BinOp{Left: left, Op: op, Right: right}, nil

	case "UnaryOp":
		op, ok := fieldNode(n, "op")
		if !ok {
			return nil, fmt.Errorf("UnaryOp without op")
		}
		kind, ok := unaryOpKinds[op.name]
		if !ok {
			return nil, fmt.Errorf("unknown unary operator: %s", op.name)
		}
		operand, err := fieldExpr(n, "operand")
		if err != nil {
			return nil, err
		}
		return &ast.UnaryOp{Op: kind, Operand: operand}, nil

	case "Lambda":
		args, err := convArguments(n, "args")
		if err != nil {
			return nil, err
		}
		body, err := fieldExpr(n, "body")
		if err != nil {
			return nil, err
		}
		return &ast.Lambda{Args: args, Body: body}, nil

	case "IfExp":
		test, err := fieldExpr(n, "test")
		if err != nil {
			return nil, err
		}
		body, err := fieldExpr(n, "body")
		if err != nil {
			return nil, err
		}
		orElse, err := fieldExpr(n, "orelse")
		if err != nil {
			return nil, err
		}
		return &ast.IfExp{Test: test, Body: body, OrElse: orElse}, nil

	case "Dict":
		keys, err := convDictKeys(n)
		if err != nil {
			return nil, err
		}
		values, err := fieldExprs(n, "values")
		if err != nil {
			return nil, err
		}
		if len(keys) != len(values) {
			return nil, fmt.Errorf("Dict with %d keys and %d values", len(keys), len(values))
		}
		return &ast.Dict{Keys: keys, Values: values}, nil

	case "Set":
		elts, err := fieldExprs(n, "elts")
		if err != nil {
			return nil, err
		}
		return &ast.Set{Elts: elts}, nil

	case "ListComp", "SetComp", "GeneratorExp":
		elt, err := fieldExpr(n, "elt")
		if err != nil {
			return nil, err
		}
		generators, err := convComprehensions(n)
		if err != nil {
			return nil, err
		}
		switch n.name {
		case "ListComp":
			return &ast.ListComp{Elt: elt, Generators: generators}, nil
		case "SetComp":
			return &ast.SetComp{Elt: elt, Generators: generators}, nil
		default:
			return &ast.GeneratorExp{Elt: elt, Generators: generators}, nil
		}

	case "DictComp":
		key, err := fieldExpr(n, "key")
		if err != nil {
			return nil, err
		}
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		generators, err := convComprehensions(n)
		if err != nil {
			return nil, err
		}
		return &ast.DictComp{Key: key, Value: value, Generators: generators}, nil

	case "Await":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Await{Value: value}, nil

	case "Yield":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Yield{Value: value}, nil

	case "YieldFrom":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.YieldFrom{Value: value}, nil

	case "Compare":
		left, err := fieldExpr(n, "left")
		if err != nil {
			return nil, err
		}
		var ops []ast.CmpOpKind
		for _, raw := range fieldList(n, "ops") {
			on, ok := raw.(*rawNode)
			if !ok {
				return nil, fmt.Errorf("expected comparison operator, got %T", raw)
			}
			kind, ok := cmpOpKinds[on.name]
			if !ok {
				return nil, fmt.Errorf("unknown comparison operator: %s", on.name)
			}
			ops = append(ops, kind)
		}
		comparators, err := fieldExprs(n, "comparators")
		if err != nil {
			return nil, err
		}
		return &ast.Compare{Left: left, Ops: ops, Comparators: comparators}, nil

	case "Call":
		return convCall(n)

	case "Repr":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Repr{Value: value}, nil

	case "Constant":
		return convConstant(n)

	case "Num":
		num, ok := n.get("n")
		if !ok {
			return nil, fmt.Errorf("Num without n")
		}
		text, ok := num.(rawNumber)
		if !ok {
			return nil, fmt.Errorf("Num with non-numeric value %T", num)
		}
		return &ast.Num{Value: string(text)}, nil

	case "Str":
		s, ok := n.get("s")
		if !ok {
			return nil, fmt.Errorf("Str without s")
		}
		text, ok := s.(rawString)
		if !ok {
			return nil, fmt.Errorf("Str with non-string value %T", s)
		}
		return &ast.Str{Value: string(text)}, nil

	case "Bytes":
		s, ok := n.get("s")
		if !ok {
			return nil, fmt.Errorf("Bytes without s")
		}
		text, ok := s.(rawBytes)
		if !ok {
			if str, isStr := s.(rawString); isStr {
				return &ast.Bytes{Value: string(str)}, nil
			}
			return nil, fmt.Errorf("Bytes with non-bytes value %T", s)
		}
		return &ast.Bytes{Value: string(text)}, nil

	case "NameConstant":
		raw, ok := n.get("value")
		if !ok {
			return nil, fmt.Errorf("NameConstant without value")
		}
		id, ok := raw.(rawIdent)
		if !ok {
			return nil, fmt.Errorf("NameConstant with non-constant value %T", raw)
		}
		return &ast.NameConstant{Value: string(id)}, nil

	case "Ellipsis":
		return &ast.EllipsisLit{}, nil

	case "FormattedValue":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		spec, err := fieldExpr(n, "format_spec")
		if err != nil {
			return nil, err
		}
		return &ast.FormattedValue{
			Value:      value,
			Conversion: conversionByte(fieldInt(n, "conversion")),
			FormatSpec: spec,
		}, nil

	case "JoinedStr":
		values, err := fieldExprs(n, "values")
		if err != nil {
			return nil, err
		}
		return &ast.JoinedStr{Values: values}, nil

	case "Attribute":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Attribute{Value: value, Attr: fieldString(n, "attr")}, nil

	case "Subscript":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		raw, ok := n.get("slice")
		if !ok || isNone(raw) {
			return nil, fmt.Errorf("Subscript without slice")
		}
		slice, err := convSlice(raw)
		if err != nil {
			return nil, err
		}
		return &ast.Subscript{Value: value, Slice: slice}, nil

	case "Starred":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Starred{Value: value}, nil

	case "Name":
		return &ast.Name{ID: fieldString(n, "id")}, nil

	case "List":
		elts, err := fieldExprs(n, "elts")
		if err != nil {
			return nil, err
		}
		return &ast.List{Elts: elts}, nil

	case "Tuple":
		elts, err := fieldExprs(n, "elts")
		if err != nil {
			return nil, err
		}
		return &ast.Tuple{Elts: elts}, nil

	case "Slice", "ExtSlice", "Index":
		return convSlice(n)

	default:
		return nil, fmt.Errorf("unknown expression node: %s", n.name)
	}
}

// convConstant splits the folded py3.8 Constant node back into the
// shape-specific literals the emitter works with.
func convConstant(n *rawNode) (ast.Expr, error) {
	raw, ok := n.get("value")
	if !ok {
		return nil, fmt.Errorf("Constant without value")
	}
	switch cv := raw.(type) {
	case rawString:
		return &ast.Str{Value: string(cv)}, nil
	case rawBytes:
		return &ast.Bytes{Value: string(cv)}, nil
	case rawNumber:
		return &ast.Num{Value: string(cv)}, nil
	case rawIdent:
		switch cv {
		case "True", "False", "None":
			return &ast.NameConstant{Value: string(cv)}, nil
		case "Ellipsis":
			return &ast.EllipsisLit{}, nil
		}
		return nil, fmt.Errorf("unknown constant: %s", cv)
	default:
		return nil, fmt.Errorf("unsupported constant value type %T", raw)
	}
}

func conversionByte(c int) byte {
	if c <= 0 {
		return 0
	}
	return byte(c)
}

// convDictKeys keeps nil entries: a missing key marks **unpacking.
func convDictKeys(n *rawNode) ([]ast.Expr, error) {
	var keys []ast.Expr
	for _, raw := range fieldList(n, "keys") {
		if isNone(raw) {
			keys = append(keys, nil)
			continue
		}
		key, err := convExpr(raw)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// convCall folds the legacy starargs/kwargs fields into the dedicated
// slots; py3 star arguments already arrive as Starred in args and
// nameless keywords.
func convCall(n *rawNode) (ast.Expr, error) {
	fn, err := fieldExpr(n, "func")
	if err != nil {
		return nil, err
	}
	args, err := fieldExprs(n, "args")
	if err != nil {
		return nil, err
	}
	keywords, err := convKeywords(n)
	if err != nil {
		return nil, err
	}
	starArgs, err := fieldExpr(n, "starargs")
	if err != nil {
		return nil, err
	}
	kwArgs, err := fieldExpr(n, "kwargs")
	if err != nil {
		return nil, err
	}
	return &ast.Call{
		Func: fn, Args: args, Keywords: keywords,
		StarArgs: starArgs, KwArgs: kwArgs,
	}, nil
}

func convKeywords(n *rawNode) ([]*ast.Keyword, error) {
	var keywords []*ast.Keyword
	for _, raw := range fieldList(n, "keywords") {
		kn, ok := raw.(*rawNode)
		if !ok || kn.name != "keyword" {
			return nil, fmt.Errorf("expected keyword, got %T", raw)
		}
		value, err := fieldExpr(kn, "value")
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, &ast.Keyword{Arg: fieldString(kn, "arg"), Value: value})
	}
	return keywords, nil
}

func convComprehensions(n *rawNode) ([]*ast.Comprehension, error) {
	var comps []*ast.Comprehension
	for _, raw := range fieldList(n, "generators") {
		cn, ok := raw.(*rawNode)
		if !ok || cn.name != "comprehension" {
			return nil, fmt.Errorf("expected comprehension, got %T", raw)
		}
		target, err := fieldExpr(cn, "target")
		if err != nil {
			return nil, err
		}
		iter, err := fieldExpr(cn, "iter")
		if err != nil {
			return nil, err
		}
		ifs, err := fieldExprs(cn, "ifs")
		if err != nil {
			return nil, err
		}
		comps = append(comps, &ast.Comprehension{
			Target: target, Iter: iter, Ifs: ifs,
			IsAsync: fieldInt(cn, "is_async") != 0,
		})
	}
	return comps, nil
}

// convSlice normalizes every subscript shape, including the py3.9 form
// where plain expressions and slice tuples appear directly.
func convSlice(raw rawValue) (ast.Expr, error) {
	n, ok := raw.(*rawNode)
	if !ok {
		return nil, fmt.Errorf("expected a subscript slice, got %T", raw)
	}
	switch n.name {
	case "Slice":
		lower, err := fieldExpr(n, "lower")
		if err != nil {
			return nil, err
		}
		upper, err := fieldExpr(n, "upper")
		if err != nil {
			return nil, err
		}
		step, err := fieldExpr(n, "step")
		if err != nil {
			return nil, err
		}
		return &ast.Slice{Lower: lower, Upper: upper, Step: step}, nil
	case "ExtSlice":
		var dims []ast.Expr
		for _, d := range fieldList(n, "dims") {
			dim, err := convSlice(d)
			if err != nil {
				return nil, err
			}
			dims = append(dims, dim)
		}
		return &ast.ExtSlice{Dims: dims}, nil
	case "Index":
		value, err := fieldExpr(n, "value")
		if err != nil {
			return nil, err
		}
		return &ast.Index{Value: value}, nil
	}

	expr, err := convExpr(n)
	if err != nil {
		return nil, err
	}
	if tuple, ok := expr.(*ast.Tuple); ok && len(tuple.Elts) > 0 {
		for _, elt := range tuple.Elts {
			if _, isSlice := elt.(*ast.Slice); isSlice {
				return &ast.ExtSlice{Dims: tuple.Elts}, nil
			}
		}
	}
	return &ast.Index{Value: expr}, nil
}

// convArguments accepts both parameter-list generations: arg nodes with
// dedicated vararg/kwarg nodes, and the legacy form with Name parameters
// and plain-string star names.
func convArguments(n *rawNode, field string) (*ast.Arguments, error) {
	raw, ok := fieldNode(n, field)
	if !ok {
		return &ast.Arguments{}, nil
	}
	if raw.name != "arguments" {
		return nil, fmt.Errorf("expected arguments, got %s", raw.name)
	}

	out := &ast.Arguments{}
	for _, list := range []string{"posonlyargs", "args"} {
		for _, v := range fieldList(raw, list) {
			arg, err := convArg(v)
			if err != nil {
				return nil, err
			}
			out.Args = append(out.Args, arg)
		}
	}
	defaults, err := fieldExprs(raw, "defaults")
	if err != nil {
		return nil, err
	}
	out.Defaults = defaults

	if out.VarArg, err = convStarName(raw, "vararg"); err != nil {
		return nil, err
	}
	for _, v := range fieldList(raw, "kwonlyargs") {
		arg, err := convArg(v)
		if err != nil {
			return nil, err
		}
		out.KwOnlyArgs = append(out.KwOnlyArgs, arg)
	}
	// kw_defaults runs parallel to kwonlyargs; None means no default.
	for _, v := range fieldList(raw, "kw_defaults") {
		if isNone(v) {
			out.KwDefaults = append(out.KwDefaults, nil)
			continue
		}
		def, err := convExpr(v)
		if err != nil {
			return nil, err
		}
		out.KwDefaults = append(out.KwDefaults, def)
	}
	if out.KwArg, err = convStarName(raw, "kwarg"); err != nil {
		return nil, err
	}
	return out, nil
}

func convArg(v rawValue) (*ast.Arg, error) {
	n, ok := v.(*rawNode)
	if !ok {
		return nil, fmt.Errorf("expected a parameter node, got %T", v)
	}
	switch n.name {
	case "arg":
		annotation, err := fieldExpr(n, "annotation")
		if err != nil {
			return nil, err
		}
		return &ast.Arg{Name: fieldString(n, "arg"), Annotation: annotation}, nil
	case "Name":
		return &ast.Arg{Name: fieldString(n, "id")}, nil
	}
	return nil, fmt.Errorf("unexpected parameter node: %s", n.name)
}

func convStarName(n *rawNode, field string) (*ast.Arg, error) {
	raw, ok := n.get(field)
	if !ok || isNone(raw) {
		return nil, nil
	}
	switch v := raw.(type) {
	case rawString:
		return &ast.Arg{Name: string(v)}, nil
	case *rawNode:
		return convArg(v)
	}
	return nil, fmt.Errorf("unexpected %s value %T", field, raw)
}
