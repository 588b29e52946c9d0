package unparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubiojr/pyunparse/ast"
)

// Helpers to keep tree literals readable.

func name(id string) *ast.Name { return &ast.Name{ID: id} }
func num(v string) *ast.Num    { return &ast.Num{Value: v} }
func str(v string) *ast.Str    { return &ast.Str{Value: v} }

func expr(e ast.Expr) *ast.ExprStmt { return &ast.ExprStmt{Value: e} }

func mod(stmts ...ast.Statement) *ast.Module { return &ast.Module{Body: stmts} }

func binop(left ast.Expr, op ast.BinOpKind, right ast.Expr) *ast.BinOp {
	return &ast.BinOp{Left: left, Op: op, Right: right}
}

func call(fn ast.Expr, args ...ast.Expr) *ast.Call {
	return &ast.Call{Func: fn, Args: args}
}

func suite(stmts ...ast.Statement) []ast.Statement { return stmts }

func pass() *ast.Pass { return &ast.Pass{} }

func render(t *testing.T, node ast.Node) string {
	t.Helper()
	out, err := Unparse(node)
	require.NoError(t, err)
	return out
}

func assertRenders(t *testing.T, node ast.Node, want string) {
	t.Helper()
	got := render(t, node)
	if got != want {
		t.Errorf("rendered %q, want %q", got, want)
	}
}

func TestSimpleStatements(t *testing.T) {
	tests := []struct {
		name string
		node ast.Statement
		want string
	}{
		{"pass", pass(), "pass\n"},
		{"break", &ast.Break{}, "break\n"},
		{"continue", &ast.Continue{}, "continue\n"},
		{"bare return", &ast.Return{}, "return\n"},
		{"return value", &ast.Return{Value: name("x")}, "return x\n"},
		{"del", &ast.Delete{Targets: []ast.Expr{name("a"), name("b")}}, "del a, b\n"},
		{"assign", &ast.Assign{Targets: []ast.Expr{name("x")}, Value: num("42")}, "x = 42\n"},
		{
			"chained assign",
			&ast.Assign{Targets: []ast.Expr{name("x"), name("y")}, Value: num("3")},
			"x = y = 3\n",
		},
		{
			"augmented assign",
			&ast.AugAssign{Target: name("x"), Op: ast.Add, Value: num("1")},
			"x += 1\n",
		},
		{
			"annotated assign",
			&ast.AnnAssign{Target: name("x"), Annotation: name("int"), Value: num("3"), Simple: true},
			"x: int = 3\n",
		},
		{
			"annotated non-simple target",
			&ast.AnnAssign{Target: name("x"), Annotation: name("int")},
			"(x): int\n",
		},
		{"bare raise", &ast.Raise{}, "raise\n"},
		{"raise", &ast.Raise{Exc: call(name("Error"))}, "raise Error()\n"},
		{
			"raise from",
			&ast.Raise{Exc: name("e"), Cause: name("ee")},
			"raise e from ee\n",
		},
		{"assert", &ast.Assert{Test: name("x")}, "assert x\n"},
		{
			"assert with message",
			&ast.Assert{Test: name("x"), Msg: str("oops")},
			"assert x, 'oops'\n",
		},
		{
			"import",
			&ast.Import{Names: []*ast.Alias{{Name: "os"}, {Name: "sys"}}},
			"import os, sys\n",
		},
		{
			"import as",
			&ast.Import{Names: []*ast.Alias{{Name: "numpy", AsName: "np"}}},
			"import numpy as np\n",
		},
		{
			"from import",
			&ast.ImportFrom{Module: "os", Names: []*ast.Alias{{Name: "path"}}},
			"from os import path\n",
		},
		{
			"relative import",
			&ast.ImportFrom{Level: 2, Names: []*ast.Alias{{Name: "x"}}},
			"from .. import x\n",
		},
		{
			"relative module import",
			&ast.ImportFrom{Module: "pkg", Level: 1, Names: []*ast.Alias{{Name: "x"}}},
			"from .pkg import x\n",
		},
		{"global", &ast.Global{Names: []string{"a", "b"}}, "global a, b\n"},
		{"nonlocal", &ast.Nonlocal{Names: []string{"y", "z"}}, "nonlocal y, z\n"},
		{
			"exec",
			&ast.Exec{Body: name("code"), Globals: name("g"), Locals: name("l")},
			"exec code in g, l\n",
		},
		{"print", &ast.Print{Values: []ast.Expr{name("x")}, NL: true}, "print x\n"},
		{
			"print without newline",
			&ast.Print{Values: []ast.Expr{name("x"), name("y")}},
			"print x, y,\n",
		},
		{
			"print to dest",
			&ast.Print{Dest: name("f"), Values: []ast.Expr{name("x")}, NL: true},
			"print >>f, x\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(tt.node), tt.want)
		})
	}
}

func TestBinOpPrecedence(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"add", binop(num("1"), ast.Add, num("2")), "1 + 2\n"},
		{
			"mult binds tighter",
			binop(num("1"), ast.Add, binop(num("2"), ast.Mult, num("3"))),
			"1 + 2 * 3\n",
		},
		{
			"grouped left operand",
			binop(binop(num("1"), ast.Add, num("2")), ast.Mult, num("3")),
			"(1 + 2) * 3\n",
		},
		{
			"left associative chain",
			binop(binop(name("a"), ast.Sub, name("b")), ast.Sub, name("c")),
			"a - b - c\n",
		},
		{
			"right nested equal precedence",
			binop(name("a"), ast.Sub, binop(name("b"), ast.Sub, name("c"))),
			"a - (b - c)\n",
		},
		{
			"pow right associative",
			binop(num("2"), ast.Pow, binop(num("2"), ast.Pow, num("2"))),
			"2 ** 2 ** 2\n",
		},
		{
			"pow left nested",
			binop(binop(num("2"), ast.Pow, num("2")), ast.Pow, num("2")),
			"(2 ** 2) ** 2\n",
		},
		{
			"matmult",
			binop(binop(name("a"), ast.Mult, name("b")), ast.MatMult, name("c")),
			"a * b @ c\n",
		},
		{"floordiv", binop(name("a"), ast.FloorDiv, name("b")), "a // b\n"},
		{
			"unary operand",
			&ast.UnaryOp{Op: ast.USub, Operand: binop(name("a"), ast.Add, name("b"))},
			"-(a + b)\n",
		},
		{"invert", &ast.UnaryOp{Op: ast.Invert, Operand: name("x")}, "~x\n"},
		{"not", &ast.UnaryOp{Op: ast.Not, Operand: name("x")}, "not x\n"},
		{
			"call argument needs no grouping",
			call(name("f"), binop(name("a"), ast.Mult, name("b"))),
			"f(a * b)\n",
		},
		{
			"binop base of attribute",
			&ast.Attribute{Value: binop(num("1"), ast.Add, num("2")), Attr: "real"},
			"(1 + 2).real\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestBoolOpAndCompare(t *testing.T) {
	and := func(values ...ast.Expr) *ast.BoolOp {
		return &ast.BoolOp{Op: ast.And, Values: values}
	}
	or := func(values ...ast.Expr) *ast.BoolOp {
		return &ast.BoolOp{Op: ast.Or, Values: values}
	}
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"and chain", and(name("a"), name("b"), name("c")), "a and b and c\n"},
		{"and inside or", or(and(name("a"), name("b")), name("c")), "a and b or c\n"},
		{"or inside and", and(name("a"), or(name("b"), name("c"))), "a and (b or c)\n"},
		{
			"nested same op keeps grouping",
			and(name("a"), and(name("b"), name("c"))),
			"a and (b and c)\n",
		},
		{
			"comparison chain",
			&ast.Compare{
				Left:        name("a"),
				Ops:         []ast.CmpOpKind{ast.Lt, ast.LtE},
				Comparators: []ast.Expr{name("b"), name("c")},
			},
			"a < b <= c\n",
		},
		{
			"nested comparison",
			&ast.Compare{
				Left: &ast.Compare{
					Left:        name("a"),
					Ops:         []ast.CmpOpKind{ast.Eq},
					Comparators: []ast.Expr{name("b")},
				},
				Ops:         []ast.CmpOpKind{ast.Eq},
				Comparators: []ast.Expr{name("c")},
			},
			"(a == b) == c\n",
		},
		{
			"membership and identity",
			&ast.Compare{
				Left:        name("a"),
				Ops:         []ast.CmpOpKind{ast.NotIn},
				Comparators: []ast.Expr{name("b")},
			},
			"a not in b\n",
		},
		{
			"is not",
			&ast.Compare{
				Left:        name("a"),
				Ops:         []ast.CmpOpKind{ast.IsNot},
				Comparators: []ast.Expr{name("b")},
			},
			"a is not b\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestCalls(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"no arguments", call(name("f")), "f()\n"},
		{"positional", call(name("f"), name("a"), name("b")), "f(a, b)\n"},
		{
			"keyword",
			&ast.Call{
				Func:     name("f"),
				Args:     []ast.Expr{name("a")},
				Keywords: []*ast.Keyword{{Arg: "b", Value: num("1")}},
			},
			"f(a, b=1)\n",
		},
		{
			"star and double star",
			&ast.Call{Func: name("f"), StarArgs: name("args"), KwArgs: name("kwargs")},
			"f(*args, **kwargs)\n",
		},
		{
			"starred argument",
			call(name("f"), &ast.Starred{Value: name("a")}),
			"f(*a)\n",
		},
		{
			"keyword unpacking",
			&ast.Call{Func: name("f"), Keywords: []*ast.Keyword{{Value: name("k")}}},
			"f(**k)\n",
		},
		{"method", call(&ast.Attribute{Value: name("x"), Attr: "y"}, name("z")), "x.y(z)\n"},
		{
			"call of call",
			call(call(name("f"), name("a")), name("b")),
			"f(a)(b)\n",
		},
		{
			"lambda base needs grouping",
			call(&ast.Lambda{Args: &ast.Arguments{}, Body: name("x")}),
			"(lambda: x)()\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestLambdaAndIfExp(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{
			"bare lambda",
			&ast.Lambda{Args: &ast.Arguments{}, Body: name("x")},
			"lambda: x\n",
		},
		{
			"lambda with defaults",
			&ast.Lambda{
				Args: &ast.Arguments{
					Args:     []*ast.Arg{{Name: "x"}, {Name: "y"}},
					Defaults: []ast.Expr{num("1")},
				},
				Body: name("x"),
			},
			"lambda x, y=1: x\n",
		},
		{
			"conditional",
			&ast.IfExp{Test: name("b"), Body: name("a"), OrElse: name("c")},
			"a if b else c\n",
		},
		{
			"conditional in else branch",
			&ast.IfExp{
				Test: name("b"),
				Body: name("a"),
				OrElse: &ast.IfExp{
					Test: name("d"), Body: name("c"), OrElse: name("e"),
				},
			},
			"a if b else c if d else e\n",
		},
		{
			"conditional as test",
			&ast.IfExp{
				Test: &ast.IfExp{Test: name("x"), Body: name("b"), OrElse: name("y")},
				Body: name("a"), OrElse: name("c"),
			},
			"a if (b if x else y) else c\n",
		},
		{
			"conditional operand",
			binop(num("1"), ast.Add, &ast.IfExp{
				Test: name("b"), Body: name("a"), OrElse: name("c"),
			}),
			"1 + (a if b else c)\n",
		},
		{
			"lambda under conditional",
			&ast.IfExp{
				Test:   name("b"),
				Body:   &ast.Lambda{Args: &ast.Arguments{}, Body: name("x")},
				OrElse: name("c"),
			},
			"(lambda: x) if b else c\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestDisplays(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"empty list", &ast.List{}, "[]\n"},
		{"list", &ast.List{Elts: []ast.Expr{num("1"), num("2")}}, "[1, 2]\n"},
		{
			"list with starred",
			&ast.List{Elts: []ast.Expr{name("a"), &ast.Starred{Value: name("b")}}},
			"[a, *b]\n",
		},
		{"set", &ast.Set{Elts: []ast.Expr{name("a")}}, "{a}\n"},
		{"empty dict", &ast.Dict{}, "{}\n"},
		{
			"dict",
			&ast.Dict{
				Keys:   []ast.Expr{name("a"), name("b")},
				Values: []ast.Expr{num("1"), num("2")},
			},
			"{a: 1, b: 2}\n",
		},
		{
			"dict unpacking",
			&ast.Dict{
				Keys:   []ast.Expr{name("a"), nil},
				Values: []ast.Expr{num("1"), name("rest")},
			},
			"{a: 1, **rest}\n",
		},
		{"empty tuple", &ast.Tuple{}, "()\n"},
		{"single element tuple", &ast.Tuple{Elts: []ast.Expr{name("x")}}, "x,\n"},
		{
			"bare tuple",
			&ast.Tuple{Elts: []ast.Expr{name("a"), name("b")}},
			"a, b\n",
		},
		{
			"tuple argument",
			call(name("f"), &ast.Tuple{Elts: []ast.Expr{name("a"), name("b")}}),
			"f((a, b))\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestComprehensions(t *testing.T) {
	gen := func(target, iter ast.Expr, ifs ...ast.Expr) *ast.Comprehension {
		return &ast.Comprehension{Target: target, Iter: iter, Ifs: ifs}
	}
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{
			"list comprehension",
			&ast.ListComp{Elt: name("x"), Generators: []*ast.Comprehension{gen(name("y"), name("z"))}},
			"[x for y in z]\n",
		},
		{
			"filter",
			&ast.ListComp{
				Elt:        name("x"),
				Generators: []*ast.Comprehension{gen(name("y"), name("z"), name("x"))},
			},
			"[x for y in z if x]\n",
		},
		{
			"set comprehension",
			&ast.SetComp{Elt: name("x"), Generators: []*ast.Comprehension{gen(name("y"), name("z"))}},
			"{x for y in z}\n",
		},
		{
			"dict comprehension",
			&ast.DictComp{
				Key: name("k"), Value: name("v"),
				Generators: []*ast.Comprehension{gen(name("k"), name("d"))},
			},
			"{k: v for k in d}\n",
		},
		{
			"generator expression",
			&ast.GeneratorExp{Elt: name("x"), Generators: []*ast.Comprehension{gen(name("y"), name("z"))}},
			"(x for y in z)\n",
		},
		{
			"async comprehension",
			&ast.ListComp{
				Elt: name("x"),
				Generators: []*ast.Comprehension{
					{Target: name("y"), Iter: name("z"), IsAsync: true},
				},
			},
			"[x async for y in z]\n",
		},
		{
			"multiple generators",
			&ast.ListComp{
				Elt: name("x"),
				Generators: []*ast.Comprehension{
					gen(name("y"), name("lst")),
					gen(name("x"), name("y")),
				},
			},
			"[x for y in lst for x in y]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestSubscripts(t *testing.T) {
	sub := func(v ast.Expr, s ast.Expr) *ast.Subscript {
		return &ast.Subscript{Value: v, Slice: s}
	}
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"index", sub(name("x"), &ast.Index{Value: num("0")}), "x[0]\n"},
		{
			"slice",
			sub(name("x"), &ast.Slice{Lower: num("1"), Upper: num("2")}),
			"x[1:2]\n",
		},
		{
			"slice with step",
			sub(name("x"), &ast.Slice{Lower: num("1"), Upper: num("2"), Step: num("3")}),
			"x[1:2:3]\n",
		},
		{"full slice", sub(name("x"), &ast.Slice{}), "x[:]\n"},
		{"step only", sub(name("x"), &ast.Slice{Step: num("2")}), "x[::2]\n"},
		{
			"extended slice",
			sub(name("d"), &ast.ExtSlice{Dims: []ast.Expr{
				&ast.Slice{Lower: name("a")},
				name("b"),
			}}),
			"d[a:, b]\n",
		},
		{
			"tuple index",
			sub(name("x"), &ast.Index{Value: &ast.Tuple{Elts: []ast.Expr{num("1"), num("2")}}}),
			"x[(1, 2)]\n",
		},
		{"attribute chain", &ast.Attribute{Value: &ast.Attribute{Value: name("x"), Attr: "y"}, Attr: "z"}, "x.y.z\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestYieldAndAwait(t *testing.T) {
	tests := []struct {
		name string
		node ast.Statement
		want string
	}{
		{"bare yield", expr(&ast.Yield{}), "yield\n"},
		{"yield value", expr(&ast.Yield{Value: name("x")}), "yield x\n"},
		{
			"yield in assignment",
			&ast.Assign{Targets: []ast.Expr{name("x")}, Value: &ast.Yield{Value: name("y")}},
			"x = yield y\n",
		},
		{
			"yield as call argument",
			expr(call(name("f"), &ast.Yield{})),
			"f((yield))\n",
		},
		{"yield from", expr(&ast.YieldFrom{Value: name("x")}), "yield from x\n"},
		{
			"yield from operand",
			expr(binop(num("1"), ast.Add, &ast.YieldFrom{Value: name("x")})),
			"1 + (yield from x)\n",
		},
		{
			"augmented assign of yield from",
			&ast.AugAssign{Target: name("x"), Op: ast.Add, Value: &ast.YieldFrom{Value: name("x")}},
			"x += yield from x\n",
		},
		{"await", expr(&ast.Await{Value: name("x")}), "await x\n"},
		{
			"await operand",
			expr(binop(num("1"), ast.Add, &ast.Await{Value: name("x")})),
			"1 + await x\n",
		},
		{
			"await base of power",
			expr(binop(&ast.Await{Value: name("x")}, ast.Pow, num("2"))),
			"(await x) ** 2\n",
		},
		{
			"await call result",
			expr(&ast.Await{Value: call(name("f"))}),
			"await f()\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(tt.node), tt.want)
		})
	}
}

func TestFunctionDefs(t *testing.T) {
	tests := []struct {
		name string
		node ast.Statement
		want string
	}{
		{
			"no arguments",
			&ast.FunctionDef{Name: "f", Args: &ast.Arguments{}, Body: suite(pass())},
			"\ndef f():\n    pass\n",
		},
		{
			"positional with default",
			&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args:     []*ast.Arg{{Name: "a"}, {Name: "b"}},
					Defaults: []ast.Expr{num("1")},
				},
				Body: suite(pass()),
			},
			"\ndef f(a, b=1):\n    pass\n",
		},
		{
			"star args",
			&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args:   []*ast.Arg{{Name: "a"}},
					VarArg: &ast.Arg{Name: "args"},
					KwArg:  &ast.Arg{Name: "kwargs"},
				},
				Body: suite(pass()),
			},
			"\ndef f(a, *args, **kwargs):\n    pass\n",
		},
		{
			"keyword only",
			&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args:       []*ast.Arg{{Name: "a"}},
					KwOnlyArgs: []*ast.Arg{{Name: "b"}},
					KwDefaults: []ast.Expr{num("3")},
				},
				Body: suite(pass()),
			},
			"\ndef f(a, *, b=3):\n    pass\n",
		},
		{
			"keyword only after varargs",
			&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args:       []*ast.Arg{{Name: "a"}},
					VarArg:     &ast.Arg{Name: "args"},
					KwOnlyArgs: []*ast.Arg{{Name: "b"}},
					KwDefaults: []ast.Expr{num("3")},
					KwArg:      &ast.Arg{Name: "kwargs"},
				},
				Body: suite(pass()),
			},
			"\ndef f(a, *args, b=3, **kwargs):\n    pass\n",
		},
		{
			"annotations",
			&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args: []*ast.Arg{
						{Name: "a", Annotation: name("int")},
						{Name: "b", Annotation: name("str")},
					},
				},
				Returns: name("float"),
				Body:    suite(pass()),
			},
			"\ndef f(a: int, b: str) -> float:\n    pass\n",
		},
		{
			"annotated default",
			&ast.FunctionDef{
				Name: "f",
				Args: &ast.Arguments{
					Args:     []*ast.Arg{{Name: "a", Annotation: name("int")}},
					Defaults: []ast.Expr{num("3")},
				},
				Body: suite(pass()),
			},
			"\ndef f(a: int = 3):\n    pass\n",
		},
		{
			"decorated",
			&ast.FunctionDef{
				Name:       "f",
				Args:       &ast.Arguments{},
				Decorators: []ast.Expr{name("wraps"), call(name("cached"), num("1"))},
				Body:       suite(pass()),
			},
			"\n@wraps\n@cached(1)\ndef f():\n    pass\n",
		},
		{
			"async",
			&ast.AsyncFunctionDef{
				Name: "f",
				Args: &ast.Arguments{Args: []*ast.Arg{{Name: "a"}, {Name: "b"}}},
				Body: suite(pass()),
			},
			"\nasync def f(a, b):\n    pass\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(tt.node), tt.want)
		})
	}
}

func TestClassDefs(t *testing.T) {
	tests := []struct {
		name string
		node ast.Statement
		want string
	}{
		{
			"plain",
			&ast.ClassDef{Name: "Foo", Body: suite(pass())},
			"\n\nclass Foo():\n    pass\n",
		},
		{
			"base class",
			&ast.ClassDef{Name: "Foo", Bases: []ast.Expr{name("object")}, Body: suite(pass())},
			"\n\nclass Foo(object):\n    pass\n",
		},
		{
			"metaclass keyword",
			&ast.ClassDef{
				Name:     "WithMeta",
				Keywords: []*ast.Keyword{{Arg: "metaclass", Value: name("type")}},
				Body:     suite(pass()),
			},
			"\n\nclass WithMeta(metaclass=type):\n    pass\n",
		},
		{
			"bases and keywords",
			&ast.ClassDef{
				Name:     "Foo",
				Bases:    []ast.Expr{name("Base")},
				Keywords: []*ast.Keyword{{Arg: "a", Value: num("3")}},
				Body:     suite(pass()),
			},
			"\n\nclass Foo(Base, a=3):\n    pass\n",
		},
		{
			"decorated",
			&ast.ClassDef{
				Name:       "Foo",
				Decorators: []ast.Expr{name("register")},
				Body:       suite(pass()),
			},
			"\n\n@register\nclass Foo():\n    pass\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(tt.node), tt.want)
		})
	}
}

func TestCompoundStatements(t *testing.T) {
	tests := []struct {
		name string
		node ast.Statement
		want string
	}{
		{
			"for",
			&ast.For{Target: name("x"), Iter: name("y"), Body: suite(pass())},
			"for x in y:\n    pass\n",
		},
		{
			"for else",
			&ast.For{
				Target: name("x"), Iter: name("y"),
				Body: suite(pass()), OrElse: suite(&ast.Break{}),
			},
			"for x in y:\n    pass\nelse:\n    break\n",
		},
		{
			"for over tuple",
			&ast.For{
				Target: &ast.Tuple{Elts: []ast.Expr{name("a"), name("b")}},
				Iter:   name("pairs"),
				Body:   suite(pass()),
			},
			"for (a, b) in pairs:\n    pass\n",
		},
		{
			"async for",
			&ast.AsyncFor{Target: name("x"), Iter: name("y"), Body: suite(pass())},
			"async for x in y:\n    pass\n",
		},
		{
			"while",
			&ast.While{Test: name("x"), Body: suite(pass())},
			"while x:\n    pass\n",
		},
		{
			"while else",
			&ast.While{Test: name("x"), Body: suite(pass()), OrElse: suite(pass())},
			"while x:\n    pass\nelse:\n    pass\n",
		},
		{
			"if",
			&ast.If{Test: name("x"), Body: suite(pass())},
			"if x:\n    pass\n",
		},
		{
			"if else",
			&ast.If{Test: name("x"), Body: suite(pass()), OrElse: suite(pass())},
			"if x:\n    pass\nelse:\n    pass\n",
		},
		{
			"with",
			&ast.With{ContextExpr: name("x"), OptionalVars: name("y"), Body: suite(pass())},
			"with x as y:\n    pass\n",
		},
		{
			"async with",
			&ast.AsyncWith{ContextExpr: name("a"), OptionalVars: name("b"), Body: suite(pass())},
			"async with a as b:\n    pass\n",
		},
		{
			"try except",
			&ast.TryExcept{
				Body: suite(pass()),
				Handlers: []*ast.ExceptHandler{
					{Type: name("Exception"), Name: name("e"), Body: suite(pass())},
				},
			},
			"try:\n    pass\nexcept Exception as e:\n    pass\n",
		},
		{
			"bare except",
			&ast.TryExcept{
				Body:     suite(pass()),
				Handlers: []*ast.ExceptHandler{{Body: suite(pass())}},
			},
			"try:\n    pass\nexcept:\n    pass\n",
		},
		{
			"try finally",
			&ast.TryFinally{Body: suite(pass()), FinalBody: suite(pass())},
			"try:\n    pass\nfinally:\n    pass\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(tt.node), tt.want)
		})
	}
}

func TestElifCollapse(t *testing.T) {
	nested := &ast.If{
		Test: name("x"),
		Body: suite(pass()),
		OrElse: suite(&ast.If{
			Test:   name("y"),
			Body:   suite(pass()),
			OrElse: suite(pass()),
		}),
	}
	assertRenders(t, mod(nested),
		"if x:\n    pass\nelif y:\n    pass\nelse:\n    pass\n")

	deep := &ast.If{
		Test: name("x"),
		Body: suite(pass()),
		OrElse: suite(&ast.If{
			Test: name("y"),
			Body: suite(pass()),
			OrElse: suite(&ast.If{
				Test:   name("z"),
				Body:   suite(pass()),
				OrElse: suite(pass()),
			}),
		}),
	}
	assertRenders(t, mod(deep),
		"if x:\n    pass\nelif y:\n    pass\nelif z:\n    pass\nelse:\n    pass\n")
}

func TestElseBlockNotCollapsed(t *testing.T) {
	// Two statements in the else branch keep the else block.
	node := &ast.If{
		Test:   name("x"),
		Body:   suite(pass()),
		OrElse: suite(&ast.If{Test: name("y"), Body: suite(pass())}, pass()),
	}
	assertRenders(t, mod(node),
		"if x:\n    pass\nelse:\n    if y:\n        pass\n    pass\n")
}

func TestWithChainCollapse(t *testing.T) {
	nested := &ast.With{
		ContextExpr:  name("x"),
		OptionalVars: name("y"),
		Body: suite(&ast.With{
			ContextExpr:  name("a"),
			OptionalVars: name("b"),
			Body:         suite(pass()),
		}),
	}
	assertRenders(t, mod(nested), "with x as y, a as b:\n    pass\n")

	// A with statement followed by another statement is a real block.
	sequential := &ast.With{
		ContextExpr: name("x"),
		Body: suite(
			&ast.With{ContextExpr: name("a"), Body: suite(pass())},
			pass(),
		),
	}
	assertRenders(t, mod(sequential),
		"with x:\n    with a:\n        pass\n    pass\n")
}

func TestTryFinallyCollapse(t *testing.T) {
	node := &ast.TryFinally{
		Body: suite(&ast.TryExcept{
			Body: suite(expr(binop(num("1"), ast.Div, num("0")))),
			Handlers: []*ast.ExceptHandler{
				{Type: name("Exception"), Name: name("e"), Body: suite(pass())},
			},
			OrElse: suite(&ast.Print{Values: []ast.Expr{num("3")}, NL: true}),
		}),
		FinalBody: suite(&ast.Print{Values: []ast.Expr{num("4")}, NL: true}),
	}
	assertRenders(t, mod(node), `try:
    1 / 0
except Exception as e:
    pass
else:
    print 3
finally:
    print 4
`)
}

func TestUnknownFStringPart(t *testing.T) {
	node := mod(expr(&ast.JoinedStr{Values: []ast.Expr{name("x")}}))
	_, err := Unparse(node)
	require.Error(t, err)
}

// Repeated calls on one Unparser must render identical output, including
// when the speculative inline attempt overflows and rolls back.
func TestRepeatedRendersAreIdentical(t *testing.T) {
	u := &Unparser{LineLength: 10}
	trees := []struct {
		name string
		node ast.Node
	}{
		{"inline", mod(expr(name("x")))},
		{"overflow", mod(expr(call(name("f"), name("alpha"), name("beta"), name("gamma"))))},
	}
	for _, tt := range trees {
		t.Run(tt.name, func(t *testing.T) {
			first, err := u.Unparse(tt.node)
			require.NoError(t, err)
			second, err := u.Unparse(tt.node)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
	out, err := u.Unparse(trees[1].node)
	require.NoError(t, err)
	require.Contains(t, out, "f(\n")
}
