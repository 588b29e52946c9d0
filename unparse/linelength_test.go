package unparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rubiojr/pyunparse/ast"
)

func renderWith(t *testing.T, u *Unparser, node ast.Node) string {
	t.Helper()
	out, err := u.Unparse(node)
	require.NoError(t, err)
	return out
}

func TestIndentationWidth(t *testing.T) {
	node := mod(&ast.If{Test: name("x"), Body: suite(pass())})
	u := &Unparser{Indentation: 1}
	require.Equal(t, "if x:\n pass\n", renderWith(t, u, node))

	u = &Unparser{Indentation: 8}
	require.Equal(t, "if x:\n        pass\n", renderWith(t, u, node))
}

func TestZeroConfigUsesDefaults(t *testing.T) {
	node := mod(&ast.If{Test: name("x"), Body: suite(pass())})
	var u Unparser
	require.Equal(t, "if x:\n    pass\n", renderWith(t, &u, node))
}

// Statements with a keyword prefix break their list into a parenthesized
// block when the single-line form runs too long.
func TestPrefixedListBreaks(t *testing.T) {
	abc := []ast.Expr{name("a"), name("b"), name("c")}
	aliases := []*ast.Alias{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	tests := []struct {
		name    string
		node    ast.Statement
		oneLine string
		broken  string
	}{
		{
			"from import",
			&ast.ImportFrom{Module: "x", Names: aliases},
			"from x import a, b, c\n",
			"from x import (\n    a,\n    b,\n    c,\n)\n",
		},
		{
			"import",
			&ast.Import{Names: aliases},
			"import a, b, c\n",
			"import (\n    a,\n    b,\n    c,\n)\n",
		},
		{
			"del",
			&ast.Delete{Targets: abc},
			"del a, b, c\n",
			"del (\n    a,\n    b,\n    c,\n)\n",
		},
		{
			"global",
			&ast.Global{Names: []string{"a", "b", "c"}},
			"global a, b, c\n",
			"global (\n    a,\n    b,\n    c,\n)\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wide := &Unparser{LineLength: len(tt.oneLine)}
			require.Equal(t, tt.oneLine, renderWith(t, wide, mod(tt.node)))

			narrow := &Unparser{LineLength: len(tt.oneLine) - 3}
			require.Equal(t, tt.broken, renderWith(t, narrow, mod(tt.node)))
		})
	}
}

func TestBoolOpBreaksWithoutFinalSeparator(t *testing.T) {
	node := mod(&ast.If{
		Test: &ast.BoolOp{Op: ast.And, Values: []ast.Expr{name("a"), name("b"), name("c")}},
		Body: suite(pass()),
	})

	wide := &Unparser{LineLength: 20}
	require.Equal(t, "if a and b and c:\n    pass\n", renderWith(t, wide, node))

	narrow := &Unparser{LineLength: 8}
	require.Equal(t, `if (
    a and
    b and
    c
):
    pass
`, renderWith(t, narrow, node))
}

func TestDisplaysBreak(t *testing.T) {
	abc := []ast.Expr{name("a"), name("b"), name("c")}
	tests := []struct {
		name    string
		node    ast.Statement
		oneLine string
		broken  string
	}{
		{
			"set",
			expr(&ast.Set{Elts: abc}),
			"{a, b, c}\n",
			"{\n    a,\n    b,\n    c,\n}\n",
		},
		{
			"list",
			expr(&ast.List{Elts: abc}),
			"[a, b, c]\n",
			"[\n    a,\n    b,\n    c,\n]\n",
		},
		{
			"call",
			expr(call(name("f"), abc...)),
			"f(a, b, c)\n",
			// No trailing separator: it would be illegal after *args.
			"f(\n    a,\n    b,\n    c\n)\n",
		},
		{
			"class bases",
			&ast.ClassDef{Name: "Foo", Bases: abc, Body: suite(pass())},
			"\n\nclass Foo(a, b, c):\n    pass\n",
			"\n\nclass Foo(\n    a,\n    b,\n    c,\n):\n    pass\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wide := &Unparser{LineLength: 20}
			require.Equal(t, tt.oneLine, renderWith(t, wide, mod(tt.node)))

			narrow := &Unparser{LineLength: 7}
			require.Equal(t, tt.broken, renderWith(t, narrow, mod(tt.node)))
		})
	}
}

func TestAssignTargetBreaks(t *testing.T) {
	node := mod(&ast.Assign{
		Targets: []ast.Expr{&ast.Tuple{Elts: []ast.Expr{name("a"), name("b"), name("c")}}},
		Value:   name("lst"),
	})

	wide := &Unparser{LineLength: 13}
	require.Equal(t, "a, b, c = lst\n", renderWith(t, wide, node))

	narrow := &Unparser{LineLength: 6}
	require.Equal(t, "(\n    a,\n    b,\n    c,\n) = lst\n", renderWith(t, narrow, node))
}

func TestBareTupleBreaks(t *testing.T) {
	node := mod(expr(&ast.Tuple{Elts: []ast.Expr{name("a"), name("b"), name("c")}}))

	wide := &Unparser{LineLength: 8}
	require.Equal(t, "a, b, c\n", renderWith(t, wide, node))

	narrow := &Unparser{LineLength: 6}
	require.Equal(t, "(\n    a,\n    b,\n    c,\n)\n", renderWith(t, narrow, node))
}

func TestExtendedSliceBreaks(t *testing.T) {
	node := mod(expr(&ast.Subscript{
		Value: name("d"),
		Slice: &ast.ExtSlice{Dims: []ast.Expr{
			&ast.Slice{Lower: name("a")},
			name("b"),
			name("c"),
		}},
	}))

	wide := &Unparser{LineLength: 12}
	require.Equal(t, "d[a:, b, c]\n", renderWith(t, wide, node))

	narrow := &Unparser{LineLength: 6}
	require.Equal(t, "d[\n    a:,\n    b,\n    c,\n]\n", renderWith(t, narrow, node))
}

func TestComprehensionBreaks(t *testing.T) {
	node := mod(expr(&ast.ListComp{
		Elt: name("x"),
		Generators: []*ast.Comprehension{
			{Target: name("y"), Iter: name("lst")},
			{Target: name("x"), Iter: name("y")},
		},
	}))

	wide := &Unparser{LineLength: 28}
	require.Equal(t, "[x for y in lst for x in y]\n", renderWith(t, wide, node))

	narrow := &Unparser{LineLength: 25}
	require.Equal(t, `[
    x
    for y in lst
    for x in y
]
`, renderWith(t, narrow, node))
}

// Structures without a legal break point stay on one line no matter the
// limit.
func TestNoBreakWithoutBreakPoint(t *testing.T) {
	lambda := &ast.Lambda{
		Args: &ast.Arguments{Args: []*ast.Arg{{Name: "aaaa"}, {Name: "bbbb"}, {Name: "cccc"}}},
		Body: name("aaaa"),
	}
	narrow := &Unparser{LineLength: 5}
	require.Equal(t, "lambda aaaa, bbbb, cccc: aaaa\n", renderWith(t, narrow, mod(expr(lambda))))

	printStmt := &ast.Print{Values: []ast.Expr{name("aaaa"), name("bbbb")}, NL: true}
	require.Equal(t, "print aaaa, bbbb\n", renderWith(t, narrow, mod(printStmt)))
}

func TestNestedBreaks(t *testing.T) {
	// The inner call breaks; the outer list sees a short open line again
	// and stays inline around it.
	node := mod(expr(&ast.List{Elts: []ast.Expr{
		call(name("make"), name("alpha"), name("beta")),
	}}))
	narrow := &Unparser{LineLength: 10}
	require.Equal(t, `[make(
    alpha,
    beta
)]
`, renderWith(t, narrow, node))
}
