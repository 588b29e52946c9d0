package unparse

import (
	"testing"

	"github.com/rubiojr/pyunparse/ast"
)

func TestStringRepr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "foo", "'foo'"},
		{"empty", "", "''"},
		{"single quote switches delimiter", "it's", `"it's"`},
		{"both quotes escape", `'"`, `'\'"'`},
		{"newline", "a\nb", `'a\nb'`},
		{"carriage return", "a\rb", `'a\rb'`},
		{"tab", "a\tb", `'a\tb'`},
		{"backslash", `a\b`, `'a\\b'`},
		{"control character", "\x01", `'\x01'`},
		{"delete character", "\x7f", `'\x7f'`},
		{"printable non-ascii kept", "café", "'café'"},
		{"latin-1 non-printable", "­", `'\xad'`},
		{"line separator", " ", `'\u2028'`},
		{"printable emoji kept", "\U0001f600", "'\U0001f600'"},
		{"astral non-printable", "\U000e0001", `'\U000e0001'`},
		{"stray byte", "\xe9", `'\xe9'`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pyRepr(tt.in); got != tt.want {
				t.Errorf("pyRepr(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestBytesRepr(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "abc", "'abc'"},
		{"high byte", "\xe9", `'\xe9'`},
		{"utf8 sequence stays bytewise", "\xe2\x80\xa8", `'\xe2\x80\xa8'`},
		{"quote switches delimiter", "it's", `"it's"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bytesRepr(tt.in); got != tt.want {
				t.Errorf("bytesRepr(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestLiterals(t *testing.T) {
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"string", str("foo"), "'foo'\n"},
		{"bytes", &ast.Bytes{Value: "abc"}, "b'abc'\n"},
		{"bytes with high bytes", &ast.Bytes{Value: "\xe2\x80\xa8"}, "b'\\xe2\\x80\\xa8'\n"},
		{"integer", num("42"), "42\n"},
		{"float", num("3.5"), "3.5\n"},
		{"complex", num("1j"), "1j\n"},
		{"hex", num("0x1f"), "0x1f\n"},
		{"true", &ast.NameConstant{Value: "True"}, "True\n"},
		{"none", &ast.NameConstant{Value: "None"}, "None\n"},
		{"ellipsis", &ast.EllipsisLit{}, "Ellipsis\n"},
		{"backtick repr", &ast.Repr{Value: name("x")}, "`x`\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

func TestFStrings(t *testing.T) {
	slot := func(v ast.Expr) *ast.FormattedValue { return &ast.FormattedValue{Value: v} }
	tests := []struct {
		name string
		node ast.Expr
		want string
	}{
		{"literal only", &ast.JoinedStr{Values: []ast.Expr{str("a")}}, "f'a'\n"},
		{
			"interpolation",
			&ast.JoinedStr{Values: []ast.Expr{str("x = "), slot(name("x"))}},
			"f'x = {x}'\n",
		},
		{
			"conversion",
			&ast.JoinedStr{Values: []ast.Expr{
				&ast.FormattedValue{Value: name("x"), Conversion: 'r'},
			}},
			"f'{x!r}'\n",
		},
		{
			"format spec",
			&ast.JoinedStr{Values: []ast.Expr{
				&ast.FormattedValue{
					Value:      name("x"),
					FormatSpec: &ast.JoinedStr{Values: []ast.Expr{str(".2f")}},
				},
			}},
			"f'{x:.2f}'\n",
		},
		{
			"braces are doubled",
			&ast.JoinedStr{Values: []ast.Expr{str("{}")}},
			"f'{{}}'\n",
		},
		{
			"quote in literal part",
			&ast.JoinedStr{Values: []ast.Expr{str("don't")}},
			`f'don\'t'` + "\n",
		},
		{
			"standalone formatted value",
			slot(name("x")),
			"f'{x}'\n",
		},
		{
			"expression slot",
			&ast.JoinedStr{Values: []ast.Expr{slot(binop(name("a"), ast.Add, name("b")))}},
			"f'{a + b}'\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRenders(t, mod(expr(tt.node)), tt.want)
		})
	}
}

// The unicode_literals future import changes how later, and only later,
// text literals render.
func TestUnicodeLiteralsDirective(t *testing.T) {
	future := &ast.ImportFrom{
		Module: "__future__",
		Names:  []*ast.Alias{{Name: "unicode_literals"}},
	}
	node := mod(
		expr(str("before")),
		future,
		expr(str("after")),
	)
	assertRenders(t, node,
		"'before'\nfrom __future__ import unicode_literals\nb'after'\n")
}

func TestUnicodeLiteralsDoesNotAffectOtherFutures(t *testing.T) {
	future := &ast.ImportFrom{
		Module: "__future__",
		Names:  []*ast.Alias{{Name: "print_function"}},
	}
	node := mod(future, expr(str("x")))
	assertRenders(t, node, "from __future__ import print_function\n'x'\n")
}
