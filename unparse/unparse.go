// Package unparse reconstructs Python source text from an AST.
//
// It is the inverse of parsing: given a tree of ast nodes, it emits source
// such that re-parsing yields a structurally equivalent tree. Original
// formatting and comments are not preserved; only the structure round-trips.
package unparse

import (
	"fmt"
	"strings"

	"github.com/rubiojr/pyunparse/ast"
)

// Defaults for the output configuration.
const (
	DefaultIndentation = 4
	DefaultLineLength  = 100
)

// Unparser converts ASTs back to Python source text.
//
// Indentation is the indentation width in columns. LineLength is a soft
// maximum: delimited lists that would run past it are broken over multiple
// lines, but constructs with no legal break point may still exceed it.
// Zero values mean the defaults. An Unparser is safe for repeated
// sequential use; concurrent calls need one Unparser per goroutine.
type Unparser struct {
	Indentation int
	LineLength  int
}

// New returns an Unparser with default configuration.
func New() *Unparser {
	return &Unparser{Indentation: DefaultIndentation, LineLength: DefaultLineLength}
}

// Unparse renders the tree rooted at node. The tree is never mutated.
// Rendering the same tree with the same configuration is byte-identical.
func (u *Unparser) Unparse(node ast.Node) (string, error) {
	e := &emitter{indentation: u.Indentation, lineLength: u.LineLength}
	if e.indentation <= 0 {
		e.indentation = DefaultIndentation
	}
	if e.lineLength <= 0 {
		e.lineLength = DefaultLineLength
	}
	if err := e.visit(node); err != nil {
		return "", err
	}
	return e.w.String(), nil
}

// Unparse renders node with the default configuration.
func Unparse(node ast.Node) (string, error) {
	return New().Unparse(node)
}

// emitter holds the mutable state of one unparse traversal: the output
// buffer, the ancestry stack, and the forward-only literal compatibility
// flag. A fresh emitter is built per Unparse call.
type emitter struct {
	w           writer
	indentation int
	lineLength  int
	nodeStack   []ast.Node
	// Set once a `from __future__ import unicode_literals` directive is
	// seen; native text literals emitted after that point carry a b prefix.
	// Literals emitted before the directive are unaffected, matching the
	// single-pass, source-order-sensitive semantics of the construct.
	hasUnicodeLiterals bool
}

// visit renders a node with the ancestry stack maintained around it, so
// emission rules can ask for their immediate parent.
func (e *emitter) visit(n ast.Node) error {
	e.nodeStack = append(e.nodeStack, n)
	err := e.emit(n)
	e.nodeStack = e.nodeStack[:len(e.nodeStack)-1]
	return err
}

// parentNode returns the immediate ancestor of the node currently being
// emitted, or nil at the root.
func (e *emitter) parentNode() ast.Node {
	if len(e.nodeStack) < 2 {
		return nil
	}
	return e.nodeStack[len(e.nodeStack)-2]
}

func (e *emitter) emit(n ast.Node) error {
	switch v := n.(type) {
	// Roots
	case *ast.Module:
		return e.emitBody(v.Body)
	case *ast.Interactive:
		return e.emitBody(v.Body)
	case *ast.Expression:
		return e.visit(v.Body)

	// Statements
	case *ast.FunctionDef:
		return e.emitFunctionDef(v)
	case *ast.AsyncFunctionDef:
		return e.emitAsyncFunctionDef(v)
	case *ast.ClassDef:
		return e.emitClassDef(v)
	case *ast.For:
		return e.emitFor(v)
	case *ast.AsyncFor:
		return e.emitAsyncFor(v)
	case *ast.While:
		return e.emitWhile(v)
	case *ast.If:
		return e.emitIf(v)
	case *ast.With:
		return e.emitWith(v)
	case *ast.AsyncWith:
		return e.emitAsyncWith(v)
	case *ast.TryExcept:
		return e.emitTryExcept(v)
	case *ast.TryFinally:
		return e.emitTryFinally(v)
	case *ast.ExceptHandler:
		return e.emitExceptHandler(v)
	case *ast.Return:
		return e.emitReturn(v)
	case *ast.Delete:
		return e.emitDelete(v)
	case *ast.Assign:
		return e.emitAssign(v)
	case *ast.AugAssign:
		return e.emitAugAssign(v)
	case *ast.AnnAssign:
		return e.emitAnnAssign(v)
	case *ast.Print:
		return e.emitPrint(v)
	case *ast.Raise:
		return e.emitRaise(v)
	case *ast.Assert:
		return e.emitAssert(v)
	case *ast.Import:
		return e.emitImport(v)
	case *ast.ImportFrom:
		return e.emitImportFrom(v)
	case *ast.Exec:
		return e.emitExec(v)
	case *ast.Global:
		return e.emitNameList("global ", v.Names)
	case *ast.Nonlocal:
		return e.emitNameList("nonlocal ", v.Names)
	case *ast.ExprStmt:
		return e.emitExprStmt(v)
	case *ast.Pass:
		return e.emitSimple("pass")
	case *ast.Break:
		return e.emitSimple("break")
	case *ast.Continue:
		return e.emitSimple("continue")

	// Expressions
	case *ast.BoolOp:
		return e.emitBoolOp(v)
	case *ast.BinOp:
		return e.emitBinOp(v)
	case *ast.UnaryOp:
		return e.emitUnaryOp(v)
	case *ast.Lambda:
		return e.emitLambda(v)
	case *ast.IfExp:
		return e.emitIfExp(v)
	case *ast.Dict:
		return e.emitDict(v)
	case *ast.Set:
		return e.emitSet(v)
	case *ast.ListComp:
		return e.emitComp(v.Elt, v.Generators, "[", "]")
	case *ast.SetComp:
		return e.emitComp(v.Elt, v.Generators, "{", "}")
	case *ast.DictComp:
		return e.emitDictComp(v)
	case *ast.GeneratorExp:
		return e.emitComp(v.Elt, v.Generators, "(", ")")
	case *ast.Comprehension:
		return e.emitComprehension(v)
	case *ast.Await:
		return e.emitAwait(v)
	case *ast.Yield:
		return e.emitYield(v)
	case *ast.YieldFrom:
		return e.emitYieldFrom(v)
	case *ast.Compare:
		return e.emitCompare(v)
	case *ast.Call:
		return e.emitCall(v)
	case *ast.Keyword:
		return e.emitKeyword(v)
	case *ast.Repr:
		return e.emitRepr(v)
	case *ast.Num:
		e.w.write(v.Value)
		return nil
	case *ast.Str:
		return e.emitStr(v)
	case *ast.Bytes:
		e.w.write("b" + bytesRepr(v.Value))
		return nil
	case *ast.JoinedStr:
		return e.emitJoinedStr(v)
	case *ast.FormattedValue:
		return e.emitFormattedValue(v)
	case *ast.NameConstant:
		e.w.write(v.Value)
		return nil
	case *ast.EllipsisLit:
		e.w.write("Ellipsis")
		return nil
	case *ast.Attribute:
		return e.emitAttribute(v)
	case *ast.Subscript:
		return e.emitSubscript(v)
	case *ast.Starred:
		e.w.write("*")
		return e.visit(v.Value)
	case *ast.Name:
		e.w.write(v.ID)
		return nil
	case *ast.List:
		return e.emitList(v)
	case *ast.Tuple:
		return e.emitTuple(v)
	case *ast.Slice:
		return e.emitSlice(v)
	case *ast.ExtSlice:
		return e.emitExtSlice(v)
	case *ast.Index:
		return e.visit(v.Value)
	case *ast.Arguments:
		return e.emitArguments(v)
	case *ast.Arg:
		return e.emitArg(v)
	case *ast.Alias:
		return e.emitAlias(v)

	// Synthetic wrappers
	case *ast.KeyValuePair:
		return e.emitKeyValuePair(v)
	case *ast.StarArg:
		return e.emitStarArg(v)
	case *ast.DoubleStarArg:
		e.w.write("**")
		return e.visit(v.Arg)
	case *ast.KeywordArg:
		return e.emitKeywordArg(v)
	case *ast.CallArgs:
		return nil

	default:
		return fmt.Errorf("unknown node type: %T", n)
	}
}

func (e *emitter) emitBody(body []ast.Statement) error {
	for _, s := range body {
		if err := e.visit(s); err != nil {
			return err
		}
	}
	return nil
}

// writeSuite emits an indented statement block.
func (e *emitter) writeSuite(body []ast.Statement) error {
	return e.withIndentation(func() error {
		return e.emitBody(body)
	})
}

// withIndentation runs fn one indentation level deeper, restoring the
// previous depth afterwards even on error.
func (e *emitter) withIndentation(fn func() error) error {
	e.w.indent += e.indentation
	err := fn()
	e.w.indent -= e.indentation
	return err
}

// parenthesizeIf surrounds fn's output with parentheses when cond holds.
func (e *emitter) parenthesizeIf(cond bool, fn func() error) error {
	if cond {
		e.w.write("(")
	}
	if err := fn(); err != nil {
		return err
	}
	if cond {
		e.w.write(")")
	}
	return nil
}

// listOptions controls one delimited-list rendering.
type listOptions struct {
	separator      string
	allowNewlines  bool // permit the multi-line fallback layout
	needParens     bool // surround the multi-line layout with parentheses
	finalSeparator bool // trailing separator on the last multi-line element
}

func defaultListOptions() listOptions {
	return listOptions{
		separator:      ", ",
		allowNewlines:  true,
		needParens:     true,
		finalSeparator: true,
	}
}

// writeExpressionList renders nodes joined by the separator, attempting a
// single-line layout first and falling back to one element per line at the
// next indentation level when the soft line length is exceeded. The inline
// attempt aborts as soon as the open line runs past the limit; everything
// it wrote is then rolled back, so no partial output survives.
func (e *emitter) writeExpressionList(nodes []ast.Expr, opts listOptions) error {
	mark := e.w.checkpoint()
	fits := true
	for i, n := range nodes {
		if i > 0 {
			e.w.write(opts.separator)
		}
		if err := e.visit(n); err != nil {
			return err
		}
		if opts.allowNewlines && e.w.currentLineLength() > e.lineLength {
			fits = false
			break
		}
	}
	if fits {
		return nil
	}

	e.w.rollback(mark)
	separator := strings.TrimRight(opts.separator, " ")
	if opts.needParens {
		e.w.write("(")
	}
	e.w.newline()
	err := e.withIndentation(func() error {
		for i, n := range nodes {
			e.w.writeIndentation()
			if err := e.visit(n); err != nil {
				return err
			}
			if opts.finalSeparator || i < len(nodes)-1 {
				e.w.write(separator)
			}
			e.w.newline()
		}
		return nil
	})
	if err != nil {
		return err
	}
	e.w.writeIndentation()
	if opts.needParens {
		e.w.write(")")
	}
	return nil
}
