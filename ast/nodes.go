package ast

// Node is the interface for all AST nodes.
type Node interface {
	node()
}

// Statement is the interface for statement nodes.
type Statement interface {
	Node
	stmt()
}

// Expr is the interface for expression nodes.
type Expr interface {
	Node
	expr()
}

// Module is the root node: a sequence of top-level statements.
type Module struct {
	Body []Statement
}

func (m *Module) node() {}

// Interactive is the root node produced for REPL input.
type Interactive struct {
	Body []Statement
}

func (i *Interactive) node() {}

// Expression is the root node produced for eval-mode input.
type Expression struct {
	Body Expr
}

func (e *Expression) node() {}

// --- Multi-line statements ---

// FunctionDef represents def name(args) [-> returns]: body.
type FunctionDef struct {
	Name       string
	Args       *Arguments
	Body       []Statement
	Decorators []Expr
	Returns    Expr // optional return annotation
}

func (f *FunctionDef) node() {}
func (f *FunctionDef) stmt() {}

// AsyncFunctionDef represents async def name(args): body.
type AsyncFunctionDef struct {
	Name       string
	Args       *Arguments
	Body       []Statement
	Decorators []Expr
	Returns    Expr
}

func (f *AsyncFunctionDef) node() {}
func (f *AsyncFunctionDef) stmt() {}

// ClassDef represents class name(bases, keywords): body.
type ClassDef struct {
	Name       string
	Bases      []Expr
	Keywords   []*Keyword // class keywords, e.g. metaclass=type
	Body       []Statement
	Decorators []Expr
}

func (c *ClassDef) node() {}
func (c *ClassDef) stmt() {}

// For represents for target in iter: body [else: orelse].
type For struct {
	Target Expr
	Iter   Expr
	Body   []Statement
	OrElse []Statement
}

func (f *For) node() {}
func (f *For) stmt() {}

// AsyncFor represents async for target in iter: body [else: orelse].
type AsyncFor struct {
	Target Expr
	Iter   Expr
	Body   []Statement
	OrElse []Statement
}

func (f *AsyncFor) node() {}
func (f *AsyncFor) stmt() {}

// While represents while test: body [else: orelse].
type While struct {
	Test   Expr
	Body   []Statement
	OrElse []Statement
}

func (w *While) node() {}
func (w *While) stmt() {}

// If represents if test: body [elif/else via OrElse].
// An OrElse holding exactly one nested If renders as an elif chain.
type If struct {
	Test   Expr
	Body   []Statement
	OrElse []Statement
}

func (i *If) node() {}
func (i *If) stmt() {}

// With represents with context [as vars]: body.
// Nested single-statement With bodies render as one comma-joined header.
type With struct {
	ContextExpr  Expr
	OptionalVars Expr // nil when there is no `as` clause
	Body         []Statement
}

func (w *With) node() {}
func (w *With) stmt() {}

// AsyncWith represents async with context [as vars]: body.
type AsyncWith struct {
	ContextExpr  Expr
	OptionalVars Expr
	Body         []Statement
}

func (w *AsyncWith) node() {}
func (w *AsyncWith) stmt() {}

// TryExcept represents try: body except...: [else: orelse].
type TryExcept struct {
	Body     []Statement
	Handlers []*ExceptHandler
	OrElse   []Statement
}

func (t *TryExcept) node() {}
func (t *TryExcept) stmt() {}

// TryFinally represents try: body finally: finalbody.
// A body holding exactly one TryExcept renders as a single try construct
// with the finally clause attached after the handlers.
type TryFinally struct {
	Body      []Statement
	FinalBody []Statement
}

func (t *TryFinally) node() {}
func (t *TryFinally) stmt() {}

// ExceptHandler is one except [type [as name]]: body clause.
type ExceptHandler struct {
	Type Expr // nil for a bare except
	Name Expr // nil when no `as` binding
	Body []Statement
}

func (e *ExceptHandler) node() {}

// --- One-line statements ---

// Return represents return [value].
type Return struct {
	Value Expr // nil for a bare return
}

func (r *Return) node() {}
func (r *Return) stmt() {}

// Delete represents del targets.
type Delete struct {
	Targets []Expr
}

func (d *Delete) node() {}
func (d *Delete) stmt() {}

// Assign represents targets = value (chained for multiple targets).
type Assign struct {
	Targets []Expr
	Value   Expr
}

func (a *Assign) node() {}
func (a *Assign) stmt() {}

// AugAssign represents target op= value.
type AugAssign struct {
	Target Expr
	Op     BinOpKind
	Value  Expr
}

func (a *AugAssign) node() {}
func (a *AugAssign) stmt() {}

// AnnAssign represents target: annotation [= value].
type AnnAssign struct {
	Target     Expr
	Annotation Expr
	Value      Expr // nil when only declaring
	Simple     bool // false parenthesizes the target
}

func (a *AnnAssign) node() {}
func (a *AnnAssign) stmt() {}

// Print represents the legacy print statement: print [>>dest,] values[,].
type Print struct {
	Dest   Expr // nil unless print >>dest
	Values []Expr
	NL     bool // false appends a trailing comma, suppressing the newline
}

func (p *Print) node() {}
func (p *Print) stmt() {}

// Raise represents raise [exc [from cause]].
type Raise struct {
	Exc   Expr // nil for a bare raise
	Cause Expr // nil unless raise ... from ...
}

func (r *Raise) node() {}
func (r *Raise) stmt() {}

// Assert represents assert test [, msg].
type Assert struct {
	Test Expr
	Msg  Expr // nil when no message
}

func (a *Assert) node() {}
func (a *Assert) stmt() {}

// Import represents import names.
type Import struct {
	Names []*Alias
}

func (i *Import) node() {}
func (i *Import) stmt() {}

// ImportFrom represents from [.]*module import names.
type ImportFrom struct {
	Module string // empty for pure relative imports
	Names  []*Alias
	Level  int // number of leading dots
}

func (i *ImportFrom) node() {}
func (i *ImportFrom) stmt() {}

// Exec represents the legacy exec statement: exec body [in globals [, locals]].
type Exec struct {
	Body    Expr
	Globals Expr
	Locals  Expr
}

func (e *Exec) node() {}
func (e *Exec) stmt() {}

// Global represents global names.
type Global struct {
	Names []string
}

func (g *Global) node() {}
func (g *Global) stmt() {}

// Nonlocal represents nonlocal names.
type Nonlocal struct {
	Names []string
}

func (n *Nonlocal) node() {}
func (n *Nonlocal) stmt() {}

// ExprStmt is a statement that is just an expression.
type ExprStmt struct {
	Value Expr
}

func (e *ExprStmt) node() {}
func (e *ExprStmt) stmt() {}

// Pass represents pass.
type Pass struct{}

func (p *Pass) node() {}
func (p *Pass) stmt() {}

// Break represents break.
type Break struct{}

func (b *Break) node() {}
func (b *Break) stmt() {}

// Continue represents continue.
type Continue struct{}

func (c *Continue) node() {}
func (c *Continue) stmt() {}

// --- Expressions ---

// BoolOp represents values joined by and/or.
type BoolOp struct {
	Op     BoolOpKind
	Values []Expr
}

func (b *BoolOp) node() {}
func (b *BoolOp) expr() {}

// BinOp represents left op right.
type BinOp struct {
	Left  Expr
	Op    BinOpKind
	Right Expr
}

func (b *BinOp) node() {}
func (b *BinOp) expr() {}

// UnaryOp represents op operand.
type UnaryOp struct {
	Op      UnaryOpKind
	Operand Expr
}

func (u *UnaryOp) node() {}
func (u *UnaryOp) expr() {}

// Lambda represents lambda args: body.
type Lambda struct {
	Args *Arguments
	Body Expr
}

func (l *Lambda) node() {}
func (l *Lambda) expr() {}

// IfExp represents body if test else orelse.
type IfExp struct {
	Test   Expr
	Body   Expr
	OrElse Expr
}

func (i *IfExp) node() {}
func (i *IfExp) expr() {}

// Dict is {key: value, ...}. Keys and Values run in parallel.
type Dict struct {
	Keys   []Expr
	Values []Expr
}

func (d *Dict) node() {}
func (d *Dict) expr() {}

// Set is {elem, ...}.
type Set struct {
	Elts []Expr
}

func (s *Set) node() {}
func (s *Set) expr() {}

// ListComp is [elt for ...].
type ListComp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (l *ListComp) node() {}
func (l *ListComp) expr() {}

// SetComp is {elt for ...}.
type SetComp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (s *SetComp) node() {}
func (s *SetComp) expr() {}

// DictComp is {key: value for ...}.
type DictComp struct {
	Key        Expr
	Value      Expr
	Generators []*Comprehension
}

func (d *DictComp) node() {}
func (d *DictComp) expr() {}

// GeneratorExp is (elt for ...).
type GeneratorExp struct {
	Elt        Expr
	Generators []*Comprehension
}

func (g *GeneratorExp) node() {}
func (g *GeneratorExp) expr() {}

// Comprehension is one for target in iter [if cond]* clause.
type Comprehension struct {
	Target  Expr
	Iter    Expr
	Ifs     []Expr
	IsAsync bool
}

func (c *Comprehension) node() {}
func (c *Comprehension) expr() {}

// Await represents await value.
type Await struct {
	Value Expr
}

func (a *Await) node() {}
func (a *Await) expr() {}

// Yield represents yield [value].
type Yield struct {
	Value Expr // nil for a bare yield
}

func (y *Yield) node() {}
func (y *Yield) expr() {}

// YieldFrom represents yield from value.
type YieldFrom struct {
	Value Expr
}

func (y *YieldFrom) node() {}
func (y *YieldFrom) expr() {}

// Compare represents left op1 right1 op2 right2 ... chains.
// Ops and Comparators run in parallel.
type Compare struct {
	Left        Expr
	Ops         []CmpOpKind
	Comparators []Expr
}

func (c *Compare) node() {}
func (c *Compare) expr() {}

// Call represents func(args, keywords, *starargs, **kwargs).
type Call struct {
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
	StarArgs Expr // nil unless *args present
	KwArgs   Expr // nil unless **kwargs present
}

func (c *Call) node() {}
func (c *Call) expr() {}

// Keyword is a name=value keyword argument in a call or class header.
type Keyword struct {
	Arg   string
	Value Expr
}

func (k *Keyword) node() {}
func (k *Keyword) expr() {}

// Repr is the legacy backtick repr expression: `value`.
type Repr struct {
	Value Expr
}

func (r *Repr) node() {}
func (r *Repr) expr() {}

// Num is a numeric literal. Value holds the canonical literal text.
type Num struct {
	Value string
}

func (n *Num) node() {}
func (n *Num) expr() {}

// Str is a native text literal (with quotes stripped).
type Str struct {
	Value string
}

func (s *Str) node() {}
func (s *Str) expr() {}

// Bytes is a binary literal (with quotes stripped).
type Bytes struct {
	Value string
}

func (b *Bytes) node() {}
func (b *Bytes) expr() {}

// FormattedValue is one {expr[!conversion][:format]} slot of an f-string.
type FormattedValue struct {
	Value      Expr
	Conversion byte // 0, 'r', 's' or 'a'
	FormatSpec Expr // nil or a JoinedStr
}

func (f *FormattedValue) node() {}
func (f *FormattedValue) expr() {}

// JoinedStr is an f-string: a sequence of Str and FormattedValue parts.
type JoinedStr struct {
	Values []Expr
}

func (j *JoinedStr) node() {}
func (j *JoinedStr) expr() {}

// NameConstant is True, False or None.
type NameConstant struct {
	Value string
}

func (n *NameConstant) node() {}
func (n *NameConstant) expr() {}

// EllipsisLit represents the Ellipsis singleton.
type EllipsisLit struct{}

func (e *EllipsisLit) node() {}
func (e *EllipsisLit) expr() {}

// Attribute represents value.attr.
type Attribute struct {
	Value Expr
	Attr  string
}

func (a *Attribute) node() {}
func (a *Attribute) expr() {}

// Subscript represents value[slice].
type Subscript struct {
	Value Expr
	Slice Expr // Index, Slice or ExtSlice
}

func (s *Subscript) node() {}
func (s *Subscript) expr() {}

// Starred represents *value in assignment targets and displays.
type Starred struct {
	Value Expr
}

func (s *Starred) node() {}
func (s *Starred) expr() {}

// Name is an identifier reference.
type Name struct {
	ID string
}

func (n *Name) node() {}
func (n *Name) expr() {}

// List is [elem, ...].
type List struct {
	Elts []Expr
}

func (l *List) node() {}
func (l *List) expr() {}

// Tuple is a fixed grouping: (), (x,) or a, b, c.
type Tuple struct {
	Elts []Expr
}

func (t *Tuple) node() {}
func (t *Tuple) expr() {}

// --- Slice forms ---

// Slice represents lower:upper[:step] inside a subscript.
type Slice struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

func (s *Slice) node() {}
func (s *Slice) expr() {}

// ExtSlice represents dim, dim, ... inside a subscript.
type ExtSlice struct {
	Dims []Expr
}

func (e *ExtSlice) node() {}
func (e *ExtSlice) expr() {}

// Index wraps a plain expression inside a subscript.
type Index struct {
	Value Expr
}

func (i *Index) node() {}
func (i *Index) expr() {}

// --- Parameter lists ---

// Arguments is a function or lambda parameter list. Defaults align with the
// trailing entries of Args; KwDefaults runs in parallel with KwOnlyArgs
// (nil entries mean no default).
type Arguments struct {
	Args       []*Arg
	Defaults   []Expr
	VarArg     *Arg // nil unless *args (Name may be empty for a bare *)
	KwOnlyArgs []*Arg
	KwDefaults []Expr
	KwArg      *Arg // nil unless **kwargs
}

func (a *Arguments) node() {}

// Arg is a single parameter, optionally annotated.
type Arg struct {
	Name       string
	Annotation Expr
}

func (a *Arg) node() {}
func (a *Arg) expr() {}

// Alias is an import name with an optional binding: name [as asname].
type Alias struct {
	Name   string
	AsName string
}

func (a *Alias) node() {}
func (a *Alias) expr() {}
