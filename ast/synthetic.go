package ast

// Synthetic expression variants. These never come out of the parser; the
// unparser wraps heterogeneous list entries in them so dictionary entries,
// call arguments and parameter lists all flow through the same delimited-list
// rendering path. Making them real Expr variants keeps the exhaustive
// dispatch and the ancestry-stack precedence logic covering them uniformly.

// KeyValuePair is a key: value entry in a dictionary display.
type KeyValuePair struct {
	Key   Expr
	Value Expr
}

func (k *KeyValuePair) node() {}
func (k *KeyValuePair) expr() {}

// StarArg is a *arg entry in a call or parameter list.
type StarArg struct {
	Arg Expr
}

func (s *StarArg) node() {}
func (s *StarArg) expr() {}

// DoubleStarArg is a **arg entry in a call or parameter list.
type DoubleStarArg struct {
	Arg Expr
}

func (d *DoubleStarArg) node() {}
func (d *DoubleStarArg) expr() {}

// KeywordArg is a name=value defaulted parameter in a function definition.
type KeywordArg struct {
	Arg   Expr
	Value Expr
}

func (k *KeywordArg) node() {}
func (k *KeywordArg) expr() {}

// CallArgs marks the boundary between a call and its argument list on the
// ancestry stack. The callee binds tightest, but the arguments sit in an
// unambiguous delimited context, so they must see the lowest possible parent
// precedence instead of the call's.
type CallArgs struct{}

func (c *CallArgs) node() {}
func (c *CallArgs) expr() {}
