package ast

// BinOpKind identifies a binary (or augmented-assignment) operator.
type BinOpKind int

const (
	Add BinOpKind = iota
	Sub
	Mult
	MatMult
	Div
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	FloorDiv
)

var binOpStrings = [...]string{
	Add:      "+",
	Sub:      "-",
	Mult:     "*",
	MatMult:  "@",
	Div:      "/",
	Mod:      "%",
	Pow:      "**",
	LShift:   "<<",
	RShift:   ">>",
	BitOr:    "|",
	BitXor:   "^",
	BitAnd:   "&",
	FloorDiv: "//",
}

func (k BinOpKind) String() string { return binOpStrings[k] }

// UnaryOpKind identifies a unary operator.
type UnaryOpKind int

const (
	Invert UnaryOpKind = iota
	Not
	UAdd
	USub
)

// Not carries its own trailing space so operators concatenate directly
// with their operand.
var unaryOpStrings = [...]string{
	Invert: "~",
	Not:    "not ",
	UAdd:   "+",
	USub:   "-",
}

func (k UnaryOpKind) String() string { return unaryOpStrings[k] }

// BoolOpKind identifies a boolean chain operator.
type BoolOpKind int

const (
	And BoolOpKind = iota
	Or
)

func (k BoolOpKind) String() string {
	if k == And {
		return "and"
	}
	return "or"
}

// CmpOpKind identifies a comparison operator.
type CmpOpKind int

const (
	Eq CmpOpKind = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

var cmpOpStrings = [...]string{
	Eq:    "==",
	NotEq: "!=",
	Lt:    "<",
	LtE:   "<=",
	Gt:    ">",
	GtE:   ">=",
	Is:    "is",
	IsNot: "is not",
	In:    "in",
	NotIn: "not in",
}

func (k CmpOpKind) String() string { return cmpOpStrings[k] }
