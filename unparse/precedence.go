package unparse

import "github.com/rubiojr/pyunparse/ast"

// Operator precedence, higher binds tighter. Values follow the Python
// grammar; atoms that never need grouping report precNone.
const (
	precNone    = -1 // non-operator nodes and the call-argument context
	precOr      = 0
	precAnd     = 1
	precNot     = 2
	precCompare = 3
	precBitOr   = 4
	precBitXor  = 5
	precBitAnd  = 6
	precShift   = 7
	precArith   = 8
	precTerm    = 9
	precUnary   = 10
	precPow     = 11
	precAtom    = 12 // call, attribute access, subscript
)

var binOpPrecedence = [...]int{
	ast.Add:      precArith,
	ast.Sub:      precArith,
	ast.Mult:     precTerm,
	ast.MatMult:  precTerm,
	ast.Div:      precTerm,
	ast.Mod:      precTerm,
	ast.Pow:      precPow,
	ast.LShift:   precShift,
	ast.RShift:   precShift,
	ast.BitOr:    precBitOr,
	ast.BitXor:   precBitXor,
	ast.BitAnd:   precBitAnd,
	ast.FloorDiv: precTerm,
}

// precedenceOf returns the binding strength of a node when it appears as
// the parent of a sub-expression. For operator nodes this is the operator's
// precedence; everything else (including the CallArgs marker) binds loosest.
func precedenceOf(n ast.Node) int {
	switch v := n.(type) {
	case *ast.BinOp:
		return binOpPrecedence[v.Op]
	case *ast.BoolOp:
		if v.Op == ast.And {
			return precAnd
		}
		return precOr
	case *ast.UnaryOp:
		if v.Op == ast.Not {
			return precNot
		}
		return precUnary
	case *ast.Compare:
		return precCompare
	case *ast.Await:
		return precUnary
	case *ast.Call, *ast.Attribute, *ast.Subscript:
		return precAtom
	default:
		return precNone
	}
}
