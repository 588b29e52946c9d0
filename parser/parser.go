// Package parser reads the text form of Python AST dumps, as printed by
// ast.dump(ast.parse(source)), into pyunparse ast nodes. It understands
// both the current Constant-based dumps and the older Num/Str/NameConstant
// node names, and both the py3 withitem/Try shapes and their legacy
// two-node forms.
package parser

import (
	"fmt"

	"github.com/rubiojr/pyunparse/ast"
	"github.com/rubiojr/pyunparse/scanner"
)

// Parser parses ast.dump output into a typed AST.
type Parser struct{}

// Parse reads one dump from src and returns the root node. The name
// parameter is used for error messages.
func (p *Parser) Parse(name string, src []byte) (ast.Node, error) {
	dp := &dumpParser{name: name, s: scanner.New(string(src))}
	if err := dp.advance(); err != nil {
		return nil, err
	}
	v, err := dp.value()
	if err != nil {
		return nil, err
	}
	if dp.tok.Kind != scanner.EOF {
		return nil, dp.errorf("trailing input after dump")
	}
	root, err := convertRoot(v)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if err := ast.Checks().Run(root); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return root, nil
}

// Raw dump values: nodes, lists, literals and bare identifiers
// (True/False/None/Ellipsis or legacy string fields).

type rawValue interface{}

type rawNode struct {
	name   string
	fields map[string]rawValue
}

func (n *rawNode) get(field string) (rawValue, bool) {
	v, ok := n.fields[field]
	return v, ok
}

type (
	rawList   []rawValue
	rawString string
	rawBytes  string
	rawNumber string
	rawIdent  string
)

// dumpParser is a one-token-lookahead parser over the dump token stream.
type dumpParser struct {
	name string
	s    *scanner.Scanner
	tok  scanner.Token
}

func (p *dumpParser) advance() error {
	tok, err := p.s.Next()
	if err != nil {
		return fmt.Errorf("%s: %w", p.name, err)
	}
	p.tok = tok
	return nil
}

func (p *dumpParser) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: offset %d: %s", p.name, p.tok.Offset, msg)
}

func (p *dumpParser) expect(kind scanner.Kind) error {
	if p.tok.Kind != kind {
		return p.errorf("expected %s, got %s", kind, p.tok.Kind)
	}
	return p.advance()
}

// value parses one dump value: a node call, a list, a literal or a bare
// identifier.
func (p *dumpParser) value() (rawValue, error) {
	switch p.tok.Kind {
	case scanner.Ident:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind == scanner.LParen {
			return p.node(name)
		}
		return rawIdent(name), nil
	case scanner.LBracket:
		return p.list()
	case scanner.String:
		v := rawString(p.tok.Text)
		return v, p.advance()
	case scanner.Bytes:
		v := rawBytes(p.tok.Text)
		return v, p.advance()
	case scanner.Number:
		v := rawNumber(p.tok.Text)
		return v, p.advance()
	default:
		return nil, p.errorf("expected a value, got %s", p.tok.Kind)
	}
}

// node parses the parenthesized field list of a node call. Fields must be
// annotated (name=value), the form ast.dump emits by default.
func (p *dumpParser) node(name string) (rawValue, error) {
	if err := p.expect(scanner.LParen); err != nil {
		return nil, err
	}
	n := &rawNode{name: name, fields: map[string]rawValue{}}
	if p.tok.Kind == scanner.RParen {
		return n, p.advance()
	}
	for {
		if p.tok.Kind != scanner.Ident {
			return nil, p.errorf("expected field name in %s(...), got %s", name, p.tok.Kind)
		}
		field := p.tok.Text
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.tok.Kind != scanner.Equal {
			return nil, p.errorf("positional fields are not supported; dump with annotate_fields=True")
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		n.fields[field] = v
		if p.tok.Kind == scanner.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(scanner.RParen); err != nil {
		return nil, err
	}
	return n, nil
}

func (p *dumpParser) list() (rawValue, error) {
	if err := p.expect(scanner.LBracket); err != nil {
		return nil, err
	}
	var items rawList
	if p.tok.Kind == scanner.RBracket {
		return items, p.advance()
	}
	for {
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		items = append(items, v)
		if p.tok.Kind == scanner.Comma {
			if err := p.advance(); err != nil {
				return nil, err
			}
			continue
		}
		break
	}
	if err := p.expect(scanner.RBracket); err != nil {
		return nil, err
	}
	return items, nil
}
