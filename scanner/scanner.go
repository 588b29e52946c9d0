// Package scanner tokenizes the text form of Python AST dumps, as printed
// by ast.dump(): node names, keyword fields, string/bytes/number literals
// and the surrounding punctuation. It encapsulates quote and escape
// tracking so the parser never re-implements string-boundary logic.
package scanner

import (
	"fmt"
	"strings"
)

// Kind identifies a token class.
type Kind int

const (
	EOF Kind = iota
	Ident
	Number
	String
	Bytes
	LParen
	RParen
	LBracket
	RBracket
	Comma
	Equal
)

var kindNames = [...]string{
	EOF:      "end of input",
	Ident:    "identifier",
	Number:   "number",
	String:   "string",
	Bytes:    "bytes",
	LParen:   "'('",
	RParen:   "')'",
	LBracket: "'['",
	RBracket: "']'",
	Comma:    "','",
	Equal:    "'='",
}

func (k Kind) String() string { return kindNames[k] }

// Token is one lexical unit of a dump. Text holds the identifier or the
// literal value: for String and Bytes it is the unescaped content, for
// Number the canonical literal text.
type Token struct {
	Kind   Kind
	Text   string
	Offset int // byte offset of the token start
}

// Scanner iterates over the tokens of a dump string.
type Scanner struct {
	src string
	pos int
}

// New creates a Scanner for the given dump text.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token, or an EOF token at end of input.
func (s *Scanner) Next() (Token, error) {
	s.skipSpace()
	if s.pos >= len(s.src) {
		return Token{Kind: EOF, Offset: s.pos}, nil
	}
	start := s.pos
	ch := s.src[s.pos]

	switch ch {
	case '(':
		s.pos++
		return Token{Kind: LParen, Text: "(", Offset: start}, nil
	case ')':
		s.pos++
		return Token{Kind: RParen, Text: ")", Offset: start}, nil
	case '[':
		s.pos++
		return Token{Kind: LBracket, Text: "[", Offset: start}, nil
	case ']':
		s.pos++
		return Token{Kind: RBracket, Text: "]", Offset: start}, nil
	case ',':
		s.pos++
		return Token{Kind: Comma, Text: ",", Offset: start}, nil
	case '=':
		s.pos++
		return Token{Kind: Equal, Text: "=", Offset: start}, nil
	case '\'', '"':
		text, err := s.scanString(ch)
		if err != nil {
			return Token{}, err
		}
		return Token{Kind: String, Text: text, Offset: start}, nil
	}

	if isDigit(ch) || ch == '-' || ch == '.' {
		return s.scanNumber()
	}
	if isIdentStart(ch) {
		name := s.scanIdent()
		// A b or u prefix glued to a quote starts a literal, not a name.
		if s.pos < len(s.src) && (s.src[s.pos] == '\'' || s.src[s.pos] == '"') {
			switch name {
			case "b":
				text, err := s.scanString(s.src[s.pos])
				if err != nil {
					return Token{}, err
				}
				return Token{Kind: Bytes, Text: text, Offset: start}, nil
			case "u":
				text, err := s.scanString(s.src[s.pos])
				if err != nil {
					return Token{}, err
				}
				return Token{Kind: String, Text: text, Offset: start}, nil
			}
		}
		return Token{Kind: Ident, Text: name, Offset: start}, nil
	}

	return Token{}, fmt.Errorf("offset %d: unexpected character %q", start, ch)
}

func (s *Scanner) skipSpace() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.pos++
		default:
			return
		}
	}
}

func (s *Scanner) scanIdent() string {
	start := s.pos
	for s.pos < len(s.src) && isIdentPart(s.src[s.pos]) {
		s.pos++
	}
	return s.src[start:s.pos]
}

// scanNumber consumes one numeric literal, keeping the canonical text.
// Handles ints, floats, scientific notation, radix prefixes and the
// imaginary j suffix.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.pos
	if s.src[s.pos] == '-' {
		s.pos++
	}
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case isDigit(ch) || ch == '.' || ch == '_':
			s.pos++
		case ch == 'x' || ch == 'X' || ch == 'o' || ch == 'O' || ch == 'b' || ch == 'B':
			s.pos++
		case ch >= 'a' && ch <= 'f' || ch >= 'A' && ch <= 'F':
			s.pos++
		case ch == 'e' || ch == 'E':
			s.pos++
			if s.pos < len(s.src) && (s.src[s.pos] == '+' || s.src[s.pos] == '-') {
				s.pos++
			}
		case ch == 'j' || ch == 'J':
			s.pos++
			return Token{Kind: Number, Text: s.src[start:s.pos], Offset: start}, nil
		default:
			return Token{Kind: Number, Text: s.src[start:s.pos], Offset: start}, nil
		}
	}
	return Token{Kind: Number, Text: s.src[start:s.pos], Offset: start}, nil
}

// scanString consumes a quoted literal, resolving Python repr escapes.
func (s *Scanner) scanString(quote byte) (string, error) {
	start := s.pos
	s.pos++ // opening quote
	var sb strings.Builder
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if ch == quote {
			s.pos++
			return sb.String(), nil
		}
		if ch != '\\' {
			sb.WriteByte(ch)
			s.pos++
			continue
		}
		s.pos++
		if s.pos >= len(s.src) {
			break
		}
		esc := s.src[s.pos]
		s.pos++
		switch esc {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '0':
			sb.WriteByte(0)
		case '\\', '\'', '"':
			sb.WriteByte(esc)
		case 'x':
			if s.pos+2 > len(s.src) {
				return "", fmt.Errorf("offset %d: truncated \\x escape", s.pos)
			}
			hi, ok1 := hexVal(s.src[s.pos])
			lo, ok2 := hexVal(s.src[s.pos+1])
			if !ok1 || !ok2 {
				return "", fmt.Errorf("offset %d: invalid \\x escape", s.pos)
			}
			sb.WriteByte(hi<<4 | lo)
			s.pos += 2
		case 'u':
			r, err := s.hexRune(4, 'u')
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		case 'U':
			r, err := s.hexRune(8, 'U')
			if err != nil {
				return "", err
			}
			sb.WriteRune(r)
		default:
			// Unknown escape: keep it verbatim, as repr would.
			sb.WriteByte('\\')
			sb.WriteByte(esc)
		}
	}
	return "", fmt.Errorf("offset %d: unterminated string literal", start)
}

// hexRune reads n hex digits naming a codepoint.
func (s *Scanner) hexRune(n int, esc byte) (rune, error) {
	if s.pos+n > len(s.src) {
		return 0, fmt.Errorf("offset %d: truncated \\%c escape", s.pos, esc)
	}
	var r rune
	for i := 0; i < n; i++ {
		v, ok := hexVal(s.src[s.pos+i])
		if !ok {
			return 0, fmt.Errorf("offset %d: invalid \\%c escape", s.pos, esc)
		}
		r = r<<4 | rune(v)
	}
	s.pos += n
	return r, nil
}

func hexVal(ch byte) (byte, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		return ch - '0', true
	case ch >= 'a' && ch <= 'f':
		return ch - 'a' + 10, true
	case ch >= 'A' && ch <= 'F':
		return ch - 'A' + 10, true
	}
	return 0, false
}

func isDigit(ch byte) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isIdentPart(ch byte) bool { return isIdentStart(ch) || isDigit(ch) }
