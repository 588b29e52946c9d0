package unparse

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rubiojr/pyunparse/ast"
)

func (e *emitter) emitStr(v *ast.Str) error {
	// After a `from __future__ import unicode_literals` directive, native
	// text literals need an explicit b prefix to keep their byte semantics.
	if e.hasUnicodeLiterals {
		e.w.write("b")
	}
	e.w.write(pyRepr(v.Value))
	return nil
}

// pyRepr renders s the way Python's repr does: single quotes unless the
// value contains a single quote but no double quote, printable runes kept
// as-is, everything else escaped at the narrowest width that names it.
func pyRepr(s string) string {
	quote := reprQuote(s)
	var sb strings.Builder
	sb.WriteByte(quote)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			// Stray byte outside UTF-8, kept as a byte escape.
			fmt.Fprintf(&sb, `\x%02x`, s[i])
			i++
			continue
		}
		i += size
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(quote):
			sb.WriteByte('\\')
			sb.WriteByte(quote)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x80 && (r < 0x20 || r == 0x7f):
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x80 || unicode.IsPrint(r):
			sb.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			fmt.Fprintf(&sb, `\U%08x`, r)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// bytesRepr renders raw bytes the way Python's bytes repr does: anything
// outside printable ASCII becomes a \x escape.
func bytesRepr(s string) string {
	quote := reprQuote(s)
	var sb strings.Builder
	sb.WriteByte(quote)
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '\\':
			sb.WriteString(`\\`)
		case ch == quote:
			sb.WriteByte('\\')
			sb.WriteByte(ch)
		case ch == '\n':
			sb.WriteString(`\n`)
		case ch == '\r':
			sb.WriteString(`\r`)
		case ch == '\t':
			sb.WriteString(`\t`)
		case ch < 0x20 || ch >= 0x7f:
			fmt.Fprintf(&sb, `\x%02x`, ch)
		default:
			sb.WriteByte(ch)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

func reprQuote(s string) byte {
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		return '"'
	}
	return '\''
}

func (e *emitter) emitJoinedStr(v *ast.JoinedStr) error {
	e.w.write("f'")
	if err := e.writeJoinedStrParts(v.Values); err != nil {
		return err
	}
	e.w.write("'")
	return nil
}

// A formatted value outside a JoinedStr still renders as an f-string of one
// slot.
func (e *emitter) emitFormattedValue(v *ast.FormattedValue) error {
	if _, ok := e.parentNode().(*ast.JoinedStr); ok {
		return e.writeFormattedSlot(v)
	}
	e.w.write("f'")
	if err := e.writeFormattedSlot(v); err != nil {
		return err
	}
	e.w.write("'")
	return nil
}

func (e *emitter) writeJoinedStrParts(values []ast.Expr) error {
	for _, part := range values {
		switch p := part.(type) {
		case *ast.Str:
			e.w.write(fstringEscape(p.Value))
		case *ast.FormattedValue:
			if err := e.writeFormattedSlot(p); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown f-string part type: %T", part)
		}
	}
	return nil
}

func (e *emitter) writeFormattedSlot(v *ast.FormattedValue) error {
	e.w.write("{")
	if err := e.visit(v.Value); err != nil {
		return err
	}
	if v.Conversion != 0 {
		e.w.write("!")
		e.w.write(string(v.Conversion))
	}
	if v.FormatSpec != nil {
		e.w.write(":")
		spec, ok := v.FormatSpec.(*ast.JoinedStr)
		if !ok {
			return fmt.Errorf("unknown format spec type: %T", v.FormatSpec)
		}
		if err := e.writeJoinedStrParts(spec.Values); err != nil {
			return err
		}
	}
	e.w.write("}")
	return nil
}

// fstringEscape escapes the literal part of an f-string for a
// single-quoted rendering.
func fstringEscape(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '\\':
			sb.WriteString(`\\`)
		case '\'':
			sb.WriteString(`\'`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		case '{':
			sb.WriteString("{{")
		case '}':
			sb.WriteString("}}")
		default:
			sb.WriteByte(ch)
		}
	}
	return sb.String()
}
