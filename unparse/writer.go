package unparse

import "strings"

// writer accumulates unparsed source as a sequence of completed,
// newline-terminated lines plus exactly one open line under construction.
// Completed lines are append-only; speculative rendering uses
// checkpoint/rollback to discard everything written during a failed
// single-line attempt.
type writer struct {
	lines   []string
	current strings.Builder
	indent  int // current indentation in columns
}

// checkpoint captures the writer state before a speculative write.
type checkpoint struct {
	lines   int
	current string
}

func (w *writer) write(s string) {
	w.current.WriteString(s)
}

func (w *writer) writeIndentation() {
	for i := 0; i < w.indent; i++ {
		w.current.WriteByte(' ')
	}
}

// newline closes the current line and starts a fresh empty one.
func (w *writer) newline() {
	w.lines = append(w.lines, w.current.String()+"\n")
	w.current.Reset()
}

func (w *writer) currentLineLength() int {
	return w.current.Len()
}

func (w *writer) checkpoint() checkpoint {
	return checkpoint{lines: len(w.lines), current: w.current.String()}
}

// rollback discards all lines completed since the checkpoint and restores
// the open line to its snapshot.
func (w *writer) rollback(c checkpoint) {
	w.lines = w.lines[:c.lines]
	w.current.Reset()
	w.current.WriteString(c.current)
}

// String returns the accumulated output, including any open line.
func (w *writer) String() string {
	return strings.Join(w.lines, "") + w.current.String()
}
