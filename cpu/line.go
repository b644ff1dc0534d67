package cpu

import (
	"strings"
)

// Line is a single line of assembly source split into its parts.
//
//	loop:   and r3 r0 r0    ; r3 now has zero
//
// has Label "loop", Body "and r3 r0 r0" and Comment " r3 now has zero".
type Line struct {
	LineNo  int    // Source line number, starting at 1.
	Label   string // Label defined on the line, if any.
	Body    string // Mnemonic and operands, trimmed.
	Comment string // Text after ';', informational only.
}

// ParseLine splits a line of source text into label, body and comment.
func ParseLine(lineno int, text string) (line Line) {
	line.LineNo = lineno

	text, comment, ok := strings.Cut(text, ";")
	if ok {
		line.Comment = comment
	}

	label, body, ok := strings.Cut(text, ":")
	if ok {
		line.Label = strings.TrimSpace(label)
		text = body
	}

	line.Body = strings.TrimSpace(text)

	return
}

// Empty returns true if the line produces no instruction.
func (line Line) Empty() bool {
	return len(line.Body) == 0
}

// Words returns the whitespace separated tokens of the line body.
func (line Line) Words() []string {
	return strings.Fields(line.Body)
}
