package errors

import (
	"fmt"
	"strings"
)

// Sentinel tokens used in an excerpt when the error position does not fall on
// a byte of the offending line.
const (
	// EOLToken marks a position exactly at a line's terminator.
	EOLToken = `\n`
	// EOFToken marks a position at or past the end of the buffer.
	EOFToken = "<eof>"
)

// ParseError is a parse failure anchored at a position, carrying a message
// chain and a one-line excerpt of the offending source.
//
// The excerpt splits the error line at the offending byte: Prefix is
// everything on the line before it, Token the byte itself (or a sentinel),
// Suffix the rest of the line. All three are copies, so a ParseError stays
// valid after the scanner's buffer is gone.
type ParseError struct {
	Position
	Msgs   []string
	Prefix string
	Token  string
	Suffix string
}

// New builds a parse error from a resolved position, an initial message, and
// the excerpt triple.
func New(pos Position, msg, prefix, token, suffix string) *ParseError {
	return &ParseError{
		Position: pos,
		Msgs:     []string{msg},
		Prefix:   prefix,
		Token:    token,
		Suffix:   suffix,
	}
}

// Error implements the error interface with a single-line summary; String
// gives the full report.
func (e *ParseError) Error() string {
	msg := ""
	if len(e.Msgs) > 0 {
		msg = e.Msgs[0]
	}
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, msg)
}

// Push appends a context message. Outer rules use it to wrap a lower-level
// failure ("while parsing block header: ...") while keeping the original
// position and excerpt.
func (e *ParseError) Push(msg string) {
	e.Msgs = append(e.Msgs, msg)
}

// Messages returns the accumulated messages in push order.
func (e *ParseError) Messages() []string {
	return e.Msgs
}

// Excerpt returns the prefix, token, and suffix of the error line.
func (e *ParseError) Excerpt() (prefix, token, suffix string) {
	return e.Prefix, e.Token, e.Suffix
}

// Lines feeds the rendered report to treatment, one line at a time:
//
//	Error at [<line>, <column>]
//	<each message, in push order>
//	| <the source line>
//	| <caret marker aligned under the token>
//
// The caret line pads by the byte length of the prefix and repeats the caret
// for the byte length of the token, so sentinel tokens get multi-caret runs.
func (e *ParseError) Lines(treatment func(string)) {
	treatment(fmt.Sprintf("Error at [%d, %d]", e.Line, e.Column))
	for _, msg := range e.Msgs {
		treatment(msg)
	}
	treatment("| " + e.Prefix + e.Token + e.Suffix)
	treatment("| " + strings.Repeat(" ", len(e.Prefix)) + strings.Repeat("^", len(e.Token)))
}

// String renders the full report, lines joined with "\n".
func (e *ParseError) String() string {
	var b strings.Builder
	first := true
	e.Lines(func(line string) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(line)
	})
	return b.String()
}
