// Package scanner provides a minimal left-to-right scanning primitive: a
// cursor over a text buffer with whitespace skipping, literal and pattern
// consumption, and caret-annotated error reporting. It is a foundation for
// hand-written grammars, not a grammar engine; callers compose Tag, Match,
// and SkipWhitespace into whatever rules they need.
package scanner

import (
	"fmt"
	"strings"

	"textscan/pkg/errors"
	"textscan/pkg/pattern"
	"textscan/pkg/source"
)

// Scanner walks a text buffer left to right. One instance serves one logical
// parse on one goroutine; concurrent parses take independent instances.
//
// Every consuming operation either fully succeeds (cursor advances, value
// returned) or fully fails (cursor untouched, failure returned). A caller may
// always retry a different alternative after a failure without rewinding.
type Scanner struct {
	text       string
	pos        int // byte offset, 0 <= pos <= len(text)
	lineOffset int // base added to reported line numbers
}

// New creates a scanner over text, positioned at offset 0. lineOffset is
// added to every reported line number, for embedding the buffer's diagnostics
// in a larger document's numbering; pass 0 for standalone text.
func New(text string, lineOffset int) *Scanner {
	return &Scanner{text: text, lineOffset: lineOffset}
}

// NewFromSource creates a scanner over a source file's content.
func NewFromSource(sf *source.SourceFile, lineOffset int) *Scanner {
	return New(sf.Content, lineOffset)
}

// Set rebinds the scanner to new text and a new base line number, and resets
// the cursor to the start of the buffer.
func (s *Scanner) Set(text string, lineOffset int) {
	s.text = text
	s.lineOffset = lineOffset
	s.pos = 0
}

// AtEOF reports whether the whole buffer has been consumed.
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.text)
}

// BytesAfter returns the number of bytes strictly after the cursor byte: zero
// at end of input, otherwise len(text)-pos-1. Note this counts the bytes
// following the current one, not the size of Rest().
func (s *Scanner) BytesAfter() int {
	if s.AtEOF() {
		return 0
	}
	return len(s.text) - s.pos - 1
}

// Rest returns the unconsumed suffix of the buffer. It shares memory with the
// scanner's text and is only valid while the buffer is.
func (s *Scanner) Rest() string {
	return s.text[s.pos:]
}

// Pos is an opaque capture of the cursor, made by Mark and consumed by
// Rewind or ErrorAt.
type Pos struct {
	off int
}

// Mark snapshots the current cursor.
func (s *Scanner) Mark() Pos {
	return Pos{off: s.pos}
}

// Rewind moves the cursor back to a previously captured position. The
// position must come from a Mark on the same buffer binding.
func (s *Scanner) Rewind(p Pos) {
	s.pos = p.off
}

// SkipWhitespace advances the cursor past a maximal run of spaces, tabs,
// newlines, and carriage returns. It never fails and is idempotent.
func (s *Scanner) SkipWhitespace() {
	rest := s.text[s.pos:]
	s.pos += len(rest) - len(strings.TrimLeft(rest, " \t\n\r"))
}

// TryTag consumes tag if the unconsumed text starts with it exactly,
// reporting whether it did. A tag longer than the remaining text never
// matches; a tag equal to the entire remaining text does.
func (s *Scanner) TryTag(tag string) bool {
	if !strings.HasPrefix(s.Rest(), tag) {
		return false
	}
	s.pos += len(tag)
	return true
}

// Tag consumes tag or returns a parse error at the cursor.
func (s *Scanner) Tag(tag string) error {
	if !s.TryTag(tag) {
		return s.ErrorHere(fmt.Sprintf("expected tag `%s`", tag))
	}
	return nil
}

// TryMatch runs m on the unconsumed text. Only a match beginning exactly at
// the cursor counts; the engine may find one further ahead, but it is
// discarded and the cursor left alone. On acceptance the cursor advances to
// the match's end and the matched text is returned as an independent copy
// that outlives the scanner.
func (s *Scanner) TryMatch(m pattern.Matcher) (string, bool) {
	start, end, ok := m.Find(s.Rest())
	if !ok || start != 0 {
		return "", false
	}
	matched := strings.Clone(s.text[s.pos : s.pos+end])
	s.pos += end
	return matched, true
}

// Match consumes m's match at the cursor or returns a parse error naming the
// pattern's source text.
func (s *Scanner) Match(m pattern.Matcher) (string, error) {
	if matched, ok := s.TryMatch(m); ok {
		return matched, nil
	}
	return "", s.ErrorHere(fmt.Sprintf("no match for regex `%s`", m.Source()))
}

// ErrorHere builds a parse error anchored at the current cursor.
func (s *Scanner) ErrorHere(msg string) *errors.ParseError {
	return s.ErrorAt(s.Mark(), msg)
}

// ErrorAt builds a parse error anchored at a previously captured position,
// resolving its byte offset to a 1-based (line, column) pair and cutting a
// one-line excerpt around the offending byte.
//
// The offset is resolved by walking the buffer's lines: a position inside a
// line yields that byte as the excerpt token; a position exactly on a line's
// terminator yields the EOL sentinel with the whole line as prefix; a
// position past the last line yields the EOF sentinel with an empty excerpt.
func (s *Scanner) ErrorAt(p Pos, msg string) *errors.ParseError {
	off := p.off
	line := s.lineOffset
	prefix, token, suffix := "", errors.EOFToken, ""

	for _, ln := range splitLines(s.text) {
		line++
		if off < len(ln) {
			prefix = strings.Clone(ln[:off])
			token = strings.Clone(ln[off : off+1])
			suffix = strings.Clone(ln[off+1:])
			break
		} else if off == len(ln) {
			prefix = strings.Clone(ln)
			token = errors.EOLToken
			break
		}
		off -= len(ln) + 1
	}

	pos := errors.Position{Line: line, Column: off + 1}
	return errors.New(pos, msg, prefix, token, suffix)
}

// splitLines cuts text on '\n' without producing a phantom empty line after a
// trailing terminator: "a\nb" and "a\nb\n" both give ["a", "b"], and "" gives
// no lines at all, so an offset at the very end of a terminated buffer
// resolves to the EOF sentinel rather than a spurious final line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}
