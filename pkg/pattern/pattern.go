// Package pattern defines the matching capability a scanner consumes, so the
// regex engine is pluggable rather than baked in.
package pattern

import "regexp"

// Matcher is everything a scanner needs from a pattern engine: compile once
// elsewhere, search a string, report the first match's byte range, and recover
// the original pattern text for error messages.
//
// The scanner only accepts matches that start at offset 0 of the searched
// string, so expressions should be anchored with `^`; an engine is free to
// report a later match, but the scanner will discard it.
type Matcher interface {
	// Find reports the first match's start and end byte offsets in s.
	Find(s string) (start, end int, ok bool)
	// Source returns the textual form of the pattern, for diagnostics.
	Source() string
}

type goMatcher struct {
	re *regexp.Regexp
}

// Go compiles expr with the standard library's RE2 engine.
func Go(expr string) (Matcher, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	return goMatcher{re: re}, nil
}

// MustGo is like Go but panics on a bad expression, for patterns known
// correct at compile time.
func MustGo(expr string) Matcher {
	return goMatcher{re: regexp.MustCompile(expr)}
}

func (m goMatcher) Find(s string) (start, end int, ok bool) {
	loc := m.re.FindStringIndex(s)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

func (m goMatcher) Source() string {
	return m.re.String()
}
