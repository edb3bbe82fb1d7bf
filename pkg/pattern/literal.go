package pattern

import "strings"

type literalMatcher string

// Literal returns a Matcher that matches text exactly, with no compilation
// step. It lets callers drive tag-style matching through the pattern
// interface.
func Literal(text string) Matcher {
	return literalMatcher(text)
}

func (m literalMatcher) Find(s string) (start, end int, ok bool) {
	i := strings.Index(s, string(m))
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(m), true
}

func (m literalMatcher) Source() string {
	return string(m)
}
