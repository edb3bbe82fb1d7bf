package pattern

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

type backtrackingMatcher struct {
	re *regexp2.Regexp
}

// Backtracking compiles expr with the regexp2 engine, which supports
// constructs RE2 refuses (lookaround, backreferences) at the cost of
// worst-case exponential search time.
func Backtracking(expr string) (Matcher, error) {
	re, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		return nil, err
	}
	return backtrackingMatcher{re: re}, nil
}

// MustBacktracking is like Backtracking but panics on a bad expression.
func MustBacktracking(expr string) Matcher {
	return backtrackingMatcher{re: regexp2.MustCompile(expr, regexp2.None)}
}

func (m backtrackingMatcher) Find(s string) (start, end int, ok bool) {
	match, err := m.re.FindStringMatch(s)
	if err != nil || match == nil {
		return 0, 0, false
	}
	// regexp2 reports rune offsets; the Matcher contract is byte offsets.
	start = byteOffset(s, match.Index)
	end = start + len(match.String())
	return start, end, true
}

func (m backtrackingMatcher) Source() string {
	return m.re.String()
}

// byteOffset converts a rune count from the start of s into a byte offset.
func byteOffset(s string, runes int) int {
	off := 0
	for ; runes > 0 && off < len(s); runes-- {
		_, size := utf8.DecodeRuneInString(s[off:])
		off += size
	}
	return off
}
