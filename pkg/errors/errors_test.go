package errors

import (
	"strings"
	"testing"
)

func TestParseErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "single byte token",
			err:  New(Position{Line: 1, Column: 9}, "life sux", "   blah ", "s", "tuff ~"),
			want: "Error at [1, 9]\n" +
				"life sux\n" +
				"|    blah stuff ~\n" +
				"|         ^",
		},
		{
			name: "line end sentinel gets two carets",
			err:  New(Position{Line: 2, Column: 4}, "unexpected end of line", "two", EOLToken, ""),
			want: "Error at [2, 4]\n" +
				"unexpected end of line\n" +
				`| two\n` + "\n" +
				"|    ^^",
		},
		{
			name: "end of file sentinel gets five carets",
			err:  New(Position{Line: 3, Column: 1}, "unexpected end of input", "", EOFToken, ""),
			want: "Error at [3, 1]\n" +
				"unexpected end of input\n" +
				"| <eof>\n" +
				"| ^^^^^",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.String(); got != tt.want {
				t.Errorf("String():\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestPushKeepsOrder(t *testing.T) {
	err := New(Position{Line: 1, Column: 2}, "bad digit", "4", "x", "2")
	err.Push("while parsing a number")
	err.Push("while parsing the port field")

	want := []string{"bad digit", "while parsing a number", "while parsing the port field"}
	got := err.Messages()
	if len(got) != len(want) {
		t.Fatalf("Messages() has %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Messages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	rendered := err.String()
	wantRendered := "Error at [1, 2]\n" +
		"bad digit\n" +
		"while parsing a number\n" +
		"while parsing the port field\n" +
		"| 4x2\n" +
		"|  ^"
	if rendered != wantRendered {
		t.Errorf("String():\n%s\nwant:\n%s", rendered, wantRendered)
	}
}

func TestErrorSummary(t *testing.T) {
	err := New(Position{Line: 7, Column: 3}, "expected tag `end`", "  ", "x", "")
	if got, want := err.Error(), "parse error at 7:3: expected tag `end`"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestLinesOrder(t *testing.T) {
	err := New(Position{Line: 1, Column: 1}, "boom", "", "b", "oom")
	var lines []string
	err.Lines(func(line string) { lines = append(lines, line) })

	if len(lines) != 4 {
		t.Fatalf("Lines produced %d lines, want 4", len(lines))
	}
	if lines[0] != "Error at [1, 1]" {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.HasPrefix(lines[2], "| ") || !strings.HasPrefix(lines[3], "| ") {
		t.Errorf("excerpt lines = %q, %q, want \"| \" prefixes", lines[2], lines[3])
	}
}
