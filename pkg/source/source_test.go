package source

import "testing"

func TestLinesCaching(t *testing.T) {
	sf := FromString("one\ntwo\nthree")
	lines := sf.Lines()
	if len(lines) != 3 || lines[1] != "two" {
		t.Fatalf("Lines() = %q, want three lines with %q second", lines, "two")
	}
	// Same backing slice on the second call.
	if again := sf.Lines(); &again[0] != &lines[0] {
		t.Error("Lines() reallocated on second call, want cached slice")
	}
}

func TestDisplayPath(t *testing.T) {
	tests := []struct {
		name string
		sf   *SourceFile
		want string
		file bool
	}{
		{"from file", FromFile("a/b/grammar.txt", "x"), "a/b/grammar.txt", true},
		{"from string", FromString("x"), "<string>", false},
		{"named buffer", NewSourceFile("query", "", "x"), "query", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sf.DisplayPath(); got != tt.want {
				t.Errorf("DisplayPath() = %q, want %q", got, tt.want)
			}
			if got := tt.sf.IsFile(); got != tt.file {
				t.Errorf("IsFile() = %v, want %v", got, tt.file)
			}
		})
	}
}

func TestFromFileName(t *testing.T) {
	sf := FromFile("path/to/rules.g", "content")
	if sf.Name != "rules.g" {
		t.Errorf("Name = %q, want %q", sf.Name, "rules.g")
	}
	if sf.Path != "path/to/rules.g" {
		t.Errorf("Path = %q, want %q", sf.Path, "path/to/rules.g")
	}
}
