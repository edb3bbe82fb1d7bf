package source

import (
	"path/filepath"
	"strings"
)

// SourceFile is an immutable text buffer plus display metadata. A scanner
// borrows Content for the duration of a parse session; the buffer itself is
// never mutated.
type SourceFile struct {
	Name    string   // Display name (e.g., "grammar.txt", "<string>")
	Path    string   // Full file path (empty for in-memory buffers)
	Content string   // The raw text
	lines   []string // Cached split lines (lazy initialization)
}

// NewSourceFile creates a new source file.
func NewSourceFile(name, path, content string) *SourceFile {
	return &SourceFile{
		Name:    name,
		Path:    path,
		Content: content,
	}
}

// FromString creates an anonymous in-memory buffer.
func FromString(content string) *SourceFile {
	return &SourceFile{
		Name:    "<string>",
		Path:    "",
		Content: content,
	}
}

// FromFile creates a SourceFile from a file path and content.
func FromFile(filePath, content string) *SourceFile {
	name := filepath.Base(filePath)
	return NewSourceFile(name, filePath, content)
}

// Lines returns the content split into lines (cached).
func (sf *SourceFile) Lines() []string {
	if sf.lines == nil {
		sf.lines = strings.Split(sf.Content, "\n")
	}
	return sf.lines
}

// DisplayPath returns the best path for display (prefers Path, falls back to Name).
func (sf *SourceFile) DisplayPath() string {
	if sf.Path != "" {
		return sf.Path
	}
	return sf.Name
}

// IsFile returns true if this represents an actual file (has a path).
func (sf *SourceFile) IsFile() bool {
	return sf.Path != ""
}
