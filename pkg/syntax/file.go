// Package syntax provides the markup syntax tree representation for taglint.
// It defines a lossless, immutable view of a markup file including:
// - File: the complete file representation
// - Token stream: every byte classified
// - Node tree: opening, self-closing, and closing tag nodes with token spans
package syntax

// File is an immutable, lossless view of a markup file at a specific time.
// It holds the raw content, line metadata, token stream, and tree root.
type File struct {
	// Path is the file path (may be empty for in-memory content).
	Path string

	// Content is the full file bytes.
	Content []byte

	// Lines contains metadata for each line in the file.
	Lines []LineInfo

	// Tokens is the full token stream covering every byte.
	Tokens []Token

	// Root is the tree root node (Document).
	Root *Node
}

// LineInfo holds metadata for a single line in a file.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline (e.g., last line), this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of file).
	EndOffset int
}

// NewFile creates a new File from content.
// It builds the line index but does not tokenize or parse (that requires a Parser).
func NewFile(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
		Tokens:  nil,
		Root:    nil,
	}
}
