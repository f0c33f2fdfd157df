// Package fix provides text edit types and application logic for auto-fixing.
//
// A fix in taglint is a minimal textual edit: delete a byte range or insert
// literal text at an offset. Edits are descriptions only; applying them is a
// separate stage so rules never mutate the tree or the file.
package fix

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// StartOffset is the byte index where the edit begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where the edit ends (exclusive).
	EndOffset int

	// NewText is the replacement text.
	NewText string
}

// IsInsert returns true for pure insertions (zero-width range).
func (e TextEdit) IsInsert() bool {
	return e.StartOffset == e.EndOffset && e.NewText != ""
}

// IsDelete returns true for pure deletions (empty replacement).
func (e TextEdit) IsDelete() bool {
	return e.StartOffset < e.EndOffset && e.NewText == ""
}

// Delete returns an edit that deletes bytes [start, end).
func Delete(start, end int) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end}
}

// Insert returns an edit that inserts text at the given offset.
func Insert(offset int, text string) TextEdit {
	return TextEdit{StartOffset: offset, EndOffset: offset, NewText: text}
}

// Replace returns an edit that replaces bytes [start, end) with text.
func Replace(start, end int, text string) TextEdit {
	return TextEdit{StartOffset: start, EndOffset: end, NewText: text}
}

// EditBuilder accumulates text edits for a file.
type EditBuilder struct {
	Edits []TextEdit
}

// NewEditBuilder creates a new EditBuilder.
func NewEditBuilder() *EditBuilder {
	return &EditBuilder{
		Edits: make([]TextEdit, 0),
	}
}

// ReplaceRange adds an edit that replaces bytes [start, end) with newText.
func (b *EditBuilder) ReplaceRange(start, end int, newText string) {
	b.Edits = append(b.Edits, Replace(start, end, newText))
}

// Insert adds an edit that inserts text at the given offset.
func (b *EditBuilder) Insert(offset int, text string) {
	b.Edits = append(b.Edits, Insert(offset, text))
}

// Delete adds an edit that deletes bytes [start, end).
func (b *EditBuilder) Delete(start, end int) {
	b.Edits = append(b.Edits, Delete(start, end))
}

// Add appends a ready-made edit.
func (b *EditBuilder) Add(edit TextEdit) {
	b.Edits = append(b.Edits, edit)
}
