package syntax

// Adjacency pairs two significant tokens that are consecutive in source
// order, plus access to the trivia between them. The trivia slice is
// always well-formed: Earlier.EndOffset <= Later.StartOffset because both
// tokens originate from one contiguous token stream.
type Adjacency struct {
	// Earlier is the token that appears first in source order.
	Earlier Token

	// Later is the token that follows.
	Later Token

	file *File
}

// NewAdjacency builds an Adjacency over the given file.
// Exposed for constructing adjacencies in tests without a full Tag.
func NewAdjacency(f *File, earlier, later Token) Adjacency {
	return Adjacency{Earlier: earlier, Later: later, file: f}
}

// Trivia returns the raw bytes between the two tokens.
func (a Adjacency) Trivia() []byte {
	return a.file.Content[a.Earlier.EndOffset:a.Later.StartOffset]
}

// Gap holds the whitespace classification of an Adjacency.
type Gap struct {
	// Start is the byte offset where the gap begins (earlier token end).
	Start int

	// End is the byte offset where the gap ends (later token start).
	End int

	// HasWhitespace is true when any whitespace or newline byte separates
	// the two tokens.
	HasWhitespace bool

	// HasLineBreak is true when the gap spans at least one line break.
	HasLineBreak bool
}

// Gap classifies the trivia between the two tokens of an Adjacency.
// The gap boundaries are exactly [Earlier.EndOffset, Later.StartOffset).
func (a Adjacency) Gap() Gap {
	g := Gap{
		Start: a.Earlier.EndOffset,
		End:   a.Later.StartOffset,
	}
	for _, b := range a.Trivia() {
		switch b {
		case ' ', '\t':
			g.HasWhitespace = true
		case '\n', '\r':
			g.HasWhitespace = true
			g.HasLineBreak = true
		}
	}
	return g
}

// Len returns the gap width in bytes.
func (g Gap) Len() int {
	return g.End - g.Start
}

// IsSingleSpace returns true when the gap is exactly one space character.
func (a Adjacency) IsSingleSpace() bool {
	trivia := a.Trivia()
	return len(trivia) == 1 && trivia[0] == ' '
}

// IsSingleNewline returns true when the gap is exactly one line break
// (LF or CRLF) with no other whitespace.
func (a Adjacency) IsSingleNewline() bool {
	trivia := a.Trivia()
	switch string(trivia) {
	case "\n", "\r\n":
		return true
	default:
		return false
	}
}
