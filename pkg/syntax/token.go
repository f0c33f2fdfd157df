package syntax

//go:generate stringer -type=TokenKind -trimprefix=Tok

// TokenKind classifies the type of a token in markup source.
type TokenKind uint16

// Token kinds cover every byte in the source. Trivia kinds carry the
// whitespace between significant tokens; everything inside a tag is
// classified down to single delimiters.
const (
	TokText TokenKind = iota
	TokWhitespace

	TokOpenBracket  // '<'
	TokCloseBracket // '>'
	TokSlash        // '/'
	TokName         // tag or attribute name
	TokEquals       // '='
	TokString       // quoted attribute value
	TokExpr         // brace-delimited embedded expression

	TokOther
)

// IsTrivia returns true for tokens that carry no syntactic weight.
func (k TokenKind) IsTrivia() bool {
	return k == TokWhitespace
}

// Token represents a classified span of bytes in the markup source.
// Tokens are contiguous and non-overlapping, covering [0, len(Content)).
type Token struct {
	// Kind classifies what this token represents.
	Kind TokenKind

	// StartOffset is the byte index where this token begins (inclusive).
	StartOffset int

	// EndOffset is the byte index where this token ends (exclusive).
	EndOffset int
}

// Text returns the source text of this token from the given content.
func (t Token) Text(content []byte) []byte {
	if t.StartOffset < 0 || t.EndOffset > len(content) || t.StartOffset > t.EndOffset {
		return nil
	}
	return content[t.StartOffset:t.EndOffset]
}

// Len returns the length of this token in bytes.
func (t Token) Len() int {
	return t.EndOffset - t.StartOffset
}

// IsEmpty returns true if this token has zero length.
func (t Token) IsEmpty() bool {
	return t.StartOffset == t.EndOffset
}

// ValidateTokens checks that a token slice is contiguous, non-overlapping,
// and covers the full content range [0, contentLen).
func ValidateTokens(tokens []Token, contentLen int) bool {
	if len(tokens) == 0 {
		return contentLen == 0
	}

	if tokens[0].StartOffset != 0 {
		return false
	}
	if tokens[len(tokens)-1].EndOffset != contentLen {
		return false
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].StartOffset != tokens[i-1].EndOffset {
			return false
		}
	}

	return true
}
