package tagscan

import (
	"github.com/yaklabco/taglint/pkg/syntax"
)

// tokenizer performs a single-pass tokenization of markup content.
// It produces a contiguous, non-overlapping token stream covering
// [0, len(content)).
//
// Only tag interiors are classified down to single delimiters. A '<' that
// does not begin a well-formed tag (no tag-like start, or no closing '>')
// is emitted as text, so every TokOpenBracket in the output is guaranteed
// to be followed by a matching TokCloseBracket.
type tokenizer struct {
	content []byte
	tokens  []syntax.Token
	pos     int
}

// Tokenize performs a single-pass tokenization of the given content.
// Returns a slice of tokens that are contiguous, non-overlapping, and
// cover [0, len(content)).
func Tokenize(content []byte) []syntax.Token {
	if len(content) == 0 {
		return nil
	}

	const initialCapacityDivisor = 4 // reasonable initial capacity estimate
	tok := &tokenizer{
		content: content,
		tokens:  make([]syntax.Token, 0, len(content)/initialCapacityDivisor),
		pos:     0,
	}

	tok.tokenize()

	return tok.tokens
}

// tokenize performs the main tokenization loop.
func (t *tokenizer) tokenize() {
	for t.pos < len(t.content) {
		ch := t.content[t.pos]

		switch {
		case ch == '<':
			if t.tryTag() {
				continue
			}
			t.consumeText()
		case isWhitespace(ch):
			t.consumeWhitespace()
		default:
			t.consumeText()
		}
	}
}

// tryTag attempts to tokenize a complete tag starting at the current '<'.
// Returns false without consuming anything when the '<' does not begin a
// tag, leaving the byte to be picked up as text.
func (t *tokenizer) tryTag() bool {
	if !t.looksLikeTag() {
		return false
	}

	end, ok := t.findTagEnd()
	if !ok {
		return false
	}

	t.tokenizeTagInterior(end)
	return true
}

// looksLikeTag checks whether the '<' at the current position starts
// something tag-shaped: the next significant character must be a slash,
// a name-start character, or an immediate '>'.
func (t *tokenizer) looksLikeTag() bool {
	pos := t.pos + 1
	for pos < len(t.content) && isWhitespace(t.content[pos]) {
		pos++
	}
	if pos >= len(t.content) {
		return false
	}

	ch := t.content[pos]
	return ch == '/' || ch == '>' || isNameStart(ch)
}

// findTagEnd locates the '>' that closes the tag starting at the current
// '<'. Quoted attribute values and balanced brace expressions may contain
// '>' freely. Returns the offset just past the closing '>' and true, or
// false when the tag never closes.
func (t *tokenizer) findTagEnd() (int, bool) {
	pos := t.pos + 1

	for pos < len(t.content) {
		switch ch := t.content[pos]; ch {
		case '>':
			return pos + 1, true
		case '"', '\'':
			end, ok := scanQuoted(t.content, pos)
			if !ok {
				return 0, false
			}
			pos = end
		case '{':
			end, ok := scanBraced(t.content, pos)
			if !ok {
				return 0, false
			}
			pos = end
		case '<':
			// A second '<' before the tag closes means the first one was
			// not a real tag.
			return 0, false
		default:
			pos++
		}
	}

	return 0, false
}

// tokenizeTagInterior emits the classified tokens of a tag spanning
// [t.pos, end). The caller has already verified the span ends with '>'.
func (t *tokenizer) tokenizeTagInterior(end int) {
	t.emitSingle(syntax.TokOpenBracket)

	for t.pos < end-1 {
		ch := t.content[t.pos]

		switch {
		case isWhitespace(ch):
			t.consumeWhitespaceUntil(end - 1)
		case ch == '/':
			t.emitSingle(syntax.TokSlash)
		case ch == '=':
			t.emitSingle(syntax.TokEquals)
		case ch == '"' || ch == '\'':
			t.consumeQuoted()
		case ch == '{':
			t.consumeBraced()
		case isNameStart(ch):
			t.consumeName(end - 1)
		default:
			t.emitSingle(syntax.TokOther)
		}
	}

	t.emitSingle(syntax.TokCloseBracket)
}

// consumeName consumes a tag or attribute name run.
func (t *tokenizer) consumeName(limit int) {
	start := t.pos
	for t.pos < limit && isNameChar(t.content[t.pos]) {
		t.pos++
	}
	t.emit(syntax.TokName, start, t.pos)
}

// consumeQuoted consumes a quoted attribute value including both quotes.
// findTagEnd already verified the quote closes before the tag does.
func (t *tokenizer) consumeQuoted() {
	start := t.pos
	end, _ := scanQuoted(t.content, t.pos)
	t.pos = end
	t.emit(syntax.TokString, start, t.pos)
}

// consumeBraced consumes a balanced brace expression including both braces.
func (t *tokenizer) consumeBraced() {
	start := t.pos
	end, _ := scanBraced(t.content, t.pos)
	t.pos = end
	t.emit(syntax.TokExpr, start, t.pos)
}

// consumeWhitespace consumes a whitespace run outside any tag.
func (t *tokenizer) consumeWhitespace() {
	t.consumeWhitespaceUntil(len(t.content))
}

// consumeWhitespaceUntil consumes whitespace up to the given limit.
func (t *tokenizer) consumeWhitespaceUntil(limit int) {
	start := t.pos
	for t.pos < limit && isWhitespace(t.content[t.pos]) {
		t.pos++
	}
	t.emit(syntax.TokWhitespace, start, t.pos)
}

// consumeText consumes a text run up to the next whitespace or '<'.
func (t *tokenizer) consumeText() {
	start := t.pos
	t.pos++ // always consume at least one byte, even a stray '<'

	for t.pos < len(t.content) {
		ch := t.content[t.pos]
		if ch == '<' || isWhitespace(ch) {
			break
		}
		t.pos++
	}

	t.emit(syntax.TokText, start, t.pos)
}

// emit adds a token to the token list.
func (t *tokenizer) emit(kind syntax.TokenKind, start, end int) {
	t.tokens = append(t.tokens, syntax.Token{
		Kind:        kind,
		StartOffset: start,
		EndOffset:   end,
	})
}

// emitSingle emits a single-character token and advances position.
func (t *tokenizer) emitSingle(kind syntax.TokenKind) {
	t.emit(kind, t.pos, t.pos+1)
	t.pos++
}

// scanQuoted scans a quoted string starting at the opening quote.
// Returns the offset just past the closing quote and true, or false when
// the string never closes.
func scanQuoted(content []byte, start int) (int, bool) {
	quote := content[start]
	for pos := start + 1; pos < len(content); pos++ {
		if content[pos] == quote {
			return pos + 1, true
		}
	}
	return 0, false
}

// scanBraced scans a balanced brace expression starting at the opening
// brace. Nested braces and quoted strings inside the expression are
// handled. Returns the offset just past the closing brace and true, or
// false when the expression never closes.
func scanBraced(content []byte, start int) (int, bool) {
	depth := 0
	pos := start

	for pos < len(content) {
		switch content[pos] {
		case '{':
			depth++
			pos++
		case '}':
			depth--
			pos++
			if depth == 0 {
				return pos, true
			}
		case '"', '\'':
			end, ok := scanQuoted(content, pos)
			if !ok {
				return 0, false
			}
			pos = end
		default:
			pos++
		}
	}

	return 0, false
}

// isWhitespace returns true for the whitespace bytes the scanner separates
// into trivia tokens.
func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r':
		return true
	default:
		return false
	}
}

// isNameStart returns true if the byte can start a tag or attribute name.
func isNameStart(b byte) bool {
	return isLetter(b) || b == '_' || b == ':' || b == '$'
}

// isNameChar returns true if the byte can continue a tag or attribute name.
func isNameChar(b byte) bool {
	return isNameStart(b) || isDigit(b) || b == '-' || b == '.'
}

// isLetter returns true if the byte is an ASCII letter.
func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isDigit returns true if the byte is an ASCII digit.
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
