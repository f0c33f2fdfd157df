package syntax

import (
	"errors"
	"fmt"
)

// ErrMalformedTag indicates a tag node whose token span does not have the
// delimiter structure its kind requires. This is a defect in the upstream
// tree, not a style violation, and callers should fail loudly rather than
// guess an adjacency from insufficient tokens.
var ErrMalformedTag = errors.New("malformed tag")

// Tag is a resolved view of a tag node with named token accessors.
// It is computed once per node so that boundary checks never perform raw
// index arithmetic against asymmetric tag shapes (no attributes vs. many).
type Tag struct {
	// Kind mirrors the node kind as a closed tag classification.
	Kind NodeKind

	node *Node

	// Indices into node.File.Tokens for the significant tokens of the tag.
	open        int // '<'
	slash       int // '/', or -1 for plain opening tags
	closeBrk    int // '>'
	name        int // tag name, or -1 for fragments like <> and </>
	lastContent int // last significant token before the trailing delimiter(s)
}

// ResolveTag computes the token shape for a tag node.
// It returns ErrMalformedTag (wrapped) when the node's tokens do not form
// a structurally valid tag of its kind.
func ResolveTag(n *Node) (*Tag, error) {
	if n == nil || n.File == nil {
		return nil, fmt.Errorf("%w: node has no file", ErrMalformedTag)
	}
	if !n.IsTag() {
		return nil, fmt.Errorf("%w: node kind %d is not a tag", ErrMalformedTag, n.Kind)
	}

	sig := significantTokens(n)
	if len(sig) < 2 {
		return nil, fmt.Errorf("%w: tag has %d significant tokens, need at least 2", ErrMalformedTag, len(sig))
	}

	tokens := n.File.Tokens
	first := sig[0]
	last := sig[len(sig)-1]
	if tokens[first].Kind != TokOpenBracket {
		return nil, fmt.Errorf("%w: tag does not start with '<'", ErrMalformedTag)
	}
	if tokens[last].Kind != TokCloseBracket {
		return nil, fmt.Errorf("%w: tag does not end with '>'", ErrMalformedTag)
	}

	tag := &Tag{
		Kind:     n.Kind,
		node:     n,
		open:     first,
		slash:    -1,
		closeBrk: last,
		name:     -1,
	}

	switch n.Kind {
	case NodeClosingTag:
		// Shape: '<' '/' [name] '>'.
		if len(sig) < 3 || tokens[sig[1]].Kind != TokSlash {
			return nil, fmt.Errorf("%w: closing tag missing '/'", ErrMalformedTag)
		}
		tag.slash = sig[1]
		if len(sig) > 3 && tokens[sig[2]].Kind == TokName {
			tag.name = sig[2]
		}
		tag.lastContent = sig[len(sig)-2]

	case NodeSelfClosingTag:
		// Shape: '<' [name attrs...] '/' '>'.
		if len(sig) < 3 || tokens[sig[len(sig)-2]].Kind != TokSlash {
			return nil, fmt.Errorf("%w: self-closing tag missing '/' before '>'", ErrMalformedTag)
		}
		tag.slash = sig[len(sig)-2]
		if len(sig) > 3 && tokens[sig[1]].Kind == TokName {
			tag.name = sig[1]
		}
		// Token before the slash: the last attribute, or the tag name when
		// there are no attributes, or '<' for a bare fragment.
		tag.lastContent = sig[len(sig)-3]

	case NodeOpeningTag:
		// Shape: '<' [name attrs...] '>'.
		if len(sig) > 2 && tokens[sig[1]].Kind == TokName {
			tag.name = sig[1]
		}
		tag.lastContent = sig[len(sig)-2]

	default:
		return nil, fmt.Errorf("%w: unhandled tag kind %d", ErrMalformedTag, n.Kind)
	}

	return tag, nil
}

// significantTokens returns the indices of all non-trivia tokens in the
// node's token span.
func significantTokens(n *Node) []int {
	if n.FirstToken < 0 || n.LastToken < 0 || n.LastToken >= len(n.File.Tokens) {
		return nil
	}
	var sig []int
	for i := n.FirstToken; i <= n.LastToken; i++ {
		if !n.File.Tokens[i].Kind.IsTrivia() {
			sig = append(sig, i)
		}
	}
	return sig
}

// Node returns the underlying tree node.
func (t *Tag) Node() *Node {
	return t.node
}

// OpenBracket returns the '<' token.
func (t *Tag) OpenBracket() Token {
	return t.node.File.Tokens[t.open]
}

// CloseBracket returns the '>' token.
func (t *Tag) CloseBracket() Token {
	return t.node.File.Tokens[t.closeBrk]
}

// SlashToken returns the '/' token and true when the tag has one
// (self-closing and closing tags).
func (t *Tag) SlashToken() (Token, bool) {
	if t.slash < 0 {
		return Token{}, false
	}
	return t.node.File.Tokens[t.slash], true
}

// NameToken returns the tag-name token and true when the tag is named.
// Fragments (<>, </>) have no name.
func (t *Tag) NameToken() (Token, bool) {
	if t.name < 0 {
		return Token{}, false
	}
	return t.node.File.Tokens[t.name], true
}

// Name returns the tag name as a string, or "" for fragments.
func (t *Tag) Name() string {
	tok, ok := t.NameToken()
	if !ok {
		return ""
	}
	return string(tok.Text(t.node.File.Content))
}

// LastContentToken returns the last significant token before the tag's
// trailing delimiters: the final attribute, the tag name when there are no
// attributes, or the opening bracket for fragments.
func (t *Tag) LastContentToken() Token {
	return t.node.File.Tokens[t.lastContent]
}

// ClosingSlashAdjacency returns the token pair governed by the
// closing-slash boundary: ('/', '>') for self-closing tags and ('<', '/')
// for closing tags. The second return is false for plain opening tags,
// which have no such boundary.
func (t *Tag) ClosingSlashAdjacency() (Adjacency, bool) {
	switch t.Kind {
	case NodeSelfClosingTag:
		return t.adjacency(t.slash, t.closeBrk), true
	case NodeClosingTag:
		return t.adjacency(t.open, t.slash), true
	default:
		return Adjacency{}, false
	}
}

// AfterOpeningAdjacency returns the token pair right after the tag opens:
// ('<', next significant token) for opening and self-closing tags, and
// ('/', next significant token) for closing tags.
func (t *Tag) AfterOpeningAdjacency() Adjacency {
	earlier := t.open
	if t.Kind == NodeClosingTag {
		earlier = t.slash
	}
	later := t.name
	if later < 0 {
		later = t.nextSignificantAfter(earlier)
	}
	return t.adjacency(earlier, later)
}

// BeforeSelfClosingAdjacency returns the token pair before the '/' of a
// self-closing tag. The second return is false for other tag kinds.
func (t *Tag) BeforeSelfClosingAdjacency() (Adjacency, bool) {
	if t.Kind != NodeSelfClosingTag {
		return Adjacency{}, false
	}
	return t.adjacency(t.lastContent, t.slash), true
}

// BeforeClosingAdjacency returns the token pair before the tag's '>'.
// The second return is false for self-closing tags, whose trailing pair
// belongs to the closing-slash boundary.
func (t *Tag) BeforeClosingAdjacency() (Adjacency, bool) {
	if t.Kind == NodeSelfClosingTag {
		return Adjacency{}, false
	}
	return t.adjacency(t.lastContent, t.closeBrk), true
}

func (t *Tag) adjacency(earlier, later int) Adjacency {
	return Adjacency{
		Earlier: t.node.File.Tokens[earlier],
		Later:   t.node.File.Tokens[later],
		file:    t.node.File,
	}
}

func (t *Tag) nextSignificantAfter(idx int) int {
	tokens := t.node.File.Tokens
	for i := idx + 1; i <= t.node.LastToken; i++ {
		if !tokens[i].Kind.IsTrivia() {
			return i
		}
	}
	// ResolveTag guarantees a trailing '>', so this is unreachable for
	// well-formed tags; fall back to the close bracket.
	return t.closeBrk
}
