// Package tagscan provides a Parser implementation using a hand-rolled
// single-pass scanner. Markup dialects with angle-bracket tags (HTML, XML,
// JSX-like templates) share the tag shapes the linter cares about, so one
// permissive scanner covers them all without a per-dialect grammar.
package tagscan

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/taglint/pkg/syntax"
)

// Parser implements lint.Parser using the tagscan tokenizer.
type Parser struct{}

// New creates a new tagscan-based parser.
func New() *Parser {
	return &Parser{}
}

// Parse converts raw markup bytes into a fully-populated syntax.File.
//
// The method:
//  1. Checks for context cancellation.
//  2. Builds a File shell with path, content, and lines.
//  3. Tokenizes the content.
//  4. Builds the node tree from the token stream.
//  5. Validates the token stream.
//
// Returns nil and an error if parsing fails or context is cancelled.
func (p *Parser) Parse(ctx context.Context, path string, content []byte) (*syntax.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("parse cancelled: %w", err)
	}

	file := syntax.NewFile(path, copyContent(content))
	file.Tokens = Tokenize(file.Content)

	if !syntax.ValidateTokens(file.Tokens, len(file.Content)) {
		return nil, errors.New("invalid token stream: tokens do not cover content")
	}

	file.Root = buildTree(file)

	return file, nil
}

// buildTree constructs the node tree from the file's token stream.
//
// Opening tags push onto an element stack and collect subsequent nodes as
// children. A closing tag attaches as the last child of the opening tag it
// matches by name, implicitly closing any unclosed elements between them.
// A closing tag with no matching open element attaches where it appears.
// Runs of non-tag tokens between tags coalesce into text nodes.
func buildTree(file *syntax.File) *syntax.Node {
	root := &syntax.Node{
		Kind:       syntax.NodeDocument,
		FirstToken: -1,
		LastToken:  -1,
		File:       file,
	}
	if len(file.Tokens) > 0 {
		root.FirstToken = 0
		root.LastToken = len(file.Tokens) - 1
	}

	stack := []*syntax.Node{root}
	top := func() *syntax.Node { return stack[len(stack)-1] }

	textStart := -1
	flushText := func(end int) {
		if textStart < 0 {
			return
		}
		top().AppendChild(&syntax.Node{
			Kind:       syntax.NodeText,
			FirstToken: textStart,
			LastToken:  end,
			File:       file,
		})
		textStart = -1
	}

	for i := 0; i < len(file.Tokens); i++ {
		if file.Tokens[i].Kind != syntax.TokOpenBracket {
			if textStart < 0 {
				textStart = i
			}
			continue
		}

		flushText(i - 1)

		end := closeBracketIndex(file.Tokens, i)
		kind := classifyTag(file, i, end)

		node := &syntax.Node{
			Kind:       kind,
			FirstToken: i,
			LastToken:  end,
			File:       file,
		}

		switch kind {
		case syntax.NodeOpeningTag:
			top().AppendChild(node)
			stack = append(stack, node)

		case syntax.NodeClosingTag:
			if idx := matchingOpenIndex(file, stack, node); idx > 0 {
				// Unclosed elements between the match and the top of the
				// stack are implicitly closed.
				stack = stack[:idx+1]
				top().AppendChild(node)
				stack = stack[:idx]
			} else {
				top().AppendChild(node)
			}

		default:
			top().AppendChild(node)
		}

		i = end
	}

	flushText(len(file.Tokens) - 1)

	return root
}

// closeBracketIndex returns the index of the TokCloseBracket ending the tag
// whose TokOpenBracket sits at start. The tokenizer only emits
// TokOpenBracket for complete tags, so the search always succeeds.
func closeBracketIndex(tokens []syntax.Token, start int) int {
	for i := start + 1; i < len(tokens); i++ {
		if tokens[i].Kind == syntax.TokCloseBracket {
			return i
		}
	}
	return len(tokens) - 1
}

// classifyTag decides the tag kind from the significant tokens in
// [start, end]. A slash right after '<' makes a closing tag; otherwise a
// slash right before '>' makes a self-closing tag; anything else is an
// opening tag.
func classifyTag(file *syntax.File, start, end int) syntax.NodeKind {
	first := nextSignificant(file.Tokens, start+1, end)
	if first >= 0 && file.Tokens[first].Kind == syntax.TokSlash {
		return syntax.NodeClosingTag
	}

	last := prevSignificant(file.Tokens, end-1, start)
	if last >= 0 && file.Tokens[last].Kind == syntax.TokSlash {
		return syntax.NodeSelfClosingTag
	}

	return syntax.NodeOpeningTag
}

// matchingOpenIndex finds the stack index of the opening tag the given
// closing tag matches by name, searching from the top down. Returns -1 when
// no open element matches. Index 0 is the document root and never matches.
func matchingOpenIndex(file *syntax.File, stack []*syntax.Node, closing *syntax.Node) int {
	name := tagName(file, closing)

	for i := len(stack) - 1; i > 0; i-- {
		if tagName(file, stack[i]) == name {
			return i
		}
	}
	return -1
}

// tagName extracts the tag name from a tag node's token span, or "" for
// fragments.
func tagName(file *syntax.File, n *syntax.Node) string {
	for i := n.FirstToken; i <= n.LastToken; i++ {
		tok := file.Tokens[i]
		if tok.Kind == syntax.TokName {
			return string(tok.Text(file.Content))
		}
		if tok.Kind == syntax.TokEquals || tok.Kind == syntax.TokString {
			break
		}
	}
	return ""
}

// nextSignificant returns the index of the first non-trivia token in
// [from, limit), or -1.
func nextSignificant(tokens []syntax.Token, from, limit int) int {
	for i := from; i < limit; i++ {
		if !tokens[i].Kind.IsTrivia() {
			return i
		}
	}
	return -1
}

// prevSignificant returns the index of the last non-trivia token in
// (limit, from] scanning backward, or -1.
func prevSignificant(tokens []syntax.Token, from, limit int) int {
	for i := from; i > limit; i-- {
		if !tokens[i].Kind.IsTrivia() {
			return i
		}
	}
	return -1
}

// copyContent creates a copy of the content slice to ensure immutability.
func copyContent(content []byte) []byte {
	if content == nil {
		return nil
	}
	cp := make([]byte, len(content))
	copy(cp, content)
	return cp
}
