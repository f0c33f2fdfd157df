package lint

import (
	"context"

	"github.com/yaklabco/taglint/pkg/syntax"
)

// Parser parses markup content into a syntax.File.
//
// The lint package defines this interface in the consumer package; the
// concrete implementation lives in parser/tagscan. The engine is a pure
// function of (tree, options) and never parses on its own.
//
// Implementations must be:
//   - deterministic for a given (path, content) pair,
//   - side-effect free (no I/O, no global state mutation),
//   - safe for concurrent use by multiple goroutines.
type Parser interface {
	// Parse converts raw markup bytes into a fully-populated File.
	//
	// The returned File must satisfy:
	//   - file.Path == path
	//   - bytes.Equal(file.Content, content)
	//   - syntax.ValidateTokens(file.Tokens, len(file.Content)) == true
	//   - file.Root != nil && file.Root.Kind == syntax.NodeDocument
	//   - all nodes have node.File == file
	Parse(ctx context.Context, path string, content []byte) (*syntax.File, error)
}
