// Package langdetect provides markup dialect detection for file content.
// It uses go-enry plus a few high-signal patterns to decide whether a file
// is angle-bracket markup worth linting, primarily for files whose
// extension is not in the configured set.
package langdetect

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Dialect constants for the markup families the scanner understands.
const (
	DialectHTML    = "html"
	DialectXML     = "xml"
	DialectJSX     = "jsx"
	DialectVue     = "vue"
	DialectSvelte  = "svelte"
	DialectUnknown = ""
)

// markupLanguages maps go-enry language names onto dialects.
var markupLanguages = map[string]string{
	"HTML":        DialectHTML,
	"XML":         DialectXML,
	"SVG":         DialectXML,
	"JSX":         DialectJSX,
	"TSX":         DialectJSX,
	"JavaScript":  DialectJSX,
	"TypeScript":  DialectJSX,
	"Vue":         DialectVue,
	"Svelte":      DialectSvelte,
	"HTML+ERB":    DialectHTML,
	"HTML+Razor":  DialectHTML,
	"HTML+Django": DialectHTML,
	"HTML+PHP":    DialectHTML,
}

// Detect returns the markup dialect for a file, or DialectUnknown when the
// file does not look like angle-bracket markup.
//
// Detection strategy:
//  1. Extension lookup via go-enry (most reliable for known extensions).
//  2. Content classification via go-enry for ambiguous extensions.
//  3. High-signal content patterns (doctype, XML declaration, tag density).
func Detect(path string, content []byte) string {
	langs := enry.GetLanguagesByExtension(path, content, nil)
	for _, lang := range langs {
		if d, ok := markupLanguages[lang]; ok {
			// Script languages only count when the content carries tags.
			if d == DialectJSX && !hasTagContent(content) {
				continue
			}
			return d
		}
	}

	if len(content) == 0 {
		return DialectUnknown
	}

	if d := detectByPattern(content); d != DialectUnknown {
		return d
	}

	return DialectUnknown
}

// IsMarkup reports whether the file should be linted as markup.
func IsMarkup(path string, content []byte) bool {
	return Detect(path, content) != DialectUnknown
}

// MarkupExtensions returns the default set of file extensions treated as
// markup without content inspection. Extensions include the leading dot.
func MarkupExtensions() []string {
	return []string{
		".html", ".htm", ".xhtml",
		".xml", ".svg",
		".jsx", ".tsx",
		".vue", ".svelte",
	}
}

// HasMarkupExtension reports whether the path carries one of the default
// markup extensions.
func HasMarkupExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, known := range MarkupExtensions() {
		if ext == known {
			return true
		}
	}
	return false
}

// detectByPattern checks for content patterns that are highly indicative
// of a markup dialect.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)

	if d := detectXMLDeclaration(trimmed); d != DialectUnknown {
		return d
	}
	if d := detectHTML(trimmed); d != DialectUnknown {
		return d
	}
	if d := detectByTagDensity(content); d != DialectUnknown {
		return d
	}

	return DialectUnknown
}

// detectXMLDeclaration checks for an XML declaration or processing
// instruction at the start of the content.
func detectXMLDeclaration(trimmed []byte) string {
	if bytes.HasPrefix(trimmed, []byte("<?xml")) {
		return DialectXML
	}
	return DialectUnknown
}

// detectHTML checks for HTML document markers.
func detectHTML(trimmed []byte) string {
	lowerTrimmed := bytes.ToLower(trimmed)
	if bytes.Contains(lowerTrimmed, []byte("<!doctype html")) ||
		bytes.Contains(lowerTrimmed, []byte("<html")) ||
		bytes.Contains(lowerTrimmed, []byte("<head>")) ||
		bytes.Contains(lowerTrimmed, []byte("<body>")) {
		return DialectHTML
	}
	return DialectUnknown
}

// detectByTagDensity counts lines whose first significant character opens
// a tag. Content where a meaningful share of lines start with tags is
// treated as generic XML-ish markup.
func detectByTagDensity(content []byte) string {
	lines := bytes.Split(content, []byte("\n"))
	nonEmpty := 0
	tagLines := 0

	for _, line := range lines {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		nonEmpty++
		if line[0] == '<' && bytes.ContainsRune(line, '>') {
			tagLines++
		}
	}

	if nonEmpty >= 2 && tagLines*2 >= nonEmpty {
		return DialectXML
	}
	return DialectUnknown
}

// hasTagContent reports whether the content contains at least one
// tag-shaped span. Plain scripts without markup are skipped.
func hasTagContent(content []byte) bool {
	open := bytes.IndexByte(content, '<')
	if open < 0 {
		return false
	}
	return bytes.IndexByte(content[open:], '>') > 0
}
