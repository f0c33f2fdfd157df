package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/taglint/internal/ui/pretty"
	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/lint"
)

func plainStyles() *pretty.Styles {
	return pretty.NewStyles(false)
}

func sampleDiagnostic() *lint.Diagnostic {
	return &lint.Diagnostic{
		RuleID:      "TS001",
		RuleName:    "tag-spacing",
		Message:     "unexpected whitespace between `/` and `>`",
		Severity:    config.SeverityWarning,
		FilePath:    "page.html",
		StartLine:   2,
		StartColumn: 3,
		EndLine:     2,
		EndColumn:   4,
	}
}

func TestFormatDiagnostic(t *testing.T) {
	s := plainStyles()

	out := s.FormatDiagnostic(sampleDiagnostic(), false, "")

	assert.Contains(t, out, "page.html:2:3")
	assert.Contains(t, out, "warning")
	assert.Contains(t, out, "unexpected whitespace")
	assert.Contains(t, out, "(tag-spacing)", "display prefers the rule name")
}

func TestFormatDiagnostic_FallsBackToRuleID(t *testing.T) {
	s := plainStyles()
	diag := sampleDiagnostic()
	diag.RuleName = ""

	out := s.FormatDiagnostic(diag, false, "")
	assert.Contains(t, out, "(TS001)")
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	s := plainStyles()

	out := s.FormatDiagnostic(sampleDiagnostic(), true, "  <br/ >")
	assert.Contains(t, out, "  <br/ >")
	assert.Contains(t, out, "^")
}

func TestFormatDiagnostic_WithSuggestion(t *testing.T) {
	s := plainStyles()
	diag := sampleDiagnostic()
	diag.Suggestion = "remove the space"

	out := s.FormatDiagnostic(diag, false, "")
	assert.Contains(t, out, "Suggestion: remove the space")
}

func TestFormatSeverity(t *testing.T) {
	s := plainStyles()

	assert.Equal(t, "error", s.FormatSeverity(config.SeverityError))
	assert.Equal(t, "warning", s.FormatSeverity(config.SeverityWarning))
	assert.Equal(t, "info", s.FormatSeverity(config.SeverityInfo))
	assert.Equal(t, "custom", s.FormatSeverity(config.Severity("custom")))
}

func TestFormatSourceContext(t *testing.T) {
	s := plainStyles()

	t.Run("caret aligned to column", func(t *testing.T) {
		out := s.FormatSourceContext("<br/ >", 5)
		assert.Equal(t, "        <br/ >\n            ^\n", out)
	})

	t.Run("caret omitted past line end", func(t *testing.T) {
		out := s.FormatSourceContext("<br>", 99)
		assert.Equal(t, "        <br>\n", out)
	})

	t.Run("caret omitted for zero column", func(t *testing.T) {
		out := s.FormatSourceContext("<br>", 0)
		assert.NotContains(t, out, "^")
	})
}

func TestFormatFileHeader(t *testing.T) {
	s := plainStyles()

	assert.Equal(t, "page.html (3 issues)", s.FormatFileHeader("page.html", 3))
	assert.Equal(t, "page.html", s.FormatFileHeader("page.html", 0))
}
