package lint

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/fix"
	"github.com/yaklabco/taglint/pkg/syntax"
)

// ErrRuleConfig marks rule failures caused by invalid rule configuration,
// such as an option value outside its allowed enum. The engine treats these
// as fatal for the file instead of recording them in FileResult.RuleErrors:
// a misconfigured rule must never be mistaken for a clean run.
var ErrRuleConfig = errors.New("invalid rule configuration")

// FileResult contains the results of linting a single file.
type FileResult struct {
	// File is the parsed file.
	File *syntax.File

	// Diagnostics contains all issues found, ordered by source position.
	Diagnostics []Diagnostic

	// Edits contains validated, sorted edits for auto-fix.
	// Empty if no fixes are available or fix mode was not requested.
	Edits []fix.TextEdit

	// SkippedEdits contains edits that were skipped due to conflicts.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true if any edits were skipped due to conflicts.
	EditConflicts bool

	// RuleErrors contains any errors from rule execution, keyed by rule ID.
	RuleErrors map[string]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// IssueCount returns the total number of diagnostics.
func (fr *FileResult) IssueCount() int {
	return len(fr.Diagnostics)
}

// FixableCount returns the number of diagnostics with fixes.
func (fr *FileResult) FixableCount() int {
	count := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			count++
		}
	}
	return count
}

// Engine coordinates parsing and rule execution for linting.
type Engine struct {
	// Parser parses markup files into syntax.File values.
	Parser Parser

	// Registry holds all available rules.
	Registry *Registry
}

// NewEngine creates a new Engine with the given parser and registry.
func NewEngine(parser Parser, registry *Registry) *Engine {
	return &Engine{
		Parser:   parser,
		Registry: registry,
	}
}

// LintFile parses and lints a single file's content.
func (e *Engine) LintFile(
	ctx context.Context,
	path string,
	content []byte,
	cfg *config.Config,
) (*FileResult, error) {
	file, err := e.Parser.Parse(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		File:       file,
		RuleErrors: make(map[string]error),
	}

	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, file, cfg, rr.Config)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			if errors.Is(err, ErrRuleConfig) {
				return nil, fmt.Errorf("rule %s: %w", rr.Rule.ID(), err)
			}
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity
			if diags[i].RuleName == "" {
				diags[i].RuleName = rr.Rule.Name()
			}
			if rr.AutoFix {
				allEdits = append(allEdits, diags[i].FixEdits...)
			}
		}
		result.Diagnostics = append(result.Diagnostics, diags...)
	}

	sortDiagnostics(result.Diagnostics)

	if len(allEdits) > 0 {
		accepted, skipped, _, err := fix.PrepareEditsFiltered(allEdits, len(content))
		if err != nil {
			return nil, fmt.Errorf("prepare edits: %w", err)
		}
		result.Edits = accepted
		result.SkippedEdits = skipped
		result.EditConflicts = len(skipped) > 0
	}

	return result, nil
}

// sortDiagnostics orders diagnostics by position, then rule ID, so output
// is deterministic regardless of rule execution order.
func sortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].StartLine != diags[j].StartLine {
			return diags[i].StartLine < diags[j].StartLine
		}
		if diags[i].StartColumn != diags[j].StartColumn {
			return diags[i].StartColumn < diags[j].StartColumn
		}
		return diags[i].RuleID < diags[j].RuleID
	})
}
