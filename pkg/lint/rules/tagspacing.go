package rules

import (
	"bytes"
	"fmt"

	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/fix"
	"github.com/yaklabco/taglint/pkg/lint"
	"github.com/yaklabco/taglint/pkg/syntax"
)

// Policy values accepted by the tag-spacing boundary options.
const (
	PolicyAlways         = "always"
	PolicyNever          = "never"
	PolicyAllow          = "allow"
	PolicyAllowMultiline = "allow-multiline"
)

// Option keys for the four independent boundaries.
const (
	OptionClosingSlash      = "closing_slash"
	OptionBeforeSelfClosing = "before_self_closing"
	OptionAfterOpening      = "after_opening"
	OptionBeforeClosing     = "before_closing"
)

// Diagnostic messages, one per boundary and direction.
const (
	msgSelfCloseSlashForbidden  = "Whitespace is forbidden between `/` and `>`; write `/>`"
	msgSelfCloseSlashRequired   = "Whitespace is required between `/` and `>`; write `/ >`"
	msgCloseSlashForbidden      = "Whitespace is forbidden between `<` and `/`; write `</`"
	msgCloseSlashRequired       = "Whitespace is required between `<` and `/`; write `< /`"
	msgBeforeSelfCloseForbidden = "A space is forbidden before self-closing bracket"
	msgBeforeSelfCloseRequired  = "A space is required before self-closing bracket"
	msgAfterOpenForbidden       = "A space is forbidden after opening bracket"
	msgAfterOpenRequired        = "A space is required after opening bracket"
	msgBeforeCloseForbidden     = "Whitespace is forbidden before closing bracket"
	msgBeforeCloseRequired      = "Whitespace is required before closing bracket"
)

// TagSpacingRule validates whitespace placement around tag delimiters:
// the slash of closing and self-closing tags, the gap after the opening
// bracket, the gap before a self-closing slash, and the gap before the
// closing bracket.
type TagSpacingRule struct {
	lint.BaseRule
}

// NewTagSpacingRule creates a new tag spacing rule.
func NewTagSpacingRule() *TagSpacingRule {
	return &TagSpacingRule{
		BaseRule: lint.NewBaseRule(
			"TS001",
			"tag-spacing",
			"Whitespace around tag delimiters should follow the configured policies",
			[]string{"whitespace", "tags"},
			true,
		),
	}
}

// policies holds the four resolved boundary policies for one rule run.
type policies struct {
	closingSlash      string
	beforeSelfClosing string
	afterOpening      string
	beforeClosing     string
}

// anyActive returns true when at least one boundary is checked.
func (p policies) anyActive() bool {
	return p.closingSlash != PolicyAllow ||
		p.beforeSelfClosing != PolicyAllow ||
		p.afterOpening != PolicyAllow ||
		p.beforeClosing != PolicyAllow
}

// resolvePolicies reads and validates the four boundary options.
// A value outside the allowed enums, or of the wrong type entirely, is a
// configuration error: it is returned before any traversal begins, never
// silently coerced.
func resolvePolicies(ctx *lint.RuleContext) (policies, error) {
	readPolicy := func(option string, multilineAllowed bool) (string, error) {
		raw := ctx.Option(option, PolicyAllow)
		value, ok := raw.(string)
		if !ok {
			return "", fmt.Errorf("%w: option %s must be a string, got %T", lint.ErrRuleConfig, option, raw)
		}
		if err := validatePolicy(option, value, multilineAllowed); err != nil {
			return "", err
		}
		return value, nil
	}

	var p policies
	var err error

	if p.closingSlash, err = readPolicy(OptionClosingSlash, false); err != nil {
		return policies{}, err
	}
	if p.beforeSelfClosing, err = readPolicy(OptionBeforeSelfClosing, false); err != nil {
		return policies{}, err
	}
	if p.afterOpening, err = readPolicy(OptionAfterOpening, true); err != nil {
		return policies{}, err
	}
	if p.beforeClosing, err = readPolicy(OptionBeforeClosing, false); err != nil {
		return policies{}, err
	}

	return p, nil
}

func validatePolicy(option, value string, multilineAllowed bool) error {
	switch value {
	case PolicyAlways, PolicyNever, PolicyAllow:
		return nil
	case PolicyAllowMultiline:
		if multilineAllowed {
			return nil
		}
	}
	allowed := `"always", "never", "allow"`
	if multilineAllowed {
		allowed += `, "allow-multiline"`
	}
	return fmt.Errorf("%w: invalid %s policy %q: must be one of %s", lint.ErrRuleConfig, option, value, allowed)
}

// Apply walks the tree and checks every tag node against the active policies.
func (r *TagSpacingRule) Apply(ctx *lint.RuleContext) ([]lint.Diagnostic, error) {
	if ctx.Root == nil {
		return nil, nil
	}

	pol, err := resolvePolicies(ctx)
	if err != nil {
		return nil, err
	}
	if !pol.anyActive() {
		return nil, nil
	}

	var diags []lint.Diagnostic

	walkErr := syntax.WalkTags(ctx.Root, func(n *syntax.Node) error {
		if ctx.Cancelled() {
			return fmt.Errorf("rule cancelled: %w", ctx.Ctx.Err())
		}

		tag, err := syntax.ResolveTag(n)
		if err != nil {
			return fmt.Errorf("resolve tag at offset %d: %w", n.SourceRange().StartOffset, err)
		}

		diags = append(diags, r.checkTag(ctx, tag, pol)...)
		return nil
	})
	if walkErr != nil {
		return diags, walkErr
	}

	return diags, nil
}

// checkTag dispatches one tag node to the boundary checks its kind has.
// One tag can produce up to four independent diagnostics.
func (r *TagSpacingRule) checkTag(ctx *lint.RuleContext, tag *syntax.Tag, pol policies) []lint.Diagnostic {
	var diags []lint.Diagnostic

	appendDiag := func(d *lint.Diagnostic) {
		if d != nil {
			diags = append(diags, *d)
		}
	}

	switch tag.Kind {
	case syntax.NodeSelfClosingTag:
		if pol.closingSlash != PolicyAllow {
			appendDiag(r.checkClosingSlash(ctx, tag, pol.closingSlash))
		}
		if pol.afterOpening != PolicyAllow {
			appendDiag(r.checkAfterOpening(ctx, tag, pol.afterOpening))
		}
		if pol.beforeSelfClosing != PolicyAllow {
			appendDiag(r.checkBeforeSelfClosing(ctx, tag, pol.beforeSelfClosing))
		}

	case syntax.NodeOpeningTag:
		if pol.afterOpening != PolicyAllow {
			appendDiag(r.checkAfterOpening(ctx, tag, pol.afterOpening))
		}
		if pol.beforeClosing != PolicyAllow {
			appendDiag(r.checkBeforeClosing(ctx, tag, pol.beforeClosing))
		}

	case syntax.NodeClosingTag:
		if pol.afterOpening != PolicyAllow {
			appendDiag(r.checkAfterOpening(ctx, tag, pol.afterOpening))
		}
		if pol.closingSlash != PolicyAllow {
			appendDiag(r.checkClosingSlash(ctx, tag, pol.closingSlash))
		}
		if pol.beforeClosing != PolicyAllow {
			appendDiag(r.checkBeforeClosing(ctx, tag, pol.beforeClosing))
		}
	}

	return diags
}

// checkClosingSlash validates the '/'-'>' pair of self-closing tags and the
// '<'-'/' pair of closing tags.
func (r *TagSpacingRule) checkClosingSlash(ctx *lint.RuleContext, tag *syntax.Tag, policy string) *lint.Diagnostic {
	adj, ok := tag.ClosingSlashAdjacency()
	if !ok {
		return nil
	}

	forbidden, required := msgSelfCloseSlashForbidden, msgSelfCloseSlashRequired
	if tag.Kind == syntax.NodeClosingTag {
		forbidden, required = msgCloseSlashForbidden, msgCloseSlashRequired
	}

	return r.checkBoundary(ctx, tag, adj, policy, forbidden, required)
}

// checkBeforeSelfClosing validates the gap before the '/' of a self-closing
// tag. The earlier token is the last attribute, or the tag name when the tag
// has no attributes.
func (r *TagSpacingRule) checkBeforeSelfClosing(ctx *lint.RuleContext, tag *syntax.Tag, policy string) *lint.Diagnostic {
	adj, ok := tag.BeforeSelfClosingAdjacency()
	if !ok {
		return nil
	}
	return r.checkBoundary(ctx, tag, adj, policy, msgBeforeSelfCloseForbidden, msgBeforeSelfCloseRequired)
}

// checkBeforeClosing validates the gap before the '>' of opening and
// closing tags.
func (r *TagSpacingRule) checkBeforeClosing(ctx *lint.RuleContext, tag *syntax.Tag, policy string) *lint.Diagnostic {
	adj, ok := tag.BeforeClosingAdjacency()
	if !ok {
		return nil
	}
	return r.checkBoundary(ctx, tag, adj, policy, msgBeforeCloseForbidden, msgBeforeCloseRequired)
}

// checkAfterOpening validates the gap right after the tag opens. It is the
// only boundary with the allow-multiline policy, which accepts a lone line
// break in addition to the compliant no-gap and single-space states.
func (r *TagSpacingRule) checkAfterOpening(ctx *lint.RuleContext, tag *syntax.Tag, policy string) *lint.Diagnostic {
	adj := tag.AfterOpeningAdjacency()

	if policy != PolicyAllowMultiline {
		return r.checkBoundary(ctx, tag, adj, policy, msgAfterOpenForbidden, msgAfterOpenRequired)
	}

	if multilineCompliant(adj) {
		return nil
	}
	return r.report(ctx, tag, msgAfterOpenForbidden, normalizeGapEdit(adj))
}

// checkBoundary applies a never/always policy to one adjacency.
//
// never: any gap is a violation; the fix deletes the full trivia span so
// reapplying the check afterwards finds nothing.
// always: a missing gap is a violation; the fix inserts exactly one space
// immediately after the earlier token.
func (r *TagSpacingRule) checkBoundary(
	ctx *lint.RuleContext,
	tag *syntax.Tag,
	adj syntax.Adjacency,
	policy string,
	msgForbidden, msgRequired string,
) *lint.Diagnostic {
	gap := adj.Gap()

	switch policy {
	case PolicyNever:
		if !gap.HasWhitespace {
			return nil
		}
		edit := fix.Delete(gap.Start, gap.End)
		return r.report(ctx, tag, msgForbidden, &edit)

	case PolicyAlways:
		if gap.HasWhitespace {
			return nil
		}
		edit := fix.Insert(adj.Earlier.EndOffset, " ")
		return r.report(ctx, tag, msgRequired, &edit)

	default:
		return nil
	}
}

// multilineCompliant reports whether a gap satisfies allow-multiline:
// no gap, exactly one space, or exactly one line break with no other
// whitespace.
func multilineCompliant(adj syntax.Adjacency) bool {
	if !adj.Gap().HasWhitespace {
		return true
	}
	return adj.IsSingleSpace() || adj.IsSingleNewline()
}

// normalizeGapEdit synthesizes the single-edit normalization for a gap that
// violates allow-multiline, when a safe one exists:
//   - a gap containing a line break collapses to a single newline,
//   - a gap of only spaces collapses to a single space.
//
// Gaps containing tabs have no unambiguous normalization and get no fix.
func normalizeGapEdit(adj syntax.Adjacency) *fix.TextEdit {
	gap := adj.Gap()
	if gap.HasLineBreak {
		edit := fix.Replace(gap.Start, gap.End, "\n")
		return &edit
	}
	if !bytes.ContainsAny(adj.Trivia(), "\t") {
		edit := fix.Replace(gap.Start, gap.End, " ")
		return &edit
	}
	return nil
}

// report builds a diagnostic pinned to the tag's start position with
// length 1, attaching the fix edit when one exists.
func (r *TagSpacingRule) report(ctx *lint.RuleContext, tag *syntax.Tag, message string, edit *fix.TextEdit) *lint.Diagnostic {
	start := tag.Node().SourceRange().StartOffset
	line, col := ctx.File.LineAt(start)

	pos := syntax.SourcePosition{
		StartLine:   line,
		StartColumn: col,
		EndLine:     line,
		EndColumn:   col + 1,
	}

	builder := lint.NewDiagnosticAt(r.ID(), ctx.File.Path, pos, message).
		WithSeverity(config.SeverityWarning)
	if edit != nil {
		builder = builder.WithEdit(*edit)
	}

	diag := builder.Build()
	return &diag
}
