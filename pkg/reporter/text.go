package reporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"golang.org/x/term"

	"github.com/yaklabco/taglint/internal/ui/pretty"
	"github.com/yaklabco/taglint/pkg/runner"
	"github.com/yaklabco/taglint/pkg/syntax"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts      Options
	styles    *pretty.Styles
	termWidth int
	bw        *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:      opts,
		styles:    pretty.NewStyles(colorEnabled),
		termWidth: getTerminalWidth(opts.Writer),
		bw:        bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Success.Render("No files to check."))
		}
		return 0, nil
	}

	var totalIssues int

	if r.opts.GroupByFile {
		totalIssues = r.reportGrouped(ctx, result)
	} else {
		totalIssues = r.reportFlat(ctx, result)
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats))
	}

	return totalIssues, nil
}

// reportGrouped writes diagnostics grouped by file.
func (r *TextReporter) reportGrouped(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		path := displayPath(file.Path, r.opts.WorkingDir)

		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(path),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		r.writeRuleErrors(path, file.Result.RuleErrors)

		diagnostics := file.Result.Diagnostics
		if len(diagnostics) == 0 {
			continue
		}

		// File header
		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, len(diagnostics)))

		for _, diag := range diagnostics {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = r.getSourceLine(file.Result.File, diag.StartLine)
			}

			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine))
			total++
		}

		// Blank line between files
		fmt.Fprintln(r.bw)
	}

	return total
}

// reportFlat writes diagnostics without grouping.
func (r *TextReporter) reportFlat(_ context.Context, result *runner.Result) int {
	var total int

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(displayPath(file.Path, r.opts.WorkingDir)),
				r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}

		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}

		r.writeRuleErrors(displayPath(file.Path, r.opts.WorkingDir), file.Result.RuleErrors)

		for _, diag := range file.Result.Diagnostics {
			var sourceLine string
			if r.opts.ShowContext {
				sourceLine = r.getSourceLine(file.Result.File, diag.StartLine)
			}

			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(&diag, r.opts.ShowContext, sourceLine))
			total++
		}
	}

	return total
}

// writeRuleErrors reports rules that failed on a file, in rule ID order.
func (r *TextReporter) writeRuleErrors(path string, ruleErrors map[string]error) {
	for _, id := range slices.Sorted(maps.Keys(ruleErrors)) {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(path),
			r.styles.Error.Render(fmt.Sprintf("rule %s failed: %v", id, ruleErrors[id])),
		)
	}
}

// getSourceLine extracts a specific line from a parsed file using its
// pre-computed line index, truncated to the terminal width so a long
// minified line does not flood the output.
func (r *TextReporter) getSourceLine(file *syntax.File, lineNum int) string {
	if file == nil {
		return ""
	}
	content := file.LineContent(lineNum)
	if content == nil {
		return ""
	}

	line := string(content)
	if max := r.termWidth - 12; max > 0 && len(line) > max {
		line = line[:max] + "..."
	}
	return line
}

// getTerminalWidth returns the terminal width of the writer, or a default
// when the writer is not a terminal.
func getTerminalWidth(writer io.Writer) int {
	if f, ok := writer.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}
