package lint

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/fix"
	"github.com/yaklabco/taglint/pkg/fsutil"
)

// DefaultMaxFixPasses caps the number of fix passes to prevent loops.
// Skipped conflicting edits from one pass become applicable in the next, so
// more than one pass can be needed, but a stable file converges quickly.
const DefaultMaxFixPasses = 10

// Pipeline error categories.
var (
	// ErrFileNotFound indicates the file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrParseFailure indicates a parsing error.
	ErrParseFailure = errors.New("parse failure")

	// ErrWriteFailure indicates a write error.
	ErrWriteFailure = errors.New("write failure")
)

// PipelineResult contains the result of processing a single file.
type PipelineResult struct {
	// FileResult contains lint diagnostics and edits from the final pass.
	*FileResult

	// Path is the file path that was processed.
	Path string

	// Modified is true if the file content was changed.
	Modified bool

	// ModifiedContent is the new content after applying edits (nil if not modified).
	ModifiedContent []byte

	// Written is true if the file was written to disk.
	Written bool

	// Skipped is true if the file was left untouched for safety, e.g. a
	// concurrent external modification was detected before writing.
	Skipped bool

	// SkipReason explains why the file was skipped.
	SkipReason string

	// FixPasses is the number of fix passes performed.
	FixPasses int

	// TotalEditsApplied is the total number of edits applied across all passes.
	TotalEditsApplied int
}

// Summary returns a human-readable summary of the pipeline result.
func (pr *PipelineResult) Summary() string {
	if pr.Skipped {
		return "skipped"
	}
	if pr.Written {
		return "fixed"
	}
	if pr.Modified {
		return "changes pending"
	}
	if pr.FileResult != nil && pr.HasIssues() {
		return "issues found"
	}
	return "ok"
}

// PipelineOptions controls pipeline behavior.
type PipelineOptions struct {
	// Fix enables auto-fix mode.
	Fix bool

	// DryRun applies edits in memory without writing files.
	DryRun bool

	// MaxFixPasses limits the number of fix iterations.
	// Set to 0 to use DefaultMaxFixPasses.
	MaxFixPasses int
}

// PipelineOptionsFromConfig derives pipeline options from a config.
func PipelineOptionsFromConfig(cfg *config.Config) PipelineOptions {
	if cfg == nil {
		return PipelineOptions{}
	}
	return PipelineOptions{
		Fix:    cfg.Fix,
		DryRun: cfg.DryRun,
	}
}

// Pipeline orchestrates the safe processing of a single file:
// read, lint, apply fixes in memory over multiple passes, write atomically.
type Pipeline struct {
	// Engine is the lint engine used for parsing and rule execution.
	Engine *Engine
}

// NewPipeline creates a new pipeline with the given engine.
func NewPipeline(engine *Engine) *Pipeline {
	return &Pipeline{Engine: engine}
}

// ProcessFile runs the full pipeline for a single file.
func (p *Pipeline) ProcessFile(
	ctx context.Context,
	path string,
	cfg *config.Config,
	opts PipelineOptions,
) (*PipelineResult, error) {
	result := &PipelineResult{Path: path}

	originalContent, fileInfo, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	maxPasses := opts.MaxFixPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxFixPasses
	}

	content := originalContent
	var fileResult *FileResult

	for range maxPasses {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("processing cancelled: %w", ctx.Err())
		default:
		}

		var lintErr error
		fileResult, lintErr = p.Engine.LintFile(ctx, path, content, cfg)
		if lintErr != nil {
			if errors.Is(lintErr, ErrRuleConfig) {
				return nil, lintErr
			}
			return nil, fmt.Errorf("%w: %w", ErrParseFailure, lintErr)
		}

		if !opts.Fix || len(fileResult.Edits) == 0 {
			break
		}

		content = fix.ApplyEdits(content, fileResult.Edits)
		result.FixPasses++
		result.TotalEditsApplied += len(fileResult.Edits)
	}

	result.FileResult = fileResult

	if result.TotalEditsApplied > 0 {
		result.Modified = true
		result.ModifiedContent = content
	}

	if result.Modified && !opts.DryRun {
		// Refuse to clobber concurrent external edits.
		changed, err := fsutil.CheckModified(ctx, fileInfo)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		if changed {
			result.Skipped = true
			result.SkipReason = "file changed externally during processing"
			return result, nil
		}

		if err := fsutil.WriteAtomic(ctx, path, content, fileInfo.Mode); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
		}
		result.Written = true
	}

	return result, nil
}

// categorizeError maps file system errors onto the pipeline error taxonomy.
func categorizeError(err error) error {
	switch {
	case errors.Is(err, fsutil.ErrNotFound), os.IsNotExist(err):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fsutil.ErrPermissionDenied), os.IsPermission(err):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	default:
		return err
	}
}
