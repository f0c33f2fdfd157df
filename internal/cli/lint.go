package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/taglint/internal/logging"
	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/lint"
	_ "github.com/yaklabco/taglint/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/taglint/pkg/parser/tagscan"
	"github.com/yaklabco/taglint/pkg/reporter"
	"github.com/yaklabco/taglint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format    string
	ignore    []string
	enable    []string
	disable   []string
	fixRules  []string
	detect    bool
	strict    bool
	noContext bool
	compact   bool
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint markup files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint markup files for tag whitespace issues.

By default, lints all markup files (.html, .xml, .svg, .jsx, .tsx, .vue,
.svelte and friends) in the current directory and subdirectories. Specify
paths to lint specific files or directories.

Examples:
  taglint lint                    # Lint current directory
  taglint lint src/               # Lint src directory
  taglint lint index.html         # Lint single file
  taglint lint --fix              # Lint and auto-fix issues
  taglint lint --fix --dry-run    # Show fixes without applying
  taglint lint --format json      # Output as JSON for CI
  taglint lint --strict           # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cliCfg *config.Config, flags *lintFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	finalCfg, loadedFrom, err := config.Load(configPath, workDir)
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}
	if loadedFrom != "" {
		logger.Debug("loaded configuration", logging.FieldConfig, loadedFrom)
	}

	// Overlay CLI flags onto the file config.
	finalCfg.Fix = cliCfg.Fix
	finalCfg.DryRun = cliCfg.DryRun
	finalCfg.Jobs = cliCfg.Jobs
	finalCfg.Format = config.OutputFormat(flags.format)
	finalCfg.Ignore = append(finalCfg.Ignore, flags.ignore...)
	finalCfg.EnableRules = flags.enable
	finalCfg.DisableRules = flags.disable
	finalCfg.FixRules = flags.fixRules

	logger.Debug("configuration resolved",
		logging.FieldFix, finalCfg.Fix,
		logging.FieldDryRun, finalCfg.DryRun,
		logging.FieldJobs, finalCfg.Jobs,
	)

	// Assemble the engine: scanner parser, built-in registry, safety
	// pipeline, concurrent runner.
	parser := tagscan.New()
	engine := lint.NewEngine(parser, lint.DefaultRegistry)
	pipeline := lint.NewPipeline(engine)
	lintRunner := runner.New(pipeline)

	extensions := runner.DefaultExtensions()
	if len(finalCfg.Extensions) > 0 {
		extensions = finalCfg.Extensions
	}

	runOpts := runner.Options{
		Paths:         args,
		WorkingDir:    workDir,
		Extensions:    extensions,
		DetectContent: flags.detect,
		ExcludeGlobs:  finalCfg.Ignore,
		Jobs:          finalCfg.Jobs,
		Config:        finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return errors.Join(errors.New("lint run failed"), err)
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto" // Default to auto if flag retrieval fails
	}

	format, err := reporter.ParseFormat(flags.format)
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		logger.Error("report failed", logging.FieldError, err)
		return fmt.Errorf("report results: %w", err)
	}

	exitCode := ExitCodeFromResult(result, flags.strict)
	if exitCode != ExitSuccess {
		return ErrLintIssuesFound
	}

	return nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().BoolVar(&cfg.Fix, "fix", false, "automatically fix issues")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show fixes without applying them")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs to disable")
	cmd.Flags().StringSliceVar(&flags.fixRules, "fix-rules", nil, "limit auto-fix to specific rule IDs")
	cmd.Flags().BoolVar(&flags.detect, "detect", false,
		"sniff files with unlisted extensions for markup content")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
}
