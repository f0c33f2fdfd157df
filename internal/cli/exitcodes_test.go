package cli

import (
	"testing"

	"github.com/yaklabco/taglint/pkg/runner"
)

func resultWithSeverities(bySeverity map[string]int) *runner.Result {
	return &runner.Result{
		Stats: runner.Stats{DiagnosticsBySeverity: bySeverity},
	}
}

func TestExitCodeFromResult(t *testing.T) {
	tests := []struct {
		name   string
		result *runner.Result
		strict bool
		want   int
	}{
		{"nil result", nil, false, ExitSuccess},
		{"clean run", resultWithSeverities(map[string]int{}), false, ExitSuccess},
		{"errors", resultWithSeverities(map[string]int{"error": 1}), false, ExitLintErrors},
		{"errors trump strict", resultWithSeverities(map[string]int{"error": 1, "warning": 3}), true, ExitLintErrors},
		{"warnings without strict", resultWithSeverities(map[string]int{"warning": 2}), false, ExitSuccess},
		{"warnings with strict", resultWithSeverities(map[string]int{"warning": 2}), true, ExitLintWarnings},
		{"info never fails", resultWithSeverities(map[string]int{"info": 5}), true, ExitSuccess},
		{
			"errored files fail the run",
			&runner.Result{Stats: runner.Stats{FilesErrored: 1}},
			false,
			ExitLintErrors,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCodeFromResult(tt.result, tt.strict); got != tt.want {
				t.Errorf("ExitCodeFromResult = %d, want %d", got, tt.want)
			}
		})
	}
}
