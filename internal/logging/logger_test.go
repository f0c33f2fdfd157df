package logging

import (
	"testing"

	"github.com/charmbracelet/log"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"WARN", log.WarnLevel},
		{"bogus", log.InfoLevel},
		{"", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := New(tt.level)
			if logger == nil {
				t.Fatal("New returned nil")
			}
			if got := logger.GetLevel(); got != tt.want {
				t.Errorf("New(%q) level = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestDefault_Singleton(t *testing.T) {
	a := Default()
	b := Default()
	if a == nil {
		t.Fatal("Default returned nil")
	}
	if a != b {
		t.Error("Default returned different instances")
	}
}

func TestSetLevel(t *testing.T) {
	SetLevel("error")
	if got := Default().GetLevel(); got != log.ErrorLevel {
		t.Errorf("level = %v, want error", got)
	}

	SetLevel("info")
	if got := Default().GetLevel(); got != log.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
}

func TestNewInteractive(t *testing.T) {
	logger := NewInteractive()
	if logger == nil {
		t.Fatal("NewInteractive returned nil")
	}
	if got := logger.GetLevel(); got != log.InfoLevel {
		t.Errorf("level = %v, want info", got)
	}
}
