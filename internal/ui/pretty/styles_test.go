package pretty_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/taglint/internal/ui/pretty"
)

func TestNewStyles_NoColor(t *testing.T) {
	s := pretty.NewStyles(false)
	require.NotNil(t, s)

	// Plain styles render text unchanged.
	assert.Equal(t, "hello", s.Error.Render("hello"))
	assert.Equal(t, "hello", s.Success.Render("hello"))
	assert.Equal(t, "hello", s.FilePath.Render("hello"))
}

func TestIsColorEnabled(t *testing.T) {
	t.Run("always", func(t *testing.T) {
		assert.True(t, pretty.IsColorEnabled("always", &bytes.Buffer{}))
	})

	t.Run("never", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("never", &bytes.Buffer{}))
	})

	t.Run("auto with non-tty writer", func(t *testing.T) {
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})

	t.Run("auto respects NO_COLOR", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.False(t, pretty.IsColorEnabled("auto", &bytes.Buffer{}))
	})
}
