package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/taglint/pkg/lint"
)

// stubRule is a minimal rule for registry and resolution tests.
type stubRule struct {
	lint.BaseRule
}

func newStubRule(id, name string, fixable bool) *stubRule {
	return &stubRule{
		BaseRule: lint.NewBaseRule(id, name, "test rule", []string{"test"}, fixable),
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	reg := lint.NewRegistry()
	rule := newStubRule("TS001", "tag-spacing", true)
	reg.Register(rule)

	t.Run("by ID", func(t *testing.T) {
		got, ok := reg.Get("TS001")
		require.True(t, ok)
		assert.Equal(t, "TS001", got.ID())
	})

	t.Run("by name", func(t *testing.T) {
		got, ok := reg.Get("tag-spacing")
		require.True(t, ok)
		assert.Equal(t, "TS001", got.ID())
	})

	t.Run("missing key", func(t *testing.T) {
		_, ok := reg.Get("TS999")
		assert.False(t, ok)
	})

	t.Run("GetByID ignores names", func(t *testing.T) {
		_, ok := reg.GetByID("tag-spacing")
		assert.False(t, ok)

		_, ok = reg.GetByID("TS001")
		assert.True(t, ok)
	})
}

func TestRegistry_ReplacesOnSameID(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS001", "first", false))
	reg.Register(newStubRule("TS001", "second", true))

	got, ok := reg.Get("TS001")
	require.True(t, ok)
	assert.Equal(t, "second", got.Name())
	assert.Len(t, reg.Rules(), 1)
}

func TestRegistry_RulesSorted(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS003", "c", false))
	reg.Register(newStubRule("TS001", "a", false))
	reg.Register(newStubRule("TS002", "b", false))

	rules := reg.Rules()
	require.Len(t, rules, 3)
	assert.Equal(t, "TS001", rules[0].ID())
	assert.Equal(t, "TS002", rules[1].ID())
	assert.Equal(t, "TS003", rules[2].ID())

	assert.Equal(t, []string{"TS001", "TS002", "TS003"}, reg.IDs())
}

func TestDefaultRegistry_Exists(t *testing.T) {
	require.NotNil(t, lint.DefaultRegistry)
}
