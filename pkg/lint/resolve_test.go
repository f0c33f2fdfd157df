package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/lint"
)

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func TestResolveRules_Defaults(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS001", "tag-spacing", true))

	resolved := lint.ResolveRules(reg, nil)
	require.Len(t, resolved, 1)

	rr := resolved[0]
	assert.True(t, rr.Enabled)
	assert.Equal(t, config.SeverityWarning, rr.Severity)
	assert.True(t, rr.AutoFix, "nil config leaves fixable rules auto-fixable")
	assert.Nil(t, rr.Config)
}

func TestResolveRules_DisabledViaConfig(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS001", "tag-spacing", true))

	cfg := config.NewConfig()
	cfg.Rules["TS001"] = config.RuleConfig{Enabled: boolPtr(false)}

	resolved := lint.ResolveRules(reg, cfg)
	assert.Empty(t, resolved, "disabled rules are filtered out")
}

func TestResolveRules_CLIEnableDisable(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS001", "tag-spacing", true))

	t.Run("disable wins over default", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.DisableRules = []string{"TS001"}
		assert.Empty(t, lint.ResolveRules(reg, cfg))
	})

	t.Run("rule config enable wins over CLI disable order", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.DisableRules = []string{"TS001"}
		cfg.Rules["TS001"] = config.RuleConfig{Enabled: boolPtr(true)}
		assert.Len(t, lint.ResolveRules(reg, cfg), 1)
	})
}

func TestResolveRules_SeverityOverride(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS001", "tag-spacing", true))

	cfg := config.NewConfig()
	cfg.Rules["TS001"] = config.RuleConfig{Severity: strPtr("error")}

	resolved := lint.ResolveRules(reg, cfg)
	require.Len(t, resolved, 1)
	assert.Equal(t, config.SeverityError, resolved[0].Severity)
}

func TestResolveRules_AutoFix(t *testing.T) {
	reg := lint.NewRegistry()
	reg.Register(newStubRule("TS001", "tag-spacing", true))
	reg.Register(newStubRule("TS002", "unfixable", false))

	t.Run("requires fix flag", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Fix = false

		for _, rr := range lint.ResolveRules(reg, cfg) {
			assert.False(t, rr.AutoFix, "rule %s", rr.Rule.ID())
		}
	})

	t.Run("fix flag enables fixable rules only", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Fix = true

		resolved := lint.ResolveRules(reg, cfg)
		require.Len(t, resolved, 2)
		assert.True(t, resolved[0].AutoFix)
		assert.False(t, resolved[1].AutoFix, "unfixable rule never auto-fixes")
	})

	t.Run("fix-rules filter restricts auto-fix", func(t *testing.T) {
		reg2 := lint.NewRegistry()
		reg2.Register(newStubRule("TS001", "a", true))
		reg2.Register(newStubRule("TS002", "b", true))

		cfg := config.NewConfig()
		cfg.Fix = true
		cfg.FixRules = []string{"TS002"}

		resolved := lint.ResolveRules(reg2, cfg)
		require.Len(t, resolved, 2)
		assert.False(t, resolved[0].AutoFix)
		assert.True(t, resolved[1].AutoFix)
	})

	t.Run("config can turn auto-fix off per rule", func(t *testing.T) {
		cfg := config.NewConfig()
		cfg.Fix = true
		cfg.Rules["TS001"] = config.RuleConfig{AutoFix: boolPtr(false)}

		resolved := lint.ResolveRules(reg, cfg)
		require.Len(t, resolved, 2)
		assert.False(t, resolved[0].AutoFix)
	})
}
