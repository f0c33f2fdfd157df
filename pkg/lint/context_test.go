package lint_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/taglint/pkg/config"
	"github.com/yaklabco/taglint/pkg/lint"
)

func optionContext(options map[string]any) *lint.RuleContext {
	rc := &config.RuleConfig{Options: options}
	return lint.NewRuleContext(context.Background(), nil, config.NewConfig(), rc)
}

func TestRuleContext_Option(t *testing.T) {
	ctx := optionContext(map[string]any{
		"policy":  "never",
		"enabled": true,
		"limit":   3,
		"ratio":   2.0,
		"typed":   5,
	})

	t.Run("raw value", func(t *testing.T) {
		assert.Equal(t, "never", ctx.Option("policy", "allow"))
		assert.Equal(t, "allow", ctx.Option("missing", "allow"))
	})

	t.Run("string", func(t *testing.T) {
		assert.Equal(t, "never", ctx.OptionString("policy", "allow"))
		assert.Equal(t, "allow", ctx.OptionString("missing", "allow"))
		assert.Equal(t, "allow", ctx.OptionString("typed", "allow"), "wrong type falls back to default")
	})

	t.Run("bool", func(t *testing.T) {
		assert.True(t, ctx.OptionBool("enabled", false))
		assert.False(t, ctx.OptionBool("missing", false))
	})

	t.Run("int", func(t *testing.T) {
		assert.Equal(t, 3, ctx.OptionInt("limit", 0))
		assert.Equal(t, 2, ctx.OptionInt("ratio", 0), "YAML floats convert to int")
		assert.Equal(t, 7, ctx.OptionInt("missing", 7))
	})
}

func TestRuleContext_OptionWithoutConfig(t *testing.T) {
	ctx := lint.NewRuleContext(context.Background(), nil, config.NewConfig(), nil)

	assert.Equal(t, "allow", ctx.OptionString("policy", "allow"))
	assert.True(t, ctx.OptionBool("enabled", true))
	assert.Equal(t, 4, ctx.OptionInt("jobs", 4))
}
