package rules

import "github.com/yaklabco/taglint/pkg/lint"

//nolint:gochecknoinits // Registration via init is the established pattern
func init() {
	RegisterAll(lint.DefaultRegistry)
}

// RegisterAll registers every built-in rule with the given registry.
func RegisterAll(reg *lint.Registry) {
	reg.Register(NewTagSpacingRule())
}
