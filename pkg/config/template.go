package config

// DefaultTemplate is the commented starter config written by `taglint init`.
const DefaultTemplate = `# taglint configuration
# See 'taglint rules' for the list of available rules.

severity_default: warning

rules:
  TS001:
    enabled: true
    options:
      # Policies: always | never | allow (after_opening also: allow-multiline)
      closing_slash: never
      before_self_closing: always
      after_opening: never
      before_closing: allow

# Glob patterns to skip during discovery.
ignore:
  - "node_modules/**"
  - "dist/**"
`
