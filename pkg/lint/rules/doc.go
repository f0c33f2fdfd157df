// Package rules contains the built-in lint rules for taglint.
//
// Rules register themselves with lint.DefaultRegistry during init(), so
// importing this package (typically blank-imported from main) makes all
// built-in rules available.
package rules
