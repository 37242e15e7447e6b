// Package rules contains the built-in slidefmt rewrite rules.
//
// Each rule registers itself with rewrite.DefaultCatalog via init(), so
// importing this package (typically with a blank import from the CLI) is
// enough to make every built-in rule and rule set available.
package rules
