// Package entities defines core domain models and data structures.
package entities

// RuleType identifies how a PatternRule is evaluated
type RuleType string

// Supported rule types
const (
	RuleTypeRegex RuleType = "regex"
)

// PatternRule is a single matching rule from a configuration blob.
// Only regex rules exist today; consumers skip rules of any other type.
type PatternRule struct {
	Type    RuleType
	Pattern string
}

// IsRegex reports whether the rule should be evaluated as a regular expression
func (r PatternRule) IsRegex() bool {
	return r.Type == RuleTypeRegex
}

// RegexRule creates a regex PatternRule (convenience function)
func RegexRule(pattern string) PatternRule {
	return PatternRule{Type: RuleTypeRegex, Pattern: pattern}
}
