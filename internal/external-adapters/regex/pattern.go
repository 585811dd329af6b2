// Package regex compiles release file patterns.
//
// Release configs are written for a backtracking regex dialect (lookahead
// such as `(?=rc)` and lazy quantifiers), which the standard library's RE2
// engine rejects. This package isolates the regexp2 dependency and fixes
// the matching mode: a pattern always matches from the start of the name.
package regex

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// matchTimeout bounds catastrophic backtracking on hostile patterns
const matchTimeout = 2 * time.Second

// Pattern is a compiled, start-anchored release file pattern
type Pattern struct {
	source string
	re     *regexp2.Regexp
}

// Compile compiles a pattern anchored at the start of the input.
// The pattern must contain at least one capturing group. Named groups
// count in order of their opening parenthesis, like unnamed ones.
func Compile(pattern string) (*Pattern, error) {
	translated, err := numberNamedGroups(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}

	re, err := regexp2.Compile(`\A(?:`+translated+`)`, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	re.MatchTimeout = matchTimeout

	// GetGroupNumbers always includes the implicit group 0
	if len(re.GetGroupNumbers()) < 2 {
		return nil, fmt.Errorf("pattern %q has no capturing group", pattern)
	}

	return &Pattern{source: pattern, re: re}, nil
}

// MustCompile is like Compile but panics on error (tests and constants only)
func MustCompile(pattern string) *Pattern {
	p, err := Compile(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the pattern as written in the config
func (p *Pattern) String() string {
	return p.source
}

// MatchPrefix matches name from its start and returns the first capture group.
// ok is false when the pattern does not match or group 1 did not participate.
func (p *Pattern) MatchPrefix(name string) (group string, ok bool) {
	m, err := p.re.FindStringMatch(name)
	if err != nil || m == nil {
		// err is only ever a match timeout; treat it as no match
		return "", false
	}

	g := m.GroupByNumber(1)
	if g == nil || len(g.Captures) == 0 {
		return "", false
	}

	return g.String(), true
}
