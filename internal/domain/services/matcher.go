// Package services contains the release-check business logic: filename
// classification, checksum pairing and validation, signature validation.
package services

import (
	"fmt"
	"strings"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"github.com/ochairo/relcheck/internal/domain/interfaces"
	"github.com/ochairo/relcheck/internal/external-adapters/regex"
)

// IsMatched reports whether name matches pattern from its start AND the
// pattern's first capture group is a non-empty suffix of name.
//
// A pattern like `.*(tar.gz.asc)$` therefore names a recognized tail of the
// file. An empty capture never matches.
func IsMatched(name string, pattern *regex.Pattern) bool {
	group, ok := pattern.MatchPrefix(name)
	if !ok || group == "" {
		return false
	}
	return strings.HasSuffix(name, group)
}

// Matcher classifies file names against configured PatternRules
type Matcher struct {
	logger   interfaces.Logger
	compiled map[string]*regex.Pattern
}

// NewMatcher creates a new matcher
func NewMatcher(logger interfaces.Logger) *Matcher {
	return &Matcher{
		logger:   interfaces.OrNoOp(logger),
		compiled: make(map[string]*regex.Pattern),
	}
}

// patterns compiles the regex rules, skipping rules of any other type
func (m *Matcher) patterns(rules []entities.PatternRule) ([]*regex.Pattern, error) {
	patterns := make([]*regex.Pattern, 0, len(rules))
	for _, rule := range rules {
		if !rule.IsRegex() {
			m.logger.Debug("skipping non-regex rule", interfaces.F("type", rule.Type))
			continue
		}

		p, ok := m.compiled[rule.Pattern]
		if !ok {
			var err error
			p, err = regex.Compile(rule.Pattern)
			if err != nil {
				return nil, err
			}
			m.compiled[rule.Pattern] = p
		}
		patterns = append(patterns, p)
	}
	return patterns, nil
}

// MatchesAny reports whether name matches at least one rule
func (m *Matcher) MatchesAny(name string, rules []entities.PatternRule) (bool, error) {
	patterns, err := m.patterns(rules)
	if err != nil {
		return false, err
	}
	return matchesAny(name, patterns), nil
}

func matchesAny(name string, patterns []*regex.Pattern) bool {
	for _, p := range patterns {
		if IsMatched(name, p) {
			return true
		}
	}
	return false
}

// Split partitions files into those matching any rule and the rest.
// Both results keep input order and contain each name once.
func (m *Matcher) Split(files []string, rules []entities.PatternRule) (matched, rest []string, err error) {
	patterns, err := m.patterns(rules)
	if err != nil {
		return nil, nil, err
	}

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		if seen[f] {
			continue
		}
		seen[f] = true

		if matchesAny(f, patterns) {
			matched = append(matched, f)
		} else {
			rest = append(rest, f)
		}
	}
	return matched, rest, nil
}

// Exclude returns files minus every file matched by a rule
func (m *Matcher) Exclude(files []string, rules []entities.PatternRule) ([]string, error) {
	excluded, kept, err := m.Split(files, rules)
	if err != nil {
		return nil, err
	}

	if len(excluded) > 0 {
		m.logger.Info("Following packages excluded", interfaces.F("packages", excluded))
	}
	return kept, nil
}

// ExtractNames returns the distinct first capture groups of every file
// matching a rule from its start. This is how RC suffixes are stripped:
// `(apache_airflow_providers.*?)(?=rc)` yields the name without `rcN`.
func (m *Matcher) ExtractNames(files []string, rules []entities.PatternRule) ([]string, error) {
	patterns, err := m.patterns(rules)
	if err != nil {
		return nil, err
	}

	var names []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		for _, f := range files {
			name, ok := p.MatchPrefix(f)
			// an empty name would prefix-match every remote file
			if !ok || name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}

	if len(names) == 0 {
		return nil, ErrNoPackageNames
	}
	return names, nil
}

// MatchRelease returns every remote file whose name starts with a canonical
// package name extracted from the local files
func (m *Matcher) MatchRelease(local, remote []string, rules []entities.PatternRule) ([]string, error) {
	names, err := m.ExtractNames(local, rules)
	if err != nil {
		return nil, err
	}
	m.logger.Debug("extracted package names", interfaces.F("names", names))

	var matched []string
	for _, f := range remote {
		for _, name := range names {
			if strings.HasPrefix(f, name) {
				matched = append(matched, f)
				break
			}
		}
	}

	if len(matched) == 0 {
		return nil, fmt.Errorf("%w (package names: %s)", ErrNoReleaseMatch, strings.Join(names, ", "))
	}
	return matched, nil
}
