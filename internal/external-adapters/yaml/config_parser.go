// Package yaml decodes the JSON/YAML configuration blobs passed to each command.
package yaml

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ochairo/relcheck/internal/domain/entities"
	"gopkg.in/yaml.v3"
)

// yamlRule represents a raw {type, pattern} rule
type yamlRule struct {
	Type    string `yaml:"type" json:"type"`
	Pattern string `yaml:"pattern" json:"pattern"`
}

type yamlArtifacts struct {
	Description string     `yaml:"description" json:"description"`
	Exclude     []yamlRule `yaml:"exclude" json:"exclude"`
}

type yamlPublish struct {
	ReleaseType       string       `yaml:"release-type" json:"release-type"`
	ExcludeExtensions []yamlRule   `yaml:"exclude_extensions" json:"exclude_extensions"`
	Compare           *yamlCompare `yaml:"compare" json:"compare"`
}

type yamlCompare struct {
	URL          string     `yaml:"url" json:"url"`
	Path         string     `yaml:"path" json:"path"`
	PackageNames []yamlRule `yaml:"package_names" json:"package_names"`
}

type yamlSignatureCheck struct {
	Description string `yaml:"description" json:"description"`
	Method      string `yaml:"method" json:"method"`
	Keys        string `yaml:"keys" json:"keys"`
}

type yamlChecksumCheck struct {
	Description string `yaml:"description" json:"description"`
	Algorithm   string `yaml:"algorithm" json:"algorithm"`
}

type yamlAuditCheck struct {
	ID          string     `yaml:"id" json:"id"`
	Description string     `yaml:"description" json:"description"`
	Identifiers []yamlRule `yaml:"identifiers" json:"identifiers"`
}

// ErrEmptyConfig is returned when a required list of checks is empty
var ErrEmptyConfig = errors.New("config must contain at least one check")

// ConfigParser decodes configuration blobs into domain entities.
// Blobs starting with '{' or '[' are decoded as JSON, anything else as YAML.
type ConfigParser struct{}

// NewConfigParser creates a new config parser
func NewConfigParser() *ConfigParser {
	return &ConfigParser{}
}

// decode unmarshals data into v. yaml.v3 rejects some valid JSON (the `\/`
// escape), so JSON documents go through encoding/json.
func decode(data []byte, v interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return json.Unmarshal(trimmed, v)
	}
	return yaml.Unmarshal(data, v)
}

// ParseArtifactsConfig decodes ARTIFACTS_CONFIG. An empty blob is an empty config.
func (p *ConfigParser) ParseArtifactsConfig(data []byte) (*entities.ArtifactsConfig, error) {
	var raw yamlArtifacts
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse artifacts config: %w", err)
	}

	exclude, err := convertRules(raw.Exclude, "exclude")
	if err != nil {
		return nil, err
	}

	return &entities.ArtifactsConfig{
		Description: raw.Description,
		Exclude:     exclude,
	}, nil
}

// ParsePublishConfig decodes PUBLISH_PACKAGES_CONFIG
func (p *ConfigParser) ParsePublishConfig(data []byte) (*entities.PublishConfig, error) {
	var raw yamlPublish
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse publish config: %w", err)
	}

	if raw.ReleaseType == "" {
		return nil, fmt.Errorf("publish config must have a release-type")
	}

	exclude, err := convertRules(raw.ExcludeExtensions, "exclude_extensions")
	if err != nil {
		return nil, err
	}

	cfg := &entities.PublishConfig{
		ReleaseType:       entities.ReleaseType(raw.ReleaseType),
		ExcludeExtensions: exclude,
	}

	if raw.Compare != nil {
		names, err := convertRules(raw.Compare.PackageNames, "compare.package_names")
		if err != nil {
			return nil, err
		}
		cfg.Compare = &entities.CompareConfig{
			URL:          raw.Compare.URL,
			Path:         raw.Compare.Path,
			PackageNames: names,
		}
	}

	return cfg, nil
}

// ParseSignatureChecks decodes SIGNATURE_CHECK_CONFIG
func (p *ConfigParser) ParseSignatureChecks(data []byte) ([]entities.SignatureCheck, error) {
	var raw []yamlSignatureCheck
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse signature check config: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("signature check config: %w", ErrEmptyConfig)
	}

	checks := make([]entities.SignatureCheck, 0, len(raw))
	for i, c := range raw {
		if c.Method == entities.SignatureMethodGPG && c.Keys == "" {
			return nil, fmt.Errorf("signature check %d (%s): gpg method requires keys", i, c.Description)
		}
		checks = append(checks, entities.SignatureCheck{
			Description: c.Description,
			Method:      c.Method,
			Keys:        c.Keys,
		})
	}
	return checks, nil
}

// ParseChecksumChecks decodes CHECK_SUM_CONFIG
func (p *ConfigParser) ParseChecksumChecks(data []byte) ([]entities.ChecksumCheck, error) {
	var raw []yamlChecksumCheck
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse checksum config: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("checksum config: %w", ErrEmptyConfig)
	}

	checks := make([]entities.ChecksumCheck, 0, len(raw))
	for i, c := range raw {
		algorithm := strings.TrimSpace(c.Algorithm)
		if algorithm == "" {
			return nil, fmt.Errorf("checksum check %d (%s) must have an algorithm", i, c.Description)
		}
		checks = append(checks, entities.ChecksumCheck{
			Description: c.Description,
			Algorithm:   algorithm,
		})
	}
	return checks, nil
}

// ParseAuditChecks decodes SVN_CHECK_CONFIG
func (p *ConfigParser) ParseAuditChecks(data []byte) ([]entities.AuditCheck, error) {
	var raw []yamlAuditCheck
	if err := decode(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse audit config: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("audit config: %w", ErrEmptyConfig)
	}

	checks := make([]entities.AuditCheck, 0, len(raw))
	for i, c := range raw {
		id := entities.CheckType(c.ID)
		if !id.IsValid() {
			return nil, fmt.Errorf("audit check %d has unknown id %q (want %q or %q)",
				i, c.ID, entities.CheckTypeExtension, entities.CheckTypePackageName)
		}
		identifiers, err := convertRules(c.Identifiers, "identifiers")
		if err != nil {
			return nil, err
		}
		checks = append(checks, entities.AuditCheck{
			ID:          id,
			Description: c.Description,
			Identifiers: identifiers,
		})
	}
	return checks, nil
}

// convertRules keeps rules of every type; consumers skip non-regex ones
func convertRules(raw []yamlRule, field string) ([]entities.PatternRule, error) {
	rules := make([]entities.PatternRule, 0, len(raw))
	for i, r := range raw {
		rule := entities.PatternRule{
			Type:    entities.RuleType(r.Type),
			Pattern: r.Pattern,
		}
		if rule.IsRegex() && rule.Pattern == "" {
			return nil, fmt.Errorf("%s[%d]: regex rule must have a pattern", field, i)
		}
		rules = append(rules, rule)
	}
	return rules, nil
}
