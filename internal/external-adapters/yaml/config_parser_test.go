package yaml

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ochairo/relcheck/internal/domain/entities"
)

func TestConfigParser_ParseArtifactsConfig_JSON(t *testing.T) {
	parser := NewConfigParser()
	data := []byte(`{
  "description": "Find provider packages",
  "exclude": [
    {"type": "regex", "pattern": ".*(tar.gz.asc|py3-none-any.whl.sha512)$"},
    {"type": "glob", "pattern": "*.txt"}
  ]
}`)

	cfg, err := parser.ParseArtifactsConfig(data)
	if err != nil {
		t.Fatalf("ParseArtifactsConfig() error = %v", err)
	}

	want := &entities.ArtifactsConfig{
		Description: "Find provider packages",
		Exclude: []entities.PatternRule{
			entities.RegexRule(".*(tar.gz.asc|py3-none-any.whl.sha512)$"),
			{Type: "glob", Pattern: "*.txt"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParseArtifactsConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_ParseArtifactsConfig_Empty(t *testing.T) {
	parser := NewConfigParser()
	for _, data := range []string{"", "{}"} {
		cfg, err := parser.ParseArtifactsConfig([]byte(data))
		if err != nil {
			t.Fatalf("ParseArtifactsConfig(%q) error = %v", data, err)
		}
		if len(cfg.Exclude) != 0 {
			t.Errorf("ParseArtifactsConfig(%q) exclude = %v, want none", data, cfg.Exclude)
		}
	}
}

func TestConfigParser_ParsePublishConfig_PyPI(t *testing.T) {
	parser := NewConfigParser()
	data := []byte(`{
  "release-type": "PYPI_VERSION",
  "exclude_extensions": [{"type": "regex", "pattern": ".*(.asc|.sha512)$"}],
  "compare": {
    "url": "https://dist.apache.org/repos/dist/dev/airflow/",
    "path": "providers/",
    "package_names": [{"type": "regex", "pattern": "(apache_airflow_providers.*?)(?=rc)"}]
  }
}`)

	cfg, err := parser.ParsePublishConfig(data)
	if err != nil {
		t.Fatalf("ParsePublishConfig() error = %v", err)
	}

	want := &entities.PublishConfig{
		ReleaseType:       entities.ReleaseTypePyPI,
		ExcludeExtensions: []entities.PatternRule{entities.RegexRule(".*(.asc|.sha512)$")},
		Compare: &entities.CompareConfig{
			URL:          "https://dist.apache.org/repos/dist/dev/airflow/",
			Path:         "providers/",
			PackageNames: []entities.PatternRule{entities.RegexRule("(apache_airflow_providers.*?)(?=rc)")},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("ParsePublishConfig() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_ParsePublishConfig_YAML(t *testing.T) {
	parser := NewConfigParser()
	data := []byte(`release-type: RC_VERSION
exclude_extensions:
  - type: regex
    pattern: '.*(tar.gz.asc|py3-none-any.whl.sha512)$'
`)

	cfg, err := parser.ParsePublishConfig(data)
	if err != nil {
		t.Fatalf("ParsePublishConfig() error = %v", err)
	}
	if cfg.ReleaseType != entities.ReleaseTypeRC {
		t.Errorf("ReleaseType = %q, want %q", cfg.ReleaseType, entities.ReleaseTypeRC)
	}
	if cfg.Compare != nil {
		t.Errorf("Compare = %+v, want nil", cfg.Compare)
	}
	if len(cfg.ExcludeExtensions) != 1 {
		t.Errorf("ExcludeExtensions count = %d, want 1", len(cfg.ExcludeExtensions))
	}
}

func TestConfigParser_ParseErrors(t *testing.T) {
	parser := NewConfigParser()

	tests := []struct {
		name    string
		parse   func([]byte) error
		data    string
		wantErr string
	}{
		{
			name:    "publish without release type",
			parse:   func(d []byte) error { _, err := parser.ParsePublishConfig(d); return err },
			data:    `{"exclude_extensions": []}`,
			wantErr: "release-type",
		},
		{
			name:    "regex rule without pattern",
			parse:   func(d []byte) error { _, err := parser.ParseArtifactsConfig(d); return err },
			data:    `{"exclude": [{"type": "regex"}]}`,
			wantErr: "exclude[0]",
		},
		{
			name:    "broken json",
			parse:   func(d []byte) error { _, err := parser.ParseArtifactsConfig(d); return err },
			data:    `{"exclude": [`,
			wantErr: "failed to parse",
		},
		{
			name:    "signature check object instead of list",
			parse:   func(d []byte) error { _, err := parser.ParseSignatureChecks(d); return err },
			data:    `{"method": "gpg"}`,
			wantErr: "failed to parse",
		},
		{
			name:    "gpg check without keys",
			parse:   func(d []byte) error { _, err := parser.ParseSignatureChecks(d); return err },
			data:    `[{"description": "check", "method": "gpg"}]`,
			wantErr: "requires keys",
		},
		{
			name:    "checksum without algorithm",
			parse:   func(d []byte) error { _, err := parser.ParseChecksumChecks(d); return err },
			data:    `[{"description": "check"}]`,
			wantErr: "algorithm",
		},
		{
			name:    "audit with unknown id",
			parse:   func(d []byte) error { _, err := parser.ParseAuditChecks(d); return err },
			data:    `[{"id": "checksum", "identifiers": []}]`,
			wantErr: "unknown id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestConfigParser_ParseSignatureChecks(t *testing.T) {
	data := []byte(`[
  {"description": "Check provider signatures", "method": "gpg", "keys": "https://dist.apache.org/repos/dist/release/airflow/KEYS"},
  {"description": "Future method", "method": "sigstore"}
]`)

	checks, err := NewConfigParser().ParseSignatureChecks(data)
	if err != nil {
		t.Fatalf("ParseSignatureChecks() error = %v", err)
	}

	want := []entities.SignatureCheck{
		{
			Description: "Check provider signatures",
			Method:      entities.SignatureMethodGPG,
			Keys:        "https://dist.apache.org/repos/dist/release/airflow/KEYS",
		},
		{Description: "Future method", Method: "sigstore"},
	}
	if diff := cmp.Diff(want, checks); diff != "" {
		t.Errorf("ParseSignatureChecks() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_ParseChecksumChecks(t *testing.T) {
	checks, err := NewConfigParser().ParseChecksumChecks([]byte(`[{"description": "Check sha512", "algorithm": " sha512 "}]`))
	if err != nil {
		t.Fatalf("ParseChecksumChecks() error = %v", err)
	}

	want := []entities.ChecksumCheck{{Description: "Check sha512", Algorithm: "sha512"}}
	if diff := cmp.Diff(want, checks); diff != "" {
		t.Errorf("ParseChecksumChecks() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_ParseAuditChecks(t *testing.T) {
	data := []byte(`[
  {
    "id": "extension",
    "description": "Check extensions",
    "identifiers": [{"type": "regex", "pattern": ".*(py3-none-any.whl|tar.gz.sha512|tar.gz.asc|tar.gz)$"}]
  },
  {
    "id": "package_name",
    "description": "Check package names",
    "identifiers": [
      {"type": "regex", "pattern": ".*(apache-airflow.*)$"},
      {"type": "regex", "pattern": ".*(apache_airflow.*)$"}
    ]
  }
]`)

	checks, err := NewConfigParser().ParseAuditChecks(data)
	if err != nil {
		t.Fatalf("ParseAuditChecks() error = %v", err)
	}
	if len(checks) != 2 {
		t.Fatalf("ParseAuditChecks() count = %d, want 2", len(checks))
	}
	if checks[0].ID != entities.CheckTypeExtension || checks[1].ID != entities.CheckTypePackageName {
		t.Errorf("ids = %q, %q", checks[0].ID, checks[1].ID)
	}
	if len(checks[1].Identifiers) != 2 {
		t.Errorf("package_name identifiers = %d, want 2", len(checks[1].Identifiers))
	}
}

func TestConfigParser_JSONEscapedSlash(t *testing.T) {
	cfg, err := NewConfigParser().ParseArtifactsConfig([]byte(`{"exclude": [{"type": "regex", "pattern": "dist\/a\/b(c)"}]}`))
	if err != nil {
		t.Fatalf("ParseArtifactsConfig() error = %v", err)
	}

	want := []entities.PatternRule{entities.RegexRule("dist/a/b(c)")}
	if diff := cmp.Diff(want, cfg.Exclude); diff != "" {
		t.Errorf("exclude mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_YAMLStillAccepted(t *testing.T) {
	data := []byte("- description: Check sha512\n  algorithm: sha512\n")

	checks, err := NewConfigParser().ParseChecksumChecks(data)
	if err != nil {
		t.Fatalf("ParseChecksumChecks() error = %v", err)
	}

	want := []entities.ChecksumCheck{{Description: "Check sha512", Algorithm: "sha512"}}
	if diff := cmp.Diff(want, checks); diff != "" {
		t.Errorf("ParseChecksumChecks() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigParser_EmptyCheckLists(t *testing.T) {
	parser := NewConfigParser()
	parsers := map[string]func([]byte) error{
		"signature": func(d []byte) error { _, err := parser.ParseSignatureChecks(d); return err },
		"checksum":  func(d []byte) error { _, err := parser.ParseChecksumChecks(d); return err },
		"audit":     func(d []byte) error { _, err := parser.ParseAuditChecks(d); return err },
	}

	for name, parse := range parsers {
		for _, data := range []string{`[]`, `null`, ` [ ] `} {
			t.Run(name+"/"+data, func(t *testing.T) {
				err := parse([]byte(data))
				if !errors.Is(err, ErrEmptyConfig) {
					t.Errorf("error = %v, want ErrEmptyConfig", err)
				}
			})
		}
	}
}
