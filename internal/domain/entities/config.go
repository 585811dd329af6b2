package entities

// ArtifactsConfig configures the artifact selector (ARTIFACTS_CONFIG)
type ArtifactsConfig struct {
	Description string
	Exclude     []PatternRule
}

// ReleaseType selects the publisher flow
type ReleaseType string

// Publisher release types
const (
	ReleaseTypeRC   ReleaseType = "RC_VERSION"
	ReleaseTypePyPI ReleaseType = "PYPI_VERSION"
)

// PublishConfig configures the release-diff publisher (PUBLISH_PACKAGES_CONFIG)
type PublishConfig struct {
	ReleaseType       ReleaseType
	ExcludeExtensions []PatternRule
	Compare           *CompareConfig
}

// CompareConfig describes the remote release directory to diff against
type CompareConfig struct {
	URL          string
	Path         string
	PackageNames []PatternRule
}

// Mode controls whether a run only reports or actually releases
type Mode string

// Run modes
const (
	ModeVerify  Mode = "VERIFY"
	ModeRelease Mode = "RELEASE"
)

// SignatureMethodGPG is the only signature method understood today
const SignatureMethodGPG = "gpg"

// SignatureCheck is one entry of SIGNATURE_CHECK_CONFIG
type SignatureCheck struct {
	Description string
	Method      string
	Keys        string // URL (or local path) of the public key material
}

// ChecksumCheck is one entry of CHECK_SUM_CONFIG
type ChecksumCheck struct {
	Description string
	Algorithm   string // e.g. "sha512"; also the checksum file suffix
}

// AuditCheck is one entry of SVN_CHECK_CONFIG
type AuditCheck struct {
	ID          CheckType
	Description string
	Identifiers []PatternRule
}
