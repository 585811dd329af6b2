package entities

// ChecksumPair links a checksum file to the artifact it describes
type ChecksumPair struct {
	ShaFile   string
	CheckFile string
}

// InvalidChecksum records a checksum mismatch
type InvalidChecksum struct {
	File        string // the checksum file
	ExpectedSha string
	ActualSha   string
}

// InvalidSignature records a signature that failed verification
type InvalidSignature struct {
	File     string
	Status   bool
	Problems []string
}

// CheckType selects which naming concern an audit covers
type CheckType string

// Audit check types
const (
	CheckTypeExtension   CheckType = "extension"
	CheckTypePackageName CheckType = "package_name"
)

// IsValid returns true for the known check types
func (c CheckType) IsValid() bool {
	return c == CheckTypeExtension || c == CheckTypePackageName
}

// AuditReport keeps unknown files per check type; the two lists never mix
type AuditReport struct {
	UnknownExtensions []string
	UnknownFiles      []string
}

// Add appends unknown names to the list selected by checkType
func (r *AuditReport) Add(checkType CheckType, names ...string) {
	switch checkType {
	case CheckTypeExtension:
		r.UnknownExtensions = append(r.UnknownExtensions, names...)
	case CheckTypePackageName:
		r.UnknownFiles = append(r.UnknownFiles, names...)
	}
}

// IsClean returns true when no unknown files were found
func (r *AuditReport) IsClean() bool {
	return len(r.UnknownExtensions) == 0 && len(r.UnknownFiles) == 0
}

// SignatureVerification is the outcome of verifying one detached signature
type SignatureVerification struct {
	Valid    bool
	Signer   string
	Problems []string
}
