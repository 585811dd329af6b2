package orchestrators

import (
	"context"
	"errors"
	"fmt"

	"github.com/ochairo/relcheck/internal/domain/entities"
)

// mockFileStore keeps directory listings in memory
type mockFileStore struct {
	dirs    map[string][]string
	ensured []string
	moveErr error
}

func newMockFileStore(dirs map[string][]string) *mockFileStore {
	if dirs == nil {
		dirs = make(map[string][]string)
	}
	return &mockFileStore{dirs: dirs}
}

func (m *mockFileStore) ListFiles(dir string) ([]string, error) {
	files, ok := m.dirs[dir]
	if !ok {
		return nil, fmt.Errorf("open %s: no such file or directory", dir)
	}
	return append([]string(nil), files...), nil
}

func (m *mockFileStore) EnsureDir(dir string) error {
	m.ensured = append(m.ensured, dir)
	if _, ok := m.dirs[dir]; !ok {
		m.dirs[dir] = nil
	}
	return nil
}

func (m *mockFileStore) MoveFile(srcDir, name, destDir string) error {
	if m.moveErr != nil {
		return m.moveErr
	}
	src := m.dirs[srcDir]
	for i, f := range src {
		if f == name {
			m.dirs[srcDir] = append(src[:i:i], src[i+1:]...)
			m.dirs[destDir] = append(m.dirs[destDir], name)
			return nil
		}
	}
	return fmt.Errorf("stat %s/%s: no such file or directory", srcDir, name)
}

// mockCheckout fills the checkout directory with the given remote listing
type mockCheckout struct {
	store  *mockFileStore
	remote []string
	err    error
	urls   []string
}

func (m *mockCheckout) Checkout(_ context.Context, url, destDir string) error {
	m.urls = append(m.urls, url)
	if m.err != nil {
		return m.err
	}
	m.store.dirs[destDir] = append([]string(nil), m.remote...)
	return nil
}

// mockChecksumGateway serves digests from maps keyed by path
type mockChecksumGateway struct {
	expected map[string]string
	actual   map[string]string
}

func (m *mockChecksumGateway) CalculateDigest(_ context.Context, filePath, algorithm string) (string, error) {
	if algorithm != "sha512" {
		return "", fmt.Errorf("unsupported algorithm %q", algorithm)
	}
	d, ok := m.actual[filePath]
	if !ok {
		return "", fmt.Errorf("open %s: no such file", filePath)
	}
	return d, nil
}

func (m *mockChecksumGateway) ReadExpectedDigest(checksumPath string) (string, error) {
	d, ok := m.expected[checksumPath]
	if !ok {
		return "", fmt.Errorf("open %s: no such file", checksumPath)
	}
	return d, nil
}

// mockSignatureVerifier treats data files listed in bad as tampered
type mockSignatureVerifier struct {
	bad       map[string]bool
	importErr error
	imported  []string
	clears    int
}

func (m *mockSignatureVerifier) ImportKeys(_ context.Context, source string) error {
	if m.importErr != nil {
		return m.importErr
	}
	m.imported = append(m.imported, source)
	return nil
}

func (m *mockSignatureVerifier) VerifyDetached(dataPath, _ string) entities.SignatureVerification {
	if m.bad[dataPath] {
		return entities.SignatureVerification{Problems: []string{"signature verification failed: hash tag doesn't match"}}
	}
	return entities.SignatureVerification{Valid: true, Signer: "Release Manager <rm@example.org>"}
}

func (m *mockSignatureVerifier) ClearKeyring() {
	m.clears++
}

var errSVN = errors.New("svn: E170013: Unable to connect to a repository")
