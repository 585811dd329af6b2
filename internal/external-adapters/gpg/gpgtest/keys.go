// Package gpgtest generates throwaway OpenPGP keys and signatures for tests.
package gpgtest

import (
	"bytes"
	"os"
	"testing"

	"github.com/ProtonMail/go-crypto/openpgp"
	"github.com/ProtonMail/go-crypto/openpgp/armor"
	"github.com/ProtonMail/go-crypto/openpgp/packet"
)

// Signer is a generated key pair
type Signer struct {
	Entity *openpgp.Entity
}

// NewSigner generates an EdDSA key for name/email
func NewSigner(t testing.TB, name, email string) *Signer {
	t.Helper()

	e, err := openpgp.NewEntity(name, "", email, &packet.Config{Algorithm: packet.PubKeyAlgoEdDSA})
	if err != nil {
		t.Fatalf("failed to generate key: %v", err)
	}
	return &Signer{Entity: e}
}

// ArmoredPublicKey returns the public key as an ASCII-armored KEYS block
func (s *Signer) ArmoredPublicKey(t testing.TB) []byte {
	t.Helper()

	var buf bytes.Buffer
	w, err := armor.Encode(&buf, openpgp.PublicKeyType, nil)
	if err != nil {
		t.Fatalf("failed to create armor encoder: %v", err)
	}
	if err := s.Entity.Serialize(w); err != nil {
		t.Fatalf("failed to serialize public key: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("failed to close armor encoder: %v", err)
	}
	return buf.Bytes()
}

// ArmoredDetachSign returns an ASCII-armored detached signature over data
func (s *Signer) ArmoredDetachSign(t testing.TB, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := openpgp.ArmoredDetachSign(&buf, s.Entity, bytes.NewReader(data), nil); err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	return buf.Bytes()
}

// DetachSign returns a binary detached signature over data
func (s *Signer) DetachSign(t testing.TB, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	if err := openpgp.DetachSign(&buf, s.Entity, bytes.NewReader(data), nil); err != nil {
		t.Fatalf("failed to sign: %v", err)
	}
	return buf.Bytes()
}

// WriteFile writes data to path or fails the test
func WriteFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}
