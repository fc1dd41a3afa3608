package bundle

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io/fs"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork
)

// verify checks data against the manifest entry for name.
func (b *Bundle) verify(name string, data []byte) error {
	entry, ok := b.manifest.Resources[name]
	if !ok {
		if b.strict {
			return fmt.Errorf("%w: %s", ErrNotInManifest, name)
		}
		b.logger.Debug("resource not listed in manifest, skipping verification", "resource", name)
		return nil
	}

	if entry.SHA256 != "" {
		if err := verifySHA256(data, entry.SHA256); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if entry.Signature != "" {
		if err := b.verifySignature(data, entry.Signature); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// verifySHA256 compares the digest of data with the expected hex digest.
func verifySHA256(data []byte, expected string) error {
	sum := sha256.Sum256(data)
	actual := hex.EncodeToString(sum[:])
	if actual != expected {
		return fmt.Errorf("%w:\nactual:   %s\nexpected: %s", ErrChecksumMismatch, actual, expected)
	}
	return nil
}

// verifySignature checks a detached signature stored at sigPath in the bundle.
func (b *Bundle) verifySignature(data []byte, sigPath string) error {
	if len(b.keyring) == 0 {
		return fmt.Errorf("%w: bundle has no keyring", ErrSignatureInvalid)
	}

	sig, err := fs.ReadFile(b.fsys, sigPath)
	if err != nil {
		return fmt.Errorf("%w: read signature %s: %v", ErrSignatureInvalid, sigPath, err)
	}

	// Try armored first, then binary
	_, err = openpgp.CheckArmoredDetachedSignature(b.keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	if err != nil {
		_, err = openpgp.CheckDetachedSignature(b.keyring, bytes.NewReader(data), bytes.NewReader(sig), nil)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	return nil
}
