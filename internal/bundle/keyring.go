package bundle

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork
)

// Keyring file names, in lookup order.
var keyringFiles = []string{"keyring.asc", "keyring.gpg"}

// loadKeyring reads the first keyring file present in fsys.
// It returns a nil keyring if the bundle ships none.
func loadKeyring(fsys fs.FS) (openpgp.EntityList, error) {
	for _, name := range keyringFiles {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("read keyring %s: %w", name, err)
		}

		keyring, err := parseKeyring(data)
		if err != nil {
			return nil, fmt.Errorf("keyring %s: %w", name, err)
		}
		return keyring, nil
	}

	return nil, nil
}

// parseKeyring decodes an armored or binary OpenPGP keyring.
func parseKeyring(data []byte) (openpgp.EntityList, error) {
	keyring, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
	if err != nil {
		keyring, err = openpgp.ReadKeyRing(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("read keyring: %w", err)
		}
	}

	if len(keyring) == 0 {
		return nil, fmt.Errorf("keyring is empty")
	}

	return keyring, nil
}
