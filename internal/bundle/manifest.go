package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// ManifestFile is the bundle path of the integrity manifest.
const ManifestFile = "manifest.yaml"

// Manifest records the expected contents of bundle resources.
type Manifest struct {
	Resources map[string]Entry `yaml:"resources"`
}

// Entry describes one resource in the manifest.
type Entry struct {
	// SHA256 is the lower-case hex digest of the resource.
	SHA256 string `yaml:"sha256"`
	// Signature is the bundle path of a detached OpenPGP signature.
	Signature string `yaml:"signature,omitempty"`
}

// ParseManifest decodes manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if m.Resources == nil {
		m.Resources = map[string]Entry{}
	}

	for name, entry := range m.Resources {
		if !fs.ValidPath(name) {
			return nil, fmt.Errorf("manifest: invalid resource path %q", name)
		}
		if entry.SHA256 == "" && entry.Signature == "" {
			return nil, fmt.Errorf("manifest: resource %s has neither sha256 nor signature", name)
		}
		if entry.SHA256 != "" && !isHexDigest(entry.SHA256) {
			return nil, fmt.Errorf("manifest: resource %s has malformed sha256 %q", name, entry.SHA256)
		}
		entry.SHA256 = strings.ToLower(entry.SHA256)
		m.Resources[name] = entry
	}

	return m, nil
}

// loadManifest reads the manifest from fsys. A missing manifest yields an
// empty one.
func loadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Manifest{Resources: map[string]Entry{}}, nil
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

func isHexDigest(s string) bool {
	if len(s) != 64 {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
