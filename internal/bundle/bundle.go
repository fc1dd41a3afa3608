package bundle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/ProtonMail/go-crypto/openpgp" //nolint:staticcheck // Using ProtonMail's maintained fork

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/logging"
)

var (
	ErrResourceNotFound = errors.New("resource not found in bundle")
	ErrNotInManifest    = errors.New("resource not listed in bundle manifest")
	ErrChecksumMismatch = errors.New("checksum mismatch")
	ErrSignatureInvalid = errors.New("signature verification failed")
)

// Options configures a Bundle.
type Options struct {
	// TempDir receives materialized files. Empty means os.TempDir().
	TempDir string
	// Strict refuses resources that the manifest does not list.
	Strict bool
	Logger logging.Logger
}

// Bundle serves prebuilt binaries from an fs.FS.
type Bundle struct {
	fsys     fs.FS
	manifest *Manifest
	keyring  openpgp.EntityList
	tempDir  string
	strict   bool
	logger   logging.Logger
}

// New creates a bundle over fsys, loading its manifest and keyring.
func New(fsys fs.FS, opts Options) (*Bundle, error) {
	if fsys == nil {
		return nil, fmt.Errorf("bundle filesystem is required")
	}

	manifest, err := loadManifest(fsys)
	if err != nil {
		return nil, err
	}

	keyring, err := loadKeyring(fsys)
	if err != nil {
		return nil, err
	}

	return &Bundle{
		fsys:     fsys,
		manifest: manifest,
		keyring:  keyring,
		tempDir:  opts.TempDir,
		strict:   opts.Strict,
		logger:   logging.OrNop(opts.Logger),
	}, nil
}

// Materialize copies resource to a new executable file and returns its path.
// Every call creates its own file; the caller owns it.
func (b *Bundle) Materialize(resource string) (string, error) {
	name := strings.TrimPrefix(resource, "/")
	if !fs.ValidPath(name) || name == "." {
		return "", fmt.Errorf("%w: invalid resource path %q", ErrResourceNotFound, resource)
	}

	data, err := fs.ReadFile(b.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrResourceNotFound, name)
		}
		return "", fmt.Errorf("read resource %s: %w", name, err)
	}

	if err := b.verify(name, data); err != nil {
		return "", err
	}

	if b.tempDir != "" {
		if err := os.MkdirAll(b.tempDir, 0755); err != nil {
			return "", fmt.Errorf("create temp dir: %w", err)
		}
	}

	// Keep the extension so Windows still recognizes the file as executable
	base := path.Base(name)
	ext := path.Ext(base)
	pattern := strings.TrimSuffix(base, ext) + "-*" + ext

	file, err := os.CreateTemp(b.tempDir, pattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := file.Name()

	cleanupNeeded := true
	defer func() {
		if cleanupNeeded {
			os.Remove(tmpPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		file.Close()
		return "", fmt.Errorf("write %s: %w", tmpPath, err)
	}

	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", tmpPath, err)
	}

	if err := os.Chmod(tmpPath, 0755); err != nil {
		return "", fmt.Errorf("set executable: %w", err)
	}

	cleanupNeeded = false
	b.logger.Debug("materialized resource", "resource", name, "path", tmpPath, "bytes", len(data))

	return tmpPath, nil
}

// Resources lists the binaries in the bundle, excluding the manifest,
// keyrings and signature files.
func (b *Bundle) Resources() ([]string, error) {
	var resources []string

	err := fs.WalkDir(b.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || isMetadata(p) {
			return nil
		}
		resources = append(resources, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk bundle: %w", err)
	}

	sort.Strings(resources)
	return resources, nil
}

// Has reports whether resource exists in the bundle.
func (b *Bundle) Has(resource string) bool {
	info, err := fs.Stat(b.fsys, strings.TrimPrefix(resource, "/"))
	return err == nil && !info.IsDir()
}

// Size returns the size in bytes of resource.
func (b *Bundle) Size(resource string) (int64, error) {
	info, err := fs.Stat(b.fsys, strings.TrimPrefix(resource, "/"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, fmt.Errorf("%w: %s", ErrResourceNotFound, resource)
		}
		return 0, err
	}
	return info.Size(), nil
}

// Manifest returns the bundle manifest.
func (b *Bundle) Manifest() *Manifest {
	return b.manifest
}

// isMetadata reports whether p is a bundle support file rather than a binary.
func isMetadata(p string) bool {
	if p == ManifestFile {
		return true
	}
	for _, k := range keyringFiles {
		if p == k {
			return true
		}
	}
	switch path.Ext(p) {
	case ".sig", ".asc", ".md":
		return true
	}
	return strings.HasPrefix(path.Base(p), ".")
}
