// Package bundle materializes the prebuilt binaries shipped inside aaptkit.
//
// # Layout
//
// The bundle is an fs.FS rooted at the prebuilt directory:
//
//	macosx/aapt, macosx/aapt_64, macosx/aapt2, macosx/aapt2_64
//	linux/aapt, linux/aapt_64, linux/aapt2, linux/aapt2_64
//	windows/aapt.exe, windows/aapt_64.exe, windows/aapt2.exe, windows/aapt2_64.exe
//	manifest.yaml      (optional) checksums and signatures per resource
//	keyring.asc/.gpg   (optional) OpenPGP public keys for signatures
//
// The production bundle is embedded at compile time from ./prebuilt; the
// release packaging step places the binaries there.
//
// # Integrity
//
// When the manifest lists a resource, its bytes are checked before they
// reach the filesystem:
//   - sha256: hex digest of the resource
//   - signature: bundle path of a detached OpenPGP signature, checked
//     against the bundle keyring (armored or binary)
//
// Resources missing from the manifest are materialized unchecked unless the
// bundle is strict.
//
// # Usage
//
//	b, err := bundle.Default(bundle.Options{})
//	if err != nil {
//	    return err
//	}
//	path, err := b.Materialize("linux/aapt2_64")
package bundle
