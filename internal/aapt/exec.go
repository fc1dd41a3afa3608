package aapt

import (
	"fmt"
	"os"
)

// SetExecutable adds execute permission wherever the file is readable
// (0644 becomes 0755, 0600 becomes 0700). Files that are already
// executable are left untouched, so binaries owned by another user don't
// fail needlessly.
func SetExecutable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	mode := info.Mode().Perm()
	want := mode | (mode&0444)>>2 | 0100
	if want == mode {
		return nil
	}

	if err := os.Chmod(path, want); err != nil {
		return fmt.Errorf("set executable: %w", err)
	}
	return nil
}

// checkReadable verifies path names a regular file that can be opened.
func checkReadable(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
