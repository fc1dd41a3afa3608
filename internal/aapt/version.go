package aapt

import "strings"

// Banners printed by "aapt version" / "aapt2 version".
const (
	bannerAapt2       = "Android Asset Packaging Tool (aapt) 2:"
	bannerAapt2Legacy = "Android Asset Packaging Tool (aapt) 2." // build-tools before 26.0.2
	bannerAapt1       = "Android Asset Packaging Tool, v0."
)

// ParseVersion classifies the output of "<binary> version".
// Unknown output yields a *VersionOutputError carrying the text.
func ParseVersion(output string) (Version, error) {
	switch {
	case strings.HasPrefix(output, bannerAapt2):
		return Version2, nil
	case strings.HasPrefix(output, bannerAapt2Legacy):
		return Version2, nil
	case strings.HasPrefix(output, bannerAapt1):
		return Version1, nil
	default:
		return 0, &VersionOutputError{Output: output}
	}
}
