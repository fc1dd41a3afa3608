package bundle

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:prebuilt
var prebuiltFS embed.FS

// Default returns the bundle compiled into the binary.
func Default(opts Options) (*Bundle, error) {
	sub, err := fs.Sub(prebuiltFS, "prebuilt")
	if err != nil {
		return nil, fmt.Errorf("open embedded bundle: %w", err)
	}
	return New(sub, opts)
}
