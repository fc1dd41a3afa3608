package main

import (
	"fmt"
	"os"

	"github.com/ZebulonRouseFrantzich/aaptkit/internal/config"
)

// Version will be set at build time via -ldflags
var Version = "v0.0.1-alpha"

func main() {
	a := newApp(os.Stdout, os.Stderr)
	if err := a.rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", config.FormatError(err, a.debug))
		os.Exit(1)
	}
}
