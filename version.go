package fluix

import (
	_ "embed"
)

// Version is the release version, read from the VERSION file at build time.
//
//go:embed VERSION
var Version string
