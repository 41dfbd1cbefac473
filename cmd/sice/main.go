// Command sice is a terminal editor for line-oriented configuration files
// that highlights a separator character.
package main

import (
	"os"

	"github.com/iw2rmb/sice"
)

// Build information injected via ldflags at build time.
var (
	commit = "none"
	date   = "unknown"
)

func main() {
	if err := newRootCmd(sice.BuildString(commit, date)).Execute(); err != nil {
		os.Exit(1)
	}
}
