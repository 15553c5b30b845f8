// Command msgfplus exposes the proteolytic enzyme table, annotation
// termini counting, and in-silico protein digestion on the command line.
package main

import (
	"fmt"
	"os"

	"github.com/vdtoorn/msgfplus/internal/cli"
)

// Build information injected via ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(fmt.Sprintf("%s (commit %s, %s)", version, commit, date))
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
