// Command avv scores every node of an edge-list file by its Aggregate
// Visibility Value.
//
//	avv                 run the built-in self-test suite
//	avv graph           read graph.csv, compute and print scores
//	avv graph.csv -f json --workers 4
package main

import (
	"fmt"
	"os"
)

// Build-time variables set via ldflags.
var (
	version = "0.1.0"
	commit  = ""
)

func versionString() string {
	if commit != "" {
		return fmt.Sprintf("avv version %s (commit: %s)", version, commit)
	}

	return fmt.Sprintf("avv version %s-dev", version)
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
