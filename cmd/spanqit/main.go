// Command spanqit renders SPARQL queries from YAML, JSON and CUE query
// documents.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/spanqit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spanqit: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
