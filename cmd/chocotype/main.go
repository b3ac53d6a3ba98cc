// Command chocotype is the CLI front end for the checker: it decodes a
// JSON-encoded AST, runs the declaration pass and judgement walker over
// it, and reports diagnostics or the annotated tree.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/chocotype/cmd/chocotype/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
