package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "chocotype",
	Short: "ChocoPy-style static type checker",
	Long: `chocotype type-checks a ChocoPy-style program's AST: nominal class
subtyping, list invariance, lexical scoping with global/nonlocal
qualifiers, and method-equal inheritance.

The checker has no parser of its own — it consumes the JSON AST a
parser collaborator produces (see the "check" subcommand) and
annotates it in place with inferred types and diagnostics.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
`, GitCommit))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
